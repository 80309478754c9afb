package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"intown_server/models"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteService stores contacts and swipes in a single SQLite database.
// It implements both ContactRepository and SwipeStore.
type SQLiteService struct {
	DB     *sql.DB
	Clock  func() time.Time
	Logger *zap.Logger
}

const sqliteSchema = `
PRAGMA journal_mode=WAL;
PRAGMA busy_timeout=5000;

CREATE TABLE IF NOT EXISTS contacts (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    birthday     TEXT,
    address      TEXT,
    relationship TEXT,
    phone        TEXT,
    email        TEXT,
    instagram    TEXT,
    twitter      TEXT,
    facebook     TEXT,
    created_at   TEXT NOT NULL,
    updated_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS swipes (
    contact_id TEXT PRIMARY KEY,
    status     TEXT NOT NULL CHECK(status IN ('left', 'right')),
    swiped_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_swipes_status ON swipes(status);
`

// NewSQLiteService opens (or creates) the database at path and applies the
// schema. ":memory:" opens a private in-memory database.
func NewSQLiteService(path string, logger *zap.Logger) (*SQLiteService, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("SQLite database ready", zap.String("path", path))
	return &SQLiteService{DB: db, Logger: logger}, nil
}

// Close closes the database connection.
func (s *SQLiteService) Close() error { return s.DB.Close() }

const contactColumns = `id, name, birthday, address, relationship, phone, email, instagram, twitter, facebook, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	var birthday, address, relationship, phone, email, instagram, twitter, facebook sql.NullString
	err := row.Scan(&c.ID, &c.Name, &birthday, &address, &relationship, &phone, &email,
		&instagram, &twitter, &facebook, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	c.Birthday = nullable(birthday)
	c.Address = nullable(address)
	c.Relationship = nullable(relationship)
	c.Phone = nullable(phone)
	c.Email = nullable(email)
	c.Instagram = nullable(instagram)
	c.Twitter = nullable(twitter)
	c.Facebook = nullable(facebook)
	return c, nil
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

// ── Contacts ─────────────────────────────────────────────────────────────────

func (s *SQLiteService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch contacts: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch contacts: %w", err)
	}
	return contacts, nil
}

func (s *SQLiteService) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	c, err := scanContact(s.DB.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	return &c, nil
}

func (s *SQLiteService) CreateContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	_, err := s.DB.ExecContext(ctx, `
INSERT INTO contacts (`+contactColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Birthday, c.Address, c.Relationship, c.Phone, c.Email,
		c.Instagram, c.Twitter, c.Facebook, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return s.GetContact(ctx, c.ID)
}

func (s *SQLiteService) CountContacts(ctx context.Context) (int, error) {
	var n int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return n, nil
}

// ── Swipes ───────────────────────────────────────────────────────────────────

func (s *SQLiteService) Get(ctx context.Context, contactID string) (models.SwipeStatus, error) {
	var status string
	err := s.DB.QueryRowContext(ctx, `SELECT status FROM swipes WHERE contact_id = ?`, contactID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SwipePending, nil
	}
	if err != nil {
		return models.SwipePending, fmt.Errorf("failed to fetch swipe status: %w", err)
	}
	return models.SwipeStatus(status), nil
}

// Set upserts the record in one statement, so concurrent writers to the same
// contact cannot interleave.
func (s *SQLiteService) Set(ctx context.Context, contactID string, status models.SwipeStatus) (*models.SwipeRecord, error) {
	if err := validateSwipeStatus(status); err != nil {
		return nil, err
	}
	rec := models.SwipeRecord{ContactID: contactID, Status: status, Timestamp: timestamp(s.Clock)}
	_, err := s.DB.ExecContext(ctx, `
INSERT INTO swipes (contact_id, status, swiped_at) VALUES (?, ?, ?)
ON CONFLICT(contact_id) DO UPDATE SET status = excluded.status, swiped_at = excluded.swiped_at`,
		rec.ContactID, string(rec.Status), rec.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to update swipe status: %w", err)
	}
	return &rec, nil
}

func (s *SQLiteService) All(ctx context.Context) (map[string]models.SwipeRecord, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT contact_id, status, swiped_at FROM swipes`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swipes: %w", err)
	}
	defer rows.Close()

	out := map[string]models.SwipeRecord{}
	for rows.Next() {
		var rec models.SwipeRecord
		var status string
		if err := rows.Scan(&rec.ContactID, &status, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to fetch swipes: %w", err)
		}
		rec.Status = models.SwipeStatus(status)
		out[rec.ContactID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch swipes: %w", err)
	}
	return out, nil
}
