package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"intown_server/models"
)

// FileSwipeStore keeps every swipe record in one JSON document on disk,
// keyed by contact id. It backs the local device workflow.
type FileSwipeStore struct {
	Path  string
	Clock func() time.Time

	mu sync.Mutex
}

func NewFileSwipeStore(path string) *FileSwipeStore {
	return &FileSwipeStore{Path: path}
}

func (s *FileSwipeStore) Get(ctx context.Context, contactID string) (models.SwipeStatus, error) {
	all, err := s.All(ctx)
	if err != nil {
		return models.SwipePending, err
	}
	if rec, ok := all[contactID]; ok {
		return rec.Status, nil
	}
	return models.SwipePending, nil
}

func (s *FileSwipeStore) All(_ context.Context) (map[string]models.SwipeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Set rewrites the document with the new record. An unreadable document is
// reported instead of being replaced.
func (s *FileSwipeStore) Set(_ context.Context, contactID string, status models.SwipeStatus) (*models.SwipeRecord, error) {
	if err := validateSwipeStatus(status); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	rec := models.SwipeRecord{ContactID: contactID, Status: status, Timestamp: timestamp(s.Clock)}
	records[contactID] = rec
	if err := s.save(records); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *FileSwipeStore) load() (map[string]models.SwipeRecord, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]models.SwipeRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read swipe data: %w", err)
	}
	records := map[string]models.SwipeRecord{}
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse swipe data %s: %w", s.Path, err)
	}
	return records, nil
}

// save writes to a temporary file and renames it over the document
func (s *FileSwipeStore) save(records map[string]models.SwipeRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode swipe data: %w", err)
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create swipe data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".swipes-*.json")
	if err != nil {
		return fmt.Errorf("failed to save swipe data: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to save swipe data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to save swipe data: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to save swipe data: %w", err)
	}
	return nil
}
