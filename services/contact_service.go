package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"intown_server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ContactService implements the contact and swipe operations behind the REST API
type ContactService struct {
	Repo     ContactRepository
	Swipes   SwipeStore
	Notifier SwipeNotifier // optional
	Clock    func() time.Time
	Logger   *zap.Logger
}

func (cs *ContactService) deck() *Deck[models.Contact] {
	return &Deck[models.Contact]{Source: RepositorySource{Repo: cs.Repo}, Swipes: cs.Swipes, Logger: cs.logger()}
}

// load fetches contacts and the swipe snapshot concurrently and merges them
func (cs *ContactService) load(ctx context.Context, keep func(models.SwipeStatus) bool) ([]Decorated[models.Contact], error) {
	var contacts []models.Contact
	var swipes map[string]models.SwipeRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = cs.Repo.ListContacts(gctx)
		return err
	})
	g.Go(func() error {
		swipes = cs.deck().Snapshot(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return MergeAndFilter(contacts, swipes, keep), nil
}

// ListContacts returns every contact with its swipe status
func (cs *ContactService) ListContacts(ctx context.Context) ([]models.ContactWithSwipe, error) {
	decorated, err := cs.load(ctx, nil)
	if err != nil {
		return nil, err
	}
	return withSwipes(decorated), nil
}

// PendingContacts returns the swipe queue
func (cs *ContactService) PendingContacts(ctx context.Context) ([]models.ContactWithSwipe, error) {
	decorated, err := cs.load(ctx, StatusIs(models.SwipePending))
	if err != nil {
		return nil, err
	}
	return withSwipes(decorated), nil
}

// GetContact returns (nil, nil) when the contact does not exist
func (cs *ContactService) GetContact(ctx context.Context, id string) (*models.ContactWithSwipe, error) {
	contact, err := cs.Repo.GetContact(ctx, id)
	if err != nil || contact == nil {
		return nil, err
	}
	status, err := cs.Swipes.Get(ctx, id)
	if err != nil {
		cs.logger().Warn("Failed to load swipe status, reporting pending", zap.String("contactId", id), zap.Error(err))
		status = models.SwipePending
	}
	return &models.ContactWithSwipe{Contact: *contact, SwipeStatus: status}, nil
}

// CreateContact validates input and stores a new pending contact
func (cs *ContactService) CreateContact(ctx context.Context, input models.ContactInput) (*models.ContactWithSwipe, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	now := timestamp(cs.Clock)
	contact := models.Contact{
		ID:           uuid.NewString(),
		Name:         name,
		Birthday:     input.Birthday,
		Address:      input.Address,
		Relationship: input.Relationship,
		Phone:        input.Phone,
		Email:        input.Email,
		Instagram:    input.Instagram,
		Twitter:      input.Twitter,
		Facebook:     input.Facebook,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := cs.Repo.CreateContact(ctx, contact)
	if err != nil {
		cs.logger().Error("Failed to create contact", zap.Error(err))
		return nil, err
	}
	cs.logger().Info("Contact created", zap.String("contactId", created.ID))
	return &models.ContactWithSwipe{Contact: *created, SwipeStatus: models.SwipePending}, nil
}

// SwipeContact records a decision and returns the updated contact
func (cs *ContactService) SwipeContact(ctx context.Context, id string, status models.SwipeStatus) (*models.ContactWithSwipe, error) {
	if err := validateSwipeStatus(status); err != nil {
		return nil, err
	}
	contact, err := cs.Repo.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	record, err := cs.Swipes.Set(ctx, id, status)
	if err != nil {
		cs.logger().Error("Failed to save swipe", zap.String("contactId", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update swipe status: %w", err)
	}
	cs.logger().Info("Swipe recorded", zap.String("contactId", id), zap.String("status", string(status)))

	if cs.Notifier != nil {
		cs.Notifier.SwipeRecorded(*record)
	}
	swipedAt := record.Timestamp
	return &models.ContactWithSwipe{Contact: *contact, SwipeStatus: record.Status, SwipedAt: &swipedAt}, nil
}

// SwipedRight returns completeness reports for accepted contacts, in contact
// list order
func (cs *ContactService) SwipedRight(ctx context.Context) ([]models.CompletenessReport, error) {
	accepted, err := cs.load(ctx, StatusIs(models.SwipeRight))
	if err != nil {
		return nil, err
	}
	reports := make([]models.CompletenessReport, 0, len(accepted))
	for _, d := range accepted {
		reports = append(reports, EvaluateContact(d.Contact))
	}
	return reports, nil
}

// Stats counts contacts per decision
func (cs *ContactService) Stats(ctx context.Context) (models.SwipeStats, error) {
	all, err := cs.load(ctx, nil)
	if err != nil {
		return models.SwipeStats{}, err
	}
	return CountStatuses(all), nil
}

// BirthdayCalendar renders the birthdays of accepted contacts as iCalendar
func (cs *ContactService) BirthdayCalendar(ctx context.Context) ([]byte, error) {
	accepted, err := cs.load(ctx, StatusIs(models.SwipeRight))
	if err != nil {
		return nil, err
	}
	contacts := make([]models.Contact, 0, len(accepted))
	for _, d := range accepted {
		contacts = append(contacts, d.Contact)
	}
	clock := cs.Clock
	if clock == nil {
		clock = time.Now
	}
	return BuildBirthdayCalendar(contacts, clock())
}

func (cs *ContactService) logger() *zap.Logger {
	if cs.Logger == nil {
		return zap.NewNop()
	}
	return cs.Logger
}

func withSwipes(decorated []Decorated[models.Contact]) []models.ContactWithSwipe {
	out := make([]models.ContactWithSwipe, 0, len(decorated))
	for _, d := range decorated {
		cw := models.ContactWithSwipe{Contact: d.Contact, SwipeStatus: d.Status}
		if d.Record != nil {
			ts := d.Record.Timestamp
			cw.SwipedAt = &ts
		}
		out = append(out, cw)
	}
	return out
}
