package services

import (
	"context"
	"sync"
	"time"

	"intown_server/models"
)

// timestamp formats the clock's current time the way every backend stores it
func timestamp(clock func() time.Time) string {
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Format(time.RFC3339Nano)
}

// MemorySwipeStore keeps swipe records in a map
type MemorySwipeStore struct {
	Clock func() time.Time

	mu      sync.RWMutex
	records map[string]models.SwipeRecord
}

func NewMemorySwipeStore() *MemorySwipeStore {
	return &MemorySwipeStore{records: map[string]models.SwipeRecord{}}
}

func (s *MemorySwipeStore) Get(_ context.Context, contactID string) (models.SwipeStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[contactID]; ok {
		return rec.Status, nil
	}
	return models.SwipePending, nil
}

func (s *MemorySwipeStore) Set(_ context.Context, contactID string, status models.SwipeStatus) (*models.SwipeRecord, error) {
	if err := validateSwipeStatus(status); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records == nil {
		s.records = map[string]models.SwipeRecord{}
	}
	rec := models.SwipeRecord{ContactID: contactID, Status: status, Timestamp: timestamp(s.Clock)}
	s.records[contactID] = rec
	return &rec, nil
}

func (s *MemorySwipeStore) All(_ context.Context) (map[string]models.SwipeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.SwipeRecord, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}
	return out, nil
}

// MemoryContactRepository keeps contacts in insertion order and lists them
// newest first, like the SQL backend.
type MemoryContactRepository struct {
	mu       sync.RWMutex
	contacts []models.Contact
}

func (r *MemoryContactRepository) ListContacts(_ context.Context) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Contact, 0, len(r.contacts))
	for i := len(r.contacts) - 1; i >= 0; i-- {
		out = append(out, r.contacts[i])
	}
	return out, nil
}

func (r *MemoryContactRepository) GetContact(_ context.Context, id string) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.contacts {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryContactRepository) CreateContact(_ context.Context, contact models.Contact) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, contact)
	return &contact, nil
}

func (r *MemoryContactRepository) CountContacts(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contacts), nil
}
