package services

import (
	"context"
	"errors"

	"intown_server/models"
)

var (
	// ErrContactNotFound is returned when a swipe targets an unknown contact
	ErrContactNotFound = errors.New("contact not found")
	// ErrNameRequired rejects contacts created without a name
	ErrNameRequired = errors.New("name is required")
	// ErrInvalidSwipeStatus rejects anything but left or right
	ErrInvalidSwipeStatus = errors.New(`status must be "left" or "right"`)
)

// SwipeStore persists the latest swipe decision per contact id.
// Get returns pending for contacts without a record. Set overwrites any prior
// record for the id (last write wins) and stamps the current time.
type SwipeStore interface {
	Get(ctx context.Context, contactID string) (models.SwipeStatus, error)
	Set(ctx context.Context, contactID string, status models.SwipeStatus) (*models.SwipeRecord, error)
	All(ctx context.Context) (map[string]models.SwipeRecord, error)
}

// ContactRepository is the source of truth for server-held contacts.
// GetContact returns (nil, nil) when the id is unknown.
type ContactRepository interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (*models.Contact, error)
	CreateContact(ctx context.Context, contact models.Contact) (*models.Contact, error)
	CountContacts(ctx context.Context) (int, error)
}

// ContactSource supplies an ordered list of contacts of one shape
type ContactSource[C models.Identified] interface {
	LoadContacts(ctx context.Context) ([]C, error)
}

// SwipeNotifier is told about every persisted swipe
type SwipeNotifier interface {
	SwipeRecorded(record models.SwipeRecord)
}

// RepositorySource adapts a ContactRepository into a ContactSource
type RepositorySource struct {
	Repo ContactRepository
}

func (s RepositorySource) LoadContacts(ctx context.Context) ([]models.Contact, error) {
	return s.Repo.ListContacts(ctx)
}

func validateSwipeStatus(status models.SwipeStatus) error {
	if _, ok := models.ParseSwipeStatus(string(status)); !ok {
		return ErrInvalidSwipeStatus
	}
	return nil
}
