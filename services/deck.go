package services

import (
	"context"
	"fmt"

	"intown_server/models"

	"go.uber.org/zap"
)

// Deck joins a contact source with a swipe store. It is the queue the user
// swipes through and the list of contacts they chose to visit.
type Deck[C models.Identified] struct {
	Source ContactSource[C]
	Swipes SwipeStore
	Logger *zap.Logger
}

// Snapshot loads every swipe record. A failed load is logged and treated as
// an empty store so every contact falls back to pending.
func (d *Deck[C]) Snapshot(ctx context.Context) map[string]models.SwipeRecord {
	swipes, err := d.Swipes.All(ctx)
	if err != nil {
		d.logger().Warn("Failed to load swipe data, treating all contacts as pending", zap.Error(err))
		return map[string]models.SwipeRecord{}
	}
	return swipes
}

// Filter loads contacts and keeps those whose decision satisfies keep
func (d *Deck[C]) Filter(ctx context.Context, keep func(models.SwipeStatus) bool) ([]Decorated[C], error) {
	contacts, err := d.Source.LoadContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	return MergeAndFilter(contacts, d.Snapshot(ctx), keep), nil
}

// Pending returns the contacts still waiting for a decision
func (d *Deck[C]) Pending(ctx context.Context) ([]Decorated[C], error) {
	return d.Filter(ctx, StatusIs(models.SwipePending))
}

// Accepted returns the contacts swiped right
func (d *Deck[C]) Accepted(ctx context.Context) ([]Decorated[C], error) {
	return d.Filter(ctx, StatusIs(models.SwipeRight))
}

// Stats counts contacts per decision
func (d *Deck[C]) Stats(ctx context.Context) (models.SwipeStats, error) {
	all, err := d.Filter(ctx, nil)
	if err != nil {
		return models.SwipeStats{}, err
	}
	return CountStatuses(all), nil
}

// Swipe records a decision for a contact known to the source. A failed write
// is returned to the caller; nothing is recorded in that case.
func (d *Deck[C]) Swipe(ctx context.Context, contactID string, status models.SwipeStatus) (*models.SwipeRecord, error) {
	if err := validateSwipeStatus(status); err != nil {
		return nil, err
	}

	contacts, err := d.Source.LoadContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	found := false
	for _, c := range contacts {
		if c.ContactID() == contactID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrContactNotFound
	}

	record, err := d.Swipes.Set(ctx, contactID, status)
	if err != nil {
		d.logger().Error("Failed to save swipe", zap.String("contactId", contactID), zap.Error(err))
		return nil, fmt.Errorf("failed to save swipe status: %w", err)
	}
	d.logger().Debug("Swipe recorded", zap.String("contactId", contactID), zap.String("status", string(status)))
	return record, nil
}

func (d *Deck[C]) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
