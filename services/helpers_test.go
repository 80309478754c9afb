package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"intown_server/models"
)

var errBroken = errors.New("storage unavailable")

// fixedClock returns a clock that advances one second per call
func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

// brokenSwipeStore fails reads and/or writes
type brokenSwipeStore struct {
	failReads  bool
	failWrites bool
	inner      *MemorySwipeStore
}

func newBrokenSwipeStore(failReads, failWrites bool) *brokenSwipeStore {
	return &brokenSwipeStore{failReads: failReads, failWrites: failWrites, inner: NewMemorySwipeStore()}
}

func (s *brokenSwipeStore) Get(ctx context.Context, id string) (models.SwipeStatus, error) {
	if s.failReads {
		return models.SwipePending, errBroken
	}
	return s.inner.Get(ctx, id)
}

func (s *brokenSwipeStore) Set(ctx context.Context, id string, status models.SwipeStatus) (*models.SwipeRecord, error) {
	if s.failWrites {
		return nil, errBroken
	}
	return s.inner.Set(ctx, id, status)
}

func (s *brokenSwipeStore) All(ctx context.Context) (map[string]models.SwipeRecord, error) {
	if s.failReads {
		return nil, errBroken
	}
	return s.inner.All(ctx)
}

// sliceSource is a fixed ContactSource
type sliceSource[C models.Identified] struct {
	contacts []C
	err      error
}

func (s sliceSource[C]) LoadContacts(context.Context) ([]C, error) {
	return s.contacts, s.err
}

type recordingNotifier struct {
	mu      sync.Mutex
	records []models.SwipeRecord
}

func (n *recordingNotifier) SwipeRecorded(record models.SwipeRecord) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.records = append(n.records, record)
}
