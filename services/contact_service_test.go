package services

import (
	"context"
	"testing"
	"time"

	"intown_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestContactService(t *testing.T, swipes SwipeStore) (*ContactService, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	return &ContactService{
		Repo:     &MemoryContactRepository{},
		Swipes:   swipes,
		Notifier: notifier,
		Clock:    fixedClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		Logger:   zaptest.NewLogger(t),
	}, notifier
}

func mustCreate(t *testing.T, cs *ContactService, input models.ContactInput) *models.ContactWithSwipe {
	t.Helper()
	c, err := cs.CreateContact(context.Background(), input)
	require.NoError(t, err)
	return c
}

func TestCreateContact(t *testing.T) {
	cs, _ := newTestContactService(t, NewMemorySwipeStore())

	c := mustCreate(t, cs, models.ContactInput{Name: "  Alice Johnson ", Email: models.StringPtr("alice@example.com")})
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Alice Johnson", c.Name)
	assert.Equal(t, models.SwipePending, c.SwipeStatus)
	assert.Nil(t, c.SwipedAt)
	assert.Equal(t, "2024-06-01T12:00:00Z", c.CreatedAt)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)

	_, err := cs.CreateContact(context.Background(), models.ContactInput{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)

	n, err := cs.Repo.CountContacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n, "rejected contact is not stored")
}

func TestListContactsNewestFirst(t *testing.T) {
	cs, _ := newTestContactService(t, NewMemorySwipeStore())
	first := mustCreate(t, cs, models.ContactInput{Name: "First"})
	second := mustCreate(t, cs, models.ContactInput{Name: "Second"})

	list, err := cs.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, models.SwipePending, list[0].SwipeStatus)
}

func TestSwipeContactAndSwipedRight(t *testing.T) {
	ctx := context.Background()
	cs, notifier := newTestContactService(t, NewMemorySwipeStore())
	s := models.StringPtr

	alice := mustCreate(t, cs, models.ContactInput{Name: "Alice", Birthday: s("1990-05-15"), Relationship: s("Friend")})
	bob := mustCreate(t, cs, models.ContactInput{Name: "Bob", Address: s("1 Road")})
	carol := mustCreate(t, cs, models.ContactInput{Name: "Carol"})

	updated, err := cs.SwipeContact(ctx, alice.ID, models.SwipeRight)
	require.NoError(t, err)
	assert.Equal(t, models.SwipeRight, updated.SwipeStatus)
	require.NotNil(t, updated.SwipedAt)

	_, err = cs.SwipeContact(ctx, bob.ID, models.SwipeRight)
	require.NoError(t, err)
	_, err = cs.SwipeContact(ctx, carol.ID, models.SwipeLeft)
	require.NoError(t, err)

	reports, err := cs.SwipedRight(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	// newest first, the contact list order
	assert.Equal(t, bob.ID, reports[0].ID)
	assert.Equal(t, alice.ID, reports[1].ID)
	assert.Equal(t, EvaluateContact(alice.Contact), reports[1])

	pending, err := cs.PendingContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	stats, err := cs.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SwipeStats{Total: 3, Left: 1, Right: 2}, stats)

	require.Len(t, notifier.records, 3)
	assert.Equal(t, alice.ID, notifier.records[0].ContactID)

	got, err := cs.GetContact(ctx, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwipeLeft, got.SwipeStatus)
}

func TestSwipeContactErrors(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySwipeStore()
	cs, notifier := newTestContactService(t, store)
	c := mustCreate(t, cs, models.ContactInput{Name: "Dana"})

	_, err := cs.SwipeContact(ctx, c.ID, models.SwipeStatus("up"))
	assert.ErrorIs(t, err, ErrInvalidSwipeStatus)

	_, err = cs.SwipeContact(ctx, "missing", models.SwipeRight)
	assert.ErrorIs(t, err, ErrContactNotFound)

	status, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwipePending, status)
	assert.Empty(t, notifier.records)
}

func TestSwipeWriteFailure(t *testing.T) {
	cs, notifier := newTestContactService(t, newBrokenSwipeStore(false, true))
	c := mustCreate(t, cs, models.ContactInput{Name: "Eve"})

	_, err := cs.SwipeContact(context.Background(), c.ID, models.SwipeRight)
	assert.ErrorIs(t, err, errBroken)
	assert.Empty(t, notifier.records)
}

func TestSwipeReadFailureFallsBackToPending(t *testing.T) {
	ctx := context.Background()
	cs, _ := newTestContactService(t, newBrokenSwipeStore(true, false))
	c := mustCreate(t, cs, models.ContactInput{Name: "Finn"})

	list, err := cs.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.SwipePending, list[0].SwipeStatus)

	got, err := cs.GetContact(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwipePending, got.SwipeStatus)

	reports, err := cs.SwipedRight(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestGetContactMissing(t *testing.T) {
	cs, _ := newTestContactService(t, NewMemorySwipeStore())
	got, err := cs.GetContact(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBirthdayCalendarOnlyAccepted(t *testing.T) {
	ctx := context.Background()
	cs, _ := newTestContactService(t, NewMemorySwipeStore())
	s := models.StringPtr

	kept := mustCreate(t, cs, models.ContactInput{Name: "Gail", Birthday: s("1991-02-03")})
	mustCreate(t, cs, models.ContactInput{Name: "Hank", Birthday: s("1980-07-09")})
	_, err := cs.SwipeContact(ctx, kept.ID, models.SwipeRight)
	require.NoError(t, err)

	ics, err := cs.BirthdayCalendar(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(ics), "Birthday: Gail")
	assert.NotContains(t, string(ics), "Hank")
}
