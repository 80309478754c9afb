package services

import (
	"context"
	"testing"

	"intown_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	cs, _ := newTestContactService(t, NewMemorySwipeStore())

	created, err := Seed(ctx, cs, SampleContacts)
	require.NoError(t, err)
	assert.Equal(t, len(SampleContacts), created)

	list, err := cs.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	for _, c := range list {
		assert.Equal(t, models.SwipePending, c.SwipeStatus)
	}

	created, err = Seed(ctx, cs, SampleContacts)
	require.NoError(t, err)
	assert.Zero(t, created, "second run leaves existing data alone")

	n, err := cs.Repo.CountContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestSeedStopsOnInvalidInput(t *testing.T) {
	cs, _ := newTestContactService(t, NewMemorySwipeStore())
	created, err := Seed(context.Background(), cs, []models.ContactInput{{Name: "Ok"}, {Name: ""}})
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Equal(t, 1, created)
}

func TestSampleContactsCompleteness(t *testing.T) {
	// Diana has every field, Ethan only a relationship
	byName := map[string]models.ContactInput{}
	for _, in := range SampleContacts {
		byName[in.Name] = in
	}
	diana := byName["Diana Prince"]
	ethan := byName["Ethan Hunt"]

	assert.Equal(t, 100.0, EvaluateContact(models.Contact{Birthday: diana.Birthday, Address: diana.Address,
		Relationship: diana.Relationship, Instagram: diana.Instagram}).CompletenessPercentage)
	assert.Equal(t, 25.0, EvaluateContact(models.Contact{Relationship: ethan.Relationship}).CompletenessPercentage)
}
