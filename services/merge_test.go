package services

import (
	"testing"

	"intown_server/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func contactIDs[C models.Identified](decorated []Decorated[C]) []string {
	ids := make([]string, 0, len(decorated))
	for _, d := range decorated {
		ids = append(ids, d.Contact.ContactID())
	}
	return ids
}

func TestMergeAndFilter(t *testing.T) {
	contacts := []models.Contact{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	swipes := map[string]models.SwipeRecord{
		"b":     {ContactID: "b", Status: models.SwipeRight, Timestamp: "2024-01-02T00:00:00Z"},
		"d":     {ContactID: "d", Status: models.SwipeLeft, Timestamp: "2024-01-01T00:00:00Z"},
		"ghost": {ContactID: "ghost", Status: models.SwipeRight},
	}

	all := MergeAndFilter(contacts, swipes, nil)
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, contactIDs(all)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, models.SwipePending, all[0].Status)
	assert.Nil(t, all[0].Record)
	assert.Equal(t, models.SwipeRight, all[1].Status)
	assert.Equal(t, "2024-01-02T00:00:00Z", all[1].Record.Timestamp)

	assert.Equal(t, []string{"a", "c"}, contactIDs(MergeAndFilter(contacts, swipes, StatusIs(models.SwipePending))))
	assert.Equal(t, []string{"b"}, contactIDs(MergeAndFilter(contacts, swipes, StatusIs(models.SwipeRight))))
	assert.Equal(t, []string{"d"}, contactIDs(MergeAndFilter(contacts, swipes, StatusIs(models.SwipeLeft))))
}

func TestMergeAndFilterEmpty(t *testing.T) {
	got := MergeAndFilter[models.Contact](nil, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCountStatuses(t *testing.T) {
	contacts := []models.Contact{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	swipes := map[string]models.SwipeRecord{
		"a": {ContactID: "a", Status: models.SwipeRight},
		"b": {ContactID: "b", Status: models.SwipeLeft},
	}
	stats := CountStatuses(MergeAndFilter(contacts, swipes, nil))
	assert.Equal(t, models.SwipeStats{Total: 3, Pending: 1, Left: 1, Right: 1}, stats)
}
