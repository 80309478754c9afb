package services

import "intown_server/models"

// Decorated pairs a contact with its swipe decision
type Decorated[C models.Identified] struct {
	Contact C
	Status  models.SwipeStatus
	Record  *models.SwipeRecord // nil while pending
}

// MergeAndFilter decorates each contact with its decision from swipes and keeps
// those whose status satisfies keep. Input order is preserved.
func MergeAndFilter[C models.Identified](contacts []C, swipes map[string]models.SwipeRecord, keep func(models.SwipeStatus) bool) []Decorated[C] {
	out := make([]Decorated[C], 0, len(contacts))
	for _, c := range contacts {
		d := Decorated[C]{Contact: c, Status: models.SwipePending}
		if rec, ok := swipes[c.ContactID()]; ok {
			r := rec
			d.Status = rec.Status
			d.Record = &r
		}
		if keep == nil || keep(d.Status) {
			out = append(out, d)
		}
	}
	return out
}

// StatusIs builds a keep predicate matching a single status
func StatusIs(status models.SwipeStatus) func(models.SwipeStatus) bool {
	return func(s models.SwipeStatus) bool { return s == status }
}

// CountStatuses tallies decorated contacts per decision
func CountStatuses[C models.Identified](decorated []Decorated[C]) models.SwipeStats {
	stats := models.SwipeStats{Total: len(decorated)}
	for _, d := range decorated {
		switch d.Status {
		case models.SwipeLeft:
			stats.Left++
		case models.SwipeRight:
			stats.Right++
		default:
			stats.Pending++
		}
	}
	return stats
}
