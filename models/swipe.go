package models

// SwipeStatus is the decision recorded for a contact
type SwipeStatus string

const (
	SwipePending SwipeStatus = "pending" // implicit default, never stored
	SwipeLeft    SwipeStatus = "left"    // not interested
	SwipeRight   SwipeStatus = "right"   // wants to visit
)

// ParseSwipeStatus accepts only the decisions a user can make
func ParseSwipeStatus(s string) (SwipeStatus, bool) {
	switch SwipeStatus(s) {
	case SwipeLeft, SwipeRight:
		return SwipeStatus(s), true
	default:
		return "", false
	}
}

// SwipeRecord is the latest decision for one contact. Later swipes overwrite it.
type SwipeRecord struct {
	ContactID string      `dynamodbav:"contactId" json:"contactId"` // ✅ Partition Key
	Status    SwipeStatus `dynamodbav:"status" json:"status"`       // left or right
	Timestamp string      `dynamodbav:"timestamp" json:"timestamp"` // RFC3339, stamped on every write
}

// SwipeStats counts contacts per decision
type SwipeStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Left    int `json:"left"`
	Right   int `json:"right"`
}
