package models

// Contact is a server-held contact record
type Contact struct {
	ID           string  `dynamodbav:"id" json:"id"`                               // ✅ Partition Key
	Name         string  `dynamodbav:"name" json:"name"`                           // Display name (required)
	Birthday     *string `dynamodbav:"birthday,omitempty" json:"birthday"`         // Date string, e.g. 1990-05-15
	Address      *string `dynamodbav:"address,omitempty" json:"address"`           // Single-line postal address
	Relationship *string `dynamodbav:"relationship,omitempty" json:"relationship"` // Friend, Family, Colleague...
	Phone        *string `dynamodbav:"phone,omitempty" json:"phone"`               // Primary phone number
	Email        *string `dynamodbav:"email,omitempty" json:"email"`               // Primary email
	Instagram    *string `dynamodbav:"instagram,omitempty" json:"instagram"`       // Instagram handle
	Twitter      *string `dynamodbav:"twitter,omitempty" json:"twitter"`           // Twitter handle
	Facebook     *string `dynamodbav:"facebook,omitempty" json:"facebook"`         // Facebook handle
	CreatedAt    string  `dynamodbav:"createdAt" json:"created_at"`                // RFC3339 creation time
	UpdatedAt    string  `dynamodbav:"updatedAt" json:"updated_at"`                // RFC3339 last update
}

// ContactID implements Identified
func (c Contact) ContactID() string { return c.ID }

// ContactInput is the payload accepted when creating a contact
type ContactInput struct {
	Name         string  `json:"name"`
	Birthday     *string `json:"birthday,omitempty"`
	Address      *string `json:"address,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Instagram    *string `json:"instagram,omitempty"`
	Twitter      *string `json:"twitter,omitempty"`
	Facebook     *string `json:"facebook,omitempty"`
}

// ContactWithSwipe is a contact decorated with its current swipe decision
type ContactWithSwipe struct {
	Contact
	SwipeStatus SwipeStatus `json:"swipe_status"`
	SwipedAt    *string     `json:"swiped_at,omitempty"`
}

// Identified is implemented by every contact shape that can be swiped
type Identified interface {
	ContactID() string
}

// Present reports whether an optional text field carries a value
func Present(field *string) bool {
	return field != nil && *field != ""
}

// StringPtr returns nil for an empty string so it is stored as NULL
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
