package models

// DeviceContact mirrors an address-book entry as exposed by the phone
type DeviceContact struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	PhoneNumbers   []PhoneNumber   `json:"phoneNumbers,omitempty"`
	Emails         []EmailAddress  `json:"emails,omitempty"`
	Addresses      []PostalAddress `json:"addresses,omitempty"`
	Birthday       *PartialDate    `json:"birthday,omitempty"`
	ImageAvailable bool            `json:"imageAvailable"`
}

// ContactID implements Identified
func (c DeviceContact) ContactID() string { return c.ID }

type PhoneNumber struct {
	Number string `json:"number,omitempty"`
	Label  string `json:"label,omitempty"`
}

type EmailAddress struct {
	Email string `json:"email,omitempty"`
	Label string `json:"label,omitempty"`
}

type PostalAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// PartialDate is a birthday where any component may be unknown (zero)
type PartialDate struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`
}
