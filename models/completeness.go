package models

// Category names, in declaration order
const (
	FieldBirthday     = "birthday"
	FieldAddress      = "address"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldRelationship = "relationship"
	FieldSocials      = "socials"
)

// CompletenessReport is derived for server-held contacts and never persisted
type CompletenessReport struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	HasBirthday            bool     `json:"hasBirthday"`
	HasAddress             bool     `json:"hasAddress"`
	HasRelationship        bool     `json:"hasRelationship"`
	HasSocials             bool     `json:"hasSocials"`
	CompletenessPercentage float64  `json:"completenessPercentage"`
	MissingFields          []string `json:"missingFields"`
}

// DeviceCompletenessReport is derived for address-book contacts
type DeviceCompletenessReport struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	HasBirthday            bool     `json:"hasBirthday"`
	HasAddress             bool     `json:"hasAddress"`
	HasPhone               bool     `json:"hasPhone"`
	HasEmail               bool     `json:"hasEmail"`
	CompletenessPercentage float64  `json:"completenessPercentage"`
	MissingFields          []string `json:"missingFields"`
}
