package services

import (
	"testing"

	"intown_server/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateContact(t *testing.T) {
	s := models.StringPtr

	tests := []struct {
		name    string
		contact models.Contact
		pct     float64
		missing []string
	}{
		{
			name: "all fields",
			contact: models.Contact{ID: "1", Name: "Diana Prince", Birthday: s("1992-12-03"),
				Address: s("789 Elm St"), Relationship: s("Friend"), Instagram: s("@diana")},
			pct:     100,
			missing: []string{},
		},
		{
			name: "birthday and relationship only",
			contact: models.Contact{ID: "2", Name: "Bob Smith", Birthday: s("1985-08-22"),
				Relationship: s("Colleague")},
			pct:     50,
			missing: []string{"address", "socials"},
		},
		{
			name:    "empty strings count as missing",
			contact: models.Contact{ID: "3", Name: "Empty", Birthday: new(string), Address: new(string)},
			pct:     0,
			missing: []string{"birthday", "address", "relationship", "socials"},
		},
		{
			name:    "facebook alone satisfies socials",
			contact: models.Contact{ID: "4", Name: "Charlie", Facebook: s("charlie.brown")},
			pct:     25,
			missing: []string{"birthday", "address", "relationship"},
		},
		{
			name: "three of four",
			contact: models.Contact{ID: "5", Name: "Alice", Birthday: s("1990-05-15"),
				Address: s("123 Main St"), Twitter: s("@alice")},
			pct:     75,
			missing: []string{"relationship"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := EvaluateContact(tt.contact)
			assert.Equal(t, tt.contact.ID, report.ID)
			assert.Equal(t, tt.contact.Name, report.Name)
			assert.InDelta(t, tt.pct, report.CompletenessPercentage, 1e-9)
			assert.Equal(t, tt.missing, report.MissingFields)
			assert.Len(t, report.MissingFields, 4-int(tt.pct/25))
		})
	}
}

func TestEvaluateDeviceContact(t *testing.T) {
	full := models.DeviceContact{
		ID:           "d1",
		Name:         "Ana",
		PhoneNumbers: []models.PhoneNumber{{Number: "+1 555 0101", Label: "mobile"}},
		Emails:       []models.EmailAddress{{Email: "ana@example.com"}},
		Addresses:    []models.PostalAddress{{City: "Lisbon"}},
		Birthday:     &models.PartialDate{Month: 3, Day: 14},
	}
	report := EvaluateDeviceContact(full)
	assert.Equal(t, 100.0, report.CompletenessPercentage)
	assert.Empty(t, report.MissingFields)
	assert.True(t, report.HasBirthday, "year-less birthdays count")

	phoneOnly := models.DeviceContact{
		ID:           "d2",
		Name:         "Ben",
		PhoneNumbers: []models.PhoneNumber{{Number: "123"}},
		Birthday:     &models.PartialDate{Year: 1990, Month: 5},
	}
	report = EvaluateDeviceContact(phoneOnly)
	assert.Equal(t, 25.0, report.CompletenessPercentage)
	assert.Equal(t, []string{"birthday", "address", "email"}, report.MissingFields)
	assert.False(t, report.HasBirthday, "a birthday without a day is incomplete")
	assert.True(t, report.HasPhone)
}

func TestEvaluateContactFullProfile(t *testing.T) {
	s := models.StringPtr
	report := EvaluateContact(models.Contact{
		ID: "t1", Name: "Test", Birthday: s("1990-01-01"), Address: s("123 Test St"),
		Relationship: s("Friend"), Phone: s("+1-555-0100"), Email: s("t@x.com"), Instagram: s("@t"),
	})
	assert.Equal(t, models.CompletenessReport{
		ID: "t1", Name: "Test",
		HasBirthday: true, HasAddress: true, HasRelationship: true, HasSocials: true,
		CompletenessPercentage: 100,
		MissingFields:          []string{},
	}, report)
}

func TestEvaluateContactHalfProfile(t *testing.T) {
	s := models.StringPtr
	report := EvaluateContact(models.Contact{
		ID: "t2", Name: "Test", Birthday: s("1990-01-01"), Relationship: s("Friend"),
	})
	assert.Equal(t, models.CompletenessReport{
		ID: "t2", Name: "Test",
		HasBirthday: true, HasRelationship: true,
		CompletenessPercentage: 50,
		MissingFields:          []string{"address", "socials"},
	}, report)
}
