package services

import (
	"context"
	"fmt"

	"intown_server/models"

	"go.uber.org/zap"
)

func str(s string) *string { return &s }

// SampleContacts are inserted by the seed command
var SampleContacts = []models.ContactInput{
	{
		Name:         "Alice Johnson",
		Birthday:     str("1990-05-15"),
		Address:      str("123 Main St, New York, NY 10001"),
		Relationship: str("Friend"),
		Phone:        str("+1-555-0101"),
		Email:        str("alice@example.com"),
		Instagram:    str("@alicejohnson"),
	},
	{
		Name:         "Bob Smith",
		Birthday:     str("1985-08-22"),
		Relationship: str("Colleague"),
		Phone:        str("+1-555-0102"),
		Email:        str("bob@example.com"),
		Twitter:      str("@bobsmith"),
	},
	{
		Name:         "Charlie Brown",
		Address:      str("456 Oak Ave, Brooklyn, NY 11201"),
		Relationship: str("Family"),
		Facebook:     str("charlie.brown"),
	},
	{
		Name:         "Diana Prince",
		Birthday:     str("1992-12-03"),
		Address:      str("789 Elm St, Queens, NY 11354"),
		Relationship: str("Friend"),
		Phone:        str("+1-555-0104"),
		Email:        str("diana@example.com"),
		Instagram:    str("@dianaprince"),
		Twitter:      str("@wonderdiana"),
		Facebook:     str("diana.prince"),
	},
	{
		Name:         "Ethan Hunt",
		Relationship: str("Acquaintance"),
		Phone:        str("+1-555-0105"),
	},
}

// Seed creates the inputs when the repository is empty. It reports how many
// contacts were created; zero means the repository already had data.
func Seed(ctx context.Context, cs *ContactService, inputs []models.ContactInput) (int, error) {
	existing, err := cs.Repo.CountContacts(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		cs.logger().Warn("Database already contains contacts, skipping seed", zap.Int("existing", existing))
		return 0, nil
	}
	for i, in := range inputs {
		if _, err := cs.CreateContact(ctx, in); err != nil {
			return i, fmt.Errorf("failed to seed %q: %w", in.Name, err)
		}
	}
	return len(inputs), nil
}
