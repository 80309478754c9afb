package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"intown_server/models"

	"github.com/emersion/go-vcard"
	"go.uber.org/zap"
)

const (
	fieldRelationship  = "X-RELATIONSHIP"
	fieldSocialProfile = "X-SOCIALPROFILE"
	fieldTwitter       = "X-TWITTER"
	fallbackName       = "Unknown"
	uidHashLength      = 8
	maxDecodeErrors    = 100
)

// VCardSource reads device contacts from a .vcf address-book export
type VCardSource struct {
	Path   string
	Logger *zap.Logger
}

func (s *VCardSource) LoadContacts(ctx context.Context) ([]models.DeviceContact, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open address book: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseDeviceContacts(ctx, f, s.Logger)
}

// decodeCards reads every card from r. Malformed cards are logged and skipped.
func decodeCards(ctx context.Context, r io.Reader, logger *zap.Logger) ([]vcard.Card, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dec := vcard.NewDecoder(r)
	var cards []vcard.Card
	failures := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn("Skipped malformed vCard", zap.Error(err))
			if failures++; failures >= maxDecodeErrors {
				return nil, fmt.Errorf("too many malformed vCards: %w", err)
			}
			continue
		}
		failures = 0
		cards = append(cards, card)
	}
	logger.Debug("vCards decoded", zap.Int("count", len(cards)))
	return cards, nil
}

// ParseDeviceContacts maps vCards to the address-book contact shape
func ParseDeviceContacts(ctx context.Context, r io.Reader, logger *zap.Logger) ([]models.DeviceContact, error) {
	cards, err := decodeCards(ctx, r, logger)
	if err != nil {
		return nil, err
	}
	contacts := make([]models.DeviceContact, 0, len(cards))
	for _, card := range cards {
		c := models.DeviceContact{
			ID:             cardUID(card),
			Name:           cardName(card),
			ImageAvailable: card.Get(vcard.FieldPhoto) != nil,
		}
		for _, tel := range card[vcard.FieldTelephone] {
			if tel.Value != "" {
				c.PhoneNumbers = append(c.PhoneNumbers, models.PhoneNumber{Number: tel.Value, Label: tel.Params.Get(vcard.ParamType)})
			}
		}
		for _, email := range card[vcard.FieldEmail] {
			if email.Value != "" {
				c.Emails = append(c.Emails, models.EmailAddress{Email: email.Value, Label: email.Params.Get(vcard.ParamType)})
			}
		}
		for _, adr := range card.Addresses() {
			c.Addresses = append(c.Addresses, models.PostalAddress{
				Street:     adr.StreetAddress,
				City:       adr.Locality,
				Region:     adr.Region,
				PostalCode: adr.PostalCode,
				Country:    adr.Country,
			})
		}
		if bday := card.Get(vcard.FieldBirthday); bday != nil {
			if d, ok := ParsePartialDate(bday.Value); ok {
				c.Birthday = &d
			}
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// ParseContactInputs maps vCards to server contact payloads for import
func ParseContactInputs(ctx context.Context, r io.Reader, logger *zap.Logger) ([]models.ContactInput, error) {
	cards, err := decodeCards(ctx, r, logger)
	if err != nil {
		return nil, err
	}
	inputs := make([]models.ContactInput, 0, len(cards))
	for _, card := range cards {
		in := models.ContactInput{
			Name:         cardName(card),
			Phone:        models.StringPtr(card.PreferredValue(vcard.FieldTelephone)),
			Email:        models.StringPtr(card.PreferredValue(vcard.FieldEmail)),
			Relationship: models.StringPtr(cardRelationship(card)),
		}
		if bday := card.Get(vcard.FieldBirthday); bday != nil {
			if d, ok := ParsePartialDate(bday.Value); ok {
				in.Birthday = models.StringPtr(FormatPartialDate(d))
			}
		}
		if adrs := card.Addresses(); len(adrs) > 0 {
			in.Address = models.StringPtr(formatAddress(adrs[0]))
		}
		for _, f := range card[fieldSocialProfile] {
			handle := models.StringPtr(f.Value)
			switch strings.ToLower(f.Params.Get(vcard.ParamType)) {
			case "instagram":
				in.Instagram = handle
			case "twitter", "x":
				in.Twitter = handle
			case "facebook":
				in.Facebook = handle
			}
		}
		if in.Twitter == nil {
			in.Twitter = models.StringPtr(card.Value(fieldTwitter))
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// cardName prefers FN, then the structured name
func cardName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		if full := strings.TrimSpace(n.GivenName + " " + n.FamilyName); full != "" {
			return full
		}
	}
	return fallbackName
}

// cardUID uses the vCard UID, or a stable hash of name and birthday
func cardUID(card vcard.Card) string {
	if uid := card.Value(vcard.FieldUID); uid != "" {
		return uid
	}
	input := cardName(card) + "|" + card.Value(vcard.FieldBirthday)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:uidHashLength])
}

func cardRelationship(card vcard.Card) string {
	if rel := card.Value(fieldRelationship); rel != "" {
		return rel
	}
	if categories := card.Value(vcard.FieldCategories); categories != "" {
		return strings.TrimSpace(strings.Split(categories, ",")[0])
	}
	return ""
}

func formatAddress(adr *vcard.Address) string {
	var parts []string
	for _, p := range []string{adr.StreetAddress, adr.Locality, strings.TrimSpace(adr.Region + " " + adr.PostalCode), adr.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
