package services

import "intown_server/models"

type fieldCheck struct {
	name    string
	present bool
}

// score returns the satisfied share in percent and the missing names in
// declaration order.
func score(checks []fieldCheck) (float64, []string) {
	satisfied := 0
	missing := []string{}
	for _, c := range checks {
		if c.present {
			satisfied++
			continue
		}
		missing = append(missing, c.name)
	}
	return float64(satisfied) / float64(len(checks)) * 100, missing
}

// EvaluateContact scores a server-held contact on birthday, address,
// relationship and socials. Any one of instagram, twitter or facebook
// satisfies socials.
func EvaluateContact(c models.Contact) models.CompletenessReport {
	report := models.CompletenessReport{
		ID:              c.ID,
		Name:            c.Name,
		HasBirthday:     models.Present(c.Birthday),
		HasAddress:      models.Present(c.Address),
		HasRelationship: models.Present(c.Relationship),
		HasSocials:      models.Present(c.Instagram) || models.Present(c.Twitter) || models.Present(c.Facebook),
	}
	report.CompletenessPercentage, report.MissingFields = score([]fieldCheck{
		{models.FieldBirthday, report.HasBirthday},
		{models.FieldAddress, report.HasAddress},
		{models.FieldRelationship, report.HasRelationship},
		{models.FieldSocials, report.HasSocials},
	})
	return report
}

// EvaluateDeviceContact scores an address-book contact on birthday, address,
// phone and email. A birthday counts only when both month and day are known.
func EvaluateDeviceContact(c models.DeviceContact) models.DeviceCompletenessReport {
	report := models.DeviceCompletenessReport{
		ID:          c.ID,
		Name:        c.Name,
		HasBirthday: c.Birthday != nil && c.Birthday.Month != 0 && c.Birthday.Day != 0,
		HasAddress:  len(c.Addresses) > 0,
		HasPhone:    len(c.PhoneNumbers) > 0,
		HasEmail:    len(c.Emails) > 0,
	}
	report.CompletenessPercentage, report.MissingFields = score([]fieldCheck{
		{models.FieldBirthday, report.HasBirthday},
		{models.FieldAddress, report.HasAddress},
		{models.FieldPhone, report.HasPhone},
		{models.FieldEmail, report.HasEmail},
	})
	return report
}
