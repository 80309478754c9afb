package services

import (
	"bytes"
	"fmt"
	"time"

	"intown_server/models"

	"github.com/emersion/go-ical"
)

const (
	calendarProdID = "-//In Town//Birthdays//EN"
	calendarName   = "In Town birthdays"
	uidDomain      = "intown"

	// Year used for birthdays without a year; a leap year keeps Feb 29 valid.
	leapYear = 2000
)

// emptyCalendar is served when no accepted contact has a birthday; the encoder
// refuses calendars without components.
const emptyCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + calendarProdID + "\r\nCALSCALE:GREGORIAN\r\nEND:VCALENDAR\r\n"

// BuildBirthdayCalendar emits one yearly all-day event per contact with a
// parseable birthday.
func BuildBirthdayCalendar(contacts []models.Contact, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, calendarProdID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText("X-WR-CALNAME", calendarName)

	for _, c := range contacts {
		if !models.Present(c.Birthday) {
			continue
		}
		date, ok := ParsePartialDate(*c.Birthday)
		if !ok || date.Month == 0 || date.Day == 0 {
			continue
		}
		year := date.Year
		if year == 0 {
			year = leapYear
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", c.ID, uidDomain))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		event.Props.SetText(ical.PropSummary, fmt.Sprintf("Birthday: %s", c.Name))

		start := ical.NewProp(ical.PropDateTimeStart)
		start.SetDate(time.Date(year, time.Month(date.Month), date.Day, 0, 0, 0, 0, time.UTC))
		event.Props.Set(start)

		// Set manually; SetText would add VALUE=TEXT to a RECUR property.
		rrule := ical.NewProp(ical.PropRecurrenceRule)
		rrule.Value = "FREQ=YEARLY"
		event.Props.Set(rrule)

		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return []byte(emptyCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

// ParsePartialDate reads YYYY-MM-DD, YYYYMMDD, RFC 3339 timestamps and the
// year-less vCard forms --MM-DD and --MMDD.
func ParsePartialDate(value string) (models.PartialDate, bool) {
	for _, layout := range []string{"2006-01-02", "20060102", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return models.PartialDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, true
		}
	}
	for _, layout := range []string{"--01-02", "--0102"} {
		if t, err := time.Parse(layout, value); err == nil {
			return models.PartialDate{Month: int(t.Month()), Day: t.Day()}, true
		}
	}
	return models.PartialDate{}, false
}

// FormatPartialDate renders a date as YYYY-MM-DD, or --MM-DD without a year
func FormatPartialDate(d models.PartialDate) string {
	if d.Year == 0 {
		return fmt.Sprintf("--%02d-%02d", d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
