// Package ics converts countdowns to and from iCalendar documents.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amonks/ggc/countdown"
	ical "github.com/arran4/golang-ical"
)

// ProductID identifies ggc in generated calendars.
const ProductID = "-//amonks//ggc//EN"

var startLayouts = []string{
	"20060102T150405Z",
	"20060102T150405",
	"20060102",
}

// Event is a calendar event that can seed a countdown.
type Event struct {
	UID     string
	Summary string
	Start   time.Time
}

// Write serializes rows as a VCALENDAR with one VEVENT per countdown.
func Write(w io.Writer, rows []countdown.Remaining, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	for _, row := range rows {
		event := cal.AddEvent(row.ID + "@ggc")
		event.SetDtStampTime(stamp)
		event.SetStartAt(row.Target)
		event.SetSummary(row.Label)
	}
	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}

// Read parses VEVENTs with a SUMMARY and DTSTART. Other events are skipped.
// DTSTART values without a UTC marker are read as UTC.
func Read(r io.Reader) ([]Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var events []Event
	for _, event := range cal.Events() {
		summary := event.GetProperty(ical.ComponentPropertySummary)
		start := event.GetProperty(ical.ComponentPropertyDtStart)
		if summary == nil || start == nil {
			continue
		}
		startAt, ok := parseStart(start.Value)
		if !ok {
			continue
		}
		item := Event{
			Summary: unescapeText(summary.Value),
			Start:   startAt,
		}
		if uid := event.GetProperty(ical.ComponentPropertyUniqueId); uid != nil {
			item.UID = uid.Value
		}
		events = append(events, item)
	}
	return events, nil
}

func parseStart(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range startLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func unescapeText(value string) string {
	if !strings.Contains(value, `\`) {
		return value
	}
	return strings.NewReplacer(`\n`, " ", `\N`, " ", `\,`, ",", `\;`, ";", `\\`, `\`).Replace(value)
}
