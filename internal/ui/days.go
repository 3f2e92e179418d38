package ui

import (
	"fmt"
	"time"
)

// DefaultDateFormat renders countdown targets.
const DefaultDateFormat = "2006-01-02"

// DayUnit returns "day" for exactly one day and "days" for every other count.
func DayUnit(days int) string {
	if days == 1 {
		return "day"
	}
	return "days"
}

// FormatDays renders a count like "3 days" or "1 day".
func FormatDays(days int) string {
	return fmt.Sprintf("%d %s", days, DayUnit(days))
}

// FormatCountdown renders a countdown row like "Vacances: 3 days".
func FormatCountdown(label string, days int) string {
	return fmt.Sprintf("%s: %s", label, FormatDays(days))
}

// FormatTarget renders a target time with layout, defaulting to DefaultDateFormat.
func FormatTarget(target time.Time, layout string) string {
	if target.IsZero() {
		return "-"
	}
	if layout == "" {
		layout = DefaultDateFormat
	}
	return target.Format(layout)
}
