package countdown

import (
	"errors"
	"fmt"
	"strings"
	"time"

	internalstrings "github.com/amonks/ggc/internal/strings"
)

var (
	// ErrInvalidInput is returned when a countdown cannot be created from the given input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyLabel is returned when a countdown label is empty.
	ErrEmptyLabel = errors.New("label cannot be empty")

	// ErrInvalidDate is returned when a countdown date is missing or unparseable.
	ErrInvalidDate = errors.New("invalid date")

	// ErrEntryNotFound is returned when no countdown matches an ID.
	ErrEntryNotFound = errors.New("countdown not found")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches multiple countdowns.
	ErrAmbiguousIDPrefix = errors.New("ambiguous countdown ID prefix")

	// ErrInvalidOrder is returned when an unknown list order is configured.
	ErrInvalidOrder = errors.New("invalid order")
)

// dateLayouts are tried in order. Layouts without an offset are read as UTC.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// DateHint describes the accepted date input for prompts.
const DateHint = "YYYY-MM-DD"

// invalidInput wraps a reason so callers can match both ErrInvalidInput and the reason.
type invalidInput struct {
	reason error
	detail string
}

func (e *invalidInput) Error() string {
	if e.detail == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.reason, e.detail)
}

func (e *invalidInput) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *invalidInput) Unwrap() error {
	return e.reason
}

// ValidateLabel normalizes a label and rejects blank ones.
func ValidateLabel(label string) (string, error) {
	normalized := internalstrings.NormalizeWhitespace(label)
	if normalized == "" {
		return "", &invalidInput{reason: ErrEmptyLabel}
	}
	return normalized, nil
}

// ValidateTarget rejects the zero time.
func ValidateTarget(target time.Time) error {
	if target.IsZero() {
		return &invalidInput{reason: ErrInvalidDate, detail: "date is required"}
	}
	return nil
}

// ParseDate parses user date input such as "2024-07-14" or an RFC 3339 timestamp.
// Date-only input is midnight UTC.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, &invalidInput{reason: ErrInvalidDate, detail: "date is required"}
	}
	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, trimmed, time.UTC)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, &invalidInput{
		reason: ErrInvalidDate,
		detail: fmt.Sprintf("%q (expected %s)", value, DateHint),
	}
}
