package countdown

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "date only", input: "2024-07-14", want: time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding space", input: "  2024-07-14\n", want: time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC)},
		{name: "minutes with T", input: "2024-07-14T09:30", want: time.Date(2024, 7, 14, 9, 30, 0, 0, time.UTC)},
		{name: "minutes with space", input: "2024-07-14 09:30", want: time.Date(2024, 7, 14, 9, 30, 0, 0, time.UTC)},
		{name: "seconds", input: "2024-01-02T00:00:01", want: time.Date(2024, 1, 2, 0, 0, 1, 0, time.UTC)},
		{name: "rfc3339 offset", input: "2024-07-14T09:30:00+02:00", want: time.Date(2024, 7, 14, 7, 30, 0, 0, time.UTC)},
		{name: "rfc3339 zulu", input: "2024-07-14T09:30:00Z", want: time.Date(2024, 7, 14, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseDateRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-date", "2024-13-01", "2024-02-30", "14/07/2024"} {
		_, err := ParseDate(input)
		if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q): expected invalid date error, got %v", input, err)
		}
	}
}

func TestInvalidInputMessage(t *testing.T) {
	_, err := ParseDate("not-a-date")
	if err == nil {
		t.Fatal("expected error")
	}
	want := `invalid input: invalid date: "not-a-date" (expected YYYY-MM-DD)`
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}

	_, err = ValidateLabel(" ")
	if !strings.Contains(err.Error(), "label cannot be empty") {
		t.Fatalf("unexpected label error %q", err.Error())
	}
}
