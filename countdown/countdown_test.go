package countdown

import (
	"errors"
	"testing"
	"time"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		target time.Time
		want   int
	}{
		{name: "rounds partial day up", target: time.Date(2024, 1, 2, 0, 0, 1, 0, time.UTC), want: 2},
		{name: "tenth of a day", target: now.Add(144 * time.Minute), want: 1},
		{name: "exactly one day", target: now.Add(24 * time.Hour), want: 1},
		{name: "same moment", target: now, want: 0},
		{name: "yesterday", target: now.Add(-24 * time.Hour), want: -1},
		{name: "far future date", target: time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC), want: 2912809},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysRemaining(tc.target, now); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    Order
		wantErr bool
	}{
		{input: "", want: OrderAdded},
		{input: "added", want: OrderAdded},
		{input: " Nearest ", want: OrderNearest},
		{input: "alphabetical", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseOrder(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidOrder) {
				t.Fatalf("ParseOrder(%q): expected ErrInvalidOrder, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseOrder(%q): unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseOrder(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
