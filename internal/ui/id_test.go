package ui

import "testing"

func TestPrefixLength(t *testing.T) {
	tests := []struct {
		name   string
		length map[string]int
		id     string
		want   int
	}{
		{
			name:   "case insensitive lookup",
			length: map[string]int{"abc123": 4},
			id:     "ABC123",
			want:   4,
		},
		{
			name:   "missing id",
			length: map[string]int{"abc123": 4},
			id:     "",
			want:   0,
		},
		{
			name:   "nil map",
			length: nil,
			id:     "ABC123",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefixLength(tt.length, tt.id); got != tt.want {
				t.Fatalf("PrefixLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHighlightID(t *testing.T) {
	original := ansiEnabled
	t.Cleanup(func() { ansiEnabled = original })

	ansiEnabled = func() bool { return true }
	if got := HighlightID("abcd1234", 2); got != ansiBold+ansiCyan+"ab"+ansiReset+"cd1234" {
		t.Fatalf("unexpected highlight %q", got)
	}
	if got := HighlightID("abcd1234", 0); got != "abcd1234" {
		t.Fatalf("expected no highlight for zero prefix, got %q", got)
	}

	ansiEnabled = func() bool { return false }
	if got := HighlightID("abcd1234", 2); got != "abcd1234" {
		t.Fatalf("expected plain ID without ANSI, got %q", got)
	}
}
