package ids

import "testing"

func TestGenerate(t *testing.T) {
	id := Generate("countdown-123", 8)

	if len(id) != 8 {
		t.Fatalf("expected ID length 8, got %d: %q", len(id), id)
	}

	for _, c := range id {
		if !((c >= 'a' && c <= 'z') || (c >= '2' && c <= '7')) {
			t.Errorf("ID contains invalid character %q: %q", c, id)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	id1 := Generate("countdown-123", 10)
	id2 := Generate("countdown-123", 10)

	if id1 != id2 {
		t.Errorf("same inputs should produce same ID: got %q and %q", id1, id2)
	}
}

func TestGenerate_DifferentInputs(t *testing.T) {
	id1 := Generate("countdown-123", 10)
	id2 := Generate("countdown-999", 10)

	if id1 == id2 {
		t.Error("different inputs should produce different IDs")
	}
}

func TestGenerate_NonPositiveLength(t *testing.T) {
	if got := Generate("countdown", 0); got != "" {
		t.Fatalf("expected empty ID, got %q", got)
	}
}

func TestRandom(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := Random(DefaultLength)
		if len(id) != DefaultLength {
			t.Fatalf("expected ID length %d, got %q", DefaultLength, id)
		}
		if seen[id] {
			t.Fatalf("random ID repeated: %q", id)
		}
		seen[id] = true
	}
}
