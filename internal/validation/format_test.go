package validation

import (
	"errors"
	"testing"
)

type order string

const (
	added   order = "added"
	nearest order = "nearest"
)

func TestFormatValidValues(t *testing.T) {
	got := FormatValidValues([]order{added, nearest})
	want := "added, nearest"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatInvalidValueError(t *testing.T) {
	base := errors.New("invalid order")
	err := FormatInvalidValueError(base, order("bad"), []order{added, nearest})
	if !errors.Is(err, base) {
		t.Fatalf("expected error to wrap %v", base)
	}

	want := "invalid order: \"bad\" (valid: added, nearest)"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
