package countdown

import (
	"time"

	"github.com/amonks/ggc/internal/age"
	internalstrings "github.com/amonks/ggc/internal/strings"
	"github.com/amonks/ggc/internal/validation"
)

// Entry is a labeled countdown target.
type Entry struct {
	ID     string    `json:"id"`
	Label  string    `json:"label"`
	Target time.Time `json:"target"`
	// Seq is the insertion sequence within the owning store.
	Seq int `json:"-"`
}

// Remaining pairs an entry with its whole days remaining at a moment.
type Remaining struct {
	Entry
	Days int `json:"days_remaining"`
}

// Order selects how List orders entries.
type Order string

const (
	// OrderAdded lists entries in insertion order.
	OrderAdded Order = "added"
	// OrderNearest lists entries by target, earliest first.
	OrderNearest Order = "nearest"
)

// ValidOrders returns all valid order values.
func ValidOrders() []Order {
	return []Order{OrderAdded, OrderNearest}
}

// IsValid returns true if the order is a known value.
func (o Order) IsValid() bool {
	for _, valid := range ValidOrders() {
		if o == valid {
			return true
		}
	}
	return false
}

// ParseOrder normalizes and validates an order name.
// An empty value selects OrderAdded.
func ParseOrder(value string) (Order, error) {
	normalized := Order(internalstrings.NormalizeLowerTrimSpace(value))
	if normalized == "" {
		return OrderAdded, nil
	}
	if !normalized.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidOrder, Order(value), ValidOrders())
	}
	return normalized, nil
}

// DaysRemaining returns the ceiling of target minus now in whole days.
// Past targets yield zero or negative values.
func DaysRemaining(target time.Time, now time.Time) int {
	return age.DaysUntil(target, now)
}
