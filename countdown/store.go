package countdown

import (
	"fmt"
	"sort"
	"time"

	"github.com/amonks/ggc/internal/ids"
)

// maxIDAttempts bounds regeneration when a new ID collides with an existing one.
const maxIDAttempts = 16

// Store holds countdown entries keyed by ID.
type Store struct {
	entries map[string]Entry
	order   Order
	nextSeq int
	newID   func() string
}

// StoreOptions configures a Store.
type StoreOptions struct {
	// Order selects List ordering. Defaults to OrderAdded.
	Order Order

	// NewID generates candidate IDs. Defaults to random base32 IDs.
	NewID func() string
}

// NewStore creates an empty store.
func NewStore(opts StoreOptions) *Store {
	order := opts.Order
	if !order.IsValid() {
		order = OrderAdded
	}
	newID := opts.NewID
	if newID == nil {
		newID = func() string { return ids.Random(ids.DefaultLength) }
	}
	return &Store{
		entries: make(map[string]Entry),
		order:   order,
		newID:   newID,
	}
}

// Add inserts a countdown and returns its new ID.
// The store is unchanged when the label or target is invalid.
func (s *Store) Add(label string, target time.Time) (string, error) {
	normalized, err := ValidateLabel(label)
	if err != nil {
		return "", err
	}
	if err := ValidateTarget(target); err != nil {
		return "", err
	}

	id, err := s.uniqueID()
	if err != nil {
		return "", err
	}

	s.nextSeq++
	s.entries[id] = Entry{
		ID:     id,
		Label:  normalized,
		Target: target,
		Seq:    s.nextSeq,
	}
	return id, nil
}

// AddText parses dateText and inserts a countdown.
func (s *Store) AddText(label, dateText string) (string, error) {
	if _, err := ValidateLabel(label); err != nil {
		return "", err
	}
	target, err := ParseDate(dateText)
	if err != nil {
		return "", err
	}
	return s.Add(label, target)
}

// Remove deletes the countdown with id. Unknown IDs are ignored.
func (s *Store) Remove(id string) {
	delete(s.entries, id)
}

// Get returns the countdown with id.
func (s *Store) Get(id string) (Entry, bool) {
	entry, ok := s.entries[id]
	return entry, ok
}

// Len returns the number of countdowns.
func (s *Store) Len() int {
	return len(s.entries)
}

// Order returns the list ordering.
func (s *Store) Order() Order {
	return s.order
}

// IDs returns all countdown IDs in list order.
func (s *Store) IDs() []string {
	entries := s.sortedEntries()
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.ID)
	}
	return out
}

// List returns a snapshot of every countdown with its days remaining at now.
func (s *Store) List(now time.Time) []Remaining {
	entries := s.sortedEntries()
	out := make([]Remaining, 0, len(entries))
	for _, entry := range entries {
		out = append(out, Remaining{
			Entry: entry,
			Days:  DaysRemaining(entry.Target, now),
		})
	}
	return out
}

// Resolve returns the ID matching prefix, ignoring case.
func (s *Store) Resolve(prefix string) (string, error) {
	matches := ids.MatchPrefix(s.IDs(), prefix)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrEntryNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, prefix)
	}
}

func (s *Store) uniqueID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		if id == "" {
			continue
		}
		if _, exists := s.entries[id]; !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("generate countdown ID: %d attempts collided", maxIDAttempts)
}

func (s *Store) sortedEntries() []Entry {
	entries := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if s.order == OrderNearest && !entries[i].Target.Equal(entries[j].Target) {
			return entries[i].Target.Before(entries[j].Target)
		}
		return entries[i].Seq < entries[j].Seq
	})
	return entries
}
