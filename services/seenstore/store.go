package seenstore

import (
	"context"
	"encoding/json"
	"sort"
)

// SeenSet holds the listing identifiers already notified. It only ever
// grows within a run.
type SeenSet map[int64]struct{}

// NewSeenSet creates a set from a slice of identifiers
func NewSeenSet(ids []int64) SeenSet {
	set := make(SeenSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains tests membership
func (s SeenSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Add records an identifier; adding an existing one is a no-op
func (s SeenSet) Add(id int64) {
	s[id] = struct{}{}
}

// IDs returns the identifiers in ascending order for stable serialization
func (s SeenSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MarshalJSON serializes the set as a JSON array of integers
func (s SeenSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// UnmarshalJSON reads a JSON array of integers into the set
func (s *SeenSet) UnmarshalJSON(data []byte) error {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSeenSet(ids)
	return nil
}

// SeenStore persists the set of already-notified listing identifiers
// across runs
type SeenStore interface {
	// Load reads the persisted set. A missing or corrupt backing record
	// degrades to an empty set, never an error that aborts the run.
	Load(ctx context.Context) (SeenSet, error)

	// Save overwrites the persisted set with the current one
	Save(ctx context.Context, set SeenSet) error
}
