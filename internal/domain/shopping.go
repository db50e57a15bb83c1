package domain

import "slices"

// Extra is a one-off shopping item added by hand. Cat, when non-empty, is a
// forced category that wins over every other category resolution for the
// item's key.
type Extra struct {
	Name string `json:"name"`
	Cat  string `json:"cat,omitempty"`
}

// Overrides bundles the independently persisted per-item override records
// consulted during aggregation. Keys are normalized item keys.
type Overrides struct {
	// Category maps key -> category name chosen by the user ("" never stored).
	Category map[string]string
	// Quantity maps key -> display quantity string ("" never stored; absent
	// means use the automatic occurrence count).
	Quantity map[string]string
}

// CheckedSet is the set of item keys ticked off in the shopping list,
// serialized as an ordered slice.
type CheckedSet map[string]struct{}

// NewCheckedSet builds a set from the persisted key slice.
func NewCheckedSet(keys []string) CheckedSet {
	s := make(CheckedSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s CheckedSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the members sorted, so the persisted record is byte-stable
// across writes of the same set.
func (s CheckedSet) Keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
