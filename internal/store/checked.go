package store

import (
	"context"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
)

// GetChecked retrieves the set of ticked-off item keys. Absent or malformed
// records yield an empty set.
func (s *Store) GetChecked(ctx context.Context) (domain.CheckedSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var keys []string
	if _, err := s.getJSON(KeyChecked, &keys); err != nil {
		return nil, err
	}
	return domain.NewCheckedSet(keys), nil
}

// SetChecked replaces the set of ticked-off item keys. An empty set deletes
// the record.
func (s *Store) SetChecked(ctx context.Context, checked domain.CheckedSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(checked) == 0 {
		return s.deleteKey(KeyChecked)
	}
	return s.setJSON(KeyChecked, checked.Keys())
}
