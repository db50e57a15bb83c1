package store

import (
	"context"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
)

// GetExtras retrieves the hand-added extra items in insertion order.
func (s *Store) GetExtras(ctx context.Context) ([]domain.Extra, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var extras []domain.Extra
	if _, err := s.getJSON(KeyExtras, &extras); err != nil {
		return nil, err
	}
	return extras, nil
}

// SetExtras replaces the extra items. An empty list deletes the record.
func (s *Store) SetExtras(ctx context.Context, extras []domain.Extra) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(extras) == 0 {
		return s.deleteKey(KeyExtras)
	}
	return s.setJSON(KeyExtras, extras)
}
