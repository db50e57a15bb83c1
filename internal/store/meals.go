package store

import (
	"context"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
)

// GetCustomMeals retrieves the user's imported and hand-entered meals.
func (s *Store) GetCustomMeals(ctx context.Context) ([]domain.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var meals []domain.Meal
	if _, err := s.getJSON(KeyCustomMeals, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// SetCustomMeals replaces the custom meal list. An empty list deletes the
// record.
func (s *Store) SetCustomMeals(ctx context.Context, meals []domain.Meal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(meals) == 0 {
		return s.deleteKey(KeyCustomMeals)
	}
	return s.setJSON(KeyCustomMeals, meals)
}
