package store

import (
	"context"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
)

// GetPlan retrieves the current plan. Returns nil when no plan exists.
func (s *Store) GetPlan(ctx context.Context) (*domain.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var plan domain.Plan
	found, err := s.getJSON(KeyPlan, &plan)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &plan, nil
}

// SetPlan replaces the current plan.
func (s *Store) SetPlan(ctx context.Context, plan *domain.Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.setJSON(KeyPlan, plan)
}

// DeletePlan removes the current plan.
func (s *Store) DeletePlan(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.deleteKey(KeyPlan)
}

// GetLocked reports whether the plan is locked against regeneration.
func (s *Store) GetLocked(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var locked bool
	if _, err := s.getJSON(KeyPlanLock, &locked); err != nil {
		return false, err
	}
	return locked, nil
}

// SetLocked stores the plan lock flag.
func (s *Store) SetLocked(ctx context.Context, locked bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.setJSON(KeyPlanLock, locked)
}
