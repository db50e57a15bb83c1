// Package service orchestrates plan, shopping list, and catalog operations
// on top of the store.
package service

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/GamingGoku/ProductionMealApp/internal/catalog"
	"github.com/GamingGoku/ProductionMealApp/internal/domain"
	domainerrors "github.com/GamingGoku/ProductionMealApp/internal/errors"
	"github.com/GamingGoku/ProductionMealApp/internal/store"
)

// PlanService orchestrates plan generation and editing.
type PlanService struct {
	store   *store.Store
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewPlanService creates a new plan service.
func NewPlanService(store *store.Store, catalog *catalog.Catalog, logger *slog.Logger) *PlanService {
	return &PlanService{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// PlanState is the current plan together with the lock flag.
type PlanState struct {
	Plan   *domain.Plan `json:"plan"`
	Locked bool         `json:"locked"`
}

// Plan returns the current plan and lock state.
func (s *PlanService) Plan(ctx context.Context) (*PlanState, error) {
	plan, err := s.store.GetPlan(ctx)
	if err != nil {
		return nil, err
	}
	locked, err := s.store.GetLocked(ctx)
	if err != nil {
		return nil, err
	}
	return &PlanState{Plan: plan, Locked: locked}, nil
}

// Generate builds a new random plan of the requested length. Days outside
// the accepted range are clamped. Refused while the plan is locked.
func (s *PlanService) Generate(ctx context.Context, days int) (*domain.Plan, error) {
	locked, err := s.store.GetLocked(ctx)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, domainerrors.Locked("plan is locked")
	}

	if days < domain.MinPlanDays {
		days = domain.MinPlanDays
	}
	if days > domain.MaxPlanDays {
		days = domain.MaxPlanDays
	}

	custom, err := s.store.GetCustomMeals(ctx)
	if err != nil {
		return nil, err
	}
	meals := s.catalog.Meals(custom)

	// Dedupe by exact name, later entries replacing earlier ones while
	// keeping the first occurrence's position.
	byName := make(map[string]int, len(meals))
	var unique []domain.Meal
	for _, m := range meals {
		if idx, seen := byName[m.Name]; seen {
			unique[idx] = m
			continue
		}
		byName[m.Name] = len(unique)
		unique = append(unique, m)
	}

	rand.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	n := min(days, len(unique))
	plan := &domain.Plan{
		Days:     unique[:n],
		StartYMD: domain.Today(),
		NumDays:  days,
	}

	if err := s.store.SetPlan(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("plan generated", "requested_days", days, "meals", n)
	return plan, nil
}

// Clear removes the current plan. Refused while the plan is locked.
func (s *PlanService) Clear(ctx context.Context) error {
	locked, err := s.store.GetLocked(ctx)
	if err != nil {
		return err
	}
	if locked {
		return domainerrors.Locked("plan is locked")
	}

	if err := s.store.DeletePlan(ctx); err != nil {
		return err
	}

	s.logger.Info("plan cleared")
	return nil
}

// Swap exchanges the meals at positions a and b. Refused while locked.
func (s *PlanService) Swap(ctx context.Context, a, b int) (*domain.Plan, error) {
	locked, err := s.store.GetLocked(ctx)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, domainerrors.Locked("plan is locked")
	}

	plan, err := s.store.GetPlan(ctx)
	if err != nil {
		return nil, err
	}
	if plan.IsEmpty() {
		return nil, domainerrors.NotFound("no plan to reorder")
	}
	if a < 0 || a >= len(plan.Days) || b < 0 || b >= len(plan.Days) {
		return nil, domainerrors.Validation("swap positions are out of range")
	}

	if a != b {
		plan.Days[a], plan.Days[b] = plan.Days[b], plan.Days[a]
		if err := s.store.SetPlan(ctx, plan); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// SetLocked toggles the plan lock.
func (s *PlanService) SetLocked(ctx context.Context, locked bool) error {
	if err := s.store.SetLocked(ctx, locked); err != nil {
		return err
	}
	s.logger.Info("plan lock changed", "locked", locked)
	return nil
}
