package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
	"github.com/GamingGoku/ProductionMealApp/internal/service"
)

func (s *Server) registerPlanRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getPlan",
		Method:      http.MethodGet,
		Path:        "/api/v1/plan",
		Summary:     "Get plan",
		Description: "Returns the current meal plan and lock state",
		Tags:        []string{"Plan"},
	}, s.handleGetPlan)

	huma.Register(s.api, huma.Operation{
		OperationID: "generatePlan",
		Method:      http.MethodPost,
		Path:        "/api/v1/plan/generate",
		Summary:     "Generate plan",
		Description: "Generates a new random meal plan",
		Tags:        []string{"Plan"},
	}, s.handleGeneratePlan)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearPlan",
		Method:      http.MethodDelete,
		Path:        "/api/v1/plan",
		Summary:     "Clear plan",
		Description: "Removes the current plan",
		Tags:        []string{"Plan"},
	}, s.handleClearPlan)

	huma.Register(s.api, huma.Operation{
		OperationID: "swapPlanDays",
		Method:      http.MethodPost,
		Path:        "/api/v1/plan/swap",
		Summary:     "Swap plan days",
		Description: "Exchanges the meals at two plan positions",
		Tags:        []string{"Plan"},
	}, s.handleSwapPlanDays)

	huma.Register(s.api, huma.Operation{
		OperationID: "setPlanLock",
		Method:      http.MethodPut,
		Path:        "/api/v1/plan/lock",
		Summary:     "Set plan lock",
		Description: "Locks or unlocks the plan against regeneration",
		Tags:        []string{"Plan"},
	}, s.handleSetPlanLock)
}

// === DTOs ===

// PlanDayResponse is one plan day with its display label.
type PlanDayResponse struct {
	Label string      `json:"label" doc:"Calendar label, e.g. Mon 2 Sep 2024"`
	Meal  domain.Meal `json:"meal" doc:"Planned meal"`
}

// PlanResponse is the current plan state.
type PlanResponse struct {
	Days     []PlanDayResponse `json:"days" doc:"Planned days in order"`
	StartYMD string            `json:"start_ymd,omitempty" doc:"Plan start date (YYYY-MM-DD)"`
	NumDays  int               `json:"num_days" doc:"Requested plan length"`
	Locked   bool              `json:"locked" doc:"Whether the plan is locked"`
}

type PlanOutput struct {
	Body PlanResponse
}

type GeneratePlanRequest struct {
	Days int `json:"days" minimum:"1" maximum:"60" doc:"Plan length in days"`
}

type GeneratePlanInput struct {
	Body GeneratePlanRequest
}

type SwapPlanDaysRequest struct {
	A int `json:"a" minimum:"0" doc:"First plan position"`
	B int `json:"b" minimum:"0" doc:"Second plan position"`
}

type SwapPlanDaysInput struct {
	Body SwapPlanDaysRequest
}

type SetPlanLockRequest struct {
	Locked bool `json:"locked" doc:"Lock state to apply"`
}

type SetPlanLockInput struct {
	Body SetPlanLockRequest
}

type PlanLockResponse struct {
	Locked bool `json:"locked" doc:"Current lock state"`
}

type PlanLockOutput struct {
	Body PlanLockResponse
}

// planResponse denormalizes a plan with its per-day labels.
func planResponse(state *service.PlanState) PlanResponse {
	resp := PlanResponse{Locked: state.Locked, Days: []PlanDayResponse{}}
	if state.Plan == nil {
		return resp
	}
	resp.StartYMD = state.Plan.StartYMD
	resp.NumDays = state.Plan.NumDays
	for i, meal := range state.Plan.Days {
		resp.Days = append(resp.Days, PlanDayResponse{
			Label: state.Plan.DayLabel(i),
			Meal:  meal,
		})
	}
	return resp
}

// === Handlers ===

func (s *Server) handleGetPlan(ctx context.Context, _ *struct{}) (*PlanOutput, error) {
	state, err := s.planService.Plan(ctx)
	if err != nil {
		return nil, err
	}
	return &PlanOutput{Body: planResponse(state)}, nil
}

func (s *Server) handleGeneratePlan(ctx context.Context, input *GeneratePlanInput) (*PlanOutput, error) {
	if _, err := s.planService.Generate(ctx, input.Body.Days); err != nil {
		return nil, err
	}
	state, err := s.planService.Plan(ctx)
	if err != nil {
		return nil, err
	}
	return &PlanOutput{Body: planResponse(state)}, nil
}

func (s *Server) handleClearPlan(ctx context.Context, _ *struct{}) (*struct{}, error) {
	if err := s.planService.Clear(ctx); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleSwapPlanDays(ctx context.Context, input *SwapPlanDaysInput) (*PlanOutput, error) {
	if _, err := s.planService.Swap(ctx, input.Body.A, input.Body.B); err != nil {
		return nil, err
	}
	state, err := s.planService.Plan(ctx)
	if err != nil {
		return nil, err
	}
	return &PlanOutput{Body: planResponse(state)}, nil
}

func (s *Server) handleSetPlanLock(ctx context.Context, input *SetPlanLockInput) (*PlanLockOutput, error) {
	if err := s.planService.SetLocked(ctx, input.Body.Locked); err != nil {
		return nil, err
	}
	return &PlanLockOutput{Body: PlanLockResponse{Locked: input.Body.Locked}}, nil
}
