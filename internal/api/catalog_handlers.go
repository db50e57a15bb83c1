package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
)

func (s *Server) registerCatalogRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listMeals",
		Method:      http.MethodGet,
		Path:        "/api/v1/meals",
		Summary:     "List meals",
		Description: "Returns the meal catalog merged with custom meals",
		Tags:        []string{"Meals"},
	}, s.handleListMeals)

	huma.Register(s.api, huma.Operation{
		OperationID: "fetchRecipe",
		Method:      http.MethodPost,
		Path:        "/api/v1/meals/import/fetch",
		Summary:     "Fetch recipe",
		Description: "Fetches a recipe page and returns the extracted title and ingredient lines for review",
		Tags:        []string{"Meals"},
	}, s.handleFetchRecipe)

	huma.Register(s.api, huma.Operation{
		OperationID: "importMeal",
		Method:      http.MethodPost,
		Path:        "/api/v1/meals/import",
		Summary:     "Import meal",
		Description: "Parses ingredient lines and saves a new custom meal",
		Tags:        []string{"Meals"},
	}, s.handleImportMeal)
}

// === DTOs ===

type ListMealsResponse struct {
	Meals   []domain.Meal `json:"meals" doc:"Merged meal catalog"`
	Staples []string      `json:"staples" doc:"Staple items always on the shopping list"`
}

type ListMealsOutput struct {
	Body ListMealsResponse
}

type FetchRecipeRequest struct {
	URL string `json:"url" format:"uri" minLength:"1" doc:"Recipe page URL"`
}

type FetchRecipeInput struct {
	Body FetchRecipeRequest
}

type FetchRecipeResponse struct {
	Title       string   `json:"title" doc:"Recipe title"`
	Ingredients []string `json:"ingredients" doc:"Raw ingredient lines"`
}

type FetchRecipeOutput struct {
	Body FetchRecipeResponse
}

type ImportMealRequest struct {
	Title string   `json:"title" minLength:"1" maxLength:"200" doc:"Meal name"`
	Lines []string `json:"lines" doc:"Raw ingredient lines"`
}

type ImportMealInput struct {
	Body ImportMealRequest
}

type ImportMealOutput struct {
	Body domain.Meal
}

// === Handlers ===

func (s *Server) handleListMeals(ctx context.Context, _ *struct{}) (*ListMealsOutput, error) {
	meals, err := s.catalogService.Meals(ctx)
	if err != nil {
		return nil, err
	}
	return &ListMealsOutput{Body: ListMealsResponse{
		Meals:   meals,
		Staples: s.catalogService.Staples(),
	}}, nil
}

func (s *Server) handleFetchRecipe(ctx context.Context, input *FetchRecipeInput) (*FetchRecipeOutput, error) {
	recipe, err := s.catalogService.Fetch(ctx, input.Body.URL)
	if err != nil {
		return nil, err
	}
	return &FetchRecipeOutput{Body: FetchRecipeResponse{
		Title:       recipe.Title,
		Ingredients: recipe.Ingredients,
	}}, nil
}

func (s *Server) handleImportMeal(ctx context.Context, input *ImportMealInput) (*ImportMealOutput, error) {
	meal, err := s.catalogService.AddImportedMeal(ctx, input.Body.Title, input.Body.Lines)
	if err != nil {
		return nil, err
	}
	return &ImportMealOutput{Body: *meal}, nil
}
