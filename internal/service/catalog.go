package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/GamingGoku/ProductionMealApp/internal/catalog"
	"github.com/GamingGoku/ProductionMealApp/internal/domain"
	domainerrors "github.com/GamingGoku/ProductionMealApp/internal/errors"
	"github.com/GamingGoku/ProductionMealApp/internal/id"
	"github.com/GamingGoku/ProductionMealApp/internal/importer"
	"github.com/GamingGoku/ProductionMealApp/internal/normalize"
	"github.com/GamingGoku/ProductionMealApp/internal/store"
	"github.com/GamingGoku/ProductionMealApp/internal/validation"
)

// RecipeFetcher fetches and parses a remote recipe page.
type RecipeFetcher interface {
	FetchRecipe(ctx context.Context, url string) (*importer.Recipe, error)
}

// CatalogService exposes the merged meal catalog and meal import.
type CatalogService struct {
	store     *store.Store
	catalog   *catalog.Catalog
	fetcher   RecipeFetcher
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store *store.Store, catalog *catalog.Catalog, fetcher RecipeFetcher, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:     store,
		catalog:   catalog,
		fetcher:   fetcher,
		validator: validation.New(),
		logger:    logger,
	}
}

// importMealRequest bounds imported meal input.
type importMealRequest struct {
	Title string   `json:"title" validate:"required,max=200"`
	Lines []string `json:"lines" validate:"max=200,dive,max=500"`
}

// fetchRecipeRequest bounds the recipe page fetch input.
type fetchRecipeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Meals returns the file catalog merged with the user's custom meals.
func (s *CatalogService) Meals(ctx context.Context) ([]domain.Meal, error) {
	custom, err := s.store.GetCustomMeals(ctx)
	if err != nil {
		return nil, err
	}
	return s.catalog.Meals(custom), nil
}

// Staples returns the staple item names from the file catalog.
func (s *CatalogService) Staples() []string {
	return s.catalog.Staples()
}

// AddImportedMeal parses the ingredient lines and saves a new custom meal.
// Extracted quantities pre-fill quantity overrides for keys the user has not
// already set. The title is required and must not collide with an existing
// meal name.
func (s *CatalogService) AddImportedMeal(ctx context.Context, title string, lines []string) (*domain.Meal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainerrors.Validation("meal name is required")
	}
	if err := s.validator.Validate(importMealRequest{Title: title, Lines: lines}); err != nil {
		return nil, err
	}

	custom, err := s.store.GetCustomMeals(ctx)
	if err != nil {
		return nil, err
	}

	key := normalize.Key(title)
	if s.catalog.HasMeal(title) {
		return nil, domainerrors.Conflict("a meal with that name already exists")
	}
	for _, m := range custom {
		if normalize.Key(m.Name) == key {
			return nil, domainerrors.Conflict("a meal with that name already exists")
		}
	}

	qtyOverrides, err := s.store.GetQuantityOverrides(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	overridesChanged := false
	for _, line := range lines {
		parsed := importer.ParseIngredientLine(line)
		if parsed == nil || parsed.Name == "" {
			continue
		}
		names = append(names, parsed.Name)

		if parsed.Qty == "" {
			continue
		}
		k := normalize.Key(parsed.Name)
		if k == "" {
			continue
		}
		if _, exists := qtyOverrides[k]; !exists {
			qtyOverrides[k] = parsed.Qty
			overridesChanged = true
		}
	}

	mealID, err := id.Generate("meal")
	if err != nil {
		return nil, err
	}

	meal := domain.Meal{
		ID:          mealID,
		Name:        title,
		MainDish:    "Imported",
		Ingredients: names,
	}
	meal.Sanitize()

	custom = append(custom, meal)
	if err := s.store.SetCustomMeals(ctx, custom); err != nil {
		return nil, err
	}
	if overridesChanged {
		if err := s.store.SetQuantityOverrides(ctx, qtyOverrides); err != nil {
			return nil, err
		}
	}

	s.logger.Info("custom meal added", "id", mealID, "name", title, "ingredients", len(names))
	return &meal, nil
}

// Fetch downloads a recipe page and returns the extracted title and raw
// ingredient lines without saving anything, so the user can review them.
func (s *CatalogService) Fetch(ctx context.Context, url string) (*importer.Recipe, error) {
	if err := s.validator.Validate(fetchRecipeRequest{URL: url}); err != nil {
		return nil, err
	}
	return s.fetcher.FetchRecipe(ctx, url)
}

// ImportFromURL fetches a recipe page and saves it as a custom meal.
func (s *CatalogService) ImportFromURL(ctx context.Context, url string) (*domain.Meal, error) {
	recipe, err := s.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.AddImportedMeal(ctx, recipe.Title, recipe.Ingredients)
}
