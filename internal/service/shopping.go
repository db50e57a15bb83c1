package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/GamingGoku/ProductionMealApp/internal/catalog"
	"github.com/GamingGoku/ProductionMealApp/internal/domain"
	domainerrors "github.com/GamingGoku/ProductionMealApp/internal/errors"
	"github.com/GamingGoku/ProductionMealApp/internal/normalize"
	"github.com/GamingGoku/ProductionMealApp/internal/shopping"
	"github.com/GamingGoku/ProductionMealApp/internal/store"
)

// ShoppingService derives the aggregated shopping list and applies per-item
// edits. Every read rebuilds the list from the current records so the
// aggregate can never go stale.
type ShoppingService struct {
	store   *store.Store
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewShoppingService creates a new shopping service.
func NewShoppingService(store *store.Store, catalog *catalog.Catalog, logger *slog.Logger) *ShoppingService {
	return &ShoppingService{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// ListView is the shopping list plus the per-category expanded flags.
type ListView struct {
	Groups   []shopping.Group `json:"groups"`
	OpenCats map[string]bool  `json:"open_cats"`
}

// buildInput reloads every record the aggregate depends on.
func (s *ShoppingService) buildInput(ctx context.Context) (shopping.Input, error) {
	var in shopping.Input

	plan, err := s.store.GetPlan(ctx)
	if err != nil {
		return in, err
	}
	extras, err := s.store.GetExtras(ctx)
	if err != nil {
		return in, err
	}
	catOverrides, err := s.store.GetCategoryOverrides(ctx)
	if err != nil {
		return in, err
	}
	qtyOverrides, err := s.store.GetQuantityOverrides(ctx)
	if err != nil {
		return in, err
	}
	checked, err := s.store.GetChecked(ctx)
	if err != nil {
		return in, err
	}

	in = shopping.Input{
		Plan:    plan,
		Staples: s.catalog.Staples(),
		Extras:  extras,
		Overrides: domain.Overrides{
			Category: catOverrides,
			Quantity: qtyOverrides,
		},
		Checked: checked,
	}
	return in, nil
}

// Build derives the current shopping list.
func (s *ShoppingService) Build(ctx context.Context) (*shopping.List, error) {
	in, err := s.buildInput(ctx)
	if err != nil {
		return nil, err
	}
	return shopping.Build(in), nil
}

// List derives the current shopping list together with the expanded-section
// flags. In shop mode categories the user has not touched default to open;
// otherwise they default to collapsed.
func (s *ShoppingService) List(ctx context.Context, shopMode bool) (*ListView, error) {
	list, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.GetOpenCategories(ctx)
	if err != nil {
		return nil, err
	}

	open := make(map[string]bool, len(list.Groups))
	for _, g := range list.Groups {
		if v, ok := stored[g.Category]; ok {
			open[g.Category] = v
		} else {
			open[g.Category] = shopMode
		}
	}

	return &ListView{Groups: list.Groups, OpenCats: open}, nil
}

// CategoryProgress is the checked-off count for one category.
type CategoryProgress struct {
	Category string `json:"category"`
	Checked  int    `json:"checked"`
	Total    int    `json:"total"`
}

// ToggleResult is the single-item delta from a checked toggle.
type ToggleResult struct {
	Item     shopping.Item    `json:"item"`
	Progress CategoryProgress `json:"progress"`
}

// ToggleChecked flips one item's checked state and returns the item delta
// plus its category's progress counts, avoiding a second full rebuild.
func (s *ShoppingService) ToggleChecked(ctx context.Context, key string) (*ToggleResult, error) {
	key = normalize.Key(key)
	if key == "" {
		return nil, domainerrors.Validation("item key is required")
	}

	list, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	if list.FindItem(key) == nil {
		return nil, domainerrors.NotFoundf("item %q is not on the list", key)
	}

	checked, err := s.store.GetChecked(ctx)
	if err != nil {
		return nil, err
	}
	if checked.Has(key) {
		delete(checked, key)
	} else {
		checked[key] = struct{}{}
	}
	if err := s.store.SetChecked(ctx, checked); err != nil {
		return nil, err
	}

	// Patch the already-built list instead of re-aggregating.
	var result ToggleResult
	for gi := range list.Groups {
		g := &list.Groups[gi]
		hit := false
		for ii := range g.Items {
			if g.Items[ii].Key == key {
				g.Items[ii].Checked = checked.Has(key)
				result.Item = g.Items[ii]
				hit = true
			}
		}
		if !hit {
			continue
		}
		result.Progress = CategoryProgress{Category: g.Category, Total: len(g.Items)}
		for _, it := range g.Items {
			if it.Checked {
				result.Progress.Checked++
			}
		}
		break
	}
	return &result, nil
}

// ClearChecked empties the checked-off set. Extras and overrides are left
// alone.
func (s *ShoppingService) ClearChecked(ctx context.Context) error {
	return s.store.SetChecked(ctx, domain.CheckedSet{})
}

// AddExtra appends a one-off item, optionally with a forced category.
func (s *ShoppingService) AddExtra(ctx context.Context, name, cat string) error {
	name = normalize.ItemLabel(name)
	if name == "" {
		return domainerrors.Validation("extra item name is required")
	}
	if cat != "" && !shopping.ValidCategory(cat) {
		return domainerrors.Validationf("unknown category %q", cat)
	}

	extras, err := s.store.GetExtras(ctx)
	if err != nil {
		return err
	}
	extras = append(extras, domain.Extra{Name: name, Cat: cat})
	return s.store.SetExtras(ctx, extras)
}

// RemoveExtra removes every extra whose normalized name matches.
func (s *ShoppingService) RemoveExtra(ctx context.Context, name string) error {
	key := normalize.Key(name)
	if key == "" {
		return domainerrors.Validation("extra item name is required")
	}

	extras, err := s.store.GetExtras(ctx)
	if err != nil {
		return err
	}

	kept := extras[:0]
	for _, e := range extras {
		if normalize.Key(e.Name) != key {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(extras) {
		return domainerrors.NotFoundf("no extra named %q", name)
	}
	return s.store.SetExtras(ctx, kept)
}

// SetQuantity stores a display quantity for an item. Setting it to the empty
// string, or to the automatic count, removes the override.
func (s *ShoppingService) SetQuantity(ctx context.Context, key, qty string) error {
	key = normalize.Key(key)
	if key == "" {
		return domainerrors.Validation("item key is required")
	}
	qty = normalize.ItemLabel(qty)

	overrides, err := s.store.GetQuantityOverrides(ctx)
	if err != nil {
		return err
	}

	if qty == "" {
		delete(overrides, key)
		return s.store.SetQuantityOverrides(ctx, overrides)
	}

	list, err := s.Build(ctx)
	if err != nil {
		return err
	}
	if item := list.FindItem(key); item != nil && qty == strconv.Itoa(item.Count) {
		// Matches what would be shown anyway.
		delete(overrides, key)
		return s.store.SetQuantityOverrides(ctx, overrides)
	}

	overrides[key] = qty
	return s.store.SetQuantityOverrides(ctx, overrides)
}

// SetCategory stores a category override for an item. An empty category
// removes the override.
func (s *ShoppingService) SetCategory(ctx context.Context, key, cat string) error {
	key = normalize.Key(key)
	if key == "" {
		return domainerrors.Validation("item key is required")
	}

	overrides, err := s.store.GetCategoryOverrides(ctx)
	if err != nil {
		return err
	}

	if cat == "" {
		delete(overrides, key)
		return s.store.SetCategoryOverrides(ctx, overrides)
	}
	if !shopping.ValidCategory(cat) {
		return domainerrors.Validationf("unknown category %q", cat)
	}

	overrides[key] = cat
	return s.store.SetCategoryOverrides(ctx, overrides)
}

// SetCategoryOpen records whether a list section is expanded.
func (s *ShoppingService) SetCategoryOpen(ctx context.Context, cat string, open bool) error {
	if !shopping.ValidCategory(cat) {
		return domainerrors.Validationf("unknown category %q", cat)
	}

	m, err := s.store.GetOpenCategories(ctx)
	if err != nil {
		return err
	}
	m[cat] = open
	return s.store.SetOpenCategories(ctx, m)
}
