package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/GamingGoku/ProductionMealApp/internal/service"
)

func (s *Server) registerShoppingRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getShoppingList",
		Method:      http.MethodGet,
		Path:        "/api/v1/shopping",
		Summary:     "Get shopping list",
		Description: "Returns the aggregated shopping list derived from the plan, staples, and extras",
		Tags:        []string{"Shopping"},
	}, s.handleGetShoppingList)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleChecked",
		Method:      http.MethodPost,
		Path:        "/api/v1/shopping/checked/{key}/toggle",
		Summary:     "Toggle checked",
		Description: "Flips one item's checked-off state",
		Tags:        []string{"Shopping"},
	}, s.handleToggleChecked)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearChecked",
		Method:      http.MethodDelete,
		Path:        "/api/v1/shopping/checked",
		Summary:     "Clear checked",
		Description: "Unchecks every item, leaving extras and overrides alone",
		Tags:        []string{"Shopping"},
	}, s.handleClearChecked)

	huma.Register(s.api, huma.Operation{
		OperationID: "setItemQuantity",
		Method:      http.MethodPut,
		Path:        "/api/v1/shopping/items/{key}/quantity",
		Summary:     "Set item quantity",
		Description: "Overrides an item's displayed quantity; empty removes the override",
		Tags:        []string{"Shopping"},
	}, s.handleSetItemQuantity)

	huma.Register(s.api, huma.Operation{
		OperationID: "setItemCategory",
		Method:      http.MethodPut,
		Path:        "/api/v1/shopping/items/{key}/category",
		Summary:     "Set item category",
		Description: "Overrides an item's category; empty removes the override",
		Tags:        []string{"Shopping"},
	}, s.handleSetItemCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "addExtra",
		Method:      http.MethodPost,
		Path:        "/api/v1/shopping/extras",
		Summary:     "Add extra",
		Description: "Adds a one-off item to the shopping list",
		Tags:        []string{"Shopping"},
	}, s.handleAddExtra)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeExtra",
		Method:      http.MethodDelete,
		Path:        "/api/v1/shopping/extras/{name}",
		Summary:     "Remove extra",
		Description: "Removes a one-off item by name",
		Tags:        []string{"Shopping"},
	}, s.handleRemoveExtra)

	huma.Register(s.api, huma.Operation{
		OperationID: "setCategoryOpen",
		Method:      http.MethodPut,
		Path:        "/api/v1/shopping/categories/{name}/open",
		Summary:     "Set category open",
		Description: "Records whether a list section is expanded",
		Tags:        []string{"Shopping"},
	}, s.handleSetCategoryOpen)
}

// === DTOs ===

type GetShoppingListInput struct {
	Mode string `query:"mode" enum:"shop,plan" doc:"shop expands untouched categories by default"`
}

type ShoppingListOutput struct {
	Body service.ListView
}

type ToggleCheckedInput struct {
	Key string `path:"key" doc:"Normalized item key"`
}

type ToggleCheckedOutput struct {
	Body service.ToggleResult
}

type SetItemQuantityRequest struct {
	Qty string `json:"qty" maxLength:"40" doc:"Display quantity, e.g. 500g; empty removes the override"`
}

type SetItemQuantityInput struct {
	Key  string `path:"key" doc:"Normalized item key"`
	Body SetItemQuantityRequest
}

type SetItemCategoryRequest struct {
	Cat string `json:"cat" maxLength:"40" doc:"Category name; empty removes the override"`
}

type SetItemCategoryInput struct {
	Key  string `path:"key" doc:"Normalized item key"`
	Body SetItemCategoryRequest
}

type AddExtraRequest struct {
	Name string `json:"name" minLength:"1" maxLength:"120" doc:"Item name"`
	Cat  string `json:"cat,omitempty" maxLength:"40" doc:"Forced category, optional"`
}

type AddExtraInput struct {
	Body AddExtraRequest
}

type RemoveExtraInput struct {
	Name string `path:"name" doc:"Item name"`
}

type SetCategoryOpenRequest struct {
	Open bool `json:"open" doc:"Whether the section is expanded"`
}

type SetCategoryOpenInput struct {
	Name string `path:"name" doc:"Category name"`
	Body SetCategoryOpenRequest
}

// === Handlers ===

func (s *Server) handleGetShoppingList(ctx context.Context, input *GetShoppingListInput) (*ShoppingListOutput, error) {
	view, err := s.shoppingService.List(ctx, input.Mode == "shop")
	if err != nil {
		return nil, err
	}
	return &ShoppingListOutput{Body: *view}, nil
}

func (s *Server) handleToggleChecked(ctx context.Context, input *ToggleCheckedInput) (*ToggleCheckedOutput, error) {
	result, err := s.shoppingService.ToggleChecked(ctx, input.Key)
	if err != nil {
		return nil, err
	}
	return &ToggleCheckedOutput{Body: *result}, nil
}

func (s *Server) handleClearChecked(ctx context.Context, _ *struct{}) (*struct{}, error) {
	if err := s.shoppingService.ClearChecked(ctx); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleSetItemQuantity(ctx context.Context, input *SetItemQuantityInput) (*struct{}, error) {
	if err := s.shoppingService.SetQuantity(ctx, input.Key, input.Body.Qty); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleSetItemCategory(ctx context.Context, input *SetItemCategoryInput) (*struct{}, error) {
	if err := s.shoppingService.SetCategory(ctx, input.Key, input.Body.Cat); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleAddExtra(ctx context.Context, input *AddExtraInput) (*struct{}, error) {
	if err := s.shoppingService.AddExtra(ctx, input.Body.Name, input.Body.Cat); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleRemoveExtra(ctx context.Context, input *RemoveExtraInput) (*struct{}, error) {
	if err := s.shoppingService.RemoveExtra(ctx, input.Name); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleSetCategoryOpen(ctx context.Context, input *SetCategoryOpenInput) (*struct{}, error) {
	if err := s.shoppingService.SetCategoryOpen(ctx, input.Name, input.Body.Open); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}
