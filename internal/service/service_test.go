package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GamingGoku/ProductionMealApp/internal/catalog"
	"github.com/GamingGoku/ProductionMealApp/internal/store"
)

// testEnv bundles the pieces most service tests need.
type testEnv struct {
	store    *store.Store
	catalog  *catalog.Catalog
	plan     *PlanService
	shopping *ShoppingService
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const testCatalogJSON = `{
	"meals": [
		{"name": "Tacos", "mainDish": "Beef", "sideDish": "Wraps", "ingredients": ["Mince", "Onion", "Tortilla"]},
		{"name": "Curry", "mainDish": "Chicken", "sideDish": "Rice", "ingredients": ["Chicken breast", "Onion", "Coconut milk", "Rice"]},
		{"name": "Stir Fry", "mainDish": "Pork", "sideDish": "Noodles", "ingredients": ["Pork", "Soy Sauce", "Noodles"]}
	],
	"staples": ["Milk", "Bread"]
}`

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "meal-service-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	catalogPath := filepath.Join(tmpDir, "meals.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalogJSON), 0o644))

	s, err := store.New(filepath.Join(tmpDir, "test.db"), nil, store.NewNoopEmitter())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	c := catalog.New(catalogPath, nil)
	logger := testLogger()

	return &testEnv{
		store:    s,
		catalog:  c,
		plan:     NewPlanService(s, c, logger),
		shopping: NewShoppingService(s, c, logger),
	}
}

func mustGenerate(t *testing.T, env *testEnv, days int) {
	t.Helper()
	_, err := env.plan.Generate(context.Background(), days)
	require.NoError(t, err)
}
