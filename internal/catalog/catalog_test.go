package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meals.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadObjectForm(t *testing.T) {
	path := writeCatalogFile(t, `{
		"meals": [
			{"name": "Tacos", "mainDish": "Beef", "sideDish": "Wraps", "ingredients": ["Mince", "Tortilla"]},
			{"name": "  ", "ingredients": ["ignored"]}
		],
		"staples": ["Milk", "Bread"]
	}`)

	c := New(path, nil)
	meals := c.Meals(nil)
	require.Len(t, meals, 1)
	assert.Equal(t, "Tacos", meals[0].Name)
	assert.Equal(t, []string{"Milk", "Bread"}, c.Staples())
}

func TestLoadBareArrayForm(t *testing.T) {
	path := writeCatalogFile(t, `[{"name": "Curry", "mainDish": "Chicken", "sideDish": "Rice", "ingredients": ["Chicken", "Rice"]}]`)

	c := New(path, nil)
	meals := c.Meals(nil)
	require.Len(t, meals, 1)
	assert.Equal(t, "Curry", meals[0].Name)
	assert.Empty(t, c.Staples())
}

func TestMissingFileUsesFallback(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "does-not-exist.json"), nil)

	meals := c.Meals(nil)
	require.Len(t, meals, 1)
	assert.Equal(t, "Pepper Steak Stir Fry", meals[0].Name)
}

func TestInvalidJSONUsesFallback(t *testing.T) {
	path := writeCatalogFile(t, `{not json`)

	c := New(path, nil)
	meals := c.Meals(nil)
	require.Len(t, meals, 1)
	assert.Equal(t, "Pepper Steak Stir Fry", meals[0].Name)
}

func TestMergeCustomMealsFillGapsOnly(t *testing.T) {
	path := writeCatalogFile(t, `{"meals": [{"name": "Tacos", "mainDish": "Beef", "sideDish": "Wraps", "ingredients": ["Mince"]}]}`)

	c := New(path, nil)
	merged := c.Meals([]domain.Meal{
		{Name: "  tacos ", MainDish: "Custom", Ingredients: []string{"other"}},
		{Name: "Imported Curry", MainDish: "Imported", Ingredients: []string{"rice"}},
	})

	require.Len(t, merged, 2)
	// File catalog wins the name collision.
	assert.Equal(t, "Beef", merged[0].MainDish)
	assert.Equal(t, "Imported Curry", merged[1].Name)
}

func TestHasMeal(t *testing.T) {
	path := writeCatalogFile(t, `{"meals": [{"name": "Tacos", "ingredients": ["Mince"]}]}`)

	c := New(path, nil)
	assert.True(t, c.HasMeal("TACOS"))
	assert.True(t, c.HasMeal("  tacos  "))
	assert.False(t, c.HasMeal("Curry"))
}

func TestReloadReplacesContents(t *testing.T) {
	path := writeCatalogFile(t, `{"meals": [{"name": "Tacos", "ingredients": ["Mince"]}]}`)

	c := New(path, nil)
	require.True(t, c.HasMeal("Tacos"))

	require.NoError(t, os.WriteFile(path, []byte(`{"meals": [{"name": "Curry", "ingredients": ["Rice"]}]}`), 0o644))
	c.Reload()

	assert.False(t, c.HasMeal("Tacos"))
	assert.True(t, c.HasMeal("Curry"))
}
