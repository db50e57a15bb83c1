package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
)

func planWith(ingredients ...[]string) *domain.Plan {
	p := &domain.Plan{StartYMD: "2024-09-02", NumDays: len(ingredients)}
	for _, ings := range ingredients {
		p.Days = append(p.Days, domain.Meal{
			Name:        "Meal",
			Ingredients: ings,
		})
	}
	return p
}

func TestBuildMergesOnNormalizedKey(t *testing.T) {
	list := Build(Input{
		Plan: planWith(
			[]string{"Onion", "Garlic"},
			[]string{"  onion ", "Chicken stock"},
		),
	})

	item := list.FindItem("onion")
	require.NotNil(t, item)
	assert.Equal(t, 2, item.Count)
	assert.Equal(t, "2", item.Qty)
	// First-seen spelling wins.
	assert.Equal(t, "Onion", item.Label)
}

func TestBuildLabelKeepsRawSpelling(t *testing.T) {
	list := Build(Input{
		Plan: planWith([]string{"  Red   onion "}),
	})

	item := list.FindItem("red onion")
	require.NotNil(t, item)
	// Only the outer whitespace goes; inner spacing stays as written.
	assert.Equal(t, "Red   onion", item.Label)
}

func TestBuildGroupOrderAndOmission(t *testing.T) {
	list := Build(Input{
		Plan:    planWith([]string{"Chicken stock", "Onion"}),
		Staples: []string{"Shampoo"},
	})

	var cats []string
	for _, g := range list.Groups {
		cats = append(cats, g.Category)
	}
	// Only populated categories appear, in canonical order.
	assert.Equal(t, []string{CatProduce, CatPantry, CatToiletries}, cats)
}

func TestBuildScansPlanThenStaplesThenExtras(t *testing.T) {
	list := Build(Input{
		Plan:    planWith([]string{"onion"}),
		Staples: []string{"ONION"},
		Extras:  []domain.Extra{{Name: "Onion"}},
	})

	item := list.FindItem("onion")
	require.NotNil(t, item)
	assert.Equal(t, 3, item.Count)
	assert.Equal(t, "onion", item.Label)
}

func TestBuildForcedCategoryBeatsOverrideAndKeywords(t *testing.T) {
	list := Build(Input{
		Extras: []domain.Extra{{Name: "Onion", Cat: CatHousehold}},
		Overrides: domain.Overrides{
			Category: map[string]string{"onion": CatPantry},
		},
	})

	require.Len(t, list.Groups, 1)
	assert.Equal(t, CatHousehold, list.Groups[0].Category)
}

func TestBuildCategoryOverride(t *testing.T) {
	list := Build(Input{
		Plan: planWith([]string{"Onion"}),
		Overrides: domain.Overrides{
			Category: map[string]string{"onion": CatPantry},
		},
	})

	require.Len(t, list.Groups, 1)
	assert.Equal(t, CatPantry, list.Groups[0].Category)
}

func TestBuildUnknownOverrideFallsThrough(t *testing.T) {
	list := Build(Input{
		Plan: planWith([]string{"Onion"}),
		Overrides: domain.Overrides{
			Category: map[string]string{"onion": "Snacks"},
		},
	})

	require.Len(t, list.Groups, 1)
	assert.Equal(t, CatProduce, list.Groups[0].Category)
}

func TestBuildQuantityOverride(t *testing.T) {
	list := Build(Input{
		Plan: planWith([]string{"Onion", "onion"}),
		Overrides: domain.Overrides{
			Quantity: map[string]string{"onion": "500g"},
		},
	})

	item := list.FindItem("onion")
	require.NotNil(t, item)
	assert.Equal(t, "500g", item.Qty)
	assert.Equal(t, 2, item.Count)
}

func TestBuildChecked(t *testing.T) {
	list := Build(Input{
		Plan:    planWith([]string{"Onion", "Milk"}),
		Checked: domain.NewCheckedSet([]string{"milk"}),
	})

	require.NotNil(t, list.FindItem("milk"))
	assert.True(t, list.FindItem("milk").Checked)
	assert.False(t, list.FindItem("onion").Checked)
}

func TestBuildSkipsEmptyLines(t *testing.T) {
	list := Build(Input{
		Plan:    planWith([]string{"", "   ", "Onion"}),
		Staples: []string{"  "},
	})

	require.Len(t, list.Groups, 1)
	assert.Len(t, list.Groups[0].Items, 1)
}

func TestBuildSortsWithinGroup(t *testing.T) {
	list := Build(Input{
		Plan: planWith([]string{"tomato", "Avocado", "carrot"}),
	})

	require.Len(t, list.Groups, 1)
	got := make([]string, 0, 3)
	for _, it := range list.Groups[0].Items {
		got = append(got, it.Label)
	}
	assert.Equal(t, []string{"Avocado", "carrot", "tomato"}, got)
}

func TestBuildEmptyInput(t *testing.T) {
	list := Build(Input{})
	assert.Empty(t, list.Groups)
	assert.Nil(t, list.FindItem("anything"))
}
