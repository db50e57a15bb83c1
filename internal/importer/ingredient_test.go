package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIngredientLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantQty  string
		wantName string
	}{
		{"plain item", "Onion", "", "Onion"},
		{"count", "2 onions", "2", "onions"},
		{"count and unit", "2 cloves garlic", "2 cloves", "garlic"},
		{"unit case insensitive", "500 G flour", "500 G", "flour"},
		{"fraction", "½ cup sugar", "½ cup", "sugar"},
		{"slash fraction", "1/2 tsp salt", "1/2 tsp", "salt"},
		{"decimal", "1.5 kg potatoes", "1.5 kg", "potatoes"},
		{"leading of stripped", "2 cups of rice", "2 cups", "rice"},
		{"bullet dot", "• 2 eggs", "2", "eggs"},
		{"bullet dash", "- 1 lime", "1", "lime"},
		{"bullet star", "* salt", "", "salt"},
		{"paren note removed", "1 can (400g) chopped tomatoes", "1 can", "chopped tomatoes"},
		{"nested parens", "chicken (whole (or pieces)) thighs", "", "chicken thighs"},
		{"comma cut", "2 carrots, peeled and diced", "2", "carrots"},
		{"spaces collapsed", "  2   tbsp    olive  oil ", "2 tbsp", "olive oil"},
		{"number without unit keeps next word", "3 red peppers", "3", "red peppers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIngredientLine(tt.line)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantQty, got.Qty)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestParseIngredientLineEmpty(t *testing.T) {
	assert.Nil(t, ParseIngredientLine(""))
	assert.Nil(t, ParseIngredientLine("   "))
	assert.Nil(t, ParseIngredientLine("(all in parens)"))
	assert.Nil(t, ParseIngredientLine("•"))
}
