package importer

import (
	"encoding/json/v2"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	domainerrors "github.com/GamingGoku/ProductionMealApp/internal/errors"
)

// Recipe is the title and ingredient lines extracted from a page.
type Recipe struct {
	Title       string
	Ingredients []string
}

// ParseRecipeHTML scans a page's JSON-LD blocks for the first schema.org
// Recipe node that carries ingredients.
func ParseRecipeHTML(r io.Reader) (*Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, domainerrors.Upstream("failed to parse page HTML").WithCause(err)
	}

	var recipe *Recipe
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return true
		}

		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			// Broken JSON-LD blocks are common in the wild; keep scanning.
			return true
		}

		node := findRecipeNode(data)
		if node == nil {
			return true
		}
		if extracted := extractRecipe(node); extracted != nil {
			recipe = extracted
			return false
		}
		return true
	})

	if recipe == nil {
		return nil, domainerrors.Upstream("no recipe data found on that page")
	}
	return recipe, nil
}

// findRecipeNode walks a decoded JSON-LD document looking for a node whose
// @type is Recipe, descending through arrays, @graph, mainEntity, and any
// nested objects.
func findRecipeNode(node any) map[string]any {
	switch n := node.(type) {
	case []any:
		for _, x := range n {
			if r := findRecipeNode(x); r != nil {
				return r
			}
		}
	case map[string]any:
		if isRecipeType(n["@type"]) {
			return n
		}
		if g, ok := n["@graph"]; ok {
			if r := findRecipeNode(g); r != nil {
				return r
			}
		}
		if m, ok := n["mainEntity"]; ok {
			if r := findRecipeNode(m); r != nil {
				return r
			}
		}
		// Deterministic descent order; maps iterate randomly.
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch n[k].(type) {
			case map[string]any, []any:
				if r := findRecipeNode(n[k]); r != nil {
					return r
				}
			}
		}
	}
	return nil
}

// isRecipeType matches "@type": "Recipe" whether given as a string or an
// array of strings, case-insensitively.
func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return strings.EqualFold(v, "recipe")
	case []any:
		for _, x := range v {
			if s, ok := x.(string); ok && strings.EqualFold(s, "recipe") {
				return true
			}
		}
	}
	return false
}

// extractRecipe pulls the title and ingredient strings out of a Recipe node.
// Returns nil when the node has no usable ingredients.
func extractRecipe(node map[string]any) *Recipe {
	title := strings.TrimSpace(stringField(node, "name"))
	if title == "" {
		title = strings.TrimSpace(stringField(node, "headline"))
	}
	if title == "" {
		title = "Imported recipe"
	}

	lines := stringSliceField(node, "recipeIngredient")
	if lines == nil {
		lines = stringSliceField(node, "ingredients")
	}

	var ingredients []string
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			ingredients = append(ingredients, s)
		}
	}
	if len(ingredients) == 0 {
		return nil
	}
	return &Recipe{Title: title, Ingredients: ingredients}
}

func stringField(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return s
}

func stringSliceField(node map[string]any, key string) []string {
	arr, ok := node[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, x := range arr {
		if s, ok := x.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
