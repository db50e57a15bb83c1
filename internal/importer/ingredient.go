package importer

import (
	"strings"

	"github.com/GamingGoku/ProductionMealApp/internal/normalize"
)

// units recognized as a quantity's unit word when it directly follows a
// leading number.
var units = map[string]struct{}{
	"cup": {}, "cups": {}, "tbsp": {}, "tablespoon": {}, "tablespoons": {},
	"tsp": {}, "teaspoon": {}, "teaspoons": {}, "g": {}, "kg": {}, "ml": {},
	"l": {}, "oz": {}, "lb": {}, "pound": {}, "pounds": {}, "slice": {},
	"slices": {}, "clove": {}, "cloves": {}, "can": {}, "cans": {},
	"pack": {}, "packs": {}, "packet": {}, "packets": {}, "pinch": {},
	"dash": {}, "sprig": {}, "sprigs": {}, "bunch": {}, "bunches": {},
}

var fractionTokens = map[string]struct{}{
	"½": {}, "¼": {}, "¾": {}, "⅓": {}, "⅔": {}, "⅛": {}, "⅜": {}, "⅝": {}, "⅞": {},
}

// ParsedIngredient is the quantity and cleaned name extracted from one
// free-text recipe ingredient line.
type ParsedIngredient struct {
	Qty  string
	Name string
}

// isNumberLikeToken reports whether t looks like a quantity: a unicode
// fraction, or digits with slashes and dots ("2", "1/2", "1.5").
func isNumberLikeToken(t string) bool {
	if t == "" {
		return false
	}
	if _, ok := fractionTokens[t]; ok {
		return true
	}
	for _, ch := range t {
		if !strings.ContainsRune("0123456789/.", ch) {
			return false
		}
	}
	return true
}

// removeParenText strips parenthesized spans, tracking nesting depth.
// Unbalanced closers are dropped.
func removeParenText(s string) string {
	var b strings.Builder
	depth := 0
	for _, ch := range s {
		switch {
		case ch == '(':
			depth++
		case ch == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// ParseIngredientLine extracts a quantity and item name from one recipe
// ingredient line. Bullet prefixes and parenthesized notes are stripped and
// everything after the first comma is dropped. A leading number token,
// optionally followed by a unit word, becomes the quantity. Returns nil when
// nothing usable remains.
func ParseIngredientLine(line string) *ParsedIngredient {
	s := strings.TrimSpace(line)
	if s == "" {
		return nil
	}

	if strings.HasPrefix(s, "•") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "•"))
	} else if s[0] == '-' || s[0] == '*' {
		s = strings.TrimSpace(s[1:])
	}

	s = removeParenText(s)
	if idx := strings.IndexByte(s, ','); idx >= 0 {
		s = s[:idx]
	}

	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return nil
	}

	var qtyTokens []string
	i := 0
	if isNumberLikeToken(tokens[0]) {
		qtyTokens = append(qtyTokens, tokens[0])
		i = 1
		if i < len(tokens) {
			if _, ok := units[strings.ToLower(tokens[i])]; ok {
				qtyTokens = append(qtyTokens, tokens[i])
				i++
			}
		}
	}

	name := strings.Join(tokens[i:], " ")
	if len(name) >= 3 && strings.EqualFold(name[:3], "of ") {
		name = name[3:]
	}

	return &ParsedIngredient{
		Qty:  strings.Join(qtyTokens, " "),
		Name: normalize.ItemLabel(name),
	}
}
