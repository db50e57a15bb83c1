// Package domain defines the core types for meal planning and shopping lists.
package domain

import "strings"

// Meal is one entry in the catalog or in a generated plan: a named dish with
// its free-text ingredient lines and optional cooking method.
type Meal struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	MainDish    string   `json:"mainDish"`
	SideDish    string   `json:"sideDish"`
	Ingredients []string `json:"ingredients"`
	Method      []string `json:"method,omitempty"`
}

// Sanitize trims all string fields and drops empty ingredient and method
// lines. Returns false if the meal has no name and should be discarded.
func (m *Meal) Sanitize() bool {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return false
	}
	m.MainDish = strings.TrimSpace(m.MainDish)
	m.SideDish = strings.TrimSpace(m.SideDish)
	m.Ingredients = cleanLines(m.Ingredients)
	m.Method = cleanLines(m.Method)
	return true
}

// cleanLines trims each line and drops empties, preserving order.
func cleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		if s := strings.TrimSpace(raw); s != "" {
			out = append(out, s)
		}
	}
	return out
}
