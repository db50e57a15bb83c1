// Package catalog loads the meal catalog from a JSON file on disk and
// merges in user-added meals from the store.
package catalog

import (
	"encoding/json/v2"
	"log/slog"
	"os"
	"sync"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
	"github.com/GamingGoku/ProductionMealApp/internal/normalize"
)

// file is the on-disk shape. A bare meal array is also accepted, in which
// case there are no staples.
type file struct {
	Meals   []domain.Meal `json:"meals"`
	Staples []string      `json:"staples"`
}

// fallbackMeals keeps the app usable when the catalog file is missing or
// unreadable.
var fallbackMeals = []domain.Meal{
	{
		Name:        "Pepper Steak Stir Fry",
		MainDish:    "Beef",
		SideDish:    "Rice",
		Ingredients: []string{"Steak", "Red Bell Pepper", "Garlic", "Soy Sauce"},
	},
}

// Catalog holds the current file-backed meals and staples. Reload replaces
// the contents atomically; readers always see a consistent snapshot.
type Catalog struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	meals   []domain.Meal
	staples []string
}

// New creates a catalog backed by the file at path and performs the initial
// load. A missing or invalid file is not an error; the fallback catalog is
// used instead.
func New(path string, logger *slog.Logger) *Catalog {
	c := &Catalog{path: path, logger: logger}
	c.Reload()
	return c
}

// Reload re-reads the catalog file. On any failure the previous contents are
// replaced with the fallback so behavior matches a fresh start.
func (c *Catalog) Reload() {
	meals, staples, err := c.load()
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("Meal catalog load failed, using fallback", "path", c.path, "error", err)
		}
		meals, staples = fallbackMeals, nil
	}

	c.mu.Lock()
	c.meals = meals
	c.staples = staples
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Info("Meal catalog loaded", "meals", len(meals), "staples", len(staples))
	}
}

// load reads and decodes the file, accepting either the object form or a
// bare meal array.
func (c *Catalog) load() ([]domain.Meal, []string, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, nil, err
	}

	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		var bare []domain.Meal
		if bareErr := json.Unmarshal(raw, &bare); bareErr != nil {
			return nil, nil, err
		}
		f = file{Meals: bare}
	}

	meals := make([]domain.Meal, 0, len(f.Meals))
	for _, m := range f.Meals {
		if m.Sanitize() {
			meals = append(meals, m)
		}
	}
	return meals, f.Staples, nil
}

// Staples returns the staple item names.
func (c *Catalog) Staples() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.staples))
	copy(out, c.staples)
	return out
}

// Meals returns the file catalog merged with the given custom meals. Custom
// meals only fill gaps: on a normalized name collision the file catalog
// wins. File order is preserved, custom meals follow in their own order.
func (c *Catalog) Meals(custom []domain.Meal) []domain.Meal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Meal, 0, len(c.meals)+len(custom))
	seen := make(map[string]struct{}, len(c.meals))
	for _, m := range c.meals {
		key := normalize.Key(m.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	for _, m := range custom {
		key := normalize.Key(m.Name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

// HasMeal reports whether a meal with the same normalized name already
// exists in the file catalog.
func (c *Catalog) HasMeal(name string) bool {
	key := normalize.Key(name)
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.meals {
		if normalize.Key(m.Name) == key {
			return true
		}
	}
	return false
}
