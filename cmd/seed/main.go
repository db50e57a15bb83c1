// Package main provides a tool to write a starter meals.json catalog.
//
// Usage:
//
//	go run ./cmd/seed                         # writes ./meals.json
//	go run ./cmd/seed -out ~/MealPlanner/data/meals.json
//	go run ./cmd/seed -force                  # overwrite an existing file
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
)

var (
	out   = flag.String("out", "meals.json", "Path to write the catalog file")
	force = flag.Bool("force", false, "Overwrite the file if it already exists")
)

type catalogFile struct {
	Meals   []domain.Meal `json:"meals"`
	Staples []string      `json:"staples"`
}

func main() {
	flag.Parse()

	if !*force {
		if _, err := os.Stat(*out); err == nil {
			log.Fatalf("%s already exists, use -force to overwrite", *out)
		}
	}

	data, err := json.MarshalIndent(sampleCatalog(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Printf("Wrote starter catalog to %s\n", *out)
}

func sampleCatalog() catalogFile {
	return catalogFile{
		Meals: []domain.Meal{
			{
				Name:        "Pepper Steak Stir Fry",
				MainDish:    "Beef",
				SideDish:    "Rice",
				Ingredients: []string{"Steak", "Red Bell Pepper", "Garlic", "Soy Sauce", "Rice"},
			},
			{
				Name:        "Chicken Curry",
				MainDish:    "Chicken",
				SideDish:    "Rice",
				Ingredients: []string{"Chicken Thighs", "Onion", "Garlic", "Curry Paste", "Coconut Milk", "Rice"},
			},
			{
				Name:        "Spaghetti Bolognese",
				MainDish:    "Beef",
				SideDish:    "Pasta",
				Ingredients: []string{"Beef Mince", "Onion", "Garlic", "Tinned Tomatoes", "Spaghetti", "Parmesan"},
			},
			{
				Name:        "Fish Tacos",
				MainDish:    "Fish",
				SideDish:    "Wraps",
				Ingredients: []string{"White Fish", "Tortilla", "Red Cabbage", "Lime", "Sour Cream"},
			},
			{
				Name:        "Veggie Omelette",
				MainDish:    "Eggs",
				SideDish:    "Salad",
				Ingredients: []string{"Eggs", "Cheddar", "Mushroom", "Spinach", "Lettuce"},
			},
		},
		Staples: []string{"Milk", "Bread", "Butter", "Toilet Roll"},
	}
}
