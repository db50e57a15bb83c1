// Package shopping derives the aggregated shopping list from the current
// plan, staple items, hand-added extras, and per-item overrides.
package shopping

import "github.com/GamingGoku/ProductionMealApp/internal/normalize"

// Category names as displayed. CategoriesOrder fixes the section order of the
// rendered list.
const (
	CatProduce    = "Produce"
	CatMeatFish   = "Meat & Fish"
	CatDairyEggs  = "Dairy & Eggs"
	CatPantry     = "Pantry"
	CatHousehold  = "Household"
	CatToiletries = "Toiletries"
	CatCleaning   = "Cleaning"
	CatOther      = "Other"
)

// CategoriesOrder is the canonical display order.
var CategoriesOrder = []string{
	CatProduce,
	CatMeatFish,
	CatDairyEggs,
	CatPantry,
	CatHousehold,
	CatToiletries,
	CatCleaning,
	CatOther,
}

// ValidCategory reports whether name is one of the known categories.
func ValidCategory(name string) bool {
	for _, c := range CategoriesOrder {
		if c == name {
			return true
		}
	}
	return false
}

// Keyword tables matched as whole words or phrases against the normalized
// item name. Multi-word entries match as contiguous phrases.
var (
	produceWords = []string{
		"onion", "garlic", "pepper", "lime", "lemon", "broccoli", "courgette",
		"zucchini", "mushroom", "spinach", "lettuce", "cucumber", "avocado",
		"potato", "carrot", "tomato", "basil", "spring onion", "green onion",
		"scallion", "pepper", "chilli", "chili", "ginger",
	}
	dairyWords = []string{
		"milk", "cream", "yoghurt", "yogurt", "butter", "cheese", "parmesan",
		"mozzarella", "egg", "eggs",
	}
	proteinWords = []string{
		"beef", "steak", "chicken", "pork", "ham", "bacon", "fish", "salmon",
		"tuna", "prawn", "prawns", "shrimp", "mince", "sausages", "sausage",
		"burger", "hamburger", "pepperoni", "hot dog", "hot dogs",
	}
	pantryWords = []string{
		"soy sauce", "vinegar", "oil", "rice", "noodle", "flour", "salt",
		"sugar", "pasta", "noodles", "lentil", "beans", "kidney beans",
		"chickpeas", "tinned", "canned", "tin", "jar", "pesto", "mayonnaise",
		"ketchup", "mustard", "bread", "wrap", "tortilla", "stock", "broth",
		"stock cube", "stock cubes",
	}
	householdWords = []string{
		"bin bag", "bin bags", "foil", "cling film", "batteries", "light bulb",
		"kitchen roll", "paper towel", "bin liners", "zip lock", "baking paper",
		"tin foil",
	}
	toiletriesWords = []string{
		"shampoo", "conditioner", "toothpaste", "toothbrush", "deodorant",
		"shower gel", "wipes",
	}
	cleaningWords = []string{
		"bleach", "detergent", "dishwasher", "washing up", "washing powder",
		"fabric softener", "sponges", "spray", "cleaner", "toilet cleaner",
	}

	// nonFreshModifiers demote produce matches to Other: "garlic granules"
	// is a spice-rack item, not fresh garlic.
	nonFreshModifiers = []string{
		"powder", "ground", "granules", "flakes", "dried", "dry", "frozen",
		"tinned", "canned", "jar", "paste", "sauce", "stock", "broth", "cube",
		"seasoning", "spice", "mix",
	}

	spiceWords = []string{
		"spice", "spices", "seasoning", "powder", "ground", "granules",
		"flakes", "herb", "herbs", "curry", "paprika", "cumin", "turmeric",
		"garam masala", "oregano", "thyme", "rosemary",
	}

	stockWords = []string{"stock", "broth", "stock cube", "stock cubes"}
)

// matchesAny reports whether the normalized name contains any of the words
// as a whole word or phrase.
func matchesAny(norm string, words []string) bool {
	for _, w := range words {
		if normalize.HasPhrase(norm, w) {
			return true
		}
	}
	return false
}

// CategoryOf classifies an item name into one of the display categories.
// Rules apply in a fixed priority order; the first match wins.
func CategoryOf(name string) string {
	norm := normalize.Key(name)
	if norm == "" {
		return CatOther
	}

	// Literal powder forms of produce go to the spice rack.
	if normalize.HasPhrase(norm, "garlic powder") || normalize.HasPhrase(norm, "onion powder") {
		return CatOther
	}
	if normalize.HasPhrase(norm, "coconut milk") {
		return CatPantry
	}

	// Non-food categories beat food word overlaps ("toilet cleaner" must
	// never land in a food aisle).
	if matchesAny(norm, cleaningWords) {
		return CatCleaning
	}
	if matchesAny(norm, toiletriesWords) {
		return CatToiletries
	}
	if matchesAny(norm, householdWords) {
		return CatHousehold
	}

	// Stock and broth beat the protein words they usually contain.
	if matchesAny(norm, stockWords) {
		return CatPantry
	}
	if matchesAny(norm, spiceWords) {
		return CatOther
	}
	if matchesAny(norm, dairyWords) {
		return CatDairyEggs
	}
	if matchesAny(norm, proteinWords) {
		return CatMeatFish
	}
	if matchesAny(norm, produceWords) {
		if matchesAny(norm, nonFreshModifiers) {
			return CatOther
		}
		return CatProduce
	}
	if matchesAny(norm, pantryWords) {
		return CatPantry
	}
	return CatOther
}
