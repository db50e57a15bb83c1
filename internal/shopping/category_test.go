package shopping

import "testing"

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		item string
		want string
	}{
		{"fresh onion", "Onion", CatProduce},
		{"fresh garlic", "2 cloves garlic", CatProduce},
		{"garlic powder is a spice", "Garlic Powder", CatOther},
		{"onion powder is a spice", "onion powder", CatOther},
		{"garlic granules demoted", "garlic granules", CatOther},
		{"frozen spinach demoted", "frozen spinach", CatOther},
		{"coconut milk is not dairy", "Coconut milk", CatPantry},
		{"chicken", "Chicken breast", CatMeatFish},
		{"chicken stock is pantry", "Chicken stock", CatPantry},
		{"beef broth is pantry", "beef broth", CatPantry},
		{"stock cubes", "stock cubes", CatPantry},
		{"ham", "Ham", CatMeatFish},
		{"shampoo not ham", "Shampoo", CatToiletries},
		{"milk", "Milk", CatDairyEggs},
		{"eggs", "6 eggs", CatDairyEggs},
		{"toilet cleaner over food words", "toilet cleaner", CatCleaning},
		{"washing powder is cleaning", "washing powder", CatCleaning},
		{"bin bags", "bin bags", CatHousehold},
		{"tin foil", "tin foil", CatHousehold},
		{"paprika is a spice", "smoked paprika", CatOther},
		{"dried oregano", "dried oregano", CatOther},
		{"soy sauce", "Soy Sauce", CatPantry},
		{"pasta", "penne pasta", CatPantry},
		{"unknown item", "birthday candles", CatOther},
		{"empty name", "", CatOther},
		{"whitespace only", "   ", CatOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryOf(tt.item); got != tt.want {
				t.Errorf("CategoryOf(%q) = %q, want %q", tt.item, got, tt.want)
			}
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range CategoriesOrder {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	if ValidCategory("Snacks") {
		t.Error("ValidCategory(\"Snacks\") = true, want false")
	}
	if ValidCategory("") {
		t.Error("ValidCategory(\"\") = true, want false")
	}
}
