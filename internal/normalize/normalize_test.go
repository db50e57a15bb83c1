package normalize

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Basic normalization
		{"lowercase", "GARLIC", "garlic"},
		{"trim whitespace", "  onion  ", "onion"},
		{"collapse spaces", "  Garlic   Powder ", "garlic powder"},
		{"already normalized", "soy sauce", "soy sauce"},

		// Apostrophes are removed, not spaced
		{"ascii apostrophe", "Chef's knife", "chefs knife"},
		{"curly apostrophe", "chef’s knife", "chefs knife"},
		{"backtick", "chef`s knife", "chefs knife"},

		// Punctuation collapses to a single space
		{"hyphen", "stir-fry sauce", "stir fry sauce"},
		{"slash", "salt/pepper", "salt pepper"},
		{"mixed punctuation runs", "eggs -- (large)", "eggs large"},

		// Edge cases
		{"empty string", "", ""},
		{"only spaces", "   ", ""},
		{"only punctuation", "!@#$%", ""},
		{"numbers kept", "7up", "7up"},
		{"unicode dropped", "crème fraîche", "cr me fra che"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.input)
			if got != tt.expected {
				t.Errorf("Key(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKeyIdempotent(t *testing.T) {
	inputs := []string{"  Garlic   Powder ", "Chef's knife", "stir-fry!", "", "Crème"}
	for _, in := range inputs {
		once := Key(in)
		if twice := Key(once); twice != once {
			t.Errorf("Key not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestHasPhrase(t *testing.T) {
	tests := []struct {
		name   string
		norm   string
		phrase string
		want   bool
	}{
		{"exact match", "shampoo", "shampoo", true},
		{"phrase at start", "chicken stock cube", "chicken stock", true},
		{"phrase at end", "tin of coconut milk", "coconut milk", true},
		{"phrase in middle", "large red onion bag", "red onion", true},
		{"no substring match", "shampoo", "ham", false},
		{"no partial word on left", "foxham village", "ham", false},
		{"single word bounded", "ham and cheese", "ham", true},
		{"phrase normalizes first", "garlic powder", "Garlic-Powder", true},
		{"empty phrase", "anything", "", false},
		{"punctuation-only phrase", "anything", "!!!", false},
		{"not present", "soy sauce", "fish sauce", false},
		{"repeat before real match", "hamster ham", "ham", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPhrase(tt.norm, tt.phrase); got != tt.want {
				t.Errorf("HasPhrase(%q, %q) = %v, want %v", tt.norm, tt.phrase, got, tt.want)
			}
		})
	}
}

func TestItemLabel(t *testing.T) {
	if got := ItemLabel("  Red   Bell Pepper "); got != "Red Bell Pepper" {
		t.Errorf("ItemLabel = %q", got)
	}
	if got := ItemLabel(""); got != "" {
		t.Errorf("ItemLabel empty = %q", got)
	}
}
