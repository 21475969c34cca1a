package translate

import "testing"

func TestIsValidTranslation(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		candidate string
		valid     bool
	}{
		{"real name", "Christopher Nolan", "Кристофер Нолан", true},
		{"single letter", "Christopher Nolan", "К", false},
		{"too long", "Tom", "Очень длинный перевод имени", false},
		{"too short", "Christopher Nolan", "Том", false},
		{"character run", "Something", "Кооооошмар", false},
		{"syllable repetition", "Lalala", "ля-ля-ля", false},
		{"no vowels", "Mr Smith", "Мкртчн", false},
		{"no consonants", "Aaa", "Оие", false},
		{"contains digits", "Agent 007", "Агент 007", false},
		{"overlong word", "Supercalifragilistic", "Суперкалифражилистикэкспиалидошес", false},
		{"latin only", "John Doe", "John Doe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTranslation(tt.original, tt.candidate); got != tt.valid {
				t.Errorf("IsValidTranslation(%q, %q) = %v, want %v",
					tt.original, tt.candidate, got, tt.valid)
			}
		})
	}
}

func TestIsCyrillic(t *testing.T) {
	if !IsCyrillic("Война и мир") {
		t.Error("Expected Cyrillic text to be detected")
	}
	if IsCyrillic("War and Peace") {
		t.Error("Latin text should not be detected as Cyrillic")
	}
	if !IsCyrillic("The Идиот") {
		t.Error("Mixed text with Cyrillic letters should be detected")
	}
	if IsCyrillic("") {
		t.Error("Empty text should not be detected as Cyrillic")
	}
}

func TestHasCharacterRun(t *testing.T) {
	if !hasCharacterRun("Кооооот", 4) {
		t.Error("Expected run of 5 identical letters to be detected")
	}
	if hasCharacterRun("Кооот", 4) {
		t.Error("Run of 3 should not trigger the threshold of 4")
	}
	// Case-insensitive
	if !hasCharacterRun("КоОоОт", 4) {
		t.Error("Expected case-insensitive run detection")
	}
	// Non-letters reset the run
	if hasCharacterRun("о-о-о-о", 4) {
		t.Error("Hyphen-separated letters are not a run")
	}
}
