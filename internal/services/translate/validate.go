package translate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const maxWordLength = 20

var (
	russianVowels     = "аеёиоуыэюя"
	russianConsonants = "бвгджзйклмнпрстфхцчшщ"
)

// IsValidTranslation runs the quality checks on a translation candidate.
// All checks must pass; a failing candidate is retried and, on exhaustion,
// the original text is used instead.
func IsValidTranslation(original, candidate string) bool {
	candidate = norm.NFC.String(strings.TrimSpace(candidate))
	original = norm.NFC.String(strings.TrimSpace(original))

	if utf8.RuneCountInString(candidate) < 2 {
		return false
	}

	// Length ratio between original and candidate within [1/3, 3]
	origLen := utf8.RuneCountInString(original)
	candLen := utf8.RuneCountInString(candidate)
	if candLen > origLen*3 || candLen*3 < origLen {
		return false
	}

	// Go's regexp has no backreferences, so the run and repetition checks
	// are spelled out by hand.
	if hasCharacterRun(candidate, 4) {
		return false
	}
	if hasSyllableRepetition(candidate) {
		return false
	}

	lower := strings.ToLower(candidate)
	if !strings.ContainsAny(lower, russianVowels) {
		return false
	}
	if !strings.ContainsAny(lower, russianConsonants) {
		return false
	}

	for _, r := range candidate {
		if unicode.IsDigit(r) {
			return false
		}
	}

	for _, word := range strings.Fields(candidate) {
		if utf8.RuneCountInString(word) > maxWordLength {
			return false
		}
	}

	return true
}

// IsCyrillic reports whether text already contains Cyrillic letters and
// therefore needs no translation
func IsCyrillic(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}

// hasCharacterRun reports whether text contains n or more identical
// letters in a row, case-insensitively
func hasCharacterRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range strings.ToLower(text) {
		if !unicode.IsLetter(r) {
			run = 0
			prev = 0
			continue
		}
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// hasSyllableRepetition catches meaningless hyphen-chained output such as
// "ля-ля-ля": three or more identical short segments joined by hyphens
func hasSyllableRepetition(text string) bool {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		parts := strings.Split(word, "-")
		if len(parts) < 3 {
			continue
		}
		first := parts[0]
		if first == "" || utf8.RuneCountInString(first) > 3 {
			continue
		}
		identical := true
		for _, part := range parts[1:] {
			if part != first {
				identical = false
				break
			}
		}
		if identical {
			return true
		}
	}
	return false
}
