package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize converts line endings to "\n" and composes s to NFC
func Normalize(s string) string {
	if strings.IndexByte(s, '\r') >= 0 {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	return norm.NFC.String(s)
}

// Words splits s on runs of Unicode whitespace
func Words(s string) []string {
	return strings.Fields(s)
}

// CountWords returns the number of whitespace-separated words in s
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// RuneCount returns the number of characters in s
func RuneCount(s string) int {
	return len([]rune(s))
}

// HasLetter reports whether s contains at least one letter
func HasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

// IsUpperText reports whether s has at least one letter and no lower-case
// letters. Digits, spaces and punctuation are allowed.
func IsUpperText(s string) bool {
	if !HasLetter(s) {
		return false
	}
	return strings.IndexFunc(s, unicode.IsLower) < 0
}

// newTitleCaser returns a caser that upper-cases the first letter of each
// word and leaves the rest alone. Casers are stateful, so callers must not
// share one between goroutines.
func newTitleCaser() cases.Caser {
	return cases.Title(language.Und, cases.NoLower)
}

// IsTitleWord reports whether word is already Title-Case, meaning that
// title-casing it changes nothing. Words without letters are never Title-Case.
func IsTitleWord(word string) bool {
	return isTitleWord(newTitleCaser(), word)
}

func isTitleWord(c cases.Caser, word string) bool {
	if !HasLetter(word) {
		return false
	}
	return c.String(word) == word
}

// TitleCaseRatio returns the share of Title-Case words among words (0 for none)
func TitleCaseRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	c := newTitleCaser()
	titled := 0
	for _, w := range words {
		if isTitleWord(c, w) {
			titled++
		}
	}
	return float64(titled) / float64(len(words))
}
