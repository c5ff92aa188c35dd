package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// HTMLDir returns the value for an HTML dir attribute ("ltr", "rtl" or "auto")
func (d Direction) HTMLDir() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	default:
		return "auto"
	}
}

// DetectDirection analyzes a string and returns its dominant text direction.
// It counts strong directional characters and returns the direction with the
// higher count, or Neutral if no strong directional characters are present.
func DetectDirection(s string) Direction {
	ltrCount := 0
	rtlCount := 0

	for _, r := range s {
		switch GetCharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// GetCharDirection returns the bidi strength of a single rune using the
// Unicode Bidi_Class property. Only strong classes (L, R, AL) are directional.
func GetCharDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return LTR
	case bidi.R, bidi.AL:
		return RTL
	default:
		return Neutral
	}
}
