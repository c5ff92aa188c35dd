package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/richtext/text"
)

// HeadingRule identifies which heuristic promoted a line to a heading
type HeadingRule int

const (
	HeadingRuleNone      HeadingRule = iota
	HeadingRuleAllCaps               // short, no lower-case letters
	HeadingRuleColon                 // ends with ':'
	HeadingRuleTitleCase             // few words, mostly Title-Case
)

// String returns a string representation of the heading rule
func (r HeadingRule) String() string {
	switch r {
	case HeadingRuleAllCaps:
		return "all-caps"
	case HeadingRuleColon:
		return "colon"
	case HeadingRuleTitleCase:
		return "title-case"
	default:
		return "none"
	}
}

// HeadingConfig holds configuration for heading detection
type HeadingConfig struct {
	// MaxAllCapsLength is the maximum length in characters of an all-caps heading
	// Default: 40
	MaxAllCapsLength int

	// MaxColonLength is the maximum length in characters of a colon-terminated heading
	// Default: 60
	MaxColonLength int

	// MaxTitleCaseWords is the maximum word count of a Title-Case heading
	// Default: 6
	MaxTitleCaseWords int

	// MinTitleCaseRatio is the minimum share of Title-Case words
	// Default: 0.5
	MinTitleCaseRatio float64

	// SentenceTerminators are final characters that rule out the Title-Case
	// heuristic, so "Hello world." stays a paragraph
	// Default: ".!?"
	SentenceTerminators string

	// Level is the heading level given to detected headings
	// Default: 3
	Level int
}

// DefaultHeadingConfig returns sensible default configuration
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MaxAllCapsLength:    40,
		MaxColonLength:      60,
		MaxTitleCaseWords:   6,
		MinTitleCaseRatio:   0.5,
		SentenceTerminators: ".!?",
		Level:               3,
	}
}

// HeadingDetector decides whether a single line is a heading
type HeadingDetector struct {
	config HeadingConfig
}

// NewHeadingDetector creates a new heading detector with default configuration
func NewHeadingDetector() *HeadingDetector {
	return &HeadingDetector{
		config: DefaultHeadingConfig(),
	}
}

// NewHeadingDetectorWithConfig creates a heading detector with custom configuration
func NewHeadingDetectorWithConfig(config HeadingConfig) *HeadingDetector {
	if config.Level < 1 || config.Level > 6 {
		config.Level = DefaultHeadingConfig().Level
	}
	return &HeadingDetector{
		config: config,
	}
}

// Level returns the level assigned to detected headings
func (d *HeadingDetector) Level() int {
	return d.config.Level
}

// IsHeading reports whether line satisfies at least one heading heuristic
func (d *HeadingDetector) IsHeading(line string) bool {
	return len(d.Rules(line)) > 0
}

// Rules returns every heuristic that line satisfies, in rule order
func (d *HeadingDetector) Rules(line string) []HeadingRule {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	var rules []HeadingRule
	length := text.RuneCount(line)

	if text.IsUpperText(line) && length <= d.config.MaxAllCapsLength {
		rules = append(rules, HeadingRuleAllCaps)
	}

	if strings.HasSuffix(line, ":") && length <= d.config.MaxColonLength {
		rules = append(rules, HeadingRuleColon)
	}

	if d.isTitleCaseHeading(line) {
		rules = append(rules, HeadingRuleTitleCase)
	}

	return rules
}

// isTitleCaseHeading checks the word count and Title-Case ratio. Upper-case
// lines are left to the all-caps rule and its length limit.
func (d *HeadingDetector) isTitleCaseHeading(line string) bool {
	if text.IsUpperText(line) {
		return false
	}
	if last, _ := utf8.DecodeLastRuneInString(line); strings.ContainsRune(d.config.SentenceTerminators, last) {
		return false
	}

	words := text.Words(line)
	if len(words) == 0 || len(words) > d.config.MaxTitleCaseWords {
		return false
	}

	return text.TitleCaseRatio(words) >= d.config.MinTitleCaseRatio
}
