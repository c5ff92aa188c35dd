package layout

import (
	"regexp"
	"strings"
)

// ListType represents the type of list
type ListType int

const (
	ListTypeUnknown  ListType = iota
	ListTypeBullet            // Bullet points (-, *)
	ListTypeNumbered          // Numbered (1., 2., 3.)
)

// String returns a string representation of the list type
func (t ListType) String() string {
	switch t {
	case ListTypeBullet:
		return "bullet"
	case ListTypeNumbered:
		return "numbered"
	default:
		return "unknown"
	}
}

// ListConfig holds configuration for list detection
type ListConfig struct {
	// BulletPattern matches a bullet marker prefix.
	// Default: optional indentation, "*" or "-", then whitespace
	BulletPattern *regexp.Regexp

	// NumberedPattern matches a numeric marker prefix.
	// Default: optional indentation, digits, ".", then whitespace
	NumberedPattern *regexp.Regexp
}

// DefaultListConfig returns sensible default configuration
func DefaultListConfig() ListConfig {
	return ListConfig{
		BulletPattern:   regexp.MustCompile(`^\s*(\*|-)\s+`),
		NumberedPattern: regexp.MustCompile(`^\s*\d+\.\s+`),
	}
}

// DetectedList is a paragraph recognized as a list
type DetectedList struct {
	// Type is bullet unless every line is numbered
	Type ListType

	// Items are the item texts with their markers stripped
	Items []string
}

// ListDetector recognizes list paragraphs
type ListDetector struct {
	config ListConfig
}

// NewListDetector creates a new list detector with default configuration
func NewListDetector() *ListDetector {
	return &ListDetector{
		config: DefaultListConfig(),
	}
}

// NewListDetectorWithConfig creates a list detector with custom configuration
func NewListDetectorWithConfig(config ListConfig) *ListDetector {
	def := DefaultListConfig()
	if config.BulletPattern == nil {
		config.BulletPattern = def.BulletPattern
	}
	if config.NumberedPattern == nil {
		config.NumberedPattern = def.NumberedPattern
	}
	return &ListDetector{
		config: config,
	}
}

// MatchMarker checks whether line starts with a list marker and returns the
// marker type and the line content without the marker
func (d *ListDetector) MatchMarker(line string) (ListType, string, bool) {
	if loc := d.config.BulletPattern.FindStringIndex(line); loc != nil {
		return ListTypeBullet, strings.TrimSpace(line[loc[1]:]), true
	}
	if loc := d.config.NumberedPattern.FindStringIndex(line); loc != nil {
		return ListTypeNumbered, strings.TrimSpace(line[loc[1]:]), true
	}
	return ListTypeUnknown, "", false
}

// IsListLine reports whether line starts with a list marker
func (d *ListDetector) IsListLine(line string) bool {
	_, _, ok := d.MatchMarker(line)
	return ok
}

// Detect classifies lines as a list. It is all-or-nothing: a single line
// without a marker means the lines are not a list. The list is numbered only
// when every line has a numeric marker.
func (d *ListDetector) Detect(lines []string) (*DetectedList, bool) {
	if len(lines) == 0 {
		return nil, false
	}

	list := &DetectedList{
		Type:  ListTypeNumbered,
		Items: make([]string, 0, len(lines)),
	}
	for _, line := range lines {
		listType, content, ok := d.MatchMarker(line)
		if !ok {
			return nil, false
		}
		if listType != ListTypeNumbered {
			list.Type = ListTypeBullet
		}
		list.Items = append(list.Items, content)
	}
	return list, true
}

// ItemCount returns the number of items in the list
func (l *DetectedList) ItemCount() int {
	return len(l.Items)
}
