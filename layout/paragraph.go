package layout

import (
	"regexp"
	"strings"
)

// Paragraph is a run of non-blank lines delimited by blank lines
type Paragraph struct {
	// Lines are the non-blank lines, trailing whitespace removed
	Lines []string

	// Index is the paragraph's position in the source (0-based)
	Index int
}

// ParagraphConfig holds configuration for paragraph splitting
type ParagraphConfig struct {
	// Separator matches the gap between paragraphs.
	// Default: two or more newlines, whitespace-only lines count as blank
	Separator *regexp.Regexp
}

// DefaultParagraphConfig returns sensible default configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		Separator: regexp.MustCompile(`\n(?:[ \t]*\n)+`),
	}
}

// ParagraphDetector splits text into paragraphs
type ParagraphDetector struct {
	config ParagraphConfig
}

// NewParagraphDetector creates a new paragraph detector with default configuration
func NewParagraphDetector() *ParagraphDetector {
	return &ParagraphDetector{
		config: DefaultParagraphConfig(),
	}
}

// NewParagraphDetectorWithConfig creates a paragraph detector with custom configuration
func NewParagraphDetectorWithConfig(config ParagraphConfig) *ParagraphDetector {
	if config.Separator == nil {
		config.Separator = DefaultParagraphConfig().Separator
	}
	return &ParagraphDetector{
		config: config,
	}
}

// Detect splits s into paragraphs. s is expected to use "\n" line endings.
// Paragraphs made only of blank lines are dropped.
func (d *ParagraphDetector) Detect(s string) []Paragraph {
	var paragraphs []Paragraph
	for _, chunk := range d.config.Separator.Split(s, -1) {
		lines := splitLines(chunk)
		if len(lines) == 0 {
			continue
		}
		paragraphs = append(paragraphs, Paragraph{
			Lines: lines,
			Index: len(paragraphs),
		})
	}
	return paragraphs
}

// Raw splits s on blank lines and returns each paragraph's untouched text,
// trimmed of surrounding whitespace. Blank paragraphs are dropped.
func (d *ParagraphDetector) Raw(s string) []string {
	var out []string
	for _, chunk := range d.config.Separator.Split(s, -1) {
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// splitLines splits a paragraph on single newlines, dropping blank lines
func splitLines(chunk string) []string {
	var lines []string
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// SplitParagraphs splits s with the default paragraph detector
func SplitParagraphs(s string) []Paragraph {
	return NewParagraphDetector().Detect(s)
}

// LineCount returns the number of lines in the paragraph
func (p *Paragraph) LineCount() int {
	return len(p.Lines)
}

// Text returns the paragraph lines joined by newlines
func (p *Paragraph) Text() string {
	return strings.Join(p.Lines, "\n")
}

// IsEmpty returns true if the paragraph has no lines
func (p *Paragraph) IsEmpty() bool {
	return len(p.Lines) == 0
}
