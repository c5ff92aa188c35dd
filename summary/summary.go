// Package summary derives the short plain-text views of a description used
// by collapsed cards: the first paragraph and the first N words.
package summary

import (
	"strings"

	"github.com/tsawler/richtext/builder"
	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/text"
)

// DefaultWordCount is the word limit used by collapsed cards
const DefaultWordCount = 30

// DefaultEllipsis is appended to truncated text
const DefaultEllipsis = "…"

// Config holds configuration for a Summarizer
type Config struct {
	// Ellipsis is appended when text is cut short
	Ellipsis string

	// Builder turns raw values into documents. Nil uses the default builder.
	Builder *builder.Builder
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Ellipsis: DefaultEllipsis,
	}
}

// Summarizer produces plain-text summaries of raw values
type Summarizer struct {
	config  Config
	builder *builder.Builder
}

// New creates a Summarizer with default configuration
func New() *Summarizer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Summarizer with custom configuration
func NewWithConfig(config Config) *Summarizer {
	b := config.Builder
	if b == nil {
		b = builder.New()
	}
	return &Summarizer{config: config, builder: b}
}

// FirstParagraphText returns the text of the first paragraph. Plain strings
// take a fast path that returns the first blank-line-delimited chunk as
// written, markers included. Block trees are built and the first block's
// flattened text is returned.
func (s *Summarizer) FirstParagraphText(raw model.RawValue) string {
	if model.IsEmptyRaw(raw) {
		return ""
	}

	if str, ok := raw.(model.PlainString); ok {
		paragraphs := s.builder.Classifier().Paragraphs().Raw(text.Normalize(string(str)))
		if len(paragraphs) == 0 {
			return ""
		}
		return paragraphs[0]
	}

	for _, block := range s.builder.Build(raw) {
		if t := strings.TrimSpace(block.Text()); t != "" {
			return t
		}
	}
	return ""
}

// TruncateWords flattens the whole document and returns its first n words
// followed by the ellipsis when it has more than n words. Shorter text is
// returned unchanged. n below zero counts as zero.
func (s *Summarizer) TruncateWords(raw model.RawValue, n int) string {
	flat := s.builder.Build(raw).Text()
	if strings.TrimSpace(flat) == "" {
		return ""
	}
	if n < 0 {
		n = 0
	}

	words := text.Words(flat)
	if len(words) <= n {
		return flat
	}
	return strings.Join(words[:n], " ") + s.config.Ellipsis
}

// Excerpt returns the first paragraph, falling back to the first n words
func (s *Summarizer) Excerpt(raw model.RawValue, n int) string {
	if first := s.FirstParagraphText(raw); first != "" {
		return first
	}
	return s.TruncateWords(raw, n)
}

var defaultSummarizer = New()

// FirstParagraphText uses the default Summarizer
func FirstParagraphText(raw model.RawValue) string {
	return defaultSummarizer.FirstParagraphText(raw)
}

// TruncateWords uses the default Summarizer
func TruncateWords(raw model.RawValue, n int) string {
	return defaultSummarizer.TruncateWords(raw, n)
}

// Excerpt uses the default Summarizer
func Excerpt(raw model.RawValue, n int) string {
	return defaultSummarizer.Excerpt(raw, n)
}
