package layout

import (
	"strings"

	"github.com/tsawler/richtext/inline"
	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/text"
)

// Decision records which classification rule produced a paragraph's blocks
type Decision int

const (
	DecisionNone        Decision = iota // paragraph was empty and dropped
	DecisionList                        // rule 1: every line is a list line
	DecisionHeading                     // rule 2: single heading line
	DecisionHeadingList                 // rule 3: heading line followed by a list
	DecisionParagraph                   // rule 4: fallback
)

// String returns a string representation of the decision
func (d Decision) String() string {
	switch d {
	case DecisionList:
		return "list"
	case DecisionHeading:
		return "heading"
	case DecisionHeadingList:
		return "heading+list"
	case DecisionParagraph:
		return "paragraph"
	default:
		return "none"
	}
}

// ClassifierConfig holds configuration options for the classifier.
// Each detection component has its own sub-configuration.
type ClassifierConfig struct {
	// Paragraph splitting configuration
	Paragraph ParagraphConfig

	// List detection configuration
	List ListConfig

	// Heading detection configuration
	Heading HeadingConfig

	// Inline tokenizer configuration
	Tokenizer inline.TokenizerConfig
}

// DefaultClassifierConfig returns a configuration with the standard heuristics
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Paragraph: DefaultParagraphConfig(),
		List:      DefaultListConfig(),
		Heading:   DefaultHeadingConfig(),
		Tokenizer: inline.DefaultTokenizerConfig(),
	}
}

// Classification describes how one paragraph was classified
type Classification struct {
	// Index is the paragraph's position in the source (0-based)
	Index int

	// Lines are the paragraph's lines as seen by the classifier
	Lines []string

	// Decision is the rule that fired
	Decision Decision

	// HeadingRules lists the heading heuristics that matched (rule 2 only)
	HeadingRules []HeadingRule

	// ListType is the detected list type (rules 1 and 3)
	ListType ListType

	// BlockCount is the number of blocks produced
	BlockCount int
}

// AnalysisResult contains the classified document and per-paragraph decisions
type AnalysisResult struct {
	Document        model.Document
	Classifications []Classification
}

// Classifier turns paragraphs of informal text into blocks. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	config     ClassifierConfig
	paragraphs *ParagraphDetector
	lists      *ListDetector
	headings   *HeadingDetector
	tokenizer  *inline.Tokenizer
}

// NewClassifier creates a classifier with default configuration
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultClassifierConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{
		config:     config,
		paragraphs: NewParagraphDetectorWithConfig(config.Paragraph),
		lists:      NewListDetectorWithConfig(config.List),
		headings:   NewHeadingDetectorWithConfig(config.Heading),
		tokenizer:  inline.NewTokenizerWithConfig(config.Tokenizer),
	}
}

// Paragraphs returns the paragraph detector used by the classifier
func (c *Classifier) Paragraphs() *ParagraphDetector {
	return c.paragraphs
}

// ClassifyText normalizes s, splits it into paragraphs and classifies each one
func (c *Classifier) ClassifyText(s string) model.Document {
	return c.Analyze(s).Document
}

// Analyze is like ClassifyText but also reports the decision per paragraph
func (c *Classifier) Analyze(s string) *AnalysisResult {
	result := &AnalysisResult{}
	for _, para := range c.paragraphs.Detect(text.Normalize(s)) {
		blocks, cl := c.classify(para.Lines)
		cl.Index = para.Index
		result.Document = append(result.Document, blocks...)
		result.Classifications = append(result.Classifications, cl)
	}
	return result
}

// Classify classifies the lines of one paragraph. Blank lines are ignored;
// a paragraph without content yields no blocks.
func (c *Classifier) Classify(lines []string) []model.Block {
	blocks, _ := c.classify(lines)
	return blocks
}

func (c *Classifier) classify(lines []string) ([]model.Block, Classification) {
	lines = nonBlank(lines)
	cl := Classification{Lines: lines}
	if len(lines) == 0 {
		return nil, cl
	}

	// Rule 1: every line is a list line
	if list, ok := c.lists.Detect(lines); ok {
		cl.Decision = DecisionList
		cl.ListType = list.Type
		cl.BlockCount = 1
		return []model.Block{c.buildList(list)}, cl
	}

	// Rule 2: a single heading line
	if len(lines) == 1 {
		if rules := c.headings.Rules(lines[0]); len(rules) > 0 {
			cl.Decision = DecisionHeading
			cl.HeadingRules = rules
			cl.BlockCount = 1
			return []model.Block{c.buildHeading(lines[0])}, cl
		}
	}

	// Rule 3: heading line followed by a list
	if len(lines) >= 2 && !c.lists.IsListLine(lines[0]) && c.lists.IsListLine(lines[1]) {
		if list, ok := c.lists.Detect(lines[1:]); ok {
			cl.Decision = DecisionHeadingList
			cl.ListType = list.Type
			cl.BlockCount = 2
			return []model.Block{c.buildHeading(lines[0]), c.buildList(list)}, cl
		}
	}

	// Rule 4: plain paragraph
	cl.Decision = DecisionParagraph
	cl.BlockCount = 1
	return []model.Block{c.buildParagraph(lines)}, cl
}

func (c *Classifier) buildHeading(line string) model.Block {
	return model.NewHeading(c.headings.Level(), c.tokenizer.Tokenize(strings.TrimSpace(line)))
}

func (c *Classifier) buildList(list *DetectedList) model.Block {
	items := make([]model.ListItem, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, model.NewListItem(c.tokenizer.Tokenize(item), 1))
	}
	if list.Type == ListTypeNumbered {
		return &model.NumberedList{Items: items}
	}
	return &model.BulletList{Items: items}
}

func (c *Classifier) buildParagraph(lines []string) model.Block {
	var spans []model.Span
	for i, line := range lines {
		if i > 0 {
			spans = append(spans, model.LineBreak())
		}
		spans = append(spans, c.tokenizer.Tokenize(strings.TrimSpace(line))...)
	}
	return model.NewParagraph(spans)
}

func nonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// ParagraphCount returns the number of non-empty paragraphs analyzed
func (r *AnalysisResult) ParagraphCount() int {
	return len(r.Classifications)
}

// CountByDecision returns how many paragraphs were classified with d
func (r *AnalysisResult) CountByDecision(d Decision) int {
	n := 0
	for _, cl := range r.Classifications {
		if cl.Decision == d {
			n++
		}
	}
	return n
}
