package richtext

import (
	"maps"

	"github.com/tsawler/richtext/builder"
	"github.com/tsawler/richtext/htmldoc"
	"github.com/tsawler/richtext/layout"
	"github.com/tsawler/richtext/mddoc"
	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/portabletext"
	"github.com/tsawler/richtext/summary"
	"github.com/tsawler/richtext/termdoc"
)

// Content provides a fluent interface for building and rendering a
// description. Each configuration method returns a new Content instance,
// making it safe for concurrent use and allowing method chaining.
type Content struct {
	raw     model.RawValue
	options contentOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Content with a deep copy of options.
func (c *Content) clone() *Content {
	return &Content{
		raw:     c.raw,
		options: c.options.clone(),
		err:     c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Content instance)
// ============================================================================

// WordLimit sets the word count used by Truncated and Excerpt.
// Negative values count as zero.
//
// Example:
//
//	short, _ := richtext.From(value).WordLimit(12).Truncated()
func (c *Content) WordLimit(n int) *Content {
	newContent := c.clone()
	newContent.options.wordLimit = n
	return newContent
}

// Ellipsis sets the marker appended to truncated text.
func (c *Content) Ellipsis(s string) *Content {
	newContent := c.clone()
	newContent.options.ellipsis = s
	return newContent
}

// HeadingLevel sets the level given to headings detected in plain strings.
// Block trees carry their own levels.
func (c *Content) HeadingLevel(level int) *Content {
	newContent := c.clone()
	newContent.options.heading.Level = level
	return newContent
}

// Headings replaces the heading heuristics used for plain strings.
func (c *Content) Headings(config layout.HeadingConfig) *Content {
	newContent := c.clone()
	newContent.options.heading = config
	return newContent
}

// Sanitize passes HTML output through the sanitizing policy.
func (c *Content) Sanitize() *Content {
	newContent := c.clone()
	newContent.options.html.Sanitize = true
	return newContent
}

// SameTab keeps external links in the current tab.
func (c *Content) SameTab() *Content {
	newContent := c.clone()
	newContent.options.html.ExternalLinksNewTab = false
	return newContent
}

// Classes sets CSS classes per HTML tag, e.g. {"h3": "section-title"}.
// Multiple calls are cumulative.
func (c *Content) Classes(classes map[string]string) *Content {
	newContent := c.clone()
	if newContent.options.html.Classes == nil {
		newContent.options.html.Classes = make(map[string]string, len(classes))
	}
	maps.Copy(newContent.options.html.Classes, classes)
	return newContent
}

// MarkdownOptions replaces the Markdown rendering options.
func (c *Content) MarkdownOptions(opts mddoc.Options) *Content {
	newContent := c.clone()
	newContent.options.markdown = opts
	return newContent
}

// TerminalStyles replaces the terminal styles.
func (c *Content) TerminalStyles(styles termdoc.Styles) *Content {
	newContent := c.clone()
	newContent.options.terminal = styles
	return newContent
}

// ============================================================================
// Terminal Operations
// ============================================================================

func (c *Content) builder() *builder.Builder {
	cfg := builder.DefaultConfig()
	cfg.Classifier.Heading = c.options.heading
	return builder.NewWithConfig(cfg)
}

// Document builds the document. Warnings describe block tree content that
// was degraded or dropped; the error is only set for input that could not
// be decoded (FromJSON, FromHTML).
//
// Example:
//
//	doc, warnings, err := richtext.From(value).Document()
func (c *Content) Document() (model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	doc, ws := c.builder().BuildWithWarnings(c.raw)
	return doc, fromBuilderWarnings(ws), nil
}

// IsEmpty reports whether the input carries no content at all.
func (c *Content) IsEmpty() bool {
	return c.err == nil && model.IsEmptyRaw(c.raw)
}

// HTML renders the document as an HTML fragment.
//
// Example:
//
//	html, _, err := richtext.From(value).Sanitize().HTML()
func (c *Content) HTML() (string, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return "", nil, err
	}
	out, err := htmldoc.RenderString(doc, c.options.html)
	if err != nil {
		return "", warnings, err
	}
	return out, warnings, nil
}

// Markdown renders the document as Markdown.
func (c *Content) Markdown() (string, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return "", nil, err
	}
	return mddoc.RenderString(doc, c.options.markdown), warnings, nil
}

// Terminal renders the document with lipgloss styles for a terminal.
func (c *Content) Terminal() (string, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return "", nil, err
	}
	return termdoc.RenderString(doc, c.options.terminal), warnings, nil
}

// Text returns the document's plain text, blocks separated by a blank line.
func (c *Content) Text() (string, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return "", nil, err
	}
	return doc.Text(), warnings, nil
}

// PortableText encodes the document as Portable Text JSON.
func (c *Content) PortableText() (string, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return "", nil, err
	}
	out, err := portabletext.EncodeString(portabletext.FromDocument(doc))
	if err != nil {
		return "", warnings, err
	}
	return out, warnings, nil
}

func (c *Content) summarizer() *summary.Summarizer {
	return summary.NewWithConfig(summary.Config{
		Ellipsis: c.options.ellipsis,
		Builder:  c.builder(),
	})
}

// FirstParagraph returns the text of the first paragraph. Plain strings are
// returned as written, markup included.
func (c *Content) FirstParagraph() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.summarizer().FirstParagraphText(c.raw), nil
}

// Truncated returns the first WordLimit words of the whole document,
// followed by the ellipsis when words were cut.
//
// Example:
//
//	short, err := richtext.From(value).WordLimit(30).Truncated()
func (c *Content) Truncated() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.summarizer().TruncateWords(c.raw, c.options.wordLimit), nil
}

// Excerpt returns the first paragraph, falling back to Truncated.
func (c *Content) Excerpt() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.summarizer().Excerpt(c.raw, c.options.wordLimit), nil
}
