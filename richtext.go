// Package richtext provides a fluent API for normalizing CMS description
// fields and rendering them as HTML, Markdown, terminal text or short
// summaries.
//
// A description arrives either as a plain string with informal markup
// (blank-line paragraphs, "-" or "1." list lines, ad-hoc headings, raw URLs
// and emails, **bold**, *italic* and `code`) or as a Portable Text block
// tree. Both are normalized into one model.Document.
//
// Basic usage:
//
//	html, warnings, err := richtext.From(value).HTML()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", richtext.FormatWarnings(warnings))
//	}
//
// Summaries for collapsed cards:
//
//	short, err := richtext.From(value).WordLimit(30).Truncated()
//
// For advanced use cases, the lower-level builder, render and summary
// packages are also available.
package richtext

import (
	"strings"

	"github.com/tsawler/richtext/htmldoc"
	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/portabletext"
)

// From creates a Content from a value handed over by a CMS client: a string,
// an already-decoded Portable Text value ([]any, []map[string]any,
// map[string]any), raw JSON bytes, or a model.RawValue. Unrecognized values
// are flattened to text rather than rejected.
//
// Example:
//
//	html, _, err := richtext.From("Hello **world**").HTML()
func From(v any) *Content {
	return &Content{
		raw:     portabletext.Value(v),
		options: defaultOptions(),
	}
}

// FromString creates a Content from a plain string description
func FromString(s string) *Content {
	return &Content{
		raw:     model.PlainString(s),
		options: defaultOptions(),
	}
}

// FromJSON creates a Content from Portable Text JSON. Unlike From, malformed
// JSON is an error, reported by the terminal operation.
//
// Example:
//
//	doc, warnings, err := richtext.FromJSON(body).Document()
func FromJSON(data []byte) *Content {
	c := &Content{options: defaultOptions()}
	c.raw, c.err = portabletext.DecodeBytes(data)
	return c
}

// FromHTML creates a Content from an HTML fragment, such as markup
// previously produced by HTML().
func FromHTML(markup string) *Content {
	c := &Content{options: defaultOptions()}
	doc, err := htmldoc.Parse(strings.NewReader(markup))
	if err != nil {
		c.err = err
		return c
	}
	c.raw = portabletext.FromDocument(doc)
	return c
}

// FromDocument creates a Content from an existing document
func FromDocument(doc model.Document) *Content {
	return &Content{
		raw:     portabletext.FromDocument(doc),
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	tree := richtext.Must(portabletext.DecodeString(body))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to a terminal operation such as
// HTML() or Markdown() and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	html := richtext.MustText(richtext.From(value).HTML())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
