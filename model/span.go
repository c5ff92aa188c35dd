package model

import (
	"net/url"
	"strings"
)

// MarkKind represents the kind of inline annotation carried by a span
type MarkKind int

const (
	MarkNone   MarkKind = iota // Plain text
	MarkBold                   // **bold** or Portable Text "strong"
	MarkItalic                 // *italic* or Portable Text "em"
	MarkCode                   // `code`
	MarkLink                   // URL link, Href holds the destination
	MarkMailto                 // Email address, Href holds the address
)

// String returns a string representation of the mark kind
func (k MarkKind) String() string {
	switch k {
	case MarkNone:
		return "plain"
	case MarkBold:
		return "bold"
	case MarkItalic:
		return "italic"
	case MarkCode:
		return "code"
	case MarkLink:
		return "link"
	case MarkMailto:
		return "mailto"
	default:
		return "unknown"
	}
}

// Mark is an inline annotation. Href is only meaningful for MarkLink
// (destination URL) and MarkMailto (bare email address).
type Mark struct {
	Kind MarkKind
	Href string
}

// Span is a run of inline text with at most one mark
type Span struct {
	Text string
	Mark Mark
}

// Plain creates an unmarked span
func Plain(text string) Span { return Span{Text: text} }

// Bold creates a bold span
func Bold(text string) Span { return Span{Text: text, Mark: Mark{Kind: MarkBold}} }

// Italic creates an italic span
func Italic(text string) Span { return Span{Text: text, Mark: Mark{Kind: MarkItalic}} }

// Code creates an inline code span
func Code(text string) Span { return Span{Text: text, Mark: Mark{Kind: MarkCode}} }

// Link creates a link span whose visible text is text
func Link(text, href string) Span {
	return Span{Text: text, Mark: Mark{Kind: MarkLink, Href: href}}
}

// Mailto creates an email span for address
func Mailto(text, address string) Span {
	return Span{Text: text, Mark: Mark{Kind: MarkMailto, Href: address}}
}

// IsSafeHref reports whether href may be written out as a link destination.
// Relative references and http, https and mailto URLs are allowed; any other
// scheme (javascript:, data:, vbscript:, ...) and unparsable input are not.
func IsSafeHref(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return true
	}
	return false
}

// LineBreak returns the span used for an explicit line break inside a block
func LineBreak() Span { return Span{Text: "\n"} }

// IsPlain reports whether the span carries no mark
func (s Span) IsPlain() bool { return s.Mark.Kind == MarkNone }

// IsLineBreak reports whether the span is an explicit line break
func (s Span) IsLineBreak() bool { return s.Mark.Kind == MarkNone && s.Text == "\n" }

// SpansText concatenates the text of spans. Line breaks contribute "\n".
func SpansText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// cloneSpans returns a copy so that blocks never share span storage
func cloneSpans(in []Span) []Span {
	if in == nil {
		return nil
	}
	out := make([]Span, len(in))
	copy(out, in)
	return out
}
