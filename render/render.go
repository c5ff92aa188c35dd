// Package render maps a model.Document onto host UI nodes.
//
// The engine does not know what a UI node is. A host supplies a [Builders]
// value with one function per block kind and per mark, and [Render] walks the
// document calling them. The same document can therefore become HTML nodes,
// Markdown strings or styled terminal output (see packages htmldoc, mddoc and
// termdoc).
//
// Builders may be left nil. Missing mark builders fall back to Text, missing
// Heading and Blockquote builders fall back to Paragraph, and a missing
// NumberedList falls back to BulletList and then to a Paragraph holding the
// items separated by line breaks. Rendering never fails.
package render

import "github.com/tsawler/richtext/model"

// Item is a rendered list item
type Item[N any] struct {
	// Children are the item's rendered spans
	Children []N

	// Level is the nesting level, 1 for top-level items
	Level int
}

// Builders supplies the host constructors for each document variant
type Builders[N any] struct {
	// Unmarked content
	Text      func(text string) N
	LineBreak func() N

	// Marks
	Bold   func(text string) N
	Italic func(text string) N
	Code   func(text string) N
	Link   func(text, href string) N
	Mailto func(text, address string) N

	// Blocks
	Heading      func(level int, children []N) N
	Paragraph    func(children []N) N
	BulletList   func(items []Item[N]) N
	NumberedList func(items []Item[N]) N
	Blockquote   func(children []N) N
}

// Render renders every block of doc. The result has exactly one node per
// block, in document order.
func Render[N any](doc model.Document, b Builders[N]) []N {
	out := make([]N, 0, len(doc))
	for _, block := range doc {
		out = append(out, RenderBlock(block, b))
	}
	return out
}

// RenderBlock renders a single block
func RenderBlock[N any](block model.Block, b Builders[N]) N {
	switch v := block.(type) {
	case *model.Heading:
		children := RenderSpans(v.Spans, b)
		if b.Heading != nil {
			return b.Heading(v.Level, children)
		}
		return paragraph(children, b)
	case *model.Paragraph:
		return paragraph(RenderSpans(v.Spans, b), b)
	case *model.Blockquote:
		children := RenderSpans(v.Spans, b)
		if b.Blockquote != nil {
			return b.Blockquote(children)
		}
		return paragraph(children, b)
	case *model.BulletList:
		return bulletList(renderItems(v.Items, b), b)
	case *model.NumberedList:
		items := renderItems(v.Items, b)
		if b.NumberedList != nil {
			return b.NumberedList(items)
		}
		return bulletList(items, b)
	}
	var zero N
	return zero
}

// RenderSpans renders inline spans in order
func RenderSpans[N any](spans []model.Span, b Builders[N]) []N {
	out := make([]N, 0, len(spans))
	for _, s := range spans {
		out = append(out, RenderSpan(s, b))
	}
	return out
}

// RenderSpan renders one span
func RenderSpan[N any](s model.Span, b Builders[N]) N {
	switch s.Mark.Kind {
	case model.MarkBold:
		if b.Bold != nil {
			return b.Bold(s.Text)
		}
	case model.MarkItalic:
		if b.Italic != nil {
			return b.Italic(s.Text)
		}
	case model.MarkCode:
		if b.Code != nil {
			return b.Code(s.Text)
		}
	case model.MarkLink:
		if b.Link != nil {
			return b.Link(s.Text, s.Mark.Href)
		}
	case model.MarkMailto:
		if b.Mailto != nil {
			return b.Mailto(s.Text, s.Mark.Href)
		}
	default:
		if s.IsLineBreak() {
			return lineBreak(b)
		}
	}
	return text(s.Text, b)
}

func renderItems[N any](items []model.ListItem, b Builders[N]) []Item[N] {
	out := make([]Item[N], 0, len(items))
	for _, it := range items {
		out = append(out, Item[N]{Children: RenderSpans(it.Spans, b), Level: it.Level})
	}
	return out
}

func bulletList[N any](items []Item[N], b Builders[N]) N {
	if b.BulletList != nil {
		return b.BulletList(items)
	}
	var children []N
	for i, it := range items {
		if i > 0 {
			children = append(children, lineBreak(b))
		}
		children = append(children, it.Children...)
	}
	return paragraph(children, b)
}

func paragraph[N any](children []N, b Builders[N]) N {
	if b.Paragraph != nil {
		return b.Paragraph(children)
	}
	var zero N
	return zero
}

func text[N any](s string, b Builders[N]) N {
	if b.Text != nil {
		return b.Text(s)
	}
	var zero N
	return zero
}

func lineBreak[N any](b Builders[N]) N {
	if b.LineBreak != nil {
		return b.LineBreak()
	}
	return text("\n", b)
}
