package model

import "strings"

// BlockKind represents the type of a document block
type BlockKind int

const (
	BlockKindUnknown BlockKind = iota
	BlockKindHeading
	BlockKindParagraph
	BlockKindBulletList
	BlockKindNumberedList
	BlockKindBlockquote
)

func (k BlockKind) String() string {
	switch k {
	case BlockKindHeading:
		return "Heading"
	case BlockKindParagraph:
		return "Paragraph"
	case BlockKindBulletList:
		return "BulletList"
	case BlockKindNumberedList:
		return "NumberedList"
	case BlockKindBlockquote:
		return "Blockquote"
	default:
		return "Unknown"
	}
}

// Block is the interface for all document blocks. The set of implementations
// is closed: Heading, Paragraph, BulletList, NumberedList and Blockquote.
type Block interface {
	Kind() BlockKind
	// Text returns the flattened plain text of the block
	Text() string

	isBlock()
}

// Heading represents a heading
type Heading struct {
	Level int // 1-6
	Spans []Span
}

func (h *Heading) Kind() BlockKind { return BlockKindHeading }
func (h *Heading) Text() string    { return SpansText(h.Spans) }
func (h *Heading) isBlock()        {}

// Paragraph represents a paragraph of text
type Paragraph struct {
	Spans []Span
}

func (p *Paragraph) Kind() BlockKind { return BlockKindParagraph }
func (p *Paragraph) Text() string    { return SpansText(p.Spans) }
func (p *Paragraph) isBlock()        {}

// Blockquote represents quoted text
type Blockquote struct {
	Spans []Span
}

func (q *Blockquote) Kind() BlockKind { return BlockKindBlockquote }
func (q *Blockquote) Text() string    { return SpansText(q.Spans) }
func (q *Blockquote) isBlock()        {}

// ListItem represents a single list item
type ListItem struct {
	Spans []Span
	Level int // nesting level, 1 = top level
}

// Text returns the flattened text of the item
func (i ListItem) Text() string { return SpansText(i.Spans) }

// BulletList represents an unordered list
type BulletList struct {
	Items []ListItem
}

func (l *BulletList) Kind() BlockKind { return BlockKindBulletList }
func (l *BulletList) Text() string    { return itemsText(l.Items) }
func (l *BulletList) isBlock()        {}

// NumberedList represents an ordered list
type NumberedList struct {
	Items []ListItem
}

func (l *NumberedList) Kind() BlockKind { return BlockKindNumberedList }
func (l *NumberedList) Text() string    { return itemsText(l.Items) }
func (l *NumberedList) isBlock()        {}

func itemsText(items []ListItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Text())
	}
	return strings.Join(parts, "\n")
}

// NewHeading creates a heading block. Levels outside 1-6 are clamped.
func NewHeading(level int, spans []Span) *Heading {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return &Heading{Level: level, Spans: cloneSpans(spans)}
}

// NewParagraph creates a paragraph block
func NewParagraph(spans []Span) *Paragraph {
	return &Paragraph{Spans: cloneSpans(spans)}
}

// NewBlockquote creates a blockquote block
func NewBlockquote(spans []Span) *Blockquote {
	return &Blockquote{Spans: cloneSpans(spans)}
}

// NewListItem creates a list item. Levels below 1 become 1.
func NewListItem(spans []Span, level int) ListItem {
	if level < 1 {
		level = 1
	}
	return ListItem{Spans: cloneSpans(spans), Level: level}
}

// SpansOf returns the inline spans of a non-list block, or nil for lists
func SpansOf(b Block) []Span {
	switch v := b.(type) {
	case *Heading:
		return v.Spans
	case *Paragraph:
		return v.Spans
	case *Blockquote:
		return v.Spans
	default:
		return nil
	}
}

// ItemsOf returns the items of a list block, or nil for other blocks
func ItemsOf(b Block) []ListItem {
	switch v := b.(type) {
	case *BulletList:
		return v.Items
	case *NumberedList:
		return v.Items
	default:
		return nil
	}
}
