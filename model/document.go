package model

import "strings"

// Document is an ordered list of blocks. Order mirrors the source and is
// never changed after construction.
type Document []Block

// IsEmpty returns true if the document has no blocks
func (d Document) IsEmpty() bool {
	return len(d) == 0
}

// BlockCount returns the number of blocks
func (d Document) BlockCount() int {
	return len(d)
}

// GetBlock returns a block by index (0-indexed), or nil when out of range
func (d Document) GetBlock(index int) Block {
	if index < 0 || index >= len(d) {
		return nil
	}
	return d[index]
}

// Text returns all block text, blocks separated by a blank line
func (d Document) Text() string {
	parts := make([]string, 0, len(d))
	for _, b := range d {
		parts = append(parts, b.Text())
	}
	return strings.Join(parts, "\n\n")
}

// Headings returns all headings in document order
func (d Document) Headings() []*Heading {
	var headings []*Heading
	for _, b := range d {
		if h, ok := b.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Links returns all link and mailto spans in document order
func (d Document) Links() []Span {
	var links []Span
	collect := func(spans []Span) {
		for _, s := range spans {
			if s.Mark.Kind == MarkLink || s.Mark.Kind == MarkMailto {
				links = append(links, s)
			}
		}
	}
	for _, b := range d {
		collect(SpansOf(b))
		for _, item := range ItemsOf(b) {
			collect(item.Spans)
		}
	}
	return links
}

// Stats returns block and span counts for the document
func (d Document) Stats() DocumentStats {
	var stats DocumentStats
	for _, b := range d {
		stats.BlockCount++
		switch b.Kind() {
		case BlockKindHeading:
			stats.HeadingCount++
		case BlockKindParagraph:
			stats.ParagraphCount++
		case BlockKindBulletList, BlockKindNumberedList:
			stats.ListCount++
		case BlockKindBlockquote:
			stats.BlockquoteCount++
		}
		stats.SpanCount += len(SpansOf(b))
		for _, item := range ItemsOf(b) {
			stats.ListItemCount++
			stats.SpanCount += len(item.Spans)
		}
	}
	return stats
}

// DocumentStats contains block counts for a document
type DocumentStats struct {
	BlockCount      int
	HeadingCount    int
	ParagraphCount  int
	ListCount       int
	ListItemCount   int
	BlockquoteCount int
	SpanCount       int
}
