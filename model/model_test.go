package model

import (
	"testing"
)

// ============================================================================
// Kind Tests
// ============================================================================

func TestBlockKindString(t *testing.T) {
	tests := []struct {
		kind     BlockKind
		expected string
	}{
		{BlockKindUnknown, "Unknown"},
		{BlockKindHeading, "Heading"},
		{BlockKindParagraph, "Paragraph"},
		{BlockKindBulletList, "BulletList"},
		{BlockKindNumberedList, "NumberedList"},
		{BlockKindBlockquote, "Blockquote"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("BlockKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestMarkKindString(t *testing.T) {
	tests := []struct {
		kind     MarkKind
		expected string
	}{
		{MarkNone, "plain"},
		{MarkBold, "bold"},
		{MarkItalic, "italic"},
		{MarkCode, "code"},
		{MarkLink, "link"},
		{MarkMailto, "mailto"},
		{MarkKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("MarkKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

// ============================================================================
// Span Tests
// ============================================================================

func TestSpanConstructors(t *testing.T) {
	if s := Plain("x"); !s.IsPlain() || s.Text != "x" {
		t.Errorf("Plain() = %+v", s)
	}
	if s := Link("site", "https://example.com"); s.Mark.Kind != MarkLink || s.Mark.Href != "https://example.com" {
		t.Errorf("Link() = %+v", s)
	}
	if s := Mailto("me@example.com", "me@example.com"); s.Mark.Kind != MarkMailto {
		t.Errorf("Mailto() = %+v", s)
	}
	if !LineBreak().IsLineBreak() {
		t.Error("LineBreak() should report IsLineBreak")
	}
	if Bold("\n").IsLineBreak() {
		t.Error("marked newline is not a line break")
	}
}

func TestSpansText(t *testing.T) {
	spans := []Span{Plain("a "), Bold("b"), LineBreak(), Italic("c")}
	if got := SpansText(spans); got != "a b\nc" {
		t.Errorf("SpansText() = %q, want %q", got, "a b\nc")
	}
}

// ============================================================================
// Block Tests
// ============================================================================

func TestNewHeadingClampsLevel(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1}, {1, 1}, {3, 3}, {6, 6}, {9, 6},
	}
	for _, tt := range tests {
		if got := NewHeading(tt.in, nil).Level; got != tt.want {
			t.Errorf("NewHeading(%d).Level = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBlocksDoNotShareSpans(t *testing.T) {
	spans := []Span{Plain("shared")}
	p := NewParagraph(spans)
	q := NewBlockquote(spans)
	spans[0] = Plain("changed")

	if p.Text() != "shared" || q.Text() != "shared" {
		t.Errorf("blocks should own their spans, got %q and %q", p.Text(), q.Text())
	}
}

func TestListText(t *testing.T) {
	list := &BulletList{Items: []ListItem{
		NewListItem([]Span{Plain("one")}, 0),
		NewListItem([]Span{Plain("two")}, 1),
	}}
	if got := list.Text(); got != "one\ntwo" {
		t.Errorf("BulletList.Text() = %q", got)
	}
	if list.Items[0].Level != 1 {
		t.Errorf("expected level clamped to 1, got %d", list.Items[0].Level)
	}
	if ItemsOf(list) == nil || SpansOf(list) != nil {
		t.Error("ItemsOf/SpansOf mismatch for list")
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestDocumentText(t *testing.T) {
	doc := Document{
		NewHeading(2, []Span{Plain("Title")}),
		NewParagraph([]Span{Plain("Body "), Link("link", "https://x.dev")}),
		&NumberedList{Items: []ListItem{NewListItem([]Span{Plain("a")}, 1), NewListItem([]Span{Plain("b")}, 1)}},
	}

	want := "Title\n\nBody link\n\na\nb"
	if got := doc.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if doc.IsEmpty() {
		t.Error("document should not be empty")
	}
	if doc.GetBlock(5) != nil || doc.GetBlock(-1) != nil {
		t.Error("GetBlock out of range should be nil")
	}
	if len(doc.Headings()) != 1 {
		t.Errorf("expected 1 heading, got %d", len(doc.Headings()))
	}
	if links := doc.Links(); len(links) != 1 || links[0].Mark.Href != "https://x.dev" {
		t.Errorf("Links() = %+v", links)
	}
}

func TestDocumentStats(t *testing.T) {
	doc := Document{
		NewHeading(1, []Span{Plain("T")}),
		NewParagraph([]Span{Plain("a"), Bold("b")}),
		&BulletList{Items: []ListItem{NewListItem([]Span{Plain("x")}, 1), NewListItem([]Span{Plain("y")}, 1)}},
		NewBlockquote([]Span{Plain("q")}),
	}

	stats := doc.Stats()
	if stats.BlockCount != 4 || stats.HeadingCount != 1 || stats.ParagraphCount != 1 ||
		stats.ListCount != 1 || stats.ListItemCount != 2 || stats.BlockquoteCount != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.SpanCount != 6 {
		t.Errorf("SpanCount = %d, want 6", stats.SpanCount)
	}
}

func TestEmptyDocument(t *testing.T) {
	var doc Document
	if !doc.IsEmpty() {
		t.Error("nil document should be empty")
	}
	if doc.Text() != "" {
		t.Errorf("empty document text = %q", doc.Text())
	}
}

// ============================================================================
// Raw Value Tests
// ============================================================================

func TestIsEmptyRaw(t *testing.T) {
	tests := []struct {
		name string
		raw  RawValue
		want bool
	}{
		{"nil", nil, true},
		{"empty string", PlainString(""), true},
		{"whitespace", PlainString(" \n\t "), true},
		{"text", PlainString("hi"), false},
		{"empty tree", BlockTree{}, true},
		{"nil tree", BlockTree(nil), true},
		{"tree", BlockTree{{Type: "block"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmptyRaw(tt.raw); got != tt.want {
				t.Errorf("IsEmptyRaw() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTreeNodeHelpers(t *testing.T) {
	n := TreeNode{
		Type:     "block",
		Children: []TreeSpan{{Type: "span", Text: "Hello "}, {Type: "span", Text: "there", Marks: []string{"l1"}}},
		MarkDefs: []MarkDef{{Key: "l1", Type: "link", Href: "https://example.com"}},
	}

	if !n.IsBlock() || n.IsListItem() {
		t.Error("unexpected block/list flags")
	}
	if got := n.GetText(); got != "Hello there" {
		t.Errorf("GetText() = %q", got)
	}
	if md, ok := n.FindMarkDef("l1"); !ok || md.Href != "https://example.com" {
		t.Errorf("FindMarkDef() = %+v, %v", md, ok)
	}
	if _, ok := n.FindMarkDef("missing"); ok {
		t.Error("FindMarkDef should miss unknown keys")
	}

	bare := TreeNode{Type: "quote", Text: "fallback"}
	if bare.GetText() != "fallback" {
		t.Errorf("GetText() fallback = %q", bare.GetText())
	}
}

func TestIsSafeHref(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{"https://example.com", true},
		{"HTTP://example.com", true},
		{"mailto:me@example.com", true},
		{"/about", true},
		{"#top", true},
		{"", true},
		{"javascript:alert(1)", false},
		{" JavaScript:alert(1)", false},
		{"javascript://%0aalert(1)", false},
		{"data:text/html,hi", false},
		{"vbscript:x", false},
		{"java\tscript:alert(1)", false},
	}
	for _, tt := range tests {
		if got := IsSafeHref(tt.href); got != tt.want {
			t.Errorf("IsSafeHref(%q) = %v, want %v", tt.href, got, tt.want)
		}
	}
}
