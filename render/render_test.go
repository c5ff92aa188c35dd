package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tsawler/richtext/model"
)

// tagBuilders renders to bracketed tags so output can be compared as strings
func tagBuilders() Builders[string] {
	wrap := func(tag string, children []string) string {
		return "<" + tag + ">" + strings.Join(children, "") + "</" + tag + ">"
	}
	items := func(tag string, items []Item[string]) string {
		var sb strings.Builder
		sb.WriteString("<" + tag + ">")
		for _, it := range items {
			fmt.Fprintf(&sb, "<li%d>%s</li>", it.Level, strings.Join(it.Children, ""))
		}
		sb.WriteString("</" + tag + ">")
		return sb.String()
	}
	return Builders[string]{
		Text:         func(s string) string { return s },
		LineBreak:    func() string { return "<br>" },
		Bold:         func(s string) string { return "<b>" + s + "</b>" },
		Italic:       func(s string) string { return "<i>" + s + "</i>" },
		Code:         func(s string) string { return "<code>" + s + "</code>" },
		Link:         func(s, href string) string { return "<a " + href + ">" + s + "</a>" },
		Mailto:       func(s, addr string) string { return "<mail " + addr + ">" + s + "</mail>" },
		Heading:      func(level int, c []string) string { return wrap(fmt.Sprintf("h%d", level), c) },
		Paragraph:    func(c []string) string { return wrap("p", c) },
		BulletList:   func(it []Item[string]) string { return items("ul", it) },
		NumberedList: func(it []Item[string]) string { return items("ol", it) },
		Blockquote:   func(c []string) string { return wrap("q", c) },
	}
}

func sampleDoc() model.Document {
	return model.Document{
		model.NewHeading(2, []model.Span{model.Plain("Title")}),
		model.NewParagraph([]model.Span{
			model.Plain("a"), model.LineBreak(), model.Bold("b"), model.Italic("c"), model.Code("d"),
			model.Link("e", "https://e.dev"), model.Mailto("f", "f@e.dev"),
		}),
		&model.BulletList{Items: []model.ListItem{
			model.NewListItem([]model.Span{model.Plain("one")}, 1),
			model.NewListItem([]model.Span{model.Plain("two")}, 2),
		}},
		&model.NumberedList{Items: []model.ListItem{model.NewListItem([]model.Span{model.Plain("x")}, 1)}},
		model.NewBlockquote([]model.Span{model.Plain("said")}),
	}
}

func TestRender(t *testing.T) {
	got := Render(sampleDoc(), tagBuilders())
	want := []string{
		"<h2>Title</h2>",
		"<p>a<br><b>b</b><i>c</i><code>d</code><a https://e.dev>e</a><mail f@e.dev>f</mail></p>",
		"<ul><li1>one</li><li2>two</li></ul>",
		"<ol><li1>x</li></ol>",
		"<q>said</q>",
	}

	if len(got) != len(want) {
		t.Fatalf("Render returned %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("node %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRender_EmptyDocument(t *testing.T) {
	if got := Render(nil, tagBuilders()); len(got) != 0 {
		t.Errorf("expected no nodes, got %v", got)
	}
}

func TestRender_Fallbacks(t *testing.T) {
	b := Builders[string]{
		Text:      func(s string) string { return s },
		Paragraph: func(c []string) string { return "[" + strings.Join(c, "") + "]" },
	}
	got := Render(sampleDoc(), b)
	want := []string{
		"[Title]",
		"[a\nbcdef]",
		"[one\ntwo]",
		"[x]",
		"[said]",
	}

	if len(got) != len(want) {
		t.Fatalf("Render returned %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("node %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRender_NumberedFallsBackToBullet(t *testing.T) {
	b := tagBuilders()
	b.NumberedList = nil
	got := Render(sampleDoc(), b)
	if got[3] != "<ul><li1>x</li></ul>" {
		t.Errorf("numbered list fallback = %q", got[3])
	}
}

func TestRender_NoBuilders(t *testing.T) {
	got := Render(sampleDoc(), Builders[string]{})
	if len(got) != 5 {
		t.Fatalf("expected 5 nodes, got %d", len(got))
	}
	for i, n := range got {
		if n != "" {
			t.Errorf("node %d = %q, want zero value", i, n)
		}
	}
}

func TestRender_PreservesItemOrder(t *testing.T) {
	var items []model.ListItem
	for i := 0; i < 20; i++ {
		items = append(items, model.NewListItem([]model.Span{model.Plain(fmt.Sprint(i))}, 1))
	}

	var seen []string
	b := Builders[string]{
		Text: func(s string) string { return s },
		BulletList: func(its []Item[string]) string {
			for _, it := range its {
				seen = append(seen, strings.Join(it.Children, ""))
			}
			return ""
		},
	}
	Render(model.Document{&model.BulletList{Items: items}}, b)

	for i, s := range seen {
		if s != fmt.Sprint(i) {
			t.Fatalf("item %d rendered as %q", i, s)
		}
	}
}
