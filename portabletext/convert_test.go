package portabletext

import (
	"reflect"
	"testing"

	"github.com/tsawler/richtext/builder"
	"github.com/tsawler/richtext/model"
)

func convertSample() model.Document {
	return model.Document{
		model.NewHeading(2, []model.Span{model.Plain("Work")}),
		model.NewParagraph([]model.Span{
			model.Plain("See "),
			model.Link("the post", "https://example.com/p"),
			model.Plain(" or mail "),
			model.Mailto("me@example.com", "me@example.com"),
			model.LineBreak(),
			model.Bold("b"),
			model.Plain(" "),
			model.Italic("i"),
			model.Plain(" "),
			model.Code("c"),
		}),
		&model.BulletList{Items: []model.ListItem{
			model.NewListItem([]model.Span{model.Plain("Go")}, 1),
			model.NewListItem([]model.Span{model.Plain("Rust")}, 2),
		}},
		&model.NumberedList{Items: []model.ListItem{
			model.NewListItem([]model.Span{model.Plain("one")}, 1),
		}},
		model.NewBlockquote([]model.Span{model.Plain("quoted")}),
	}
}

func TestFromDocument(t *testing.T) {
	tree := FromDocument(convertSample())

	if len(tree) != 6 {
		t.Fatalf("expected 6 nodes, got %d", len(tree))
	}

	p := tree[1]
	if p.Style != "normal" || p.Key != "b1" {
		t.Errorf("paragraph node = %+v", p)
	}
	wantDefs := []model.MarkDef{
		{Key: "l0", Type: "link", Href: "https://example.com/p"},
		{Key: "l1", Type: "link", Href: "mailto:me@example.com"},
	}
	if !reflect.DeepEqual(p.MarkDefs, wantDefs) {
		t.Errorf("markDefs = %+v, want %+v", p.MarkDefs, wantDefs)
	}
	if got := p.Children[3].Text; got != "me@example.com" {
		t.Errorf("mailto child = %q", got)
	}
	if got := p.Children[4]; got.Text != "\n" || len(got.Marks) != 0 {
		t.Errorf("line break child = %+v", got)
	}

	if tree[3].ListItem != "bullet" || tree[3].Level != 2 {
		t.Errorf("nested item = %+v", tree[3])
	}
	if tree[4].ListItem != "number" {
		t.Errorf("numbered item = %+v", tree[4])
	}
	if tree[5].Style != "blockquote" {
		t.Errorf("blockquote = %+v", tree[5])
	}
}

func TestFromDocument_MergesPlainText(t *testing.T) {
	doc := model.Document{model.NewParagraph([]model.Span{
		model.Plain("a"), model.LineBreak(), model.Plain("b"),
	})}

	tree := FromDocument(doc)
	if len(tree[0].Children) != 1 || tree[0].Children[0].Text != "a\nb" {
		t.Errorf("children = %+v", tree[0].Children)
	}
}

func TestFromDocument_RoundTrip(t *testing.T) {
	doc := convertSample()

	encoded, err := EncodeString(FromDocument(doc))
	if err != nil {
		t.Fatalf("EncodeString() error = %v", err)
	}
	tree, err := DecodeString(encoded)
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}

	got, warnings := builder.BuildWithWarnings(tree)
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", got, doc)
	}
}

func TestFromDocument_Empty(t *testing.T) {
	if tree := FromDocument(nil); tree != nil {
		t.Errorf("FromDocument(nil) = %#v", tree)
	}
}
