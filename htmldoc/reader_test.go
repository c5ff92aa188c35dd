package htmldoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/richtext/model"
)

func TestParseString_Blocks(t *testing.T) {
	in := `<h2>Work</h2>
<p>Built <strong>fast</strong> and <em>calm</em> things in <code>Go</code>.<br>
Second line with <a href="https://example.com">a link</a> and <a href="mailto:me@example.com">mail</a>.</p>
<ul><li>one</li><li>two<ul><li>nested</li></ul></li></ul>
<ol><li>first</li></ol>
<blockquote><p>Said</p><p>twice</p></blockquote>`

	doc, err := ParseString(in)
	require.NoError(t, err)

	want := model.Document{
		model.NewHeading(2, []model.Span{model.Plain("Work")}),
		model.NewParagraph([]model.Span{
			model.Plain("Built "), model.Bold("fast"), model.Plain(" and "), model.Italic("calm"),
			model.Plain(" things in "), model.Code("Go"), model.Plain("."), model.LineBreak(),
			model.Plain(" Second line with "), model.Link("a link", "https://example.com"),
			model.Plain(" and "), model.Mailto("mail", "me@example.com"), model.Plain("."),
		}),
		&model.BulletList{Items: []model.ListItem{
			model.NewListItem([]model.Span{model.Plain("one")}, 1),
			model.NewListItem([]model.Span{model.Plain("two")}, 1),
			model.NewListItem([]model.Span{model.Plain("nested")}, 2),
		}},
		&model.NumberedList{Items: []model.ListItem{
			model.NewListItem([]model.Span{model.Plain("first")}, 1),
		}},
		model.NewBlockquote([]model.Span{model.Plain("Said"), model.LineBreak(), model.Plain("twice")}),
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("ParseString() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseString_LooseContent(t *testing.T) {
	doc, err := ParseString(`Intro <b>text</b><script>alert(1)</script><div><p>inside</p>tail</div>`)
	require.NoError(t, err)

	want := model.Document{
		model.NewParagraph([]model.Span{model.Plain("Intro "), model.Bold("text")}),
		model.NewParagraph([]model.Span{model.Plain("inside")}),
		model.NewParagraph([]model.Span{model.Plain("tail")}),
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseString_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "<p> </p>", "<ul></ul>", "<script>x</script>"} {
		doc, err := ParseString(in)
		require.NoError(t, err)
		assert.Empty(t, doc, "input %q", in)
	}
}

func TestParseString_Malformed(t *testing.T) {
	doc, err := ParseString(`<p>unclosed <strong>bold`)
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, "unclosed bold", doc[0].Text())
}

func TestParse_RoundTrip(t *testing.T) {
	doc := sampleDoc()
	for _, opts := range []Options{DefaultOptions(), {Separator: "\n\n", Classes: map[string]string{"p": "lead"}}} {
		s, err := RenderString(doc, opts)
		require.NoError(t, err)

		back, err := ParseString(s)
		require.NoError(t, err)
		if diff := cmp.Diff(doc, back); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s\nmarkup:\n%s", diff, s)
		}
	}
}
