package builder

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/richtext/layout"
	"github.com/tsawler/richtext/model"
)

func TestBuild_EmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		raw  model.RawValue
	}{
		{"nil", nil},
		{"empty string", model.PlainString("")},
		{"whitespace string", model.PlainString(" \n\t\n ")},
		{"empty tree", model.BlockTree{}},
		{"nil tree", model.BlockTree(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, warnings := BuildWithWarnings(tt.raw)
			if len(doc) != 0 {
				t.Errorf("expected empty document, got %d blocks", len(doc))
			}
			if len(warnings) != 0 {
				t.Errorf("expected no warnings, got %v", warnings)
			}
		})
	}
}

func TestBuild_StringScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want model.Document
	}{
		{
			name: "paragraphs with link and email",
			in:   "Hello world.\n\nVisit https://example.com or mail me@example.com.",
			want: model.Document{
				model.NewParagraph([]model.Span{model.Plain("Hello world.")}),
				model.NewParagraph([]model.Span{
					model.Plain("Visit "),
					model.Link("https://example.com", "https://example.com"),
					model.Plain(" or mail "),
					model.Mailto("me@example.com", "me@example.com"),
					model.Plain("."),
				}),
			},
		},
		{
			name: "bullet list",
			in:   "- one\n- two\n- three",
			want: model.Document{
				&model.BulletList{Items: []model.ListItem{
					model.NewListItem([]model.Span{model.Plain("one")}, 1),
					model.NewListItem([]model.Span{model.Plain("two")}, 1),
					model.NewListItem([]model.Span{model.Plain("three")}, 1),
				}},
			},
		},
		{
			name: "heading then list",
			in:   "SKILLS:\n- Go\n- Rust",
			want: model.Document{
				model.NewHeading(3, []model.Span{model.Plain("SKILLS:")}),
				&model.BulletList{Items: []model.ListItem{
					model.NewListItem([]model.Span{model.Plain("Go")}, 1),
					model.NewListItem([]model.Span{model.Plain("Rust")}, 1),
				}},
			},
		},
		{
			name: "emphasis",
			in:   "**Bold** and *italic* and `code`.",
			want: model.Document{
				model.NewParagraph([]model.Span{
					model.Bold("Bold"),
					model.Plain(" and "),
					model.Italic("italic"),
					model.Plain(" and "),
					model.Code("code"),
					model.Plain("."),
				}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(model.PlainString(tt.in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	inputs := []model.RawValue{
		model.PlainString("INTRO\n\nSee https://example.com and **me@example.com**\n\n1. a\n2. b"),
		sampleTree(),
	}
	b := New()
	for _, raw := range inputs {
		first := b.Build(raw)
		for i := 0; i < 10; i++ {
			if diff := cmp.Diff(first, b.Build(raw)); diff != "" {
				t.Fatalf("build %d differs (-first +got):\n%s", i, diff)
			}
		}
	}
}

func TestBuild_ListIdempotence(t *testing.T) {
	doc := Build(model.PlainString("- alpha\n- beta\n- gamma"))
	list, ok := doc[0].(*model.BulletList)
	if !ok {
		t.Fatalf("expected bullet list, got %T", doc[0])
	}

	var lines []string
	for _, item := range list.Items {
		lines = append(lines, "- "+item.Text())
	}
	again := Build(model.PlainString(strings.Join(lines, "\n")))
	if diff := cmp.Diff(doc, again); diff != "" {
		t.Errorf("rebuilding rendered list changed it (-first +again):\n%s", diff)
	}
}

func TestBuild_ListTextHasNoMarkers(t *testing.T) {
	marker := regexp.MustCompile(`(?m)^\s*([*-]|\d+\.)\s`)

	for _, input := range []string{"- alpha\n- beta\n- gamma", "1. one\n2. two\n3. three"} {
		doc := Build(model.PlainString(input))
		if len(doc) != 1 || (doc[0].Kind() != model.BlockKindBulletList && doc[0].Kind() != model.BlockKindNumberedList) {
			t.Fatalf("Build(%q) = %#v, want one list", input, doc)
		}

		again := Build(model.PlainString(doc[0].Text()))
		for _, b := range again {
			if b.Kind() == model.BlockKindBulletList || b.Kind() == model.BlockKindNumberedList {
				t.Errorf("rebuilding %q produced a list again", doc[0].Text())
			}
		}
		if marker.MatchString(again.Text()) {
			t.Errorf("rebuilt text %q carries list markers", again.Text())
		}
	}
}

func TestBuild_HeadingLevelConfig(t *testing.T) {
	config := DefaultConfig()
	config.Classifier.Heading.Level = 1
	doc := NewWithConfig(config).Build(model.PlainString("ABOUT"))

	want := model.Document{model.NewHeading(1, []model.Span{model.Plain("ABOUT")})}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_Classifier(t *testing.T) {
	b := NewWithConfig(Config{Classifier: layout.DefaultClassifierConfig()})
	if b.Classifier() == nil {
		t.Fatal("Classifier() returned nil")
	}
}

func TestWarning_String(t *testing.T) {
	if got := (Warning{Path: "[1]", Message: "bad"}).String(); got != "[1]: bad" {
		t.Errorf("String() = %q", got)
	}
	if got := (Warning{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q", got)
	}
}
