package summary

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tsawler/richtext/builder"
	"github.com/tsawler/richtext/model"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i+1)
	}
	return strings.Join(parts, " ")
}

func tree() model.BlockTree {
	return model.BlockTree{
		{Type: "image", Key: "img"},
		{Type: "block", Style: "h2", Children: []model.TreeSpan{{Type: "span", Text: "About"}}},
		{Type: "block", Style: "normal", Children: []model.TreeSpan{
			{Type: "span", Text: "I build "},
			{Type: "span", Text: "tools", Marks: []string{"strong"}},
			{Type: "span", Text: " for people."},
		}},
	}
}

func TestFirstParagraphText(t *testing.T) {
	tests := []struct {
		name string
		raw  model.RawValue
		want string
	}{
		{"nil", nil, ""},
		{"empty string", model.PlainString(""), ""},
		{"blank string", model.PlainString(" \n\n \t"), ""},
		{"empty tree", model.BlockTree{}, ""},
		{"plain", model.PlainString("Hello world.\n\nVisit https://example.com"), "Hello world."},
		{"markers kept", model.PlainString("**Bold** and *more*\n\nrest"), "**Bold** and *more*"},
		{"leading blank lines", model.PlainString("\n\n  first\n\nsecond"), "first"},
		{"crlf", model.PlainString("one\r\n\r\ntwo"), "one"},
		{"multi-line paragraph", model.PlainString("a\nb\n\nc"), "a\nb"},
		{"tree", tree(), "About"},
		{"tree without text", model.BlockTree{{Type: "image"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstParagraphText(tt.raw); got != tt.want {
				t.Errorf("FirstParagraphText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name string
		raw  model.RawValue
		n    int
		want string
	}{
		{"nil", nil, 30, ""},
		{"empty string", model.PlainString(""), 30, ""},
		{"empty tree", model.BlockTree{}, 30, ""},
		{"exactly n words", model.PlainString(words(30)), 30, words(30)},
		{"one word over", model.PlainString(words(31)), 30, words(30) + "…"},
		{"zero", model.PlainString("some text"), 0, "…"},
		{"negative", model.PlainString("some text"), -5, "…"},
		{"markers stripped", model.PlainString("SKILLS:\n- Go\n- Rust"), 2, "SKILLS: Go…"},
		{"short text unchanged", model.PlainString("**Bold** text"), 30, "Bold text"},
		{"whitespace collapsed when cut", model.PlainString("a\n\nb   c d"), 3, "a b c…"},
		{"tree", tree(), 3, "About I build…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWords(tt.raw, tt.n); got != tt.want {
				t.Errorf("TruncateWords(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt(model.PlainString("First part.\n\nSecond part."), DefaultWordCount); got != "First part." {
		t.Errorf("Excerpt() = %q", got)
	}
	if got := Excerpt(nil, DefaultWordCount); got != "" {
		t.Errorf("Excerpt(nil) = %q", got)
	}
}

func TestSummarizer_CustomConfig(t *testing.T) {
	s := NewWithConfig(Config{Ellipsis: " [more]", Builder: builder.New()})

	if got := s.TruncateWords(model.PlainString("one two three"), 2); got != "one two [more]" {
		t.Errorf("TruncateWords() = %q", got)
	}
}

func TestSummarizer_NilBuilder(t *testing.T) {
	s := NewWithConfig(Config{Ellipsis: "..."})
	if got := s.TruncateWords(model.PlainString("one two"), 1); got != "one..." {
		t.Errorf("TruncateWords() = %q", got)
	}
}
