// Package termdoc renders documents for the terminal using lipgloss styles.
package termdoc

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/render"
)

// Styles holds the lipgloss style for each document variant
type Styles struct {
	Headings   [6]lipgloss.Style
	Paragraph  lipgloss.Style
	Blockquote lipgloss.Style
	ListMarker lipgloss.Style

	Bold   lipgloss.Style
	Italic lipgloss.Style
	Code   lipgloss.Style
	Link   lipgloss.Style
	URL    lipgloss.Style

	// BulletMarker prefixes bullet list items
	BulletMarker string

	// Width wraps paragraphs and blockquotes when greater than zero
	Width int
}

// DefaultStyles returns the default terminal styles
func DefaultStyles() Styles {
	heading := lipgloss.NewStyle().Bold(true)
	return Styles{
		Headings: [6]lipgloss.Style{
			heading.Foreground(lipgloss.Color("212")).Underline(true),
			heading.Foreground(lipgloss.Color("212")),
			heading.Foreground(lipgloss.Color("39")),
			heading.Foreground(lipgloss.Color("39")),
			heading,
			heading,
		},
		Paragraph:    lipgloss.NewStyle(),
		Blockquote:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true),
		ListMarker:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Bold:         lipgloss.NewStyle().Bold(true).Inline(true),
		Italic:       lipgloss.NewStyle().Italic(true).Inline(true),
		Code:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")).Inline(true),
		Link:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true).Inline(true),
		URL:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Inline(true),
		BulletMarker: "•",
	}
}

// PlainStyles returns styles without any decoration
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Headings:     [6]lipgloss.Style{plain, plain, plain, plain, plain, plain},
		Paragraph:    plain,
		Blockquote:   plain,
		ListMarker:   plain,
		Bold:         plain.Inline(true),
		Italic:       plain.Inline(true),
		Code:         plain.Inline(true),
		Link:         plain.Inline(true),
		URL:          plain.Inline(true),
		BulletMarker: "-",
	}
}

// Builders returns render builders producing styled strings
func Builders(s Styles) render.Builders[string] {
	return render.Builders[string]{
		Text:      func(t string) string { return t },
		LineBreak: func() string { return "\n" },
		Bold:      func(t string) string { return s.Bold.Render(t) },
		Italic:    func(t string) string { return s.Italic.Render(t) },
		Code:      func(t string) string { return s.Code.Render(t) },
		Link: func(t, href string) string {
			if t == href {
				return s.Link.Render(t)
			}
			return s.Link.Render(t) + " " + s.URL.Render("("+href+")")
		},
		Mailto: func(t, address string) string {
			if t == address {
				return s.Link.Render(t)
			}
			return s.Link.Render(t) + " " + s.URL.Render("<"+address+">")
		},
		Heading: func(level int, children []string) string {
			if level < 1 || level > 6 {
				level = 3
			}
			return s.Headings[level-1].Render(strings.Join(children, ""))
		},
		Paragraph: func(children []string) string {
			return s.wrap(s.Paragraph).Render(strings.Join(children, ""))
		},
		Blockquote: func(children []string) string {
			return s.wrap(s.Blockquote).Render(strings.Join(children, ""))
		},
		BulletList: func(items []render.Item[string]) string {
			return s.list(items, func(int) string { return s.BulletMarker })
		},
		NumberedList: func(items []render.Item[string]) string {
			return s.list(items, func(i int) string { return fmt.Sprintf("%d.", i+1) })
		},
	}
}

func (s Styles) wrap(style lipgloss.Style) lipgloss.Style {
	if s.Width > 0 {
		return style.Width(s.Width)
	}
	return style
}

func (s Styles) list(items []render.Item[string], marker func(int) string) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		indent := strings.Repeat("  ", max(item.Level-1, 0))
		lines = append(lines, indent+s.ListMarker.Render(marker(i))+" "+strings.Join(item.Children, ""))
	}
	return strings.Join(lines, "\n")
}

// Render renders doc to one styled string per block
func Render(doc model.Document, s Styles) []string {
	return render.Render(doc, Builders(s))
}

// RenderString renders doc with blocks separated by a blank line
func RenderString(doc model.Document, s Styles) string {
	return strings.Join(Render(doc, s), "\n\n")
}
