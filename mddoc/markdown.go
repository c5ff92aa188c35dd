// Package mddoc renders documents as Markdown.
package mddoc

import (
	"fmt"
	"strings"

	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/render"
)

// Options controls Markdown output
type Options struct {
	// Escape backslash-escapes Markdown punctuation in plain text
	Escape bool

	// HardBreak is written for line breaks inside a block
	HardBreak string

	// BulletMarker prefixes bullet list items
	BulletMarker string

	// Indent is repeated once per nesting level below the first
	Indent string
}

// DefaultOptions returns sensible default options
func DefaultOptions() Options {
	return Options{
		Escape:       true,
		HardBreak:    "  \n",
		BulletMarker: "-",
		Indent:       "  ",
	}
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

// Builders returns render builders producing Markdown fragments
func Builders(opts Options) render.Builders[string] {
	esc := func(s string) string {
		if opts.Escape {
			return escaper.Replace(s)
		}
		return s
	}

	return render.Builders[string]{
		Text:      esc,
		LineBreak: func() string { return opts.HardBreak },
		Bold:      func(s string) string { return "**" + esc(s) + "**" },
		Italic:    func(s string) string { return "*" + esc(s) + "*" },
		Code:      codeSpan,
		Link: func(s, href string) string {
			if !model.IsSafeHref(href) {
				return esc(s)
			}
			if s == href {
				return "<" + href + ">"
			}
			return "[" + esc(s) + "](" + href + ")"
		},
		Mailto: func(s, address string) string {
			if s == address {
				return "<" + address + ">"
			}
			return "[" + esc(s) + "](mailto:" + address + ")"
		},
		Heading: func(level int, children []string) string {
			if level < 1 || level > 6 {
				level = 3
			}
			return strings.Repeat("#", level) + " " + strings.Join(children, "")
		},
		Paragraph: func(children []string) string {
			return strings.Join(children, "")
		},
		Blockquote: func(children []string) string {
			lines := strings.Split(strings.Join(children, ""), "\n")
			for i, line := range lines {
				lines[i] = strings.TrimRight("> "+line, " ")
			}
			return strings.Join(lines, "\n")
		},
		BulletList: func(items []render.Item[string]) string {
			return list(items, opts, func(int) string { return opts.BulletMarker })
		},
		NumberedList: func(items []render.Item[string]) string {
			return list(items, opts, func(i int) string { return fmt.Sprintf("%d.", i+1) })
		},
	}
}

func list(items []render.Item[string], opts Options, marker func(int) string) string {
	var result strings.Builder
	for i, item := range items {
		if i > 0 {
			result.WriteString("\n")
		}
		for j := 1; j < item.Level; j++ {
			result.WriteString(opts.Indent)
		}
		result.WriteString(marker(i))
		result.WriteString(" ")
		result.WriteString(strings.Join(item.Children, ""))
	}
	return result.String()
}

// codeSpan wraps s in enough backticks to contain any backticks inside it
func codeSpan(s string) string {
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

// Render renders doc to one Markdown fragment per block
func Render(doc model.Document, opts Options) []string {
	return render.Render(doc, Builders(opts))
}

// RenderString renders doc with blocks separated by a blank line
func RenderString(doc model.Document, opts Options) string {
	return strings.Join(Render(doc, opts), "\n\n")
}
