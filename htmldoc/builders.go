package htmldoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/render"
	"github.com/tsawler/richtext/text"
)

// Builders returns render builders that produce HTML nodes
func Builders(opts Options) render.Builders[*html.Node] {
	b := &nodeBuilder{opts: opts}
	return render.Builders[*html.Node]{
		Text:         textNode,
		LineBreak:    func() *html.Node { return b.element(atom.Br) },
		Bold:         func(s string) *html.Node { return b.element(atom.Strong, textNode(s)) },
		Italic:       func(s string) *html.Node { return b.element(atom.Em, textNode(s)) },
		Code:         func(s string) *html.Node { return b.element(atom.Code, textNode(s)) },
		Link:         b.link,
		Mailto:       b.mailto,
		Heading:      b.heading,
		Paragraph:    func(children []*html.Node) *html.Node { return b.block(atom.P, children) },
		Blockquote:   func(children []*html.Node) *html.Node { return b.block(atom.Blockquote, children) },
		BulletList:   func(items []render.Item[*html.Node]) *html.Node { return b.list(atom.Ul, items) },
		NumberedList: func(items []render.Item[*html.Node]) *html.Node { return b.list(atom.Ol, items) },
	}
}

type nodeBuilder struct {
	opts Options
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// element creates an element with the configured class and the given children
func (b *nodeBuilder) element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class, ok := b.opts.Classes[n.Data]; ok && class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// block creates a block element and marks right-to-left content
func (b *nodeBuilder) block(a atom.Atom, children []*html.Node) *html.Node {
	n := b.element(a, children...)
	if b.opts.DetectDirection {
		if dir := text.DetectDirection(getTextContent(n)); dir == text.RTL {
			n.Attr = append(n.Attr, html.Attribute{Key: "dir", Val: dir.HTMLDir()})
		}
	}
	return n
}

func (b *nodeBuilder) heading(level int, children []*html.Node) *html.Node {
	if level < 1 || level > 6 {
		level = 3
	}
	return b.block(atom.Lookup([]byte(fmt.Sprintf("h%d", level))), children)
}

func (b *nodeBuilder) list(a atom.Atom, items []render.Item[*html.Node]) *html.Node {
	n := b.element(a)
	for _, it := range items {
		li := b.block(atom.Li, it.Children)
		if it.Level > 1 {
			li.Attr = append(li.Attr, html.Attribute{Key: "data-level", Val: strconv.Itoa(it.Level)})
		}
		n.AppendChild(li)
	}
	return n
}

func (b *nodeBuilder) link(s, href string) *html.Node {
	if !model.IsSafeHref(href) {
		return textNode(s)
	}
	n := b.element(atom.A, textNode(s))
	n.Attr = append(n.Attr, html.Attribute{Key: "href", Val: href})
	if b.opts.ExternalLinksNewTab && isExternal(href) {
		n.Attr = append(n.Attr,
			html.Attribute{Key: "target", Val: "_blank"},
			html.Attribute{Key: "rel", Val: "noopener noreferrer"},
		)
	}
	return n
}

func (b *nodeBuilder) mailto(s, address string) *html.Node {
	n := b.element(atom.A, textNode(s))
	n.Attr = append(n.Attr, html.Attribute{Key: "href", Val: "mailto:" + address})
	return n
}

// isExternal reports whether href leaves the site
func isExternal(href string) bool {
	return strings.HasPrefix(strings.ToLower(href), "http")
}
