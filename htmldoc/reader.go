package htmldoc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/richtext/model"
)

// Parse reads an HTML fragment into a document. Headings, paragraphs,
// blockquotes and lists become blocks; strong/b, em/i, code, a and br become
// spans. Other containers are traversed and script-like elements are
// skipped. Markup produced by RenderString parses back to the same document.
func Parse(r io.Reader) (model.Document, error) {
	context := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	p := &parser{}
	for _, n := range nodes {
		p.traverseNode(n)
	}
	p.flushInline()
	return p.doc, nil
}

// ParseString is a convenience wrapper for Parse
func ParseString(s string) (model.Document, error) {
	return Parse(strings.NewReader(s))
}

// parser tracks the blocks found so far and loose inline content waiting
// for a block to close it
type parser struct {
	doc    model.Document
	inline []model.Span
}

func (p *parser) emit(t elementType, level int, spans []model.Span) {
	spans = trimSpans(spans)
	if len(spans) == 0 {
		return
	}
	switch t {
	case elementHeading:
		p.doc = append(p.doc, model.NewHeading(level, spans))
	case elementBlockquote:
		p.doc = append(p.doc, model.NewBlockquote(spans))
	default:
		p.doc = append(p.doc, model.NewParagraph(spans))
	}
}

// flushInline turns pending top-level inline content into a paragraph
func (p *parser) flushInline() {
	if len(p.inline) > 0 {
		p.emit(elementParagraph, 0, p.inline)
		p.inline = nil
	}
}

// traverseNode recursively processes DOM nodes
func (p *parser) traverseNode(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		p.inline = append(p.inline, collectSpans(n)...)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.traverseNode(c)
		}
		return
	}

	if shouldSkipElement(n.Data) {
		return
	}

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		p.flushInline()
		p.emit(elementHeading, int(n.Data[1]-'0'), collectSpans(n))

	case atom.P, atom.Pre:
		p.flushInline()
		if n.DataAtom == atom.Pre {
			if code := getTextContent(n); strings.TrimSpace(code) != "" {
				p.emit(elementParagraph, 0, []model.Span{model.Code(code)})
			}
			return
		}
		p.emit(elementParagraph, 0, collectSpans(n))

	case atom.Blockquote:
		p.flushInline()
		var spans []model.Span
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if len(spans) > 0 && isBlockElement(c) {
				spans = append(spans, model.LineBreak())
			}
			spans = append(spans, collectSpans(c)...)
		}
		p.emit(elementBlockquote, 0, spans)

	case atom.Ul, atom.Ol:
		p.flushInline()
		var items []model.ListItem
		collectItems(n, 1, &items)
		if len(items) == 0 {
			return
		}
		if n.DataAtom == atom.Ol {
			p.doc = append(p.doc, &model.NumberedList{Items: items})
		} else {
			p.doc = append(p.doc, &model.BulletList{Items: items})
		}

	case atom.Div, atom.Article, atom.Section, atom.Main, atom.Header, atom.Footer, atom.Aside, atom.Nav:
		p.flushInline()
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.traverseNode(c)
		}
		p.flushInline()

	default:
		p.inline = append(p.inline, collectSpans(n)...)
	}
}

// collectItems gathers li children of a list. Nested lists are flattened
// into the same list with a deeper level.
func collectItems(list *html.Node, level int, items *[]model.ListItem) {
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.DataAtom != atom.Li {
			continue
		}

		itemLevel := level
		if v, err := strconv.Atoi(getAttr(li, "data-level")); err == nil && v > itemLevel {
			itemLevel = v
		}

		var spans []model.Span
		var nested []*html.Node
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
				nested = append(nested, c)
				continue
			}
			spans = append(spans, collectSpans(c)...)
		}
		if spans = trimSpans(spans); len(spans) > 0 {
			*items = append(*items, model.NewListItem(spans, itemLevel))
		}
		for _, sub := range nested {
			collectItems(sub, itemLevel+1, items)
		}
	}
}

// collectSpans converts a node and its descendants into inline spans
func collectSpans(n *html.Node) []model.Span {
	var spans []model.Span
	appendSpans(n, &spans)
	return mergePlain(spans)
}

func appendSpans(n *html.Node, spans *[]model.Span) {
	switch n.Type {
	case html.TextNode:
		if s := collapseNewlines(n.Data); s != "" {
			*spans = append(*spans, model.Plain(s))
		}
		return
	case html.ElementNode:
	default:
		return
	}

	if shouldSkipElement(n.Data) {
		return
	}

	switch n.DataAtom {
	case atom.Br:
		*spans = append(*spans, model.LineBreak())
		return
	case atom.Strong, atom.B:
		appendMarked(n, spans, model.Bold)
		return
	case atom.Em, atom.I:
		appendMarked(n, spans, model.Italic)
		return
	case atom.Code:
		appendMarked(n, spans, model.Code)
		return
	case atom.A:
		content := getTextContent(n)
		href := strings.TrimSpace(getAttr(n, "href"))
		switch {
		case content == "":
		case href == "":
			*spans = append(*spans, model.Plain(content))
		case strings.HasPrefix(strings.ToLower(href), "mailto:"):
			*spans = append(*spans, model.Mailto(content, href[len("mailto:"):]))
		default:
			*spans = append(*spans, model.Link(content, href))
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendSpans(c, spans)
	}
}

func appendMarked(n *html.Node, spans *[]model.Span, mark func(string) model.Span) {
	if content := getTextContent(n); content != "" {
		*spans = append(*spans, mark(content))
	}
}

// mergePlain joins adjacent plain spans that are not line breaks
func mergePlain(spans []model.Span) []model.Span {
	var out []model.Span
	for _, s := range spans {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.IsPlain() && !last.IsLineBreak() && s.IsPlain() && !s.IsLineBreak() {
				last.Text += s.Text
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// trimSpans removes surrounding whitespace and line breaks from a block
func trimSpans(spans []model.Span) []model.Span {
	spans = mergePlain(spans)
	for len(spans) > 0 && spans[0].IsPlain() {
		if t := strings.TrimLeft(spans[0].Text, " \t\n"); t != "" {
			spans[0].Text = t
			break
		}
		spans = spans[1:]
	}
	for len(spans) > 0 && spans[len(spans)-1].IsPlain() {
		last := len(spans) - 1
		if t := strings.TrimRight(spans[last].Text, " \t\n"); t != "" {
			spans[last].Text = t
			break
		}
		spans = spans[:last]
	}
	return spans
}

// collapseNewlines replaces source newlines and their indentation with a
// single space, as a browser would
func collapseNewlines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	lines := strings.Split(s, "\n")
	for i := range lines {
		if i > 0 {
			lines[i] = strings.TrimLeft(lines[i], " \t")
		}
		if i < len(lines)-1 {
			lines[i] = strings.TrimRight(lines[i], " \t")
		}
	}
	return strings.Join(lines, " ")
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// isBlockElement reports whether n is a block-level element
func isBlockElement(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Ul, atom.Ol, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return result.String()
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.DataAtom == atom.Br {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}

// getAttr returns the value of the named attribute, or ""
func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
