package builder

import (
	"fmt"
	"strings"

	"github.com/tsawler/richtext/model"
)

// List kinds declared by tree nodes
const (
	listKindBullet = "bullet"
	listKindNumber = "number"
)

// markRank orders marks when a span declares several; the highest wins
var markRank = map[model.MarkKind]int{
	model.MarkNone:   0,
	model.MarkItalic: 1,
	model.MarkBold:   2,
	model.MarkCode:   3,
	model.MarkLink:   4,
	model.MarkMailto: 4,
}

// treeBuilder holds the state of one tree walk
type treeBuilder struct {
	doc      model.Document
	warnings []Warning

	// open list being grouped, nil when none
	listKind  string
	listItems []model.ListItem
}

func (tb *treeBuilder) build(tree model.BlockTree) model.Document {
	for i, node := range tree {
		tb.node(node, fmt.Sprintf("[%d]", i))
	}
	tb.flushList()
	return tb.doc
}

func (tb *treeBuilder) warn(path, format string, args ...any) {
	tb.warnings = append(tb.warnings, Warning{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (tb *treeBuilder) node(n model.TreeNode, path string) {
	if strings.TrimSpace(n.GetText()) == "" {
		tb.warn(path, "dropped %s node without text", nodeName(n))
		return
	}

	if !n.IsBlock() {
		if n.Type != "" {
			tb.warn(path, "unsupported node type %q rendered as paragraph", n.Type)
		}
		tb.flushList()
		tb.doc = append(tb.doc, model.NewParagraph(textSpans(n.GetText())))
		return
	}

	spans := tb.spans(n, path)

	if n.IsListItem() {
		kind := n.ListItem
		if kind != listKindBullet && kind != listKindNumber {
			tb.warn(path, "unknown list kind %q rendered as bullet list", kind)
			kind = listKindBullet
		}
		if tb.listItems != nil && tb.listKind != kind {
			tb.flushList()
		}
		tb.listKind = kind
		tb.listItems = append(tb.listItems, model.NewListItem(spans, n.Level))
		return
	}

	tb.flushList()

	switch style := n.Style; style {
	case "", "normal":
		tb.doc = append(tb.doc, model.NewParagraph(spans))
	case "h1", "h2", "h3", "h4", "h5", "h6":
		tb.doc = append(tb.doc, model.NewHeading(int(style[1]-'0'), spans))
	case "blockquote":
		tb.doc = append(tb.doc, model.NewBlockquote(spans))
	default:
		tb.warn(path, "unknown style %q rendered as paragraph", style)
		tb.doc = append(tb.doc, model.NewParagraph(spans))
	}
}

func (tb *treeBuilder) flushList() {
	if tb.listItems == nil {
		return
	}
	if tb.listKind == listKindNumber {
		tb.doc = append(tb.doc, &model.NumberedList{Items: tb.listItems})
	} else {
		tb.doc = append(tb.doc, &model.BulletList{Items: tb.listItems})
	}
	tb.listItems = nil
	tb.listKind = ""
}

// spans converts the children of a block node. A block with only a bare
// text field is treated as one unmarked span.
func (tb *treeBuilder) spans(n model.TreeNode, path string) []model.Span {
	if len(n.Children) == 0 {
		return textSpans(n.Text)
	}

	var spans []model.Span
	for j, child := range n.Children {
		if child.Text == "" {
			continue
		}
		childPath := fmt.Sprintf("%s.children[%d]", path, j)
		if child.Type != "" && child.Type != "span" {
			tb.warn(childPath, "inline %q object rendered as text", child.Type)
		}
		mark := tb.mark(n, child.Marks, childPath)
		if mark.Kind == model.MarkNone {
			spans = append(spans, textSpans(child.Text)...)
			continue
		}
		spans = append(spans, model.Span{Text: child.Text, Mark: mark})
	}
	return spans
}

// mark resolves a span's mark names to the single highest-precedence mark
func (tb *treeBuilder) mark(n model.TreeNode, names []string, path string) model.Mark {
	var best model.Mark
	for _, name := range names {
		m, ok := resolveMark(n, name)
		if !ok {
			tb.warn(path, "unknown mark %q rendered as plain text", name)
			continue
		}
		if m.Kind == model.MarkLink && !model.IsSafeHref(m.Href) {
			tb.warn(path, "link to %q rendered as plain text", m.Href)
			continue
		}
		if markRank[m.Kind] > markRank[best.Kind] {
			best = m
		}
	}
	return best
}

func resolveMark(n model.TreeNode, name string) (model.Mark, bool) {
	switch name {
	case "strong", "bold":
		return model.Mark{Kind: model.MarkBold}, true
	case "em", "italic":
		return model.Mark{Kind: model.MarkItalic}, true
	case "code":
		return model.Mark{Kind: model.MarkCode}, true
	}

	md, ok := n.FindMarkDef(name)
	if !ok || md.Type != "link" || strings.TrimSpace(md.Href) == "" {
		return model.Mark{}, false
	}
	href := strings.TrimSpace(md.Href)
	if len(href) > len("mailto:") && strings.EqualFold(href[:len("mailto:")], "mailto:") {
		return model.Mark{Kind: model.MarkMailto, Href: href[len("mailto:"):]}, true
	}
	return model.Mark{Kind: model.MarkLink, Href: href}, true
}

// textSpans splits unmarked text on newlines into plain spans separated by
// line breaks
func textSpans(s string) []model.Span {
	if !strings.Contains(s, "\n") {
		if s == "" {
			return nil
		}
		return []model.Span{model.Plain(s)}
	}

	var spans []model.Span
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			spans = append(spans, model.LineBreak())
		}
		if line != "" {
			spans = append(spans, model.Plain(line))
		}
	}
	return spans
}

func nodeName(n model.TreeNode) string {
	if n.Type == "" {
		return "untyped"
	}
	return fmt.Sprintf("%q", n.Type)
}
