package portabletext

import (
	"fmt"

	"github.com/tsawler/richtext/model"
)

// FromDocument converts a document into a block tree that builds back into
// the same document. Adjacent plain spans and line breaks are merged into one
// span whose text carries "\n", and adjacent lists of the same kind come back
// as a single list.
func FromDocument(doc model.Document) model.BlockTree {
	var tree model.BlockTree
	for _, b := range doc {
		switch v := b.(type) {
		case *model.Heading:
			tree = append(tree, blockNode(len(tree), fmt.Sprintf("h%d", v.Level), v.Spans))
		case *model.Paragraph:
			tree = append(tree, blockNode(len(tree), "normal", v.Spans))
		case *model.Blockquote:
			tree = append(tree, blockNode(len(tree), "blockquote", v.Spans))
		case *model.BulletList:
			tree = appendItems(tree, "bullet", v.Items)
		case *model.NumberedList:
			tree = appendItems(tree, "number", v.Items)
		}
	}
	return tree
}

func appendItems(tree model.BlockTree, kind string, items []model.ListItem) model.BlockTree {
	for _, item := range items {
		n := blockNode(len(tree), "normal", item.Spans)
		n.ListItem = kind
		n.Level = item.Level
		tree = append(tree, n)
	}
	return tree
}

func blockNode(index int, style string, spans []model.Span) model.TreeNode {
	n := model.TreeNode{
		Type:  "block",
		Key:   fmt.Sprintf("b%d", index),
		Style: style,
	}

	for _, s := range spans {
		if s.IsPlain() {
			if last := len(n.Children) - 1; last >= 0 && len(n.Children[last].Marks) == 0 {
				n.Children[last].Text += s.Text
				continue
			}
			n.Children = append(n.Children, model.TreeSpan{Type: "span", Text: s.Text})
			continue
		}
		n.Children = append(n.Children, model.TreeSpan{Type: "span", Text: s.Text, Marks: []string{markName(&n, s.Mark)}})
	}
	return n
}

// markName returns the mark name for m, adding a link definition to n for
// links and mailto addresses
func markName(n *model.TreeNode, m model.Mark) string {
	switch m.Kind {
	case model.MarkBold:
		return "strong"
	case model.MarkItalic:
		return "em"
	case model.MarkCode:
		return "code"
	}

	href := m.Href
	if m.Kind == model.MarkMailto {
		href = "mailto:" + href
	}
	key := fmt.Sprintf("l%d", len(n.MarkDefs))
	n.MarkDefs = append(n.MarkDefs, model.MarkDef{Key: key, Type: "link", Href: href})
	return key
}
