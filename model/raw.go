package model

import "strings"

// RawValue is the content handed over by the content source for a
// description field. Implementations are PlainString and BlockTree; a nil
// RawValue means the field was absent.
type RawValue interface {
	isRawValue()
}

// PlainString is a description authored as a single informal-markup string
type PlainString string

func (PlainString) isRawValue() {}

// BlockTree is a description authored as pre-typed blocks (Portable Text)
type BlockTree []TreeNode

func (BlockTree) isRawValue() {}

// TreeNode is one top-level node of a block tree. For "block" nodes Style,
// ListItem, Level, Children and MarkDefs follow Portable Text. Text holds the
// flattened text of nodes that carry a bare text field or whose shape was not
// recognized.
type TreeNode struct {
	Type     string
	Key      string
	Style    string
	ListItem string
	Level    int
	Children []TreeSpan
	MarkDefs []MarkDef
	Text     string
}

// TreeSpan is an inline child of a tree node
type TreeSpan struct {
	Type  string
	Text  string
	Marks []string
}

// MarkDef is an annotation definition referenced by span marks
type MarkDef struct {
	Key  string
	Type string
	Href string
}

// IsBlock reports whether this node is a Portable Text "block"
func (n TreeNode) IsBlock() bool { return n.Type == "block" }

// IsListItem reports whether the node declares a list kind
func (n TreeNode) IsListItem() bool { return n.ListItem != "" }

// GetText concatenates all span text, falling back to Text
func (n TreeNode) GetText() string {
	if len(n.Children) == 0 {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.Text)
	}
	return b.String()
}

// FindMarkDef returns the mark definition with the given key
func (n TreeNode) FindMarkDef(key string) (MarkDef, bool) {
	for _, md := range n.MarkDefs {
		if md.Key == key {
			return md, true
		}
	}
	return MarkDef{}, false
}

// IsEmptyRaw reports whether raw carries no content
func IsEmptyRaw(raw RawValue) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case PlainString:
		return strings.TrimSpace(string(v)) == ""
	case BlockTree:
		return len(v) == 0
	default:
		return true
	}
}
