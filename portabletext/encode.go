package portabletext

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/tsawler/richtext/model"
)

type wireNode struct {
	Type     string        `json:"_type"`
	Key      string        `json:"_key,omitempty"`
	Style    string        `json:"style,omitempty"`
	ListItem string        `json:"listItem,omitempty"`
	Level    int           `json:"level,omitempty"`
	Children []wireSpan    `json:"children,omitempty"`
	MarkDefs []wireMarkDef `json:"markDefs,omitempty"`
	Text     string        `json:"text,omitempty"`
}

type wireSpan struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

type wireMarkDef struct {
	Key  string `json:"_key,omitempty"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Encode writes tree as a Portable Text JSON array. Nodes and spans without
// a type are written as "block" and "span" so the output decodes again.
func Encode(w io.Writer, tree model.BlockTree) error {
	nodes := make([]wireNode, 0, len(tree))
	for _, n := range tree {
		nodes = append(nodes, toWire(n))
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(nodes)
}

// EncodeString is a convenience wrapper for Encode
func EncodeString(tree model.BlockTree) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, tree); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toWire(n model.TreeNode) wireNode {
	out := wireNode{
		Type:     orDefault(n.Type, "block"),
		Key:      n.Key,
		Style:    n.Style,
		ListItem: n.ListItem,
		Level:    n.Level,
		Text:     n.Text,
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, wireSpan{
			Type:  orDefault(c.Type, "span"),
			Text:  c.Text,
			Marks: c.Marks,
		})
	}
	for _, md := range n.MarkDefs {
		out.MarkDefs = append(out.MarkDefs, wireMarkDef{
			Key:  md.Key,
			Type: orDefault(md.Type, "link"),
			Href: md.Href,
		})
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
