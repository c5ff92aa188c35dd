package portabletext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/richtext/model"
)

// Value converts a description as handed over by a CMS client into a raw
// value. It accepts nil, strings, raw JSON ([]byte, json.RawMessage), slices
// of nodes or strings, a single node map and model.RawValue. It never fails:
// JSON that does not parse is treated as a plain string, and nodes of an
// unknown shape keep only their flattened text.
func Value(v any) model.RawValue {
	switch x := v.(type) {
	case nil:
		return nil
	case model.RawValue:
		return x
	case string:
		return model.PlainString(x)
	case []byte:
		return fromJSON(x)
	case json.RawMessage:
		return fromJSON(x)
	case []string:
		tree := make(model.BlockTree, 0, len(x))
		for _, s := range x {
			tree = append(tree, stringNode(s))
		}
		return tree
	case []map[string]any:
		tree := make(model.BlockTree, 0, len(x))
		for _, m := range x {
			if m != nil {
				tree = append(tree, nodeFromMap(m))
			}
		}
		return tree
	case []any:
		tree := make(model.BlockTree, 0, len(x))
		for _, item := range x {
			if n, ok := nodeFromAny(item); ok {
				tree = append(tree, n)
			}
		}
		return tree
	case map[string]any:
		return model.BlockTree{nodeFromMap(x)}
	case fmt.Stringer:
		return model.PlainString(x.String())
	default:
		return model.PlainString(fmt.Sprint(x))
	}
}

// fromJSON decodes raw JSON leniently; anything that is not JSON is text
func fromJSON(b []byte) model.RawValue {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return model.PlainString("")
	}
	switch trimmed[0] {
	case '[', '{', '"':
	default:
		return model.PlainString(string(b))
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return model.PlainString(string(b))
	}
	return Value(v)
}

func nodeFromAny(v any) (model.TreeNode, bool) {
	switch x := v.(type) {
	case nil:
		return model.TreeNode{}, false
	case string:
		return stringNode(x), true
	case map[string]any:
		return nodeFromMap(x), true
	default:
		return model.TreeNode{Text: flattenText(x)}, true
	}
}

// stringNode wraps a bare string found inside a block array
func stringNode(s string) model.TreeNode {
	return model.TreeNode{
		Type:     "block",
		Style:    "normal",
		Children: []model.TreeSpan{{Type: "span", Text: s}},
	}
}

func nodeFromMap(m map[string]any) model.TreeNode {
	n := model.TreeNode{
		Type:     stringField(m, "_type"),
		Key:      stringField(m, "_key"),
		Style:    stringField(m, "style"),
		ListItem: stringField(m, "listItem"),
		Level:    intField(m, "level"),
		Text:     stringField(m, "text"),
	}

	if arr, ok := m["children"].([]any); ok {
		for _, c := range arr {
			switch cv := c.(type) {
			case map[string]any:
				n.Children = append(n.Children, model.TreeSpan{
					Type:  stringField(cv, "_type"),
					Text:  textOf(cv["text"]),
					Marks: stringSlice(cv["marks"]),
				})
			case string:
				n.Children = append(n.Children, model.TreeSpan{Type: "span", Text: cv})
			}
		}
	}

	if arr, ok := m["markDefs"].([]any); ok {
		for _, d := range arr {
			if dm, ok := d.(map[string]any); ok {
				n.MarkDefs = append(n.MarkDefs, model.MarkDef{
					Key:  stringField(dm, "_key"),
					Type: stringField(dm, "_type"),
					Href: stringField(dm, "href"),
				})
			}
		}
	}

	if n.Type == "" && len(n.Children) > 0 {
		n.Type = "block"
	}
	if len(n.Children) == 0 && n.Text == "" {
		n.Text = flattenText(m)
	}
	return n
}

// flattenText collects nested "text" strings in key order
func flattenText(v any) string {
	var parts []string
	collectText(v, &parts)
	return strings.Join(parts, " ")
}

func collectText(v any, parts *[]string) {
	switch x := v.(type) {
	case map[string]any:
		if s, ok := x["text"].(string); ok && strings.TrimSpace(s) != "" {
			*parts = append(*parts, s)
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			if k != "text" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			collectText(x[k], parts)
		}
	case []any:
		for _, item := range x {
			collectText(item, parts)
		}
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// textOf accepts numbers and booleans where text is expected
func textOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64, bool, int:
		return fmt.Sprint(x)
	default:
		return ""
	}
}

func intField(m map[string]any, key string) int {
	switch x := m[key].(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i)
		}
	case float64:
		return int(x)
	case int:
		return x
	}
	return 0
}

func stringSlice(v any) []string {
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, it := range x {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
