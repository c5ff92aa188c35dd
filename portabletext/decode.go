package portabletext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/richtext/model"
)

// Incoming shapes. Type is a pointer so that a missing _type can be told
// apart from an empty one; nested arrays stay raw until their own element
// paths are known.
type (
	inNode struct {
		Type     *string           `json:"_type"`
		Key      string            `json:"_key"`
		Style    string            `json:"style"`
		ListItem string            `json:"listItem"`
		Level    int               `json:"level"`
		Text     string            `json:"text"`
		Children []json.RawMessage `json:"children"`
		MarkDefs []json.RawMessage `json:"markDefs"`
	}

	inSpan struct {
		Type  *string  `json:"_type"`
		Text  string   `json:"text"`
		Marks []string `json:"marks"`
	}

	inMarkDef struct {
		Type *string `json:"_type"`
		Key  string  `json:"_key"`
		Href string  `json:"href"`
	}
)

// Decode parses a Portable Text JSON array into a block tree.
// Every node, span and mark definition must carry a non-empty _type, and
// nothing but whitespace may follow the closing bracket. Fields the engine
// does not use are ignored.
func Decode(r io.Reader) (model.BlockTree, error) {
	var root location

	dec := json.NewDecoder(r)
	var items []json.RawMessage
	if err := dec.Decode(&items); err != nil {
		return nil, translate(root, err, ErrExpectedArray)
	}
	if items == nil {
		return nil, root.fail(ErrExpectedArray) // null
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, root.fail(ErrTrailingData)
	}

	tree := make(model.BlockTree, 0, len(items))
	for i, raw := range items {
		n, err := decodeNode(raw, root.index(i))
		if err != nil {
			return nil, err
		}
		tree = append(tree, n)
	}
	return tree, nil
}

// DecodeString is a convenience wrapper for Decode
func DecodeString(s string) (model.BlockTree, error) {
	return Decode(strings.NewReader(s))
}

// DecodeBytes is a convenience wrapper for Decode
func DecodeBytes(b []byte) (model.BlockTree, error) {
	return Decode(bytes.NewReader(b))
}

func decodeNode(raw json.RawMessage, at location) (model.TreeNode, error) {
	var in inNode
	if err := unmarshalObject(raw, &in, at); err != nil {
		return model.TreeNode{}, err
	}
	typ, err := typeOf(in.Type, at)
	if err != nil {
		return model.TreeNode{}, err
	}

	n := model.TreeNode{
		Type:     typ,
		Key:      in.Key,
		Style:    in.Style,
		ListItem: in.ListItem,
		Level:    in.Level,
		Text:     in.Text,
	}
	for i, c := range in.Children {
		s, err := decodeSpan(c, at.field("children").index(i))
		if err != nil {
			return model.TreeNode{}, err
		}
		n.Children = append(n.Children, s)
	}
	for i, m := range in.MarkDefs {
		md, err := decodeMarkDef(m, at.field("markDefs").index(i))
		if err != nil {
			return model.TreeNode{}, err
		}
		n.MarkDefs = append(n.MarkDefs, md)
	}
	return n, nil
}

func decodeSpan(raw json.RawMessage, at location) (model.TreeSpan, error) {
	var in inSpan
	if err := unmarshalObject(raw, &in, at); err != nil {
		return model.TreeSpan{}, err
	}
	typ, err := typeOf(in.Type, at)
	if err != nil {
		return model.TreeSpan{}, err
	}
	return model.TreeSpan{Type: typ, Text: in.Text, Marks: in.Marks}, nil
}

func decodeMarkDef(raw json.RawMessage, at location) (model.MarkDef, error) {
	var in inMarkDef
	if err := unmarshalObject(raw, &in, at); err != nil {
		return model.MarkDef{}, err
	}
	typ, err := typeOf(in.Type, at)
	if err != nil {
		return model.MarkDef{}, err
	}
	return model.MarkDef{Key: in.Key, Type: typ, Href: in.Href}, nil
}

// unmarshalObject decodes one tree element into v. A JSON null is not an
// object even though encoding/json would accept it.
func unmarshalObject(raw json.RawMessage, v any, at location) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return at.fail(ErrExpectedObject)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return translate(at, err, ErrExpectedObject)
	}
	return nil
}

func typeOf(t *string, at location) (string, error) {
	switch {
	case t == nil:
		return "", at.fail(ErrMissingType)
	case *t == "":
		return "", at.fail(ErrInvalidType)
	}
	return *t, nil
}

// translate turns an encoding/json error into an *Error. A type mismatch on
// a named field is reported at that field; a mismatch of the value itself
// becomes whole.
func translate(at location, err error, whole error) error {
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) {
		return at.fail(fmt.Errorf("%w: %w", ErrSyntax, err))
	}

	switch te.Field {
	case "":
		return at.fail(whole)
	case "_type":
		return at.fail(ErrInvalidType)
	case "marks":
		return at.field(te.Field).fail(ErrInvalidMarks)
	case "level":
		return at.field(te.Field).fail(ErrInvalidNumber)
	case "children", "markDefs":
		return at.field(te.Field).fail(ErrExpectedArray)
	default:
		return at.field(te.Field).fail(ErrExpectedString)
	}
}
