// Package doctree models the rich-text note documents stored in the Granola
// cache and flattens them into markdown-like text.
package doctree

import (
	"encoding/json"
	"math"
)

// Kind identifies a node type. Types the renderer does not know about decode
// as KindUnknown and keep their raw type name in Node.Type.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindHeading
	KindParagraph
	KindBulletList
	KindOrderedList
	KindListItem
	KindHardBreak
)

var kindsByType = map[string]Kind{
	"text":        KindText,
	"heading":     KindHeading,
	"paragraph":   KindParagraph,
	"bulletList":  KindBulletList,
	"orderedList": KindOrderedList,
	"listItem":    KindListItem,
	"hardBreak":   KindHardBreak,
}

// Node is one element of a document tree. Nodes are never mutated after
// decoding.
type Node struct {
	Kind  Kind
	Type  string
	Attrs map[string]any
	// Text is only meaningful for KindText.
	Text    string
	Content []Node
}

// DefaultHeadingLevel is used when a heading carries no usable level.
const DefaultHeadingLevel = 1

// Level returns the heading level from attrs, or DefaultHeadingLevel when it
// is missing, not a whole number, or below one.
func (n Node) Level() int {
	switch v := n.Attrs["level"].(type) {
	case float64:
		if v >= 1 && v == math.Trunc(v) && v <= math.MaxInt32 {
			return int(v)
		}
	case int:
		if v >= 1 {
			return v
		}
	case json.Number:
		if i, err := v.Int64(); err == nil && i >= 1 && i <= math.MaxInt32 {
			return int(i)
		}
	}
	return DefaultHeadingLevel
}

// Decode parses raw JSON into document nodes. Invalid JSON yields no nodes.
func Decode(raw []byte) []Node {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return FromValue(v)
}

// FromValue converts a generic decoded JSON value into nodes. An object
// becomes one node, a bare array contributes the nodes of each element in
// order, and anything else contributes nothing.
func FromValue(v any) []Node {
	switch t := v.(type) {
	case map[string]any:
		return []Node{nodeFromObject(t)}
	case []any:
		var nodes []Node
		for _, item := range t {
			nodes = append(nodes, FromValue(item)...)
		}
		return nodes
	}
	return nil
}

func nodeFromObject(obj map[string]any) Node {
	typ, _ := obj["type"].(string)
	n := Node{
		Kind: kindsByType[typ],
		Type: typ,
	}
	if attrs, ok := obj["attrs"].(map[string]any); ok {
		n.Attrs = attrs
	}
	if n.Kind == KindText {
		n.Text, _ = obj["text"].(string)
	}
	switch content := obj["content"].(type) {
	case nil:
	case []any:
		n.Content = children(content)
	default:
		n.Content = FromValue(content)
	}
	return n
}

// children keeps one node per element so list ordinals count every slot.
// Nulls and scalars become empty placeholders and a nested array becomes an
// untyped container.
func children(items []any) []Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case map[string]any:
			nodes = append(nodes, nodeFromObject(t))
		case []any:
			nodes = append(nodes, Node{Kind: KindUnknown, Content: children(t)})
		default:
			nodes = append(nodes, Node{Kind: KindUnknown})
		}
	}
	return nodes
}
