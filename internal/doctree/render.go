package doctree

import (
	"iter"
	"strconv"
	"strings"
)

// Fragments returns the text fragments of nodes in document order. Rendering
// never fails: nodes of unknown kinds fall through to their content.
func Fragments(nodes []Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		walkAll(nodes, yield)
	}
}

// Render concatenates all fragments of nodes.
func Render(nodes []Node) string {
	var sb strings.Builder
	for frag := range Fragments(nodes) {
		sb.WriteString(frag)
	}
	return sb.String()
}

func walkAll(nodes []Node, yield func(string) bool) bool {
	for _, n := range nodes {
		if !walk(n, yield) {
			return false
		}
	}
	return true
}

func walk(n Node, yield func(string) bool) bool {
	switch n.Kind {
	case KindText:
		return yield(n.Text)
	case KindHeading:
		prefix := strings.Repeat("#", n.Level()) + " "
		return yield("\n" + prefix + Render(n.Content) + "\n")
	case KindBulletList:
		return yield(renderList(n.Content, func(int) string { return "- " }))
	case KindOrderedList:
		// Ordinals follow the item's source position, so a dropped empty
		// item still consumes its number.
		return yield(renderList(n.Content, func(i int) string { return strconv.Itoa(i+1) + ". " }))
	case KindParagraph, KindListItem:
		return yield(Render(n.Content))
	case KindHardBreak:
		return yield("\n")
	default:
		return walkAll(n.Content, yield)
	}
}

func renderList(items []Node, marker func(i int) string) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		text := strings.TrimSpace(Render([]Node{item}))
		if text == "" {
			continue
		}
		lines = append(lines, marker(i)+text)
	}
	return strings.Join(lines, "\n") + "\n"
}
