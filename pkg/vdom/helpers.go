package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}
	for _, child := range children {
		node.Children = append(node.Children, Children(child)...)
	}
	return node
}

// Children normalizes a child value into nodes. It accepts the shapes a
// props bag can carry under "children": *VNode, []*VNode, Component,
// string, fmt.Stringer and []any of those. Anything else yields nothing.
func Children(value any) []*VNode {
	switch v := value.(type) {
	case nil:
		return nil
	case *VNode:
		if v == nil {
			return nil
		}
		return []*VNode{v}
	case []*VNode:
		out := make([]*VNode, 0, len(v))
		for _, c := range v {
			if c != nil {
				out = append(out, c)
			}
		}
		return out
	case string:
		return []*VNode{Text(v)}
	case Component:
		return []*VNode{{Kind: KindComponent, Comp: v}}
	case []any:
		var out []*VNode
		for _, c := range v {
			out = append(out, Children(c)...)
		}
		return out
	case fmt.Stringer:
		return []*VNode{Text(v.String())}
	default:
		return nil
	}
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}
