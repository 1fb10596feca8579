package tokens

import (
	"encoding/json"
	"sort"
)

// Tree is the full token tree for one generated design system. The top-level
// category names are fixed; downstream consumers (Tailwind config, CSS
// variable emission) depend on exactly these keys. A nil category pointer
// means the category was not generated.
type Tree struct {
	Color        *Node `json:"color,omitempty"`
	Typography   *Node `json:"typography,omitempty"`
	Spacing      *Node `json:"spacing,omitempty"`
	Sizing       *Node `json:"sizing,omitempty"`
	BorderRadius *Node `json:"borderRadius,omitempty"`
	Shadow       *Node `json:"shadow,omitempty"`
	Transition   *Node `json:"transition,omitempty"`
}

// Node is one level of a token tree: either a leaf holding a Token, or an
// inner group of named children. A node is never both.
type Node struct {
	token    *Token
	children map[string]*Node
}

// NewGroup creates an empty group node.
func NewGroup() *Node {
	return &Node{children: make(map[string]*Node)}
}

// Put inserts (or replaces) a leaf token under name.
func (n *Node) Put(name string, t Token) {
	n.children[name] = &Node{token: &t}
}

// Group returns the child group named name, creating it if needed.
func (n *Node) Group(name string) *Node {
	if child, ok := n.children[name]; ok && child.children != nil {
		return child
	}
	child := NewGroup()
	n.children[name] = child
	return child
}

// Child returns the named child node, if present.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

// Token returns the leaf token held by this node, or false for group nodes.
func (n *Node) Token() (Token, bool) {
	if n.token == nil {
		return Token{}, false
	}
	return *n.token, true
}

// IsLeaf reports whether the node holds a token.
func (n *Node) IsLeaf() bool { return n.token != nil }

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.children) }

// Names returns the direct child names in sorted order, for deterministic
// iteration.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Walk visits every leaf token under n in depth-first sorted-name order.
// The path holds the child names from n down to the leaf; it is reused
// between calls, so callers must copy it if they retain it. Walk on a nil
// node is a no-op.
func (n *Node) Walk(fn func(path []string, t Token)) {
	if n == nil {
		return
	}
	n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn func(path []string, t Token)) {
	if n.token != nil {
		fn(path, *n.token)
		return
	}
	for _, name := range n.Names() {
		n.children[name].walk(append(path, name), fn)
	}
}

// MarshalJSON renders a leaf as its token and a group as an object of its
// children. Object keys come out sorted, which keeps serialized trees
// byte-stable across runs.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.token != nil {
		return json.Marshal(n.token)
	}
	return json.Marshal(n.children)
}
