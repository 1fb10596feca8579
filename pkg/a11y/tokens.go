package a11y

import (
	"strings"

	"github.com/gnana997/tokenforge/pkg/tokens"
)

// NamedColor is one color leaf extracted from a token tree, with its '-'
// joined path inside the color subtree as the name.
type NamedColor struct {
	Name string
	Hex  string
}

// CollectColors extracts every color leaf from the tree's color subtree in
// deterministic (sorted-path) order. Non-color categories and non-color
// leaves are ignored. A nil tree yields an empty slice.
func CollectColors(tree *tokens.Tree) []NamedColor {
	var out []NamedColor
	if tree == nil {
		return out
	}
	tree.Color.Walk(func(path []string, t tokens.Token) {
		if t.Kind != tokens.KindColor {
			return
		}
		out = append(out, NamedColor{Name: strings.Join(path, "-"), Hex: t.Color})
	})
	return out
}

// ValidateTokens checks every ordered pair of distinct extracted colors and
// returns one result per ordering: with n colors the slice holds n·(n-1)
// entries, since the consuming report treats foreground and background
// asymmetrically. Zero or one extracted color yields an empty slice.
func (v *Validator) ValidateTokens(tree *tokens.Tree) []Result {
	colors := CollectColors(tree)
	if len(colors) < 2 {
		return []Result{}
	}

	results := make([]Result, 0, len(colors)*(len(colors)-1))
	for i := range colors {
		for j := range colors {
			if i == j {
				continue
			}
			results = append(results, v.ValidateColorCombination(colors[i].Hex, colors[j].Hex))
		}
	}
	return results
}
