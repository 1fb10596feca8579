package tokens

import "strings"

// FlatTokens is the legacy flat format consumed by older template tooling.
// The conversion is lossy (shadow, transition and sizing are dropped) and
// one-directional; there is no inverse.
type FlatTokens struct {
	Colors       map[string]string `json:"colors"`
	FontFamilies map[string]string `json:"fontFamilies"`
	FontSizes    map[string]string `json:"fontSizes"`
	FontWeights  map[string]string `json:"fontWeights"`
	LineHeights  map[string]string `json:"lineHeights"`
	Spacing      map[string]string `json:"spacing"`
	BorderRadius map[string]string `json:"borderRadius"`
}

// ConvertToLegacyFormat flattens the nested color subtree with '-' joined
// keys and extracts the typography, spacing and borderRadius categories into
// flat string-keyed maps. Values are rendered as CSS text.
func ConvertToLegacyFormat(tree *Tree) FlatTokens {
	flat := FlatTokens{
		Colors:       map[string]string{},
		FontFamilies: map[string]string{},
		FontSizes:    map[string]string{},
		FontWeights:  map[string]string{},
		LineHeights:  map[string]string{},
		Spacing:      map[string]string{},
		BorderRadius: map[string]string{},
	}
	if tree == nil {
		return flat
	}

	tree.Color.Walk(func(path []string, t Token) {
		flat.Colors[strings.Join(path, "-")] = t.CSSValue()
	})

	if tree.Typography != nil {
		flattenGroup(tree.Typography, "fontFamily", flat.FontFamilies)
		flattenGroup(tree.Typography, "fontSize", flat.FontSizes)
		flattenGroup(tree.Typography, "fontWeight", flat.FontWeights)
		flattenGroup(tree.Typography, "lineHeight", flat.LineHeights)
	}

	tree.Spacing.Walk(func(path []string, t Token) {
		flat.Spacing[strings.Join(path, "-")] = t.CSSValue()
	})
	tree.BorderRadius.Walk(func(path []string, t Token) {
		flat.BorderRadius[strings.Join(path, "-")] = t.CSSValue()
	})

	return flat
}

// flattenGroup copies the leaves of one named subgroup into a flat map.
func flattenGroup(parent *Node, name string, out map[string]string) {
	group, ok := parent.Child(name)
	if !ok {
		return
	}
	group.Walk(func(path []string, t Token) {
		out[strings.Join(path, "-")] = t.CSSValue()
	})
}
