package emit

import (
	"fmt"
	"strings"

	"github.com/gnana997/tokenforge/pkg/color"
	"github.com/gnana997/tokenforge/pkg/tokens"
)

// CSSVariables renders every token as a custom property on :root. Variable
// names join the category and the path with '-', e.g.
// --color-primary-500. Color tokens additionally get an -hsl companion
// variable for consumers that compose colors in HSL space.
func CSSVariables(tree *tokens.Tree) string {
	var b strings.Builder
	b.WriteString("/* Generated by tokenforge. Do not edit by hand. */\n")
	b.WriteString(":root {\n")

	if tree != nil {
		writeVars(&b, "color", tree.Color)
		writeVars(&b, "typography", tree.Typography)
		writeVars(&b, "spacing", tree.Spacing)
		writeVars(&b, "sizing", tree.Sizing)
		writeVars(&b, "radius", tree.BorderRadius)
		writeVars(&b, "shadow", tree.Shadow)
		writeVars(&b, "transition", tree.Transition)
	}

	b.WriteString("}\n")
	return b.String()
}

func writeVars(b *strings.Builder, prefix string, n *tokens.Node) {
	n.Walk(func(path []string, t tokens.Token) {
		name := prefix + "-" + strings.Join(path, "-")
		fmt.Fprintf(b, "  --%s: %s;\n", name, t.CSSValue())
		if t.Kind == tokens.KindColor {
			fmt.Fprintf(b, "  --%s-hsl: %s;\n", name, color.HexToHSL(t.Color))
		}
	})
}
