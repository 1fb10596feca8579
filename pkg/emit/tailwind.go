// Package emit renders token trees into consumer text formats: Tailwind
// configuration, CSS custom properties, React component templates and
// Storybook stories. Everything here is string templating over the fixed
// component shapes; the numeric work all happens upstream in the generator.
package emit

import (
	"fmt"
	"strings"

	"github.com/gnana997/tokenforge/pkg/tokens"
)

// TailwindConfig renders the tree as a tailwind.config.js module. Category
// nodes map onto the theme keys Tailwind expects; missing categories are
// simply left out of the extend block.
func TailwindConfig(tree *tokens.Tree) string {
	var b strings.Builder
	b.WriteString("/** Generated by tokenforge. Do not edit by hand. */\n")
	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")

	if tree != nil {
		writeThemeKey(&b, "colors", tree.Color)
		if tree.Typography != nil {
			if family, ok := tree.Typography.Child("fontFamily"); ok {
				writeThemeKey(&b, "fontFamily", family)
			}
			if size, ok := tree.Typography.Child("fontSize"); ok {
				writeThemeKey(&b, "fontSize", size)
			}
		}
		writeThemeKey(&b, "spacing", tree.Spacing)
		writeThemeKey(&b, "borderRadius", tree.BorderRadius)
		writeThemeKey(&b, "boxShadow", tree.Shadow)
		if tree.Transition != nil {
			if duration, ok := tree.Transition.Child("duration"); ok {
				writeThemeKey(&b, "transitionDuration", duration)
			}
			if easing, ok := tree.Transition.Child("easing"); ok {
				writeThemeKey(&b, "transitionTimingFunction", easing)
			}
		}
	}

	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")
	return b.String()
}

// writeThemeKey renders one theme entry from a token subtree. Nil or empty
// nodes emit nothing.
func writeThemeKey(b *strings.Builder, key string, n *tokens.Node) {
	if n == nil || n.Len() == 0 {
		return
	}
	fmt.Fprintf(b, "      %s: ", key)
	writeNodeJS(b, n, 6)
	b.WriteString(",\n")
}

// writeNodeJS renders a node as a JS object literal, leaves as quoted CSS
// values. Child names that are not plain identifiers (numeric stops, names
// like "2xl") come out quoted.
func writeNodeJS(b *strings.Builder, n *tokens.Node, indent int) {
	if tok, ok := n.Token(); ok {
		fmt.Fprintf(b, "%q", tok.CSSValue())
		return
	}

	pad := strings.Repeat(" ", indent)
	b.WriteString("{\n")
	for _, name := range n.Names() {
		child, _ := n.Child(name)
		fmt.Fprintf(b, "%s  %s: ", pad, jsKey(name))
		writeNodeJS(b, child, indent+2)
		b.WriteString(",\n")
	}
	b.WriteString(pad + "}")
}

// jsKey quotes a key unless it is a safe bare identifier.
func jsKey(name string) string {
	for i, r := range name {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		digit := r >= '0' && r <= '9'
		if alpha || (digit && i > 0) {
			continue
		}
		return fmt.Sprintf("%q", name)
	}
	if name == "" {
		return `""`
	}
	return name
}
