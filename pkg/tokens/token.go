// Package tokens derives a complete design-token tree from a compact design
// brief: color ramps, typography scales, spacing/sizing, radii, shadows and
// transitions. Generation is deterministic: the same insight and options
// always produce the same tree, and every call returns a fresh tree.
package tokens

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the value held by a Token. Consumers must branch on it
// explicitly instead of assuming a value shape from the token's position in
// the tree.
type Kind string

const (
	KindColor       Kind = "color"
	KindString      Kind = "string"
	KindNumber      Kind = "number"
	KindNumberArray Kind = "numberArray"
)

// Token is a single named design value with an explicit type tag (the design
// token "type", e.g. "color", "fontSizes", "spacing") and a kind-tagged
// value. Exactly one of Color/Str/Num/Nums is meaningful, selected by Kind.
type Token struct {
	Type string
	Kind Kind

	Color string
	Str   string
	Num   float64
	Nums  []float64
}

// ColorToken builds a color-valued token. The hex value is stored verbatim.
func ColorToken(typ, hex string) Token {
	return Token{Type: typ, Kind: KindColor, Color: hex}
}

// StringToken builds a string-valued token.
func StringToken(typ, v string) Token {
	return Token{Type: typ, Kind: KindString, Str: v}
}

// NumberToken builds a number-valued token.
func NumberToken(typ string, v float64) Token {
	return Token{Type: typ, Kind: KindNumber, Num: v}
}

// NumberArrayToken builds a token holding a numeric quadruple, used for
// cubic-bezier easing coefficients.
func NumberArrayToken(typ string, v []float64) Token {
	return Token{Type: typ, Kind: KindNumberArray, Nums: v}
}

// unitless token types render their numbers without a px suffix.
var unitlessTypes = map[string]bool{
	"fontWeights": true,
	"lineHeights": true,
}

// CSSValue renders the token's value as CSS text: colors as hex, numbers
// with a px unit (except unitless types like font weights), and numeric
// quadruples as a cubic-bezier() expression.
func (t Token) CSSValue() string {
	switch t.Kind {
	case KindColor:
		return t.Color
	case KindString:
		return t.Str
	case KindNumber:
		n := strconv.FormatFloat(t.Num, 'f', -1, 64)
		if unitlessTypes[t.Type] {
			return n
		}
		return n + "px"
	case KindNumberArray:
		parts := make([]string, len(t.Nums))
		for i, v := range t.Nums {
			parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		return fmt.Sprintf("cubic-bezier(%s)", strings.Join(parts, ", "))
	default:
		return ""
	}
}

// MarshalJSON emits the wire shape {"type": ..., "value": ...}, with the
// value's JSON type selected by Kind.
func (t Token) MarshalJSON() ([]byte, error) {
	var value any
	switch t.Kind {
	case KindColor:
		value = t.Color
	case KindString:
		value = t.Str
	case KindNumber:
		value = t.Num
	case KindNumberArray:
		value = t.Nums
	default:
		return nil, fmt.Errorf("token has unknown kind %q", t.Kind)
	}
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value any    `json:"value"`
	}{Type: t.Type, Value: value})
}
