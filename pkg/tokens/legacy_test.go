package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToLegacyFormat(t *testing.T) {
	tree := New(DefaultOptions()).Generate(testInsight())
	flat := ConvertToLegacyFormat(tree)

	// Nested color keys flatten with '-' joins.
	assert.Equal(t, "#3b82f6", flat.Colors["primary-500"])
	assert.Contains(t, flat.Colors, "neutral-900")
	assert.Contains(t, flat.Colors, "semantic-error")

	assert.Equal(t, "Inter, sans-serif", flat.FontFamilies["primary"])
	assert.Equal(t, "16px", flat.FontSizes["base"])
	assert.Equal(t, "700", flat.FontWeights["bold"], "font weights render unitless")
	assert.Equal(t, "1.5", flat.LineHeights["normal"])
	assert.Equal(t, "16px", flat.Spacing["md"])
	assert.Equal(t, "6px", flat.BorderRadius["md"])
}

func TestConvertToLegacyFormat_LossyByDesign(t *testing.T) {
	tree := New(DefaultOptions()).Generate(testInsight())
	flat := ConvertToLegacyFormat(tree)

	// Shadow, transition and sizing do not survive the conversion; the
	// flat format simply has no place for them.
	for key := range flat.Spacing {
		assert.NotContains(t, key, "shadow")
		assert.NotContains(t, key, "easing")
	}
}

func TestConvertToLegacyFormat_NilTree(t *testing.T) {
	flat := ConvertToLegacyFormat(nil)
	assert.Empty(t, flat.Colors)
	assert.Empty(t, flat.Spacing)
	require.NotNil(t, flat.Colors, "maps are initialized even for nil input")
}

func TestTokenCSSValue(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"color", ColorToken("color", "#ff0000"), "#ff0000"},
		{"string", StringToken("fontFamilies", "Inter, sans-serif"), "Inter, sans-serif"},
		{"px number", NumberToken("spacing", 16), "16px"},
		{"unitless weight", NumberToken("fontWeights", 600), "600"},
		{"unitless line height", NumberToken("lineHeights", 1.25), "1.25"},
		{"easing", NumberArrayToken("cubicBezier", []float64{0.4, 0, 0.2, 1}), "cubic-bezier(0.4, 0, 0.2, 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.CSSValue())
		})
	}
}

func TestTokenMarshalJSON(t *testing.T) {
	b, err := ColorToken("color", "#3b82f6").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"color","value":"#3b82f6"}`, string(b))

	b, err = NumberArrayToken("cubicBezier", []float64{0, 0, 0.2, 1}).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"cubicBezier","value":[0,0,0.2,1]}`, string(b))
}
