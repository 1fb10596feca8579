package a11y

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokenforge/pkg/color"
	"github.com/gnana997/tokenforge/pkg/insight"
	"github.com/gnana997/tokenforge/pkg/tokens"
)

func testTree(t *testing.T) *tokens.Tree {
	t.Helper()
	g := tokens.New(tokens.DefaultOptions())
	return g.Generate(insight.Insight{
		ImageryPalette:     []string{"#3b82f6", "#f97316"},
		TypographyFamilies: []string{"Inter"},
		UIDensity:          insight.DensityRegular,
	})
}

func TestValidateColorCombination_AA(t *testing.T) {
	v := New(DefaultOptions())
	r := v.ValidateColorCombination("#666666", "#ffffff")

	assert.True(t, r.Passes)
	assert.Equal(t, LevelAA, r.Level)
	assert.GreaterOrEqual(t, r.Ratio, 4.5)
	assert.Less(t, r.Ratio, 7.0)
	assert.Empty(t, r.AdjustedForeground, "passing pairs carry no suggestion")
}

func TestValidateColorCombination_AAA(t *testing.T) {
	v := New(DefaultOptions())
	r := v.ValidateColorCombination("#000000", "#ffffff")

	assert.True(t, r.Passes)
	assert.Equal(t, LevelAAA, r.Level)
	assert.InDelta(t, 21.0, r.Ratio, 0.1)
}

func TestValidateColorCombination_FailWithRepair(t *testing.T) {
	v := New(DefaultOptions())
	r := v.ValidateColorCombination("#cccccc", "#ffffff")

	require.False(t, r.Passes)
	assert.Equal(t, LevelFail, r.Level)
	require.NotEmpty(t, r.AdjustedForeground)

	// Re-validating the suggestion against the same background passes.
	fixed := v.ValidateColorCombination(r.AdjustedForeground, "#ffffff")
	assert.True(t, fixed.Passes)
}

func TestValidateColorCombination_NoFixAvailable(t *testing.T) {
	// White on white cannot reach 21:1 within the bounded darkening loop.
	v := New(Options{MinContrastRatio: 21})
	r := v.ValidateColorCombination("#ffffff", "#ffffff")

	assert.False(t, r.Passes)
	assert.Empty(t, r.AdjustedForeground)
}

func TestValidateColorCombination_SymmetricRatio(t *testing.T) {
	v := New(DefaultOptions())
	ab := v.ValidateColorCombination("#123456", "#fedcba")
	ba := v.ValidateColorCombination("#fedcba", "#123456")
	assert.Equal(t, ab.Ratio, ba.Ratio)
	assert.Equal(t, ab.Level, ba.Level)
}

func TestValidateColorCombination_InvalidHexActsAsBlack(t *testing.T) {
	// Documented fallback: an unparseable color resolves to luminance 0 and
	// therefore contrasts against white like pure black does.
	v := New(DefaultOptions())
	r := v.ValidateColorCombination("definitely-not-a-color", "#ffffff")
	assert.InDelta(t, 21.0, r.Ratio, 0.1)
	assert.Equal(t, LevelAAA, r.Level)
}

func TestValidator_LuminanceCacheConsistency(t *testing.T) {
	v := New(DefaultOptions())
	first := v.ValidateColorCombination("#3b82f6", "#ffffff")
	second := v.ValidateColorCombination("#3b82f6", "#ffffff")
	assert.Equal(t, first, second)
	assert.Equal(t, color.ContrastRatio("#3b82f6", "#ffffff"), first.Ratio,
		"cached path matches the uncached computation")
}

func TestValidateTokens_PairCounts(t *testing.T) {
	v := New(DefaultOptions())

	t.Run("nil tree", func(t *testing.T) {
		assert.Empty(t, v.ValidateTokens(nil))
	})

	t.Run("empty tree", func(t *testing.T) {
		assert.Empty(t, v.ValidateTokens(&tokens.Tree{}))
	})

	t.Run("one color", func(t *testing.T) {
		tree := &tokens.Tree{Color: tokens.NewGroup()}
		tree.Color.Put("only", tokens.ColorToken("color", "#336699"))
		assert.Empty(t, v.ValidateTokens(tree))
	})

	t.Run("two colors yield both orderings", func(t *testing.T) {
		tree := &tokens.Tree{Color: tokens.NewGroup()}
		tree.Color.Put("a", tokens.ColorToken("color", "#000000"))
		tree.Color.Put("b", tokens.ColorToken("color", "#ffffff"))

		results := v.ValidateTokens(tree)
		require.Len(t, results, 2)
		assert.Equal(t, "#000000", results[0].Foreground)
		assert.Equal(t, "#ffffff", results[0].Background)
		assert.Equal(t, "#ffffff", results[1].Foreground)
		assert.Equal(t, "#000000", results[1].Background)
	})

	t.Run("full tree yields n(n-1)", func(t *testing.T) {
		tree := testTree(t)
		n := len(CollectColors(tree))
		require.Greater(t, n, 2)
		assert.Len(t, v.ValidateTokens(tree), n*(n-1))
	})
}

func TestCollectColors(t *testing.T) {
	tree := testTree(t)
	colors := CollectColors(tree)

	names := make(map[string]string, len(colors))
	for _, c := range colors {
		names[c.Name] = c.Hex
	}
	assert.Equal(t, "#3b82f6", names["primary-500"])
	assert.Contains(t, names, "neutral-50")
	assert.Contains(t, names, "semantic-info")

	// Non-color categories never leak in.
	for _, c := range colors {
		_, ok := color.HexToRGB(c.Hex)
		assert.True(t, ok, "%s holds %q", c.Name, c.Hex)
	}
}

func TestCollectColors_IgnoresNonColorLeaves(t *testing.T) {
	tree := &tokens.Tree{Color: tokens.NewGroup()}
	tree.Color.Put("real", tokens.ColorToken("color", "#112233"))
	tree.Color.Put("stray", tokens.StringToken("string", "not a color"))

	colors := CollectColors(tree)
	require.Len(t, colors, 1)
	assert.Equal(t, "real", colors[0].Name)
}
