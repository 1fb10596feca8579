package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRelativeLuminance(t *testing.T) {
	assert.Equal(t, 1.0, RelativeLuminance("#ffffff"))
	assert.Equal(t, 0.0, RelativeLuminance("#000000"))

	// Mid gray sits between the extremes.
	mid := RelativeLuminance("#808080")
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)

	// Invalid hex resolves to 0 and therefore behaves as pure black.
	assert.Equal(t, 0.0, RelativeLuminance("not-a-color"))
}

func TestContrastRatio_BlackWhite(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio("#000000", "#ffffff"), 0.1)
}

func TestContrastRatio_SameColor(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#3b82f6", "#fa8072"} {
		assert.Equal(t, 1.0, ContrastRatio(hex, hex), hex)
	}
}

func TestProperty_ContrastSymmetricAndBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := RGBToHex(
			rapid.Uint8().Draw(rt, "ar"),
			rapid.Uint8().Draw(rt, "ag"),
			rapid.Uint8().Draw(rt, "ab"),
		)
		b := RGBToHex(
			rapid.Uint8().Draw(rt, "br"),
			rapid.Uint8().Draw(rt, "bg"),
			rapid.Uint8().Draw(rt, "bb"),
		)

		ab := ContrastRatio(a, b)
		ba := ContrastRatio(b, a)

		require.Equal(t, ab, ba, "contrast ratio must be symmetric")
		require.GreaterOrEqual(t, ab, 1.0)
		require.LessOrEqual(t, ab, 21.0)
	})
}

func TestDarkenUntilContrast(t *testing.T) {
	t.Run("already passing color needs one step", func(t *testing.T) {
		fixed, ok := DarkenUntilContrast("#767676", "#ffffff", 4.5)
		require.True(t, ok)
		assert.GreaterOrEqual(t, ContrastRatio(fixed, "#ffffff"), 4.5)
	})

	t.Run("light gray on white is repairable", func(t *testing.T) {
		fixed, ok := DarkenUntilContrast("#cccccc", "#ffffff", 4.5)
		require.True(t, ok)
		assert.GreaterOrEqual(t, ContrastRatio(fixed, "#ffffff"), 4.5)
	})

	t.Run("white on white has no fix within the cap", func(t *testing.T) {
		// Darkening white by at most 0.8 leaves #333333, which is ~12.6:1
		// against white, so demand more than that to exhaust the loop.
		fixed, ok := DarkenUntilContrast("#ffffff", "#ffffff", 21.0)
		assert.False(t, ok)
		assert.Equal(t, "#ffffff", fixed, "original foreground comes back on failure")
	})

	t.Run("repair is bounded at eight steps", func(t *testing.T) {
		// The darkest candidate ever tried is Darken(fg, 0.8).
		darkest := Darken("#ffffff", 0.8)
		ratio := ContrastRatio(darkest, "#ffffff")
		_, ok := DarkenUntilContrast("#ffffff", "#ffffff", ratio+1)
		assert.False(t, ok)
	})
}
