// Package color implements the color math used by the token generator and
// the accessibility validator: hex/RGB/HSL conversion, WCAG relative
// luminance, contrast ratios, and channel blending.
//
// Every function is pure and none of them return errors. A hex string that
// does not match the strict 6-digit pattern is reported via the ok bool of
// HexToRGB; downstream functions fall back to well-defined behavior instead
// (blends become no-ops, luminance resolves to 0).
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// RGB holds one 8-bit channel triple.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// hexPattern matches a 6-hex-digit color with an optional leading '#'.
// Shorthand (#abc) and 8-digit (alpha) forms are deliberately rejected.
var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// HexToRGB parses a 6-digit hex color, with or without the leading '#'.
// The second return value is false for any string that does not match the
// strict pattern; callers must treat that as "keep the original string".
func HexToRGB(hex string) (RGB, bool) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, false
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// RGBToHex packs three channels into a '#'-prefixed lowercase hex string.
// Channels are expected pre-clamped to [0, 255] by the caller.
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Lighten blends each channel of hex toward 255 by amount (0 = identity,
// 1 = white). Invalid hex strings are returned unchanged.
func Lighten(hex string, amount float64) string {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return hex
	}
	return RGBToHex(
		blendChannel(rgb.R, 255, amount),
		blendChannel(rgb.G, 255, amount),
		blendChannel(rgb.B, 255, amount),
	)
}

// Darken blends each channel of hex toward 0 by amount (0 = identity,
// 1 = black). Invalid hex strings are returned unchanged.
func Darken(hex string, amount float64) string {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return hex
	}
	return RGBToHex(
		blendChannel(rgb.R, 0, amount),
		blendChannel(rgb.G, 0, amount),
		blendChannel(rgb.B, 0, amount),
	)
}

// blendChannel moves c toward target by amount and rounds to the nearest
// integer channel value.
func blendChannel(c uint8, target float64, amount float64) uint8 {
	v := float64(c) + (target-float64(c))*amount
	return uint8(math.Round(v))
}

// HexToHSL converts a hex color to a CSS "hsl(H S% L%)" string with the hue
// in whole degrees and saturation/lightness as rounded percentages. Invalid
// hex strings convert as pure black, consistent with the luminance fallback.
func HexToHSL(hex string) string {
	rgb, _ := HexToRGB(hex)

	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}
		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
	}

	return fmt.Sprintf("hsl(%d %d%% %d%%)",
		int(math.Round(h)),
		int(math.Round(s*100)),
		int(math.Round(l*100)))
}
