package color

import "math"

// RelativeLuminance computes the WCAG 2.x relative luminance of a hex color,
// in [0, 1]. The per-channel sRGB linearization (0.03928 threshold, 2.4
// exponent) and the 0.2126/0.7152/0.0722 coefficients are the exact WCAG
// constants; contrast numbers must reproduce the standard's math.
//
// An invalid hex string resolves to luminance 0, so it behaves as pure black
// in all contrast math.
func RelativeLuminance(hex string) float64 {
	rgb, _ := HexToRGB(hex)
	r := linearize(float64(rgb.R) / 255)
	g := linearize(float64(rgb.G) / 255)
	b := linearize(float64(rgb.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts one sRGB channel in [0, 1] to linear light.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in
// [1, 21]. The ratio is symmetric in its arguments and is exactly 1 for
// identical colors.
func ContrastRatio(a, b string) float64 {
	return ContrastFromLuminance(RelativeLuminance(a), RelativeLuminance(b))
}

// ContrastFromLuminance returns the contrast ratio for two pre-computed
// relative luminance values. Exposed so callers that validate many pairs can
// cache luminance per color instead of re-deriving it per pair.
func ContrastFromLuminance(la, lb float64) float64 {
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// DarkenUntilContrast repairs a failing foreground color by darkening it in
// 0.1 steps until it reaches minRatio against bg. The loop is bounded: the
// darken amount stays below 0.9, so at most 8 candidates are tried. The
// second return value is false when no candidate reached the target, in
// which case the original foreground is returned and the caller must treat
// the pair as having no automatic fix.
func DarkenUntilContrast(fg, bg string, minRatio float64) (string, bool) {
	for step := 1; step <= 8; step++ {
		candidate := Darken(fg, float64(step)*0.1)
		if ContrastRatio(candidate, bg) >= minRatio {
			return candidate, true
		}
	}
	return fg, false
}
