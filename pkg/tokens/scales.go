package tokens

import "github.com/gnana997/tokenforge/pkg/insight"

// Fixed literal lookup tables. These never change at runtime; they are
// package-scoped constants in slice form so that generation order (and
// therefore serialized output) stays deterministic.

// rampStop pairs a semantic stop name with its blend factor.
type rampStop struct {
	name   string
	factor float64
}

// lightStops are blended toward white; factors decrease monotonically as the
// stop approaches the 500 base.
var lightStops = []rampStop{
	{"50", 0.95},
	{"100", 0.9},
	{"200", 0.75},
	{"300", 0.6},
	{"400", 0.4},
}

// darkStops are blended toward black; factors increase monotonically away
// from the 500 base.
var darkStops = []rampStop{
	{"600", 0.2},
	{"700", 0.4},
	{"800", 0.6},
	{"900", 0.8},
	{"950", 0.9},
}

// namedColor pairs a token name with a literal hex value.
type namedColor struct {
	name string
	hex  string
}

// neutralScale is the fixed neutral ramp. It is not derived from the brief.
var neutralScale = []namedColor{
	{"50", "#fafafa"},
	{"100", "#f5f5f5"},
	{"200", "#e5e5e5"},
	{"300", "#d4d4d4"},
	{"400", "#a3a3a3"},
	{"500", "#737373"},
	{"600", "#525252"},
	{"700", "#404040"},
	{"800", "#262626"},
	{"900", "#171717"},
	{"950", "#0a0a0a"},
}

// semanticColors are the fixed status colors. When WCAG enforcement is on,
// each is checked against a white background at generation time and replaced
// by its darkened repair if it falls short.
var semanticColors = []namedColor{
	{"success", "#22c55e"},
	{"warning", "#f59e0b"},
	{"error", "#ef4444"},
	{"info", "#3b82f6"},
}

// namedNumber pairs a token name with a numeric pixel (or unitless) value.
type namedNumber struct {
	name  string
	value float64
}

// fontSizePresets are the density-keyed type scales, in px. The scale is a
// preset lookup, not a numeric derivation from the spacing scale.
var fontSizePresets = map[insight.Density][]namedNumber{
	insight.DensityCompact: {
		{"xs", 11}, {"sm", 12}, {"base", 14}, {"lg", 16},
		{"xl", 18}, {"2xl", 20}, {"3xl", 24}, {"4xl", 30},
	},
	insight.DensityRegular: {
		{"xs", 12}, {"sm", 14}, {"base", 16}, {"lg", 18},
		{"xl", 20}, {"2xl", 24}, {"3xl", 30}, {"4xl", 36},
	},
	insight.DensitySpacious: {
		{"xs", 13}, {"sm", 15}, {"base", 18}, {"lg", 20},
		{"xl", 24}, {"2xl", 28}, {"3xl", 34}, {"4xl", 40},
	},
}

// fontWeights and lineHeights are density-independent.
var fontWeights = []namedNumber{
	{"light", 300},
	{"normal", 400},
	{"medium", 500},
	{"semibold", 600},
	{"bold", 700},
}

var lineHeights = []namedNumber{
	{"tight", 1.25},
	{"snug", 1.375},
	{"normal", 1.5},
	{"relaxed", 1.625},
	{"loose", 2},
}

// fallbackSpacingScale replaces an empty brief spacing scale, in px before
// the density multiplier.
var fallbackSpacingScale = []float64{2, 4, 8, 12, 16, 20, 24, 32, 40, 48, 64}

// namedSpacingScale is always emitted alongside the numeric scale, from
// fixed base values times the density multiplier. It is independent of the
// brief's literal spacing values and the two are allowed to diverge.
var namedSpacingScale = []namedNumber{
	{"xs", 4},
	{"sm", 8},
	{"md", 16},
	{"lg", 24},
	{"xl", 32},
	{"2xl", 48},
	{"3xl", 64},
}

// sizing base values, in px before the density multiplier.
var iconSizes = []namedNumber{
	{"sm", 16},
	{"md", 20},
	{"lg", 24},
}

var controlSizes = []namedNumber{
	{"sm", 32},
	{"md", 40},
	{"lg", 48},
}

// containerWidths are density-independent breakpoint widths.
var containerWidths = []struct {
	name  string
	value string
}{
	{"sm", "640px"},
	{"md", "768px"},
	{"lg", "1024px"},
	{"xl", "1280px"},
}

// radiusBaseUnits is the density-keyed base radius, in px. The rest of the
// radius scale derives from it by fixed multiples.
var radiusBaseUnits = map[insight.Density]float64{
	insight.DensityCompact:  4,
	insight.DensityRegular:  6,
	insight.DensitySpacious: 8,
}

// shadowScale is a fixed elevation ladder, density-independent.
var shadowScale = []struct {
	name  string
	value string
}{
	{"sm", "0 1px 2px 0 rgb(0 0 0 / 0.05)"},
	{"md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)"},
	{"lg", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)"},
	{"xl", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)"},
}

// transitionDurations are density-independent.
var transitionDurations = []struct {
	name  string
	value string
}{
	{"fast", "150ms"},
	{"normal", "250ms"},
	{"slow", "400ms"},
}

// transitionEasings hold cubic-bezier coefficient quadruples.
var transitionEasings = []struct {
	name   string
	coeffs []float64
}{
	{"standard", []float64{0.4, 0, 0.2, 1}},
	{"accelerate", []float64{0.4, 0, 1, 1}},
	{"decelerate", []float64{0, 0, 0.2, 1}},
}
