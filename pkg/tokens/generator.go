package tokens

import (
	"fmt"
	"math"

	"github.com/gnana997/tokenforge/pkg/color"
	"github.com/gnana997/tokenforge/pkg/insight"
)

// Options configures a Generator. Options are fixed at construction; a
// caller needing different thresholds constructs a new Generator.
type Options struct {
	// EnforceWCAG enables the generation-time contrast repair of semantic
	// colors against a white background. The exhaustive pairwise check is
	// the validator's job, not the generator's.
	EnforceWCAG bool

	// MinContrastRatio is the repair target used when EnforceWCAG is on.
	MinContrastRatio float64
}

// DefaultOptions returns the standard generator configuration: WCAG
// enforcement on, AA minimum ratio.
func DefaultOptions() Options {
	return Options{
		EnforceWCAG:      true,
		MinContrastRatio: 4.5,
	}
}

// Generator turns a design brief into a token tree. It holds no mutable
// state across calls and is safe for concurrent use.
type Generator struct {
	opts Options
}

// New creates a Generator with the given options. A zero MinContrastRatio
// falls back to the default.
func New(opts Options) *Generator {
	if opts.MinContrastRatio == 0 {
		opts.MinContrastRatio = 4.5
	}
	return &Generator{opts: opts}
}

// Generate produces a fresh token tree from the brief. The returned tree is
// owned by the caller; the generator never retains or mutates it.
func (g *Generator) Generate(in insight.Insight) *Tree {
	mult := in.UIDensity.Multiplier()

	return &Tree{
		Color:        g.colorTokens(in),
		Typography:   g.typographyTokens(in),
		Spacing:      g.spacingTokens(in, mult),
		Sizing:       g.sizingTokens(mult),
		BorderRadius: g.radiusTokens(in.UIDensity),
		Shadow:       g.shadowTokens(),
		Transition:   g.transitionTokens(),
	}
}

// colorTokens builds ramps for the first two palette entries plus the fixed
// neutral and semantic palettes. Absent palette entries are omitted, never
// defaulted.
func (g *Generator) colorTokens(in insight.Insight) *Node {
	n := NewGroup()

	if len(in.ImageryPalette) > 0 {
		n.children["primary"] = buildRamp(in.ImageryPalette[0])
	}
	if len(in.ImageryPalette) > 1 {
		n.children["secondary"] = buildRamp(in.ImageryPalette[1])
	}

	neutral := n.Group("neutral")
	for _, c := range neutralScale {
		neutral.Put(c.name, ColorToken("color", c.hex))
	}

	semantic := n.Group("semantic")
	for _, c := range semanticColors {
		hex := c.hex
		if g.opts.EnforceWCAG && color.ContrastRatio(hex, "#ffffff") < g.opts.MinContrastRatio {
			if fixed, ok := color.DarkenUntilContrast(hex, "#ffffff", g.opts.MinContrastRatio); ok {
				hex = fixed
			}
		}
		semantic.Put(c.name, ColorToken("color", hex))
	}

	return n
}

// buildRamp derives the fixed 11-stop tonal ramp from a base color: lighter
// stops below 500, the base unchanged at 500, darker stops above.
func buildRamp(base string) *Node {
	ramp := NewGroup()
	for _, s := range lightStops {
		ramp.Put(s.name, ColorToken("color", color.Lighten(base, s.factor)))
	}
	ramp.Put("500", ColorToken("color", base))
	for _, s := range darkStops {
		ramp.Put(s.name, ColorToken("color", color.Darken(base, s.factor)))
	}
	return ramp
}

// typographyTokens copies the brief's font families into positional roles
// and attaches the density-keyed size preset plus the fixed weight and
// line-height scales.
func (g *Generator) typographyTokens(in insight.Insight) *Node {
	n := NewGroup()

	family := n.Group("fontFamily")
	for i, name := range in.TypographyFamilies {
		role := fmt.Sprintf("family%d", i+1)
		switch i {
		case 0:
			role = "primary"
		case 1:
			role = "secondary"
		}
		family.Put(role, StringToken("fontFamilies", name+", sans-serif"))
	}

	sizes, ok := fontSizePresets[in.UIDensity]
	if !ok {
		sizes = fontSizePresets[insight.DensityRegular]
	}
	size := n.Group("fontSize")
	for _, s := range sizes {
		size.Put(s.name, NumberToken("fontSizes", s.value))
	}

	weight := n.Group("fontWeight")
	for _, w := range fontWeights {
		weight.Put(w.name, NumberToken("fontWeights", w.value))
	}

	height := n.Group("lineHeight")
	for _, h := range lineHeights {
		height.Put(h.name, NumberToken("lineHeights", h.value))
	}

	return n
}

// spacingTokens scales the brief's numeric scale (or the fallback when the
// brief has none) by the density multiplier and always emits the independent
// named scale alongside it.
func (g *Generator) spacingTokens(in insight.Insight, mult float64) *Node {
	n := NewGroup()

	values := in.SpacingScale
	if len(values) == 0 {
		values = fallbackSpacingScale
	}
	scale := n.Group("scale")
	for i, v := range values {
		scale.Put(fmt.Sprintf("%d", i+1), NumberToken("spacing", math.Round(v*mult)))
	}

	for _, s := range namedSpacingScale {
		n.Put(s.name, NumberToken("spacing", math.Round(s.value*mult)))
	}

	return n
}

func (g *Generator) sizingTokens(mult float64) *Node {
	n := NewGroup()

	icon := n.Group("icon")
	for _, s := range iconSizes {
		icon.Put(s.name, NumberToken("sizing", math.Round(s.value*mult)))
	}

	control := n.Group("control")
	for _, s := range controlSizes {
		control.Put(s.name, NumberToken("sizing", math.Round(s.value*mult)))
	}

	container := n.Group("container")
	for _, c := range containerWidths {
		container.Put(c.name, StringToken("sizing", c.value))
	}

	return n
}

// radiusTokens derives the radius scale from the density-keyed base unit.
// Density affects only the base unit; the multiples are fixed.
func (g *Generator) radiusTokens(d insight.Density) *Node {
	base, ok := radiusBaseUnits[d]
	if !ok {
		base = radiusBaseUnits[insight.DensityRegular]
	}

	n := NewGroup()
	n.Put("none", NumberToken("borderRadius", 0))
	n.Put("sm", NumberToken("borderRadius", math.Round(base/2)))
	n.Put("md", NumberToken("borderRadius", base))
	n.Put("lg", NumberToken("borderRadius", base*2))
	n.Put("xl", NumberToken("borderRadius", base*3))
	n.Put("full", NumberToken("borderRadius", 9999))
	return n
}

func (g *Generator) shadowTokens() *Node {
	n := NewGroup()
	for _, s := range shadowScale {
		n.Put(s.name, StringToken("boxShadow", s.value))
	}
	return n
}

func (g *Generator) transitionTokens() *Node {
	n := NewGroup()

	duration := n.Group("duration")
	for _, d := range transitionDurations {
		duration.Put(d.name, StringToken("duration", d.value))
	}

	easing := n.Group("easing")
	for _, e := range transitionEasings {
		// Copy the coefficients so a caller editing the returned tree can
		// never reach back into the shared literal table.
		coeffs := append([]float64(nil), e.coeffs...)
		easing.Put(e.name, NumberArrayToken("cubicBezier", coeffs))
	}

	return n
}
