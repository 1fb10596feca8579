// Package insight defines the compact design brief consumed by the token
// generator, plus JSON loading and advisory validation for briefs stored on
// disk.
package insight

import (
	"fmt"
	"regexp"
)

// Density is the coarse UI-scale knob. It selects a font-size preset and
// multiplies spacing, sizing and radius base values.
type Density string

const (
	DensityCompact  Density = "compact"
	DensityRegular  Density = "regular"
	DensitySpacious Density = "spacious"
)

// Multiplier returns the scale factor applied to spacing and sizing base
// values. Unknown densities scale like regular.
func (d Density) Multiplier() float64 {
	switch d {
	case DensityCompact:
		return 0.875
	case DensitySpacious:
		return 1.125
	default:
		return 1.0
	}
}

// Insight is the design brief produced by the upstream analysis step. It is
// read-only input: the generator never mutates it and performs no validation
// of its own. A missing palette entry means "ramp not generated", not an
// error.
type Insight struct {
	// ImageryPalette holds up to 8 hex colors in priority order. The first
	// two seed the primary and secondary ramps.
	ImageryPalette []string `json:"imageryPalette"`

	// TypographyFamilies lists font family names in role order.
	TypographyFamilies []string `json:"typographyFamilies"`

	// SpacingScale holds positive pixel values in ascending order.
	SpacingScale []float64 `json:"spacingScale"`

	// UIDensity is one of compact, regular, spacious.
	UIDensity Density `json:"uiDensity"`

	// BrandKeywords are free-text tags; not consumed by the engine.
	BrandKeywords []string `json:"brandKeywords,omitempty"`

	// SupportingReferences is free text; not consumed by the engine.
	SupportingReferences string `json:"supportingReferences,omitempty"`
}

var hexEntryPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// validDensities defines the allowed density values.
var validDensities = map[Density]bool{
	DensityCompact:  true,
	DensityRegular:  true,
	DensitySpacious: true,
}

// Validate checks the brief for internal consistency and returns a slice of
// problems (empty slice if clean). Validation is advisory: the generator
// accepts any brief and falls back per field, so callers typically log these
// as warnings rather than refusing to generate.
func (in *Insight) Validate() []error {
	var errs []error

	if len(in.ImageryPalette) > 8 {
		errs = append(errs, fmt.Errorf("imageryPalette: at most 8 entries allowed, got %d", len(in.ImageryPalette)))
	}
	for i, hex := range in.ImageryPalette {
		if !hexEntryPattern.MatchString(hex) {
			errs = append(errs, fmt.Errorf("imageryPalette[%d]: %q is not a 6-digit hex color", i, hex))
		}
	}

	for i, v := range in.SpacingScale {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("spacingScale[%d]: value must be positive, got %v", i, v))
		}
	}

	if in.UIDensity != "" && !validDensities[in.UIDensity] {
		errs = append(errs, fmt.Errorf("uiDensity: %q is not one of compact/regular/spacious", in.UIDensity))
	}

	return errs
}
