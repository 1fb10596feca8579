// Package a11y validates generated color tokens against WCAG contrast
// requirements. It reads token trees but never mutates them: failing pairs
// get a suggested replacement color in the result, not an in-place edit.
package a11y

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/tokenforge/pkg/color"
)

// Level is a WCAG conformance classification for one color pair.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "fail"
)

// Result is the outcome of checking one ordered foreground/background pair.
// AdjustedForeground is set only when the pair fails and the bounded
// darkening repair found a compliant variant; empty means no automatic fix
// is available.
type Result struct {
	Foreground         string  `json:"foreground"`
	Background         string  `json:"background"`
	Ratio              float64 `json:"ratio"`
	Passes             bool    `json:"passes"`
	Level              Level   `json:"level"`
	AdjustedForeground string  `json:"adjustedForeground,omitempty"`
}

// Options configures a Validator. Fixed at construction; build a new
// Validator for different thresholds.
type Options struct {
	// MinContrastRatio is the pass/fail threshold for normal text. It is
	// independent of the classification thresholds below.
	MinContrastRatio float64

	// LargeTextRatio is the relaxed threshold applied to large-text
	// contexts in the swatch rendering.
	LargeTextRatio float64

	// AAThreshold and AAAThreshold classify the ratio into the Level
	// bands.
	AAThreshold  float64
	AAAThreshold float64
}

// DefaultOptions returns the WCAG 2.x normal-text defaults.
func DefaultOptions() Options {
	return Options{
		MinContrastRatio: 4.5,
		LargeTextRatio:   3.0,
		AAThreshold:      4.5,
		AAAThreshold:     7.0,
	}
}

// luminanceCacheSize bounds the per-validator luminance memo. A full token
// tree holds a few dozen colors; pairwise validation touches each one
// 2·(n-1) times, so the cache turns that back into one computation per
// color.
const luminanceCacheSize = 512

// Validator performs contrast checks over single pairs or whole token
// trees. Safe for concurrent use; the only internal state is the luminance
// cache, which is thread-safe.
type Validator struct {
	opts Options
	lum  *lru.Cache[string, float64]
}

// New creates a Validator. Zero option fields fall back to the defaults.
func New(opts Options) *Validator {
	def := DefaultOptions()
	if opts.MinContrastRatio == 0 {
		opts.MinContrastRatio = def.MinContrastRatio
	}
	if opts.LargeTextRatio == 0 {
		opts.LargeTextRatio = def.LargeTextRatio
	}
	if opts.AAThreshold == 0 {
		opts.AAThreshold = def.AAThreshold
	}
	if opts.AAAThreshold == 0 {
		opts.AAAThreshold = def.AAAThreshold
	}

	cache, err := lru.New[string, float64](luminanceCacheSize)
	if err != nil {
		panic(fmt.Sprintf("failed to create luminance cache: %v", err))
	}
	return &Validator{opts: opts, lum: cache}
}

// luminance returns the cached relative luminance for hex, computing and
// storing it on first use.
func (v *Validator) luminance(hex string) float64 {
	if l, ok := v.lum.Get(hex); ok {
		return l
	}
	l := color.RelativeLuminance(hex)
	v.lum.Add(hex, l)
	return l
}

// classify maps a contrast ratio onto its conformance level.
func (v *Validator) classify(ratio float64) Level {
	switch {
	case ratio >= v.opts.AAAThreshold:
		return LevelAAA
	case ratio >= v.opts.AAThreshold:
		return LevelAA
	default:
		return LevelFail
	}
}

// ValidateColorCombination checks one foreground/background pair. When the
// pair fails the minimum ratio, the bounded darkening repair runs and its
// result (if any) lands in AdjustedForeground.
func (v *Validator) ValidateColorCombination(fg, bg string) Result {
	ratio := color.ContrastFromLuminance(v.luminance(fg), v.luminance(bg))

	r := Result{
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
		Passes:     ratio >= v.opts.MinContrastRatio,
		Level:      v.classify(ratio),
	}
	if !r.Passes {
		if fixed, ok := color.DarkenUntilContrast(fg, bg, v.opts.MinContrastRatio); ok {
			r.AdjustedForeground = fixed
		}
	}
	return r
}

// PassesLargeText reports whether a ratio meets the relaxed large-text
// threshold.
func (v *Validator) PassesLargeText(ratio float64) bool {
	return ratio >= v.opts.LargeTextRatio
}
