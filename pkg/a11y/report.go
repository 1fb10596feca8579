package a11y

import (
	"fmt"
	"strings"

	"github.com/gnana997/tokenforge/pkg/tokens"
)

// Report runs the full pairwise validation over the tree and renders a
// markdown report: overall pass rate, a breakdown by conformance level, and
// one section per failing pair with the suggested fix when one exists.
//
// An empty tree produces zero combinations and therefore a "NaN%" pass
// rate; that is accepted, documented output rather than a special case.
func (v *Validator) Report(tree *tokens.Tree) string {
	results := v.ValidateTokens(tree)

	var passing int
	counts := map[Level]int{}
	for _, r := range results {
		if r.Passes {
			passing++
		}
		counts[r.Level]++
	}
	passRate := float64(passing) / float64(len(results)) * 100

	var b strings.Builder
	b.WriteString("# Accessibility Validation Report\n\n")
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Combinations checked: %d\n", len(results))
	fmt.Fprintf(&b, "- Passing: %d (%.1f%%)\n", passing, passRate)
	fmt.Fprintf(&b, "- AAA: %d\n", counts[LevelAAA])
	fmt.Fprintf(&b, "- AA: %d\n", counts[LevelAA])
	fmt.Fprintf(&b, "- Failing: %d\n", counts[LevelFail])

	var failures []Result
	for _, r := range results {
		if !r.Passes {
			failures = append(failures, r)
		}
	}
	if len(failures) == 0 {
		return b.String()
	}

	b.WriteString("\n## Failing combinations\n")
	for _, r := range failures {
		fmt.Fprintf(&b, "\n### %s on %s\n\n", r.Foreground, r.Background)
		fmt.Fprintf(&b, "- Contrast ratio: %.2f (minimum %.2f)\n", r.Ratio, v.opts.MinContrastRatio)
		if r.AdjustedForeground != "" {
			fmt.Fprintf(&b, "- Suggested foreground: %s\n", r.AdjustedForeground)
		} else {
			b.WriteString("- No automatic fix available\n")
		}
	}
	return b.String()
}
