package a11y

import (
	"fmt"
	"html"
	"strings"

	"github.com/gnana997/tokenforge/pkg/color"
	"github.com/gnana997/tokenforge/pkg/tokens"
)

// uiPairChecks is the fixed set of illustrative UI pairings appended to the
// swatch document. Foreground and background name token paths inside the
// color subtree; a literal hex background stands for the page surface.
// Pairs whose colors are missing from the tree are skipped.
var uiPairChecks = []struct {
	label string
	fg    string
	bg    string
}{
	{"Primary Button", "primary-600", "#ffffff"},
	{"Body Text", "neutral-900", "#ffffff"},
	{"Muted Text", "neutral-600", "#ffffff"},
	{"Error Text", "semantic-error", "#ffffff"},
	{"Inverted Text", "neutral-50", "neutral-900"},
}

// SwatchHTML renders every color leaf in the tree as a swatch card with its
// hex, RGB, HSL, luminance and contrast-against-white-and-black metrics.
// When includeValidation is true the fixed UI-pair checks are appended. The
// result is always a complete HTML document, even for an empty tree.
func (v *Validator) SwatchHTML(tree *tokens.Tree, includeValidation bool) string {
	colors := CollectColors(tree)
	byName := make(map[string]string, len(colors))
	for _, c := range colors {
		byName[c.Name] = c.Hex
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>Color Token Swatches</title>\n")
	b.WriteString(swatchStyles)
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<h1>Color Token Swatches</h1>\n")

	b.WriteString("<section class=\"swatches\">\n")
	for _, c := range colors {
		writeSwatchCard(&b, c)
	}
	b.WriteString("</section>\n")

	if includeValidation {
		b.WriteString("<section class=\"validation\">\n<h2>UI Pair Checks</h2>\n")
		for _, check := range uiPairChecks {
			fg, ok := byName[check.fg]
			if !ok {
				continue
			}
			bg := check.bg
			if resolved, ok := byName[check.bg]; ok {
				bg = resolved
			} else if _, isHex := color.HexToRGB(check.bg); !isHex {
				continue
			}
			writePairCheck(&b, v, check.label, fg, bg)
		}
		b.WriteString("</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// writeSwatchCard renders one color card.
func writeSwatchCard(b *strings.Builder, c NamedColor) {
	rgb, _ := color.HexToRGB(c.Hex)
	lum := color.RelativeLuminance(c.Hex)
	vsWhite := color.ContrastRatio(c.Hex, "#ffffff")
	vsBlack := color.ContrastRatio(c.Hex, "#000000")

	fmt.Fprintf(b, "<div class=\"swatch\">\n")
	fmt.Fprintf(b, "<div class=\"chip\" style=\"background:%s\"></div>\n", html.EscapeString(c.Hex))
	fmt.Fprintf(b, "<h3>%s</h3>\n", html.EscapeString(c.Name))
	fmt.Fprintf(b, "<dl>\n")
	fmt.Fprintf(b, "<dt>Hex</dt><dd>%s</dd>\n", html.EscapeString(c.Hex))
	fmt.Fprintf(b, "<dt>RGB</dt><dd>rgb(%d, %d, %d)</dd>\n", rgb.R, rgb.G, rgb.B)
	fmt.Fprintf(b, "<dt>HSL</dt><dd>%s</dd>\n", color.HexToHSL(c.Hex))
	fmt.Fprintf(b, "<dt>Luminance</dt><dd>%.4f</dd>\n", lum)
	fmt.Fprintf(b, "<dt>Contrast vs white</dt><dd>%.2f:1</dd>\n", vsWhite)
	fmt.Fprintf(b, "<dt>Contrast vs black</dt><dd>%.2f:1</dd>\n", vsBlack)
	fmt.Fprintf(b, "</dl>\n</div>\n")
}

// writePairCheck renders one illustrative UI pairing as a pass/fail row.
func writePairCheck(b *strings.Builder, v *Validator, label, fg, bg string) {
	r := v.ValidateColorCombination(fg, bg)

	status := "fail"
	if r.Passes {
		status = "pass"
	}
	fmt.Fprintf(b, "<div class=\"pair %s\">\n", status)
	fmt.Fprintf(b, "<span class=\"sample\" style=\"color:%s;background:%s\">%s</span>\n",
		html.EscapeString(fg), html.EscapeString(bg), html.EscapeString(label))
	fmt.Fprintf(b, "<span class=\"ratio\">%.2f:1 (%s)</span>\n", r.Ratio, r.Level)
	fmt.Fprintf(b, "<span class=\"large-text\">large text: %v</span>\n", v.PassesLargeText(r.Ratio))
	if r.AdjustedForeground != "" {
		fmt.Fprintf(b, "<span class=\"suggestion\">suggested foreground: %s</span>\n", r.AdjustedForeground)
	}
	b.WriteString("</div>\n")
}

// swatchStyles is inlined so the document stays standalone.
const swatchStyles = `<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #171717; }
.swatches { display: flex; flex-wrap: wrap; gap: 1rem; }
.swatch { border: 1px solid #e5e5e5; border-radius: 8px; padding: 1rem; width: 240px; }
.swatch .chip { height: 64px; border-radius: 4px; }
.swatch dl { display: grid; grid-template-columns: auto 1fr; gap: 0.25rem 0.75rem; font-size: 0.85rem; }
.swatch dt { color: #737373; }
.pair { padding: 0.5rem 0; display: flex; gap: 1rem; align-items: center; }
.pair .sample { padding: 0.5rem 1rem; border-radius: 4px; }
.pair.fail .ratio { color: #b91c1c; font-weight: 600; }
</style>
`
