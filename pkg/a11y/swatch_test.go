package a11y

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokenforge/pkg/tokens"
)

func TestSwatchHTML_FullTree(t *testing.T) {
	v := New(DefaultOptions())
	doc := v.SwatchHTML(testTree(t), true)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<meta name=\"viewport\"")
	assert.Contains(t, doc, "<title>Color Token Swatches</title>")

	// Per-swatch metrics.
	assert.Contains(t, doc, "primary-500")
	assert.Contains(t, doc, "#3b82f6")
	assert.Contains(t, doc, "rgb(59, 130, 246)")
	assert.Contains(t, doc, "hsl(")
	assert.Contains(t, doc, "Contrast vs white")
	assert.Contains(t, doc, "Contrast vs black")

	// Illustrative UI pair checks.
	assert.Contains(t, doc, "UI Pair Checks")
	assert.Contains(t, doc, "Primary Button")
	assert.Contains(t, doc, "Body Text")
	assert.Contains(t, doc, "Error Text")
}

func TestSwatchHTML_WithoutValidation(t *testing.T) {
	v := New(DefaultOptions())
	doc := v.SwatchHTML(testTree(t), false)

	assert.NotContains(t, doc, "UI Pair Checks")
	assert.Contains(t, doc, "primary-500")
}

func TestSwatchHTML_EmptyTreeStillWellFormed(t *testing.T) {
	v := New(DefaultOptions())
	doc := v.SwatchHTML(&tokens.Tree{}, true)

	require.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<head>")

	bodyStart := strings.Index(doc, "<body>")
	bodyEnd := strings.Index(doc, "</body>")
	require.Greater(t, bodyEnd, bodyStart)
	assert.NotEmpty(t, strings.TrimSpace(doc[bodyStart+len("<body>"):bodyEnd]))
}

func TestSwatchHTML_SkipsUnresolvablePairs(t *testing.T) {
	// A tree with no primary ramp must simply omit the Primary Button check
	// rather than rendering a broken row.
	tree := &tokens.Tree{Color: tokens.NewGroup()}
	tree.Color.Put("lonely", tokens.ColorToken("color", "#445566"))

	v := New(DefaultOptions())
	doc := v.SwatchHTML(tree, true)

	assert.NotContains(t, doc, "Primary Button")
	assert.Contains(t, doc, "lonely")
}
