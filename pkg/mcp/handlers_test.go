package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokenforge/pkg/a11y"
	"github.com/gnana997/tokenforge/pkg/tokens"
)

// --- helpers ---

const testBrief = `{
	"imageryPalette": ["#3b82f6", "#f97316"],
	"typographyFamilies": ["Inter"],
	"spacingScale": [4, 8, 16, 24, 32],
	"uiDensity": "regular"
}`

func testServer() *Server {
	gen := tokens.New(tokens.DefaultOptions())
	val := a11y.New(a11y.DefaultOptions())
	return NewServer(gen, val, nil)
}

func callTool(t *testing.T, s *Server, req mcp.CallToolRequest) *mcp.CallToolResult {
	t.Helper()
	var handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

	switch req.Params.Name {
	case "generate_tokens":
		handler = s.handleGenerateTokens
	case "validate_colors":
		handler = s.handleValidateColors
	case "accessibility_report":
		handler = s.handleAccessibilityReport
	case "swatch_html":
		handler = s.handleSwatchHTML
	case "tailwind_config":
		handler = s.handleTailwindConfig
	case "generate_component":
		handler = s.handleGenerateComponent
	default:
		t.Fatalf("unknown tool: %s", req.Params.Name)
	}

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

// --- generate_tokens ---

func TestHandleGenerateTokens(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("generate_tokens", map[string]any{"brief": testBrief}))
	assert.False(t, result.IsError)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &tree))
	assert.Contains(t, tree, "color")
	assert.Contains(t, tree, "typography")
	assert.Contains(t, tree, "spacing")
}

func TestHandleGenerateTokens_Flat(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("generate_tokens", map[string]any{
		"brief": testBrief,
		"flat":  true,
	}))
	assert.False(t, result.IsError)

	var flat map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &flat))
	assert.Equal(t, "#3b82f6", flat["colors"]["primary-500"])
}

func TestHandleGenerateTokens_MissingBrief(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("generate_tokens", nil))
	assert.True(t, result.IsError)
}

func TestHandleGenerateTokens_MalformedBrief(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("generate_tokens", map[string]any{"brief": "{nope"}))
	assert.True(t, result.IsError)
}

// --- validate_colors ---

func TestHandleValidateColors_Passing(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("validate_colors", map[string]any{
		"foreground": "#666666",
		"background": "#ffffff",
	}))
	assert.False(t, result.IsError)

	var res a11y.Result
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &res))
	assert.True(t, res.Passes)
	assert.Equal(t, a11y.LevelAA, res.Level)
	assert.InDelta(t, 5.74, res.Ratio, 0.05)
}

func TestHandleValidateColors_FailingGetsSuggestion(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("validate_colors", map[string]any{
		"foreground": "#cccccc",
		"background": "#ffffff",
	}))

	var res a11y.Result
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &res))
	assert.False(t, res.Passes)
	assert.NotEmpty(t, res.AdjustedForeground)
}

func TestHandleValidateColors_CustomRatio(t *testing.T) {
	s := testServer()
	// 5.74:1 passes the default threshold but not 7.0.
	result := callTool(t, s, makeRequest("validate_colors", map[string]any{
		"foreground": "#666666",
		"background": "#ffffff",
		"minRatio":   7.0,
	}))

	var res a11y.Result
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &res))
	assert.False(t, res.Passes)
}

func TestHandleValidateColors_MissingArgs(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("validate_colors", map[string]any{
		"foreground": "#666666",
	}))
	assert.True(t, result.IsError)
}

// --- accessibility_report ---

func TestHandleAccessibilityReport(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("accessibility_report", map[string]any{"brief": testBrief}))
	assert.False(t, result.IsError)

	report := resultText(t, result)
	assert.Contains(t, report, "# Accessibility Validation Report")
	assert.Contains(t, report, "Combinations checked")
}

// --- swatch_html ---

func TestHandleSwatchHTML(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("swatch_html", map[string]any{"brief": testBrief}))
	assert.False(t, result.IsError)

	html := resultText(t, result)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "#3b82f6")
}

// --- tailwind_config ---

func TestHandleTailwindConfig(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("tailwind_config", map[string]any{"brief": testBrief}))
	assert.False(t, result.IsError)

	cfg := resultText(t, result)
	assert.Contains(t, cfg, "module.exports")
	assert.Contains(t, cfg, `"500": "#3b82f6"`)
}

// --- generate_component ---

func TestHandleGenerateComponent(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("generate_component", map[string]any{"name": "Button"}))
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "export function Button")
}

func TestHandleGenerateComponent_Story(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("generate_component", map[string]any{
		"name":  "Button",
		"story": true,
	}))
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Components/Button")
}

func TestHandleGenerateComponent_Unknown(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("generate_component", map[string]any{"name": "Sidebar"}))
	assert.True(t, result.IsError)
}
