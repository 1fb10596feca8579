package mcp

import "github.com/mark3labs/mcp-go/mcp"

func generateTokensTool() mcp.Tool {
	return mcp.NewTool("generate_tokens",
		mcp.WithDescription("Generate a complete design token tree from a design brief. "+
			"Pass the brief as a JSON string; returns the nested token tree, or the flat legacy map when flat=true."),
		mcp.WithString("brief",
			mcp.Required(),
			mcp.Description("Design brief JSON: imageryPalette, typographyFamilies, spacingScale, uiDensity"),
		),
		mcp.WithBoolean("flat",
			mcp.Description("Return the flat legacy token map instead of the nested tree"),
		),
	)
}

func validateColorsTool() mcp.Tool {
	return mcp.NewTool("validate_colors",
		mcp.WithDescription("Check the WCAG contrast ratio of a foreground/background pair. "+
			"Returns the ratio, the conformance level and a darkened suggestion when the pair fails."),
		mcp.WithString("foreground",
			mcp.Required(),
			mcp.Description("Foreground color as a 6-digit hex string"),
		),
		mcp.WithString("background",
			mcp.Required(),
			mcp.Description("Background color as a 6-digit hex string"),
		),
		mcp.WithNumber("minRatio",
			mcp.Description("Minimum acceptable contrast ratio (default 4.5)"),
		),
	)
}

func accessibilityReportTool() mcp.Tool {
	return mcp.NewTool("accessibility_report",
		mcp.WithDescription("Generate a token set from a design brief and return the markdown "+
			"accessibility report for every color pair in it."),
		mcp.WithString("brief",
			mcp.Required(),
			mcp.Description("Design brief JSON"),
		),
	)
}

func swatchHTMLTool() mcp.Tool {
	return mcp.NewTool("swatch_html",
		mcp.WithDescription("Generate a token set from a design brief and return a standalone "+
			"HTML swatch page for visual review."),
		mcp.WithString("brief",
			mcp.Required(),
			mcp.Description("Design brief JSON"),
		),
		mcp.WithBoolean("includeValidation",
			mcp.Description("Include the UI pair contrast checks section (default true)"),
		),
	)
}

func tailwindConfigTool() mcp.Tool {
	return mcp.NewTool("tailwind_config",
		mcp.WithDescription("Generate a token set from a design brief and return a Tailwind "+
			"theme.extend config module consuming it."),
		mcp.WithString("brief",
			mcp.Required(),
			mcp.Description("Design brief JSON"),
		),
	)
}

func generateComponentTool() mcp.Tool {
	return mcp.NewTool("generate_component",
		mcp.WithDescription("Return the token-driven TSX source for one of the built-in "+
			"components (Button, Card, Input, Modal), optionally with its Storybook story."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name"),
		),
		mcp.WithBoolean("story",
			mcp.Description("Return the Storybook story instead of the component source"),
		),
	)
}
