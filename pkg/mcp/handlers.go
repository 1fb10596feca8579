package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gnana997/tokenforge/pkg/a11y"
	"github.com/gnana997/tokenforge/pkg/emit"
	"github.com/gnana997/tokenforge/pkg/insight"
	"github.com/gnana997/tokenforge/pkg/tokens"
	"github.com/mark3labs/mcp-go/mcp"
)

// briefTree parses the "brief" argument and generates a token tree from it.
func (s *Server) briefTree(req mcp.CallToolRequest) (*tokens.Tree, *mcp.CallToolResult) {
	brief, err := req.RequireString("brief")
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	in, err := insight.LoadFromBytes([]byte(brief))
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("invalid brief: %v", err))
	}
	return s.gen.Generate(*in), nil
}

func (s *Server) handleGenerateTokens(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tree, errResult := s.briefTree(req)
	if errResult != nil {
		return errResult, nil
	}

	var payload any = tree
	if req.GetBool("flat", false) {
		payload = tokens.ConvertToLegacyFormat(tree)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to serialize tokens: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleValidateColors(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fg, err := req.RequireString("foreground")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bg, err := req.RequireString("background")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	val := s.val
	if minRatio := req.GetFloat("minRatio", 0); minRatio > 0 {
		val = a11y.New(a11y.Options{MinContrastRatio: minRatio})
	}

	result := val.ValidateColorCombination(fg, bg)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to serialize result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleAccessibilityReport(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tree, errResult := s.briefTree(req)
	if errResult != nil {
		return errResult, nil
	}
	return mcp.NewToolResultText(s.val.Report(tree)), nil
}

func (s *Server) handleSwatchHTML(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tree, errResult := s.briefTree(req)
	if errResult != nil {
		return errResult, nil
	}
	return mcp.NewToolResultText(s.val.SwatchHTML(tree, req.GetBool("includeValidation", true))), nil
}

func (s *Server) handleTailwindConfig(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tree, errResult := s.briefTree(req)
	if errResult != nil {
		return errResult, nil
	}
	return mcp.NewToolResultText(emit.TailwindConfig(tree)), nil
}

func (s *Server) handleGenerateComponent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var src string
	if req.GetBool("story", false) {
		src, err = emit.Story(name)
	} else {
		src, err = emit.Component(name)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(src), nil
}
