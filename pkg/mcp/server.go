// Package mcp exposes the token engine over the Model Context Protocol,
// so that coding agents can generate token sets and check color
// accessibility without shelling out to the CLI.
package mcp

import (
	"github.com/gnana997/tokenforge/pkg/a11y"
	"github.com/gnana997/tokenforge/pkg/mcplog"
	"github.com/gnana997/tokenforge/pkg/tokens"
	"github.com/mark3labs/mcp-go/server"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server for TokenForge, exposing token
// generation, color validation and emitter tools.
type Server struct {
	mcpServer *server.MCPServer
	gen       *tokens.Generator
	val       *a11y.Validator
	logger    *mcplog.Logger // may be nil when call logging is disabled
}

// NewServer creates a new MCP server backed by the given generator and
// validator. A non-nil logger enables JSONL tool call logging.
func NewServer(gen *tokens.Generator, val *a11y.Validator, logger *mcplog.Logger) *Server {
	s := &Server{gen: gen, val: val, logger: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("tokenforge", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: generateTokensTool(), Handler: s.handleGenerateTokens},
		server.ServerTool{Tool: validateColorsTool(), Handler: s.handleValidateColors},
		server.ServerTool{Tool: accessibilityReportTool(), Handler: s.handleAccessibilityReport},
		server.ServerTool{Tool: swatchHTMLTool(), Handler: s.handleSwatchHTML},
		server.ServerTool{Tool: tailwindConfigTool(), Handler: s.handleTailwindConfig},
		server.ServerTool{Tool: generateComponentTool(), Handler: s.handleGenerateComponent},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
