package mcpserver

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"promptstudio/internal/service"
)

// Server is the MCP server for the prompt editor.
// It exposes tools, resources, and prompts so AI agents can build and test
// prompts on the same canvas a human edits over HTTP.
type Server struct {
	mcp    *server.MCPServer
	logger *zap.Logger

	editor     *service.EditorService
	simulation *service.SimulationService

	exportDir string
}

// Deps holds everything the MCP server needs from the app layer.
type Deps struct {
	Editor     *service.EditorService
	Simulation *service.SimulationService
	Logger     *zap.Logger
	// ExportDir is where export_prompt writes when no directory is given.
	ExportDir string
	Version   string
}

// New creates and configures a new MCP server with all tools and resources.
func New(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	s := &Server{
		logger:     logger.Named("mcp"),
		editor:     deps.Editor,
		simulation: deps.Simulation,
		exportDir:  deps.ExportDir,
	}

	s.mcp = server.NewMCPServer(
		"promptstudio-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerCatalogTools()
	s.registerBlockTools()
	s.registerHistoryTools()
	s.registerPromptTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	s.logger.Info("starting stdio server")
	return server.ServeStdio(s.mcp)
}

// ── Helpers ────────────────────────────────────────────────

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

func (s *Server) logCall(tool string, fields ...zap.Field) {
	s.logger.Debug("tool call", append([]zap.Field{zap.String("tool", tool)}, fields...)...)
}
