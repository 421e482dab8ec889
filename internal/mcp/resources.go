package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"promptstudio/internal/catalog"
)

const (
	blocksURI    = "prompt://blocks"
	catalogURI   = "prompt://catalog"
	assembledURI = "prompt://assembled"
)

func (s *Server) registerResources() {
	// ── prompt://blocks ────────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		blocksURI,
		"Canvas Blocks",
		mcp.WithResourceDescription("Blocks on the canvas in order, with test input and history position"),
		mcp.WithMIMEType("application/json"),
	), s.handleBlocksResource)

	// ── prompt://catalog ───────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		catalogURI,
		"Block Catalog",
		mcp.WithResourceDescription("Palette groups and the rendering config of every block type"),
		mcp.WithMIMEType("application/json"),
	), s.handleCatalogResource)

	// ── prompt://assembled ─────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		assembledURI,
		"Assembled Prompt",
		mcp.WithResourceDescription("The prompt text exactly as it would be sent to a model"),
		mcp.WithMIMEType("text/plain"),
	), s.handleAssembledResource)
}

func (s *Server) handleBlocksResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(s.editor.Snapshot(), "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      blocksURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleCatalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	types := catalog.Types()
	configs := make(map[string]any, len(types))
	for _, t := range types {
		configs[string(t)] = catalog.Lookup(t)
	}
	data, err := json.MarshalIndent(map[string]any{
		"palette": catalog.Palette(),
		"configs": configs,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      catalogURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleAssembledResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      assembledURI,
			MIMEType: "text/plain",
			Text:     s.editor.AssembledPrompt(false),
		},
	}, nil
}
