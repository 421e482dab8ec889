package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"promptstudio/internal/catalog"
)

func (s *Server) registerCatalogTools() {
	// ── list_block_types ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_block_types",
		mcp.WithDescription("List the block types available in the palette, grouped by category, with their default content"),
		mcp.WithString("group", mcp.Description("Only return the palette group with this name, e.g. \"Advanced Reasoning\" (optional)")),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{ReadOnlyHint: boolPtr(true)}),
	), s.handleListBlockTypes)
}

func (s *Server) handleListBlockTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	group := getString(req.GetArguments(), "group", "")
	s.logCall("list_block_types")

	palette := catalog.Palette()
	if group == "" {
		return jsonResult(palette)
	}
	for _, g := range palette {
		if strings.EqualFold(g.Name, group) {
			return jsonResult(g)
		}
	}
	return nil, fmt.Errorf("unknown palette group %q", group)
}
