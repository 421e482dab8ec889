package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"promptstudio/internal/domain"
)

func (s *Server) registerHistoryTools() {
	// ── undo / redo ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("undo",
		mcp.WithDescription("Step the canvas back one edit. Does nothing at the oldest entry."),
	), s.handleUndo)

	s.mcp.AddTool(mcp.NewTool("redo",
		mcp.WithDescription("Re-apply the edit most recently undone. Does nothing if there is none."),
	), s.handleRedo)

	// ── get_history ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_history",
		mcp.WithDescription("Return every undo snapshot, oldest first, and the current position"),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{ReadOnlyHint: boolPtr(true)}),
	), s.handleGetHistory)

	// ── versions ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("save_version",
		mcp.WithDescription("Save the current canvas as a named version. Nothing is saved for a blank name or an empty canvas."),
		mcp.WithString("name", mcp.Description("Version name"), mcp.Required()),
	), s.handleSaveVersion)

	s.mcp.AddTool(mcp.NewTool("list_versions",
		mcp.WithDescription("List saved versions, oldest first"),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{ReadOnlyHint: boolPtr(true)}),
	), s.handleListVersions)

	s.mcp.AddTool(mcp.NewTool("load_version",
		mcp.WithDescription("🛑 DESTRUCTIVE: Replace the canvas with a saved version. Clears undo/redo history."),
		mcp.WithString("versionId", mcp.Description("Version ID from list_versions"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleLoadVersion)
}

type stepResult struct {
	Changed bool               `json:"changed"`
	State   domain.EditorState `json:"state"`
}

func (s *Server) handleUndo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logCall("undo")
	changed := s.editor.Undo(ctx)
	return jsonResult(stepResult{Changed: changed, State: s.editor.Snapshot()})
}

func (s *Server) handleRedo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logCall("redo")
	changed := s.editor.Redo(ctx)
	return jsonResult(stepResult{Changed: changed, State: s.editor.Snapshot()})
}

func (s *Server) handleGetHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logCall("get_history")
	entries, index := s.editor.History()
	return jsonResult(struct {
		Index   int              `json:"index"`
		Entries [][]domain.Block `json:"entries"`
	}{index, entries})
}

func (s *Server) handleSaveVersion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := getString(req.GetArguments(), "name", "")
	s.logCall("save_version", zap.String("name", name))

	v, err := s.editor.SaveVersion(ctx, name)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return textResult("Nothing saved: the name is blank or the canvas is empty"), nil
	}
	return jsonResult(v)
}

func (s *Server) handleListVersions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logCall("list_versions")
	versions, err := s.editor.Versions()
	if err != nil {
		return nil, err
	}

	type versionSummary struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Timestamp string `json:"timestamp"`
		Blocks    int    `json:"blocks"`
	}
	summaries := make([]versionSummary, len(versions))
	for i, v := range versions {
		summaries[i] = versionSummary{ID: v.ID, Name: v.Name, Timestamp: v.Timestamp, Blocks: len(v.Blocks)}
	}
	return jsonResult(summaries)
}

func (s *Server) handleLoadVersion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req.GetArguments(), "versionId")
	if err != nil {
		return nil, err
	}
	s.logCall("load_version", zap.String("versionId", id))

	loaded, err := s.editor.LoadVersion(ctx, id)
	if err != nil {
		return nil, err
	}
	if !loaded {
		return textResult("No version with id " + id + "; canvas unchanged"), nil
	}
	return jsonResult(s.editor.Snapshot())
}
