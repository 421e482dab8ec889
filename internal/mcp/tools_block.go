package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"promptstudio/internal/domain"
)

func (s *Server) registerBlockTools() {
	// ── add_block ──────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_block",
		mcp.WithDescription("Append a block to the end of the canvas. Omitted content uses the palette default for the type."),
		mcp.WithString("type",
			mcp.Description("Block type, e.g. system, task, context, format, example, chain-of-thought (see list_block_types)"),
			mcp.Required(),
		),
		mcp.WithString("content", mcp.Description("Block text (optional)")),
	), s.handleAddBlock)

	// ── accept_suggestion ──────────────────────────────
	s.mcp.AddTool(mcp.NewTool("accept_suggestion",
		mcp.WithDescription("Append a block proposed by get_suggestions, tagged as a suggestion"),
		mcp.WithString("type", mcp.Description("Suggested block type"), mcp.Required()),
		mcp.WithString("content", mcp.Description("Suggested content"), mcp.Required()),
	), s.handleAcceptSuggestion)

	// ── update_block ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("update_block",
		mcp.WithDescription("Replace the text of an existing block"),
		mcp.WithString("blockId", mcp.Description("Block ID"), mcp.Required()),
		mcp.WithString("content", mcp.Description("New content"), mcp.Required()),
	), s.handleUpdateBlock)

	// ── remove_block (destructive) ─────────────────────
	s.mcp.AddTool(mcp.NewTool("remove_block",
		mcp.WithDescription("🛑 DESTRUCTIVE: Remove a block from the canvas. Can be reverted with undo."),
		mcp.WithString("blockId", mcp.Description("Block ID to remove"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleRemoveBlock)

	// ── move_block ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("move_block",
		mcp.WithDescription("Move a block to a new position in the canvas order (0 = first)"),
		mcp.WithString("blockId", mcp.Description("Block ID"), mcp.Required()),
		mcp.WithNumber("index", mcp.Description("Target position; clamped to the list bounds"), mcp.Required()),
	), s.handleMoveBlock)

	// ── list_blocks ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_blocks",
		mcp.WithDescription("Return the canvas: blocks in order, test input and undo/redo position"),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{ReadOnlyHint: boolPtr(true)}),
	), s.handleListBlocks)

	// ── set_test_input ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_test_input",
		mcp.WithDescription("Set the test input appended to the prompt when assembling and simulating. Pass an empty string to clear it."),
		mcp.WithString("input", mcp.Description("Test input text")),
	), s.handleSetTestInput)
}

// ── Handlers ───────────────────────────────────────────────

func (s *Server) handleAddBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	blockType, err := requireString(args, "type")
	if err != nil {
		return nil, err
	}
	s.logCall("add_block", zap.String("type", blockType))

	b, err := s.editor.DropBlock(ctx, domain.BlockType(blockType), getString(args, "content", ""), "")
	if err != nil {
		return nil, err
	}
	return jsonResult(b)
}

func (s *Server) handleAcceptSuggestion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	blockType, err := requireString(args, "type")
	if err != nil {
		return nil, err
	}
	content, err := requireString(args, "content")
	if err != nil {
		return nil, err
	}
	s.logCall("accept_suggestion", zap.String("type", blockType))

	b, err := s.editor.AcceptSuggestion(ctx, domain.BlockType(blockType), content)
	if err != nil {
		return nil, err
	}
	return jsonResult(b)
}

func (s *Server) handleUpdateBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, err := requireString(args, "blockId")
	if err != nil {
		return nil, err
	}
	content, ok := args["content"].(string)
	if !ok {
		return nil, fmt.Errorf("content is required")
	}
	s.logCall("update_block", zap.String("blockId", id))

	b, err := s.editor.UpdateBlock(ctx, id, content)
	if err != nil {
		return nil, err
	}
	return jsonResult(b)
}

func (s *Server) handleRemoveBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req.GetArguments(), "blockId")
	if err != nil {
		return nil, err
	}
	s.logCall("remove_block", zap.String("blockId", id))

	if err := s.editor.RemoveBlock(ctx, id); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Block %s removed", id)), nil
}

func (s *Server) handleMoveBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, err := requireString(args, "blockId")
	if err != nil {
		return nil, err
	}
	index, ok := args["index"].(float64)
	if !ok {
		return nil, fmt.Errorf("index is required")
	}
	s.logCall("move_block", zap.String("blockId", id), zap.Int("index", int(index)))

	if err := s.editor.MoveBlock(ctx, id, int(index)); err != nil {
		return nil, err
	}
	return jsonResult(s.editor.Snapshot())
}

func (s *Server) handleListBlocks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logCall("list_blocks")
	return jsonResult(s.editor.Snapshot())
}

func (s *Server) handleSetTestInput(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := getString(req.GetArguments(), "input", "")
	s.logCall("set_test_input", zap.Int("length", len(input)))

	s.editor.SetTestInput(ctx, input)
	if input == "" {
		return textResult("Test input cleared"), nil
	}
	return textResult("Test input updated"), nil
}
