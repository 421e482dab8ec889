package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"promptstudio/internal/prompt"
	"promptstudio/internal/service"
)

func (s *Server) registerPromptTools() {
	readOnly := mcp.WithToolAnnotation(mcp.ToolAnnotation{ReadOnlyHint: boolPtr(true)})

	// ── assemble_prompt ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("assemble_prompt",
		mcp.WithDescription("Render the canvas into the final prompt text: system/persona blocks first, then the rest in order, then the test input"),
		mcp.WithBoolean("includeReasoning",
			mcp.Description("Append the step-by-step JSON answer instruction when a chain-of-thought block is present (default false)"),
		),
		readOnly,
	), s.handleAssemblePrompt)

	// ── estimate_cost ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("estimate_cost",
		mcp.WithDescription("Estimate tokens, cost in USD and expected response length. Uses the assembled prompt unless text is given."),
		mcp.WithString("text", mcp.Description("Arbitrary text to estimate instead of the canvas (optional)")),
		readOnly,
	), s.handleEstimateCost)

	// ── get_suggestions ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_suggestions",
		mcp.WithDescription("Suggest blocks to add next, highest priority first. Accept one with accept_suggestion."),
		readOnly,
	), s.handleGetSuggestions)

	// ── lint_prompt ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("lint_prompt",
		mcp.WithDescription("Return structural warnings about the prompt (missing role, missing task, too many constraints)"),
		readOnly,
	), s.handleLintPrompt)

	// ── simulate ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("simulate",
		mcp.WithDescription("Test-run the prompt against the simulated model and return its answer plus review feedback. Takes about 1.5 seconds."),
	), s.handleSimulate)

	// ── export_prompt ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("export_prompt",
		mcp.WithDescription("Export the project (blocks, assembled prompt, timestamp) as JSON. Writes "+service.ExportFileName+" when a directory is configured or given, otherwise returns the document."),
		mcp.WithString("dir", mcp.Description("Directory to write into (optional)")),
	), s.handleExportPrompt)

	// ── copy_prompt ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("copy_prompt",
		mcp.WithDescription("Copy the assembled prompt to the system clipboard of the machine running the server"),
	), s.handleCopyPrompt)
}

func (s *Server) handleAssemblePrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reasoning := getBool(req.GetArguments(), "includeReasoning", false)
	s.logCall("assemble_prompt", zap.Bool("includeReasoning", reasoning))
	return textResult(s.editor.AssembledPrompt(reasoning)), nil
}

func (s *Server) handleEstimateCost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := getString(req.GetArguments(), "text", "")
	s.logCall("estimate_cost", zap.Bool("custom", text != ""))
	if strings.TrimSpace(text) == "" {
		return jsonResult(s.editor.Preview(false).Estimate)
	}
	return jsonResult(prompt.EstimateText(text))
}

func (s *Server) handleGetSuggestions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logCall("get_suggestions")
	return jsonResult(s.editor.Preview(false).Suggestions)
}

func (s *Server) handleLintPrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logCall("lint_prompt")
	warnings := s.editor.Preview(false).Warnings
	if len(warnings) == 0 {
		return textResult("No warnings"), nil
	}
	return jsonResult(warnings)
}

func (s *Server) handleSimulate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logCall("simulate")
	out, err := s.simulation.Run(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResult(out)
}

func (s *Server) handleExportPrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir := getString(req.GetArguments(), "dir", s.exportDir)
	s.logCall("export_prompt", zap.String("dir", dir))
	if dir == "" {
		return jsonResult(s.editor.Export())
	}
	path, err := s.editor.WriteExport(dir)
	if err != nil {
		return nil, err
	}
	return textResult("Exported to " + path), nil
}

func (s *Server) handleCopyPrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logCall("copy_prompt")
	text, err := s.editor.CopyPrompt()
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Copied %d characters to the clipboard", len(text))), nil
}
