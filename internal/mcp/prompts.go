package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("build_prompt",
		mcp.WithPromptDescription("Guide through composing a prompt for a goal, block by block"),
		mcp.WithArgument("goal",
			mcp.ArgumentDescription("What the finished prompt should get a model to do"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("audience",
			mcp.ArgumentDescription("Who will read the model's answer (optional)"),
		),
	), s.handleBuildPrompt)

	s.mcp.AddPrompt(mcp.NewPrompt("review_prompt",
		mcp.WithPromptDescription("Review the prompt currently on the canvas and improve it"),
	), s.handleReviewPrompt)
}

func (s *Server) handleBuildPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	goal := req.Params.Arguments["goal"]
	if strings.TrimSpace(goal) == "" {
		return nil, fmt.Errorf("goal is required")
	}
	steps := []string{
		"Call list_blocks. If the canvas is not empty, ask before building on top of it.",
		"Add a system block that sets the model's role for this goal.",
		"Add a task block stating the goal as a single clear instruction.",
	}
	if audience := req.Params.Arguments["audience"]; audience != "" {
		steps = append(steps, fmt.Sprintf("Add an audience block describing: %s", audience))
	}
	steps = append(steps,
		"Add context, format and example blocks where they sharpen the result.",
		"Call get_suggestions and accept the ones that fit.",
		"Set a realistic test input with set_test_input, then run simulate.",
		"Apply the feedback, and save_version once the prompt reads well.",
	)
	var b strings.Builder
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Build a prompt for: %s", goal),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf("Build a prompt on the canvas whose goal is: %q. Follow these steps:\n\n%s\nFinish by showing the output of assemble_prompt.", goal, b.String()),
				},
			},
		},
	}, nil
}

func (s *Server) handleReviewPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	current := s.editor.AssembledPrompt(false)
	if current == "" {
		current = "(the canvas is empty)"
	}
	warnings := s.editor.Preview(false).Warnings
	lint := "none"
	if len(warnings) > 0 {
		lint = "- " + strings.Join(warnings, "\n- ")
	}

	return &mcp.GetPromptResult{
		Description: "Review the prompt on the canvas",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf(`Review this prompt and improve it on the canvas.

Current prompt:
%s

Lint warnings:
%s

Use get_suggestions and simulate to find gaps, then fix them with add_block, update_block, move_block or remove_block. Save the result with save_version before you finish.`, current, lint),
				},
			},
		},
	}, nil
}
