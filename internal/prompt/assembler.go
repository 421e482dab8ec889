// Package prompt turns an ordered block list into the final prompt text and
// derives the cheap heuristics shown next to it: token and cost estimates,
// lint warnings and the numbered block outline.
package prompt

import (
	"strings"

	"promptstudio/internal/catalog"
	"promptstudio/internal/domain"
)

// ReasoningInstruction is appended when the caller asks for structured
// reasoning and the prompt contains a chain-of-thought block.
const ReasoningInstruction = "Please provide your thought process step-by-step before the final answer. " +
	"Format your response as a JSON object with two keys: 'thought_process' (string) and 'final_answer' (string)."

const sectionSeparator = "\n\n"

// Assemble renders blocks into a single prompt.
//
// Lead blocks (system, persona) always come first, the rest follow; each
// partition keeps the relative order of the input. Non-empty parts (lead
// section, body section, test input, reasoning instruction) are separated
// by exactly one blank line. An empty block list yields "" whatever the
// test input.
func Assemble(blocks []domain.Block, testInput string, includeReasoning bool) string {
	if len(blocks) == 0 {
		return ""
	}

	var lead, body []string
	for _, b := range blocks {
		if b.IsLead() {
			lead = append(lead, Render(b))
		} else {
			body = append(body, Render(b))
		}
	}

	parts := make([]string, 0, 4)
	if len(lead) > 0 {
		parts = append(parts, strings.Join(lead, sectionSeparator))
	}
	if len(body) > 0 {
		parts = append(parts, strings.Join(body, sectionSeparator))
	}
	if strings.TrimSpace(testInput) != "" {
		parts = append(parts, testInput)
	}
	if includeReasoning && HasChainOfThought(blocks) {
		parts = append(parts, ReasoningInstruction)
	}

	return strings.TrimSpace(strings.Join(parts, sectionSeparator))
}

// Render renders a single block as "<prompt prefix> <content>".
func Render(b domain.Block) string {
	return catalog.Lookup(b.Type).PromptPrefix + " " + b.Content
}

// HasChainOfThought reports whether any block asks for step-by-step reasoning.
func HasChainOfThought(blocks []domain.Block) bool {
	for _, b := range blocks {
		if b.Type == domain.BlockTypeChainOfThought {
			return true
		}
	}
	return false
}
