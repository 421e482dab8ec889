// Package simulate produces the canned "model output" and rule-based review
// text shown when a prompt is test-run. Nothing here calls a model: both
// outputs are deterministic template substitutions over the prompt and blocks.
package simulate

import (
	"fmt"

	"promptstudio/internal/domain"
	"promptstudio/internal/prompt"
)

// thoughtPreviewRunes is how much of the prompt the thought process quotes.
const thoughtPreviewRunes = 100

// Response is the simulated answer to an assembled prompt.
type Response struct {
	FinalAnswer    string `json:"final_answer"`
	ThoughtProcess string `json:"thought_process,omitempty"`
}

// Respond builds the simulated answer for prompt. A thought process is only
// produced when blocks contain a chain-of-thought block.
func Respond(blocks []domain.Block, testInput, assembled string) Response {
	r := Response{
		FinalAnswer: fmt.Sprintf("This is a simulated response based on your prompt structure and test input. "+
			"The actual AI output would vary.\n\nPrompt:\n%s\n\nTest Input:\n%s", assembled, testInput),
	}
	if prompt.HasChainOfThought(blocks) {
		r.ThoughtProcess = fmt.Sprintf("Simulating thought process for: \"%s...\"\n\nSteps:\n"+
			"1. Analyze input and prompt blocks.\n"+
			"2. Formulate a plan based on instructions.\n"+
			"3. Generate response.", truncateRunes(assembled, thoughtPreviewRunes))
	}
	return r
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
