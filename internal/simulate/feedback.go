package simulate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"promptstudio/internal/domain"
)

// Thresholds used by the review checks.
const (
	conciseBlockCount     = 3
	complexBlockCount     = 4
	maxConstraintBlocks   = 2
	shortAnswerRunes      = 50
	longInputRunes        = 100
	minRepeatedContentLen = 10
)

// Fixed review sentences, in check order.
const (
	msgEmptyCanvas      = "Your canvas is empty! Start by dragging some blocks from the palette to build your prompt."
	msgConcise          = "Your prompt is quite concise. Consider adding more detail or specific blocks to guide the AI."
	msgNoRole           = "A 'System Role' or 'Persona' block is highly recommended to set the AI's behavior and tone."
	msgNoDirective      = "Clearly defining the 'Instruction' or 'Task' is crucial for the AI to understand its objective."
	msgNoContext        = "Adding a 'Context' block can provide essential background information, improving relevance."
	msgNoFormat         = "Consider using a 'Format' block to specify the desired output structure (e.g., JSON, bullet points)."
	msgNoExamples       = "Examples (single or few-shot) can significantly clarify expectations for the AI."
	msgNoReasoning      = "For complex tasks, 'Chain-of-Thought' or 'Tree-of-Thought' blocks can encourage better reasoning."
	msgNoReflection     = "Pairing 'Chain-of-Thought' with 'Self-Reflection' can lead to more robust outputs."
	msgManyConstraints  = "Too many 'Constraint' blocks might make the prompt overly restrictive or lead to conflicts. Review them."
	msgNoSafety         = "For public-facing applications, a 'Safety' block is important to prevent undesirable outputs."
	msgNoTestInput      = "A meaningful 'Test Input' is vital for accurate simulation and debugging."
	msgRefusal          = "The simulated response indicates a potential issue. Review your prompt for clarity or missing context."
	msgShortAnswer      = "The simulated response seems too short for the given test input. Consider if your prompt is too restrictive or ambiguous."
	msgRepeatedTemplate = "You have repeated content: \"%s\". Consider consolidating or rephrasing for conciseness."
	msgLooksGood        = "Your prompt looks well-structured and clear! Keep experimenting to find optimal results."
)

// refusalMarkers flag an answer that declined or stalled.
var refusalMarkers = []string{"I cannot fulfill this request", "I need more information"}

// Feedback reviews the prompt structure and the simulated run. Every check
// that fires contributes one sentence, in check order; when none fires a
// single encouragement is returned.
func Feedback(blocks []domain.Block, testInput, finalAnswer, thoughtProcess string) string {
	_ = thoughtProcess

	types := domain.TypeSet(blocks)
	n := len(blocks)
	var out []string

	switch {
	case n == 0:
		out = append(out, msgEmptyCanvas)
	case n < conciseBlockCount:
		out = append(out, msgConcise)
	}

	if !types[domain.BlockTypeSystem] && !types[domain.BlockTypePersona] {
		out = append(out, msgNoRole)
	}
	if !types[domain.BlockTypeInstruction] && !types[domain.BlockTypeTask] {
		out = append(out, msgNoDirective)
	}

	if !types[domain.BlockTypeContext] && n > 1 {
		out = append(out, msgNoContext)
	}
	if !types[domain.BlockTypeFormat] && n > 2 {
		out = append(out, msgNoFormat)
	}
	if !types[domain.BlockTypeExample] && !types[domain.BlockTypeFewShot] && n > 2 {
		out = append(out, msgNoExamples)
	}

	if n >= complexBlockCount && !types[domain.BlockTypeChainOfThought] && !types[domain.BlockTypeTreeOfThought] {
		out = append(out, msgNoReasoning)
	}
	if types[domain.BlockTypeChainOfThought] && !types[domain.BlockTypeSelfReflection] {
		out = append(out, msgNoReflection)
	}

	if domain.CountType(blocks, domain.BlockTypeConstraint) > maxConstraintBlocks {
		out = append(out, msgManyConstraints)
	}
	if !types[domain.BlockTypeSafety] && n > 3 {
		out = append(out, msgNoSafety)
	}

	switch {
	case strings.TrimSpace(testInput) == "":
		out = append(out, msgNoTestInput)
	case containsAny(finalAnswer, refusalMarkers):
		out = append(out, msgRefusal)
	case utf8.RuneCountInString(finalAnswer) < shortAnswerRunes && utf8.RuneCountInString(testInput) > longInputRunes:
		out = append(out, msgShortAnswer)
	}

	if repeated, ok := firstRepeatedContent(blocks); ok {
		out = append(out, fmt.Sprintf(msgRepeatedTemplate, repeated))
	}

	if len(out) == 0 {
		return msgLooksGood
	}
	return strings.Join(out, " ")
}

// firstRepeatedContent returns the first normalised content, in order of
// first appearance, that occurs more than once and is longer than
// minRepeatedContentLen runes.
func firstRepeatedContent(blocks []domain.Block) (string, bool) {
	counts := make(map[string]int, len(blocks))
	var order []string
	for _, b := range blocks {
		c := strings.TrimSpace(strings.ToLower(b.Content))
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	for _, c := range order {
		if counts[c] > 1 && utf8.RuneCountInString(c) > minRepeatedContentLen {
			return c, true
		}
	}
	return "", false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
