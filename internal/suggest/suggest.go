// Package suggest ranks the blocks worth adding next, using a fixed table of
// presence rules over the current canvas.
package suggest

import (
	"sort"

	"promptstudio/internal/domain"
)

// MaxSuggestions caps the list returned by Suggest.
const MaxSuggestions = 6

// canvas is what a rule gets to look at.
type canvas struct {
	types map[domain.BlockType]bool
	count int
}

func (c canvas) has(t domain.BlockType) bool { return c.types[t] }

type rule struct {
	when       func(c canvas) bool
	suggestion domain.Suggestion
}

// rules are evaluated in this order; ties in priority keep it.
var rules = []rule{
	{
		when: func(c canvas) bool {
			return !c.has(domain.BlockTypeSystem) && !c.has(domain.BlockTypePersona)
		},
		suggestion: domain.Suggestion{
			BlockType: domain.BlockTypeSystem,
			Content:   "a helpful AI assistant",
			Reason:    "Every good prompt needs a clear system role to set expectations",
			Category:  domain.SuggestionEssential,
			Priority:  10,
			Emoji:     "🎭",
		},
	},
	{
		when: func(c canvas) bool {
			return c.count > 0 && !c.has(domain.BlockTypeTask) && !c.has(domain.BlockTypeInstruction)
		},
		suggestion: domain.Suggestion{
			BlockType: domain.BlockTypeTask,
			Content:   "analyze and summarize the key points",
			Reason:    "Define what you want the AI to actually do",
			Category:  domain.SuggestionEssential,
			Priority:  9,
			Emoji:     "🎯",
		},
	},
	{
		when: func(c canvas) bool {
			return c.has(domain.BlockTypeInstruction) && !c.has(domain.BlockTypeExample)
		},
		suggestion: domain.Suggestion{
			BlockType: domain.BlockTypeExample,
			Content:   "Input: 'Market analysis' → Output: '• Key trends • Opportunities • Risks'",
			Reason:    "Examples dramatically improve AI understanding",
			Category:  domain.SuggestionQuality,
			Priority:  8,
			Emoji:     "💡",
		},
	},
	{
		when: func(c canvas) bool {
			return c.has(domain.BlockTypeSystem) && !c.has(domain.BlockTypeContext)
		},
		suggestion: domain.Suggestion{
			BlockType: domain.BlockTypeContext,
			Content:   "this is for a business presentation",
			Reason:    "Context helps the AI understand the situation better",
			Category:  domain.SuggestionQuality,
			Priority:  7,
			Emoji:     "📚",
		},
	},
	{
		when: func(c canvas) bool {
			return c.has(domain.BlockTypeTask) && !c.has(domain.BlockTypeFormat)
		},
		suggestion: domain.Suggestion{
			BlockType: domain.BlockTypeFormat,
			Content:   "respond in bullet points with clear headings",
			Reason:    "Specify output format for consistent, usable results",
			Category:  domain.SuggestionQuality,
			Priority:  6,
			Emoji:     "📋",
		},
	},
	{
		when: func(c canvas) bool {
			return c.count >= 2 && !c.has(domain.BlockTypeSafety)
		},
		suggestion: domain.Suggestion{
			BlockType: domain.BlockTypeSafety,
			Content:   "avoid harmful, biased, or inappropriate content",
			Reason:    "Important for responsible AI use",
			Category:  domain.SuggestionSafety,
			Priority:  6,
			Emoji:     "🛡️",
		},
	},
	{
		when: func(c canvas) bool {
			return c.count >= 3 && !c.has(domain.BlockTypeChainOfThought)
		},
		suggestion: domain.Suggestion{
			BlockType: domain.BlockTypeChainOfThought,
			Content:   "think through this step by step",
			Reason:    "Improves reasoning quality for complex tasks",
			Category:  domain.SuggestionAdvanced,
			Priority:  5,
			Emoji:     "🧠",
		},
	},
	{
		when: func(c canvas) bool {
			return c.has(domain.BlockTypeExample) && !c.has(domain.BlockTypeSelfReflection)
		},
		suggestion: domain.Suggestion{
			BlockType: domain.BlockTypeSelfReflection,
			Content:   "review your answer and check for accuracy",
			Reason:    "Self-correction leads to higher quality outputs",
			Category:  domain.SuggestionAdvanced,
			Priority:  4,
			Emoji:     "🪞",
		},
	},
	{
		when: func(c canvas) bool {
			return c.has(domain.BlockTypeTask) && !c.has(domain.BlockTypeUncertainty)
		},
		suggestion: domain.Suggestion{
			BlockType: domain.BlockTypeUncertainty,
			Content:   "if unsure, say so and explain your confidence level",
			Reason:    "Helps users understand AI limitations",
			Category:  domain.SuggestionSafety,
			Priority:  3,
			Emoji:     "❓",
		},
	},
}

// Suggest evaluates every rule against blocks and returns the matches sorted
// by descending priority, at most MaxSuggestions of them.
func Suggest(blocks []domain.Block) []domain.Suggestion {
	c := canvas{types: domain.TypeSet(blocks), count: len(blocks)}

	out := make([]domain.Suggestion, 0, len(rules))
	for _, r := range rules {
		if r.when(c) {
			out = append(out, r.suggestion)
		}
	}

	return rank(out)
}

// rank orders suggestions by descending priority, keeping evaluation order
// for ties, and applies the cap.
func rank(out []domain.Suggestion) []domain.Suggestion {
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
