package domain

type SuggestionCategory string

const (
	SuggestionEssential SuggestionCategory = "essential"
	SuggestionQuality   SuggestionCategory = "quality"
	SuggestionAdvanced  SuggestionCategory = "advanced"
	SuggestionSafety    SuggestionCategory = "safety"
)

// Suggestion proposes a block to add next. Derived from the current blocks and never stored.
type Suggestion struct {
	BlockType BlockType          `json:"blockType"`
	Content   string             `json:"content"`
	Reason    string             `json:"reason"`
	Category  SuggestionCategory `json:"category"`
	Priority  int                `json:"priority"`
	Emoji     string             `json:"emoji"`
}
