package prompt

import (
	"promptstudio/internal/catalog"
	"promptstudio/internal/domain"
)

// FlowStep is one row of the numbered block outline.
type FlowStep struct {
	Index   int              `json:"index"`
	BlockID string           `json:"blockId"`
	Type    domain.BlockType `json:"type"`
	Emoji   string           `json:"emoji"`
	Text    string           `json:"text"`
}

// Flow lists blocks in canvas order, numbered from 1. Empty blocks show
// their type's placeholder.
func Flow(blocks []domain.Block) []FlowStep {
	steps := make([]FlowStep, len(blocks))
	for i, b := range blocks {
		cfg := catalog.Lookup(b.Type)
		text := b.Content
		if text == "" {
			text = cfg.Placeholder
		}
		steps[i] = FlowStep{
			Index:   i + 1,
			BlockID: b.ID,
			Type:    b.Type,
			Emoji:   cfg.Emoji,
			Text:    text,
		}
	}
	return steps
}
