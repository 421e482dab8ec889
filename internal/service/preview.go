package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"go.uber.org/zap"

	"promptstudio/internal/domain"
	"promptstudio/internal/prompt"
	"promptstudio/internal/suggest"
)

// Preview is everything derived from the canvas for display. Treat it as
// read-only: instances are shared through the cache.
type Preview struct {
	Prompt      string              `json:"prompt"`
	Estimate    prompt.Estimate     `json:"estimate"`
	Warnings    []string            `json:"warnings"`
	Suggestions []domain.Suggestion `json:"suggestions"`
	Flow        []prompt.FlowStep   `json:"flow"`
}

// BuildPreview recomputes a Preview. It is pure; the service only caches it.
func BuildPreview(blocks []domain.Block, testInput string, includeReasoning bool) Preview {
	text := prompt.Assemble(blocks, testInput, includeReasoning)
	return Preview{
		Prompt:      text,
		Estimate:    prompt.EstimateText(text),
		Warnings:    prompt.Lint(blocks),
		Suggestions: suggest.Suggest(blocks),
		Flow:        prompt.Flow(blocks),
	}
}

// Preview returns the derived view of the current canvas, memoised on the
// block list, test input and reasoning flag.
func (s *EditorService) Preview(includeReasoning bool) Preview {
	s.mu.Lock()
	blocks := domain.CloneBlocks(s.blocks)
	input := s.testInput
	s.mu.Unlock()

	key, err := previewKey(blocks, input, includeReasoning)
	if err != nil {
		s.logger.Warn("preview key", zap.Error(err))
		return BuildPreview(blocks, input, includeReasoning)
	}
	if p, ok := s.previews.Get(key); ok {
		return p
	}
	p := BuildPreview(blocks, input, includeReasoning)
	s.previews.Add(key, p)
	return p
}

func previewKey(blocks []domain.Block, testInput string, includeReasoning bool) (string, error) {
	data, err := json.Marshal(struct {
		B []domain.Block `json:"b"`
		I string         `json:"i"`
		R bool           `json:"r"`
	}{blocks, testInput, includeReasoning})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
