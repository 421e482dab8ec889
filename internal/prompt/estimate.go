package prompt

import (
	"math"
	"strings"
)

// Pricing heuristics. Token counts are word-count approximations, not a tokenizer.
const (
	TokensPerWord    = 0.75
	InputCostPer1K   = 0.0005
	OutputCostPer1K  = 0.0015
	OutputMultiplier = 1.5
)

// Estimate bundles the derived numbers for one assembled prompt.
type Estimate struct {
	Tokens        int     `json:"tokens"`
	Cost          float64 `json:"cost"`
	ResponseWords int     `json:"responseWords"`
}

// EstimateTokens approximates the token count of text as words * 0.75, rounded up.
func EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	return int(math.Ceil(float64(words) * TokensPerWord))
}

// EstimateCost prices tokens of input plus an output assumed to be
// OutputMultiplier times longer.
func EstimateCost(tokens int) float64 {
	in := float64(tokens)
	out := in * OutputMultiplier
	return (in/1000)*InputCostPer1K + (out/1000)*OutputCostPer1K
}

// EstimateResponseWordCount converts the expected output tokens back to words.
func EstimateResponseWordCount(tokens int) int {
	return int(math.Ceil(float64(tokens) * OutputMultiplier / TokensPerWord))
}

// EstimateText runs all three estimators over text.
func EstimateText(text string) Estimate {
	tokens := EstimateTokens(text)
	return Estimate{
		Tokens:        tokens,
		Cost:          EstimateCost(tokens),
		ResponseWords: EstimateResponseWordCount(tokens),
	}
}
