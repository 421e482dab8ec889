package domain

import "errors"

type BlockType string

const (
	BlockTypeSystem         BlockType = "system"
	BlockTypeInstruction    BlockType = "instruction"
	BlockTypeContext        BlockType = "context"
	BlockTypeRole           BlockType = "role"
	BlockTypeExample        BlockType = "example"
	BlockTypeFormat         BlockType = "format"
	BlockTypeConstraint     BlockType = "constraint"
	BlockTypeChainOfThought BlockType = "chain-of-thought"
	BlockTypeTask           BlockType = "task"
	BlockTypeFewShot        BlockType = "few-shot"
	BlockTypePersona        BlockType = "persona"
	BlockTypeAudience       BlockType = "audience"
	BlockTypeDomain         BlockType = "domain"
	BlockTypeAnalogy        BlockType = "analogy"
	BlockTypeCounterExample BlockType = "counter-example"
	BlockTypeTreeOfThought  BlockType = "tree-of-thought"
	BlockTypeSelfReflection BlockType = "self-reflection"
	BlockTypeStepBack       BlockType = "step-back"
	BlockTypeTone           BlockType = "tone"
	BlockTypeStructure      BlockType = "structure"
	BlockTypeValidation     BlockType = "validation"
	BlockTypeSafety         BlockType = "safety"
	BlockTypeFactCheck      BlockType = "fact-check"
	BlockTypeUncertainty    BlockType = "uncertainty"
	BlockTypeQuestion       BlockType = "question"
	BlockTypeClarification  BlockType = "clarification"
	BlockTypeOptions        BlockType = "options"
	BlockTypeFollowUp       BlockType = "follow-up"
	BlockTypeCode           BlockType = "code"
	BlockTypeCreative       BlockType = "creative"
	BlockTypeAnalysis       BlockType = "analysis"
	BlockTypeResearch       BlockType = "research"
	BlockTypeMetaPrompt     BlockType = "meta-prompt"
	BlockTypePerformance    BlockType = "performance"
	BlockTypeIteration      BlockType = "iteration"
	BlockTypeBenchmark      BlockType = "benchmark"
	BlockTypeIf             BlockType = "if"
	BlockTypeThen           BlockType = "then"
	BlockTypeLoop           BlockType = "loop"
	BlockTypeInject         BlockType = "inject"
)

// Categories a block can be tagged with. Informational only.
const (
	CategoryInstruction = "instruction"
	CategorySuggestion  = "suggestion"
)

var (
	ErrBlockNotFound   = errors.New("block not found")
	ErrVersionNotFound = errors.New("version not found")
)

// Block is one fragment of a composed prompt.
type Block struct {
	ID       string    `json:"id"`
	Type     BlockType `json:"type"`
	Content  string    `json:"content"`
	Category string    `json:"category"`
}

// IsLead reports whether the block is rendered ahead of all other blocks
// when the prompt is assembled.
func (b Block) IsLead() bool {
	return b.Type == BlockTypeSystem || b.Type == BlockTypePersona
}

// BlockConfig is the catalog entry for a block type.
type BlockConfig struct {
	Prefix       string `json:"prefix"`
	PromptPrefix string `json:"promptPrefix"`
	Placeholder  string `json:"placeholder"`
	Emoji        string `json:"emoji"`
	BgColor      string `json:"bgColor"`
	TextColor    string `json:"textColor"`
	Shape        string `json:"shape"`
	GlowColor    string `json:"glowColor,omitempty"`
}

// CloneBlocks returns a copy of blocks that shares no backing array with the input.
// A nil input yields an empty, non-nil slice.
func CloneBlocks(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	return out
}

// TypeSet returns the set of block types present in blocks.
func TypeSet(blocks []Block) map[BlockType]bool {
	set := make(map[BlockType]bool, len(blocks))
	for _, b := range blocks {
		set[b.Type] = true
	}
	return set
}

// CountType returns how many blocks have type t.
func CountType(blocks []Block, t BlockType) int {
	n := 0
	for _, b := range blocks {
		if b.Type == t {
			n++
		}
	}
	return n
}
