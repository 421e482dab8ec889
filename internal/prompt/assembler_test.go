package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"promptstudio/internal/domain"
)

func block(t domain.BlockType, content string) domain.Block {
	return domain.Block{ID: string(t) + ":" + content, Type: t, Content: content, Category: domain.CategoryInstruction}
}

func TestAssemble_LeadBlocksFirst(t *testing.T) {
	blocks := []domain.Block{
		block(domain.BlockTypeInstruction, "help"),
		block(domain.BlockTypeSystem, "be nice"),
		block(domain.BlockTypeTask, "summarize"),
	}

	got := Assemble(blocks, "", false)
	assert.Equal(t, "You are be nice\n\nPlease help\n\nYour task is to summarize", got)
}

func TestAssemble_PreservesOrderWithinPartitions(t *testing.T) {
	blocks := []domain.Block{
		block(domain.BlockTypeContext, "c1"),
		block(domain.BlockTypePersona, "p1"),
		block(domain.BlockTypeFormat, "f1"),
		block(domain.BlockTypeSystem, "s1"),
		block(domain.BlockTypeContext, "c2"),
	}

	got := Assemble(blocks, "", false)
	parts := strings.Split(got, "\n\n")
	assert.Equal(t, []string{
		"You are a persona with the following traits: p1",
		"You are s1",
		"Context: c1",
		"Format your response as: f1",
		"Context: c2",
	}, parts)
}

func TestAssemble_Empty(t *testing.T) {
	assert.Equal(t, "", Assemble(nil, "", false))
	assert.Equal(t, "", Assemble([]domain.Block{}, "some input", true))
}

func TestAssemble_TestInputAppendedVerbatim(t *testing.T) {
	got := Assemble([]domain.Block{block(domain.BlockTypeInstruction, "x")}, "hello world", false)
	assert.Equal(t, "Please x\n\nhello world", got)
	assert.True(t, strings.HasSuffix(got, "\n\nhello world"))

	got = Assemble([]domain.Block{block(domain.BlockTypeInstruction, "x")}, "a   b\n\tc", false)
	assert.True(t, strings.HasSuffix(got, "\n\na   b\n\tc"))
}

func TestAssemble_BlankTestInputIgnored(t *testing.T) {
	got := Assemble([]domain.Block{block(domain.BlockTypeInstruction, "x")}, "   \n ", false)
	assert.Equal(t, "Please x", got)
}

func TestAssemble_LeadOnly(t *testing.T) {
	blocks := []domain.Block{block(domain.BlockTypeSystem, "a bot")}

	assert.Equal(t, "You are a bot", Assemble(blocks, "", false))
	assert.Equal(t, "You are a bot\n\nquestion", Assemble(blocks, "question", false))
}

func TestAssemble_BodyOnly(t *testing.T) {
	blocks := []domain.Block{block(domain.BlockTypeTask, "sum")}
	assert.Equal(t, "Your task is to sum", Assemble(blocks, "", false))
}

func TestAssemble_ReasoningInstruction(t *testing.T) {
	withCoT := []domain.Block{
		block(domain.BlockTypeTask, "solve"),
		block(domain.BlockTypeChainOfThought, "carefully"),
	}
	withoutCoT := []domain.Block{block(domain.BlockTypeTask, "solve")}

	t.Run("appended when requested and present", func(t *testing.T) {
		got := Assemble(withCoT, "2+2", true)
		assert.True(t, strings.HasSuffix(got, "2+2\n\n"+ReasoningInstruction))
		assert.Contains(t, got, "thought_process")
		assert.Contains(t, got, "final_answer")
	})

	t.Run("omitted when not requested", func(t *testing.T) {
		assert.NotContains(t, Assemble(withCoT, "", false), ReasoningInstruction)
	})

	t.Run("omitted without a chain-of-thought block", func(t *testing.T) {
		assert.NotContains(t, Assemble(withoutCoT, "", true), ReasoningInstruction)
	})
}

func TestAssemble_UnknownTypeUsesFallbackPrefix(t *testing.T) {
	got := Assemble([]domain.Block{{ID: "1", Type: "mystery", Content: "do it"}}, "", false)
	assert.Equal(t, "Please do it", got)
}

func TestAssemble_NoDoubleBlankLines(t *testing.T) {
	blocks := []domain.Block{
		block(domain.BlockTypeSystem, "s"),
		block(domain.BlockTypeChainOfThought, "c"),
	}
	got := Assemble(blocks, "input", true)
	assert.NotContains(t, got, "\n\n\n")
}
