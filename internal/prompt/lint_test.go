package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promptstudio/internal/domain"
)

func TestLint_EmptyCanvas(t *testing.T) {
	warnings := Lint(nil)
	assert.Len(t, warnings, 2)
}

func TestLint_WellFormed(t *testing.T) {
	blocks := []domain.Block{
		block(domain.BlockTypePersona, "p"),
		block(domain.BlockTypeTask, "t"),
	}
	assert.Empty(t, Lint(blocks))
}

func TestLint_TooManyConstraints(t *testing.T) {
	blocks := []domain.Block{
		block(domain.BlockTypeSystem, "s"),
		block(domain.BlockTypeInstruction, "i"),
		block(domain.BlockTypeConstraint, "a"),
		block(domain.BlockTypeConstraint, "b"),
	}
	assert.Empty(t, Lint(blocks))

	blocks = append(blocks, block(domain.BlockTypeConstraint, "c"))
	warnings := Lint(blocks)
	if assert.Len(t, warnings, 1) {
		assert.Contains(t, warnings[0], "Constraint")
	}
}

func TestFlow(t *testing.T) {
	blocks := []domain.Block{
		block(domain.BlockTypeTask, "t"),
		{ID: "empty", Type: domain.BlockTypeContext},
	}
	steps := Flow(blocks)
	if assert.Len(t, steps, 2) {
		assert.Equal(t, 1, steps[0].Index)
		assert.Equal(t, "t", steps[0].Text)
		assert.Equal(t, 2, steps[1].Index)
		assert.Equal(t, "here is background info...", steps[1].Text)
		assert.Equal(t, "📚", steps[1].Emoji)
	}
}
