package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"promptstudio/internal/domain"
	"promptstudio/internal/prompt"
	"promptstudio/internal/service"
)

func newSimulation(t *testing.T, delay time.Duration) (*service.EditorService, *service.SimulationService, *service.MockEmitter) {
	t.Helper()
	editor, emitter := newEditor(t)
	sim := service.NewSimulationService(editor, emitter, service.WithDelays(delay, delay/2))
	return editor, sim, emitter
}

func TestSimulation_EmptyPrompt(t *testing.T) {
	defer goleak.VerifyNone(t)
	editor, sim, _ := newSimulation(t, 0)
	editor.SetTestInput(context.Background(), "input without blocks")

	_, err := sim.Run(context.Background())
	assert.ErrorIs(t, err, service.ErrEmptyPrompt)

	_, err = sim.Start(context.Background())
	assert.ErrorIs(t, err, service.ErrEmptyPrompt)
	assert.False(t, sim.Running())
	assert.Nil(t, sim.Last())
}

func TestSimulation_RunProducesResultThenFeedback(t *testing.T) {
	defer goleak.VerifyNone(t)
	editor, sim, emitter := newSimulation(t, 10*time.Millisecond)
	ctx := context.Background()
	drop(t, editor, domain.BlockTypeTask, "summarise")
	editor.SetTestInput(ctx, "the report")

	out, err := sim.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Your task is to summarise\n\nthe report", out.Prompt)
	assert.Contains(t, out.Response.FinalAnswer, "Prompt:\n"+out.Prompt)
	assert.Empty(t, out.Response.ThoughtProcess)
	assert.NotEmpty(t, out.Feedback)
	assert.Same(t, out, sim.Last())

	names := emitter.Names()
	require.GreaterOrEqual(t, len(names), 3)
	assert.Equal(t, []string{
		service.EventSimulationStarted,
		service.EventSimulationResult,
		service.EventSimulationFeedback,
	}, names[len(names)-3:])
}

func TestSimulation_ChainOfThoughtAddsReasoning(t *testing.T) {
	defer goleak.VerifyNone(t)
	editor, sim, _ := newSimulation(t, 0)
	drop(t, editor, domain.BlockTypeChainOfThought, "carefully")

	out, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.Prompt, prompt.ReasoningInstruction))
	assert.NotEmpty(t, out.Response.ThoughtProcess)
}

func TestSimulation_RejectsConcurrentRun(t *testing.T) {
	defer goleak.VerifyNone(t)
	editor, sim, _ := newSimulation(t, 100*time.Millisecond)
	drop(t, editor, domain.BlockTypeTask, "x")

	ch, err := sim.Start(context.Background())
	require.NoError(t, err)
	assert.True(t, sim.Running())

	_, err = sim.Run(context.Background())
	assert.ErrorIs(t, err, service.ErrSimulationRunning)
	_, err = sim.Start(context.Background())
	assert.ErrorIs(t, err, service.ErrSimulationRunning)

	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.NotNil(t, res.Outcome)
	_, ok = <-ch
	assert.False(t, ok, "channel is closed after the single result")

	require.NoError(t, sim.Wait(context.Background()))
	assert.False(t, sim.Running())
}

func TestSimulation_CapturesCanvasAtStart(t *testing.T) {
	defer goleak.VerifyNone(t)
	editor, sim, _ := newSimulation(t, 50*time.Millisecond)
	ctx := context.Background()
	drop(t, editor, domain.BlockTypeTask, "original")

	ch, err := sim.Start(ctx)
	require.NoError(t, err)
	drop(t, editor, domain.BlockTypeContext, "added later")

	res := <-ch
	require.NoError(t, res.Err)
	assert.NotContains(t, res.Outcome.Prompt, "added later")
}

func TestSimulation_RespectsDelays(t *testing.T) {
	defer goleak.VerifyNone(t)
	editor, sim, _ := newSimulation(t, 40*time.Millisecond)
	drop(t, editor, domain.BlockTypeTask, "x")

	start := time.Now()
	_, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestSimulation_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	editor, sim, emitter := newSimulation(t, time.Second)
	drop(t, editor, domain.BlockTypeTask, "x")

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := sim.Start(ctx)
	require.NoError(t, err)
	cancel()

	res := <-ch
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Nil(t, sim.Last())
	last, ok := emitter.Last()
	require.True(t, ok)
	assert.Equal(t, service.EventSimulationFailed, last.Event)
}
