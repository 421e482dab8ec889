package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"promptstudio/internal/domain"
	"promptstudio/internal/prompt"
	"promptstudio/internal/simulate"
)

// Default pacing of a simulated run.
const (
	DefaultResponseDelay = time.Second
	DefaultFeedbackDelay = 500 * time.Millisecond
)

const simulationKey = "simulation"

// Outcome is one finished simulation.
type Outcome struct {
	Prompt      string            `json:"prompt"`
	TestInput   string            `json:"testInput"`
	Response    simulate.Response `json:"response"`
	Feedback    string            `json:"feedback"`
	CompletedAt string            `json:"completedAt"`
}

// Result is delivered on the channel returned by Start.
type Result struct {
	Outcome *Outcome
	Err     error
}

// ─────────────────────────────────────────────────────────────
// Simulation Service — canned test runs of the assembled prompt
// ─────────────────────────────────────────────────────────────

// SimulationService runs the simulated model against the editor's current
// prompt. Only one run may be in flight at a time.
type SimulationService struct {
	editor  *EditorService
	emitter EventEmitter
	logger  *zap.Logger
	guard   runningJobsGuard

	responseDelay time.Duration
	feedbackDelay time.Duration

	mu   sync.Mutex
	last *Outcome
}

// SimulationOption configures a SimulationService.
type SimulationOption func(*SimulationService)

// WithDelays overrides the pause before the response and before the feedback.
func WithDelays(response, feedback time.Duration) SimulationOption {
	return func(s *SimulationService) {
		s.responseDelay = response
		s.feedbackDelay = feedback
	}
}

func WithSimulationLogger(l *zap.Logger) SimulationOption {
	return func(s *SimulationService) { s.logger = l }
}

func NewSimulationService(editor *EditorService, emitter EventEmitter, opts ...SimulationOption) *SimulationService {
	s := &SimulationService{
		editor:        editor,
		emitter:       emitter,
		logger:        zap.NewNop(),
		responseDelay: DefaultResponseDelay,
		feedbackDelay: DefaultFeedbackDelay,
	}
	for _, o := range opts {
		o(s)
	}
	if s.emitter == nil {
		s.emitter = NopEmitter{}
	}
	s.logger = s.logger.Named("simulation")
	return s
}

// Run simulates the current canvas and blocks until the feedback is ready.
// The canvas is captured when Run is called; later edits don't affect it.
func (s *SimulationService) Run(ctx context.Context) (*Outcome, error) {
	if !s.guard.TryLock(simulationKey) {
		return nil, ErrSimulationRunning
	}
	defer s.guard.Unlock(simulationKey)

	blocks, input := s.capture()
	return s.run(ctx, blocks, input)
}

// Start begins a simulation in the background. The returned channel
// receives exactly one Result and is then closed. A run that is already in
// flight or an empty prompt is reported immediately.
func (s *SimulationService) Start(ctx context.Context) (<-chan Result, error) {
	if !s.guard.TryLock(simulationKey) {
		return nil, ErrSimulationRunning
	}
	blocks, input := s.capture()
	if assemble(blocks, input) == "" {
		s.guard.Unlock(simulationKey)
		return nil, ErrEmptyPrompt
	}

	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		defer s.guard.Unlock(simulationKey)
		out, err := s.run(ctx, blocks, input)
		ch <- Result{Outcome: out, Err: err}
	}()
	return ch, nil
}

// Running reports whether a simulation is in flight.
func (s *SimulationService) Running() bool {
	return s.guard.Busy(simulationKey)
}

// Last returns the most recent completed outcome, or nil.
func (s *SimulationService) Last() *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Wait blocks until no simulation is in flight or ctx is done.
func (s *SimulationService) Wait(ctx context.Context) error {
	return s.guard.WaitAll(ctx)
}

func (s *SimulationService) capture() ([]domain.Block, string) {
	s.editor.mu.Lock()
	defer s.editor.mu.Unlock()
	return domain.CloneBlocks(s.editor.blocks), s.editor.testInput
}

// assemble renders blocks the way a simulation sends them: with the
// reasoning instruction whenever a chain-of-thought block is present.
func assemble(blocks []domain.Block, input string) string {
	text := prompt.Assemble(blocks, input, prompt.HasChainOfThought(blocks))
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}

func (s *SimulationService) run(ctx context.Context, blocks []domain.Block, input string) (*Outcome, error) {
	text := assemble(blocks, input)
	if text == "" {
		return nil, ErrEmptyPrompt
	}

	start := time.Now()
	s.logger.Info("simulation started", zap.Int("blocks", len(blocks)), zap.Int("promptTokens", prompt.EstimateTokens(text)))
	s.emitter.Emit(ctx, EventSimulationStarted, map[string]any{"prompt": text})

	if err := sleep(ctx, s.responseDelay); err != nil {
		return nil, s.fail(ctx, err)
	}
	resp := simulate.Respond(blocks, input, text)
	s.emitter.Emit(ctx, EventSimulationResult, resp)

	feedback := simulate.Feedback(blocks, input, resp.FinalAnswer, resp.ThoughtProcess)
	if err := sleep(ctx, s.feedbackDelay); err != nil {
		return nil, s.fail(ctx, err)
	}
	s.emitter.Emit(ctx, EventSimulationFeedback, map[string]string{"feedback": feedback})

	out := &Outcome{
		Prompt:      text,
		TestInput:   input,
		Response:    resp,
		Feedback:    feedback,
		CompletedAt: isoTimestamp(s.editor.now()),
	}
	s.mu.Lock()
	s.last = out
	s.mu.Unlock()

	s.logger.Info("simulation finished", zap.Duration("took", time.Since(start)))
	return out, nil
}

func (s *SimulationService) fail(ctx context.Context, err error) error {
	s.logger.Warn("simulation aborted", zap.Error(err))
	s.emitter.Emit(context.WithoutCancel(ctx), EventSimulationFailed, map[string]string{"error": err.Error()})
	return fmt.Errorf("simulation: %w", err)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
