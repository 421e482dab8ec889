package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"promptstudio/internal/catalog"
	"promptstudio/internal/domain"
	"promptstudio/internal/history"
	"promptstudio/internal/prompt"
)

// DefaultPreviewCacheSize bounds the memoised previews.
const DefaultPreviewCacheSize = 128

// ─────────────────────────────────────────────────────────────
// Editor Service — the single owner of canvas state
// ─────────────────────────────────────────────────────────────

// EditorService owns the block list, the test input, the undo/redo log and
// the saved versions. Every mutator records the new block list in the log
// (when it changed) and emits EventEditorChanged. The live block list is
// always equal to the log entry under the cursor.
//
// Methods are safe for concurrent use.
type EditorService struct {
	mu        sync.Mutex
	blocks    []domain.Block
	testInput string
	log       *history.Log

	versions domain.VersionStore
	emitter  EventEmitter
	logger   *zap.Logger
	clip     Clipboard
	previews *lru.Cache[string, Preview]

	historyLimit int
	cacheSize    int
	newID        func() string
	now          func() time.Time
}

// EditorOption configures an EditorService.
type EditorOption func(*EditorService)

// WithHistoryLimit caps the undo log. Zero keeps every entry.
func WithHistoryLimit(n int) EditorOption {
	return func(s *EditorService) { s.historyLimit = n }
}

func WithPreviewCacheSize(n int) EditorOption {
	return func(s *EditorService) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

func WithLogger(l *zap.Logger) EditorOption {
	return func(s *EditorService) { s.logger = l }
}

func WithClipboard(c Clipboard) EditorOption {
	return func(s *EditorService) { s.clip = c }
}

// WithIDGenerator replaces the uuid generator used for blocks and versions.
func WithIDGenerator(fn func() string) EditorOption {
	return func(s *EditorService) { s.newID = fn }
}

func WithClock(fn func() time.Time) EditorOption {
	return func(s *EditorService) { s.now = fn }
}

// NewEditorService creates an editor with an empty canvas.
func NewEditorService(versions domain.VersionStore, emitter EventEmitter, opts ...EditorOption) (*EditorService, error) {
	s := &EditorService{
		versions:  versions,
		emitter:   emitter,
		logger:    zap.NewNop(),
		clip:      SystemClipboard{},
		cacheSize: DefaultPreviewCacheSize,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	if s.emitter == nil {
		s.emitter = NopEmitter{}
	}
	s.logger = s.logger.Named("editor")

	cache, err := lru.New[string, Preview](s.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("preview cache: %w", err)
	}
	s.previews = cache
	s.blocks = []domain.Block{}
	s.log = history.New(s.blocks, history.WithLimit(s.historyLimit))
	return s, nil
}

// ─────────────────────────────────────────────────────────────
// Block mutators
// ─────────────────────────────────────────────────────────────

// DropBlock appends a block of type t. An empty content takes the palette
// default for t; an empty category means CategoryInstruction.
func (s *EditorService) DropBlock(ctx context.Context, t domain.BlockType, content, category string) (domain.Block, error) {
	if !catalog.Has(t) {
		return domain.Block{}, fmt.Errorf("drop %q: %w", t, ErrUnknownBlockType)
	}
	if content == "" {
		content = catalog.DefaultContent(t)
	}
	if category == "" {
		category = domain.CategoryInstruction
	}
	return s.appendBlock(ctx, t, content, category)
}

// AcceptSuggestion appends the suggested block, tagged as a suggestion.
func (s *EditorService) AcceptSuggestion(ctx context.Context, t domain.BlockType, content string) (domain.Block, error) {
	if !catalog.Has(t) {
		return domain.Block{}, fmt.Errorf("accept suggestion %q: %w", t, ErrUnknownBlockType)
	}
	return s.appendBlock(ctx, t, content, domain.CategorySuggestion)
}

func (s *EditorService) appendBlock(ctx context.Context, t domain.BlockType, content, category string) (domain.Block, error) {
	b := domain.Block{ID: s.newID(), Type: t, Content: content, Category: category}

	s.mu.Lock()
	next := append(domain.CloneBlocks(s.blocks), b)
	state := s.commitLocked(next)
	s.mu.Unlock()

	s.logger.Debug("block added", zap.String("id", b.ID), zap.String("type", string(t)))
	s.emitter.Emit(ctx, EventEditorChanged, state)
	return b, nil
}

// UpdateBlock replaces the content of block id.
func (s *EditorService) UpdateBlock(ctx context.Context, id, content string) (domain.Block, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Block{}, fmt.Errorf("update block %s: %w", id, domain.ErrBlockNotFound)
	}
	next := domain.CloneBlocks(s.blocks)
	next[i].Content = content
	updated := next[i]
	state := s.commitLocked(next)
	s.mu.Unlock()

	s.emitter.Emit(ctx, EventEditorChanged, state)
	return updated, nil
}

// RemoveBlock deletes block id.
func (s *EditorService) RemoveBlock(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("remove block %s: %w", id, domain.ErrBlockNotFound)
	}
	next := make([]domain.Block, 0, len(s.blocks)-1)
	next = append(next, s.blocks[:i]...)
	next = append(next, s.blocks[i+1:]...)
	state := s.commitLocked(next)
	s.mu.Unlock()

	s.logger.Debug("block removed", zap.String("id", id))
	s.emitter.Emit(ctx, EventEditorChanged, state)
	return nil
}

// MoveBlock moves block id to position index. Out-of-range positions are
// clamped to the ends of the list.
func (s *EditorService) MoveBlock(ctx context.Context, id string, index int) error {
	s.mu.Lock()
	from := s.indexLocked(id)
	if from < 0 {
		s.mu.Unlock()
		return fmt.Errorf("move block %s: %w", id, domain.ErrBlockNotFound)
	}
	index = max(0, min(index, len(s.blocks)-1))

	next := domain.CloneBlocks(s.blocks)
	moved := next[from]
	next = append(next[:from], next[from+1:]...)
	next = append(next[:index], append([]domain.Block{moved}, next[index:]...)...)
	state := s.commitLocked(next)
	s.mu.Unlock()

	s.emitter.Emit(ctx, EventEditorChanged, state)
	return nil
}

// SetTestInput replaces the free-text input sent along with the prompt.
// It does not touch the undo log.
func (s *EditorService) SetTestInput(ctx context.Context, input string) {
	s.mu.Lock()
	s.testInput = input
	state := s.stateLocked()
	s.mu.Unlock()

	s.emitter.Emit(ctx, EventEditorChanged, state)
}

func (s *EditorService) TestInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.testInput
}

// commitLocked makes next the live list and records it. Caller holds s.mu.
func (s *EditorService) commitLocked(next []domain.Block) domain.EditorState {
	s.blocks = next
	s.log.RecordIfChanged(next)
	return s.stateLocked()
}

func (s *EditorService) indexLocked(id string) int {
	for i, b := range s.blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────
// History
// ─────────────────────────────────────────────────────────────

// Undo steps back one history entry. It reports false at the start of the
// log, where nothing changes.
func (s *EditorService) Undo(ctx context.Context) bool {
	return s.step(ctx, s.log.Undo)
}

// Redo steps forward one history entry.
func (s *EditorService) Redo(ctx context.Context) bool {
	return s.step(ctx, s.log.Redo)
}

func (s *EditorService) step(ctx context.Context, move func() ([]domain.Block, bool)) bool {
	s.mu.Lock()
	blocks, ok := move()
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.blocks = blocks
	state := s.stateLocked()
	s.mu.Unlock()

	s.emitter.Emit(ctx, EventEditorChanged, state)
	return true
}

// History returns every undo entry, oldest first, and the cursor position.
func (s *EditorService) History() ([][]domain.Block, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Entries(), s.log.Index()
}

// ─────────────────────────────────────────────────────────────
// Saved versions
// ─────────────────────────────────────────────────────────────

// SaveVersion stores the current canvas under name. A blank name or an
// empty canvas saves nothing and returns (nil, nil).
func (s *EditorService) SaveVersion(ctx context.Context, name string) (*domain.SavedVersion, error) {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	blocks := domain.CloneBlocks(s.blocks)
	s.mu.Unlock()

	if name == "" || len(blocks) == 0 {
		return nil, nil
	}
	v := &domain.SavedVersion{
		ID:        s.newID(),
		Name:      name,
		Blocks:    blocks,
		Timestamp: isoTimestamp(s.now()),
	}
	if err := s.versions.SaveVersion(v); err != nil {
		return nil, fmt.Errorf("save version %q: %w", name, err)
	}

	s.logger.Info("version saved", zap.String("id", v.ID), zap.String("name", name), zap.Int("blocks", len(blocks)))
	s.emitter.Emit(ctx, EventVersionSaved, v)
	return v, nil
}

// LoadVersion replaces the canvas with version id and resets the undo log
// to that single entry. An unknown id is ignored and reports false.
func (s *EditorService) LoadVersion(ctx context.Context, id string) (bool, error) {
	v, err := s.versions.GetVersion(id)
	if errors.Is(err, domain.ErrVersionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load version: %w", err)
	}

	s.mu.Lock()
	s.blocks = domain.CloneBlocks(v.Blocks)
	s.log.Reset(s.blocks)
	state := s.stateLocked()
	s.mu.Unlock()

	s.logger.Info("version loaded", zap.String("id", id), zap.String("name", v.Name))
	s.emitter.Emit(ctx, EventEditorChanged, state)
	return true, nil
}

// Versions lists saved versions, oldest first.
func (s *EditorService) Versions() ([]domain.SavedVersion, error) {
	return s.versions.ListVersions()
}

// ─────────────────────────────────────────────────────────────
// Read side
// ─────────────────────────────────────────────────────────────

// Blocks returns a copy of the live block list.
func (s *EditorService) Blocks() []domain.Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneBlocks(s.blocks)
}

// Snapshot returns the current editor state.
func (s *EditorService) Snapshot() domain.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *EditorService) stateLocked() domain.EditorState {
	return domain.EditorState{
		Blocks:        domain.CloneBlocks(s.blocks),
		TestInput:     s.testInput,
		HistoryIndex:  s.log.Index(),
		HistoryLength: s.log.Len(),
		CanUndo:       s.log.CanUndo(),
		CanRedo:       s.log.CanRedo(),
	}
}

// AssembledPrompt renders the current canvas and test input.
func (s *EditorService) AssembledPrompt(includeReasoning bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return prompt.Assemble(s.blocks, s.testInput, includeReasoning)
}

// CopyPrompt places the assembled prompt on the clipboard and returns it.
func (s *EditorService) CopyPrompt() (string, error) {
	text := s.AssembledPrompt(false)
	if err := s.clip.WriteAll(text); err != nil {
		s.logger.Warn("copy to clipboard failed", zap.Error(err))
		return "", fmt.Errorf("copy prompt: %w", err)
	}
	return text, nil
}

// isoTimestamp formats t like JavaScript's Date.toISOString.
func isoTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
