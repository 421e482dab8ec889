// Package history keeps the linear undo/redo log of canvas snapshots.
package history

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"promptstudio/internal/domain"
)

var equalOpts = []cmp.Option{cmpopts.EquateEmpty()}

// Log is an ordered list of block-list snapshots with a cursor. Entries are
// cloned on the way in and out so callers can't mutate recorded history.
//
// Log is not safe for concurrent use.
type Log struct {
	entries [][]domain.Block
	index   int
	limit   int
}

// Option configures a Log.
type Option func(*Log)

// WithLimit caps the number of entries kept. When a commit pushes the log
// past n the oldest entries are dropped. n <= 0 means unbounded.
func WithLimit(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.limit = n
		}
	}
}

// New returns a log holding initial as its only entry.
func New(initial []domain.Block, opts ...Option) *Log {
	l := &Log{}
	for _, o := range opts {
		o(l)
	}
	l.Reset(initial)
	return l
}

// RecordIfChanged appends blocks as a new entry unless it equals the entry
// under the cursor. Any redo branch is discarded first. It reports whether
// an entry was added.
func (l *Log) RecordIfChanged(blocks []domain.Block) bool {
	if cmp.Equal(l.entries[l.index], blocks, equalOpts...) {
		return false
	}
	l.entries = append(l.entries[:l.index+1], domain.CloneBlocks(blocks))
	l.index = len(l.entries) - 1

	if l.limit > 0 && len(l.entries) > l.limit {
		drop := len(l.entries) - l.limit
		l.entries = append([][]domain.Block(nil), l.entries[drop:]...)
		l.index -= drop
	}
	return true
}

// Undo moves the cursor back one entry and returns it. At the start of the
// log it returns false and nothing changes.
func (l *Log) Undo() ([]domain.Block, bool) {
	if !l.CanUndo() {
		return nil, false
	}
	l.index--
	return l.Current(), true
}

// Redo moves the cursor forward one entry and returns it.
func (l *Log) Redo() ([]domain.Block, bool) {
	if !l.CanRedo() {
		return nil, false
	}
	l.index++
	return l.Current(), true
}

// Reset replaces the whole log with a single entry.
func (l *Log) Reset(blocks []domain.Block) {
	l.entries = [][]domain.Block{domain.CloneBlocks(blocks)}
	l.index = 0
}

// Current returns a copy of the entry under the cursor.
func (l *Log) Current() []domain.Block {
	return domain.CloneBlocks(l.entries[l.index])
}

func (l *Log) Index() int { return l.index }

func (l *Log) Len() int { return len(l.entries) }

func (l *Log) CanUndo() bool { return l.index > 0 }

func (l *Log) CanRedo() bool { return l.index < len(l.entries)-1 }

// Entries returns copies of every entry, oldest first.
func (l *Log) Entries() [][]domain.Block {
	out := make([][]domain.Block, len(l.entries))
	for i, e := range l.entries {
		out[i] = domain.CloneBlocks(e)
	}
	return out
}
