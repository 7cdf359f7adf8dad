// Package history keeps the linear undo/redo timeline of a session and the
// single persisted save slot.
package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type slotStore interface {
	Save(ctx context.Context, snapshot entity.Snapshot) error
	Load(ctx context.Context) (entity.Snapshot, error)
}

// Stack holds snapshots of past states (undoable, current on top) and of
// undone states (redoable). undoable is never empty.
type Stack struct {
	logger *slog.Logger
	store  slotStore

	undoable []entity.Snapshot
	redoable []entity.Snapshot

	limit int
}

type Option func(*Stack)

// WithLimit bounds the number of undoable entries. The oldest entries are
// dropped first. Values below 1 mean no bound.
func WithLimit(limit int) Option {
	return func(that *Stack) {
		that.limit = limit
	}
}

func New(logger *slog.Logger, store slotStore, initial entity.Snapshot, opts ...Option) *Stack {
	stack := &Stack{
		logger:   logger.With("component", "history"),
		store:    store,
		undoable: []entity.Snapshot{initial},
	}

	for _, opt := range opts {
		opt(stack)
	}

	return stack
}

// Push - records a new current state. Anything that was undone is discarded.
func (that *Stack) Push(snapshot entity.Snapshot) {
	that.undoable = append(that.undoable, snapshot)
	that.redoable = that.redoable[:0]

	if that.limit > 0 && len(that.undoable) > that.limit {
		dropped := len(that.undoable) - that.limit
		that.undoable = append(that.undoable[:0], that.undoable[dropped:]...)
		that.logger.Debug("history limit reached", "dropped", dropped)
	}
}

// Undo - moves the current state to the redo stack and returns the state before it.
// Returns false when only one state is left.
func (that *Stack) Undo() (entity.Snapshot, bool) {
	if len(that.undoable) <= 1 {
		return entity.Snapshot{}, false
	}

	last := len(that.undoable) - 1
	that.redoable = append(that.redoable, that.undoable[last])
	that.undoable = that.undoable[:last]

	return that.undoable[last-1], true
}

func (that *Stack) Redo() (entity.Snapshot, bool) {
	if len(that.redoable) == 0 {
		return entity.Snapshot{}, false
	}

	last := len(that.redoable) - 1
	next := that.redoable[last]
	that.redoable = that.redoable[:last]
	that.undoable = append(that.undoable, next)

	return next, true
}

// Current returns the top of the undo stack.
func (that *Stack) Current() entity.Snapshot {
	return that.undoable[len(that.undoable)-1]
}

func (that *Stack) Depth() (int, int) {
	return len(that.undoable), len(that.redoable)
}

// Save - overwrites the persisted slot with snapshot. It does not touch the stacks.
func (that *Stack) Save(ctx context.Context, snapshot entity.Snapshot) error {
	if err := that.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	that.logger.Debug("snapshot saved", "turn", snapshot.Turn, "active", snapshot.Active)

	return nil
}

// Load - reads the persisted slot. It does not touch the stacks.
func (that *Stack) Load(ctx context.Context) (entity.Snapshot, error) {
	snapshot, err := that.store.Load(ctx)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	that.logger.Debug("snapshot loaded", "turn", snapshot.Turn, "active", snapshot.Active)

	return snapshot, nil
}
