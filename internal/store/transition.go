package store

import "github.com/taskdeck/taskdeck/internal/domain"

// Mover applies board status transitions: a card dropped on a column.
// Any status may move to any other status; the only guard is that
// dropping a card on its own column is a complete no-op.
type Mover struct {
	store *TaskStore
}

// NewMover creates a Mover over the given store.
func NewMover(s *TaskStore) *Mover {
	return &Mover{store: s}
}

// Drop moves the task to the target bucket. When the task already sits
// in the target bucket nothing happens: no timestamp refresh, no save.
// The returned bool reports whether a genuine move occurred.
func (m *Mover) Drop(id string, target domain.Status) (domain.Task, bool, error) {
	task, ok := m.store.FindByID(id)
	if !ok {
		return domain.Task{}, false, &domain.StoreError{Op: "move", TaskID: id, Err: domain.ErrNotFound}
	}
	if task.Status == target {
		return task, false, nil
	}

	moved, err := m.store.SetStatus(id, target)
	if err != nil {
		return domain.Task{}, false, err
	}
	return moved, true, nil
}
