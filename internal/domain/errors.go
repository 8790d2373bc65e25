package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound       = errors.New("task not found")
	ErrEmptyTitle     = errors.New("title must not be empty")
	ErrDuplicateTitle = errors.New("a task with this title already exists")
	ErrNoValidTasks   = errors.New("no valid tasks found")
)

// StoreError wraps a store operation failure with context.
type StoreError struct {
	Op     string // Operation: "create", "update", "delete", "move", etc.
	TaskID string // Optional: specific task ID
	Err    error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.TaskID != "" {
		return fmt.Sprintf("store %s [%s]: %v", e.Op, e.TaskID, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
