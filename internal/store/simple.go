package store

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// SimpleStore owns the checklist-variant collection: title plus a
// completion flag, no priority or status.
type SimpleStore struct {
	collection[domain.SimpleTask]
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

// Stats summarizes the checklist.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int // percentage, 0 when the list is empty
}

// NewSimple creates a SimpleStore backed by the given persister.
func NewSimple(p Persister[domain.SimpleTask], logger *slog.Logger) *SimpleStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimpleStore{
		collection: newCollection(p),
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Add appends a new uncompleted task. The title is trimmed and must be
// non-empty and unique (case-insensitive) within the collection.
func (s *SimpleStore) Add(title string) (domain.SimpleTask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.SimpleTask{}, &domain.StoreError{Op: "add", Err: domain.ErrEmptyTitle}
	}
	for _, t := range s.items {
		if strings.EqualFold(t.Title, title) {
			return domain.SimpleTask{}, &domain.StoreError{Op: "add", Err: domain.ErrDuplicateTitle}
		}
	}

	task := domain.SimpleTask{
		ID:        s.newID(),
		Title:     title,
		Completed: false,
		CreatedAt: s.now(),
	}
	s.add(task)
	s.logger.Debug("simple task added", "id", task.ID)
	return task, nil
}

// Toggle flips the completion flag of the task with the given id.
func (s *SimpleStore) Toggle(id string) (domain.SimpleTask, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.SimpleTask{}, &domain.StoreError{Op: "toggle", TaskID: id, Err: domain.ErrNotFound}
	}
	s.items[i].Completed = !s.items[i].Completed
	s.save()
	return s.items[i], nil
}

// Rename changes the title of the task with the given id. The new title
// is trimmed and must be non-empty.
func (s *SimpleStore) Rename(id, title string) (domain.SimpleTask, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.SimpleTask{}, &domain.StoreError{Op: "rename", TaskID: id, Err: domain.ErrNotFound}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.SimpleTask{}, &domain.StoreError{Op: "rename", TaskID: id, Err: domain.ErrEmptyTitle}
	}
	s.items[i].Title = title
	s.save()
	return s.items[i], nil
}

// Delete removes the task with the given id and reports whether a
// removal occurred. Deleting an absent id does not trigger a save.
func (s *SimpleStore) Delete(id string) bool {
	return s.remove(id)
}

// ClearCompleted removes every completed task and returns how many were
// removed. An already-clean list is a no-op with no save.
func (s *SimpleStore) ClearCompleted() int {
	remaining := s.items[:0:0]
	removed := 0
	for _, t := range s.items {
		if t.Completed {
			removed++
			continue
		}
		remaining = append(remaining, t)
	}
	if removed == 0 {
		return 0
	}
	s.items = remaining
	s.save()
	s.logger.Debug("completed tasks cleared", "count", removed)
	return removed
}

// Replace swaps in a whole new collection, used by file import. The
// existing collection is overwritten, never merged.
func (s *SimpleStore) Replace(tasks []domain.SimpleTask) {
	s.replace(tasks)
	s.logger.Debug("collection replaced", "count", len(tasks))
}

// Tasks returns a copy of the collection in insertion order.
func (s *SimpleStore) Tasks() []domain.SimpleTask {
	return s.all()
}

// FindByID looks up a task by id.
func (s *SimpleStore) FindByID(id string) (domain.SimpleTask, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.SimpleTask{}, false
	}
	return s.items[i], true
}

// Stats returns the checklist summary.
func (s *SimpleStore) Stats() Stats {
	st := Stats{Total: len(s.items)}
	for _, t := range s.items {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	if st.Total > 0 {
		st.CompletionRate = int(float64(st.Completed)/float64(st.Total)*100 + 0.5)
	}
	return st
}

// Len returns the number of tasks.
func (s *SimpleStore) Len() int {
	return len(s.items)
}
