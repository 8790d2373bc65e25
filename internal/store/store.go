package store

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// TaskStore owns the full-featured task collection. Construct one per
// persistence namespace; there are no package-level instances.
type TaskStore struct {
	collection[domain.Task]
	logger *slog.Logger

	// Injectable for tests
	now   func() time.Time
	newID func() string
}

// New creates a TaskStore backed by the given persister, loading the
// current collection synchronously.
func New(p Persister[domain.Task], logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		collection: newCollection(p),
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Create validates the title, appends a new task at the end of the
// collection and saves. Priority and status default to medium/todo when
// empty.
func (s *TaskStore) Create(title, description string, priority domain.Priority, status domain.Status) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, &domain.StoreError{Op: "create", Err: domain.ErrEmptyTitle}
	}
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if status == "" {
		status = domain.StatusTodo
	}

	now := s.now()
	task := domain.Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.add(task)
	s.logger.Debug("task created", "id", task.ID, "status", task.Status)
	return task, nil
}

// Update overwrites all mutable fields of the task with the given id and
// refreshes its updated timestamp. An unknown id reports ErrNotFound and
// performs no mutation and no save.
func (s *TaskStore) Update(id, title, description string, priority domain.Priority, status domain.Status) (domain.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, &domain.StoreError{Op: "update", TaskID: id, Err: domain.ErrNotFound}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, &domain.StoreError{Op: "update", TaskID: id, Err: domain.ErrEmptyTitle}
	}

	task := &s.items[i]
	task.Title = title
	task.Description = description
	task.Priority = priority
	task.Status = status
	task.UpdatedAt = s.now()
	s.save()
	s.logger.Debug("task updated", "id", id)
	return *task, nil
}

// SetStatus moves the task to the given status and refreshes its updated
// timestamp. Callers wanting the drag-and-drop no-op guard should go
// through Mover instead.
func (s *TaskStore) SetStatus(id string, status domain.Status) (domain.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, &domain.StoreError{Op: "move", TaskID: id, Err: domain.ErrNotFound}
	}

	task := &s.items[i]
	task.Status = status
	task.UpdatedAt = s.now()
	s.save()
	s.logger.Debug("task moved", "id", id, "status", status)
	return *task, nil
}

// Delete removes the task with the given id and reports whether a
// removal occurred. Deleting an absent id does not trigger a save.
func (s *TaskStore) Delete(id string) bool {
	removed := s.remove(id)
	if removed {
		s.logger.Debug("task deleted", "id", id)
	}
	return removed
}

// Tasks returns a copy of the full collection in insertion order.
func (s *TaskStore) Tasks() []domain.Task {
	return s.all()
}

// Query returns the tasks matching pred, preserving insertion order.
func (s *TaskStore) Query(pred func(domain.Task) bool) []domain.Task {
	return s.filter(pred)
}

// ByStatus returns the tasks in the given board bucket.
func (s *TaskStore) ByStatus(status domain.Status) []domain.Task {
	return s.filter(func(t domain.Task) bool { return t.Status == status })
}

// FindByID looks up a task by id.
func (s *TaskStore) FindByID(id string) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.items[i], true
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.items)
}
