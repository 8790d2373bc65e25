package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestDropMovesTask(t *testing.T) {
	s, p := newTestStore()
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created }
	task, err := s.Create("Task", "", domain.PriorityMedium, domain.StatusTodo)
	require.NoError(t, err)

	later := created.Add(time.Minute)
	s.now = func() time.Time { return later }
	before := p.saveCount()

	mover := NewMover(s)
	moved, didMove, err := mover.Drop(task.ID, domain.StatusDone)
	require.NoError(t, err)

	assert.True(t, didMove)
	assert.Equal(t, domain.StatusDone, moved.Status)
	assert.True(t, moved.UpdatedAt.After(task.UpdatedAt))
	assert.Equal(t, before+1, p.saveCount())

	// Persisted blob reflects the new status
	saved := p.lastSaved()
	require.Len(t, saved, 1)
	assert.Equal(t, domain.StatusDone, saved[0].Status)
}

func TestDropSameBucketIsNoOp(t *testing.T) {
	s, p := newTestStore()
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created }
	task, err := s.Create("Task", "", domain.PriorityMedium, domain.StatusDone)
	require.NoError(t, err)

	s.now = func() time.Time { return created.Add(time.Hour) }
	before := p.saveCount()

	mover := NewMover(s)
	got, didMove, err := mover.Drop(task.ID, domain.StatusDone)
	require.NoError(t, err)

	assert.False(t, didMove)
	assert.Equal(t, task.UpdatedAt, got.UpdatedAt, "no-op drop must not refresh the timestamp")
	assert.Equal(t, before, p.saveCount(), "no-op drop must not trigger a save")
}

func TestDropAnyStatusToAnyStatus(t *testing.T) {
	statuses := domain.Statuses()
	for _, from := range statuses {
		for _, to := range statuses {
			if from == to {
				continue
			}
			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				s, _ := newTestStore()
				task, err := s.Create("Task", "", domain.PriorityMedium, from)
				require.NoError(t, err)

				moved, didMove, err := NewMover(s).Drop(task.ID, to)
				require.NoError(t, err)
				assert.True(t, didMove)
				assert.Equal(t, to, moved.Status)
			})
		}
	}
}

func TestDropUnknownTask(t *testing.T) {
	s, p := newTestStore()
	before := p.saveCount()

	_, _, err := NewMover(s).Drop("nonexistent-id", domain.StatusDone)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before, p.saveCount())
}
