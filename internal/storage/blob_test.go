package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/logging"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	defaults := func() []domain.Task {
		return []domain.Task{{ID: "seed1", Title: "Seed"}}
	}

	blob := NewBlob(dir, NamespaceTasks, defaults, logging.Discard())
	tasks := blob.Load()

	require.Len(t, tasks, 1)
	assert.Equal(t, "seed1", tasks[0].ID)
}

func TestLoadMissingFileNilDefaults(t *testing.T) {
	blob := NewBlob[domain.SimpleTask](t.TempDir(), NamespaceSimple, nil, logging.Discard())
	assert.Empty(t, blob.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	blob := NewBlob[domain.Task](dir, NamespaceTasks, nil, logging.Discard())

	now := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	tasks := []domain.Task{
		{
			ID:          "t1",
			Title:       "First",
			Description: "with description",
			Priority:    domain.PriorityHigh,
			Status:      domain.StatusTodo,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:        "t2",
			Title:     "Second",
			Priority:  domain.PriorityLow,
			Status:    domain.StatusDone,
			CreatedAt: now,
			UpdatedAt: now.Add(time.Hour),
		},
	}

	blob.Save(tasks)
	loaded := blob.Load()

	require.Len(t, loaded, 2)
	assert.Equal(t, "t1", loaded[0].ID)
	assert.Equal(t, "First", loaded[0].Title)
	assert.Equal(t, domain.PriorityHigh, loaded[0].Priority)
	assert.Equal(t, "t2", loaded[1].ID)
	// Timestamps compare as instants, not string representations
	assert.True(t, loaded[0].CreatedAt.Equal(now))
	assert.True(t, loaded[1].UpdatedAt.Equal(now.Add(time.Hour)))

	// A second save/load cycle is observationally identical
	blob.Save(loaded)
	again := blob.Load()
	assert.Equal(t, loaded, again)
}

func TestLoadCorruptBlobFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, NamespaceTasks+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0644))

	defaults := func() []domain.Task {
		return []domain.Task{{ID: "seed1", Title: "Seed"}}
	}
	blob := NewBlob(dir, NamespaceTasks, defaults, logging.Discard())

	tasks := blob.Load()
	require.Len(t, tasks, 1)
	assert.Equal(t, "seed1", tasks[0].ID)
}

func TestSaveOverwritesWholeSlot(t *testing.T) {
	dir := t.TempDir()
	blob := NewBlob[domain.SimpleTask](dir, NamespaceSimple, nil, logging.Discard())

	blob.Save([]domain.SimpleTask{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}})
	blob.Save([]domain.SimpleTask{{ID: "c", Title: "C"}})

	loaded := blob.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, "c", loaded[0].ID)
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	blob := NewBlob[domain.SimpleTask](dir, NamespaceSimple, nil, logging.Discard())

	blob.Save([]domain.SimpleTask{{ID: "a", Title: "A"}})

	_, err := os.Stat(blob.Path())
	assert.NoError(t, err)
}

func TestNamespacesAreIndependent(t *testing.T) {
	dir := t.TempDir()
	full := NewBlob[domain.Task](dir, NamespaceTasks, nil, logging.Discard())
	simple := NewBlob[domain.SimpleTask](dir, NamespaceSimple, nil, logging.Discard())

	full.Save([]domain.Task{{ID: "f1", Title: "Full"}})
	simple.Save([]domain.SimpleTask{{ID: "s1", Title: "Simple"}})

	assert.Len(t, full.Load(), 1)
	assert.Len(t, simple.Load(), 1)
	assert.NotEqual(t, full.Path(), simple.Path())
}
