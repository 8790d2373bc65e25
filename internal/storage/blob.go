// Package storage persists a task collection as a single JSON blob per
// namespace, one file under the data directory.
package storage

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// Fixed namespaces for the two widgets. They are independent slots and
// are never merged.
const (
	NamespaceTasks  = "tasks"
	NamespaceSimple = "simple-tasks"
)

// Blob is a single named storage slot holding a JSON array of T. A load
// that fails for any reason falls back to the defaults: a corrupt local
// blob must never take the app down.
type Blob[T any] struct {
	path     string
	defaults func() []T
	logger   *slog.Logger
}

// NewBlob creates a blob slot at <dir>/<namespace>.json. defaults may be
// nil, in which case the fallback collection is empty.
func NewBlob[T any](dir, namespace string, defaults func() []T, logger *slog.Logger) *Blob[T] {
	if defaults == nil {
		defaults = func() []T { return nil }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Blob[T]{
		path:     filepath.Join(dir, namespace+".json"),
		defaults: defaults,
		logger:   logger,
	}
}

// Path returns the backing file path.
func (b *Blob[T]) Path() string {
	return b.path
}

// Load reads the slot. Missing file or malformed content yields the
// default collection; errors are logged, never returned.
func (b *Blob[T]) Load() []T {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if !os.IsNotExist(err) {
			b.logger.Error("failed to read task blob", "path", b.path, "error", err)
		}
		return b.defaults()
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		b.logger.Error("failed to decode task blob, falling back to defaults", "path", b.path, "error", err)
		return b.defaults()
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Save overwrites the whole slot with the given collection. Failures are
// logged and swallowed; the in-memory store remains authoritative for the
// rest of the session.
func (b *Blob[T]) Save(items []T) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		b.logger.Error("failed to encode task blob", "path", b.path, "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		b.logger.Error("failed to create data directory", "path", b.path, "error", err)
		return
	}
	if err := os.WriteFile(b.path, data, 0644); err != nil {
		b.logger.Error("failed to write task blob", "path", b.path, "error", err)
	}
}
