// Package transfer implements the JSON file import/export contract for
// the checklist widget.
package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Each imported element must be an object with a non-empty id, a
// non-empty title and a boolean completed flag. Anything else is
// silently dropped.
const elementSchema = `{
	"type": "object",
	"required": ["id", "title", "completed"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"title": {"type": "string", "minLength": 1},
		"completed": {"type": "boolean"}
	}
}`

var taskSchema = jsonschema.MustCompileString("simple-task.json", elementSchema)

// Import parses a JSON array of checklist tasks. Elements failing the
// schema are dropped; the count of dropped elements is returned. When no
// element survives filtering the whole import is rejected with
// ErrNoValidTasks and nothing should be replaced.
func Import(data []byte) ([]domain.SimpleTask, int, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, 0, fmt.Errorf("import payload is not a JSON array: %w", err)
	}

	var tasks []domain.SimpleTask
	dropped := 0
	for _, raw := range elements {
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			dropped++
			continue
		}
		if err := taskSchema.Validate(value); err != nil {
			dropped++
			continue
		}
		var task domain.SimpleTask
		if err := json.Unmarshal(raw, &task); err != nil {
			dropped++
			continue
		}
		tasks = append(tasks, task)
	}

	if len(tasks) == 0 {
		return nil, dropped, domain.ErrNoValidTasks
	}
	return tasks, dropped, nil
}

// Export renders the collection as pretty-printed JSON.
func Export(tasks []domain.SimpleTask) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.SimpleTask{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return data, nil
}

// Filename returns the export file name for the given day, e.g.
// "simple-tasks-2026-08-30.json".
func Filename(t time.Time) string {
	return "simple-tasks-" + t.Format("2006-01-02") + ".json"
}
