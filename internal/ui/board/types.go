package board

import (
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/view"
)

// Column represents a kanban column with tasks
type Column struct {
	Status domain.Status
	Title  string
	Tasks  []domain.Task
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Column index (0-2)
	Task   int // Task index within column
}

// FromProjection converts a board projection into renderable columns.
func FromProjection(p view.Projection) []Column {
	columns := make([]Column, 0, len(p.Buckets))
	for _, bucket := range p.Buckets {
		columns = append(columns, Column{
			Status: bucket.Status,
			Title:  bucket.Status.Label(),
			Tasks:  bucket.Tasks,
		})
	}
	return columns
}
