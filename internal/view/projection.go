// Package view derives display-ready projections of a task collection.
// Projections are pure data; rendering them is someone else's job.
package view

import "github.com/taskdeck/taskdeck/internal/domain"

// Mode selects which projection subsequent renders use. Switching modes
// never touches the store.
type Mode int

const (
	ModeList Mode = iota
	ModeBoard
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeBoard:
		return "board"
	default:
		return "list"
	}
}

// Bucket is one board column: a status and the tasks sitting in it, in
// store insertion order.
type Bucket struct {
	Status domain.Status
	Tasks  []domain.Task
}

// Projection is the display-ready partition of the collection for one
// mode. List mode fills List and Empty; board mode fills Buckets.
type Projection struct {
	Mode    Mode
	List    []domain.Task
	Empty   bool
	Buckets []Bucket
}

// Project derives the projection for the given mode. Board mode always
// produces exactly three buckets in fixed order; a task whose status is
// not one of the three known values appears in no bucket.
func Project(tasks []domain.Task, mode Mode) Projection {
	if mode == ModeBoard {
		buckets := make([]Bucket, 0, 3)
		for _, status := range domain.Statuses() {
			buckets = append(buckets, Bucket{Status: status})
		}
		for _, task := range tasks {
			col := task.Status.Column()
			if col < 0 {
				continue
			}
			buckets[col].Tasks = append(buckets[col].Tasks, task)
		}
		return Projection{Mode: ModeBoard, Buckets: buckets}
	}

	return Projection{
		Mode:  ModeList,
		List:  tasks,
		Empty: len(tasks) == 0,
	}
}

// Counts returns the number of tasks per status bucket, keyed by column
// order. Used for the per-column counters in the board header.
func Counts(tasks []domain.Task) [3]int {
	var counts [3]int
	for _, task := range tasks {
		if col := task.Status.Column(); col >= 0 {
			counts[col]++
		}
	}
	return counts
}
