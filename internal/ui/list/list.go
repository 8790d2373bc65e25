// Package list renders the flat list views: the full widget's task list
// and the simple widget's checklist.
package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// EmptyMessage is the sentinel shown instead of an empty list.
const EmptyMessage = "No tasks found\nCreate your first task to get organized!"

// TaskList renders the full widget's flat list view.
type TaskList struct {
	tasks  []domain.Task
	cursor int
	styles *styles.Styles
	width  int
}

// NewTaskList creates a TaskList over the given tasks.
func NewTaskList(tasks []domain.Task, cursor, width int, s *styles.Styles) *TaskList {
	return &TaskList{tasks: tasks, cursor: cursor, styles: s, width: width}
}

// Render renders all rows, or the empty-state sentinel.
func (l *TaskList) Render() string {
	if len(l.tasks) == 0 {
		return l.styles.EmptyState.Width(l.width).Render(EmptyMessage)
	}

	var b strings.Builder
	for i, task := range l.tasks {
		b.WriteString(l.renderRow(i, task))
		if i < len(l.tasks)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderRow renders a single task row with priority and status badges.
func (l *TaskList) renderRow(index int, task domain.Task) string {
	rowStyle := l.styles.Row
	marker := "  "
	if index == l.cursor {
		rowStyle = l.styles.RowActive
		marker = "▶ "
	}

	priority := l.styles.PriorityBadge(task.Priority).Render(task.Priority.Label())
	status := l.styles.StatusBadge(task.Status).Render(task.Status.Label())

	title := task.Title
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		rowStyle.Render(marker+title),
		" ",
		priority,
		" ",
		status,
	)
	if task.Description != "" {
		line += "\n" + l.styles.CardDesc.Render("    "+task.Description)
	}
	return line
}

// Checklist renders the simple widget's checklist. When editIndex is
// non-negative, editView replaces that row's title (inline editing).
type Checklist struct {
	tasks     []domain.SimpleTask
	cursor    int
	editIndex int
	editView  string
	styles    *styles.Styles
	width     int
}

// NewChecklist creates a Checklist over the given tasks.
func NewChecklist(tasks []domain.SimpleTask, cursor, width int, s *styles.Styles) *Checklist {
	return &Checklist{tasks: tasks, cursor: cursor, editIndex: -1, styles: s, width: width}
}

// WithEdit marks a row as being edited inline.
func (c *Checklist) WithEdit(index int, view string) *Checklist {
	c.editIndex = index
	c.editView = view
	return c
}

// Render renders all rows, or the empty-state sentinel.
func (c *Checklist) Render() string {
	if len(c.tasks) == 0 {
		return c.styles.EmptyState.Width(c.width).Render(EmptyMessage)
	}

	var b strings.Builder
	for i, task := range c.tasks {
		b.WriteString(c.renderRow(i, task))
		if i < len(c.tasks)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (c *Checklist) renderRow(index int, task domain.SimpleTask) string {
	marker := "  "
	if index == c.cursor {
		marker = "▶ "
	}

	box := "[ ]"
	if task.Completed {
		box = "[x]"
	}

	if index == c.editIndex {
		return marker + box + " " + c.editView
	}

	titleStyle := c.styles.Row
	if task.Completed {
		titleStyle = c.styles.RowDone
	} else if index == c.cursor {
		titleStyle = c.styles.RowActive
	}
	return marker + box + " " + titleStyle.Render(task.Title)
}
