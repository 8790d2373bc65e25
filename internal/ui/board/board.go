// Package board renders the three-column kanban view.
package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// Render renders the entire kanban board. grabbedID marks the card
// currently being carried between columns, empty when none.
func Render(
	columns []Column,
	cursor Cursor,
	grabbedID string,
	s *styles.Styles,
	width int,
	height int,
) string {
	if len(columns) == 0 {
		return ""
	}

	columnWidth := width / len(columns)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := -1
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(col, cursorTask, isActive, grabbedID, columnWidth, height, s)

		sized := lipgloss.NewStyle().Width(columnWidth).Height(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
