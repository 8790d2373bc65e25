package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// renderColumn renders a kanban column with header and task cards
func renderColumn(
	col Column,
	cursorTask int,
	isActive bool,
	grabbedID string,
	width int,
	height int,
	s *styles.Styles,
) string {
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}

	// Header with title and count (e.g., "─ To Do (3) ─────")
	headerText := fmt.Sprintf("─ %s (%d) ", col.Title, len(col.Tasks))
	remainingWidth := width - len(headerText) - 2
	if remainingWidth > 0 {
		headerText += strings.Repeat("─", remainingWidth)
	}
	header := headerStyle.Render(headerText)

	var cardStrings []string
	cardWidth := width - 4 // Account for column border and padding
	for i, task := range col.Tasks {
		isCursor := isActive && i == cursorTask
		isGrabbed := grabbedID != "" && task.ID == grabbedID
		cardStrings = append(cardStrings, renderCard(task, isCursor, isGrabbed, cardWidth, s))
	}

	content := ""
	if len(cardStrings) > 0 {
		content = strings.Join(cardStrings, "\n")
	}

	columnStyle := s.Column.Width(width).Height(height)
	columnContent := columnStyle.Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, columnContent)
}
