package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, isCursor bool, isGrabbed bool, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isGrabbed {
		cardStyle = s.CardGrabbed
	} else if isCursor {
		cardStyle = s.CardActive
	}
	cardStyle = cardStyle.Width(width)

	maxTitleLen := width - 4
	title := task.Title
	if maxTitleLen > 1 && len(title) > maxTitleLen {
		title = title[:maxTitleLen-1] + "…"
	}

	cursor := ""
	if isCursor {
		cursor = "▶"
	}
	titleLine := s.CardTitle.Render(cursor + title)

	lines := []string{titleLine}
	if task.Description != "" {
		desc := task.Description
		if maxTitleLen > 1 && len(desc) > maxTitleLen {
			desc = desc[:maxTitleLen-1] + "…"
		}
		lines = append(lines, s.CardDesc.Render(desc))
	}
	lines = append(lines, s.PriorityBadge(task.Priority).Render(task.Priority.Label()))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(content)
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, isGrabbed bool, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, isGrabbed, width, s)
}
