// Package statusbar renders the bar at the bottom of the TUI.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   string // view mode badge, e.g. "LIST" or "BOARD"
	info   string // contextual info, e.g. per-column counts or stats
	hints  string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar
func New(mode, info, hints string, width int, styles *styles.Styles) StatusBar {
	return StatusBar{mode: mode, info: info, hints: hints, width: width, styles: styles}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode + " ")

	parts := []string{modeBadge}
	separator := sb.styles.StatusHint.Render(" │ ")
	if sb.info != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(sb.info))
	}
	if sb.hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(sb.hints))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
