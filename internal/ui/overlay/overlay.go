// Package overlay contains the modal dialogs: the task form and the
// confirmation prompt.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}
