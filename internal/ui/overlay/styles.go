package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// Label is the style for field labels
	Label lipgloss.Style
	// Choice is the style for an unselected enum choice
	Choice lipgloss.Style
	// ChoiceActive is the style for the selected enum choice
	ChoiceActive lipgloss.Style
	// Button is the default button style
	Button lipgloss.Style
	// ButtonActive is the focused button style
	ButtonActive lipgloss.Style
	// Message is the style for dialog body text
	Message lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Blue).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		Choice: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			Padding(0, 1),

		ChoiceActive: lipgloss.NewStyle().
			Foreground(styles.Mantle).
			Background(styles.Blue).
			Bold(true).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			Padding(0, 2),

		ButtonActive: lipgloss.NewStyle().
			Foreground(styles.Mantle).
			Background(styles.Blue).
			Bold(true).
			Padding(0, 2),

		Message: lipgloss.NewStyle().
			Foreground(styles.Text),
	}
}
