// Package styles defines the lipgloss styles shared by the UI packages.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Board
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style

	// Cards
	Card        lipgloss.Style
	CardActive  lipgloss.Style
	CardGrabbed lipgloss.Style
	CardTitle   lipgloss.Style
	CardDesc    lipgloss.Style

	// List rows
	Row         lipgloss.Style
	RowActive   lipgloss.Style
	RowDone     lipgloss.Style
	EmptyState  lipgloss.Style
	ListHeading lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	FieldLabel   lipgloss.Style
	Choice       lipgloss.Style
	ChoiceActive lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Padding(0, 1).
			MarginBottom(1),

		CardGrabbed: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(Mauve).
			Padding(0, 1).
			MarginBottom(1),

		CardTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		CardDesc: lipgloss.NewStyle().
			Foreground(Overlay0),

		Row: lipgloss.NewStyle().
			Foreground(Text),

		RowActive: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0).
			Bold(true),

		RowDone: lipgloss.NewStyle().
			Foreground(Overlay0).
			Strikethrough(true),

		EmptyState: lipgloss.NewStyle().
			Foreground(Subtext0).
			Padding(2, 4).
			Align(lipgloss.Center),

		ListHeading: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(Mantle).
			Foreground(Subtext0),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Mantle).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		Choice: lipgloss.NewStyle().
			Foreground(Subtext0).
			Padding(0, 1),

		ChoiceActive: lipgloss.NewStyle().
			Foreground(Mantle).
			Background(Blue).
			Bold(true).
			Padding(0, 1),

		ToastInfo: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Mantle).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			Background(Green).
			Foreground(Mantle).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			Background(Red).
			Foreground(Mantle).
			Padding(0, 1),
	}
}

// PriorityBadge returns the badge style for a priority
func (s *Styles) PriorityBadge(p domain.Priority) lipgloss.Style {
	color, ok := PriorityColors[p]
	if !ok {
		color = Yellow
	}
	return lipgloss.NewStyle().Foreground(Mantle).Background(color).Padding(0, 1)
}

// StatusBadge returns the badge style for a status
func (s *Styles) StatusBadge(st domain.Status) lipgloss.Style {
	color, ok := StatusColors[st]
	if !ok {
		color = Overlay0
	}
	return lipgloss.NewStyle().Foreground(Mantle).Background(color).Padding(0, 1)
}
