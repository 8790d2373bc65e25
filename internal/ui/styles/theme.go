package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Overlay0 = lipgloss.Color("#6e738d")
	Subtext0 = lipgloss.Color("#a5adcb")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Red    = lipgloss.Color("#ed8796")
	Peach  = lipgloss.Color("#f5a97f")
	Yellow = lipgloss.Color("#eed49f")
	Green  = lipgloss.Color("#a6da95")
	Blue   = lipgloss.Color("#8aadf4")
	Mauve  = lipgloss.Color("#c6a0f6")
)

// PriorityColors maps priorities to badge colors
var PriorityColors = map[domain.Priority]lipgloss.Color{
	domain.PriorityLow:    Green,
	domain.PriorityMedium: Yellow,
	domain.PriorityHigh:   Red,
}

// StatusColors maps statuses to badge and column colors
var StatusColors = map[domain.Status]lipgloss.Color{
	domain.StatusTodo:       Blue,
	domain.StatusInProgress: Yellow,
	domain.StatusDone:       Green,
}
