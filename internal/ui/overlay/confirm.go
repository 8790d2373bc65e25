package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmDialog is a confirmation dialog overlay with Yes/No options
type ConfirmDialog struct {
	title    string
	message  string
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmResultMsg carries the outcome of a confirmation dialog.
type ConfirmResultMsg struct {
	Confirmed bool
}

// NewConfirmDialog creates a new confirmation dialog with the given title and message
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		title:    title,
		message:  message,
		styles:   New(),
		selected: false, // Default to No
	}
}

// Title returns the overlay title.
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			return c, func() tea.Msg { return ConfirmResultMsg{Confirmed: true} }

		case "n", "N", "esc":
			return c, func() tea.Msg { return ConfirmResultMsg{Confirmed: false} }

		case "enter":
			selected := c.selected
			return c, func() tea.Msg { return ConfirmResultMsg{Confirmed: selected} }

		case "left", "h":
			c.selected = false
			return c, nil

		case "right", "l", "tab":
			c.selected = true
			return c, nil
		}
	}

	return c, nil
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	b.WriteString(c.styles.Title.Render(c.title))
	b.WriteString("\n")

	if c.message != "" {
		b.WriteString(c.styles.Message.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle := c.styles.Button
	noStyle := c.styles.ButtonActive
	if c.selected {
		yesStyle = c.styles.ButtonActive
		noStyle = c.styles.Button
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Left,
		noStyle.Render("No"),
		"  ",
		yesStyle.Render("Yes"),
	)
	b.WriteString(buttons)
	b.WriteString("\n")
	b.WriteString(c.styles.Label.Render("y/n or ←/→ + Enter"))

	return c.styles.Overlay.Render(b.String())
}
