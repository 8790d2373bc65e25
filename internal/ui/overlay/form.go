package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// TaskSubmittedMsg is emitted when the form is submitted. An empty ID
// means create; otherwise it is an edit of that task. Title validation
// happens in the store, not here.
type TaskSubmittedMsg struct {
	ID          string
	Title       string
	Description string
	Priority    domain.Priority
	Status      domain.Status
}

// TaskForm is the create/edit modal for the full widget.
type TaskForm struct {
	id          string
	titleText   string
	title       textinput.Model
	description textarea.Model
	priority    domain.Priority
	status      domain.Status
	focusIndex  int
	styles      *Styles
}

const (
	focusTitle = iota
	focusDescription
	focusPriority
	focusStatus
	focusSubmit
	formFieldCount
)

var priorityOrder = []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}

func newForm() *TaskForm {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Task description (optional)..."
	ta.CharLimit = 2000
	ta.SetWidth(50)
	ta.SetHeight(4)

	return &TaskForm{
		title:       ti,
		description: ta,
		priority:    domain.PriorityMedium,
		status:      domain.StatusTodo,
		focusIndex:  focusTitle,
		styles:      New(),
	}
}

// NewCreateForm creates an empty form with default priority and status.
func NewCreateForm() *TaskForm {
	f := newForm()
	f.titleText = "New Task"
	return f
}

// NewEditForm creates a form pre-filled from an existing task.
func NewEditForm(task domain.Task) *TaskForm {
	f := newForm()
	f.titleText = "Edit Task"
	f.id = task.ID
	f.title.SetValue(task.Title)
	f.description.SetValue(task.Description)
	f.priority = task.Priority
	f.status = task.Status
	return f
}

// Title returns the overlay title.
func (f *TaskForm) Title() string {
	return f.titleText
}

// Init initializes the overlay
func (f *TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return f, f.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				f.focusIndex = (f.focusIndex + 1) % formFieldCount
			} else {
				f.focusIndex = (f.focusIndex - 1 + formFieldCount) % formFieldCount
			}
			f.title.Blur()
			f.description.Blur()
			switch f.focusIndex {
			case focusTitle:
				f.title.Focus()
			case focusDescription:
				f.description.Focus()
			}
			return f, nil

		case "enter":
			if f.focusIndex == focusSubmit {
				return f, f.submit()
			}
			if f.focusIndex != focusDescription {
				return f, nil
			}
			// Let the textarea take the newline

		case "left", "right":
			switch f.focusIndex {
			case focusPriority:
				f.priority = cycle(priorityOrder, f.priority, msg.String() == "right")
				return f, nil
			case focusStatus:
				f.status = cycle(domain.Statuses(), f.status, msg.String() == "right")
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd
}

func (f *TaskForm) submit() tea.Cmd {
	return func() tea.Msg {
		return TaskSubmittedMsg{
			ID:          f.id,
			Title:       f.title.Value(),
			Description: strings.TrimSpace(f.description.Value()),
			Priority:    f.priority,
			Status:      f.status,
		}
	}
}

// cycle moves forward or backward through an ordered choice list.
func cycle[T comparable](order []T, current T, forward bool) T {
	for i, v := range order {
		if v != current {
			continue
		}
		if forward {
			return order[(i+1)%len(order)]
		}
		return order[(i-1+len(order))%len(order)]
	}
	return order[0]
}

// View renders the form
func (f *TaskForm) View() string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render(f.titleText))
	b.WriteString("\n")

	b.WriteString(f.styles.Label.Render("Title:"))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\n")

	b.WriteString(f.styles.Label.Render("Description:"))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n\n")

	b.WriteString(f.styles.Label.Render("Priority: "))
	b.WriteString(f.renderPriorityChoices())
	b.WriteString("\n")

	b.WriteString(f.styles.Label.Render("Status:   "))
	b.WriteString(f.renderStatusChoices())
	b.WriteString("\n\n")

	submitStyle := f.styles.Button
	if f.focusIndex == focusSubmit {
		submitStyle = f.styles.ButtonActive
	}
	b.WriteString(submitStyle.Render("Save Task"))
	b.WriteString("\n")
	b.WriteString(f.styles.Label.Render("Tab: next field  ←/→: choose  Ctrl+S: save  Esc: cancel"))

	return f.styles.Overlay.Render(b.String())
}

func (f *TaskForm) renderPriorityChoices() string {
	var choices []string
	for _, p := range priorityOrder {
		style := f.styles.Choice
		if p == f.priority {
			style = f.styles.ChoiceActive
		}
		choices = append(choices, style.Render(p.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, choices...)
}

func (f *TaskForm) renderStatusChoices() string {
	var choices []string
	for _, s := range domain.Statuses() {
		style := f.styles.Choice
		if s == f.status {
			style = f.styles.ChoiceActive
		}
		choices = append(choices, style.Render(s.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, choices...)
}
