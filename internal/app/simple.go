package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/ui/list"
	"github.com/taskdeck/taskdeck/internal/ui/overlay"
	"github.com/taskdeck/taskdeck/internal/ui/statusbar"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
	"github.com/taskdeck/taskdeck/internal/ui/toast"
)

// SimpleModel is the checklist widget: an input line over a flat list
// of completable tasks.
type SimpleModel struct {
	store *store.SimpleStore

	input      textinput.Model
	inputFocus bool
	cursor     int

	editing   int // row being edited inline, -1 when none
	editInput textinput.Model

	overlay overlay.Overlay
	toasts  []Toast

	width  int
	height int

	styles        *styles.Styles
	toastRenderer *toast.Renderer
	logger        *slog.Logger
	now           func() time.Time
}

// NewSimple creates the checklist model over an explicitly constructed
// store.
func NewSimple(s *store.SimpleStore, logger *slog.Logger) SimpleModel {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	st := styles.New()
	return SimpleModel{
		store:         s,
		input:         ti,
		inputFocus:    true,
		editing:       -1,
		styles:        st,
		toastRenderer: toast.New(st),
		logger:        logger,
		now:           time.Now,
	}
}

// Init starts the toast-expiry ticker and the input cursor blink.
func (m SimpleModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickEvery(time.Second))
}

// Update handles messages
func (m SimpleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.toasts = toast.Prune(m.toasts, time.Time(msg))
		return m, tickEvery(time.Second)

	case overlay.CloseOverlayMsg:
		m.overlay = nil
		return m, nil

	case overlay.ConfirmResultMsg:
		m.overlay = nil
		if msg.Confirmed {
			removed := m.store.ClearCompleted()
			m.cursor = 0
			return m.withToast(ToastSuccess, fmt.Sprintf("%d completed tasks removed", removed)), nil
		}
		return m, nil

	case tea.KeyMsg:
		if m.overlay != nil {
			updated, cmd := m.overlay.Update(msg)
			if o, ok := updated.(overlay.Overlay); ok {
				m.overlay = o
			}
			return m, cmd
		}
		if m.editing >= 0 {
			return m.handleEditKey(msg)
		}
		if m.inputFocus {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)
	}

	return m, nil
}

// handleInputKey runs while the add-task input has focus.
func (m SimpleModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		return m.addTask()

	case "esc", "tab", "down":
		if m.store.Len() > 0 {
			m.inputFocus = false
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleListKey runs while the list has focus.
func (m SimpleModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "i", "a", "tab":
		m.inputFocus = true
		return m, m.input.Focus()

	case "j", "down":
		if m.cursor < m.store.Len()-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			return m, nil
		}
		m.inputFocus = true
		return m, m.input.Focus()

	case " ", "x":
		if task, ok := m.taskAtCursor(); ok {
			if _, err := m.store.Toggle(task.ID); err != nil {
				return m.withToast(ToastError, "Task no longer exists"), nil
			}
		}
		return m, nil

	case "e":
		if task, ok := m.taskAtCursor(); ok {
			ti := textinput.New()
			ti.SetValue(task.Title)
			ti.CharLimit = 200
			ti.Width = 40
			ti.Focus()
			m.editInput = ti
			m.editing = m.cursor
			return m, textinput.Blink
		}
		return m, nil

	case "d":
		if task, ok := m.taskAtCursor(); ok {
			m.store.Delete(task.ID)
			m.clampCursor()
			return m.withToast(ToastInfo, "Task deleted"), nil
		}
		return m, nil

	case "c":
		if m.store.Stats().Completed == 0 {
			return m.withToast(ToastInfo, "No completed tasks to clear"), nil
		}
		m.overlay = overlay.NewConfirmDialog("Clear Completed",
			"Delete all completed tasks?")
		return m, m.overlay.Init()
	}

	return m, nil
}

// handleEditKey runs while a row is being edited inline.
func (m SimpleModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		task, ok := m.taskAtIndex(m.editing)
		m.editing = -1
		if !ok {
			return m, nil
		}
		title := m.editInput.Value()
		if title == task.Title {
			return m, nil
		}
		if _, err := m.store.Rename(task.ID, title); err != nil {
			if errors.Is(err, domain.ErrEmptyTitle) {
				return m.withToast(ToastError, "Please enter a task title"), nil
			}
			return m.withToast(ToastError, "Task no longer exists"), nil
		}
		return m.withToast(ToastSuccess, "Task updated"), nil

	case "esc":
		m.editing = -1
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// addTask creates a task from the input line.
func (m SimpleModel) addTask() (tea.Model, tea.Cmd) {
	_, err := m.store.Add(m.input.Value())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyTitle):
			return m.withToast(ToastError, "Please enter a task"), nil
		case errors.Is(err, domain.ErrDuplicateTitle):
			return m.withToast(ToastError, "This task already exists"), nil
		}
		return m.withToast(ToastError, "Could not add task"), nil
	}

	m.input.SetValue("")
	return m.withToast(ToastSuccess, "Task added"), nil
}

// taskAtCursor returns the task under the cursor.
func (m SimpleModel) taskAtCursor() (domain.SimpleTask, bool) {
	return m.taskAtIndex(m.cursor)
}

func (m SimpleModel) taskAtIndex(i int) (domain.SimpleTask, bool) {
	tasks := m.store.Tasks()
	if i < 0 || i >= len(tasks) {
		return domain.SimpleTask{}, false
	}
	return tasks[i], true
}

func (m *SimpleModel) clampCursor() {
	if n := m.store.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m SimpleModel) withToast(level ToastLevel, message string) SimpleModel {
	m.toasts = append(m.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: m.now().Add(toast.DefaultTTL),
	})
	return m
}

// View renders the UI
func (m SimpleModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.styles.ListHeading.Render("Quick List")
	inputView := m.input.View()

	cursor := m.cursor
	if m.inputFocus {
		cursor = -1
	}
	checklist := list.NewChecklist(m.store.Tasks(), cursor, m.width, m.styles)
	if m.editing >= 0 {
		checklist = checklist.WithEdit(m.editing, m.editInput.View())
	}

	contentHeight := m.height - 1
	content := lipgloss.JoinVertical(lipgloss.Left, header, inputView, "", checklist.Render())
	content = lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(content)

	stats := m.store.Stats()
	info := fmt.Sprintf("%d total │ %d done │ %d pending │ %d%%",
		stats.Total, stats.Completed, stats.Pending, stats.CompletionRate)
	sb := statusbar.New("SIMPLE", info, m.simpleHints(), m.width, m.styles)
	composed := lipgloss.JoinVertical(lipgloss.Left, content, sb.Render())

	if m.overlay != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.overlay.View())
	}

	if len(m.toasts) > 0 {
		toastView := m.toastRenderer.Render(m.toasts, m.width)
		composed = lipgloss.JoinVertical(lipgloss.Right, toastView, composed)
	}

	return composed
}

func (m SimpleModel) simpleHints() string {
	if m.inputFocus {
		return "Enter: add  Tab: list  Ctrl+C: quit"
	}
	return "Space: toggle  e: edit  d: delete  c: clear done  Tab: input  q: quit"
}
