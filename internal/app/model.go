// Package app contains the TEA models wiring the stores to the UI.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/types"
	"github.com/taskdeck/taskdeck/internal/ui/board"
	"github.com/taskdeck/taskdeck/internal/ui/list"
	"github.com/taskdeck/taskdeck/internal/ui/overlay"
	"github.com/taskdeck/taskdeck/internal/ui/statusbar"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
	"github.com/taskdeck/taskdeck/internal/ui/toast"
	"github.com/taskdeck/taskdeck/internal/view"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastError   = types.ToastError
)

type tickMsg time.Time

// Model is the full widget: list and board views over one TaskStore.
type Model struct {
	// Core data
	store *store.TaskStore
	mover *store.Mover

	// Projection state
	mode       view.Mode
	cursor     board.Cursor
	listCursor int
	grabbed    string // id of the card being carried, "" when none

	// UI state
	overlay       overlay.Overlay
	pendingDelete string
	toasts        []Toast

	// Terminal size
	width  int
	height int

	styles        *styles.Styles
	toastRenderer *toast.Renderer
	logger        *slog.Logger
	now           func() time.Time
}

// New creates the full-widget model over an explicitly constructed store.
func New(s *store.TaskStore, mode view.Mode, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	st := styles.New()
	return Model{
		store:         s,
		mover:         store.NewMover(s),
		mode:          mode,
		styles:        st,
		toastRenderer: toast.New(st),
		logger:        logger,
		now:           time.Now,
	}
}

// Init starts the toast-expiry ticker.
func (m Model) Init() tea.Cmd {
	return tickEvery(time.Second)
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		m.pendingDelete = ""
		return m, nil

	case overlay.TaskSubmittedMsg:
		return m.handleTaskSubmit(msg)

	case overlay.ConfirmResultMsg:
		return m.handleDeleteConfirm(msg)

	case tea.KeyMsg:
		if m.overlay != nil {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleOverlayKey routes keyboard messages to the open overlay
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.overlay.Update(msg)
	if o, ok := updated.(overlay.Overlay); ok {
		m.overlay = o
	}
	return m, cmd
}

// handleKey processes keyboard input outside overlays
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "v":
		// Switching views only changes the projection, never the store
		if m.mode == view.ModeList {
			m.mode = view.ModeBoard
		} else {
			m.mode = view.ModeList
		}
		m.grabbed = ""
		return m, nil

	case "a":
		m.overlay = overlay.NewCreateForm()
		return m, m.overlay.Init()

	case "e":
		if task, ok := m.currentTask(); ok {
			m.overlay = overlay.NewEditForm(task)
			return m, m.overlay.Init()
		}
		return m, nil

	case "d":
		if task, ok := m.currentTask(); ok {
			m.pendingDelete = task.ID
			m.overlay = overlay.NewConfirmDialog("Delete Task",
				fmt.Sprintf("Delete %q? This cannot be undone.", task.Title))
			return m, m.overlay.Init()
		}
		return m, nil
	}

	if m.mode == view.ModeBoard {
		return m.handleBoardKey(msg)
	}
	return m.handleListKey(msg)
}

// handleListKey moves the list cursor.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.store.Len()
	switch msg.String() {
	case "j", "down":
		if m.listCursor < n-1 {
			m.listCursor++
		}
	case "k", "up":
		if m.listCursor > 0 {
			m.listCursor--
		}
	case "g":
		m.listCursor = 0
	case "G":
		if n > 0 {
			m.listCursor = n - 1
		}
	}
	return m, nil
}

// handleBoardKey handles navigation and card movement on the board. A
// grabbed card follows the cursor across columns, emulating drag and
// drop; each column change is a drop on that column.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.columns()

	switch msg.String() {
	case "j", "down":
		if m.cursor.Task < len(columns[m.cursor.Column].Tasks)-1 {
			m.cursor.Task++
		}
		return m, nil

	case "k", "up":
		if m.cursor.Task > 0 {
			m.cursor.Task--
		}
		return m, nil

	case "h", "left":
		return m.moveColumn(-1), nil

	case "l", "right":
		return m.moveColumn(1), nil

	case " ":
		// Grab or release the card under the cursor
		if m.grabbed != "" {
			m.grabbed = ""
			return m, nil
		}
		if task, ok := m.currentTask(); ok {
			m.grabbed = task.ID
		}
		return m, nil

	case "enter", "esc":
		m.grabbed = ""
		return m, nil

	case "H":
		return m.dropAdjacent(-1)

	case "L":
		return m.dropAdjacent(1)

	case "1", "2", "3":
		target := domain.Statuses()[int(msg.String()[0]-'1')]
		return m.drop(target)
	}

	return m, nil
}

// moveColumn shifts the cursor horizontally. When a card is grabbed it
// is dropped on each column the cursor lands on.
func (m Model) moveColumn(delta int) Model {
	next := m.cursor.Column + delta
	if next < 0 || next > 2 {
		return m
	}

	if m.grabbed != "" {
		target := domain.Statuses()[next]
		task, moved, err := m.mover.Drop(m.grabbed, target)
		if err != nil {
			m.grabbed = ""
			return m.withToast(ToastError, "Task no longer exists")
		}
		if moved {
			m.cursor.Column = next
			m.cursor.Task = m.indexInColumn(task.ID, next)
		}
		return m
	}

	m.cursor.Column = next
	m.clampCursor()
	return m
}

// dropAdjacent drops the card under the cursor on a neighboring column
// without grabbing it first.
func (m Model) dropAdjacent(delta int) (tea.Model, tea.Cmd) {
	next := m.cursor.Column + delta
	if next < 0 || next > 2 {
		return m, nil
	}
	return m.drop(domain.Statuses()[next])
}

// drop applies a status transition to the card under the cursor.
func (m Model) drop(target domain.Status) (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		return m, nil
	}

	moved, didMove, err := m.mover.Drop(task.ID, target)
	if err != nil {
		return m.withToast(ToastError, "Task no longer exists"), nil
	}
	if !didMove {
		// Dropping on the current column is a no-op
		return m, nil
	}

	m.cursor.Column = target.Column()
	m.cursor.Task = m.indexInColumn(moved.ID, m.cursor.Column)
	return m.withToast(ToastSuccess, fmt.Sprintf("Moved to %s", target.Label())), nil
}

// handleTaskSubmit applies the create/edit form. Validation errors keep
// the form open so the user can fix the input.
func (m Model) handleTaskSubmit(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	var err error
	if msg.ID == "" {
		_, err = m.store.Create(msg.Title, msg.Description, msg.Priority, msg.Status)
	} else {
		_, err = m.store.Update(msg.ID, msg.Title, msg.Description, msg.Priority, msg.Status)
	}

	if err != nil {
		if errors.Is(err, domain.ErrEmptyTitle) {
			return m.withToast(ToastError, "Please enter a task title"), nil
		}
		m.overlay = nil
		return m.withToast(ToastError, "Task no longer exists"), nil
	}

	m.overlay = nil
	m.clampCursor()
	return m.withToast(ToastSuccess, "Task saved"), nil
}

// handleDeleteConfirm resolves the delete confirmation dialog.
func (m Model) handleDeleteConfirm(msg overlay.ConfirmResultMsg) (tea.Model, tea.Cmd) {
	id := m.pendingDelete
	m.overlay = nil
	m.pendingDelete = ""
	if !msg.Confirmed || id == "" {
		return m, nil
	}

	if m.store.Delete(id) {
		m.clampCursor()
		return m.withToast(ToastSuccess, "Task deleted"), nil
	}
	return m, nil
}

// Helper methods

// columns returns the board projection as renderable columns.
func (m Model) columns() []board.Column {
	return board.FromProjection(view.Project(m.store.Tasks(), view.ModeBoard))
}

// currentTask returns the task under the cursor for the active mode.
func (m Model) currentTask() (domain.Task, bool) {
	if m.mode == view.ModeList {
		tasks := m.store.Tasks()
		if m.listCursor < 0 || m.listCursor >= len(tasks) {
			return domain.Task{}, false
		}
		return tasks[m.listCursor], true
	}

	columns := m.columns()
	col := columns[m.cursor.Column]
	if m.cursor.Task < 0 || m.cursor.Task >= len(col.Tasks) {
		return domain.Task{}, false
	}
	return col.Tasks[m.cursor.Task], true
}

// indexInColumn finds a task's row within a column, 0 if absent.
func (m Model) indexInColumn(id string, column int) int {
	for i, t := range m.columns()[column].Tasks {
		if t.ID == id {
			return i
		}
	}
	return 0
}

// clampCursor keeps both cursors within the current collection bounds.
func (m *Model) clampCursor() {
	n := m.store.Len()
	if m.listCursor >= n {
		m.listCursor = n - 1
	}
	if m.listCursor < 0 {
		m.listCursor = 0
	}

	columns := m.columns()
	tasks := len(columns[m.cursor.Column].Tasks)
	if m.cursor.Task >= tasks {
		m.cursor.Task = tasks - 1
	}
	if m.cursor.Task < 0 {
		m.cursor.Task = 0
	}
}

// withToast appends a notification with the default expiry.
func (m Model) withToast(level ToastLevel, message string) Model {
	m.toasts = append(m.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: m.now().Add(toast.DefaultTTL),
	})
	return m
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	contentHeight := m.height - 1

	var mainView string
	if m.mode == view.ModeBoard {
		mainView = board.Render(m.columns(), m.cursor, m.grabbed, m.styles, m.width, contentHeight-2)
	} else {
		projection := view.Project(m.store.Tasks(), view.ModeList)
		mainView = list.NewTaskList(projection.List, m.listCursor, m.width, m.styles).Render()
	}
	mainView = lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(mainView)

	sb := statusbar.New(m.modeBadge(), m.countsInfo(), m.hints(), m.width, m.styles)
	composed := lipgloss.JoinVertical(lipgloss.Left, mainView, sb.Render())

	if m.overlay != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.overlay.View())
	}

	if len(m.toasts) > 0 {
		toastView := m.toastRenderer.Render(m.toasts, m.width)
		composed = lipgloss.JoinVertical(lipgloss.Right, toastView, composed)
	}

	return composed
}

func (m Model) modeBadge() string {
	if m.mode == view.ModeBoard {
		return "BOARD"
	}
	return "LIST"
}

// countsInfo summarizes the per-column task counts.
func (m Model) countsInfo() string {
	counts := view.Counts(m.store.Tasks())
	return fmt.Sprintf("To Do %d │ In Progress %d │ Done %d", counts[0], counts[1], counts[2])
}

func (m Model) hints() string {
	if m.mode == view.ModeBoard {
		if m.grabbed != "" {
			return "h/l: drop on column  Space/Enter: release  Esc: cancel"
		}
		return "h/j/k/l: move  Space: grab  a: add  e: edit  d: delete  v: list  q: quit"
	}
	return "j/k: move  a: add  e: edit  d: delete  v: board  q: quit"
}
