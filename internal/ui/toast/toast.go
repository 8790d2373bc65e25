// Package toast renders transient notification messages.
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/types"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3 * time.Second

// Renderer handles rendering of toast notifications
type Renderer struct {
	styles *styles.Styles
}

// New creates a new Renderer with the given styles
func New(styles *styles.Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render renders a stack of toasts aligned to the right.
// Returns empty string if no toasts to display
func (r *Renderer) Render(toasts []types.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	var rendered []string
	toastWidth := width / 3
	if toastWidth > 40 {
		toastWidth = 40 // Cap maximum toast width
	}

	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(t.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// Prune drops expired toasts, preserving order of the survivors.
func Prune(toasts []types.Toast, now time.Time) []types.Toast {
	var alive []types.Toast
	for _, t := range toasts {
		if t.Expires.After(now) {
			alive = append(alive, t)
		}
	}
	return alive
}

// styleForLevel returns the appropriate style for a toast level
func (r *Renderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
