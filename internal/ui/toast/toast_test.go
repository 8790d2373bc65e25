package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/taskdeck/taskdeck/internal/types"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

func TestRenderEmpty(t *testing.T) {
	r := New(styles.New())

	if got := r.Render(nil, 120); got != "" {
		t.Errorf("no toasts should render to empty string, got: %s", got)
	}
}

func TestRenderStack(t *testing.T) {
	r := New(styles.New())
	toasts := []types.Toast{
		{Level: types.ToastSuccess, Message: "Task saved"},
		{Level: types.ToastError, Message: "Title is required"},
	}

	got := ansi.Strip(r.Render(toasts, 120))

	if !strings.Contains(got, "Task saved") {
		t.Errorf("stack should contain first toast, got: %s", got)
	}
	if !strings.Contains(got, "Title is required") {
		t.Errorf("stack should contain second toast, got: %s", got)
	}
}

func TestRenderLevels(t *testing.T) {
	r := New(styles.New())

	for _, level := range []types.ToastLevel{types.ToastInfo, types.ToastSuccess, types.ToastError} {
		got := r.Render([]types.Toast{{Level: level, Message: "msg"}}, 120)
		if got == "" {
			t.Errorf("level %v should render", level)
		}
	}
}

func TestPrune(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	toasts := []types.Toast{
		{Message: "stale", Expires: now.Add(-time.Second)},
		{Message: "fresh", Expires: now.Add(time.Second)},
		{Message: "boundary", Expires: now},
	}

	alive := Prune(toasts, now)

	if len(alive) != 1 {
		t.Fatalf("expected 1 surviving toast, got %d", len(alive))
	}
	if alive[0].Message != "fresh" {
		t.Errorf("survivor = %q, want %q", alive[0].Message, "fresh")
	}
}

func TestPruneKeepsOrder(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	toasts := []types.Toast{
		{Message: "a", Expires: now.Add(time.Second)},
		{Message: "b", Expires: now.Add(-time.Second)},
		{Message: "c", Expires: now.Add(2 * time.Second)},
	}

	alive := Prune(toasts, now)

	if len(alive) != 2 || alive[0].Message != "a" || alive[1].Message != "c" {
		t.Errorf("survivors should keep order, got %v", alive)
	}
}
