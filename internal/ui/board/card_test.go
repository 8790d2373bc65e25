package board

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// stripANSI removes ANSI escape codes from a string for testing
func stripANSI(s string) string {
	return ansi.Strip(s)
}

func TestRenderCard_Basic(t *testing.T) {
	s := styles.New()
	task := domain.Task{
		ID:       "task1",
		Title:    "Write release notes",
		Status:   domain.StatusTodo,
		Priority: domain.PriorityHigh,
	}

	result := RenderCard(task, false, false, 30, s)
	stripped := stripANSI(result)

	if !strings.Contains(stripped, "Write release notes") {
		t.Errorf("Card should contain task title, got: %s", stripped)
	}

	if !strings.Contains(stripped, "High") {
		t.Errorf("Card should contain priority badge, got: %s", stripped)
	}
}

func TestRenderCard_Description(t *testing.T) {
	s := styles.New()
	task := domain.Task{
		ID:          "task1",
		Title:       "Plan sprint",
		Description: "Collect estimates first",
		Status:      domain.StatusInProgress,
		Priority:    domain.PriorityMedium,
	}

	result := RenderCard(task, false, false, 30, s)
	stripped := stripANSI(result)

	if !strings.Contains(stripped, "Collect estimates first") {
		t.Errorf("Card should contain description, got: %s", stripped)
	}
}

func TestRenderCard_Cursor(t *testing.T) {
	s := styles.New()
	task := domain.Task{
		ID:       "task1",
		Title:    "Cursor task",
		Status:   domain.StatusTodo,
		Priority: domain.PriorityLow,
	}

	result := RenderCard(task, true, false, 30, s)
	stripped := stripANSI(result)

	if !strings.Contains(stripped, "▶") {
		t.Errorf("Card with cursor should contain cursor indicator, got: %s", stripped)
	}
}

func TestRenderCard_Grabbed(t *testing.T) {
	s := styles.New()
	task := domain.Task{
		ID:       "task1",
		Title:    "Grabbed task",
		Status:   domain.StatusTodo,
		Priority: domain.PriorityMedium,
	}

	// Card can be cursor, grabbed, both, or neither
	resultBoth := RenderCard(task, true, true, 30, s)
	resultGrabbed := RenderCard(task, false, true, 30, s)
	resultNormal := RenderCard(task, false, false, 30, s)

	if resultBoth == "" || resultGrabbed == "" || resultNormal == "" {
		t.Error("All card state combinations should render")
	}
}

func TestRenderCard_TitleTruncation(t *testing.T) {
	s := styles.New()
	longTitle := "This is a very long task title that should be truncated to fit within the card width"

	task := domain.Task{
		ID:       "task1",
		Title:    longTitle,
		Status:   domain.StatusTodo,
		Priority: domain.PriorityHigh,
	}

	result := RenderCard(task, false, false, 30, s)
	stripped := stripANSI(result)

	if !strings.Contains(stripped, "…") {
		t.Errorf("Long title should be truncated with ellipsis, got: %s", stripped)
	}

	if strings.Contains(stripped, longTitle) {
		t.Errorf("Long title should be truncated, got: %s", stripped)
	}
}
