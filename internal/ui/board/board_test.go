package board

import (
	"strings"
	"testing"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
	"github.com/taskdeck/taskdeck/internal/view"
)

func testColumns() []Column {
	tasks := []domain.Task{
		{ID: "t1", Title: "Draft proposal", Status: domain.StatusTodo, Priority: domain.PriorityHigh},
		{ID: "t2", Title: "Review patches", Status: domain.StatusTodo, Priority: domain.PriorityLow},
		{ID: "t3", Title: "Migrate database", Status: domain.StatusInProgress, Priority: domain.PriorityMedium},
		{ID: "t4", Title: "Ship release", Status: domain.StatusDone, Priority: domain.PriorityHigh},
	}
	return FromProjection(view.Project(tasks, view.ModeBoard))
}

func TestFromProjection(t *testing.T) {
	columns := testColumns()

	if len(columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(columns))
	}

	if columns[0].Title != "To Do" {
		t.Errorf("first column title = %q, want %q", columns[0].Title, "To Do")
	}
	if columns[1].Title != "In Progress" {
		t.Errorf("second column title = %q, want %q", columns[1].Title, "In Progress")
	}
	if columns[2].Title != "Done" {
		t.Errorf("third column title = %q, want %q", columns[2].Title, "Done")
	}

	if len(columns[0].Tasks) != 2 || len(columns[1].Tasks) != 1 || len(columns[2].Tasks) != 1 {
		t.Errorf("unexpected column sizes: %d/%d/%d",
			len(columns[0].Tasks), len(columns[1].Tasks), len(columns[2].Tasks))
	}
}

func TestRender(t *testing.T) {
	s := styles.New()
	columns := testColumns()

	got := Render(columns, Cursor{Column: 0, Task: 0}, "", s, 120, 30)
	stripped := stripANSI(got)

	for _, want := range []string{"To Do (2)", "In Progress (1)", "Done (1)", "Draft proposal", "Migrate database", "Ship release"} {
		if !strings.Contains(stripped, want) {
			t.Errorf("board should contain %q, got:\n%s", want, stripped)
		}
	}
}

func TestRender_EmptyColumns(t *testing.T) {
	s := styles.New()
	columns := FromProjection(view.Project(nil, view.ModeBoard))

	got := Render(columns, Cursor{}, "", s, 120, 30)
	stripped := stripANSI(got)

	// Even an empty board shows all three headers with zero counts
	for _, want := range []string{"To Do (0)", "In Progress (0)", "Done (0)"} {
		if !strings.Contains(stripped, want) {
			t.Errorf("empty board should contain %q, got:\n%s", want, stripped)
		}
	}
}

func TestRender_NoColumns(t *testing.T) {
	s := styles.New()

	if got := Render(nil, Cursor{}, "", s, 120, 30); got != "" {
		t.Errorf("rendering no columns should be empty, got: %s", got)
	}
}

func TestRender_CursorMarker(t *testing.T) {
	s := styles.New()
	columns := testColumns()

	got := Render(columns, Cursor{Column: 1, Task: 0}, "", s, 120, 30)
	stripped := stripANSI(got)

	if !strings.Contains(stripped, "▶Migrate database") {
		t.Errorf("cursor marker should sit on the in-progress card, got:\n%s", stripped)
	}
	if strings.Contains(stripped, "▶Draft proposal") {
		t.Errorf("cursor marker should not appear in inactive columns, got:\n%s", stripped)
	}
}

func TestRender_GrabbedCard(t *testing.T) {
	s := styles.New()
	columns := testColumns()

	grabbed := Render(columns, Cursor{Column: 0, Task: 0}, "t1", s, 120, 30)
	normal := Render(columns, Cursor{Column: 0, Task: 0}, "", s, 120, 30)

	if grabbed == normal {
		t.Error("grabbed card should render differently from an idle card")
	}
}
