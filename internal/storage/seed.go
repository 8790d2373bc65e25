package storage

import (
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// SeedTasks returns the sample dataset used when the full-widget
// namespace has never been written. The simple namespace starts empty.
func SeedTasks() []domain.Task {
	now := time.Now()
	return []domain.Task{
		{
			ID:          "task1",
			Title:       "Set up development environment",
			Description: "Install the toolchain and configure the editor",
			Priority:    domain.PriorityHigh,
			Status:      domain.StatusDone,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "task2",
			Title:       "Create project wireframes",
			Description: "Sketch the mockups for the main screens",
			Priority:    domain.PriorityMedium,
			Status:      domain.StatusInProgress,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "task3",
			Title:       "Implement authentication",
			Description: "Login, registration and password recovery",
			Priority:    domain.PriorityHigh,
			Status:      domain.StatusTodo,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "task4",
			Title:       "Review API documentation",
			Description: "Read through the external API docs",
			Priority:    domain.PriorityLow,
			Status:      domain.StatusTodo,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "task5",
			Title:       "Test the board drag and drop",
			Description: "Verify cards move correctly between columns",
			Priority:    domain.PriorityMedium,
			Status:      domain.StatusInProgress,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
