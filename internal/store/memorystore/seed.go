package memorystore

import (
	"time"

	"taskboard/internal/model"
)

// SeedTasks returns the fixture tasks relative to now.
func SeedTasks(now time.Time) []model.Task {
	day := 24 * time.Hour
	return []model.Task{
		{ID: 1, Title: "Set up the project structure", Completed: true, CreatedAt: now.Add(-2 * day)},
		{ID: 2, Title: "Build the React UI components", Completed: true, CreatedAt: now.Add(-day)},
		{ID: 3, Title: "Create a mock API service", Completed: false, CreatedAt: now},
		{ID: 4, Title: "Implement CRUD functionality", Completed: false, CreatedAt: now},
		{ID: 5, Title: "Style the application with Tailwind CSS", Completed: false, CreatedAt: now},
	}
}
