package store

import (
	"context"

	"todo/internal/models"
)

// Store defines the interface for task persistence operations.
// Every list name is checked with models.ValidateListName before use.
type Store interface {
	EnsureSchema(ctx context.Context, list string) error
	AddTask(ctx context.Context, list, description string) error
	ListTasks(ctx context.Context, list string) ([]models.Task, error)
	MarkComplete(ctx context.Context, list string, id int64) ([]models.Task, error)

	// Lifecycle
	Close() error
}
