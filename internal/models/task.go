package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidListName is returned when a list name fails the identifier allow-list.
var ErrInvalidListName = errors.New("invalid list name")

const maxListNameLen = 64

// Task represents a single task within a list.
type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Marker returns the completion marker shown next to the task.
func (t *Task) Marker() string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}

// ValidateListName checks that name is safe to splice into a schema statement.
// Only ASCII letters, digits and underscore are allowed.
func ValidateListName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidListName)
	}

	if len(name) > maxListNameLen {
		return fmt.Errorf("%w: must be %d characters or fewer", ErrInvalidListName, maxListNameLen)
	}

	if strings.HasPrefix(strings.ToLower(name), "sqlite_") {
		return fmt.Errorf("%w: %q uses a reserved prefix", ErrInvalidListName, name)
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidListName, name, r)
		}
	}

	return nil
}
