package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"todo/internal/models"
)

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the SQLite database at dbPath.
// The handle is meant to be held for the whole session and released with Close.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, storageErr("open", "", fmt.Errorf("failed to open database: %w", err))
	}

	// Single connection: one writer, and ":memory:" stays one database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, storageErr("open", "", fmt.Errorf("failed to connect to database: %w", err))
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// quoteList validates list and returns it as a quoted SQL identifier.
func quoteList(list string) (string, error) {
	if err := models.ValidateListName(list); err != nil {
		return "", err
	}
	return `"` + list + `"`, nil
}

// EnsureSchema creates the table backing list if it does not exist yet.
func (s *SQLiteStore) EnsureSchema(ctx context.Context, list string) error {
	table, err := quoteList(list)
	if err != nil {
		return storageErr("ensure schema", list, err)
	}

	_, err = s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+table+` (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL,
			completed INTEGER DEFAULT 0
		)
	`)
	if err != nil {
		return storageErr("ensure schema", list, fmt.Errorf("failed to create table: %w", err))
	}

	return nil
}

// AddTask inserts a new open task. Surrounding whitespace is trimmed from
// description; an all-whitespace description is stored as "".
func (s *SQLiteStore) AddTask(ctx context.Context, list, description string) error {
	table, err := quoteList(list)
	if err != nil {
		return storageErr("add task", list, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO `+table+` (description) VALUES (?)`,
		strings.TrimSpace(description),
	)
	if err != nil {
		return storageErr("add task", list, fmt.Errorf("failed to create task: %w", err))
	}

	return nil
}

// ListTasks retrieves every task in list in the order SQLite returns them.
func (s *SQLiteStore) ListTasks(ctx context.Context, list string) ([]models.Task, error) {
	table, err := quoteList(list)
	if err != nil {
		return nil, storageErr("list tasks", list, err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, description, completed FROM `+table)
	if err != nil {
		return nil, storageErr("list tasks", list, fmt.Errorf("failed to list tasks: %w", err))
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		var completed sql.NullInt64

		if err := rows.Scan(&task.ID, &task.Description, &completed); err != nil {
			return nil, storageErr("list tasks", list, fmt.Errorf("failed to scan task: %w", err))
		}
		task.Completed = completed.Valid && completed.Int64 != 0

		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list tasks", list, fmt.Errorf("failed to read tasks: %w", err))
	}

	return tasks, nil
}

// MarkComplete sets completed for the task with the given id and returns the
// updated list. An unknown id is not an error.
func (s *SQLiteStore) MarkComplete(ctx context.Context, list string, id int64) ([]models.Task, error) {
	table, err := quoteList(list)
	if err != nil {
		return nil, storageErr("mark complete", list, err)
	}

	_, err = s.db.ExecContext(ctx, `UPDATE `+table+` SET completed = 1 WHERE id = ?`, id)
	if err != nil {
		return nil, storageErr("mark complete", list, fmt.Errorf("failed to mark task %d complete: %w", id, err))
	}

	return s.ListTasks(ctx, list)
}
