package store

import (
	"errors"
	"fmt"
)

// StorageError is the single error kind returned by the storage gateway.
// It covers file access failures, unreadable rows and constraint violations.
type StorageError struct {
	Op   string
	List string
	Err  error
}

func (e *StorageError) Error() string {
	if e.List == "" {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s %q: %v", e.Op, e.List, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is, or wraps, a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

func storageErr(op, list string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, List: list, Err: err}
}
