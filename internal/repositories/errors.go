package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrInvalidKey is returned when an empty or malformed key is provided
	ErrInvalidKey = errors.New("invalid key")

	// ErrConnection is returned when the store cannot be reached
	ErrConnection = errors.New("store connection error")

	// ErrUnsupported is returned when an unsupported operation is attempted
	ErrUnsupported = errors.New("unsupported operation")
)

// RepositoryError represents a store-specific error with additional context
type RepositoryError struct {
	Op      string // Operation that failed
	Table   string // Collection / table name
	Key     string // Record key (if applicable)
	Err     error  // Underlying error
	Message string // Human-readable message
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Key != "" {
		return fmt.Sprintf("%s %s operation failed for key %s: %v", e.Table, e.Op, e.Key, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Table, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *RepositoryError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, table, key string, err error) *RepositoryError {
	return &RepositoryError{
		Op:    op,
		Table: table,
		Key:   key,
		Err:   err,
	}
}

// NotFoundError creates a "not found" repository error
func NotFoundError(table, key string) *RepositoryError {
	return &RepositoryError{
		Op:      "get",
		Table:   table,
		Key:     key,
		Err:     ErrNotFound,
		Message: fmt.Sprintf("record %s not found in %s", key, table),
	}
}

// ConnectionError creates a "connection" repository error
func ConnectionError(table string, err error) *RepositoryError {
	return &RepositoryError{
		Op:      "connect",
		Table:   table,
		Err:     ErrConnection,
		Message: fmt.Sprintf("store connection failed for %s: %v", table, err),
	}
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return errors.Is(repoErr.Err, ErrNotFound)
	}
	return errors.Is(err, ErrNotFound)
}

// IsConnection checks if an error is a "connection" error
func IsConnection(err error) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return errors.Is(repoErr.Err, ErrConnection)
	}
	return errors.Is(err, ErrConnection)
}
