package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups of a contract ID that does not exist.
var ErrNotFound = errors.New("contract not found")

// ValidationError reports a required contract field that is missing.
// No SQL has been executed when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contract %s %s", e.Field, e.Message)
}

// StorageError wraps a failure of the database backend: opening the file,
// executing a statement, or scanning its result.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
