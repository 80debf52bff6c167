package errors

import (
	"fmt"
)

// UnsupportedTargetError indicates a component generation request for a
// framework that has no registered adapter.
type UnsupportedTargetError struct {
	Target string
}

// NewUnsupportedTargetError constructs an UnsupportedTargetError.
func NewUnsupportedTargetError(target string) error {
	return &UnsupportedTargetError{Target: target}
}

func (e *UnsupportedTargetError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unsupported framework: %s", e.Target)
}

// UnsupportedFormatError indicates a theme export request for an
// unrecognized stylesheet format.
type UnsupportedFormatError struct {
	Format string
}

// NewUnsupportedFormatError constructs an UnsupportedFormatError.
func NewUnsupportedFormatError(format string) error {
	return &UnsupportedFormatError{Format: format}
}

func (e *UnsupportedFormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// ValidationError captures a missing or malformed field in a component
// definition or theme payload.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError indicates an operation referencing a theme name absent
// from the store.
type NotFoundError struct {
	Name string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(name string) error {
	return &NotFoundError{Name: name}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("theme not found: %s", e.Name)
}

// StorageError represents an I/O fault while writing or removing a
// persisted theme record.
type StorageError struct {
	Path string
	Err  error
}

// NewStorageError constructs a StorageError.
func NewStorageError(path string, err error) error {
	return &StorageError{Path: path, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("storage error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("storage error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a document that could not be decoded at all,
// before field-level validation runs.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
