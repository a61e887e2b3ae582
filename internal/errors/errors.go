// Package errors provides a lightweight structured error type (BuildStateError)
// for category-based classification of state persistence and CLI failures.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a BuildStateError for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Persistence errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryDecode     ErrorCategory = "decode"

	CategoryInternal ErrorCategory = "internal"
)

// BuildStateError is a structured error with a category and context.
// Every BuildStateError is terminal for the current invocation.
type BuildStateError struct {
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for BuildStateError
type ContextFields map[string]any

// Error implements the error interface
func (e *BuildStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *BuildStateError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *BuildStateError) WithContext(key string, value any) *BuildStateError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new BuildStateError
func New(category ErrorCategory, message string) *BuildStateError {
	return &BuildStateError{
		Category: category,
		Message:  message,
	}
}

// Wrap creates a new BuildStateError that wraps an existing error
func Wrap(err error, category ErrorCategory, message string) *BuildStateError {
	return &BuildStateError{
		Category: category,
		Message:  message,
		Cause:    err,
	}
}

// As extracts the outermost BuildStateError from err's chain.
func As(err error) (*BuildStateError, bool) {
	var bse *BuildStateError
	if stdErrors.As(err, &bse) {
		return bse, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if bse, ok := As(err); ok {
		return bse.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a BuildStateError
func GetCategory(err error) ErrorCategory {
	if bse, ok := As(err); ok {
		return bse.Category
	}
	return CategoryInternal
}
