// internal/pkg/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions handlers map to status codes.
var (
	// ErrAuthRequired is returned by mutations attempted without a session.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound is returned when a single-entity lookup resolves to nothing.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a missing or invalid selection before any
// network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StockConflictError carries the full list of problematic cart lines found
// during checkout reconciliation.
type StockConflictError struct {
	Problems []string
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("stock conflicts on %d cart line(s)", len(e.Problems))
}

// NewStockConflictError creates a stock conflict error
func NewStockConflictError(problems []string) *StockConflictError {
	return &StockConflictError{Problems: problems}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStockConflict reports whether err is a stock conflict error
func IsStockConflict(err error) bool {
	var se *StockConflictError
	return errors.As(err, &se)
}
