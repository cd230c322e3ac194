// Package errors provides structured application errors for the phototrack
// service. Each error carries a code categorizing how it propagates: only
// source_unavailable errors abort a reconciliation cycle; everything else is
// absorbed and logged near where it occurs.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeSourceUnavailable indicates the order source could not be
	// reached; a refresh cycle aborts with no partial effect.
	ErrCodeSourceUnavailable ErrorCode = "source_unavailable"
	// ErrCodeEnrichmentUnavailable indicates a per-site lookup failed; the
	// affected record degrades to empty enrichment fields.
	ErrCodeEnrichmentUnavailable ErrorCode = "enrichment_unavailable"
	// ErrCodePersistence indicates a snapshot write failed; in-memory state
	// is retained and the next write may succeed independently.
	ErrCodePersistence ErrorCode = "persistence"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message,
// and optional cause. It supports errors.Is and errors.As via Unwrap.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// SourceUnavailable creates a new SourceUnavailable error.
func SourceUnavailable(message string) *AppError {
	return &AppError{Code: ErrCodeSourceUnavailable, Message: message}
}

// EnrichmentUnavailable creates a new EnrichmentUnavailable error.
func EnrichmentUnavailable(message string) *AppError {
	return &AppError{Code: ErrCodeEnrichmentUnavailable, Message: message}
}

// Persistence creates a new Persistence error.
func Persistence(message string) *AppError {
	return &AppError{Code: ErrCodePersistence, Message: message}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
// Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsSourceUnavailable checks if an error is a SourceUnavailable error.
func IsSourceUnavailable(err error) bool {
	return isCode(err, ErrCodeSourceUnavailable)
}

// IsEnrichmentUnavailable checks if an error is an EnrichmentUnavailable error.
func IsEnrichmentUnavailable(err error) bool {
	return isCode(err, ErrCodeEnrichmentUnavailable)
}

// IsPersistence checks if an error is a Persistence error.
func IsPersistence(err error) bool {
	return isCode(err, ErrCodePersistence)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
