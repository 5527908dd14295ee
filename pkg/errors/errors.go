// Package errors defines structured error types for the VeilScan risk service.
// Errors carry a stable machine code and the HTTP status the interface layer
// should map them to.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the service.
const (
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeNotFound           = "not_found"
	ErrCodeInternal           = "internal_error"
	ErrCodeInvariantViolation = "invariant_violation"
)

// AppError represents a structured application error.
type AppError struct {
	Code        string
	HTTPStatus  int
	Message     string
	Description string
	Details     map[string]string
	cause       error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithError attaches a cause to a copy of the error.
func (e *AppError) WithError(cause error) *AppError {
	cp := *e
	cp.cause = cause
	return &cp
}

// WithDetail attaches a key/value detail to a copy of the error.
func (e *AppError) WithDetail(key, value string) *AppError {
	cp := *e
	cp.Details = make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

// New creates a new AppError.
func New(code string, httpStatus int, message string) *AppError {
	return &AppError{
		Code:       code,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// ErrInvalidRequest builds a 400-class error for malformed client input.
func ErrInvalidRequest(message string) *AppError {
	return New(ErrCodeInvalidRequest, http.StatusBadRequest, message)
}

// ErrNotFound builds a 404-class error for an unknown resource.
func ErrNotFound(resource string) *AppError {
	return New(ErrCodeNotFound, http.StatusNotFound, resource+" not found")
}

// ErrInternal builds a 500-class error.
func ErrInternal(message string) *AppError {
	return New(ErrCodeInternal, http.StatusInternalServerError, message)
}

// ErrInvariantViolation flags a computed value that escaped its documented
// bounds. This is a defect in weighting policy, not a recoverable input
// problem, so it fails loudly instead of being clamped.
func ErrInvariantViolation(what string, value float64) *AppError {
	e := New(ErrCodeInvariantViolation, http.StatusInternalServerError,
		fmt.Sprintf("%s out of range: %.4f", what, value))
	return e.WithDetail("value", fmt.Sprintf("%.4f", value))
}

// AsAppError extracts an *AppError from an error chain, wrapping unknown
// errors as internal ones so the interface layer always has a code to map.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal("internal server error").WithError(err)
}

// IsNotFound reports whether the error chain carries a not_found code.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}
