package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed client error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors by code so sentinels survive Clone and Wrap.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e != nil && e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrValidation           = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrNetwork              = New("NETWORK_ERROR", 0, "request failed to complete")
	ErrTimeout              = New("TIMEOUT", http.StatusRequestTimeout, "request exceeded deadline")
	ErrUnauthorized         = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrNotFound             = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrNoSelection          = New("NO_SELECTION", http.StatusBadRequest, "no records selected")
	ErrServer               = New("SERVER_ERROR", http.StatusInternalServerError, "server error")
	ErrConflict             = New("CONFLICT", http.StatusConflict, "conflict")
	ErrConfirmationRequired = New("CONFIRMATION_REQUIRED", http.StatusPreconditionFailed, "confirmation required")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrNetwork.Code, ErrNetwork.Status, ErrNetwork.Message)
}

// FromStatus maps an HTTP response status onto the error taxonomy.
func FromStatus(status int, message string) *Error {
	var base *Error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		base = ErrUnauthorized
	case status == http.StatusNotFound:
		base = ErrNotFound
	case status == http.StatusRequestTimeout:
		base = ErrTimeout
	case status == http.StatusConflict:
		base = ErrConflict
	default:
		base = ErrServer
	}
	clone := Clone(base, message)
	clone.Status = status
	return clone
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
