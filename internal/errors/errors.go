// Package errors defines the error surface handlers return: a typed error
// that carries its HTTP status, request context fields for logging, and a
// JSON response shape. The Echo middleware in this package does the mapping.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType names the error category. It drives the HTTP status, the
// metrics label, and the log level.
type ErrorType string

const (
	TypeValidation ErrorType = "validation"
	TypeNotFound   ErrorType = "not_found"
	TypeInternal   ErrorType = "internal"
)

// httpStatus maps each category to its response code. Unknown types fall
// back to 500 in HTTPStatus.
var httpStatus = map[ErrorType]int{
	TypeValidation: http.StatusBadRequest,
	TypeNotFound:   http.StatusNotFound,
	TypeInternal:   http.StatusInternalServerError,
}

// Error is the structured error handlers return. Context holds request
// fields (shop id, device) that end up in the log line and, for
// client-caused categories, in the response body.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

func newError(t ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    t,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// ValidationError reports invalid client input (400).
func ValidationError(message string) *Error {
	return newError(TypeValidation, message, nil)
}

// NotFoundError reports a missing resource (404).
func NotFoundError(message string) *Error {
	return newError(TypeNotFound, message, nil)
}

// InternalError reports a server-side failure (500), keeping the cause for
// the log but out of the response.
func InternalError(message string, cause error) *Error {
	return newError(TypeInternal, message, cause)
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) HTTPStatus() int {
	if status, ok := httpStatus[e.Type]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WithField attaches a context field, chainable at the return site.
func (e *Error) WithField(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// ErrorResponse is the JSON body clients receive.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Type    ErrorType      `json:"type"`
	Context map[string]any `json:"context,omitempty"`
}

func (e *Error) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error:   e.Message,
		Type:    e.Type,
		Context: e.Context,
	}
}

// AsStructuredError normalizes any error to *Error, wrapping unknown errors
// as internal so nothing leaks raw to clients.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return InternalError("internal server error", err)
}
