// Package errors provides typed error handling with exit code mapping.
// Errors carry a code so callers can branch on the category with errors.Is.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// ErrorCode represents application error categories.
type ErrorCode string

// Error codes for all application error categories.
const (
	// ErrCodeValidation is raised for values that are well typed but not acceptable.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrCodeTypeMismatch is raised when an argument has an unsupported type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeBadRequest is raised for malformed input that is neither of the above.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError is the standard application error type.
type AppError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// ExitCode returns the process exit status for this error.
func (e *AppError) ExitCode() int {
	if code, ok := exitCodeMap[e.Code]; ok {
		return code
	}
	return exitCodeMap[ErrCodeInternal]
}

// Is checks if the error matches a target error code.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// As implements errors.As for type assertion.
func (e *AppError) As(target any) bool {
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// MarshalJSON implements json.Marshaler.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type Alias AppError
	aux := &struct {
		*Alias
		Cause string `json:"cause,omitempty"`
	}{Alias: (*Alias)(e)}
	if e.cause != nil {
		aux.Cause = e.cause.Error()
	}
	return json.Marshal(aux)
}

// Response is the error envelope written by structured output modes.
type Response struct {
	Error   string         `json:"error" yaml:"error"`
	Code    ErrorCode      `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
}

// ToResponse converts an AppError to its response envelope.
func (e *AppError) ToResponse() Response {
	if e.Code == ErrCodeInternal {
		return Response{
			Error:   string(e.Code),
			Code:    e.Code,
			Message: "an internal error occurred",
		}
	}
	return Response{
		Error:   string(e.Code),
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

// LogAttrs returns the error as structured log attributes.
func (e *AppError) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("code", string(e.Code)),
		slog.String("message", e.Message),
	}
	for k, v := range e.Details {
		attrs = append(attrs, slog.Any(k, v))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return attrs
}

// Exit status mapping, following sysexits(3) where one applies.
var exitCodeMap = map[ErrorCode]int{
	ErrCodeValidation:   1,
	ErrCodeTypeMismatch: 2,
	ErrCodeBadRequest:   64, // EX_USAGE
	ErrCodeInternal:     70, // EX_SOFTWARE
}
