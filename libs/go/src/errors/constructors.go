package errors

import "fmt"

// New creates a new AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Validation creates a validation error.
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// TypeMismatch creates a type mismatch error naming the offending type.
func TypeMismatch(message string, value any) *AppError {
	return New(ErrCodeTypeMismatch, message).WithDetail("type", fmt.Sprintf("%T", value))
}

// BadRequest creates a bad request error.
func BadRequest(message string) *AppError {
	return New(ErrCodeBadRequest, message)
}

// Internal creates an internal error.
func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}
