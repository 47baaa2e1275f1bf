package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	// If already an AppError, preserve the code
	if appErr, ok := AsType[*AppError](err); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Details: appErr.Details,
			cause:   err,
		}
	}
	return Internal(message).WithCause(err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...any) *AppError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// RootCause traverses the error chain to find the root cause.
func RootCause(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

// Is checks if any error in the chain matches the target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsCode checks if the error has the specified error code.
func IsCode(err error, code ErrorCode) bool {
	if appErr, ok := AsType[*AppError](err); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error.
func GetCode(err error) ErrorCode {
	if appErr, ok := AsType[*AppError](err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// From returns err as an AppError, wrapping foreign errors as internal.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsType[*AppError](err); ok {
		return appErr
	}
	return Internal(err.Error()).WithCause(err)
}
