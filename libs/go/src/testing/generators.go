// Package testing provides rapid generators shared by property-based tests.
package testing

import (
	"github.com/auth-platform/roman/libs/go/src/functional"
	"pgregory.net/rapid"
)

// ResultGen generates Result[T] values.
func ResultGen[T any](valueGen *rapid.Generator[T], errGen *rapid.Generator[error]) *rapid.Generator[functional.Result[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T] {
		if rapid.Bool().Draw(t, "isOk") {
			return functional.Ok(valueGen.Draw(t, "value"))
		}
		return functional.Err[T](errGen.Draw(t, "error"))
	})
}

// ErrGen generates Err[T] values only.
func ErrGen[T any](errGen *rapid.Generator[error]) *rapid.Generator[functional.Result[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T] {
		return functional.Err[T](errGen.Draw(t, "error"))
	})
}

// ErrorGen generates error values.
func ErrorGen() *rapid.Generator[error] {
	return rapid.Custom(func(t *rapid.T) error {
		msg := rapid.String().Draw(t, "errorMsg")
		return functional.NewError(msg)
	})
}
