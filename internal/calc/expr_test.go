package calc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/auth-platform/roman/libs/go/src/domain"
	apperrors "github.com/auth-platform/roman/libs/go/src/errors"
	testutil "github.com/auth-platform/roman/libs/go/src/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"MMMCMLXXXVII + XII", []string{"MMMCMLXXXVII", "+", "XII"}},
		{"XIX*XII", []string{"XIX", "*", "XII"}},
		{"  X-I  ", []string{"X", "-", "I"}},
		{"XIX x XII", []string{"XIX", "x", "XII"}},
		{"12+3", []string{"12", "+", "3"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"MMMCMLXXXVII + XII", "MMMCMXCIX"},
		{"MMMCMLXXXVII - XVIII", "MMMCMLXIX"},
		{"XIX * XII", "CCXXVIII"},
		{"XIX x XII", "CCXXVIII"},
		{"3987 + 12", "MMMCMXCIX"},
		{"MIX", "MIX"},
		{"II + III * IV", "XIV"},
		{"X - III - II", "V"},
		{"X * X - I", "XCIX"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestEvaluateRangeErrors(t *testing.T) {
	for _, expr := range []string{"I - I", "MMM + M", "MM * II", "I - V + X", "0 + I", "4000", "99999999999999999999999"} {
		t.Run(expr, func(t *testing.T) {
			_, err := Evaluate(expr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidRoman), "got %v", err)
		})
	}
}

func TestEvaluateInvalidOperand(t *testing.T) {
	_, err := Evaluate("IIII + I")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestEvaluateSyntaxErrors(t *testing.T) {
	for _, expr := range []string{"", "   ", "+", "X +", "X + + I", "X I", "* X"} {
		t.Run(fmt.Sprintf("%q", expr), func(t *testing.T) {
			_, err := Evaluate(expr)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeBadRequest, apperrors.GetCode(err))
		})
	}
}

func TestSyntaxErrorReportsPosition(t *testing.T) {
	_, err := Eval([]string{"X", "II"})
	appErr, ok := apperrors.AsType[*apperrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, 1, appErr.Details["position"])
	assert.Equal(t, "II", appErr.Details["token"])
}

// Evaluating "a op b" agrees with the domain methods for in-range results.
func TestEvalMatchesDomainArithmetic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := testutil.RomanPairGen().Draw(t, "a")
		b := testutil.RomanPairGen().Draw(t, "b")
		op := rapid.SampledFrom([]string{"+", "-", "*"}).Draw(t, "op")

		got, err := Eval([]string{a.Numeral, op, b.Numeral})

		var want int
		switch op {
		case "+":
			want = a.Value + b.Value
		case "-":
			want = a.Value - b.Value
		default:
			want = a.Value * b.Value
		}
		if want < domain.MinRomanValue || want > domain.MaxRomanValue {
			if !errors.Is(err, domain.ErrInvalidRoman) {
				t.Fatalf("%s %s %s should be out of range, got %v", a.Numeral, op, b.Numeral, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("%s %s %s failed: %v", a.Numeral, op, b.Numeral, err)
		}
		if got.Int() != want {
			t.Fatalf("%s %s %s = %d, want %d", a.Numeral, op, b.Numeral, got.Int(), want)
		}
	})
}
