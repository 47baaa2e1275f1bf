package domain

import (
	"math"
	"strings"

	apperrors "github.com/auth-platform/roman/libs/go/src/errors"
)

// Range of magnitudes representable in standard Roman notation.
const (
	MinRomanValue = 1
	MaxRomanValue = 3999
)

// Sentinel errors for Roman numerals. Every error returned by this file
// matches one of them under errors.Is.
var (
	// ErrInvalidRoman is returned for non-canonical numerals and out-of-range values.
	ErrInvalidRoman = apperrors.Validation("invalid roman numeral")
	// ErrRomanType is returned when an argument is neither a string nor an integer.
	ErrRomanType = apperrors.New(apperrors.ErrCodeTypeMismatch, "unsupported roman numeral type")
)

// romanSymbol pairs a magnitude with its symbol group.
type romanSymbol struct {
	value  int
	symbol string
}

// romanSymbols is ordered by descending value and includes the subtractive pairs.
var romanSymbols = []romanSymbol{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Roman represents a validated Roman numeral in [MinRomanValue, MaxRomanValue].
type Roman struct {
	value   int
	numeral string
}

// NewRoman creates a Roman from a numeral string or any integer kind.
// Strings must be canonical numerals and integers must be in range; any
// other argument type fails with a type mismatch error.
func NewRoman(v any) (Roman, error) {
	switch x := v.(type) {
	case string:
		return ParseRoman(x)
	case int:
		return romanFromInt64(int64(x))
	case int8:
		return romanFromInt64(int64(x))
	case int16:
		return romanFromInt64(int64(x))
	case int32:
		return romanFromInt64(int64(x))
	case int64:
		return romanFromInt64(x)
	case uint:
		return romanFromUint64(uint64(x))
	case uint8:
		return romanFromUint64(uint64(x))
	case uint16:
		return romanFromUint64(uint64(x))
	case uint32:
		return romanFromUint64(uint64(x))
	case uint64:
		return romanFromUint64(x)
	default:
		return Roman{}, apperrors.TypeMismatch("roman numeral must be built from a string or an integer", v)
	}
}

// MustNewRoman creates a new Roman, panicking on invalid input.
func MustNewRoman(v any) Roman {
	r, err := NewRoman(v)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRoman parses a canonical Roman numeral such as "MCMXCIV".
func ParseRoman(s string) (Roman, error) {
	value, ok := parseRoman(s)
	if !ok {
		return Roman{}, apperrors.Validation("invalid roman numeral").WithDetail("input", s)
	}
	return Roman{value: value, numeral: s}, nil
}

// RomanFromInt creates a Roman from an integer in [MinRomanValue, MaxRomanValue].
func RomanFromInt(n int) (Roman, error) {
	return romanFromInt64(int64(n))
}

func romanFromInt64(n int64) (Roman, error) {
	if n < MinRomanValue || n > MaxRomanValue {
		return Roman{}, outOfRange(n)
	}
	value := int(n)
	return Roman{value: value, numeral: formatRoman(value)}, nil
}

func romanFromUint64(n uint64) (Roman, error) {
	if n > MaxRomanValue {
		if n > math.MaxInt64 {
			return Roman{}, apperrors.Validation("roman numeral value out of range").
				WithDetail("min", MinRomanValue).
				WithDetail("max", MaxRomanValue)
		}
		return Roman{}, outOfRange(int64(n))
	}
	return romanFromInt64(int64(n))
}

func outOfRange(n int64) *apperrors.AppError {
	return apperrors.Validation("roman numeral value out of range").
		WithDetail("value", n).
		WithDetail("min", MinRomanValue).
		WithDetail("max", MaxRomanValue)
}

// IsRomanNumeral reports whether v is a canonical Roman numeral string.
// It never fails for strings; any other type is a type mismatch.
func IsRomanNumeral(v any) (bool, error) {
	s, ok := v.(string)
	if !ok {
		return false, apperrors.TypeMismatch("roman numeral must be a string", v)
	}
	_, valid := parseRoman(s)
	return valid, nil
}

// String returns the canonical numeral.
func (r Roman) String() string {
	return r.numeral
}

// Int returns the integer value.
func (r Roman) Int() int {
	return r.value
}

// IsZero returns true for the zero Roman, which no constructor produces.
func (r Roman) IsZero() bool {
	return r.value == 0
}

// Equals checks if two Roman values have the same magnitude.
func (r Roman) Equals(other Roman) bool {
	return r.value == other.value
}

// Compare compares two Roman values by magnitude.
func (r Roman) Compare(other Roman) int {
	switch {
	case r.value < other.value:
		return -1
	case r.value > other.value:
		return 1
	default:
		return 0
	}
}

// Add adds two Roman values. The sum must not exceed MaxRomanValue.
func (r Roman) Add(other Roman) (Roman, error) {
	return r.apply("+", other, func(a, b int) int { return a + b })
}

// Subtract subtracts another Roman value. The difference must be positive.
func (r Roman) Subtract(other Roman) (Roman, error) {
	return r.apply("-", other, func(a, b int) int { return a - b })
}

// Multiply multiplies two Roman values. The product must not exceed MaxRomanValue.
func (r Roman) Multiply(other Roman) (Roman, error) {
	return r.apply("*", other, func(a, b int) int { return a * b })
}

func (r Roman) apply(op string, other Roman, fn func(a, b int) int) (Roman, error) {
	if r.IsZero() || other.IsZero() {
		return Roman{}, apperrors.Validation("arithmetic on an empty roman numeral").
			WithDetail("operator", op)
	}
	// Operands are at most 3999, so the product cannot overflow int.
	result, err := RomanFromInt(fn(r.value, other.value))
	if err != nil {
		return Roman{}, apperrors.Wrapf(err, "%s %s %s out of range", r, op, other).
			WithDetail("operator", op)
	}
	return result, nil
}

// formatRoman renders n by greedy subtraction over romanSymbols.
func formatRoman(n int) string {
	var b strings.Builder
	for _, sym := range romanSymbols {
		for n >= sym.value {
			b.WriteString(sym.symbol)
			n -= sym.value
		}
	}
	return b.String()
}

// parseRoman consumes s greedily over romanSymbols and accepts it only if
// formatting the total reproduces s exactly.
func parseRoman(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	rest := s
	total := 0
	for _, sym := range romanSymbols {
		for strings.HasPrefix(rest, sym.symbol) {
			total += sym.value
			rest = rest[len(sym.symbol):]
		}
	}
	if rest != "" || total < MinRomanValue || total > MaxRomanValue {
		return 0, false
	}
	if formatRoman(total) != s {
		return 0, false
	}
	return total, true
}
