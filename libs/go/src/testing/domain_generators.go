package testing

import (
	"fmt"
	"strings"

	"pgregory.net/rapid"
)

// Per-digit numerals, indexed by digit. Kept independent from the domain
// package so generated numerals can serve as an oracle.
var (
	thousandsNumerals = []string{"", "M", "MM", "MMM"}
	hundredsNumerals  = []string{"", "C", "CC", "CCC", "CD", "D", "DC", "DCC", "DCCC", "CM"}
	tensNumerals      = []string{"", "X", "XX", "XXX", "XL", "L", "LX", "LXX", "LXXX", "XC"}
	onesNumerals      = []string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}
)

// RomanPair is a magnitude and its canonical numeral.
type RomanPair struct {
	Value   int
	Numeral string
}

// CanonicalNumeral returns the canonical numeral for n in [1, 3999].
func CanonicalNumeral(n int) string {
	return thousandsNumerals[n/1000] +
		hundredsNumerals[n/100%10] +
		tensNumerals[n/10%10] +
		onesNumerals[n%10]
}

// RomanValueGen generates magnitudes in [1, 3999].
func RomanValueGen() *rapid.Generator[int] {
	return rapid.IntRange(1, 3999)
}

// RomanPairGen generates magnitudes together with their canonical numerals.
func RomanPairGen() *rapid.Generator[RomanPair] {
	return rapid.Custom(func(t *rapid.T) RomanPair {
		n := RomanValueGen().Draw(t, "value")
		return RomanPair{Value: n, Numeral: CanonicalNumeral(n)}
	})
}

// RomanNumeralGen generates canonical numerals.
func RomanNumeralGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		return RomanPairGen().Draw(t, "pair").Numeral
	})
}

// OutOfRangeIntGen generates integers outside [1, 3999].
func OutOfRangeIntGen() *rapid.Generator[int] {
	return rapid.OneOf(
		rapid.IntRange(-1000000, 0),
		rapid.IntRange(4000, 1000000),
	)
}

// InvalidNumeralGen generates strings that are never canonical numerals.
func InvalidNumeralGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		numeral := RomanNumeralGen().Draw(t, "numeral")
		switch rapid.IntRange(0, 6).Draw(t, "mutation") {
		case 0:
			// Four thousands can never be canonical.
			return "MMMM" + numeral
		case 1:
			return strings.ToLower(numeral)
		case 2:
			return " " + numeral
		case 3:
			return numeral + " "
		case 4:
			return fmt.Sprintf("%s%d", numeral, rapid.IntRange(0, 9).Draw(t, "digit"))
		case 5:
			// A smaller symbol ahead of M is never valid except in CM.
			return rapid.SampledFrom([]string{"I", "V", "X", "L", "D"}).Draw(t, "prefix") + "M" + numeral
		default:
			return rapid.SampledFrom(KnownInvalidNumerals).Draw(t, "known")
		}
	})
}

// KnownInvalidNumerals are hand-picked malformed numerals.
var KnownInvalidNumerals = []string{
	"", "IIII", "IIX", "VIV", "IVI", "B", "MMMM", "0", "1", "IM",
	"CIVIL", "DIM", "VIXI", "XIVI", "VLIV", "CIL", "MIC",
	"VV", "LL", "DD", "XXXX", "CCCC", "IXI", "XCX", "CMC", "IIV",
}
