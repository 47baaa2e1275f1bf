// Package domain provides domain primitives with built-in validation.
//
// Domain primitives are value objects that encapsulate validation rules
// and ensure that invalid values cannot be created. This package provides
// Roman, a Roman numeral holding a magnitude in 1..3999 together with its
// canonical numeral.
//
// Only the canonical form of a numeral is accepted: "IV" parses, while
// "IIII", "iv" and " IV" do not. Arithmetic returns a new Roman or a
// validation error when the result falls outside the representable range.
//
// Roman implements json, text and yaml marshalling. Decoding accepts either
// a numeral string or an integer magnitude. Validation errors are returned
// during construction, ensuring that once created, a domain primitive is
// always valid.
//
// Example usage:
//
//	r, err := domain.NewRoman("MCMLXXXVII")
//	if err != nil {
//	    // Handle validation error
//	}
//
//	sum, err := r.Add(domain.MustNewRoman(12)) // MCMXCIX
//	fmt.Println(sum.Int())                     // 1999
package domain
