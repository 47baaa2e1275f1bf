package domain

import (
	"bytes"
	"encoding/json"

	apperrors "github.com/auth-platform/roman/libs/go/src/errors"
	"gopkg.in/yaml.v3"
)

// MarshalJSON implements json.Marshaler. The numeral is encoded as a string.
func (r Roman) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.numeral)
}

// UnmarshalJSON implements json.Unmarshaler.
// Accepts a numeral string or an integer; null, floats and other JSON
// types are rejected with a type mismatch error.
func (r *Roman) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	var (
		parsed Roman
		err    error
	)
	switch v := raw.(type) {
	case string:
		parsed, err = ParseRoman(v)
	case json.Number:
		n, convErr := v.Int64()
		if convErr != nil {
			return apperrors.TypeMismatch("roman numeral JSON number must be an integer", v).
				WithDetail("input", v.String())
		}
		parsed, err = romanFromInt64(n)
	default:
		return apperrors.TypeMismatch("roman numeral JSON must be a string or an integer", raw)
	}
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Roman) MarshalText() ([]byte, error) {
	return []byte(r.numeral), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Roman) UnmarshalText(data []byte) error {
	parsed, err := ParseRoman(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Roman) MarshalYAML() (any, error) {
	return r.numeral, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Accepts a !!str numeral or an !!int magnitude.
func (r *Roman) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return apperrors.TypeMismatch("roman numeral YAML must be a scalar", node).
			WithDetail("kind", int(node.Kind))
	}

	var (
		parsed Roman
		err    error
	)
	switch node.ShortTag() {
	case "!!str":
		parsed, err = ParseRoman(node.Value)
	case "!!int":
		var n int64
		if err := node.Decode(&n); err != nil {
			return apperrors.Validation("roman numeral YAML integer out of range").
				WithDetail("input", node.Value).
				WithCause(err)
		}
		parsed, err = romanFromInt64(n)
	default:
		return apperrors.TypeMismatch("roman numeral YAML must be a string or an integer", node).
			WithDetail("tag", node.ShortTag())
	}
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
