// Package codec provides unified encoding/decoding with multiple formats.
package codec

import (
	"bytes"
	"encoding/json"
	"strings"

	apperrors "github.com/auth-platform/roman/libs/go/src/errors"
	"github.com/auth-platform/roman/libs/go/src/functional"
	"gopkg.in/yaml.v3"
)

// Supported format names.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Codec provides encoding/decoding operations.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// TypedCodec provides generic type-safe encoding/decoding operations.
type TypedCodec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// ForFormat returns the codec registered for a format name.
// "yml" is accepted as an alias of "yaml".
func ForFormat(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case FormatJSON:
		return NewJSONCodec().WithPretty(), nil
	case FormatYAML, "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, apperrors.BadRequest("unsupported codec format").WithDetail("format", name)
	}
}

// JSONCodec encodes/decodes using JSON.
type JSONCodec struct {
	Pretty bool
	Indent string
}

// NewJSONCodec creates a new JSON codec with default options.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// Encode encodes value to JSON.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Decode decodes JSON to value.
func (c *JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// WithPretty enables pretty printing.
func (c *JSONCodec) WithPretty() *JSONCodec {
	c.Pretty = true
	return c
}

// WithIndent sets the indentation string.
func (c *JSONCodec) WithIndent(indent string) *JSONCodec {
	c.Indent = indent
	return c
}

// TypedJSONCodec provides type-safe JSON encoding/decoding.
type TypedJSONCodec[T any] struct {
	Pretty bool
	Indent string
}

// NewTypedJSONCodec creates a new type-safe JSON codec.
func NewTypedJSONCodec[T any]() *TypedJSONCodec[T] {
	return &TypedJSONCodec[T]{Indent: "  "}
}

// Encode encodes value to JSON.
func (c *TypedJSONCodec[T]) Encode(v T) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Decode decodes JSON to value.
func (c *TypedJSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

// Encode encodes value to YAML.
func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	return encodeYAML(v, c.Indent)
}

// Decode decodes YAML to value.
func (c *YAMLCodec) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// WithIndent sets the indentation level.
func (c *YAMLCodec) WithIndent(indent int) *YAMLCodec {
	c.Indent = indent
	return c
}

// TypedYAMLCodec provides type-safe YAML encoding/decoding.
type TypedYAMLCodec[T any] struct {
	Indent int
}

// NewTypedYAMLCodec creates a new type-safe YAML codec.
func NewTypedYAMLCodec[T any]() *TypedYAMLCodec[T] {
	return &TypedYAMLCodec[T]{Indent: 2}
}

// Encode encodes value to YAML.
func (c *TypedYAMLCodec[T]) Encode(v T) ([]byte, error) {
	return encodeYAML(v, c.Indent)
}

// Decode decodes YAML to value.
func (c *TypedYAMLCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := yaml.Unmarshal(data, &v)
	return v, err
}

func encodeYAML(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeResult encodes and returns Result for functional error handling.
func EncodeResult[T any](codec TypedCodec[T], v T) functional.Result[[]byte] {
	return functional.TryFunc(codec.Encode(v))
}

// DecodeResult decodes and returns Result for functional error handling.
func DecodeResult[T any](codec TypedCodec[T], data []byte) functional.Result[T] {
	return functional.TryFunc(codec.Decode(data))
}
