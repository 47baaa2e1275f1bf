package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/auth-platform/roman/libs/go/src/codec"
	"github.com/auth-platform/roman/libs/go/src/domain"
	apperrors "github.com/auth-platform/roman/libs/go/src/errors"
)

// numeralResult is the structured output of parse, format and calc.
type numeralResult struct {
	Expression string       `json:"expression,omitempty" yaml:"expression,omitempty"`
	Numeral    domain.Roman `json:"numeral" yaml:"numeral"`
	Value      int          `json:"value" yaml:"value"`
}

func newNumeralResult(r domain.Roman) numeralResult {
	return numeralResult{Numeral: r, Value: r.Int()}
}

// validationResult is the structured output of validate.
type validationResult struct {
	Input string `json:"input" yaml:"input"`
	Valid bool   `json:"valid" yaml:"valid"`
	Value int    `json:"value,omitempty" yaml:"value,omitempty"`
}

// render writes v in the configured structured format, or text otherwise.
func (a *app) render(w io.Writer, v any, text string) error {
	f := a.format()
	if f == formatText {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	return encode(w, f, v)
}

func encode(w io.Writer, format string, v any) error {
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	data, err := c.Encode(v)
	if err != nil {
		return apperrors.Internal("encoding output").WithDetail("format", format).WithCause(err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}
