package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/auth-platform/roman/internal/calc"
	"github.com/auth-platform/roman/libs/go/src/domain"
	apperrors "github.com/auth-platform/roman/libs/go/src/errors"
)

// exactArgs is cobra.ExactArgs with a usage error code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return apperrors.Newf(apperrors.ErrCodeBadRequest, "%s accepts %d argument(s), received %d", cmd.Name(), n, len(args)).
				WithDetail("usage", cmd.UseLine())
		}
		return nil
	}
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <numeral>",
		Short:   "Print the integer value of a Roman numeral",
		Example: "  roman parse MMMCMXCIX",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := domain.ParseRoman(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("parsed numeral", "numeral", r.String(), "value", r.Int())
			return a.render(cmd.OutOrStdout(), newNumeralResult(r), strconv.Itoa(r.Int()))
		},
	}
}

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "format <integer>",
		Short:   "Print the canonical Roman numeral for an integer",
		Example: "  roman format 1987",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInteger(args[0])
			if err != nil {
				return err
			}
			r, err := domain.RomanFromInt(n)
			if err != nil {
				return err
			}
			a.logger.Debug("formatted integer", "value", n, "numeral", r.String())
			return a.render(cmd.OutOrStdout(), newNumeralResult(r), r.String())
		},
	}
}

// parseInteger converts a decimal argument. Overflowing integers are range
// errors; anything else that is not an integer is a type mismatch.
func parseInteger(s string) (int, error) {
	n, err := strconv.Atoi(s)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, strconv.ErrRange):
		return 0, apperrors.Validation("roman numeral value out of range").
			WithDetail("input", s).
			WithDetail("min", domain.MinRomanValue).
			WithDetail("max", domain.MaxRomanValue)
	default:
		return 0, apperrors.New(apperrors.ErrCodeTypeMismatch, "argument is not an integer").
			WithDetail("input", s)
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <numeral>",
		Short: "Report whether a string is a canonical Roman numeral",
		Long: `validate prints true or false and exits with status 1 when the
argument is not a canonical Roman numeral.`,
		Example: "  roman validate XIV",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := domain.IsRomanNumeral(args[0])
			if err != nil {
				return err
			}
			res := validationResult{Input: args[0], Valid: ok}
			if ok {
				res.Value = domain.MustNewRoman(args[0]).Int()
			} else {
				a.exitCode = apperrors.Validation("invalid roman numeral").ExitCode()
			}
			a.logger.Debug("validated numeral", "input", args[0], "valid", ok)
			return a.render(cmd.OutOrStdout(), res, strconv.FormatBool(ok))
		},
	}
}

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate arithmetic over Roman numerals",
		Long: `calc evaluates +, - and * (also written x) over canonical numerals or
decimal integers. Multiplication binds tighter than addition and
subtraction. Every intermediate result must lie in 1..3999.`,
		Example: `  roman calc "MMMCMLXXXVII + XII"
  roman calc XIX x XII`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			r, err := calc.Evaluate(expr)
			if err != nil {
				return apperrors.Wrap(err, "evaluating expression").WithDetail("expression", expr)
			}
			a.logger.Debug("evaluated expression", "expression", expr, "result", r.String())
			res := newNumeralResult(r)
			res.Expression = expr
			return a.render(cmd.OutOrStdout(), res, r.String())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "roman %s\n", version)
			return err
		},
	}
}
