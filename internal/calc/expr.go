// Package calc evaluates arithmetic expressions over Roman numerals.
//
// Operands are canonical numerals or decimal integers. Multiplication binds
// tighter than addition and subtraction; operators of equal precedence
// associate to the left. Every intermediate value must itself be a valid
// Roman numeral.
package calc

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/auth-platform/roman/libs/go/src/domain"
	apperrors "github.com/auth-platform/roman/libs/go/src/errors"
	"github.com/auth-platform/roman/libs/go/src/functional"
)

type binaryOp func(a, b domain.Roman) (domain.Roman, error)

var (
	additive = map[string]binaryOp{
		"+": domain.Roman.Add,
		"-": domain.Roman.Subtract,
	}
	multiplicative = map[string]binaryOp{
		"*": domain.Roman.Multiply,
		"x": domain.Roman.Multiply,
	}
)

// Tokenize splits an expression into operands and operators.
// "+", "-" and "*" are tokens on their own even without surrounding spaces.
func Tokenize(expr string) []string {
	var (
		tokens []string
		cur    strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range expr {
		switch {
		case unicode.IsSpace(r):
			flush()
		case r == '+' || r == '-' || r == '*':
			flush()
			tokens = append(tokens, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// Evaluate tokenizes and evaluates expr.
func Evaluate(expr string) (domain.Roman, error) {
	return Eval(Tokenize(expr))
}

// Eval evaluates a tokenized expression.
func Eval(tokens []string) (domain.Roman, error) {
	if len(tokens) == 0 {
		return domain.Roman{}, apperrors.BadRequest("empty expression")
	}
	p := &parser{tokens: tokens}
	result := p.expr()
	if result.IsOk() && p.pos < len(p.tokens) {
		return domain.Roman{}, p.unexpected("token")
	}
	return result.Get()
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) expr() functional.Result[domain.Roman] {
	return p.chain(p.term, additive)
}

func (p *parser) term() functional.Result[domain.Roman] {
	return p.chain(p.operand, multiplicative)
}

// chain folds next() results left to right while the current token is one of ops.
func (p *parser) chain(next func() functional.Result[domain.Roman], ops map[string]binaryOp) functional.Result[domain.Roman] {
	acc := next()
	for acc.IsOk() && p.pos < len(p.tokens) {
		op, ok := ops[p.tokens[p.pos]]
		if !ok {
			break
		}
		symbol := p.tokens[p.pos]
		p.pos++
		rhs := next()
		acc = functional.FlatMapResult(acc, func(lhs domain.Roman) functional.Result[domain.Roman] {
			return functional.FlatMapResult(rhs, func(r domain.Roman) functional.Result[domain.Roman] {
				res, err := op(lhs, r)
				if err != nil {
					return functional.Err[domain.Roman](apperrors.Wrapf(err, "evaluating %s %s %s", lhs, symbol, r))
				}
				return functional.Ok(res)
			})
		})
	}
	return acc
}

func (p *parser) operand() functional.Result[domain.Roman] {
	if p.pos >= len(p.tokens) {
		return functional.Err[domain.Roman](p.unexpected("end of expression"))
	}
	tok := p.tokens[p.pos]
	if _, isOp := additive[tok]; isOp {
		return functional.Err[domain.Roman](p.unexpected("operator"))
	}
	if _, isOp := multiplicative[tok]; isOp {
		return functional.Err[domain.Roman](p.unexpected("operator"))
	}
	p.pos++
	return functional.TryFunc(parseOperand(tok))
}

// parseOperand accepts a decimal integer or a canonical numeral.
func parseOperand(tok string) (domain.Roman, error) {
	if isDecimal(tok) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return domain.Roman{}, apperrors.Validation("roman numeral value out of range").
				WithDetail("input", tok).
				WithCause(err)
		}
		return domain.RomanFromInt(n)
	}
	return domain.ParseRoman(tok)
}

func isDecimal(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func (p *parser) unexpected(what string) *apperrors.AppError {
	err := apperrors.BadRequest("unexpected "+what).WithDetail("position", p.pos)
	if p.pos < len(p.tokens) {
		err = err.WithDetail("token", p.tokens[p.pos])
	}
	return err
}
