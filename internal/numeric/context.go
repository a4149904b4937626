package numeric

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// DefaultPrecision is the number of significant digits used by presets.
	DefaultPrecision int32 = 50
	// MinPrecision is the smallest precision a Context accepts.
	MinPrecision int32 = 15
)

var (
	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrBadModulus is returned by FloorMod for a non-positive modulus.
	ErrBadModulus = errors.New("modulus must be positive")
)

// Context rounds decimal results to a fixed number of significant digits.
type Context struct {
	Precision int32
}

// New returns a Context with the given precision.
func New(precision int32) (Context, error) {
	if precision < MinPrecision {
		return Context{}, fmt.Errorf("precision %d below minimum %d", precision, MinPrecision)
	}
	return Context{Precision: precision}, nil
}

// Default returns a Context with DefaultPrecision.
func Default() Context { return Context{Precision: DefaultPrecision} }

// Round rounds d to c.Precision significant digits (half away from zero).
func (c Context) Round(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() || c.Precision <= 0 {
		return d
	}
	// Digits left of the decimal point; negative for values below 0.1.
	intDigits := digits(d) + d.Exponent()
	places := c.Precision - intDigits
	if -d.Exponent() <= places {
		return d
	}
	return d.Round(places)
}

// Mul multiplies all factors and rounds the product once.
func (c Context) Mul(a decimal.Decimal, rest ...decimal.Decimal) decimal.Decimal {
	out := a
	for _, f := range rest {
		out = out.Mul(f)
	}
	return c.Round(out)
}

// Div divides a by b. shopspring's package-level DivisionPrecision is not
// consulted: the quotient is computed with twice the context precision in
// decimal places and then rounded to significant digits.
func (c Context) Div(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return c.Round(a.DivRound(b, 2*c.Precision)), nil
}

// Reciprocal returns 1/d.
func (c Context) Reciprocal(d decimal.Decimal) (decimal.Decimal, error) {
	return c.Div(decimal.NewFromInt(1), d)
}

// FloorMod returns floor(d) mod m using a mathematical modulo, so the result
// is always in [0, m).
func (c Context) FloorMod(d decimal.Decimal, m int64) (int64, error) {
	if m <= 0 {
		return 0, ErrBadModulus
	}
	mod := decimal.NewFromInt(m)
	r := d.Floor().Mod(mod)
	if r.IsNegative() {
		r = r.Add(mod)
	}
	return r.IntPart(), nil
}

// digits counts the decimal digits of d's coefficient.
func digits(d decimal.Decimal) int32 {
	coef := d.Coefficient()
	return int32(len(coef.Abs(coef).String()))
}
