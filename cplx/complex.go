// Package cplx provides a complex number whose real and imaginary parts
// are si scaled numbers, so impedance-style math keeps its prefixes.
package cplx

import (
	"golang.org/x/xerrors"

	"github.com/bemasher/engunits/si"
)

// ErrDivisionByZero is returned when dividing by a complex number with
// zero magnitude. Unlike the scalar path, which propagates Inf/NaN, the
// complex path fails loudly: a zero denominator here poisons both parts.
var ErrDivisionByZero = xerrors.New("division by zero")

type Complex struct {
	Re si.Number
	Im si.Number
}

func New(re, im si.Number) Complex {
	return Complex{re, im}
}

// FromFloats wraps two bare floats with prefix None.
func FromFloats(re, im float64) Complex {
	return Complex{si.From(re), si.From(im)}
}

// Parts returns the real and imaginary components.
func (c Complex) Parts() (si.Number, si.Number) {
	return c.Re, c.Im
}

func (c Complex) Conjugate() Complex {
	return Complex{c.Re, c.Im.Neg()}
}

// NormSqr returns |c|², re² + im².
func (c Complex) NormSqr() si.Number {
	return c.Re.Mul(c.Re).Add(c.Im.Mul(c.Im))
}

func (c Complex) Add(rhs Complex) Complex {
	return Complex{c.Re.Add(rhs.Re), c.Im.Add(rhs.Im)}
}

func (c Complex) Sub(rhs Complex) Complex {
	return Complex{c.Re.Sub(rhs.Re), c.Im.Sub(rhs.Im)}
}

// Mul expands (a + bj)(c + dj) = (ac - bd) + (ad + bc)j.
func (c Complex) Mul(rhs Complex) Complex {
	a, b := c.Parts()
	d, e := rhs.Parts()
	return Complex{
		a.Mul(d).Sub(b.Mul(e)),
		a.Mul(e).Add(b.Mul(d)),
	}
}

// Div multiplies by the conjugate over the squared magnitude. A zero
// denominator returns ErrDivisionByZero rather than propagating NaN.
func (c Complex) Div(rhs Complex) (Complex, error) {
	a, b := c.Parts()
	d, e := rhs.Parts()

	denom := rhs.NormSqr()
	if denom.IsZero() {
		return Complex{}, ErrDivisionByZero
	}

	re := a.Mul(d).Add(b.Mul(e)).Div(denom)
	im := b.Mul(d).Sub(a.Mul(e)).Div(denom)
	return Complex{re, im}, nil
}

// Equals reports value equality of both parts.
func (c Complex) Equals(rhs Complex) bool {
	return c.Re.Equals(rhs.Re) && c.Im.Equals(rhs.Im)
}

// String renders "a + bj", or "a - bj" for negative imaginary parts.
func (c Complex) String() string {
	return c.Format(-1)
}

func (c Complex) Format(prec int) string {
	if c.Im.Float() >= 0 {
		return c.Re.Format(prec) + " + " + c.Im.Format(prec) + "j"
	}
	return c.Re.Format(prec) + " - " + c.Im.Neg().Format(prec) + "j"
}
