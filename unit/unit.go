// Package unit layers physical dimensions on top of si.Number. Each
// dimension is a zero-size tag type, and Quantity carries its tag as a
// type parameter so that mixing incompatible units is a compile error
// rather than a runtime surprise. Cross-dimension multiplication and
// division go through a rule registry populated at init.
package unit

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/bemasher/engunits/si"
)

var (
	// ErrUnitMismatch is wrapped when parsed text does not end with the
	// expected unit symbol.
	ErrUnitMismatch = errors.New("unit mismatch")

	// ErrUnsupportedDimension is wrapped when no registered rule covers a
	// multiply or divide between two unit tags.
	ErrUnsupportedDimension = errors.New("unsupported dimension")
)

// A Unit is a zero-size dimension tag with a canonical display symbol.
// The catalog in units.go is the closed set of implementations.
type Unit interface {
	comparable
	Symbol() string
}

// symbol recovers the display symbol for a tag type.
func symbol[U Unit]() string {
	var u U
	return u.Symbol()
}

// A Quantity pairs a scaled number with one dimension tag. The tag lives
// only in the type, so a Quantity is exactly one si.Number wide and the
// tag can never change over the value's lifetime.
type Quantity[U Unit] struct {
	n si.Number
}

// New wraps a scaled number under the tag U without normalizing it.
func New[U Unit](n si.Number) Quantity[U] {
	return Quantity[U]{n}
}

// Of wraps a bare float with prefix None under the tag U.
func Of[U Unit](f float64) Quantity[U] {
	return Quantity[U]{si.From(f)}
}

// Value returns the wrapped scaled number.
func (q Quantity[U]) Value() si.Number {
	return q.n
}

// Float returns the absolute numeric value.
func (q Quantity[U]) Float() float64 {
	return q.n.Float()
}

func (q Quantity[U]) IsZero() bool {
	return q.n.IsZero()
}

// Add and Sub are only defined between quantities sharing the same tag;
// the result keeps the tag and renormalizes through si arithmetic.

func (q Quantity[U]) Add(rhs Quantity[U]) Quantity[U] {
	return Quantity[U]{q.n.Add(rhs.n)}
}

func (q Quantity[U]) Sub(rhs Quantity[U]) Quantity[U] {
	return Quantity[U]{q.n.Sub(rhs.n)}
}

// Rem returns the remainder of two same-tag quantities.
func (q Quantity[U]) Rem(rhs Quantity[U]) Quantity[U] {
	return Quantity[U]{q.n.Mod(rhs.n)}
}

// MulScalar scales the magnitude by a dimensionless number, keeping the tag.
func (q Quantity[U]) MulScalar(n si.Number) Quantity[U] {
	return Quantity[U]{q.n.Mul(n)}
}

// DivScalar divides the magnitude by a dimensionless number, keeping the tag.
func (q Quantity[U]) DivScalar(n si.Number) Quantity[U] {
	return Quantity[U]{q.n.Div(n)}
}

// Scale scales the magnitude by a bare float, keeping the tag.
func (q Quantity[U]) Scale(f float64) Quantity[U] {
	return Quantity[U]{q.n.MulFloat(f)}
}

func (q Quantity[U]) Neg() Quantity[U] {
	return Quantity[U]{q.n.Neg()}
}

func (q Quantity[U]) Abs() Quantity[U] {
	return Quantity[U]{q.n.Abs()}
}

func (q Quantity[U]) Ceil() Quantity[U] {
	return Quantity[U]{q.n.Ceil()}
}

func (q Quantity[U]) Floor() Quantity[U] {
	return Quantity[U]{q.n.Floor()}
}

func (q Quantity[U]) Round() Quantity[U] {
	return Quantity[U]{q.n.Round()}
}

// Comparison delegates to the wrapped number's value-based ordering.
// Comparing quantities with different tags does not compile.

func (q Quantity[U]) Cmp(rhs Quantity[U]) int {
	return q.n.Cmp(rhs.n)
}

func (q Quantity[U]) Less(rhs Quantity[U]) bool {
	return q.n.Less(rhs.n)
}

func (q Quantity[U]) Equals(rhs Quantity[U]) bool {
	return q.n.Equals(rhs.n)
}

// String formats the scaled number followed by the tag's symbol, "10KΩ".
func (q Quantity[U]) String() string {
	return q.n.String() + symbol[U]()
}

// Format renders the mantissa with prec fractional digits followed by the
// prefix and unit symbols.
func (q Quantity[U]) Format(prec int) string {
	return q.n.Format(prec) + symbol[U]()
}

// Parse reads a quantity of the form <float><prefix?><symbol>. The
// trimmed input must end with exactly the tag's symbol; anything else is
// an ErrUnitMismatch naming the expected symbol.
func Parse[U Unit](s string) (Quantity[U], error) {
	s = strings.TrimSpace(s)
	sym := symbol[U]()
	if !strings.HasSuffix(s, sym) {
		return Quantity[U]{}, errors.Wrapf(ErrUnitMismatch, "expect end with %q", sym)
	}

	n, err := si.Parse(s[:len(s)-len(sym)])
	if err != nil {
		return Quantity[U]{}, err
	}

	return Quantity[U]{n}, nil
}

// MarshalJSON encodes the quantity as its quoted text form, e.g. "2.2KΩ".
func (q Quantity[U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// UnmarshalJSON decodes a quoted text form, enforcing the tag's symbol.
func (q *Quantity[U]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := Parse[U](s)
	if err != nil {
		return err
	}

	*q = parsed
	return nil
}
