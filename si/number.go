// Package si implements scaled floating point numbers: a mantissa paired
// with an SI magnitude prefix, stored as the pair rather than the product
// so that values like "3.3k" survive formatting round trips exactly.
package si

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// ErrInvalidNumericLiteral is wrapped by Parse when the numeric head of
// an input is not a valid floating point literal.
var ErrInvalidNumericLiteral = xerrors.New("invalid numeric literal")

// A Number represents Value × Prefix.Factor(). The mantissa is not forced
// into [1, 1000): Number{1500, None} is legal. Normalization happens only
// through FromFloat, which all arithmetic results pass through.
type Number struct {
	Value  float64
	Prefix Prefix
}

// New constructs a Number without normalizing.
func New(value float64, prefix Prefix) Number {
	return Number{value, prefix}
}

// From wraps a bare float with prefix None, unnormalized.
func From(f float64) Number {
	return Number{f, None}
}

// FromFloat normalizes an absolute value: the first prefix in descending
// factor order whose factor does not exceed |f| is chosen, so 1000 picks
// Kilo while 999.999 stays at None. Values below the Pico threshold,
// including zero, keep prefix None.
func FromFloat(f float64) Number {
	abs := math.Abs(f)
	for _, e := range factorTable {
		if abs >= e.factor {
			return Number{f / e.factor, e.prefix}
		}
	}
	return Number{f, None}
}

// Zero returns the canonical zero value.
func Zero() Number {
	return Number{0, None}
}

func (n Number) IsZero() bool {
	return n.Value == 0
}

// Float returns the absolute numeric value, mantissa × factor.
func (n Number) Float() float64 {
	return n.Value * n.Prefix.Factor()
}

// Parse reads a scaled number of the form <float-literal><prefix-symbol?>.
// Prefix symbols are tried against the tail in the fixed priority order
// G, M, K, k, m, u, n, p; if none match, the whole trimmed input must be
// a float literal and the prefix is None.
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(s)
	for _, e := range parseTable {
		if strings.HasSuffix(s, e.symbol) {
			head := strings.TrimSpace(s[:len(s)-len(e.symbol)])
			v, err := strconv.ParseFloat(head, 64)
			if err != nil {
				return Number{}, xerrors.Errorf("parse number %q: %w", head, ErrInvalidNumericLiteral)
			}
			return Number{v, e.prefix}, nil
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, xerrors.Errorf("parse number %q: %w", s, ErrInvalidNumericLiteral)
	}
	return Number{v, None}, nil
}

// String formats the mantissa with the shortest exact representation
// followed by the prefix symbol.
func (n Number) String() string {
	return n.Format(-1)
}

// Format renders the mantissa with prec fractional digits, or the default
// representation when prec is negative, followed by the prefix symbol.
func (n Number) Format(prec int) string {
	return strconv.FormatFloat(n.Value, 'f', prec, 64) + n.Prefix.Symbol()
}

// Arithmetic converts both operands to their absolute values, applies the
// operator, and renormalizes. The result picks its own prefix regardless
// of the operands' scales.

func (n Number) Add(rhs Number) Number {
	return FromFloat(n.Float() + rhs.Float())
}

func (n Number) Sub(rhs Number) Number {
	return FromFloat(n.Float() - rhs.Float())
}

func (n Number) Mul(rhs Number) Number {
	return FromFloat(n.Float() * rhs.Float())
}

// Div renormalizes the quotient. Division by zero is not guarded here and
// propagates Inf/NaN per floating point semantics.
func (n Number) Div(rhs Number) Number {
	return FromFloat(n.Float() / rhs.Float())
}

func (n Number) AddFloat(f float64) Number {
	return FromFloat(n.Float() + f)
}

func (n Number) SubFloat(f float64) Number {
	return FromFloat(n.Float() - f)
}

func (n Number) MulFloat(f float64) Number {
	return FromFloat(n.Float() * f)
}

func (n Number) DivFloat(f float64) Number {
	return FromFloat(n.Float() / f)
}

// Mod returns the normalized remainder of the absolute values.
func (n Number) Mod(rhs Number) Number {
	return FromFloat(math.Mod(n.Float(), rhs.Float()))
}

// Neg flips the mantissa's sign, keeping the prefix.
func (n Number) Neg() Number {
	return Number{-n.Value, n.Prefix}
}

// Abs, Ceil, Floor and Round operate on the mantissa and keep the prefix.

func (n Number) Abs() Number {
	return Number{math.Abs(n.Value), n.Prefix}
}

func (n Number) Ceil() Number {
	return Number{math.Ceil(n.Value), n.Prefix}
}

func (n Number) Floor() Number {
	return Number{math.Floor(n.Value), n.Prefix}
}

func (n Number) Round() Number {
	return Number{math.Round(n.Value), n.Prefix}
}

// Cmp orders by absolute numeric value: two Numbers with different
// representations but equal absolute value compare equal. Structural
// equality via == remains available as an exact-representation check.
func (n Number) Cmp(rhs Number) int {
	a, b := n.Float(), rhs.Float()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (n Number) Less(rhs Number) bool {
	return n.Float() < rhs.Float()
}

// Equals reports value equality, the canonical equality for Numbers.
func (n Number) Equals(rhs Number) bool {
	return n.Float() == rhs.Float()
}

// MarshalJSON encodes the Number as its quoted text form, e.g. "3.3K".
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON decodes a quoted text form via Parse. Malformed input
// surfaces ErrInvalidNumericLiteral, never a silent zero.
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*n = parsed
	return nil
}
