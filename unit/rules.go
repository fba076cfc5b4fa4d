package unit

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/bemasher/engunits/si"
)

// The rule registry holds declarative facts of the form output = lhs ×
// rhs, keyed by unit symbol. Each registered product implies two
// quotient facts: lhs = output / rhs and rhs = output / lhs. The
// registry is populated once at init and never mutated afterward, so
// lookups need no locking.

type pair struct {
	a, b string
}

var (
	ruleMutex sync.Mutex
	products  = make(map[pair]string)
	quotients = make(map[pair]string)
)

// Register records output = lhs × rhs along with its two quotient
// inverses. Conflicting facts panic; re-registering an identical fact is
// tolerated so self-referential rules like m² = m × m stay legal.
func Register(output, lhs, rhs string) {
	ruleMutex.Lock()
	defer ruleMutex.Unlock()

	insert(products, pair{lhs, rhs}, output)
	insert(quotients, pair{output, rhs}, lhs)
	insert(quotients, pair{output, lhs}, rhs)
}

func insert(m map[pair]string, key pair, val string) {
	if prev, dup := m[key]; dup && prev != val {
		panic(fmt.Sprintf("unit: conflicting rule for (%s, %s): %s vs %s", key.a, key.b, prev, val))
	}
	m[key] = val
}

// Product resolves the output symbol of lhs × rhs, in that operand order.
func Product(lhs, rhs string) (string, error) {
	if out, ok := products[pair{lhs, rhs}]; ok {
		return out, nil
	}
	return "", errors.Wrapf(ErrUnsupportedDimension, "%s × %s", lhs, rhs)
}

// Quotient resolves the output symbol of output / divisor.
func Quotient(output, divisor string) (string, error) {
	if out, ok := quotients[pair{output, divisor}]; ok {
		return out, nil
	}
	return "", errors.Wrapf(ErrUnsupportedDimension, "%s / %s", output, divisor)
}

func init() {
	Register(symbol[Voltage](), symbol[Resistance](), symbol[Current]())    // V = R × I
	Register(symbol[Power](), symbol[Voltage](), symbol[Current]())         // P = V × I
	Register(symbol[Energy](), symbol[Power](), symbol[Time]())             // E = P × t
	Register(symbol[Charge](), symbol[Capacitance](), symbol[Voltage]())    // Q = C × V
	Register(symbol[Charge](), symbol[Current](), symbol[Time]())           // Q = I × t
	Register(symbol[Current](), symbol[Charge](), symbol[Time]())           // direct I = Q / t fact
	Register(symbol[Length](), symbol[Velocity](), symbol[Time]())          // s = v × t
	Register(symbol[Power](), symbol[Force](), symbol[Velocity]())          // P = F × v
	Register(symbol[Energy](), symbol[Force](), symbol[Length]())           // E = F × d
	Register(symbol[Force](), symbol[Pressure](), symbol[Area]())           // F = p × A
	Register(symbol[MagneticFlux](), symbol[FluxDensity](), symbol[Area]()) // Φ = B × A
	Register(symbol[MagneticFlux](), symbol[Voltage](), symbol[Time]())     // Φ = V × t
	Register(symbol[Area](), symbol[Length](), symbol[Length]())            // A = l × l

	if err := validate(); err != nil {
		panic(err)
	}
}

// validate checks the registry is closed under inverses: every product
// fact must resolve both of its derived quotient facts.
func validate() error {
	for key, out := range products {
		if got, err := Quotient(out, key.b); err != nil || got != key.a {
			return fmt.Errorf("unit: rule %s = %s × %s missing inverse %s / %s", out, key.a, key.b, out, key.b)
		}
		if got, err := Quotient(out, key.a); err != nil || got != key.b {
			return fmt.Errorf("unit: rule %s = %s × %s missing inverse %s / %s", out, key.a, key.b, out, key.a)
		}
	}
	return nil
}

// Mul multiplies two quantities of different dimensions. The output tag O
// is checked against the registry: if lhs × rhs is unregistered or does
// not yield O, the result is ErrUnsupportedDimension.
func Mul[O, L, R Unit](lhs Quantity[L], rhs Quantity[R]) (Quantity[O], error) {
	out, err := Product(symbol[L](), symbol[R]())
	if err != nil {
		return Quantity[O]{}, err
	}
	if out != symbol[O]() {
		return Quantity[O]{}, errors.Wrapf(ErrUnsupportedDimension,
			"%s × %s yields %s, not %s", symbol[L](), symbol[R](), out, symbol[O]())
	}
	return Quantity[O]{lhs.n.Mul(rhs.n)}, nil
}

// Div divides two quantities of different dimensions under the same
// registry check. Same-tag division is Ratio, not Div.
func Div[O, N, D Unit](num Quantity[N], den Quantity[D]) (Quantity[O], error) {
	out, err := Quotient(symbol[N](), symbol[D]())
	if err != nil {
		return Quantity[O]{}, err
	}
	if out != symbol[O]() {
		return Quantity[O]{}, errors.Wrapf(ErrUnsupportedDimension,
			"%s / %s yields %s, not %s", symbol[N](), symbol[D](), out, symbol[O]())
	}
	return Quantity[O]{num.n.Div(den.n)}, nil
}

// Ratio divides two quantities of the same dimension, yielding a
// dimensionless scaled number. This case lives outside the registry.
func Ratio[U Unit](a, b Quantity[U]) si.Number {
	return a.Value().Div(b.Value())
}

// ToPeriod converts a frequency to its period, t = 1/f.
func ToPeriod(f Quantity[Frequency]) Quantity[Time] {
	return Quantity[Time]{si.FromFloat(1 / f.Float())}
}

// ToFrequency converts a period to its frequency, f = 1/t.
func ToFrequency(t Quantity[Time]) Quantity[Frequency] {
	return Quantity[Frequency]{si.FromFloat(1 / t.Float())}
}
