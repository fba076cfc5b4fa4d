package unit

import (
	"math"
	"testing"

	"golang.org/x/xerrors"

	"github.com/bemasher/engunits/si"
)

func TestRegistryClosed(t *testing.T) {
	if err := validate(); err != nil {
		t.Fatalf("%+v\n", err)
	}
}

func TestProductLookup(t *testing.T) {
	out, err := Product("Ω", "A")
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if out != "V" {
		t.Fatalf("Ω × A: %q", out)
	}

	// Operand order matters: the registry holds ordered triples.
	if _, err := Product("A", "Ω"); !xerrors.Is(err, ErrUnsupportedDimension) {
		t.Fatalf("%+v\n", err)
	}
}

func TestQuotientLookup(t *testing.T) {
	out, err := Quotient("V", "Ω")
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if out != "A" {
		t.Fatalf("V / Ω: %q", out)
	}

	out, err = Quotient("V", "A")
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if out != "Ω" {
		t.Fatalf("V / A: %q", out)
	}

	if _, err := Quotient("V", "s"); !xerrors.Is(err, ErrUnsupportedDimension) {
		t.Fatalf("%+v\n", err)
	}
}

func TestSelfReferentialArea(t *testing.T) {
	out, err := Product("m", "m")
	if err != nil || out != "m²" {
		t.Fatalf("m × m: %q %+v", out, err)
	}

	// Length divides area back out to length.
	out, err = Quotient("m²", "m")
	if err != nil || out != "m" {
		t.Fatalf("m² / m: %q %+v", out, err)
	}
}

func TestOhmsLaw(t *testing.T) {
	r := Of[Resistance](5)
	i := Of[Current](2)

	v, err := Mul[Voltage](r, i)
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if v.Float() != 10.0 {
		t.Fatalf("R × I: %v", v.Float())
	}
}

func TestOhmsLawFromText(t *testing.T) {
	v, err := Parse[Voltage]("12V")
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	r, err := Parse[Resistance]("6Ω")
	if err != nil {
		t.Fatalf("%+v\n", err)
	}

	i, err := Div[Current](v, r)
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if i.Float() != 2.0 {
		t.Fatalf("V / R: %v", i.Float())
	}
	if s := i.String(); s != "2A" {
		t.Fatalf("format: %q", s)
	}
}

func TestDimensionalConsistency(t *testing.T) {
	r := New[Resistance](si.New(4.7, si.Kilo))
	i := New[Current](si.New(2.5, si.Milli))

	v, err := Mul[Voltage](r, i)
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if math.Abs(v.Float()-r.Float()*i.Float()) > 1e-12 {
		t.Fatalf("absolute value: %v", v.Float())
	}

	back, err := Div[Resistance](v, i)
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if math.Abs(back.Float()-r.Float()) > 1e-9 {
		t.Fatalf("recovered resistance: %v", back.Float())
	}
}

func TestPowerFromVoltageCurrent(t *testing.T) {
	p, err := Mul[Power](Of[Voltage](3), Of[Current](2))
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if p.Float() != 6.0 {
		t.Fatalf("V × I: %v", p.Float())
	}
}

func TestEnergyFromPowerTime(t *testing.T) {
	p := New[Power](si.New(5, si.Milli))
	d := Of[Time](10)

	e, err := Mul[Energy](p, d)
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if e.Value().Prefix != si.Milli || math.Abs(e.Float()-0.05) > 1e-15 {
		t.Fatalf("P × t: %+v", e.Value())
	}
}

func TestChargeFromCapacitanceVoltage(t *testing.T) {
	c := New[Capacitance](si.New(1.5, si.Pico))
	v := Of[Voltage](4)

	q, err := Mul[Charge](c, v)
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if q.Value().Prefix != si.Pico || math.Abs(q.Value().Value-6) > 1e-9 {
		t.Fatalf("C × V: %+v", q.Value())
	}
}

func TestCurrentFromChargeTime(t *testing.T) {
	q := New[Charge](si.New(10, si.Milli))
	d := New[Time](si.New(2, si.Micro))

	i, err := Div[Current](q, d)
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if i.Value().Prefix != si.Kilo || math.Abs(i.Value().Value-5) > 1e-9 {
		t.Fatalf("Q / t: %+v", i.Value())
	}
}

func TestLengthFromVelocityTime(t *testing.T) {
	v := Of[Velocity](100)
	d := Of[Time](5)

	s, err := Mul[Length](v, d)
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if s.Float() != 500.0 {
		t.Fatalf("v × t: %v", s.Float())
	}
}

func TestPressureFromForceArea(t *testing.T) {
	f := Of[Force](100)
	a := Of[Area](5)

	p, err := Div[Pressure](f, a)
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if p.Float() != 20.0 {
		t.Fatalf("F / A: %v", p.Float())
	}
}

func TestFluxFromDensityArea(t *testing.T) {
	b := Of[FluxDensity](2)
	a := Of[Area](3)

	phi, err := Mul[MagneticFlux](b, a)
	if err != nil {
		t.Fatalf("%+v\n", err)
	}
	if phi.Float() != 6.0 {
		t.Fatalf("B × A: %v", phi.Float())
	}
}

func TestUnsupportedDimension(t *testing.T) {
	_, err := Mul[Power](Of[Current](1), Of[Resistance](1))
	if !xerrors.Is(err, ErrUnsupportedDimension) {
		t.Fatalf("%+v\n", err)
	}

	// V × s is registered, but it yields Wb, not W.
	_, err = Mul[Power](Of[Voltage](1), Of[Time](1))
	if !xerrors.Is(err, ErrUnsupportedDimension) {
		t.Fatalf("%+v\n", err)
	}

	_, err = Div[Energy](Of[Voltage](1), Of[Time](1))
	if !xerrors.Is(err, ErrUnsupportedDimension) {
		t.Fatalf("%+v\n", err)
	}
}

func TestRatio(t *testing.T) {
	t1 := Of[Time](100)
	t2 := Of[Time](100)

	s := Ratio(t1, t2)
	if !s.Equals(si.New(1, si.None)) {
		t.Fatalf("ratio: %+v", s)
	}

	// Ratio of differently scaled, equal values is still exactly one.
	a := New[Voltage](si.New(1, si.Kilo))
	b := New[Voltage](si.New(1000, si.None))
	if got := Ratio(a, b).Float(); got != 1.0 {
		t.Fatalf("scaled ratio: %v", got)
	}
}

func TestReciprocalConversions(t *testing.T) {
	f := New[Frequency](si.New(1, si.Kilo))
	p := ToPeriod(f)
	if p.Value() != si.New(1, si.Milli) {
		t.Fatalf("period of 1KHz: %+v", p.Value())
	}

	back := ToFrequency(p)
	if math.Abs(back.Float()-1000) > 1e-9 {
		t.Fatalf("frequency of 1ms: %v", back.Float())
	}
}

func TestRegisterConflictPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	// Conflicts with the registered V = Ω × A and must panic before
	// mutating the registry.
	Register("W", "Ω", "A")
}
