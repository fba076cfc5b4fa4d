package unit

import "sort"

// The closed catalog of dimension tags. Each tag is an empty struct whose
// only job is to carry its display symbol into the type system. Unit
// symbols are case-sensitive and may be multi-rune ("m/s²", "Ω").

type Voltage struct{}

func (Voltage) Symbol() string { return "V" }

type Current struct{}

func (Current) Symbol() string { return "A" }

type Resistance struct{}

func (Resistance) Symbol() string { return "Ω" }

type Capacitance struct{}

func (Capacitance) Symbol() string { return "F" }

type Inductance struct{}

func (Inductance) Symbol() string { return "H" }

type Charge struct{}

func (Charge) Symbol() string { return "Q" }

type Power struct{}

func (Power) Symbol() string { return "W" }

type Energy struct{}

func (Energy) Symbol() string { return "J" }

type Time struct{}

func (Time) Symbol() string { return "s" }

type Frequency struct{}

func (Frequency) Symbol() string { return "Hz" }

type Length struct{}

func (Length) Symbol() string { return "m" }

type Area struct{}

func (Area) Symbol() string { return "m²" }

type Force struct{}

func (Force) Symbol() string { return "N" }

type Pressure struct{}

func (Pressure) Symbol() string { return "Pa" }

type MagneticFlux struct{}

func (MagneticFlux) Symbol() string { return "Wb" }

type FluxDensity struct{}

func (FluxDensity) Symbol() string { return "T" }

type Conductance struct{}

func (Conductance) Symbol() string { return "S" }

type Velocity struct{}

func (Velocity) Symbol() string { return "m/s" }

type Accel struct{}

func (Accel) Symbol() string { return "m/s²" }

type Temperature struct{}

func (Temperature) Symbol() string { return "K" }

type Angle struct{}

func (Angle) Symbol() string { return "rad" }

// Concrete quantity types, one per tag.
type (
	Volts                  = Quantity[Voltage]
	Amps                   = Quantity[Current]
	Ohms                   = Quantity[Resistance]
	Farads                 = Quantity[Capacitance]
	Henries                = Quantity[Inductance]
	Coulombs               = Quantity[Charge]
	Watts                  = Quantity[Power]
	Joules                 = Quantity[Energy]
	Seconds                = Quantity[Time]
	Hertz                  = Quantity[Frequency]
	Meters                 = Quantity[Length]
	SquareMeters           = Quantity[Area]
	Newtons                = Quantity[Force]
	Pascals                = Quantity[Pressure]
	Webers                 = Quantity[MagneticFlux]
	Teslas                 = Quantity[FluxDensity]
	Siemens                = Quantity[Conductance]
	MetersPerSecond        = Quantity[Velocity]
	MetersPerSecondSquared = Quantity[Accel]
	Kelvins                = Quantity[Temperature]
	Radians                = Quantity[Angle]
)

// catalog lists every tag's symbol and a human-readable name for dynamic
// consumers (the CLI) that cannot name a tag type at compile time.
var catalog = []struct {
	Symbol string
	Name   string
}{
	{"V", "voltage"},
	{"A", "current"},
	{"Ω", "resistance"},
	{"F", "capacitance"},
	{"H", "inductance"},
	{"Q", "charge"},
	{"W", "power"},
	{"J", "energy"},
	{"s", "time"},
	{"Hz", "frequency"},
	{"m", "length"},
	{"m²", "area"},
	{"N", "force"},
	{"Pa", "pressure"},
	{"Wb", "magnetic flux"},
	{"T", "flux density"},
	{"S", "conductance"},
	{"m/s", "velocity"},
	{"m/s²", "acceleration"},
	{"K", "temperature"},
	{"rad", "angle"},
}

var symbolsByLength []string

func init() {
	for _, e := range catalog {
		symbolsByLength = append(symbolsByLength, e.Symbol)
	}
	// Longest first so suffix matching prefers "m/s²" over "m/s" over "m".
	sort.SliceStable(symbolsByLength, func(i, j int) bool {
		return len(symbolsByLength[i]) > len(symbolsByLength[j])
	})
}

// Symbols returns the catalog's unit symbols ordered longest first, the
// order dynamic parsers should try them in as candidate suffixes.
func Symbols() []string {
	out := make([]string, len(symbolsByLength))
	copy(out, symbolsByLength)
	return out
}

// NameOf returns the human-readable dimension name for a catalog symbol.
func NameOf(symbol string) (string, bool) {
	for _, e := range catalog {
		if e.Symbol == symbol {
			return e.Name, true
		}
	}
	return "", false
}
