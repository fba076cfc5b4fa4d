package si

// A Prefix is an SI magnitude prefix, a power-of-ten factor with a
// canonical one-letter symbol.
type Prefix int

const (
	Giga Prefix = iota // 1e9
	Mega               // 1e6
	Kilo               // 1e3
	None               // 1.0
	Milli              // 1e-3
	Micro              // 1e-6
	Nano               // 1e-9
	Pico               // 1e-12
)

// Factor returns the multiplier the prefix scales a mantissa by.
func (p Prefix) Factor() float64 {
	switch p {
	case Giga:
		return 1e9
	case Mega:
		return 1e6
	case Kilo:
		return 1e3
	case None:
		return 1.0
	case Milli:
		return 1e-3
	case Micro:
		return 1e-6
	case Nano:
		return 1e-9
	case Pico:
		return 1e-12
	}
	return 1.0
}

// Symbol returns the canonical symbol emitted when formatting. Kilo is
// always written "K" on output, even though parsing accepts both casings.
func (p Prefix) Symbol() string {
	switch p {
	case Giga:
		return "G"
	case Mega:
		return "M"
	case Kilo:
		return "K"
	case None:
		return ""
	case Milli:
		return "m"
	case Micro:
		return "u"
	case Nano:
		return "n"
	case Pico:
		return "p"
	}
	return ""
}

// ParsePrefix maps a symbol to its prefix. Both "K" and "k" map to Kilo.
func ParsePrefix(s string) (Prefix, bool) {
	switch s {
	case "G":
		return Giga, true
	case "M":
		return Mega, true
	case "K", "k":
		return Kilo, true
	case "":
		return None, true
	case "m":
		return Milli, true
	case "u":
		return Micro, true
	case "n":
		return Nano, true
	case "p":
		return Pico, true
	}
	return None, false
}

// factorTable orders prefixes by descending factor, None included.
// Normalization scans it front to back for the first factor not larger
// than the value being normalized.
var factorTable = [...]struct {
	prefix Prefix
	factor float64
}{
	{Giga, 1e9},
	{Mega, 1e6},
	{Kilo, 1e3},
	{None, 1.0},
	{Milli, 1e-3},
	{Micro, 1e-6},
	{Nano, 1e-9},
	{Pico, 1e-12},
}

// parseTable fixes the priority order symbols are tried in against the
// tail of an input string. None is absent: an input with no recognized
// trailing symbol falls back to prefix None intentionally rather than
// failing. Both kilo casings are listed so "2.2k" and "2.2K" parse alike.
var parseTable = [...]struct {
	prefix Prefix
	symbol string
}{
	{Giga, "G"},
	{Mega, "M"},
	{Kilo, "K"},
	{Kilo, "k"},
	{Milli, "m"},
	{Micro, "u"},
	{Nano, "n"},
	{Pico, "p"},
}
