/*
ENGUNITS is a calculator for SI-prefixed dimensional quantities: voltages,
currents, resistances and friends, written the way engineers write them
("3.3mV", "2.2KΩ"). Expressions are given as arguments or read line by line
from stdin, one "<quantity> <op> <quantity>" per line:

	engunits "12V / 6Ω"
	12V / 6Ω = 2A

	echo "5Ω * 2A" | engunits -format csv
	5Ω * 2A,10V

Multiplication and division between dimensioned operands are resolved
against a fixed registry of physical identities (V = Ω × A, W = V × A,
J = W × s, ...); combinations the registry doesn't know are reported as
errors rather than guessed at. Dividing two quantities of the same unit
cancels the unit. Dimensionless operands scale magnitudes without
changing the unit.

Command-line Flags:

	-format="plain"

Sets the result output format: plain, csv, or json. Plain text is
formatted as "<expr> = <value>". For json output each result is one
object per line, there is no root node.

	-precision=-1

Sets the number of fractional digits results are formatted with. The
default emits the shortest exact representation of the mantissa.

	-header=false

Writes a column header row before csv output.

Every flag may also be set through the environment with an ENGUNITS_
prefix, e.g. ENGUNITS_FORMAT=json; explicit flags take precedence.

The library packages underneath this command are usable on their own:
si implements the prefixed scaled number, unit implements the
dimension-tagged quantity and rule registry, and cplx implements a
complex number over scaled parts.
*/
package main
