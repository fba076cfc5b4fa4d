// ENGUNITS - A calculator for SI-prefixed dimensional quantities.
// Copyright (C) 2015 Douglas Hall
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/bemasher/engunits/si"
	"github.com/bemasher/engunits/unit"
)

// An Operand is a scaled number with the unit symbol it was read with,
// or an empty symbol for dimensionless values.
type Operand struct {
	Num si.Number
	Sym string
}

// ParseOperand reads "<float><prefix?><unit-symbol?>". Catalog symbols
// are tried longest first against the tail, so "3.3mV" is milli-volts
// and "3.3mm" is milli-meters. A bare "3.3m" resolves to meters, not the
// milli prefix: unit symbols win over prefixes here.
func ParseOperand(s string) (op Operand, err error) {
	s = strings.TrimSpace(s)
	for _, sym := range unit.Symbols() {
		if strings.HasSuffix(s, sym) {
			op.Sym = sym
			op.Num, err = si.Parse(strings.TrimSuffix(s, sym))
			return op, err
		}
	}

	op.Num, err = si.Parse(s)
	return op, err
}

// A Result pairs an evaluated expression with its value.
type Result struct {
	Expr string
	Num  si.Number
	Sym  string
}

// Answer renders the value with its unit symbol, honoring -precision.
func (r Result) Answer() string {
	return r.Num.Format(*precision) + r.Sym
}

func (r Result) String() string {
	return fmt.Sprintf("%s = %s", r.Expr, r.Answer())
}

func (r Result) Record() []string {
	return []string{r.Expr, r.Answer()}
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Expr  string `json:"expr"`
		Value string `json:"value"`
	}{r.Expr, r.Answer()})
}

// Eval computes a single "<operand> <op> <operand>" expression. Addition
// and subtraction require matching symbols. Multiplication and division
// between two dimensioned operands consult the rule registry; a
// dimensionless operand on either side only scales the magnitude, and
// dividing matching symbols cancels them out.
func Eval(expr string) (Result, error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return Result{}, fmt.Errorf("expect \"<quantity> <op> <quantity>\", got %q", expr)
	}

	lhs, err := ParseOperand(fields[0])
	if err != nil {
		return Result{}, err
	}
	rhs, err := ParseOperand(fields[2])
	if err != nil {
		return Result{}, err
	}

	res := Result{Expr: expr}

	switch op := fields[1]; op {
	case "+", "-":
		if lhs.Sym != rhs.Sym {
			return Result{}, errors.Wrapf(unit.ErrUnitMismatch, "%s %s %s", orNone(lhs.Sym), op, orNone(rhs.Sym))
		}
		res.Sym = lhs.Sym
		if op == "+" {
			res.Num = lhs.Num.Add(rhs.Num)
		} else {
			res.Num = lhs.Num.Sub(rhs.Num)
		}
	case "*":
		res.Num = lhs.Num.Mul(rhs.Num)
		switch {
		case rhs.Sym == "":
			res.Sym = lhs.Sym
		case lhs.Sym == "":
			res.Sym = rhs.Sym
		default:
			res.Sym, err = unit.Product(lhs.Sym, rhs.Sym)
			if err != nil {
				return Result{}, err
			}
		}
	case "/":
		res.Num = lhs.Num.Div(rhs.Num)
		switch {
		case rhs.Sym == "":
			res.Sym = lhs.Sym
		case lhs.Sym == rhs.Sym:
			res.Sym = ""
		default:
			res.Sym, err = unit.Quotient(lhs.Sym, rhs.Sym)
			if err != nil {
				return Result{}, err
			}
		}
	default:
		return Result{}, fmt.Errorf("unknown operator: %q", op)
	}

	return res, nil
}

func orNone(sym string) string {
	if sym == "" {
		return "<dimensionless>"
	}
	return sym
}
