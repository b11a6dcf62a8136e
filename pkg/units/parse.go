package units

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// quantityExpr is the grammar for a single length: an optional sign, a whole
// number and/or a fraction, and an optional unit.
//
//	0.5in   5 3/8 in   40.25"   -0.4826 m   3/8
type quantityExpr struct {
	Sign  string  `@("-" | "+")?`
	Terms []*term `@@+`
	Unit  string  `@Unit?`
}

type term struct {
	Value float64  `@Number`
	Denom *float64 `( "/" @Number )?`
}

var quantityParser = participle.MustBuild[quantityExpr](
	participle.Lexer(quantityLexer),
	participle.Elide("Whitespace"),
)

// Quantity is a parsed length before conversion.
type Quantity struct {
	Value    float64 // Magnitude in Unit
	Unit     Unit
	Explicit bool // false when the input carried no unit
}

// Meters returns the quantity converted to meters.
func (q Quantity) Meters() float64 {
	return ToMeters(q.Value, q.Unit)
}

// ParseQuantity parses a length expression. When the input names no unit the
// result uses defaultUnit and Explicit is false.
func ParseQuantity(input string, defaultUnit Unit) (Quantity, error) {
	expr, err := quantityParser.ParseString("", input)
	if err != nil {
		return Quantity{}, fmt.Errorf("parse %q: %w", input, err)
	}

	value, err := expr.value()
	if err != nil {
		return Quantity{}, fmt.Errorf("parse %q: %w", input, err)
	}

	q := Quantity{Value: value, Unit: defaultUnit}
	if expr.Unit != "" {
		u, err := LookupUnit(expr.Unit)
		if err != nil {
			return Quantity{}, err
		}
		q.Unit = u
		q.Explicit = true
	}
	return q, nil
}

// ParseLength parses a length expression and returns it in meters.
func ParseLength(input string, defaultUnit Unit) (float64, error) {
	q, err := ParseQuantity(input, defaultUnit)
	if err != nil {
		return 0, err
	}
	return q.Meters(), nil
}

// value sums the terms. Only "whole", "fraction" or "whole fraction" are
// accepted; "1 2 3" is rejected rather than silently added up.
func (e *quantityExpr) value() (float64, error) {
	if len(e.Terms) > 2 {
		return 0, fmt.Errorf("%w: too many terms", ErrBadQuantity)
	}
	if len(e.Terms) == 2 && (e.Terms[0].Denom != nil || e.Terms[1].Denom == nil) {
		return 0, fmt.Errorf("%w: expected a whole number followed by a fraction", ErrBadQuantity)
	}

	total := 0.0
	for _, t := range e.Terms {
		v, err := t.value()
		if err != nil {
			return 0, err
		}
		total += v
	}
	if e.Sign == "-" {
		total = -total
	}
	return total, nil
}

func (t *term) value() (float64, error) {
	if t.Denom == nil {
		return t.Value, nil
	}
	if *t.Denom == 0 {
		return 0, fmt.Errorf("%w: zero denominator", ErrBadQuantity)
	}
	return t.Value / *t.Denom, nil
}
