package design

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceNEC/pkg/units"
)

// Kind says how a parameter value is parsed and printed.
type Kind uint8

const (
	KindLength Kind = iota // meters; accepts unit suffixes such as "5 3/8 in"
	KindNumber             // plain real number (MHz, correction factors)
	KindCount              // positive integer (segment counts)
)

// Param is one tunable value of a design, bound to a field of its config.
type Param struct {
	Name string
	Kind Kind
	Help string

	real  *float64
	count *int
}

func lengthParam(name, help string, v *float64) Param {
	return Param{Name: name, Kind: KindLength, Help: help, real: v}
}

func numberParam(name, help string, v *float64) Param {
	return Param{Name: name, Kind: KindNumber, Help: help, real: v}
}

func countParam(name, help string, v *int) Param {
	return Param{Name: name, Kind: KindCount, Help: help, count: v}
}

// String renders the current value. Lengths are shown in meters and inches.
func (p Param) String() string {
	switch p.Kind {
	case KindLength:
		return fmt.Sprintf("%.6g m (%.3f in)", *p.real, units.MetersToInches(*p.real))
	case KindCount:
		return strconv.Itoa(*p.count)
	default:
		return strconv.FormatFloat(*p.real, 'g', -1, 64)
	}
}

func (p Param) set(value string) error {
	switch p.Kind {
	case KindLength:
		v, err := units.ParseLength(value, units.Meter)
		if err != nil {
			return err
		}
		*p.real = v
	case KindCount:
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", value, err)
		}
		*p.count = v
	default:
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", value, err)
		}
		*p.real = v
	}
	return nil
}

type paramSet []Param

func (ps paramSet) set(name, value string) error {
	for _, p := range ps {
		if p.Name == name {
			if err := p.set(value); err != nil {
				return fmt.Errorf("design: parameter %s: %w", name, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownParam, name)
}
