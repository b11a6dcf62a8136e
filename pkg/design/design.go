// Package design holds the antenna designs. Each design turns a handful of
// physical constraints (target frequency, wire radius, velocity factor, beam
// width) into points and feeds them to a model.Model; the card format itself
// lives entirely in the model and card packages.
package design

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceNEC/pkg/card"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/deck"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/model"
)

var (
	// ErrUnknownDesign is returned by Lookup for an unregistered name.
	ErrUnknownDesign = errors.New("design: unknown design")
	// ErrUnknownParam is returned by Set for a parameter the design lacks.
	ErrUnknownParam = errors.New("design: unknown parameter")
	// ErrInvalidConfig is returned when a config fails validation.
	ErrInvalidConfig = errors.New("design: invalid config")
)

// Design is one buildable antenna.
type Design interface {
	Name() string
	Summary() string
	// FileName is the default output file.
	FileName() string
	Params() []Param
	// Set overrides a parameter by name before Build.
	Set(name, value string) error
	Build() (*Result, error)
}

// Result is a built design.
type Result struct {
	Deck  deck.Deck
	Model *model.Model
	Sweep card.Sweep
}

// base carries the descriptive fields every design shares.
type base struct {
	name     string
	summary  string
	fileName string
	params   paramSet
}

func (b *base) Name() string     { return b.name }
func (b *base) Summary() string  { return b.summary }
func (b *base) FileName() string { return b.fileName }

func (b *base) Params() []Param {
	return append([]Param(nil), b.params...)
}

func (b *base) Set(name, value string) error {
	return b.params.set(name, value)
}

var constructors = []func() Design{
	func() Design { return NewFoldedDipole(DefaultFoldedDipoleConfig()) },
	func() Design { return NewFDYagi(DefaultFDYagiConfig()) },
	func() Design { return NewCheapYagi(DefaultCheapYagiConfig()) },
	func() Design { return NewJDE(DefaultJDEConfig()) },
	func() Design { return NewFreeSpaceDE(DefaultFreeSpaceDEConfig()) },
}

// All returns a fresh instance of every registered design with default
// parameters.
func All() []Design {
	designs := make([]Design, 0, len(constructors))
	for _, c := range constructors {
		designs = append(designs, c())
	}
	return designs
}

// Names lists the registered design names in registration order.
func Names() []string {
	var names []string
	for _, d := range All() {
		names = append(names, d.Name())
	}
	return names
}

// Lookup returns a fresh instance of the named design.
func Lookup(name string) (Design, error) {
	for _, c := range constructors {
		d := c()
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownDesign, name, strings.Join(Names(), ", "))
}

// finish compiles the model and pairs it with the comment block.
func finish(m *model.Model, comments *card.CommentBlock, sweep card.Sweep) (*Result, error) {
	cards, err := m.Finalize(sweep)
	if err != nil {
		return nil, err
	}
	return &Result{
		Deck:  deck.Deck{Comments: comments.String(), Cards: cards},
		Model: m,
		Sweep: sweep,
	}, nil
}

// wavelength is the free-space wavelength in meters at mhz, shortened by the
// material's velocity (correction) factor.
func wavelength(mhz, factor float64) float64 {
	return (300.0 * factor) / mhz
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func checkPositive(name string, v float64) error {
	if v <= 0 {
		return invalid("%s must be positive, got %g", name, v)
	}
	return nil
}

func checkSegments(name string, n int) error {
	if n < 1 {
		return invalid("%s must be at least 1, got %d", name, n)
	}
	return nil
}

// sweepRange is the FR card range shared by the designs that sweep between
// two frequencies.
type sweepRange struct {
	LowMHz  float64
	HighMHz float64
	StepMHz float64
}

func (s sweepRange) validate() error {
	if err := checkPositive("sweep step", s.StepMHz); err != nil {
		return err
	}
	if s.HighMHz <= s.LowMHz {
		return invalid("sweep high %g MHz must exceed low %g MHz", s.HighMHz, s.LowMHz)
	}
	return nil
}

func (s sweepRange) sweep() card.Sweep {
	return card.SweepBetween(s.LowMHz, s.HighMHz, s.StepMHz)
}

func (s *sweepRange) params() []Param {
	return []Param{
		numberParam("sweep-low", "first frequency of the sweep, MHz", &s.LowMHz),
		numberParam("sweep-high", "last frequency of the sweep, MHz", &s.HighMHz),
		numberParam("sweep-step", "frequency step, MHz", &s.StepMHz),
	}
}
