package design

import (
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/model"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/units"
)

// FDYagiConfig is a 2m yagi whose driven element is a folded dipole, with a
// straight reflector behind it.
//
//	Reflector:
//	  e1                          E                          e2
//	  ---------------------------------------------------------
//
// The reflector sits at ReflectorY, level with the middle of the bends.
type FDYagiConfig struct {
	Driven          FoldedDipoleConfig
	ReflectorY      float64
	ReflectorLength float64 // E
}

// DefaultFDYagiConfig returns the dimensions tuned for 146.310 MHz.
func DefaultFDYagiConfig() *FDYagiConfig {
	driven := DefaultFoldedDipoleConfig()
	driven.CorrectionFactor = 0.9347
	driven.BendRadius = units.Inches(1.0)
	driven.Y = units.Inches(5.0 + (3.0 / 8.0))
	driven.Segments = 41
	driven.Sweep = sweepRange{LowMHz: 145.5, HighMHz: 147.5, StepMHz: 0.05}

	return &FDYagiConfig{
		Driven:          *driven,
		ReflectorY:      units.Inches(0),
		ReflectorLength: units.Inches(40.0 + (2.0 / 8.0)),
	}
}

// Validate checks the driven element and the reflector.
func (c *FDYagiConfig) Validate() error {
	if err := c.Driven.Validate(); err != nil {
		return err
	}
	return checkPositive("reflector length", c.ReflectorLength)
}

// FDYagi is the folded-dipole-fed 2m yagi.
type FDYagi struct {
	base
	cfg *FDYagiConfig
}

// NewFDYagi creates the design around cfg.
func NewFDYagi(cfg *FDYagiConfig) *FDYagi {
	ps := cfg.Driven.params()
	ps = append(ps,
		lengthParam("reflector-y", "reflector offset along the beam", &cfg.ReflectorY),
		lengthParam("reflector-length", "reflector length", &cfg.ReflectorLength),
	)
	return &FDYagi{
		base: base{
			name:     "fd-yagi",
			summary:  "2m yagi fed with a folded dipole driven element",
			fileName: "2m-fd-fed-yagi.nec",
			params:   ps,
		},
		cfg: cfg,
	}
}

// Config exposes the live configuration.
func (d *FDYagi) Config() *FDYagiConfig {
	return d.cfg
}

// Build computes the geometry and compiles the card stack.
func (d *FDYagi) Build() (*Result, error) {
	if err := d.cfg.Validate(); err != nil {
		return nil, err
	}

	driven := &d.cfg.Driven
	l := driven.loop()
	e1 := geometry.Pt(d.cfg.ReflectorLength/2.0, d.cfg.ReflectorY, l.b.Z)
	e2 := geometry.Pt(-d.cfg.ReflectorLength/2.0, d.cfg.ReflectorY, l.b.Z)

	m := model.New(driven.WireRadius)
	l.add(m, driven)
	m.AddWire(driven.Segments, e1, e2)

	comments := driven.comments().
		Line("Reflector length         = %6.3f in", units.MetersToInches(d.cfg.ReflectorLength)).
		Rule()
	return finish(m, comments, driven.Sweep.sweep())
}
