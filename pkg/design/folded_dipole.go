package design

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceNEC/pkg/card"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/model"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/units"
)

// FoldedDipoleConfig describes a 2m folded dipole bent from one wavelength of
// bare copper wire.
//
//	      a1                    A                    a2
//	   ,-+--------------------------------------------+-,
//	  /                                                  \
//	D |rd d                                          b rb| B
//	  \                                                  /
//	   `-+--------------------X-----------------------+-'
//	      c2                    C                    c1
//
// A = C = (1/2 wavelength) - (pi * rb); X is the feedpoint.
type FoldedDipoleConfig struct {
	TargetMHz        float64
	CorrectionFactor float64 // velocity factor and tuning, found by trial
	BendRadius       float64 // rb and rd
	Y                float64 // distance from the beam origin along Y
	Z                float64 // height of the top wire
	WireRadius       float64
	Segments         int // per straight wire
	ArcSegments      int
	Sweep            sweepRange
}

// DefaultFoldedDipoleConfig returns the dimensions tuned for 146.310 MHz.
func DefaultFoldedDipoleConfig() *FoldedDipoleConfig {
	return &FoldedDipoleConfig{
		TargetMHz:        146.310,
		CorrectionFactor: 0.932,
		BendRadius:       units.Inches(0.5),
		Y:                units.Inches(5.0 + (2.0 / 8.0)),
		Z:                units.Inches(36.0),
		WireRadius:       units.Inches(1.0 / 16.0), // 1/8" wire
		Segments:         51,
		ArcSegments:      15,
		Sweep:            sweepRange{LowMHz: 144.0, HighMHz: 148.0, StepMHz: 0.1},
	}
}

// Validate checks the configuration for values the geometry cannot use.
func (c *FoldedDipoleConfig) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"target frequency", c.TargetMHz},
		{"correction factor", c.CorrectionFactor},
		{"bend radius", c.BendRadius},
		{"wire radius", c.WireRadius},
	} {
		if err := checkPositive(v.name, v.value); err != nil {
			return err
		}
	}
	if err := checkSegments("segments", c.Segments); err != nil {
		return err
	}
	if err := checkSegments("arc segments", c.ArcSegments); err != nil {
		return err
	}
	if c.straightLength() <= 0 {
		return invalid("bend radius %g m leaves no straight wire", c.BendRadius)
	}
	return c.Sweep.validate()
}

func (c *FoldedDipoleConfig) wavelength() float64 {
	return wavelength(c.TargetMHz, c.CorrectionFactor)
}

// straightLength is A (and C).
func (c *FoldedDipoleConfig) straightLength() float64 {
	return 0.5*c.wavelength() - math.Pi*c.BendRadius
}

// loop holds the points of the folded dipole outline.
type loop struct {
	a1, a2, b, c1, c2, d geometry.Point
}

func (c *FoldedDipoleConfig) loop() loop {
	var l loop
	rb := c.BendRadius
	l.a1 = geometry.Pt(c.straightLength()/2.0, c.Y, c.Z)
	l.a2 = geometry.Pt(-l.a1.X, c.Y, c.Z)
	l.b = geometry.Pt(l.a2.X, c.Y, c.Z-rb)
	l.c1 = geometry.Pt(l.a2.X, c.Y, c.Z-(2.0*rb))
	l.c2 = geometry.Pt(l.a1.X, c.Y, l.c1.Z)
	l.d = geometry.Pt(l.a1.X, c.Y, l.b.Z)
	return l
}

// add places the folded dipole in m, feeding it at the middle of C.
func (l loop) add(m *model.Model, c *FoldedDipoleConfig) {
	const arcStart, arcEnd = 90.0, 270.0
	m.AddWire(c.Segments, l.a1, l.a2)
	m.AddArc(c.ArcSegments, c.BendRadius, units.Degrees(arcStart), units.Degrees(arcEnd),
		geometry.Rot(0, 0, 0), l.b)
	m.AddWire(c.Segments, l.c1, l.c2).FeedAtMiddle()
	m.AddArc(c.ArcSegments, c.BendRadius, units.Degrees(arcStart), units.Degrees(arcEnd),
		geometry.Rot(0, 0, units.Degrees(180)), l.d)
}

func (c *FoldedDipoleConfig) params() paramSet {
	ps := paramSet{
		numberParam("target-mhz", "frequency the geometry is tuned for", &c.TargetMHz),
		numberParam("correction", "velocity/correction factor applied to the wavelength", &c.CorrectionFactor),
		lengthParam("bend-radius", "radius of the end bends", &c.BendRadius),
		lengthParam("y", "offset of the element along the beam", &c.Y),
		lengthParam("z", "height of the top wire", &c.Z),
		lengthParam("wire-radius", "conductor radius", &c.WireRadius),
		countParam("segments", "segments per straight wire", &c.Segments),
		countParam("arc-segments", "segments per bend", &c.ArcSegments),
	}
	return append(ps, c.Sweep.params()...)
}

func (c *FoldedDipoleConfig) comments() *card.CommentBlock {
	return card.NewCommentBlock(67).
		Rule().
		Line("NEC2 model for simulating a folded dipole built from copper wire.").
		Line("Geometry is tuned for min SWR at %.3f MHz", c.TargetMHz).
		Blank().
		Line("Wire length before bends = %6.3f in", units.MetersToInches(c.wavelength())).
		Line("Radius of bends          = %6.3f in", units.MetersToInches(c.BendRadius))
}

// FoldedDipole is the stand-alone 2m folded dipole.
type FoldedDipole struct {
	base
	cfg *FoldedDipoleConfig
}

// NewFoldedDipole creates the design around cfg.
func NewFoldedDipole(cfg *FoldedDipoleConfig) *FoldedDipole {
	return &FoldedDipole{
		base: base{
			name:     "folded-dipole",
			summary:  "2m folded dipole from one wavelength of 1/8\" copper wire",
			fileName: "2m-folded-dipole.nec",
			params:   cfg.params(),
		},
		cfg: cfg,
	}
}

// Config exposes the live configuration.
func (d *FoldedDipole) Config() *FoldedDipoleConfig {
	return d.cfg
}

// Build computes the geometry and compiles the card stack.
func (d *FoldedDipole) Build() (*Result, error) {
	if err := d.cfg.Validate(); err != nil {
		return nil, err
	}

	m := model.New(d.cfg.WireRadius)
	d.cfg.loop().add(m, d.cfg)

	return finish(m, d.cfg.comments().Rule(), d.cfg.Sweep.sweep())
}
