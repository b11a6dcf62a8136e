package design

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceNEC/pkg/card"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/model"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/units"
)

// jElement is the J-shaped driven element of the cheap yagi. The origin of
// the element is where a2 meets b1 and e2:
//
//	a1          A          a2  b1               B               b2
//	-----------------------+---------------------------------+-,
//	                       |e2                                  \
//	                     E |                                c rc| C
//	                       |e1                                  /
//	                       +---------------------------------+-'
//	                        d2               D               d1
//
// A + B + (pi * rc) + D is 3/4 wavelength and A = B + (pi * rc) + D. E is a
// single segment carrying the feedpoint, shorter than the beam is wide.
type jElement struct {
	quarter      float64 // A
	rc           float64
	y            float64
	top          float64
	segments     int
	arcSegments  int
	feedSegments int
}

// bLength is B (and D).
func (j jElement) bLength() float64 {
	return ((2.0 * j.quarter) - (math.Pi * j.rc)) / 2.0
}

// add places the element in m and feeds it at the first segment of E.
func (j jElement) add(m *model.Model) {
	a1 := geometry.Pt(j.quarter, j.y, j.top)
	a2 := geometry.Pt(0.0, j.y, j.top)
	b1 := a2
	b2 := geometry.Pt(-j.bLength(), b1.Y, b1.Z)
	c := geometry.Pt(b2.X, j.y, j.top-j.rc)
	d1 := geometry.Pt(b2.X, j.y, j.top-(2.0*j.rc))
	d2 := geometry.Pt(a2.X, j.y, d1.Z)
	e1 := d2
	e2 := a2

	m.AddWire(j.segments, a1, a2)
	m.AddWire(j.segments, b1, b2)
	m.AddArc(j.arcSegments, j.rc, units.Degrees(90), units.Degrees(270), geometry.Rot(0, 0, 0), c)
	m.AddWire(j.segments, d1, d2)
	m.AddWire(j.feedSegments, e1, e2).FeedAt(1)
}

// JDEConfig is the cheap yagi's J driven element modeled without its
// reflector.
type JDEConfig struct {
	TargetMHz      float64
	VelocityFactor float64
	Y              float64
	Z              float64 // height of the top wire
	BendRadius     float64
	WireRadius     float64
	Segments       int
	ArcSegments    int
	FeedSegments   int
	Sweep          card.Sweep
}

// DefaultJDEConfig returns the dimensions tuned for 146.310 MHz.
func DefaultJDEConfig() *JDEConfig {
	return &JDEConfig{
		TargetMHz:      146.310,
		VelocityFactor: 0.937,
		Y:              units.Inches(5.0 + (2.0 / 8.0)),
		Z:              units.Inches(24.0),
		BendRadius:     units.Inches(0.25),
		WireRadius:     units.Inches(1.0 / 16.0),
		Segments:       25,
		ArcSegments:    15,
		FeedSegments:   1,
		Sweep:          card.Sweep{Start: 145.710, Step: 0.05, Count: 30},
	}
}

// Validate checks the configuration for values the geometry cannot use.
func (c *JDEConfig) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"target frequency", c.TargetMHz},
		{"velocity factor", c.VelocityFactor},
		{"bend radius", c.BendRadius},
		{"wire radius", c.WireRadius},
		{"sweep step", c.Sweep.Step},
	} {
		if err := checkPositive(v.name, v.value); err != nil {
			return err
		}
	}
	for _, v := range []struct {
		name  string
		value int
	}{
		{"segments", c.Segments},
		{"arc segments", c.ArcSegments},
		{"feed segments", c.FeedSegments},
		{"sweep count", c.Sweep.Count},
	} {
		if err := checkSegments(v.name, v.value); err != nil {
			return err
		}
	}
	if c.j().bLength() <= 0 {
		return invalid("bend radius %g m leaves no room for wire B", c.BendRadius)
	}
	return nil
}

func (c *JDEConfig) j() jElement {
	return jElement{
		quarter:      wavelength(c.TargetMHz, c.VelocityFactor) / 4.0,
		rc:           c.BendRadius,
		y:            c.Y,
		top:          c.Z,
		segments:     c.Segments,
		arcSegments:  c.ArcSegments,
		feedSegments: c.FeedSegments,
	}
}

func (c *JDEConfig) params() paramSet {
	return paramSet{
		numberParam("target-mhz", "frequency the geometry is tuned for", &c.TargetMHz),
		numberParam("velocity-factor", "velocity factor of the wire", &c.VelocityFactor),
		lengthParam("y", "offset of the element along the beam", &c.Y),
		lengthParam("z", "height of the top wire", &c.Z),
		lengthParam("bend-radius", "radius of the J bend", &c.BendRadius),
		lengthParam("wire-radius", "conductor radius", &c.WireRadius),
		countParam("segments", "segments per straight wire", &c.Segments),
		countParam("arc-segments", "segments on the J bend", &c.ArcSegments),
		countParam("feed-segments", "segments on the feed wire", &c.FeedSegments),
		numberParam("sweep-start", "first frequency of the sweep, MHz", &c.Sweep.Start),
		numberParam("sweep-step", "frequency step, MHz", &c.Sweep.Step),
		countParam("sweep-count", "number of frequency steps", &c.Sweep.Count),
	}
}

// JDE is the J driven element alone.
type JDE struct {
	base
	cfg *JDEConfig
}

// NewJDE creates the design around cfg.
func NewJDE(cfg *JDEConfig) *JDE {
	return &JDE{
		base: base{
			name:     "j-de",
			summary:  "cheap yagi J driven element without the reflector",
			fileName: "2m-j-de.nec",
			params:   cfg.params(),
		},
		cfg: cfg,
	}
}

// Config exposes the live configuration.
func (d *JDE) Config() *JDEConfig {
	return d.cfg
}

// Build computes the geometry and compiles the card stack.
func (d *JDE) Build() (*Result, error) {
	c := d.cfg
	if err := c.Validate(); err != nil {
		return nil, err
	}

	j := c.j()
	m := model.New(c.WireRadius)
	j.add(m)

	comments := card.NewCommentBlock(82).
		Rule().
		Line("NEC2 model of the J-shaped driven element (DE) of a 2-element 2m cheap yagi,").
		Line("without its reflector. Geometry is tuned for min SWR at %.3f MHz", c.TargetMHz).
		Blank().
		Line("DE length before bending the J = %6.3f in", units.MetersToInches(3.0*j.quarter)).
		Line("Unbent end of DE to feedpoint  = %6.3f in", units.MetersToInches(j.quarter)).
		Line("Radius of bend in J            = %6.3f in", units.MetersToInches(j.rc)).
		Rule()

	return finish(m, comments, c.Sweep)
}
