package design

import (
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/card"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/model"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/units"
)

// FreeSpaceDEConfig models the driven element of a 2-element cheap yagi on
// its own, aiming for the 150 ohm free space impedance at 145 MHz. The
// coordinates came out of an interactive session rather than from formulas.
//
//	            A                 B
//	-----------------------+-----------------------+-,
//	                       |                          \
//	                     I |                          | D
//	                       |                          /
//	-----------------------+------------------------+-'
//	            H
//
// I is a single segment wire carrying the feedpoint.
type FreeSpaceDEConfig struct {
	Left        float64 // X of the bent end
	Right       float64 // X of the free end
	Y           float64
	TopZ        float64
	BottomZ     float64
	BendRadius  float64
	WireRadius  float64
	Segments    int
	FeedSegs    int
	ArcSegments int
	Sweep       card.Sweep
}

// DefaultFreeSpaceDEConfig returns the dimensions of the reference model.
func DefaultFreeSpaceDEConfig() *FreeSpaceDEConfig {
	return &FreeSpaceDEConfig{
		Left:        units.Meters(-0.4826),
		Right:       units.Meters(0.48895),
		Y:           units.Meters(0.1778),
		TopZ:        units.Meters(0.1),
		BottomZ:     units.Meters(0.0873),
		BendRadius:  units.Inches(0.25),
		WireRadius:  units.Inches(1.0 / 16.0),
		Segments:    15,
		FeedSegs:    1,
		ArcSegments: 15,
		Sweep:       card.Sweep{Start: 141.0, Step: 0.25, Count: 29},
	}
}

// Validate checks the configuration for values the geometry cannot use.
func (c *FreeSpaceDEConfig) Validate() error {
	if err := checkPositive("bend radius", c.BendRadius); err != nil {
		return err
	}
	if err := checkPositive("wire radius", c.WireRadius); err != nil {
		return err
	}
	if c.Left >= 0 || c.Right <= 0 {
		return invalid("element must straddle the feedpoint, got left %g m right %g m", c.Left, c.Right)
	}
	if c.TopZ <= c.BottomZ {
		return invalid("top wire %g m must be above bottom wire %g m", c.TopZ, c.BottomZ)
	}
	for _, v := range []struct {
		name  string
		value int
	}{
		{"segments", c.Segments},
		{"feed segments", c.FeedSegs},
		{"arc segments", c.ArcSegments},
		{"sweep count", c.Sweep.Count},
	} {
		if err := checkSegments(v.name, v.value); err != nil {
			return err
		}
	}
	return checkPositive("sweep step", c.Sweep.Step)
}

func (c *FreeSpaceDEConfig) params() paramSet {
	return paramSet{
		lengthParam("left", "X of the bent end", &c.Left),
		lengthParam("right", "X of the free end", &c.Right),
		lengthParam("y", "offset of the element along the beam", &c.Y),
		lengthParam("top-z", "height of the top wires", &c.TopZ),
		lengthParam("bottom-z", "height of the bottom wire", &c.BottomZ),
		lengthParam("bend-radius", "radius of the bend", &c.BendRadius),
		lengthParam("wire-radius", "conductor radius", &c.WireRadius),
		countParam("segments", "segments per straight wire", &c.Segments),
		countParam("feed-segments", "segments on the feed wire", &c.FeedSegs),
		countParam("arc-segments", "segments on the bend", &c.ArcSegments),
		numberParam("sweep-start", "first frequency of the sweep, MHz", &c.Sweep.Start),
		numberParam("sweep-step", "frequency step, MHz", &c.Sweep.Step),
		countParam("sweep-count", "number of frequency steps", &c.Sweep.Count),
	}
}

// FreeSpaceDE is the cheap yagi driven element modeled alone in free space.
type FreeSpaceDE struct {
	base
	cfg *FreeSpaceDEConfig
}

// NewFreeSpaceDE creates the design around cfg.
func NewFreeSpaceDE(cfg *FreeSpaceDEConfig) *FreeSpaceDE {
	return &FreeSpaceDE{
		base: base{
			name:     "free-space-de",
			summary:  "cheap yagi driven element alone in free space",
			fileName: "free-space-2m-de.nec",
			params:   cfg.params(),
		},
		cfg: cfg,
	}
}

// Config exposes the live configuration.
func (d *FreeSpaceDE) Config() *FreeSpaceDEConfig {
	return d.cfg
}

// Build computes the geometry and compiles the card stack. The bend is the
// last primitive, so its restoring transform is never emitted.
func (d *FreeSpaceDE) Build() (*Result, error) {
	c := d.cfg
	if err := c.Validate(); err != nil {
		return nil, err
	}

	feedTop := geometry.Pt(0, c.Y, c.TopZ)
	feedBottom := geometry.Pt(0, c.Y, c.BottomZ)
	bend := geometry.Pt(c.Left, c.Y, (c.TopZ+c.BottomZ)/2.0)

	m := model.New(c.WireRadius)
	m.AddWire(c.Segments, geometry.Pt(c.Left, c.Y, c.TopZ), feedTop)
	m.AddWire(c.Segments, feedTop, geometry.Pt(c.Right, c.Y, c.TopZ))
	m.AddWire(c.Segments, feedBottom, geometry.Pt(c.Left, c.Y, c.BottomZ))
	m.AddWire(c.FeedSegs, feedTop, feedBottom).FeedAt(1)
	m.AddArc(c.ArcSegments, c.BendRadius, units.Degrees(90), units.Degrees(270),
		geometry.Rot(0, 0, 0), bend)

	comments := card.NewCommentBlock(0).
		Text("// NEC2 Input File").
		EndNote("// End Comments")
	return finish(m, comments, c.Sweep)
}
