package design

import (
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/card"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/model"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/units"
)

// CheapYagiConfig is a 2-element 2m yagi built from copper wire on a wooden
// beam in the style of WA5VJB's Cheap Yagis: a straight reflector and a
// J-shaped driven element (see jElement).
type CheapYagiConfig struct {
	TargetMHz       float64
	VelocityFactor  float64
	ReflectorY      float64
	ReflectorZ      float64 // also the height of the driven element's top wire
	ReflectorLength float64
	DrivenY         float64 // reflector to driven element spacing
	BendRadius      float64 // rc
	WireRadius      float64
	Segments        int
	ReflectorSegs   int
	ArcSegments     int
	FeedSegments    int
	Sweep           card.Sweep
}

// DefaultCheapYagiConfig returns the dimensions tuned for 146.310 MHz.
func DefaultCheapYagiConfig() *CheapYagiConfig {
	return &CheapYagiConfig{
		TargetMHz:       146.310,
		VelocityFactor:  0.937,
		ReflectorY:      0.0,
		ReflectorZ:      units.Inches(24.0),
		ReflectorLength: units.Inches(40.0 + (2.0 / 8.0)),
		DrivenY:         units.Inches(5.0 + (2.0 / 8.0)),
		BendRadius:      units.Inches(0.25),
		WireRadius:      units.Inches(1.0 / 16.0),
		Segments:        25,
		ReflectorSegs:   25,
		ArcSegments:     15,
		FeedSegments:    1,
		Sweep:           card.Sweep{Start: 145.410, Step: 0.1, Count: 15},
	}
}

// Validate checks the configuration for values the geometry cannot use.
func (c *CheapYagiConfig) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"target frequency", c.TargetMHz},
		{"velocity factor", c.VelocityFactor},
		{"reflector length", c.ReflectorLength},
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
		{"reflector segments", c.ReflectorSegs},
		{"arc segments", c.ArcSegments},
		{"feed segments", c.FeedSegments},
		{"sweep count", c.Sweep.Count},
	} {
		if err := checkSegments(v.name, v.value); err != nil {
			return err
		}
	}
	if c.bLength() <= 0 {
		return invalid("bend radius %g m leaves no room for wire B", c.BendRadius)
	}
	return nil
}

func (c *CheapYagiConfig) quarterWavelength() float64 {
	return wavelength(c.TargetMHz, c.VelocityFactor) / 4.0
}

func (c *CheapYagiConfig) bLength() float64 {
	return c.j().bLength()
}

// j is the driven element, its top wire level with the reflector.
func (c *CheapYagiConfig) j() jElement {
	return jElement{
		quarter:      c.quarterWavelength(),
		rc:           c.BendRadius,
		y:            c.DrivenY,
		top:          c.ReflectorZ,
		segments:     c.Segments,
		arcSegments:  c.ArcSegments,
		feedSegments: c.FeedSegments,
	}
}

func (c *CheapYagiConfig) params() paramSet {
	return paramSet{
		numberParam("target-mhz", "frequency the geometry is tuned for", &c.TargetMHz),
		numberParam("velocity-factor", "velocity factor of the wire", &c.VelocityFactor),
		lengthParam("reflector-y", "reflector offset along the beam", &c.ReflectorY),
		lengthParam("reflector-z", "reflector and driven element height", &c.ReflectorZ),
		lengthParam("reflector-length", "reflector length", &c.ReflectorLength),
		lengthParam("driven-y", "reflector to driven element spacing", &c.DrivenY),
		lengthParam("bend-radius", "radius of the J bend", &c.BendRadius),
		lengthParam("wire-radius", "conductor radius", &c.WireRadius),
		countParam("segments", "segments per driven element wire", &c.Segments),
		countParam("reflector-segments", "segments on the reflector", &c.ReflectorSegs),
		countParam("arc-segments", "segments on the J bend", &c.ArcSegments),
		countParam("feed-segments", "segments on the feed wire", &c.FeedSegments),
		numberParam("sweep-start", "first frequency of the sweep, MHz", &c.Sweep.Start),
		numberParam("sweep-step", "frequency step, MHz", &c.Sweep.Step),
		countParam("sweep-count", "number of frequency steps", &c.Sweep.Count),
	}
}

// CheapYagi is the 2-element cheap yagi with a J driven element.
type CheapYagi struct {
	base
	cfg *CheapYagiConfig
}

// NewCheapYagi creates the design around cfg.
func NewCheapYagi(cfg *CheapYagiConfig) *CheapYagi {
	return &CheapYagi{
		base: base{
			name:     "cheap-yagi",
			summary:  "2-element 2m cheap yagi with a J-shaped driven element",
			fileName: "2m-2el-cheap-yagi.nec",
			params:   cfg.params(),
		},
		cfg: cfg,
	}
}

// Config exposes the live configuration.
func (d *CheapYagi) Config() *CheapYagiConfig {
	return d.cfg
}

// Build computes the geometry and compiles the card stack.
func (d *CheapYagi) Build() (*Result, error) {
	c := d.cfg
	if err := c.Validate(); err != nil {
		return nil, err
	}

	quarter := c.quarterWavelength()
	rc := c.BendRadius

	m := model.New(c.WireRadius)
	m.AddWire(c.ReflectorSegs,
		geometry.Pt(c.ReflectorLength/2.0, c.ReflectorY, c.ReflectorZ),
		geometry.Pt(-(c.ReflectorLength / 2.0), c.ReflectorY, c.ReflectorZ))
	c.j().add(m)

	comments := card.NewCommentBlock(82).
		Rule().
		Line("NEC2 model for simulating a 2-element 2m Yagi built from copper wire on a wooden").
		Line("beam in the style of WA5VJB's Cheap Yagi designs.").
		Blank().
		Line("Driven element (DE) geometry, reflector (REF) to DE spacing, and REF length are").
		Line("tuned for min SWR at %.3f MHz", c.TargetMHz).
		Blank().
		Line("REF length                     = %6.3f in", units.MetersToInches(c.ReflectorLength)).
		Line("REF to DE spacing              = %6.3f in", units.MetersToInches(c.DrivenY-c.ReflectorY)).
		Line("DE length before bending the J = %6.3f in", units.MetersToInches(3.0*quarter)).
		Line("Unbent end of DE to feedpoint  = %6.3f in", units.MetersToInches(quarter)).
		Line("Radius of bend in J            = %6.3f in", units.MetersToInches(rc)).
		Rule()

	return finish(m, comments, c.Sweep)
}
