package card

import (
	"math"
	"strings"
)

// Code is the two-letter record type at the start of every card.
type Code string

const (
	CodeWire       Code = "GW"
	CodeArc        Code = "GA"
	CodeMove       Code = "GM"
	CodeGeomEnd    Code = "GE"
	CodeExcitation Code = "EX"
	CodeFrequency  Code = "FR"
	CodeRadiation  Code = "RP"
	CodeEnd        Code = "EN"
	CodeComment    Code = "CM"
	CodeCommentEnd Code = "CE"
)

// Excitation describes the voltage source attached to a segment (EX card).
type Excitation struct {
	Tag     int
	Segment int
	Real    float64 // Real part of the source voltage
	Imag    float64 // Imaginary part of the source voltage
}

// DefaultExcitation returns a 1+0j volt source at the given tag and segment.
func DefaultExcitation(tag, segment int) Excitation {
	return Excitation{Tag: tag, Segment: segment, Real: 1.0, Imag: 0.0}
}

// Sweep is a linear frequency sweep (FR card). Frequencies are in MHz.
type Sweep struct {
	Start float64
	Step  float64
	Count int
}

// SweepBetween builds a sweep from lo toward hi in steps of step. The count is
// the rounded number of steps, so (148-144)/0.1 gives 40 rather than the 39
// a truncating division would.
func SweepBetween(lo, hi, step float64) Sweep {
	return Sweep{Start: lo, Step: step, Count: int(math.Round((hi - lo) / step))}
}

// RadiationPattern is the far-field request (RP card).
type RadiationPattern struct {
	Mode   int
	Theta  int // Number of theta steps
	Phi    int // Number of phi steps
	XNDA   int
	Theta0 float64 // Starting theta, degrees
	Phi0   float64 // Starting phi, degrees
	DTheta float64 // Theta increment, degrees
	DPhi   float64 // Phi increment, degrees
}

// DefaultRadiationPattern is the pattern every design requests unless it
// overrides it: 37x37 points on a 10 degree grid starting at 0.
func DefaultRadiationPattern() RadiationPattern {
	return RadiationPattern{
		Mode:   0,
		Theta:  37,
		Phi:    37,
		XNDA:   0,
		Theta0: 0.0,
		Phi0:   0.0,
		DTheta: 10.0,
		DPhi:   10.0,
	}
}

type line struct {
	b strings.Builder
}

func newLine(code Code) *line {
	l := &line{}
	l.b.WriteString(string(code))
	return l
}

func (l *line) ints(values ...int) *line {
	for _, v := range values {
		l.b.WriteString(FormatInt(v))
	}
	return l
}

func (l *line) reals(values ...float64) *line {
	for _, v := range values {
		l.b.WriteString(FormatReal(v))
	}
	return l
}

func (l *line) String() string {
	return l.b.String() + "\n"
}

// Wire renders a GW card: a straight wire between two points. Lengths are in
// meters.
func Wire(tag, segments int, x1, y1, z1, x2, y2, z2, radius float64) string {
	return newLine(CodeWire).
		ints(tag, segments).
		reals(x1, y1, z1, x2, y2, z2, radius).
		String()
}

// Arc renders a GA card: an arc in the X-Z plane centered on the origin.
// Angles are in degrees. The three trailing fields are unused and always
// zero.
func Arc(tag, segments int, arcRadius, startAngle, endAngle, wireRadius float64) string {
	const notUsed = 0.0
	return newLine(CodeArc).
		ints(tag, segments).
		reals(arcRadius, startAngle, endAngle, wireRadius).
		reals(notUsed, notUsed, notUsed).
		String()
}

// Move renders a GM card: rotate about X, Y, Z (degrees) then translate
// (meters) every structure whose tag is firstTag or greater.
func Move(rotX, rotY, rotZ, trX, trY, trZ float64, firstTag int) string {
	const (
		tagIncrement  = 0
		newStructures = 0
	)
	return newLine(CodeMove).
		ints(tagIncrement, newStructures).
		reals(rotX, rotY, rotZ, trX, trY, trZ).
		reals(float64(firstTag)).
		String()
}

// GeometryEnd renders the GE card closing the geometry section. No ground
// plane is modeled.
func GeometryEnd() string {
	const noGround = 0
	return newLine(CodeGeomEnd).ints(noGround).String()
}

// Excite renders an EX card for a voltage source.
func Excite(e Excitation) string {
	const (
		voltageSource = 0
		reserved      = 0
	)
	return newLine(CodeExcitation).
		ints(voltageSource, e.Tag, e.Segment, reserved).
		reals(e.Real, e.Imag).
		String()
}

// Frequency renders an FR card for a linear sweep.
func Frequency(s Sweep) string {
	const (
		linearStep = 0
		reserved   = 0
	)
	return newLine(CodeFrequency).
		ints(linearStep, s.Count, reserved, reserved).
		reals(s.Start, s.Step).
		String()
}

// Radiation renders an RP card.
func Radiation(rp RadiationPattern) string {
	return newLine(CodeRadiation).
		ints(rp.Mode, rp.Theta, rp.Phi, rp.XNDA).
		reals(rp.Theta0, rp.Phi0, rp.DTheta, rp.DPhi).
		String()
}

// End renders the EN card that terminates the stack.
func End() string {
	return newLine(CodeEnd).String()
}
