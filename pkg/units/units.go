// Package units converts physical lengths and angles into the units a NEC2
// card stack expects: meters and degrees.
package units

import (
	"fmt"
	"strings"
)

// Unit identifies the length unit a value was measured in.
type Unit uint8

const (
	Meter Unit = iota
	Inch
	Centimeter
	Foot
)

var unitNames = map[Unit]string{
	Meter:      "m",
	Inch:       "in",
	Centimeter: "cm",
	Foot:       "ft",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", u)
}

// LookupUnit maps a unit spelling ("in", "inches", "\"", "ft", "cm", "m", ...)
// to a Unit. Matching is case-insensitive.
func LookupUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "m", "meter", "meters":
		return Meter, nil
	case "in", "inch", "inches", `"`:
		return Inch, nil
	case "cm", "centimeter", "centimeters":
		return Centimeter, nil
	case "ft", "foot", "feet", "'":
		return Foot, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// ToMeters converts a length measured in unit u to meters.
func ToMeters(value float64, u Unit) float64 {
	switch u {
	case Inch:
		return Inches(value)
	case Centimeter:
		return Centimeters(value)
	case Foot:
		return Feet(value)
	default:
		return Meters(value)
	}
}

// Meters returns v unchanged. It exists so call sites always name the unit.
func Meters(v float64) float64 {
	return v * 1.0
}

// Inches converts inches to meters.
func Inches(v float64) float64 {
	return v * 2.54 / 100.0
}

// Centimeters converts centimeters to meters.
func Centimeters(v float64) float64 {
	return v / 100.0
}

// Feet converts feet to meters.
func Feet(v float64) float64 {
	return v * 12.0 * 2.54 / 100.0
}

// Degrees returns d unchanged; NEC2 angles are already in degrees.
func Degrees(d float64) float64 {
	return d * 1.0
}

// MetersToInches converts meters back to inches. Only used for the
// human-readable comment block, never for card fields.
func MetersToInches(m float64) float64 {
	return m * 100.0 / 2.54
}
