// Package geometry holds the 3D value types the model builder consumes and
// the rotate/translate placement NEC2 applies through GM cards.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a location in meters.
type Point r3.Vec

// Pt is shorthand for Point{x, y, z}.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Vec returns p as an r3 vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec(p)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point(r3.Add(p.Vec(), q.Vec()))
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point(r3.Sub(p.Vec(), q.Vec()))
}

// Neg returns -p. Zero components stay positive zero so they render as
// 0.00000E+00 rather than -0.00000E+00.
func (p Point) Neg() Point {
	return Point{X: negate(p.X), Y: negate(p.Y), Z: negate(p.Z)}
}

func negate(v float64) float64 {
	return 0 - v
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return r3.Norm(r3.Sub(p.Vec(), q.Vec()))
}

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
	axisZ = r3.Vec{Z: 1}
)

func (p Point) rotate(deg float64, axis r3.Vec) Point {
	return Point(r3.NewRotation(deg*math.Pi/180.0, axis).Rotate(p.Vec()))
}

// RotateX rotates p about the X axis by deg degrees.
func (p Point) RotateX(deg float64) Point {
	return p.rotate(deg, axisX)
}

// RotateY rotates p about the Y axis by deg degrees.
func (p Point) RotateY(deg float64) Point {
	return p.rotate(deg, axisY)
}

// RotateZ rotates p about the Z axis by deg degrees.
func (p Point) RotateZ(deg float64) Point {
	return p.rotate(deg, axisZ)
}

// Rotation holds angles in degrees about the X, Y and Z axes.
type Rotation struct {
	X, Y, Z float64
}

// Rot is shorthand for Rotation{x, y, z}.
func Rot(x, y, z float64) Rotation {
	return Rotation{X: x, Y: y, Z: z}
}

// IsZero reports whether r rotates nothing.
func (r Rotation) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Z == 0
}
