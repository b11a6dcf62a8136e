package model

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceNEC/pkg/card"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/geometry"
)

// Header is shared by every primitive.
type Header struct {
	Tag        int
	Segments   int
	WireRadius float64 // meters
}

// MiddleSegment is the segment a centered feedpoint attaches to.
func (h Header) MiddleSegment() int {
	return h.Segments/2 + 1
}

// Primitive is either a Wire or an Arc.
type Primitive interface {
	header() Header
}

// Wire is a straight conductor between two points (GW card).
type Wire struct {
	Header
	From geometry.Point
	To   geometry.Point
}

func (w Wire) header() Header { return w.Header }

// Arc is a circular conductor in the X-Z plane centered on the origin (GA
// card). Its real position comes from the transform that follows it.
type Arc struct {
	Header
	Radius float64 // meters
	Start  float64 // degrees
	End    float64 // degrees
}

func (a Arc) header() Header { return a.Header }

// HeaderOf returns the shared tag/segments/radius of p.
func HeaderOf(p Primitive) Header {
	return p.header()
}

func encodePrimitive(p Primitive) string {
	switch v := p.(type) {
	case Wire:
		return card.Wire(v.Tag, v.Segments,
			v.From.X, v.From.Y, v.From.Z,
			v.To.X, v.To.Y, v.To.Z,
			v.WireRadius)
	case Arc:
		return card.Arc(v.Tag, v.Segments, v.Radius, v.Start, v.End, v.WireRadius)
	default:
		panic(fmt.Sprintf("model: unhandled primitive %T", p))
	}
}

// Transform is one GM card: a placement applied to firstTag and every tag
// after it.
type Transform struct {
	geometry.Placement
	FirstTag int
}

func encodeTransform(t Transform) string {
	r, tr := t.Rotate, t.Translate
	return card.Move(r.X, r.Y, r.Z, tr.X, tr.Y, tr.Z, t.FirstTag)
}
