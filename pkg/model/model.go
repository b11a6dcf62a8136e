// Package model accumulates wires and arcs into a NEC2 geometry and compiles
// it into a card stack.
//
// Tags are assigned 1..N in call order. NEC2 only places arcs centered on the
// origin, so every arc is followed by a GM card that moves it into position
// and by a set of restoring GM cards that move everything added afterwards
// back. The restoring cards target the tag of the next primitive, which does
// not exist yet when the arc is added, so they sit in a pending slot:
//
//	AddArc     -> pending = restore(tag+1)
//	AddWire    -> flush pending, then append the wire (tag == pending target)
//	AddArc     -> flush pending, then append the arc and its placement
//	Finalize   -> discard pending (its target tag will never exist)
//
// A Model is single-use: once Finalize succeeds the text is fixed and later
// calls return it unchanged.
package model

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceNEC/pkg/card"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/geometry"
)

// State is the lifecycle stage of a Model.
type State uint8

const (
	StateEmpty State = iota
	StateBuilding
	StateFinalized
)

var stateNames = map[State]string{
	StateEmpty:     "Empty",
	StateBuilding:  "Building",
	StateFinalized: "Finalized",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", s)
}

// Feedpoint is the (tag, segment) the excitation attaches to. The zero value
// means no feedpoint was set.
type Feedpoint struct {
	Tag     int
	Segment int
}

// pendingRestore holds the restoring transforms of the most recent arc until
// a primitive claims their target tag.
type pendingRestore struct {
	target int
	steps  []geometry.Placement
}

// Model is the geometry builder. It is not safe for concurrent use.
type Model struct {
	wireRadius float64
	state      State
	lastTag    int

	primitives []Primitive
	transforms []Transform
	pending    *pendingRestore
	discarded  bool

	feed      *Feedpoint
	voltage   complex128
	radiation card.RadiationPattern

	text string
	err  error
}

// New creates an empty model whose wires default to wireRadius meters.
func New(wireRadius float64) *Model {
	return &Model{
		wireRadius: wireRadius,
		state:      StateEmpty,
		voltage:    complex(1.0, 0.0),
		radiation:  card.DefaultRadiationPattern(),
	}
}

// Option adjusts a single primitive.
type Option func(*Header)

// WithRadius overrides the model's default wire radius for one primitive.
func WithRadius(r float64) Option {
	return func(h *Header) {
		h.WireRadius = r
	}
}

// State reports where the model is in its lifecycle.
func (m *Model) State() State {
	return m.state
}

// Err returns the first error recorded by the model, if any.
func (m *Model) Err() error {
	return m.err
}

// WireRadius is the default radius applied to new primitives.
func (m *Model) WireRadius() float64 {
	return m.wireRadius
}

// Primitives returns a copy of the primitives in tag order.
func (m *Model) Primitives() []Primitive {
	return append([]Primitive(nil), m.primitives...)
}

// Transforms returns a copy of the transforms flushed so far, in emission
// order. A pending restore is not included.
func (m *Model) Transforms() []Transform {
	return append([]Transform(nil), m.transforms...)
}

// Feedpoint returns the current feedpoint and whether one was set.
func (m *Model) Feedpoint() (Feedpoint, bool) {
	if m.feed == nil {
		return Feedpoint{}, false
	}
	return *m.feed, true
}

// fail records err as the model's sticky error unless one is already set,
// and returns err.
func (m *Model) fail(err error) error {
	if m.err == nil {
		m.err = err
	}
	return err
}

// mutable reports an error if the model can no longer be changed.
func (m *Model) mutable() error {
	if m.state == StateFinalized {
		return m.fail(ErrFinalized)
	}
	return m.err
}

func (m *Model) header(segments int, opts []Option) Header {
	h := Header{Segments: segments, WireRadius: m.wireRadius}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

func validateHeader(h Header) error {
	if h.Segments < 1 {
		return fmt.Errorf("%w: segment count %d", ErrInvalidGeometry, h.Segments)
	}
	if h.WireRadius <= 0 {
		return fmt.Errorf("%w: wire radius %g", ErrInvalidGeometry, h.WireRadius)
	}
	return nil
}

// AddWire appends a straight wire from one point to another and returns its
// handle. On error the handle carries the error and the model is unchanged.
func (m *Model) AddWire(segments int, from, to geometry.Point, opts ...Option) *Element {
	if err := m.mutable(); err != nil {
		return &Element{model: m, err: err}
	}

	h := m.header(segments, opts)
	if err := validateHeader(h); err != nil {
		return &Element{model: m, err: m.fail(err)}
	}
	if from == to {
		return &Element{model: m, err: m.fail(fmt.Errorf("%w: zero-length wire at %s", ErrInvalidGeometry, from))}
	}

	h.Tag = m.nextTag()
	m.flushPending(h.Tag)
	m.primitives = append(m.primitives, Wire{Header: h, From: from, To: to})

	return &Element{model: m, header: h}
}

// AddArc appends an arc of the given radius between two angles (degrees),
// drawn in the X-Z plane around the origin and then rotated and translated
// into place. The placing transform is emitted immediately; the restoring
// transforms wait for the next primitive.
func (m *Model) AddArc(segments int, radius, start, end float64, rotate geometry.Rotation, translate geometry.Point, opts ...Option) *Element {
	if err := m.mutable(); err != nil {
		return &Element{model: m, err: err}
	}

	h := m.header(segments, opts)
	if err := validateHeader(h); err != nil {
		return &Element{model: m, err: m.fail(err)}
	}
	if radius <= 0 {
		return &Element{model: m, err: m.fail(fmt.Errorf("%w: arc radius %g", ErrInvalidGeometry, radius))}
	}

	h.Tag = m.nextTag()
	m.flushPending(h.Tag)
	m.primitives = append(m.primitives, Arc{Header: h, Radius: radius, Start: start, End: end})

	placement := geometry.Placement{Rotate: rotate, Translate: translate}
	m.transforms = append(m.transforms, Transform{Placement: placement, FirstTag: h.Tag})
	m.pending = &pendingRestore{
		target: h.Tag + 1,
		steps:  placement.Undo(),
	}

	return &Element{model: m, header: h}
}

func (m *Model) nextTag() int {
	m.lastTag++
	m.state = StateBuilding
	return m.lastTag
}

// flushPending moves a pending restore into the transform list. It is called
// with the tag just assigned to a new primitive, which must be the restore's
// target.
func (m *Model) flushPending(tag int) {
	if m.pending == nil {
		return
	}
	if m.pending.target != tag {
		panic(fmt.Sprintf("model: pending restore targets tag %d, next tag is %d", m.pending.target, tag))
	}
	for _, step := range m.pending.steps {
		m.transforms = append(m.transforms, Transform{Placement: step, FirstTag: tag})
	}
	m.pending = nil
}

// discardPending drops a restore whose target tag was never assigned.
func (m *Model) discardPending() {
	if m.pending != nil {
		m.pending = nil
		m.discarded = true
	}
}

// FeedAtMiddle attaches the excitation to the middle segment of the most
// recently added primitive.
func (m *Model) FeedAtMiddle() error {
	if err := m.mutable(); err != nil {
		return err
	}
	if len(m.primitives) == 0 {
		return m.fail(ErrNoPrimitive)
	}
	h := m.primitives[len(m.primitives)-1].header()
	m.feed = &Feedpoint{Tag: h.Tag, Segment: h.MiddleSegment()}
	return nil
}

// AttachToExcitation attaches the excitation to an explicit tag and segment.
// The reference is checked when the model is finalized.
func (m *Model) AttachToExcitation(tag, segment int) error {
	if err := m.mutable(); err != nil {
		return err
	}
	m.feed = &Feedpoint{Tag: tag, Segment: segment}
	return nil
}

// SetVoltage changes the excitation voltage from the default 1+0j.
func (m *Model) SetVoltage(v complex128) error {
	if err := m.mutable(); err != nil {
		return err
	}
	m.voltage = v
	return nil
}

// SetRadiationPattern replaces the default RP card parameters.
func (m *Model) SetRadiationPattern(rp card.RadiationPattern) error {
	if err := m.mutable(); err != nil {
		return err
	}
	m.radiation = rp
	return nil
}

func (m *Model) checkFeedpoint() error {
	if m.feed == nil {
		return nil
	}
	f := *m.feed
	if f.Tag < 1 || f.Tag > len(m.primitives) {
		return fmt.Errorf("%w: tag %d, model has %d primitives", ErrInvalidFeedpoint, f.Tag, len(m.primitives))
	}
	h := m.primitives[f.Tag-1].header()
	if f.Segment < 1 || f.Segment > h.Segments {
		return fmt.Errorf("%w: segment %d of tag %d, which has %d segments", ErrInvalidFeedpoint, f.Segment, f.Tag, h.Segments)
	}
	return nil
}

// Finalize compiles the model into its card stack: wires and arcs in tag
// order, transforms in the order they were flushed, then GE, EX, FR, RP and
// EN. A restore still pending from a trailing arc is discarded. Once
// finalized, later calls return the same text and ignore sweep.
func (m *Model) Finalize(sweep card.Sweep) (string, error) {
	if m.state == StateFinalized {
		return m.text, nil
	}
	if m.err != nil {
		return "", m.err
	}
	if err := m.checkFeedpoint(); err != nil {
		return "", m.fail(err)
	}

	m.discardPending()

	var b strings.Builder
	for _, p := range m.primitives {
		b.WriteString(encodePrimitive(p))
	}
	for _, t := range m.transforms {
		b.WriteString(encodeTransform(t))
	}
	b.WriteString(card.GeometryEnd())

	ex := card.Excitation{Real: real(m.voltage), Imag: imag(m.voltage)}
	if m.feed != nil {
		ex.Tag, ex.Segment = m.feed.Tag, m.feed.Segment
	}
	b.WriteString(card.Excite(ex))
	b.WriteString(card.Frequency(sweep))
	b.WriteString(card.Radiation(m.radiation))
	b.WriteString(card.End())

	m.text = b.String()
	m.state = StateFinalized
	return m.text, nil
}

// Stats summarizes the model for logging.
type Stats struct {
	State            State
	Primitives       int
	Wires            int
	Arcs             int
	Transforms       int
	PendingRestore   bool
	DiscardedRestore bool
	Feedpoint        Feedpoint
}

// Stats reports counts of what has been accumulated so far.
func (m *Model) Stats() Stats {
	s := Stats{
		State:            m.state,
		Primitives:       len(m.primitives),
		Transforms:       len(m.transforms),
		PendingRestore:   m.pending != nil,
		DiscardedRestore: m.discarded,
	}
	for _, p := range m.primitives {
		switch p.(type) {
		case Wire:
			s.Wires++
		case Arc:
			s.Arcs++
		}
	}
	if m.feed != nil {
		s.Feedpoint = *m.feed
	}
	return s
}
