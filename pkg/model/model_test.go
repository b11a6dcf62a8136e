package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceNEC/pkg/card"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/geometry"
)

var (
	p1 = geometry.Pt(-0.4826, 0.1778, 0.1)
	p2 = geometry.Pt(0, 0.1778, 0.1)
	p3 = geometry.Pt(0, 0.1778, 0.0873)
	p4 = geometry.Pt(-0.4826, 0.1778, 0.0873)
)

func TestEndToEndSingleWire(t *testing.T) {
	m := New(0.0016)
	m.AddWire(15, p1, p2)
	if err := m.FeedAtMiddle(); err != nil {
		t.Fatalf("FeedAtMiddle returned error: %v", err)
	}

	text, err := m.Finalize(card.Sweep{Start: 144.0, Step: 0.1, Count: 40})
	if err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}

	want := strings.Join([]string{
		"GW     1    15 -4.82600E-01  1.77800E-01  1.00000E-01  0.00000E+00  1.77800E-01  1.00000E-01  1.60000E-03",
		"GE     0",
		"EX     0     1     8     0  1.00000E+00  0.00000E+00",
		"FR     0    40     0     0  1.44000E+02  1.00000E-01",
		"RP     0    37    37     0  0.00000E+00  0.00000E+00  1.00000E+01  1.00000E+01",
		"EN",
	}, "\n") + "\n"

	if text != want {
		t.Errorf("card stack mismatch:\n got:\n%s\nwant:\n%s", text, want)
	}
}

func TestTagsAreSequential(t *testing.T) {
	m := New(0.001)
	var tags []int
	tags = append(tags, m.AddWire(3, p1, p2).Tag())
	tags = append(tags, m.AddArc(5, 0.01, 90, 270, geometry.Rot(0, 0, 0), p2).Tag())
	tags = append(tags, m.AddArc(5, 0.01, 90, 270, geometry.Rot(0, 0, 180), p3).Tag())
	tags = append(tags, m.AddWire(3, p3, p4).Tag())
	tags = append(tags, m.AddWire(1, p2, p3).Tag())

	for i, tag := range tags {
		if tag != i+1 {
			t.Fatalf("tags = %v, want 1..%d", tags, len(tags))
		}
	}
	for i, p := range m.Primitives() {
		if HeaderOf(p).Tag != i+1 {
			t.Fatalf("primitive %d has tag %d", i, HeaderOf(p).Tag)
		}
	}
}

func TestFeedAtMiddleSegment(t *testing.T) {
	cases := []struct {
		segments int
		want     int
	}{
		{1, 1},
		{2, 2},
		{15, 8},
		{41, 21},
		{51, 26},
	}

	for _, tc := range cases {
		m := New(0.001)
		e := m.AddWire(tc.segments, p1, p2).FeedAtMiddle()
		if e.Err() != nil {
			t.Fatalf("FeedAtMiddle returned error: %v", e.Err())
		}
		fp, ok := m.Feedpoint()
		if !ok || fp.Tag != 1 || fp.Segment != tc.want {
			t.Errorf("segments %d: feedpoint = %+v, want tag 1 segment %d", tc.segments, fp, tc.want)
		}
	}
}

func TestFeedAtMiddleUsesMostRecentPrimitive(t *testing.T) {
	m := New(0.001)
	m.AddWire(11, p1, p2)
	m.AddArc(15, 0.01, 90, 270, geometry.Rot(0, 0, 0), p2)
	if err := m.FeedAtMiddle(); err != nil {
		t.Fatalf("FeedAtMiddle returned error: %v", err)
	}
	fp, _ := m.Feedpoint()
	if fp != (Feedpoint{Tag: 2, Segment: 8}) {
		t.Errorf("feedpoint = %+v, want {2 8}", fp)
	}
}

func TestFeedAtMiddleBeforePrimitive(t *testing.T) {
	m := New(0.001)
	if err := m.FeedAtMiddle(); !errors.Is(err, ErrNoPrimitive) {
		t.Fatalf("FeedAtMiddle error = %v, want ErrNoPrimitive", err)
	}
	if _, err := m.Finalize(card.Sweep{}); !errors.Is(err, ErrNoPrimitive) {
		t.Fatalf("Finalize error = %v, want sticky ErrNoPrimitive", err)
	}
	if m.State() != StateEmpty {
		t.Errorf("State() = %s, want %s", m.State(), StateEmpty)
	}
}

func TestRestoreFlushedBeforeFollowingPrimitive(t *testing.T) {
	m := New(0.001)
	m.AddWire(5, p1, p2)
	m.AddArc(7, 0.01, 90, 270, geometry.Rot(0, 0, 180), geometry.Pt(1, 2, 3))

	if got := len(m.Transforms()); got != 1 {
		t.Fatalf("transforms before next primitive = %d, want 1 (placement only)", got)
	}
	if !m.Stats().PendingRestore {
		t.Fatal("expected a pending restore after AddArc")
	}

	m.AddWire(5, p3, p4)

	transforms := m.Transforms()
	if len(transforms) != 5 {
		t.Fatalf("transforms = %d, want 5", len(transforms))
	}

	place := transforms[0]
	if place.FirstTag != 2 || place.Rotate != geometry.Rot(0, 0, 180) || place.Translate != geometry.Pt(1, 2, 3) {
		t.Errorf("placement = %+v, want rot Z 180, translate (1,2,3) at tag 2", place)
	}

	want := []geometry.Placement{
		{Translate: geometry.Pt(-1, -2, -3)},
		{Rotate: geometry.Rot(0, 0, -180)},
		{Rotate: geometry.Rot(0, 0, 0)},
		{Rotate: geometry.Rot(0, 0, 0)},
	}
	for i, w := range want {
		got := transforms[i+1]
		if got.FirstTag != 3 {
			t.Errorf("restore %d targets tag %d, want 3", i, got.FirstTag)
		}
		if got.Placement != w {
			t.Errorf("restore %d = %+v, want %+v", i, got.Placement, w)
		}
	}

	text, err := m.Finalize(card.Sweep{Start: 146, Step: 0.1, Count: 1})
	if err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}
	if n := countCards(text, card.CodeMove); n != 5 {
		t.Errorf("GM cards = %d, want 5", n)
	}
	restore := "GM     0     0  0.00000E+00  0.00000E+00  0.00000E+00 -1.00000E+00 -2.00000E+00 -3.00000E+00  3.00000E+00\n"
	if !strings.Contains(text, restore) {
		t.Errorf("missing inverse translation card %q in:\n%s", restore, text)
	}
	if m.Stats().DiscardedRestore {
		t.Error("restore reported as discarded although a primitive followed the arc")
	}
}

func TestTrailingArcRestoreDiscarded(t *testing.T) {
	m := New(0.001)
	m.AddWire(5, p1, p2)
	m.AddArc(7, 0.01, 90, 270, geometry.Rot(0, 0, 0), geometry.Pt(-0.4826, 0.1778, 0.09365))

	text, err := m.Finalize(card.Sweep{Start: 141, Step: 0.25, Count: 29})
	if err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}

	if n := countCards(text, card.CodeMove); n != 1 {
		t.Errorf("GM cards = %d, want only the placement", n)
	}
	if strings.Contains(text, card.FormatReal(3)+"\n") {
		t.Errorf("output references tag 3, which does not exist:\n%s", text)
	}
	stats := m.Stats()
	if !stats.DiscardedRestore || stats.PendingRestore {
		t.Errorf("stats = %+v, want discarded restore and nothing pending", stats)
	}
}

func TestConsecutiveArcs(t *testing.T) {
	m := New(0.001)
	m.AddArc(5, 0.01, 90, 270, geometry.Rot(0, 0, 0), p1)
	m.AddArc(5, 0.01, 90, 270, geometry.Rot(0, 0, 180), p2)
	if _, err := m.Finalize(card.Sweep{}); err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}

	var firstTags []int
	for _, tr := range m.Transforms() {
		firstTags = append(firstTags, tr.FirstTag)
	}
	want := []int{1, 2, 2, 2, 2, 2}
	if len(firstTags) != len(want) {
		t.Fatalf("transform tags = %v, want %v", firstTags, want)
	}
	for i := range want {
		if firstTags[i] != want[i] {
			t.Fatalf("transform tags = %v, want %v", firstTags, want)
		}
	}
}

func TestCardOrdering(t *testing.T) {
	m := New(0.001)
	m.AddWire(5, p1, p2)
	m.AddArc(7, 0.01, 90, 270, geometry.Rot(0, 0, 0), p3)
	m.AddWire(5, p3, p4).FeedAtMiddle()

	text, err := m.Finalize(card.Sweep{Start: 144, Step: 0.1, Count: 40})
	if err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}

	var codes []string
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		codes = append(codes, line[:2])
	}
	want := "GW GA GW GM GM GM GM GM GE EX FR RP EN"
	if got := strings.Join(codes, " "); got != want {
		t.Errorf("card order = %s, want %s", got, want)
	}
}

func TestNoFeedpointEmitsZeroReference(t *testing.T) {
	m := New(0.001)
	m.AddWire(5, p1, p2)
	text, err := m.Finalize(card.Sweep{Start: 144, Step: 0.1, Count: 1})
	if err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}
	if !strings.Contains(text, "EX     0     0     0     0") {
		t.Errorf("expected EX card with tag 0 segment 0:\n%s", text)
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	m := New(0.001)
	m.AddWire(5, p1, p2).FeedAtMiddle()

	first, err := m.Finalize(card.Sweep{Start: 144, Step: 0.1, Count: 40})
	if err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}
	second, err := m.Finalize(card.Sweep{Start: 1, Step: 1, Count: 1})
	if err != nil {
		t.Fatalf("second Finalize returned error: %v", err)
	}
	if first != second {
		t.Errorf("second Finalize changed output:\n%s\nvs\n%s", first, second)
	}
	if m.State() != StateFinalized {
		t.Errorf("State() = %s, want %s", m.State(), StateFinalized)
	}
}

func TestMutationAfterFinalize(t *testing.T) {
	m := New(0.001)
	m.AddWire(5, p1, p2)
	text, _ := m.Finalize(card.Sweep{})

	if e := m.AddWire(5, p3, p4); !errors.Is(e.Err(), ErrFinalized) || e.Tag() != 0 {
		t.Errorf("AddWire after finalize: tag %d err %v, want ErrFinalized", e.Tag(), e.Err())
	}
	if err := m.FeedAtMiddle(); !errors.Is(err, ErrFinalized) {
		t.Errorf("FeedAtMiddle after finalize error = %v, want ErrFinalized", err)
	}
	if !errors.Is(m.Err(), ErrFinalized) {
		t.Errorf("Err() = %v, want ErrFinalized", m.Err())
	}

	again, err := m.Finalize(card.Sweep{})
	if err != nil || again != text {
		t.Errorf("Finalize after misuse = %q, %v; want the first text", again, err)
	}
	if len(m.Primitives()) != 1 {
		t.Errorf("primitives = %d, want 1", len(m.Primitives()))
	}
}

func TestDeterministicOutput(t *testing.T) {
	build := func() string {
		m := New(0.0015875)
		m.AddWire(51, p1, p2)
		m.AddArc(15, 0.0127, 90, 270, geometry.Rot(0, 0, 0), p2)
		m.AddWire(51, p3, p4).FeedAtMiddle()
		m.AddArc(15, 0.0127, 90, 270, geometry.Rot(0, 0, 180), p1)
		text, err := m.Finalize(card.SweepBetween(144, 148, 0.1))
		if err != nil {
			t.Fatalf("Finalize returned error: %v", err)
		}
		return text
	}

	if a, b := build(), build(); a != b {
		t.Errorf("identical call sequences produced different output:\n%s\nvs\n%s", a, b)
	}
}

func TestInvalidGeometry(t *testing.T) {
	tests := []struct {
		name  string
		build func(m *Model) *Element
	}{
		{"zero segments", func(m *Model) *Element { return m.AddWire(0, p1, p2) }},
		{"negative segments", func(m *Model) *Element { return m.AddWire(-3, p1, p2) }},
		{"zero length wire", func(m *Model) *Element { return m.AddWire(5, p1, p1) }},
		{"zero arc radius", func(m *Model) *Element {
			return m.AddArc(5, 0, 90, 270, geometry.Rot(0, 0, 0), p1)
		}},
		{"zero wire radius override", func(m *Model) *Element { return m.AddWire(5, p1, p2, WithRadius(0)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(0.001)
			e := tt.build(m)
			if !errors.Is(e.Err(), ErrInvalidGeometry) {
				t.Fatalf("Err() = %v, want ErrInvalidGeometry", e.Err())
			}
			if e.Tag() != 0 || len(m.Primitives()) != 0 {
				t.Errorf("failed add consumed a tag: tag %d, primitives %d", e.Tag(), len(m.Primitives()))
			}

			// Sticky: later adds are ignored and finalize reports the first error.
			if e := m.AddWire(5, p1, p2); e.Err() == nil {
				t.Error("AddWire after failure succeeded")
			}
			if _, err := m.Finalize(card.Sweep{}); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("Finalize error = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}

func TestAttachToExcitation(t *testing.T) {
	m := New(0.001)
	m.AddWire(25, p1, p2)
	m.AddWire(1, p2, p3)
	if err := m.AttachToExcitation(2, 1); err != nil {
		t.Fatalf("AttachToExcitation returned error: %v", err)
	}
	text, err := m.Finalize(card.Sweep{Start: 145.41, Step: 0.1, Count: 15})
	if err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}
	if !strings.Contains(text, "EX     0     2     1     0") {
		t.Errorf("expected EX on tag 2 segment 1:\n%s", text)
	}
}

func TestInvalidFeedpoint(t *testing.T) {
	cases := []struct {
		name         string
		tag, segment int
	}{
		{"tag zero", 0, 1},
		{"tag past end", 3, 1},
		{"segment zero", 1, 0},
		{"segment past end", 1, 26},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(0.001)
			m.AddWire(25, p1, p2)
			m.AddWire(1, p2, p3)
			if err := m.AttachToExcitation(tc.tag, tc.segment); err != nil {
				t.Fatalf("AttachToExcitation returned error: %v", err)
			}
			if _, err := m.Finalize(card.Sweep{}); !errors.Is(err, ErrInvalidFeedpoint) {
				t.Errorf("Finalize error = %v, want ErrInvalidFeedpoint", err)
			}
			if m.State() == StateFinalized {
				t.Error("model finalized despite invalid feedpoint")
			}
		})
	}
}

func TestRadiusOverride(t *testing.T) {
	m := New(0.001)
	m.AddWire(5, p1, p2, WithRadius(0.002))
	m.AddWire(5, p3, p4)

	prims := m.Primitives()
	if r := HeaderOf(prims[0]).WireRadius; r != 0.002 {
		t.Errorf("overridden radius = %v, want 0.002", r)
	}
	if r := HeaderOf(prims[1]).WireRadius; r != 0.001 {
		t.Errorf("default radius = %v, want 0.001", r)
	}
}

func TestRadiationAndVoltageOverride(t *testing.T) {
	m := New(0.001)
	m.AddWire(5, p1, p2).FeedAtMiddle()

	rp := card.DefaultRadiationPattern()
	rp.Theta = 19
	if err := m.SetRadiationPattern(rp); err != nil {
		t.Fatalf("SetRadiationPattern returned error: %v", err)
	}
	if err := m.SetVoltage(complex(2, -1)); err != nil {
		t.Fatalf("SetVoltage returned error: %v", err)
	}

	text, err := m.Finalize(card.Sweep{})
	if err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}
	if !strings.Contains(text, "RP     0    19    37     0") {
		t.Errorf("RP override missing:\n%s", text)
	}
	if !strings.Contains(text, "  2.00000E+00 -1.00000E+00\n") {
		t.Errorf("voltage override missing:\n%s", text)
	}
}

func TestStats(t *testing.T) {
	m := New(0.001)
	m.AddWire(5, p1, p2)
	m.AddArc(7, 0.01, 90, 270, geometry.Rot(0, 0, 0), p3)
	m.AddWire(5, p3, p4).FeedAtMiddle()

	s := m.Stats()
	if s.Primitives != 3 || s.Wires != 2 || s.Arcs != 1 || s.Transforms != 5 {
		t.Errorf("stats = %+v", s)
	}
	if s.Feedpoint != (Feedpoint{Tag: 3, Segment: 3}) {
		t.Errorf("stats feedpoint = %+v, want {3 3}", s.Feedpoint)
	}
	if s.State != StateBuilding {
		t.Errorf("stats state = %s, want %s", s.State, StateBuilding)
	}
}

func TestStateString(t *testing.T) {
	if StateFinalized.String() != "Finalized" {
		t.Errorf("StateFinalized.String() = %q", StateFinalized.String())
	}
	if got := State(9).String(); got != "State(9)" {
		t.Errorf("State(9).String() = %q", got)
	}
}

func countCards(text string, code card.Code) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, string(code)) {
			n++
		}
	}
	return n
}
