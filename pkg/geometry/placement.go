package geometry

// Placement is a rigid move in the order NEC2 applies a GM card: rotate about
// X, then Y, then Z, then translate.
type Placement struct {
	Rotate    Rotation
	Translate Point
}

// Apply moves p by the placement.
func (pl Placement) Apply(p Point) Point {
	return p.RotateX(pl.Rotate.X).
		RotateY(pl.Rotate.Y).
		RotateZ(pl.Rotate.Z).
		Add(pl.Translate)
}

// Undo returns the placements that, applied in order, reverse pl. A single GM
// card cannot express the inverse because it always rotates before it
// translates, so the inverse is split into one step per sub-transform:
// translation first, then Z, Y and X rotations.
func (pl Placement) Undo() []Placement {
	return []Placement{
		{Translate: pl.Translate.Neg()},
		{Rotate: Rotation{Z: negate(pl.Rotate.Z)}},
		{Rotate: Rotation{Y: negate(pl.Rotate.Y)}},
		{Rotate: Rotation{X: negate(pl.Rotate.X)}},
	}
}

// ApplyAll applies each placement to p in order.
func ApplyAll(p Point, steps []Placement) Point {
	for _, s := range steps {
		p = s.Apply(p)
	}
	return p
}
