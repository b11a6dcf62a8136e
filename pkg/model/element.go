package model

// Element is the handle returned when a primitive is added. It lets a design
// chain a feedpoint onto the primitive it just created:
//
//	m.AddWire(51, c1, c2).FeedAtMiddle()
type Element struct {
	model  *Model
	header Header
	err    error
}

// Tag is the primitive's tag, or 0 if adding it failed.
func (e *Element) Tag() int {
	return e.header.Tag
}

// Segments is the primitive's segment count.
func (e *Element) Segments() int {
	return e.header.Segments
}

// MiddleSegment is floor(segments/2)+1.
func (e *Element) MiddleSegment() int {
	return e.header.MiddleSegment()
}

// Err reports why the primitive could not be added.
func (e *Element) Err() error {
	return e.err
}

// FeedAtMiddle attaches the excitation to this primitive's middle segment.
func (e *Element) FeedAtMiddle() *Element {
	return e.FeedAt(e.MiddleSegment())
}

// FeedAt attaches the excitation to the given segment of this primitive.
func (e *Element) FeedAt(segment int) *Element {
	if e.err != nil {
		return e
	}
	if err := e.model.AttachToExcitation(e.header.Tag, segment); err != nil {
		e.err = err
	}
	return e
}
