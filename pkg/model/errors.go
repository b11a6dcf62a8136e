package model

import "errors"

var (
	// ErrNoPrimitive is returned when a feedpoint is placed on the most
	// recent primitive before any primitive exists.
	ErrNoPrimitive = errors.New("model: no primitive added yet")
	// ErrFinalized is returned when a finalized model is mutated.
	ErrFinalized = errors.New("model: already finalized")
	// ErrInvalidGeometry is returned for segment counts below one,
	// non-positive radii and zero-length wires.
	ErrInvalidGeometry = errors.New("model: invalid geometry")
	// ErrInvalidFeedpoint is returned at finalize time when the excitation
	// references a tag or segment that does not exist.
	ErrInvalidFeedpoint = errors.New("model: invalid feedpoint")
)
