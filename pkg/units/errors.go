package units

import "errors"

var (
	// ErrUnknownUnit is returned when a unit spelling is not recognized.
	ErrUnknownUnit = errors.New("units: unknown unit")
	// ErrBadQuantity is returned for syntactically valid input that does not
	// describe a usable length, such as a zero denominator.
	ErrBadQuantity = errors.New("units: bad quantity")
)
