// Package card renders NEC2 input records ("cards").
//
// NEC2 reads its input as fixed columns, so every numeric field is rendered
// at an exact width: integers right-justified in 6 characters and reals in
// 13-character signed scientific notation with 5 fractional digits.
//
//	GW     1    15 -4.82600E-01  1.77800E-01  1.00000E-01 ...
//	^^ code
//	  ^^^^^^ integer field
//	              ^^^^^^^^^^^^^ real field
package card

import "fmt"

const (
	// IntWidth is the column width of an integer field.
	IntWidth = 6
	// RealWidth is the column width of a real field.
	RealWidth = 13
	// RealDigits is the number of digits after the decimal point.
	RealDigits = 5
)

const (
	intFormat  = "%6d"
	realFormat = "% 13.5E"
)

// Number is anything FormatInt accepts. Floating point values are truncated
// toward zero.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 |
		~float32 | ~float64
}

// FormatReal renders x as a 13-character scientific notation field, with a
// space in place of the sign for non-negative values. Exponents beyond two
// digits widen the field; NEC2 geometry never reaches them.
func FormatReal(x float64) string {
	return fmt.Sprintf(realFormat, x)
}

// FormatInt renders n, truncated toward zero, right-justified in 6 characters.
func FormatInt[T Number](n T) string {
	return fmt.Sprintf(intFormat, int64(n))
}
