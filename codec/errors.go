package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFieldElement is returned when a 32-byte big-endian value is
	// greater than or equal to the field modulus.
	ErrInvalidFieldElement = errors.New("codec: value is not a canonical field element")

	// ErrInvalidFlag is returned when the leading flag bits of a compressed
	// point do not name a layout the decoder accepts.
	ErrInvalidFlag = errors.New("codec: invalid compressed point flag")

	// ErrInvalidPoint is returned when coordinates do not describe a point
	// on the curve, or when no y exists for a compressed x-coordinate.
	ErrInvalidPoint = errors.New("codec: invalid curve point")

	// ErrPointNotInSubgroup is returned by decoders configured to check
	// subgroup membership when the point is on the curve but outside the
	// prime-order subgroup.
	ErrPointNotInSubgroup = errors.New("codec: point not in the prime-order subgroup")
)

// BufferLengthError reports an input buffer whose length does not match any
// wire layout of the object being decoded.
type BufferLengthError struct {
	Context  string
	Expected int
	Actual   int
}

func (e *BufferLengthError) Error() string {
	return fmt.Sprintf("codec: %s: expected %d bytes, got %d", e.Context, e.Expected, e.Actual)
}
