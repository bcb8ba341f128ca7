// Package codec implements the byte-level wire formats for BN254 field
// elements and elliptic curve points as produced by gnark and consumed by
// on-chain Groth16 verifiers.
//
// All field elements are serialized big-endian. Extension field elements are
// serialized imaginary part first, matching gnark's marshaller. Points come
// in three layouts, selected by an Encoding value.
package codec

import "fmt"

// Encoding selects one of the supported point wire layouts.
type Encoding uint8

const (
	// EncodingUncompressed is the raw affine form: x || y, big-endian, with
	// no flag bits. A G1 point is 64 bytes, a G2 point 128 bytes.
	EncodingUncompressed Encoding = iota

	// EncodingCompressed stores only the x-coordinate, with a 2-bit flag in
	// the most significant bits of the leading byte selecting which square
	// root to take for y.
	EncodingCompressed

	// EncodingGnark is gnark-crypto's own compressed form. The byte layout
	// coincides with EncodingCompressed bit for bit; decoding is delegated
	// to the upstream marshaller, which additionally enforces membership in
	// the prime-order subgroup.
	EncodingGnark
)

// Encoded point sizes in bytes.
const (
	SizeG1Compressed   = 32
	SizeG1Uncompressed = 64
	SizeG2Compressed   = 64
	SizeG2Uncompressed = 128
)

// Flag values carried in the two most significant bits of the leading byte
// of a compressed point. Same convention as gnark-crypto's marshaller: the
// "positive" flag selects the numerically smaller square root.
const (
	flagMask     byte = 0b11 << 6
	flagPositive byte = 0b10 << 6
	flagNegative byte = 0b11 << 6
	flagInfinity byte = 0b01 << 6
)

func (e Encoding) String() string {
	switch e {
	case EncodingUncompressed:
		return "uncompressed"
	case EncodingCompressed:
		return "compressed"
	case EncodingGnark:
		return "gnark"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// G1Size returns the encoded size of a G1 point in this layout.
func (e Encoding) G1Size() int {
	if e == EncodingUncompressed {
		return SizeG1Uncompressed
	}
	return SizeG1Compressed
}

// G2Size returns the encoded size of a G2 point in this layout.
func (e Encoding) G2Size() int {
	if e == EncodingUncompressed {
		return SizeG2Uncompressed
	}
	return SizeG2Compressed
}
