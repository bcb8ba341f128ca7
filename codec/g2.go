package codec

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// bTwistCurveCoeff is the constant term of the twist curve equation
// y² = x³ + 3/(9+u) over Fq2.
var bTwistCurveCoeff bn254.E2

func init() {
	var nineU bn254.E2
	nineU.A0.SetUint64(9)
	nineU.A1.SetUint64(1)
	nineU.Inverse(&nineU)
	var three fp.Element
	three.SetUint64(3)
	bTwistCurveCoeff.MulByElement(&nineU, &three)
}

// DecodeG2 parses a G2 point in the given layout. Coordinates are read
// imaginary part first. The compressed layout admits the group identity via
// the infinity flag; the flag byte alone decides, with no coordinate
// parsing.
func DecodeG2(buf []byte, enc Encoding, subgroupCheck bool) (bn254.G2Affine, error) {
	switch enc {
	case EncodingUncompressed:
		return decodeG2Uncompressed(buf, subgroupCheck)
	case EncodingCompressed:
		return decodeG2Compressed(buf, subgroupCheck)
	case EncodingGnark:
		return decodeG2Gnark(buf)
	default:
		return bn254.G2Affine{}, fmt.Errorf("codec: unknown G2 encoding %d", enc)
	}
}

// EncodeG2 serializes a G2 point in the given layout.
func EncodeG2(p *bn254.G2Affine, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingUncompressed:
		out := make([]byte, SizeG2Uncompressed)
		x := Fq2ToBytes(&p.X)
		y := Fq2ToBytes(&p.Y)
		copy(out[:2*fp.Bytes], x[:])
		copy(out[2*fp.Bytes:], y[:])
		return out, nil
	case EncodingCompressed:
		out := make([]byte, SizeG2Compressed)
		if p.IsInfinity() {
			out[0] = flagInfinity
			return out, nil
		}
		x := Fq2ToBytes(&p.X)
		copy(out, x[:])
		var negY bn254.E2
		negY.Neg(&p.Y)
		if fq2Less(&p.Y, &negY) {
			out[0] |= flagPositive
		} else {
			out[0] |= flagNegative
		}
		return out, nil
	case EncodingGnark:
		b := p.Bytes()
		return b[:], nil
	default:
		return nil, fmt.Errorf("codec: unknown G2 encoding %d", enc)
	}
}

func decodeG2Uncompressed(buf []byte, subgroupCheck bool) (bn254.G2Affine, error) {
	if len(buf) != SizeG2Uncompressed {
		return bn254.G2Affine{}, &BufferLengthError{Context: "uncompressed G2 point", Expected: SizeG2Uncompressed, Actual: len(buf)}
	}
	var p bn254.G2Affine
	var err error
	if p.X, err = Fq2FromBytes(buf[:2*fp.Bytes]); err != nil {
		return bn254.G2Affine{}, err
	}
	if p.Y, err = Fq2FromBytes(buf[2*fp.Bytes:]); err != nil {
		return bn254.G2Affine{}, err
	}
	if !p.IsInfinity() && !p.IsOnCurve() {
		return bn254.G2Affine{}, ErrInvalidPoint
	}
	if subgroupCheck && !p.IsInSubGroup() {
		return bn254.G2Affine{}, ErrPointNotInSubgroup
	}
	return p, nil
}

func decodeG2Compressed(buf []byte, subgroupCheck bool) (bn254.G2Affine, error) {
	if len(buf) != SizeG2Compressed {
		return bn254.G2Affine{}, &BufferLengthError{Context: "compressed G2 point", Expected: SizeG2Compressed, Actual: len(buf)}
	}
	flag := buf[0] & flagMask
	if flag == flagInfinity {
		return bn254.G2Affine{}, nil
	}
	if flag != flagPositive && flag != flagNegative {
		return bn254.G2Affine{}, ErrInvalidFlag
	}

	masked := make([]byte, 2*fp.Bytes)
	copy(masked, buf)
	masked[0] &^= flagMask
	x, err := Fq2FromBytes(masked)
	if err != nil {
		return bn254.G2Affine{}, err
	}

	smaller, larger, err := g2RootsFromX(&x)
	if err != nil {
		return bn254.G2Affine{}, err
	}
	p := bn254.G2Affine{X: x}
	if flag == flagPositive {
		p.Y = smaller
	} else {
		p.Y = larger
	}
	if subgroupCheck && !p.IsInSubGroup() {
		return bn254.G2Affine{}, ErrPointNotInSubgroup
	}
	return p, nil
}

func decodeG2Gnark(buf []byte) (bn254.G2Affine, error) {
	if len(buf) != SizeG2Compressed {
		return bn254.G2Affine{}, &BufferLengthError{Context: "gnark G2 point", Expected: SizeG2Compressed, Actual: len(buf)}
	}
	var p bn254.G2Affine
	if _, err := p.SetBytes(buf); err != nil {
		return bn254.G2Affine{}, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return p, nil
}

// g2RootsFromX recovers the two candidate y-coordinates for x, ordered by
// fq2Less. The smaller root is the canonical one.
func g2RootsFromX(x *bn254.E2) (smaller, larger bn254.E2, err error) {
	var ySquared bn254.E2
	ySquared.Square(x)
	ySquared.Mul(&ySquared, x)
	ySquared.Add(&ySquared, &bTwistCurveCoeff)

	if ySquared.Legendre() == -1 {
		return smaller, larger, ErrInvalidPoint
	}
	var y bn254.E2
	y.Sqrt(&ySquared)
	var negY bn254.E2
	negY.Neg(&y)
	if fq2Less(&y, &negY) {
		return y, negY, nil
	}
	return negY, y, nil
}

// fq2Less orders extension field elements by imaginary part first, then real
// part.
func fq2Less(a, b *bn254.E2) bool {
	switch a.A1.Cmp(&b.A1) {
	case -1:
		return true
	case 1:
		return false
	}
	return a.A0.Cmp(&b.A0) == -1
}
