package codec

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// bCurveCoeff is the constant term of the G1 curve equation y² = x³ + 3.
var bCurveCoeff fp.Element

func init() {
	bCurveCoeff.SetUint64(3)
}

// DecodeG1 parses a G1 point in the given layout. For the uncompressed and
// compressed layouts, subgroupCheck controls whether membership in the
// prime-order subgroup is verified on top of the curve equation; the gnark
// layout always checks, upstream.
func DecodeG1(buf []byte, enc Encoding, subgroupCheck bool) (bn254.G1Affine, error) {
	switch enc {
	case EncodingUncompressed:
		return decodeG1Uncompressed(buf, subgroupCheck)
	case EncodingCompressed:
		return decodeG1Compressed(buf, subgroupCheck)
	case EncodingGnark:
		return decodeG1Gnark(buf)
	default:
		return bn254.G1Affine{}, fmt.Errorf("codec: unknown G1 encoding %d", enc)
	}
}

// EncodeG1 serializes a G1 point in the given layout. The compressed layout
// cannot express the group identity; encoding it returns ErrInvalidPoint.
func EncodeG1(p *bn254.G1Affine, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingUncompressed:
		out := make([]byte, SizeG1Uncompressed)
		x := p.X.Bytes()
		y := p.Y.Bytes()
		copy(out[:fp.Bytes], x[:])
		copy(out[fp.Bytes:], y[:])
		return out, nil
	case EncodingCompressed:
		if p.IsInfinity() {
			return nil, ErrInvalidPoint
		}
		out := make([]byte, SizeG1Compressed)
		x := p.X.Bytes()
		copy(out, x[:])
		var negY fp.Element
		negY.Neg(&p.Y)
		if p.Y.Cmp(&negY) < 0 {
			out[0] |= flagPositive
		} else {
			out[0] |= flagNegative
		}
		return out, nil
	case EncodingGnark:
		b := p.Bytes()
		return b[:], nil
	default:
		return nil, fmt.Errorf("codec: unknown G1 encoding %d", enc)
	}
}

func decodeG1Uncompressed(buf []byte, subgroupCheck bool) (bn254.G1Affine, error) {
	if len(buf) != SizeG1Uncompressed {
		return bn254.G1Affine{}, &BufferLengthError{Context: "uncompressed G1 point", Expected: SizeG1Uncompressed, Actual: len(buf)}
	}
	var p bn254.G1Affine
	var err error
	if p.X, err = FqFromBytes(buf[:fp.Bytes]); err != nil {
		return bn254.G1Affine{}, err
	}
	if p.Y, err = FqFromBytes(buf[fp.Bytes:]); err != nil {
		return bn254.G1Affine{}, err
	}
	if !p.IsInfinity() && !p.IsOnCurve() {
		return bn254.G1Affine{}, ErrInvalidPoint
	}
	if subgroupCheck && !p.IsInSubGroup() {
		return bn254.G1Affine{}, ErrPointNotInSubgroup
	}
	return p, nil
}

func decodeG1Compressed(buf []byte, subgroupCheck bool) (bn254.G1Affine, error) {
	if len(buf) != SizeG1Compressed {
		return bn254.G1Affine{}, &BufferLengthError{Context: "compressed G1 point", Expected: SizeG1Compressed, Actual: len(buf)}
	}
	// The identity never appears as a G1 element of a key or proof, so the
	// infinity flag is rejected along with the uncompressed tag.
	flag := buf[0] & flagMask
	if flag != flagPositive && flag != flagNegative {
		return bn254.G1Affine{}, ErrInvalidFlag
	}

	var raw [fp.Bytes]byte
	copy(raw[:], buf)
	raw[0] &^= flagMask
	x, err := fp.BigEndian.Element(&raw)
	if err != nil {
		return bn254.G1Affine{}, ErrInvalidFieldElement
	}

	smaller, larger, err := g1RootsFromX(&x)
	if err != nil {
		return bn254.G1Affine{}, err
	}
	p := bn254.G1Affine{X: x}
	if flag == flagPositive {
		p.Y = smaller
	} else {
		p.Y = larger
	}
	if subgroupCheck && !p.IsInSubGroup() {
		return bn254.G1Affine{}, ErrPointNotInSubgroup
	}
	return p, nil
}

func decodeG1Gnark(buf []byte) (bn254.G1Affine, error) {
	if len(buf) != SizeG1Compressed {
		return bn254.G1Affine{}, &BufferLengthError{Context: "gnark G1 point", Expected: SizeG1Compressed, Actual: len(buf)}
	}
	var p bn254.G1Affine
	if _, err := p.SetBytes(buf); err != nil {
		return bn254.G1Affine{}, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return p, nil
}

// g1RootsFromX recovers the two candidate y-coordinates for x, ordered
// numerically. The smaller root is the canonical one.
func g1RootsFromX(x *fp.Element) (smaller, larger fp.Element, err error) {
	var ySquared fp.Element
	ySquared.Square(x)
	ySquared.Mul(&ySquared, x)
	ySquared.Add(&ySquared, &bCurveCoeff)

	var y fp.Element
	if y.Sqrt(&ySquared) == nil {
		return smaller, larger, ErrInvalidPoint
	}
	var negY fp.Element
	negY.Neg(&y)
	if y.Cmp(&negY) < 0 {
		return y, negY, nil
	}
	return negY, y, nil
}
