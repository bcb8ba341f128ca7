package codec

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// FqFromBytes decodes a 32-byte big-endian base field element. Values at or
// above the field modulus are rejected with ErrInvalidFieldElement.
func FqFromBytes(buf []byte) (fp.Element, error) {
	if len(buf) != fp.Bytes {
		return fp.Element{}, &BufferLengthError{Context: "Fq element", Expected: fp.Bytes, Actual: len(buf)}
	}
	var raw [fp.Bytes]byte
	copy(raw[:], buf)
	e, err := fp.BigEndian.Element(&raw)
	if err != nil {
		return fp.Element{}, ErrInvalidFieldElement
	}
	return e, nil
}

// FqToBytes encodes a base field element as 32 big-endian bytes.
func FqToBytes(e *fp.Element) [fp.Bytes]byte {
	return e.Bytes()
}

// FqFromBytesModOrder interprets buf as an arbitrary-length big-endian
// integer and reduces it modulo the base field order. Wire fields must go
// through FqFromBytes instead; this path exists for values that are integers
// by construction, such as hash outputs.
func FqFromBytesModOrder(buf []byte) fp.Element {
	var e fp.Element
	e.SetBytes(buf)
	return e
}

// Fq2FromBytes decodes a 64-byte degree-2 extension field element, imaginary
// part first. Both coefficients must be canonical.
func Fq2FromBytes(buf []byte) (bn254.E2, error) {
	if len(buf) != 2*fp.Bytes {
		return bn254.E2{}, &BufferLengthError{Context: "Fq2 element", Expected: 2 * fp.Bytes, Actual: len(buf)}
	}
	var e bn254.E2
	var err error
	if e.A1, err = FqFromBytes(buf[:fp.Bytes]); err != nil {
		return bn254.E2{}, err
	}
	if e.A0, err = FqFromBytes(buf[fp.Bytes:]); err != nil {
		return bn254.E2{}, err
	}
	return e, nil
}

// Fq2ToBytes encodes an extension field element as 64 bytes, imaginary part
// first.
func Fq2ToBytes(e *bn254.E2) [2 * fp.Bytes]byte {
	var out [2 * fp.Bytes]byte
	a1 := e.A1.Bytes()
	a0 := e.A0.Bytes()
	copy(out[:fp.Bytes], a1[:])
	copy(out[fp.Bytes:], a0[:])
	return out
}

// FrFromBytes decodes a 32-byte big-endian scalar field element. Values at
// or above the group order are rejected with ErrInvalidFieldElement.
func FrFromBytes(buf []byte) (fr.Element, error) {
	if len(buf) != fr.Bytes {
		return fr.Element{}, &BufferLengthError{Context: "Fr element", Expected: fr.Bytes, Actual: len(buf)}
	}
	var raw [fr.Bytes]byte
	copy(raw[:], buf)
	e, err := fr.BigEndian.Element(&raw)
	if err != nil {
		return fr.Element{}, ErrInvalidFieldElement
	}
	return e, nil
}

// FrToBytes encodes a scalar field element as 32 big-endian bytes.
func FrToBytes(e *fr.Element) [fr.Bytes]byte {
	return e.Bytes()
}

// FrFromBytesModOrder interprets buf as an arbitrary-length big-endian
// integer and reduces it modulo the group order.
func FrFromBytesModOrder(buf []byte) fr.Element {
	var e fr.Element
	e.SetBytes(buf)
	return e
}
