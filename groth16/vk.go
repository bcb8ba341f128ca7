package groth16

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/proofbound/groth16-bn254/codec"
)

// Verifying key wire layouts. The gnark layout is what gnark's
// WriteTo emits for BN254: compressed points, two 32-byte slots left over
// from an older G1 mirror of beta and delta, and a big-endian count of input
// commitments. The packed layout drops the two unused slots. The
// uncompressed layout stores raw affine coordinates.
const (
	vkGnarkAlphaOffset = 0
	vkGnarkBetaOffset  = 64
	vkGnarkGammaOffset = 128
	vkGnarkDeltaOffset = 224
	vkGnarkNumKOffset  = 288
	vkGnarkHeaderSize  = 292

	vkPackedAlphaOffset = 0
	vkPackedBetaOffset  = 32
	vkPackedGammaOffset = 96
	vkPackedDeltaOffset = 160
	vkPackedNumKOffset  = 224
	vkPackedHeaderSize  = 228

	vkRawAlphaOffset = 0
	vkRawBetaOffset  = 64
	vkRawGammaOffset = 192
	vkRawDeltaOffset = 320
	vkRawNumKOffset  = 448
	vkRawHeaderSize  = 452
)

// UnmarshalVerifyingKey parses a serialized verifying key. The wire variant
// is selected by exact buffer length, gnark layout first. Beta is negated on
// load. No subgroup checks are performed.
func UnmarshalVerifyingKey(buf []byte) (*VerifyingKey, error) {
	return unmarshalVerifyingKey(buf, false)
}

func unmarshalVerifyingKey(buf []byte, subgroupCheck bool) (*VerifyingKey, error) {
	if len(buf) >= vkGnarkHeaderSize {
		numK := int(binary.BigEndian.Uint32(buf[vkGnarkNumKOffset:]))
		if len(buf) == vkGnarkHeaderSize+numK*codec.SizeG1Compressed {
			return unmarshalVKCompressed(buf, gnarkVKOffsets, numK, subgroupCheck)
		}
	}
	if len(buf) >= vkPackedHeaderSize {
		numK := int(binary.BigEndian.Uint32(buf[vkPackedNumKOffset:]))
		if len(buf) == vkPackedHeaderSize+numK*codec.SizeG1Compressed {
			return unmarshalVKCompressed(buf, packedVKOffsets, numK, subgroupCheck)
		}
	}
	if len(buf) >= vkRawHeaderSize {
		numK := int(binary.BigEndian.Uint32(buf[vkRawNumKOffset:]))
		if len(buf) == vkRawHeaderSize+numK*codec.SizeG1Uncompressed {
			return unmarshalVKUncompressed(buf, numK, subgroupCheck)
		}
	}
	return nil, &codec.BufferLengthError{Context: "Groth16 verifying key", Expected: vkGnarkHeaderSize, Actual: len(buf)}
}

// vkOffsets maps the field positions of one compressed header variant.
type vkOffsets struct {
	alpha, beta, gamma, delta, numK, header int
}

var (
	gnarkVKOffsets  = vkOffsets{vkGnarkAlphaOffset, vkGnarkBetaOffset, vkGnarkGammaOffset, vkGnarkDeltaOffset, vkGnarkNumKOffset, vkGnarkHeaderSize}
	packedVKOffsets = vkOffsets{vkPackedAlphaOffset, vkPackedBetaOffset, vkPackedGammaOffset, vkPackedDeltaOffset, vkPackedNumKOffset, vkPackedHeaderSize}
)

func unmarshalVKCompressed(buf []byte, off vkOffsets, numK int, subgroupCheck bool) (*VerifyingKey, error) {
	var vk VerifyingKey
	var err error
	if vk.Alpha, err = codec.DecodeG1(buf[off.alpha:off.alpha+codec.SizeG1Compressed], codec.EncodingCompressed, subgroupCheck); err != nil {
		return nil, err
	}
	if vk.Beta, err = codec.DecodeG2(buf[off.beta:off.beta+codec.SizeG2Compressed], codec.EncodingCompressed, subgroupCheck); err != nil {
		return nil, err
	}
	if vk.Gamma, err = codec.DecodeG2(buf[off.gamma:off.gamma+codec.SizeG2Compressed], codec.EncodingCompressed, subgroupCheck); err != nil {
		return nil, err
	}
	if vk.Delta, err = codec.DecodeG2(buf[off.delta:off.delta+codec.SizeG2Compressed], codec.EncodingCompressed, subgroupCheck); err != nil {
		return nil, err
	}
	vk.Beta.Neg(&vk.Beta)

	vk.K = make([]bn254.G1Affine, numK)
	for i := 0; i < numK; i++ {
		start := off.header + i*codec.SizeG1Compressed
		if vk.K[i], err = codec.DecodeG1(buf[start:start+codec.SizeG1Compressed], codec.EncodingCompressed, subgroupCheck); err != nil {
			return nil, err
		}
	}
	return &vk, nil
}

func unmarshalVKUncompressed(buf []byte, numK int, subgroupCheck bool) (*VerifyingKey, error) {
	var vk VerifyingKey
	var err error
	if vk.Alpha, err = codec.DecodeG1(buf[vkRawAlphaOffset:vkRawAlphaOffset+codec.SizeG1Uncompressed], codec.EncodingUncompressed, subgroupCheck); err != nil {
		return nil, err
	}
	if vk.Beta, err = codec.DecodeG2(buf[vkRawBetaOffset:vkRawBetaOffset+codec.SizeG2Uncompressed], codec.EncodingUncompressed, subgroupCheck); err != nil {
		return nil, err
	}
	if vk.Gamma, err = codec.DecodeG2(buf[vkRawGammaOffset:vkRawGammaOffset+codec.SizeG2Uncompressed], codec.EncodingUncompressed, subgroupCheck); err != nil {
		return nil, err
	}
	if vk.Delta, err = codec.DecodeG2(buf[vkRawDeltaOffset:vkRawDeltaOffset+codec.SizeG2Uncompressed], codec.EncodingUncompressed, subgroupCheck); err != nil {
		return nil, err
	}
	vk.Beta.Neg(&vk.Beta)

	vk.K = make([]bn254.G1Affine, numK)
	for i := 0; i < numK; i++ {
		start := vkRawHeaderSize + i*codec.SizeG1Uncompressed
		if vk.K[i], err = codec.DecodeG1(buf[start:start+codec.SizeG1Uncompressed], codec.EncodingUncompressed, subgroupCheck); err != nil {
			return nil, err
		}
	}
	return &vk, nil
}

// MarshalGnark serializes the key in the gnark layout, padding slots zeroed.
func (vk *VerifyingKey) MarshalGnark() ([]byte, error) {
	return vk.marshalCompressed(gnarkVKOffsets)
}

// MarshalPacked serializes the key in the compressed layout without the
// legacy padding slots.
func (vk *VerifyingKey) MarshalPacked() ([]byte, error) {
	return vk.marshalCompressed(packedVKOffsets)
}

func (vk *VerifyingKey) marshalCompressed(off vkOffsets) ([]byte, error) {
	out := make([]byte, off.header+len(vk.K)*codec.SizeG1Compressed)

	alpha, err := codec.EncodeG1(&vk.Alpha, codec.EncodingCompressed)
	if err != nil {
		return nil, err
	}
	copy(out[off.alpha:], alpha)

	var beta bn254.G2Affine
	beta.Neg(&vk.Beta)
	b, err := codec.EncodeG2(&beta, codec.EncodingCompressed)
	if err != nil {
		return nil, err
	}
	copy(out[off.beta:], b)

	g, err := codec.EncodeG2(&vk.Gamma, codec.EncodingCompressed)
	if err != nil {
		return nil, err
	}
	copy(out[off.gamma:], g)

	d, err := codec.EncodeG2(&vk.Delta, codec.EncodingCompressed)
	if err != nil {
		return nil, err
	}
	copy(out[off.delta:], d)

	binary.BigEndian.PutUint32(out[off.numK:], uint32(len(vk.K)))
	for i := range vk.K {
		k, err := codec.EncodeG1(&vk.K[i], codec.EncodingCompressed)
		if err != nil {
			return nil, err
		}
		copy(out[off.header+i*codec.SizeG1Compressed:], k)
	}
	return out, nil
}

// MarshalUncompressed serializes the key with raw affine coordinates.
func (vk *VerifyingKey) MarshalUncompressed() []byte {
	out := make([]byte, vkRawHeaderSize+len(vk.K)*codec.SizeG1Uncompressed)

	alpha, _ := codec.EncodeG1(&vk.Alpha, codec.EncodingUncompressed)
	copy(out[vkRawAlphaOffset:], alpha)

	var beta bn254.G2Affine
	beta.Neg(&vk.Beta)
	b, _ := codec.EncodeG2(&beta, codec.EncodingUncompressed)
	copy(out[vkRawBetaOffset:], b)

	g, _ := codec.EncodeG2(&vk.Gamma, codec.EncodingUncompressed)
	copy(out[vkRawGammaOffset:], g)

	d, _ := codec.EncodeG2(&vk.Delta, codec.EncodingUncompressed)
	copy(out[vkRawDeltaOffset:], d)

	binary.BigEndian.PutUint32(out[vkRawNumKOffset:], uint32(len(vk.K)))
	for i := range vk.K {
		k, _ := codec.EncodeG1(&vk.K[i], codec.EncodingUncompressed)
		copy(out[vkRawHeaderSize+i*codec.SizeG1Uncompressed:], k)
	}
	return out
}
