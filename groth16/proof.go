package groth16

import "github.com/proofbound/groth16-bn254/codec"

// Proof wire sizes. The uncompressed form is Ar || Bs || Krs with raw affine
// coordinates; the compressed form uses the flagged x-only encoding.
const (
	ProofSizeUncompressed = codec.SizeG1Uncompressed + codec.SizeG2Uncompressed + codec.SizeG1Uncompressed
	ProofSizeCompressed   = codec.SizeG1Compressed + codec.SizeG2Compressed + codec.SizeG1Compressed

	vkHashTagSize = 4
)

// UnmarshalProof parses a serialized proof, 256-byte uncompressed or
// 160-byte compressed, selected by length. No subgroup checks are performed.
func UnmarshalProof(buf []byte) (*Proof, error) {
	return unmarshalProof(buf, false)
}

func unmarshalProof(buf []byte, subgroupCheck bool) (*Proof, error) {
	var enc codec.Encoding
	switch len(buf) {
	case ProofSizeUncompressed:
		enc = codec.EncodingUncompressed
	case ProofSizeCompressed:
		enc = codec.EncodingCompressed
	default:
		return nil, &codec.BufferLengthError{Context: "Groth16 proof", Expected: ProofSizeUncompressed, Actual: len(buf)}
	}

	g1 := enc.G1Size()
	g2 := enc.G2Size()

	var p Proof
	var err error
	if p.Ar, err = codec.DecodeG1(buf[:g1], enc, subgroupCheck); err != nil {
		return nil, err
	}
	if p.Bs, err = codec.DecodeG2(buf[g1:g1+g2], enc, subgroupCheck); err != nil {
		return nil, err
	}
	if p.Krs, err = codec.DecodeG1(buf[g1+g2:], enc, subgroupCheck); err != nil {
		return nil, err
	}
	return &p, nil
}

// MarshalUncompressed serializes the proof with raw affine coordinates.
func (p *Proof) MarshalUncompressed() []byte {
	out := make([]byte, 0, ProofSizeUncompressed)
	ar, _ := codec.EncodeG1(&p.Ar, codec.EncodingUncompressed)
	bs, _ := codec.EncodeG2(&p.Bs, codec.EncodingUncompressed)
	krs, _ := codec.EncodeG1(&p.Krs, codec.EncodingUncompressed)
	out = append(out, ar...)
	out = append(out, bs...)
	return append(out, krs...)
}

// MarshalCompressed serializes the proof in the flagged x-only encoding.
func (p *Proof) MarshalCompressed() ([]byte, error) {
	ar, err := codec.EncodeG1(&p.Ar, codec.EncodingCompressed)
	if err != nil {
		return nil, err
	}
	bs, err := codec.EncodeG2(&p.Bs, codec.EncodingCompressed)
	if err != nil {
		return nil, err
	}
	krs, err := codec.EncodeG1(&p.Krs, codec.EncodingCompressed)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, ProofSizeCompressed)
	out = append(out, ar...)
	out = append(out, bs...)
	return append(out, krs...), nil
}
