package codec

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func randomG1(t *testing.T) bn254.G1Affine {
	t.Helper()
	var s fr.Element
	_, err := s.SetRandom()
	require.NoError(t, err)

	_, _, g1, _ := bn254.Generators()
	var p bn254.G1Affine
	p.ScalarMultiplication(&g1, s.BigInt(new(big.Int)))
	return p
}

func TestG1RoundTrip(t *testing.T) {
	for _, enc := range []Encoding{EncodingUncompressed, EncodingCompressed, EncodingGnark} {
		t.Run(enc.String(), func(t *testing.T) {
			for i := 0; i < 20; i++ {
				p := randomG1(t)
				buf, err := EncodeG1(&p, enc)
				require.NoError(t, err)
				require.Len(t, buf, enc.G1Size())

				got, err := DecodeG1(buf, enc, false)
				require.NoError(t, err)
				require.True(t, got.Equal(&p))
			}
		})
	}
}

// The compressed layout must be bit compatible with gnark's marshaller.
func TestG1CompressedMatchesGnark(t *testing.T) {
	for i := 0; i < 20; i++ {
		p := randomG1(t)
		ours, err := EncodeG1(&p, EncodingCompressed)
		require.NoError(t, err)
		theirs := p.Bytes()
		require.Equal(t, theirs[:], ours)

		got, err := DecodeG1(theirs[:], EncodingCompressed, false)
		require.NoError(t, err)
		require.True(t, got.Equal(&p))
	}
}

func TestG1CanonicalRootSelection(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := randomG1(t)
		x := p.X.Bytes()

		buf := make([]byte, SizeG1Compressed)
		copy(buf, x[:])
		buf[0] |= flagPositive
		pos, err := DecodeG1(buf, EncodingCompressed, false)
		require.NoError(t, err)

		var negY fp.Element
		negY.Neg(&pos.Y)
		require.Equal(t, -1, pos.Y.Cmp(&negY), "positive flag must select the smaller root")

		buf[0] = x[0] | flagNegative
		neg, err := DecodeG1(buf, EncodingCompressed, false)
		require.NoError(t, err)
		require.True(t, neg.Y.Equal(&negY), "negative flag must select the larger root")
		require.Equal(t, 1, neg.Y.Cmp(&pos.Y))
		require.True(t, pos.X.Equal(&neg.X))
	}
}

func TestG1RejectsBadLength(t *testing.T) {
	for _, tc := range []struct {
		enc  Encoding
		size int
	}{
		{EncodingCompressed, 31},
		{EncodingCompressed, 33},
		{EncodingUncompressed, 63},
		{EncodingUncompressed, 65},
		{EncodingGnark, 31},
	} {
		_, err := DecodeG1(make([]byte, tc.size), tc.enc, false)
		var lenErr *BufferLengthError
		require.ErrorAs(t, err, &lenErr)
		require.Equal(t, tc.size, lenErr.Actual)
	}
}

func TestG1RejectsInvalidFlag(t *testing.T) {
	p := randomG1(t)
	x := p.X.Bytes()

	// Uncompressed tag (0b00) and the infinity flag are both invalid for G1.
	buf := make([]byte, SizeG1Compressed)
	copy(buf, x[:])
	buf[0] &^= flagMask
	_, err := DecodeG1(buf, EncodingCompressed, false)
	require.ErrorIs(t, err, ErrInvalidFlag)

	buf[0] |= flagInfinity
	_, err = DecodeG1(buf, EncodingCompressed, false)
	require.ErrorIs(t, err, ErrInvalidFlag)
}

func TestG1RejectsNonResidue(t *testing.T) {
	// Walk small x values until x³+3 has no square root.
	var x, ySquared fp.Element
	found := false
	for i := uint64(0); i < 64 && !found; i++ {
		x.SetUint64(i)
		ySquared.Square(&x)
		ySquared.Mul(&ySquared, &x)
		ySquared.Add(&ySquared, &bCurveCoeff)
		found = ySquared.Legendre() == -1
	}
	require.True(t, found)

	xb := x.Bytes()
	buf := make([]byte, SizeG1Compressed)
	copy(buf, xb[:])
	buf[0] |= flagPositive
	_, err := DecodeG1(buf, EncodingCompressed, false)
	require.ErrorIs(t, err, ErrInvalidPoint)
}

func TestG1UncompressedRejectsOffCurve(t *testing.T) {
	p := randomG1(t)
	var one fp.Element
	one.SetOne()
	p.Y.Add(&p.Y, &one)

	buf, err := EncodeG1(&p, EncodingUncompressed)
	require.NoError(t, err)
	_, err = DecodeG1(buf, EncodingUncompressed, false)
	require.ErrorIs(t, err, ErrInvalidPoint)
}

func TestG1UncompressedRejectsNonCanonicalCoordinate(t *testing.T) {
	buf := make([]byte, SizeG1Uncompressed)
	fp.Modulus().FillBytes(buf[:fp.Bytes])
	_, err := DecodeG1(buf, EncodingUncompressed, false)
	require.ErrorIs(t, err, ErrInvalidFieldElement)
}

func TestG1SubgroupCheckPasses(t *testing.T) {
	// BN254 G1 has prime order, so any on-curve point is in the subgroup.
	p := randomG1(t)
	buf, err := EncodeG1(&p, EncodingCompressed)
	require.NoError(t, err)
	got, err := DecodeG1(buf, EncodingCompressed, true)
	require.NoError(t, err)
	require.True(t, got.Equal(&p))
}
