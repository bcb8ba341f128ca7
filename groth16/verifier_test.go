package groth16

import (
	"crypto/sha256"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/proofbound/groth16-bn254/codec"
)

// testDeployment is a synthetic setup with two public inputs bound the way
// wrapped provers bind them: the verifying key hash and the masked digest of
// the raw public values.
type testDeployment struct {
	setup        *synthSetup
	vkBytes      []byte
	vkHash       [32]byte
	publicValues []byte
	proofBytes   []byte
}

func newTestDeployment(t *testing.T, h HashFn) *testDeployment {
	t.Helper()
	d := &testDeployment{
		setup:        newSynthSetup(t, 2),
		publicValues: []byte("program outputs"),
	}

	d.vkHash = sha256.Sum256([]byte("test program"))
	d.vkHash[0] &= 0x1f

	var err error
	d.vkBytes, err = d.setup.vk.MarshalGnark()
	require.NoError(t, err)

	vkHashFr, err := codec.FrFromBytes(d.vkHash[:])
	require.NoError(t, err)
	valuesFr, err := HashToFr(d.publicValues, h)
	require.NoError(t, err)

	proof := d.setup.prove(t, []fr.Element{vkHashFr, valuesFr})
	d.proofBytes = append(d.vkHash[:vkHashTagSize:vkHashTagSize], proof.MarshalUncompressed()...)
	return d
}

func TestVerifierEndToEnd(t *testing.T) {
	d := newTestDeployment(t, HashSHA256)
	v, err := NewVerifier(d.vkBytes, d.vkHash)
	require.NoError(t, err)
	require.NoError(t, v.Verify(d.proofBytes, d.publicValues))
}

func TestVerifierBLAKE3(t *testing.T) {
	d := newTestDeployment(t, HashBLAKE3)
	v, err := NewVerifier(d.vkBytes, d.vkHash, WithHashFn(HashBLAKE3))
	require.NoError(t, err)
	require.NoError(t, v.Verify(d.proofBytes, d.publicValues))

	// The same proof cannot verify under a different digest.
	v, err = NewVerifier(d.vkBytes, d.vkHash)
	require.NoError(t, err)
	require.ErrorIs(t, v.Verify(d.proofBytes, d.publicValues), ErrVerificationFailed)
}

func TestVerifierCompressedProof(t *testing.T) {
	d := newTestDeployment(t, HashSHA256)
	proof, err := UnmarshalProof(d.proofBytes[vkHashTagSize:])
	require.NoError(t, err)
	compressed, err := proof.MarshalCompressed()
	require.NoError(t, err)

	v, err := NewVerifier(d.vkBytes, d.vkHash)
	require.NoError(t, err)
	require.NoError(t, v.Verify(append(d.vkHash[:vkHashTagSize:vkHashTagSize], compressed...), d.publicValues))
}

func TestVerifierRejectsWrongTag(t *testing.T) {
	d := newTestDeployment(t, HashSHA256)
	v, err := NewVerifier(d.vkBytes, d.vkHash)
	require.NoError(t, err)

	tampered := append([]byte(nil), d.proofBytes...)
	tampered[0] ^= 0xff
	require.ErrorIs(t, v.Verify(tampered, d.publicValues), ErrVkeyHashMismatch)

	// Too short to even carry a tag.
	var lenErr *codec.BufferLengthError
	require.ErrorAs(t, v.Verify(d.proofBytes[:3], d.publicValues), &lenErr)
}

func TestVerifierRejectsWrongPublicValues(t *testing.T) {
	d := newTestDeployment(t, HashSHA256)
	v, err := NewVerifier(d.vkBytes, d.vkHash)
	require.NoError(t, err)
	require.ErrorIs(t, v.Verify(d.proofBytes, []byte("forged outputs")), ErrVerificationFailed)
}

func TestVerifierRejectsTamperedProof(t *testing.T) {
	d := newTestDeployment(t, HashSHA256)
	proof, err := UnmarshalProof(d.proofBytes[vkHashTagSize:])
	require.NoError(t, err)

	// Substitute a different valid point so decoding still succeeds.
	_, _, g1, _ := bn254.Generators()
	proof.Krs.Add(&proof.Krs, &g1)
	tampered := append(d.vkHash[:vkHashTagSize:vkHashTagSize], proof.MarshalUncompressed()...)

	v, err := NewVerifier(d.vkBytes, d.vkHash)
	require.NoError(t, err)
	require.ErrorIs(t, v.Verify(tampered, d.publicValues), ErrVerificationFailed)

	// Mock mode accepts the same forged proof.
	mock, err := NewVerifier(d.vkBytes, d.vkHash, WithMockVerification())
	require.NoError(t, err)
	require.NoError(t, mock.Verify(tampered, d.publicValues))
}

func TestVerifierMockStillChecksShape(t *testing.T) {
	d := newTestDeployment(t, HashSHA256)
	mock, err := NewVerifier(d.vkBytes, d.vkHash, WithMockVerification())
	require.NoError(t, err)

	var lenErr *codec.BufferLengthError
	require.ErrorAs(t, mock.Verify(d.proofBytes[:100], d.publicValues), &lenErr)

	tampered := append([]byte(nil), d.proofBytes...)
	tampered[0] ^= 0xff
	require.ErrorIs(t, mock.Verify(tampered, d.publicValues), ErrVkeyHashMismatch)
}

func TestVerifierGnarkBackend(t *testing.T) {
	d := newTestDeployment(t, HashSHA256)
	v, err := NewVerifier(d.vkBytes, d.vkHash, WithBackend(BackendGnark))
	require.NoError(t, err)
	require.NoError(t, v.Verify(d.proofBytes, d.publicValues))
	require.ErrorIs(t, v.Verify(d.proofBytes, []byte("forged outputs")), ErrVerificationFailed)
}

func TestVerifierSubgroupCheck(t *testing.T) {
	d := newTestDeployment(t, HashSHA256)
	v, err := NewVerifier(d.vkBytes, d.vkHash, WithSubgroupCheck())
	require.NoError(t, err)
	require.NoError(t, v.Verify(d.proofBytes, d.publicValues))
}

func TestVerifierRejectsBadKey(t *testing.T) {
	d := newTestDeployment(t, HashSHA256)
	var lenErr *codec.BufferLengthError
	_, err := NewVerifier(d.vkBytes[:len(d.vkBytes)-1], d.vkHash)
	require.ErrorAs(t, err, &lenErr)
}

func TestVerifierBinaryRoundTrip(t *testing.T) {
	d := newTestDeployment(t, HashSHA256)
	v, err := NewVerifier(d.vkBytes, d.vkHash)
	require.NoError(t, err)

	state, err := v.MarshalBinary()
	require.NoError(t, err)

	restored, err := UnmarshalVerifier(state)
	require.NoError(t, err)
	requireVKEqual(t, v.vk, restored.vk)
	require.Equal(t, v.vkHash, restored.vkHash)
	require.NoError(t, restored.Verify(d.proofBytes, d.publicValues))
}
