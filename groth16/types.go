// Package groth16 verifies Groth16 proofs over the BN254 curve. It parses
// the verifying key and proof wire formats emitted by gnark, binds public
// values to the proof through a masked hash, and evaluates the four pairing
// terms of the verification equation in a single batched check.
package groth16

import "github.com/consensys/gnark-crypto/ecc/bn254"

// VerifyingKey holds the key elements needed by the verification equation.
//
// Beta stores -β: the negation happens once at load time so that the
// pairing check can run without negating a G2 point per proof. Marshalling
// negates it back, so wire forms always carry β itself.
type VerifyingKey struct {
	Alpha bn254.G1Affine
	Beta  bn254.G2Affine
	Gamma bn254.G2Affine
	Delta bn254.G2Affine

	// K[0] is the constant input commitment; K[i+1] pairs with the i-th
	// public input.
	K []bn254.G1Affine
}

// NbPublicInputs returns the number of public inputs the key commits to.
func (vk *VerifyingKey) NbPublicInputs() int {
	return len(vk.K) - 1
}

// Proof is a Groth16 proof in affine coordinates.
type Proof struct {
	Ar  bn254.G1Affine
	Bs  bn254.G2Affine
	Krs bn254.G1Affine
}
