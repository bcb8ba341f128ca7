package groth16

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// PrepareInputs folds the public inputs into a single G1 point:
//
//	K[0] + Σ K[i+1]·x_i
//
// computed left to right with individual scalar multiplications so that
// intermediate values are deterministic.
func PrepareInputs(vk *VerifyingKey, publicInputs []fr.Element) (bn254.G1Affine, error) {
	if len(publicInputs)+1 != len(vk.K) {
		return bn254.G1Affine{}, fmt.Errorf("%w: %d inputs for %d commitments", ErrPrepareInputs, len(publicInputs), len(vk.K))
	}
	if len(publicInputs) == 1 {
		return prepareSingleInput(vk, &publicInputs[0]), nil
	}

	acc := vk.K[0]
	for i := range publicInputs {
		var term bn254.G1Affine
		term.ScalarMultiplication(&vk.K[i+1], publicInputs[i].BigInt(new(big.Int)))
		acc.Add(&acc, &term)
	}
	return acc, nil
}

// prepareSingleInput computes K[0] + K[1]·s, the common case for verifiers
// bound to one hashed public value.
func prepareSingleInput(vk *VerifyingKey, s *fr.Element) bn254.G1Affine {
	var p bn254.G1Affine
	p.ScalarMultiplication(&vk.K[1], s.BigInt(new(big.Int)))
	p.Add(&p, &vk.K[0])
	return p
}

// VerifyProof checks the Groth16 verification equation
//
//	e(-Ar, Bs) · e(prepared, γ) · e(Krs, δ) · e(α, β) == 1
//
// with all four pairings evaluated in one batched Miller loop. The key
// stores -β, so it is negated back for the last term.
func VerifyProof(vk *VerifyingKey, proof *Proof, publicInputs []fr.Element) error {
	prepared, err := PrepareInputs(vk, publicInputs)
	if err != nil {
		return err
	}

	var negAr bn254.G1Affine
	negAr.Neg(&proof.Ar)
	var beta bn254.G2Affine
	beta.Neg(&vk.Beta)

	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{negAr, prepared, proof.Krs, vk.Alpha},
		[]bn254.G2Affine{proof.Bs, vk.Gamma, vk.Delta, beta},
	)
	if err != nil {
		return fmt.Errorf("groth16: pairing evaluation: %w", err)
	}
	if !ok {
		return ErrVerificationFailed
	}
	return nil
}
