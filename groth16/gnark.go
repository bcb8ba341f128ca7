package groth16

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
)

// verifyWithGnark cross-checks the proof with gnark's own Groth16 verifier.
// The key stores -β while gnark expects β, so the element is negated back
// before conversion.
func verifyWithGnark(vk *VerifyingKey, proof *Proof, publicInputs []fr.Element) error {
	gProof := &groth16_bn254.Proof{
		Ar:  proof.Ar,
		Krs: proof.Krs,
		Bs:  proof.Bs,
	}

	var gVK groth16_bn254.VerifyingKey
	gVK.G1.Alpha = vk.Alpha
	gVK.G1.K = vk.K
	gVK.G2.Beta.Neg(&vk.Beta)
	gVK.G2.Gamma = vk.Gamma
	gVK.G2.Delta = vk.Delta
	if err := gVK.Precompute(); err != nil {
		return fmt.Errorf("groth16: precomputing pairing lines: %w", err)
	}

	if err := groth16_bn254.Verify(gProof, &gVK, publicInputs); err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	return nil
}
