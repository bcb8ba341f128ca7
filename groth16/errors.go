package groth16

import "errors"

var (
	// ErrVerificationFailed is returned when a structurally valid proof does
	// not satisfy the pairing identity. It is deliberately distinct from the
	// codec errors: callers can tell a malformed proof from a false one.
	ErrVerificationFailed = errors.New("groth16: proof verification failed")

	// ErrPrepareInputs is returned when the number of public inputs does not
	// match the verifying key's input commitments.
	ErrPrepareInputs = errors.New("groth16: public input count does not match verifying key")

	// ErrVkeyHashMismatch is returned when a proof's leading tag does not
	// match the verifier's key hash, before any point is decoded.
	ErrVkeyHashMismatch = errors.New("groth16: proof was produced for a different verifying key")
)
