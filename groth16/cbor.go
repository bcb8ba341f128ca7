package groth16

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// verifierState is the wire form of a configured Verifier: the key in its
// gnark serialization plus the program hash it is bound to. Options are not
// part of the state; callers re-supply them at decode time.
type verifierState struct {
	VK     []byte   `cbor:"1,keyasint"`
	VKHash [32]byte `cbor:"2,keyasint"`
}

// MarshalBinary encodes the verifier's key material as CBOR.
func (v *Verifier) MarshalBinary() ([]byte, error) {
	vkBytes, err := v.vk.MarshalGnark()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(verifierState{VK: vkBytes, VKHash: v.vkHash})
}

// UnmarshalVerifier reconstructs a Verifier from its MarshalBinary output.
func UnmarshalVerifier(data []byte, opts ...Option) (*Verifier, error) {
	var st verifierState
	if err := cbor.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("groth16: decoding verifier state: %w", err)
	}
	return NewVerifier(st.VK, st.VKHash, opts...)
}
