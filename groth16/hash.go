package groth16

import (
	"crypto/sha256"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"lukechampine.com/blake3"

	"github.com/proofbound/groth16-bn254/codec"
)

// HashFn identifies the digest used to bind public values to a proof.
type HashFn uint8

const (
	HashSHA256 HashFn = iota
	HashBLAKE3
)

func (h HashFn) String() string {
	switch h {
	case HashSHA256:
		return "sha256"
	case HashBLAKE3:
		return "blake3"
	default:
		return fmt.Sprintf("HashFn(%d)", uint8(h))
	}
}

// HashPublicValues digests data and zeroes the top 3 bits of the result so
// the 256-bit digest fits the 254-bit scalar field. Masking, not modular
// reduction: the exact bit pattern is shared with provers and on-chain
// verifiers, so both sides must clear the same bits.
func HashPublicValues(data []byte, h HashFn) ([32]byte, error) {
	var digest [32]byte
	switch h {
	case HashSHA256:
		digest = sha256.Sum256(data)
	case HashBLAKE3:
		digest = blake3.Sum256(data)
	default:
		return digest, fmt.Errorf("groth16: unknown hash function %d", h)
	}
	digest[0] &= 0x1f
	return digest, nil
}

// HashToFr digests data and decodes the masked result as a scalar. The mask
// guarantees the value is below the group order, so decoding cannot fail on
// canonical grounds.
func HashToFr(data []byte, h HashFn) (fr.Element, error) {
	digest, err := HashPublicValues(data, h)
	if err != nil {
		return fr.Element{}, err
	}
	return codec.FrFromBytes(digest[:])
}
