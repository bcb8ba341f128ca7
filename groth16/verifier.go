package groth16

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/proofbound/groth16-bn254/codec"
	"github.com/proofbound/groth16-bn254/logger"
)

// Backend selects which pairing implementation performs the final check.
type Backend uint8

const (
	// BackendNative evaluates the pairing equation with this package's
	// batched check.
	BackendNative Backend = iota
	// BackendGnark converts the key and proof to gnark's backend types and
	// delegates to gnark's own Groth16 verifier. Useful as an independent
	// cross-check.
	BackendGnark
)

type config struct {
	mock          bool
	subgroupCheck bool
	hash          HashFn
	backend       Backend
}

// Option configures a Verifier at construction time.
type Option func(*config)

// WithMockVerification accepts any well-formed proof without evaluating the
// pairing equation. Wire shapes and the key hash tag are still enforced.
// Every accepted proof is logged at warn level.
func WithMockVerification() Option {
	return func(c *config) { c.mock = true }
}

// WithSubgroupCheck verifies prime-order subgroup membership for every
// decoded point. Off by default: honest provers and key generators only
// emit subgroup points, and the check roughly doubles decode cost.
func WithSubgroupCheck() Option {
	return func(c *config) { c.subgroupCheck = true }
}

// WithHashFn selects the digest for public values. Default is SHA-256.
func WithHashFn(h HashFn) Option {
	return func(c *config) { c.hash = h }
}

// WithBackend selects the pairing backend. Default is BackendNative.
func WithBackend(b Backend) Option {
	return func(c *config) { c.backend = b }
}

// Verifier binds a parsed verifying key to the 32-byte hash identifying the
// program whose proofs it accepts. A Verifier is immutable after
// construction and safe for concurrent use.
type Verifier struct {
	vk        *VerifyingKey
	vkHash    [32]byte
	vkHashTag [vkHashTagSize]byte
	cfg       config
}

// NewVerifier parses vkBytes (any of the supported verifying key layouts)
// and binds it to vkHash. The first four bytes of vkHash must prefix every
// proof handed to Verify.
func NewVerifier(vkBytes []byte, vkHash [32]byte, opts ...Option) (*Verifier, error) {
	cfg := config{hash: HashSHA256}
	for _, o := range opts {
		o(&cfg)
	}

	vk, err := unmarshalVerifyingKey(vkBytes, cfg.subgroupCheck)
	if err != nil {
		return nil, err
	}

	v := &Verifier{vk: vk, vkHash: vkHash, cfg: cfg}
	copy(v.vkHashTag[:], vkHash[:vkHashTagSize])
	return v, nil
}

// VerifyingKey returns the parsed key. The caller must not mutate it.
func (v *Verifier) VerifyingKey() *VerifyingKey {
	return v.vk
}

// Verify checks a tag-prefixed proof against raw public values.
//
// proofBytes is the 4-byte verifying key hash tag followed by the 256-byte
// uncompressed or 160-byte compressed proof encoding. The pairing check runs
// over two public inputs: the verifying key hash and the masked digest of
// publicValues.
func (v *Verifier) Verify(proofBytes, publicValues []byte) error {
	if len(proofBytes) < vkHashTagSize {
		return &codec.BufferLengthError{Context: "tagged Groth16 proof", Expected: vkHashTagSize + ProofSizeUncompressed, Actual: len(proofBytes)}
	}
	if !bytes.Equal(proofBytes[:vkHashTagSize], v.vkHashTag[:]) {
		return ErrVkeyHashMismatch
	}

	proof, err := unmarshalProof(proofBytes[vkHashTagSize:], v.cfg.subgroupCheck)
	if err != nil {
		return err
	}

	if v.cfg.mock {
		log := logger.Logger()
		log.Warn().Msg("mock verification enabled, accepting proof without pairing check")
		return nil
	}

	vkHashFr, err := codec.FrFromBytes(v.vkHash[:])
	if err != nil {
		return fmt.Errorf("groth16: verifying key hash is not a valid scalar: %w", err)
	}
	valuesFr, err := HashToFr(publicValues, v.cfg.hash)
	if err != nil {
		return err
	}
	inputs := []fr.Element{vkHashFr, valuesFr}

	switch v.cfg.backend {
	case BackendGnark:
		err = verifyWithGnark(v.vk, proof, inputs)
	default:
		err = VerifyProof(v.vk, proof, inputs)
	}
	if err != nil {
		return err
	}

	log := logger.Logger()
	log.Debug().
		Int("publicValues", len(publicValues)).
		Stringer("hash", v.cfg.hash).
		Msg("groth16 proof verified")
	return nil
}
