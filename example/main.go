// Command example verifies a Groth16 proof against a verifying key and the
// raw public values it commits to.
//
// Usage:
//
//	example -vk vk.bin -proof proof.bin -public public_values.bin \
//	        -vk-hash 0x005f... [-hash blake3] [-gnark-backend]
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/proofbound/groth16-bn254/groth16"
)

func main() {
	vkPath := flag.String("vk", "vk.bin", "path to the serialized verifying key")
	proofPath := flag.String("proof", "proof.bin", "path to the tag-prefixed proof")
	publicPath := flag.String("public", "public_values.bin", "path to the raw public values")
	vkHashHex := flag.String("vk-hash", "", "hex-encoded 32-byte verifying key hash")
	hashName := flag.String("hash", "sha256", "public value digest: sha256 or blake3")
	useGnark := flag.Bool("gnark-backend", false, "cross-check with gnark's verifier")
	subgroup := flag.Bool("subgroup-check", false, "verify subgroup membership of decoded points")
	flag.Parse()

	vkHash, err := parseVkHash(*vkHashHex)
	if err != nil {
		log.Fatalf("invalid -vk-hash: %v", err)
	}

	vkBytes, err := os.ReadFile(*vkPath)
	if err != nil {
		log.Fatalf("reading verifying key: %v", err)
	}
	proofBytes, err := os.ReadFile(*proofPath)
	if err != nil {
		log.Fatalf("reading proof: %v", err)
	}
	publicValues, err := os.ReadFile(*publicPath)
	if err != nil {
		log.Fatalf("reading public values: %v", err)
	}

	var opts []groth16.Option
	switch *hashName {
	case "sha256":
		opts = append(opts, groth16.WithHashFn(groth16.HashSHA256))
	case "blake3":
		opts = append(opts, groth16.WithHashFn(groth16.HashBLAKE3))
	default:
		log.Fatalf("unknown hash %q", *hashName)
	}
	if *useGnark {
		opts = append(opts, groth16.WithBackend(groth16.BackendGnark))
	}
	if *subgroup {
		opts = append(opts, groth16.WithSubgroupCheck())
	}

	verifier, err := groth16.NewVerifier(vkBytes, vkHash, opts...)
	if err != nil {
		log.Fatalf("loading verifying key: %v", err)
	}
	if err := verifier.Verify(proofBytes, publicValues); err != nil {
		log.Fatalf("proof rejected: %v", err)
	}
	fmt.Println("proof verified")
}

func parseVkHash(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return out, err
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}
