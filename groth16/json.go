package groth16

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/proofbound/groth16-bn254/codec"
)

// JSON forms for keys and proofs, with coordinates as 0x-prefixed hex of the
// canonical 32-byte encoding. Intended for fixtures and debugging, not for
// the hot path. The JSON form mirrors the in-memory representation, so a
// key's beta field carries -β.

type g1JSON struct {
	X string `json:"x"`
	Y string `json:"y"`
}

type fq2JSON struct {
	Real      string `json:"real"`
	Imaginary string `json:"imaginary"`
}

type g2JSON struct {
	X fq2JSON `json:"x"`
	Y fq2JSON `json:"y"`
}

type proofJSON struct {
	Ar  g1JSON `json:"ar"`
	Bs  g2JSON `json:"bs"`
	Krs g1JSON `json:"krs"`
}

type verifyingKeyJSON struct {
	Alpha g1JSON   `json:"alpha"`
	Beta  g2JSON   `json:"beta"`
	Gamma g2JSON   `json:"gamma"`
	Delta g2JSON   `json:"delta"`
	K     []g1JSON `json:"k"`
}

func fqToHex(e *fp.Element) string {
	b := e.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

func fqFromHex(s string) (fp.Element, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return fp.Element{}, fmt.Errorf("groth16: decoding hex coordinate: %w", err)
	}
	return codec.FqFromBytes(raw)
}

func g1ToJSON(p *bn254.G1Affine) g1JSON {
	return g1JSON{X: fqToHex(&p.X), Y: fqToHex(&p.Y)}
}

func g1FromJSON(j g1JSON) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	var err error
	if p.X, err = fqFromHex(j.X); err != nil {
		return p, err
	}
	if p.Y, err = fqFromHex(j.Y); err != nil {
		return p, err
	}
	if !p.IsInfinity() && !p.IsOnCurve() {
		return p, codec.ErrInvalidPoint
	}
	return p, nil
}

func g2ToJSON(p *bn254.G2Affine) g2JSON {
	return g2JSON{
		X: fq2JSON{Real: fqToHex(&p.X.A0), Imaginary: fqToHex(&p.X.A1)},
		Y: fq2JSON{Real: fqToHex(&p.Y.A0), Imaginary: fqToHex(&p.Y.A1)},
	}
}

func g2FromJSON(j g2JSON) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	var err error
	if p.X.A0, err = fqFromHex(j.X.Real); err != nil {
		return p, err
	}
	if p.X.A1, err = fqFromHex(j.X.Imaginary); err != nil {
		return p, err
	}
	if p.Y.A0, err = fqFromHex(j.Y.Real); err != nil {
		return p, err
	}
	if p.Y.A1, err = fqFromHex(j.Y.Imaginary); err != nil {
		return p, err
	}
	if !p.IsInfinity() && !p.IsOnCurve() {
		return p, codec.ErrInvalidPoint
	}
	return p, nil
}

func (p *Proof) MarshalJSON() ([]byte, error) {
	return json.Marshal(proofJSON{
		Ar:  g1ToJSON(&p.Ar),
		Bs:  g2ToJSON(&p.Bs),
		Krs: g1ToJSON(&p.Krs),
	})
}

func (p *Proof) UnmarshalJSON(data []byte) error {
	var j proofJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	var err error
	if p.Ar, err = g1FromJSON(j.Ar); err != nil {
		return err
	}
	if p.Bs, err = g2FromJSON(j.Bs); err != nil {
		return err
	}
	p.Krs, err = g1FromJSON(j.Krs)
	return err
}

func (vk *VerifyingKey) MarshalJSON() ([]byte, error) {
	j := verifyingKeyJSON{
		Alpha: g1ToJSON(&vk.Alpha),
		Beta:  g2ToJSON(&vk.Beta),
		Gamma: g2ToJSON(&vk.Gamma),
		Delta: g2ToJSON(&vk.Delta),
		K:     make([]g1JSON, len(vk.K)),
	}
	for i := range vk.K {
		j.K[i] = g1ToJSON(&vk.K[i])
	}
	return json.Marshal(j)
}

func (vk *VerifyingKey) UnmarshalJSON(data []byte) error {
	var j verifyingKeyJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	var err error
	if vk.Alpha, err = g1FromJSON(j.Alpha); err != nil {
		return err
	}
	if vk.Beta, err = g2FromJSON(j.Beta); err != nil {
		return err
	}
	if vk.Gamma, err = g2FromJSON(j.Gamma); err != nil {
		return err
	}
	if vk.Delta, err = g2FromJSON(j.Delta); err != nil {
		return err
	}
	vk.K = make([]bn254.G1Affine, len(j.K))
	for i := range j.K {
		if vk.K[i], err = g1FromJSON(j.K[i]); err != nil {
			return err
		}
	}
	return nil
}
