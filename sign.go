package rdsa

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"
)

// bonusRandomnessSize is the number of fresh bytes mixed into the synthetic
// nonce for randomized signing.
const bonusRandomnessSize = 48

// Sign produces a randomized Signature over msg using sk and entropy drawn
// from rng. If rng is nil, crypto/rand.Reader is used.
//
// The nonce is constructed following a synthetic-nonce rule, not a plain
// uniform draw: nonce = HStar(sk_bytes ‖
// bonus_randomness ‖ pk_bytes ‖ msg), where bonus_randomness is 48 bytes
// drawn from rng. Mixing the private key and the message into the nonce
// hash means a broken or predictable rng degrades signing to
// SignDeterministic's security, not to key recovery.
func (sk *SigningKey[D]) Sign(rng io.Reader, msg []byte) (*Signature[D], error) {
	if rng == nil {
		rng = rand.Reader
	}
	var bonus [bonusRandomnessSize]byte
	if _, err := io.ReadFull(rng, bonus[:]); err != nil {
		return nil, fmt.Errorf("decaf377-rdsa: entropy source failure: %w", err)
	}
	return sk.sign(bonus[:], msg), nil
}

// SignDeterministic produces a Signature over msg using sk with no fresh
// entropy: bonus_randomness is 48 zero bytes. Two calls with identical
// (sk, msg) always produce byte-identical signatures. This is documented
// as a specialized tool: prefer Sign for ordinary use.
func (sk *SigningKey[D]) SignDeterministic(msg []byte) *Signature[D] {
	var zero [bonusRandomnessSize]byte
	return sk.sign(zero[:], msg)
}

func (sk *SigningKey[D]) sign(bonusRandomness, msg []byte) *Signature[D] {
	skBytes := sk.Bytes()
	pkBytes := sk.pk.bytes.bytes

	nonce := hStar(skBytes[:], bonusRandomness, pkBytes[:], msg)

	var d D
	R := ristretto255.NewElement().ScalarMult(nonce, d.basepoint())
	rBytes := R.Bytes()

	c := hStar(rBytes, pkBytes[:], msg)

	s := ristretto255.NewScalar().Multiply(c, sk.sk)
	s.Add(nonce, s)

	return newSignature[D](rBytes, s.Bytes())
}
