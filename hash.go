package rdsa

import (
	"hash"

	"github.com/gtank/ristretto255"
	"github.com/minio/blake2b-simd"
)

// hStarPersonalization is the 16-byte Blake2b personalization string: the
// ASCII label "decaf377-rdsa---", a 13-byte label padded with three
// trailing hyphens to the 16 bytes Blake2b requires.
var hStarPersonalization = []byte("decaf377-rdsa---")

// HStar is the streaming hash-to-scalar primitive used for both the RedDSA
// challenge and the synthetic nonce: Blake2b-512 with a fixed
// personalization, no key, no salt, reduced modulo the scalar field order
// on finalization.
//
// The zero value is not usable; construct with NewHStar. Update may be
// called any number of times before Finalize, and concatenated updates
// hash identically to one update of the concatenation, since the
// underlying primitive is a plain streaming hash. Finalize does not
// consume the hasher's state, so it may be called more than once.
type HStar struct {
	h hash.Hash
}

// NewHStar returns a fresh HStar ready for Update/Finalize.
func NewHStar() *HStar {
	h, err := blake2b.New(&blake2b.Config{
		Size:   64,
		Person: hStarPersonalization,
	})
	if err != nil {
		// Size and Person are both compile-time constants here, so a
		// Config rejection is unreachable.
		panic("decaf377-rdsa: blake2b.New failed: " + err.Error())
	}
	return &HStar{h: h}
}

// Update appends msg to the hasher's input.
func (h *HStar) Update(msg []byte) *HStar {
	_, _ = h.h.Write(msg)
	return h
}

// Finalize reduces the 64-byte Blake2b digest of everything written so far
// modulo the scalar field order and returns the resulting scalar. 512 bits
// of digest against a ~253-bit modulus makes the reduction's bias
// cryptographically insignificant.
func (h *HStar) Finalize() *ristretto255.Scalar {
	digest := h.h.Sum(nil)
	s, err := ristretto255.NewScalar().SetUniformBytes(digest)
	if err != nil {
		// SetUniformBytes only rejects inputs that aren't exactly 64
		// bytes; Sum(nil) on a 64-byte-configured digest always is.
		panic("decaf377-rdsa: unreachable wide reduction failure: " + err.Error())
	}
	return s
}

// hStar is a convenience one-shot helper: hStar(a, b, c) == NewHStar().
// Update(a).Update(b).Update(c).Finalize().
func hStar(parts ...[]byte) *ristretto255.Scalar {
	h := NewHStar()
	for _, p := range parts {
		h.Update(p)
	}
	return h.Finalize()
}

// HStarHash is the exported form of hStar, for the frost adapter package,
// which needs the same hash-to-scalar primitive but lives outside this
// package to keep FROST's glue out of the core's import graph.
func HStarHash(parts ...[]byte) *ristretto255.Scalar {
	return hStar(parts...)
}
