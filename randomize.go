package rdsa

import "github.com/gtank/ristretto255"

// RandomizeSigningKey returns a new SpendAuth signing key with scalar
// sk + r and its recomputed verification key.
//
// This is written as a package-level function generic over spendAuthDomain
// rather than a method on SigningKey[D], so that RandomizeSigningKey[Binding]
// is a compile error instead of a runtime panic or documented footgun:
// Binding does not implement spendAuthDomain, so the type argument cannot
// be inferred or supplied for it.
func RandomizeSigningKey[D spendAuthDomain](sk *SigningKey[D], r *ristretto255.Scalar) *SigningKey[D] {
	sum := ristretto255.NewScalar().Add(sk.sk, r)
	return NewSigningKeyFromScalar[D](sum)
}

// RandomizeVerificationKey returns a new SpendAuth verification key with
// point A + r·B_SpendAuth.
//
// Group-homomorphism invariant (tested in randomize_test.go): for all sk
// and r, RandomizeVerificationKey(sk.VerificationKey(), r) ==
// RandomizeSigningKey(sk, r).VerificationKey().
func RandomizeVerificationKey[D spendAuthDomain](vk *VerificationKey[D], r *ristretto255.Scalar) *VerificationKey[D] {
	var d D
	rB := ristretto255.NewElement().ScalarMult(r, d.basepoint())
	point := ristretto255.NewElement().Add(vk.point, rB)
	return verificationKeyFromPoint[D](point)
}
