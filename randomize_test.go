package rdsa

import (
	"crypto/rand"
	"testing"

	"github.com/gtank/ristretto255"
	"github.com/stretchr/testify/require"
)

// TestRandomizationHomomorphism is property 4: for all sk, r,
// VerificationKey(sk.randomize(r)).bytes == sk.VerificationKey().randomize(r).bytes.
func TestRandomizationHomomorphism(t *testing.T) {
	for i := 0; i < 32; i++ {
		sk, err := GenerateSigningKey[SpendAuth](rand.Reader)
		require.NoError(t, err)

		rSk, err := GenerateSigningKey[SpendAuth](rand.Reader)
		require.NoError(t, err)
		r := rSk.Scalar()

		lhs := RandomizeSigningKey[SpendAuth](sk, r).VerificationKey()
		rhs := RandomizeVerificationKey[SpendAuth](sk.VerificationKey(), r)

		require.Equal(t, lhs.Bytes(), rhs.Bytes())
	}
}

// A randomized key must still verify signatures made by the randomized
// signing key, and the randomized verification key must differ from the
// original whenever r != 0.
func TestRandomizedKeySignVerify(t *testing.T) {
	sk, err := GenerateSigningKey[SpendAuth](rand.Reader)
	require.NoError(t, err)

	rSk, err := GenerateSigningKey[SpendAuth](rand.Reader)
	require.NoError(t, err)
	r := rSk.Scalar()

	randomized := RandomizeSigningKey[SpendAuth](sk, r)
	require.NotEqual(t, sk.VerificationKey().Bytes(), randomized.VerificationKey().Bytes())

	msg := []byte("randomized spend authorization")
	sig, err := randomized.Sign(rand.Reader, msg)
	require.NoError(t, err)
	require.NoError(t, randomized.VerificationKey().Verify(msg, sig))

	// The original (unrandomized) key must not be able to verify it.
	require.ErrorIs(t, sk.VerificationKey().Verify(msg, sig), ErrInvalidSignature)
}

// TestRandomizeWithZeroIsIdentity sanity-checks the homomorphism's
// degenerate case: randomizing by the zero scalar changes nothing.
func TestRandomizeWithZeroIsIdentity(t *testing.T) {
	sk, err := GenerateSigningKey[SpendAuth](rand.Reader)
	require.NoError(t, err)

	zero := ristretto255.NewScalar()
	randomized := RandomizeSigningKey[SpendAuth](sk, zero)

	require.Equal(t, sk.VerificationKey().Bytes(), randomized.VerificationKey().Bytes())
}

// Randomize is intentionally not exposed for Binding: there is no
// RandomizeSigningKey[Binding] that type-checks, since Binding does not
// implement the unexported spendAuthDomain marker. This is enforced at
// compile time, so there is nothing to assert here at runtime; the
// absence of such a call anywhere in this module (including this file) is
// the test.
