package rdsa

import (
	"crypto/rand"
	"testing"

	"github.com/gtank/ristretto255"
	"github.com/stretchr/testify/require"
)

// TestSigningKeyRoundTrip is property 1: for all valid 32-byte
// scalars b, bytes(SigningKey::from(b)) == b.
func TestSigningKeyRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		sk, err := GenerateSigningKey[SpendAuth](rand.Reader)
		require.NoError(t, err)

		b := sk.Bytes()
		sk2, err := NewSigningKey[SpendAuth](b)
		require.NoError(t, err)
		require.Equal(t, b, sk2.Bytes())
	}
}

// TestVerificationKeyRoundTrip is property 1 for verification keys: for
// all valid compressed points b, bytes(VerificationKey::try_from(b)?) == b.
func TestVerificationKeyRoundTrip(t *testing.T) {
	sk, err := GenerateSigningKey[SpendAuth](rand.Reader)
	require.NoError(t, err)

	vkBytes := sk.VerificationKey().Bytes()
	vk, err := NewVerificationKey[SpendAuth](vkBytes)
	require.NoError(t, err)
	require.Equal(t, vkBytes, vk.Bytes())
}

// TestSignatureRoundTrip is property 1 for signatures: for all 64-byte
// arrays b, bytes(Signature::from(b)) == b, with no validation performed.
func TestSignatureRoundTrip(t *testing.T) {
	var b [SignatureSize]byte
	for i := range b {
		b[i] = byte(i)
	}
	sig := NewSignature[SpendAuth](b)
	require.Equal(t, b, sig.Bytes())
}

// S4: a non-canonical scalar [0xff; 32] must fail with
// ErrMalformedSigningKey.
func TestNonCanonicalSigningKeyIsRejected(t *testing.T) {
	var b [SigningKeySize]byte
	for i := range b {
		b[i] = 0xff
	}
	_, err := NewSigningKey[SpendAuth](b)
	require.ErrorIs(t, err, ErrMalformedSigningKey)
}

func TestNonCanonicalVerificationKeyIsRejected(t *testing.T) {
	var b [VerificationKeyBytesSize]byte
	for i := range b {
		b[i] = 0xff
	}
	vkBytes := NewVerificationKeyBytes[SpendAuth](b)
	_, err := NewVerificationKey[SpendAuth](vkBytes)
	require.ErrorIs(t, err, ErrMalformedVerificationKey)
}

func TestWrongSliceLength(t *testing.T) {
	_, err := SigningKeyFromSlice[SpendAuth]([]byte{1, 2, 3})
	var wrongLen *ErrWrongSliceLength
	require.ErrorAs(t, err, &wrongLen)
	require.Equal(t, SigningKeySize, wrongLen.Expected)
	require.Equal(t, 3, wrongLen.Found)

	_, err = VerificationKeyBytesFromSlice[SpendAuth](make([]byte, 31))
	require.ErrorAs(t, err, &wrongLen)

	_, err = SignatureFromSlice[SpendAuth](make([]byte, 65))
	require.ErrorAs(t, err, &wrongLen)
}

// Identity is a valid Binding verification key (property 8), and the
// identity key is exactly what a SigningKey with sk = 0 derives.
func TestIdentityIsAValidBindingKey(t *testing.T) {
	var zero [SigningKeySize]byte
	sk, err := NewSigningKey[Binding](zero)
	require.NoError(t, err)

	var identityBytes [32]byte
	copy(identityBytes[:], ristretto255.NewIdentityElement().Bytes())
	require.Equal(t, identityBytes, sk.VerificationKey().Bytes().Bytes())

	sig := sk.SignDeterministic([]byte("msg"))
	require.NoError(t, sk.VerificationKey().Verify([]byte("msg"), sig))
}
