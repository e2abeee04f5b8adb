package rdsa

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"
)

// VerificationKeyBytesSize is the length in bytes of a compressed
// verification key encoding.
const VerificationKeyBytesSize = 32

// VerificationKeyBytes is the raw, unvalidated 32-byte compressed encoding
// of a VerificationKey, tagged at compile time with its Domain. It is a
// plain comparable value: equality, ordering, and use as a map key operate
// directly on the encoded bytes, and the Domain type parameter already
// keeps SpendAuth and Binding keys in disjoint Go types, so two equal-byte
// keys of different domains can never collide in the same map (a stronger
// guarantee than a runtime domain tag carried alongside the bytes would
// give, since that depends on callers checking it rather than the type
// system enforcing it).
//
// Construction from bytes never fails; validation happens when the bytes
// are promoted to a VerificationKey.
type VerificationKeyBytes[D Domain] struct {
	bytes [VerificationKeyBytesSize]byte
}

// Bytes returns a copy of the raw 32-byte encoding.
func (b VerificationKeyBytes[D]) Bytes() [VerificationKeyBytesSize]byte {
	return b.bytes
}

// Compare returns -1, 0, or 1 depending on whether b sorts before, equal
// to, or after other, ordering by raw encoded bytes.
func (b VerificationKeyBytes[D]) Compare(other VerificationKeyBytes[D]) int {
	return bytes.Compare(b.bytes[:], other.bytes[:])
}

// NewVerificationKeyBytes wraps a 32-byte compressed encoding. Infallible.
func NewVerificationKeyBytes[D Domain](b [VerificationKeyBytesSize]byte) VerificationKeyBytes[D] {
	return VerificationKeyBytes[D]{bytes: b}
}

// VerificationKeyBytesFromSlice wraps a compressed encoding supplied as a
// slice, failing with ErrWrongSliceLength if its length is wrong.
func VerificationKeyBytesFromSlice[D Domain](b []byte) (VerificationKeyBytes[D], error) {
	if len(b) != VerificationKeyBytesSize {
		return VerificationKeyBytes[D]{}, &ErrWrongSliceLength{Expected: VerificationKeyBytesSize, Found: len(b)}
	}
	var out VerificationKeyBytes[D]
	copy(out.bytes[:], b)
	return out, nil
}

// VerificationKey is a validated verification key: a decompressed group
// element cached alongside its canonical compressed encoding (the
// invariant bytes == compress(point) is maintained by construction). The
// identity element is a permitted verification key — required for the
// Binding domain, whose keys are sums of value commitments that may
// cancel — so no constructor here rejects it.
type VerificationKey[D Domain] struct {
	point *ristretto255.Element
	bytes VerificationKeyBytes[D]
}

// Bytes returns the compressed encoding of vk.
func (vk *VerificationKey[D]) Bytes() VerificationKeyBytes[D] {
	return vk.bytes
}

// Point returns a copy of the decompressed group element underlying vk.
func (vk *VerificationKey[D]) Point() *ristretto255.Element {
	cp := *vk.point
	return &cp
}

// NewVerificationKey decompresses b into a VerificationKey, failing with
// ErrMalformedVerificationKey if b is not a canonical compressed point
// encoding.
func NewVerificationKey[D Domain](b VerificationKeyBytes[D]) (*VerificationKey[D], error) {
	point := ristretto255.NewElement()
	if err := point.Decode(b.bytes[:]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedVerificationKey, err)
	}
	return &VerificationKey[D]{point: point, bytes: b}, nil
}

func verificationKeyFromPoint[D Domain](point *ristretto255.Element) *VerificationKey[D] {
	var b VerificationKeyBytes[D]
	copy(b.bytes[:], point.Bytes())
	return &VerificationKey[D]{point: point, bytes: b}
}

// SigningKeySize is the length in bytes of a canonical signing scalar
// encoding.
const SigningKeySize = 32

// SigningKey is a RedDSA signing key: a scalar sk and its derived
// VerificationKey, domain-tagged at compile time. The invariant pk =
// basepoint(D)·sk always holds for a constructed SigningKey; there is no
// way to obtain one that violates it.
type SigningKey[D Domain] struct {
	sk *ristretto255.Scalar
	pk *VerificationKey[D]
}

// Bytes returns the canonical 32-byte scalar encoding of the signing key.
func (sk *SigningKey[D]) Bytes() [SigningKeySize]byte {
	var out [SigningKeySize]byte
	copy(out[:], sk.sk.Bytes())
	return out
}

// VerificationKey returns the verification key corresponding to sk.
func (sk *SigningKey[D]) VerificationKey() *VerificationKey[D] {
	return sk.pk
}

// Scalar returns a copy of the scalar underlying sk.
func (sk *SigningKey[D]) Scalar() *ristretto255.Scalar {
	cp := *sk.sk
	return &cp
}

// String never renders the signing scalar, so that an accidental %v/%+v
// on a SigningKey in a log line cannot leak key material.
func (sk *SigningKey[D]) String() string {
	var d D
	return fmt.Sprintf("rdsa.SigningKey[%s]{pk: %x}", d.name(), sk.pk.bytes.bytes)
}

// GoString matches String for the same reason.
func (sk *SigningKey[D]) GoString() string { return sk.String() }

// NewSigningKeyFromScalar adopts a caller-supplied scalar as a signing key,
// deriving its verification key.
func NewSigningKeyFromScalar[D Domain](s *ristretto255.Scalar) *SigningKey[D] {
	scalarCopy := *s
	scalar := &scalarCopy
	var d D
	point := ristretto255.NewElement().ScalarMult(scalar, d.basepoint())
	return &SigningKey[D]{sk: scalar, pk: verificationKeyFromPoint[D](point)}
}

// NewSigningKey decodes a canonical 32-byte scalar encoding into a signing
// key, failing with ErrMalformedSigningKey on a non-canonical encoding.
func NewSigningKey[D Domain](b [SigningKeySize]byte) (*SigningKey[D], error) {
	scalar, err := ristretto255.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedSigningKey, err)
	}
	return NewSigningKeyFromScalar[D](scalar), nil
}

// SigningKeyFromSlice decodes a signing key from a slice, failing with
// ErrWrongSliceLength if its length is wrong, or ErrMalformedSigningKey if
// its 32 bytes are not a canonical scalar encoding.
func SigningKeyFromSlice[D Domain](b []byte) (*SigningKey[D], error) {
	if len(b) != SigningKeySize {
		return nil, &ErrWrongSliceLength{Expected: SigningKeySize, Found: len(b)}
	}
	var arr [SigningKeySize]byte
	copy(arr[:], b)
	return NewSigningKey[D](arr)
}

// GenerateSigningKey samples a fresh signing key by drawing 64 bytes from
// rng and reducing them modulo the scalar field order (the unbiased wide
// reduction, not a 32-byte draw-and-reject, so any rng output maps
// to a valid key).
func GenerateSigningKey[D Domain](rng io.Reader) (*SigningKey[D], error) {
	if rng == nil {
		rng = rand.Reader
	}
	var wide [64]byte
	if _, err := io.ReadFull(rng, wide[:]); err != nil {
		return nil, fmt.Errorf("decaf377-rdsa: entropy source failure: %w", err)
	}
	scalar, err := ristretto255.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only rejects a wrong-length input; wide is
		// always exactly 64 bytes.
		panic("decaf377-rdsa: unreachable wide reduction failure: " + err.Error())
	}
	return NewSigningKeyFromScalar[D](scalar), nil
}
