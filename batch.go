package rdsa

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"
)

// itemDomain is the runtime tag distinguishing which basepoint a queued
// Item was built against. Unlike VerificationKeyBytes/SigningKey/Signature,
// which carry their domain as a Go generic type parameter, Item has to
// carry it as a value: the whole point of the batch verifier is a single
// queue mixing both domains, and a Go slice can't hold Item[SpendAuth] and
// Item[Binding] side by side.
type itemDomain uint8

const (
	itemSpendAuth itemDomain = iota
	itemBinding
)

// Item is one signature queued for batch verification: a domain tag, the
// raw verification key and signature bytes, and the challenge scalar
// already hashed in at queue time. Decoupling the challenge from the
// message lets the caller's message buffer be reused or freed immediately
// after queueing.
type Item struct {
	domain   itemDomain
	vkBytes  [VerificationKeyBytesSize]byte
	sigBytes [SignatureSize]byte
	c        *ristretto255.Scalar
}

// NewSpendAuthItem builds a batch Item from a SpendAuth verification key
// and signature, pre-hashing the challenge over msg.
func NewSpendAuthItem(vk VerificationKeyBytes[SpendAuth], sig *Signature[SpendAuth], msg []byte) *Item {
	return newItem(itemSpendAuth, vk.bytes, sig.bytes, msg)
}

// NewBindingItem builds a batch Item from a Binding verification key and
// signature, pre-hashing the challenge over msg.
func NewBindingItem(vk VerificationKeyBytes[Binding], sig *Signature[Binding], msg []byte) *Item {
	return newItem(itemBinding, vk.bytes, sig.bytes, msg)
}

func newItem(domain itemDomain, vkBytes [VerificationKeyBytesSize]byte, sigBytes [SignatureSize]byte, msg []byte) *Item {
	c := hStar(sigBytes[0:32], vkBytes[:], msg)
	return &Item{domain: domain, vkBytes: vkBytes, sigBytes: sigBytes, c: c}
}

func (it *Item) basepoint() *ristretto255.Element {
	switch it.domain {
	case itemSpendAuth:
		return SpendAuth{}.basepoint()
	case itemBinding:
		return Binding{}.basepoint()
	default:
		panic("decaf377-rdsa: unreachable item domain")
	}
}

// VerifySingle re-runs single verification using the item's pre-computed
// challenge, so it does not need (and cannot use) the original message.
// Callers localizing a batch failure call this on each queued item.
func (it *Item) VerifySingle() error {
	A := ristretto255.NewElement()
	if err := A.Decode(it.vkBytes[:]); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}
	R := ristretto255.NewElement()
	if err := R.Decode(it.sigBytes[0:32]); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}
	s, err := ristretto255.NewScalar().SetCanonicalBytes(it.sigBytes[32:64])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	negC := ristretto255.NewScalar().Negate(it.c)
	rPrime := ristretto255.NewElement().VarTimeMultiscalarMult(
		[]*ristretto255.Scalar{s, negC},
		[]*ristretto255.Element{it.basepoint(), A},
	)
	if rPrime.Equal(R) != 1 {
		return ErrInvalidSignature
	}
	return nil
}

// Verifier accumulates Items for batch verification. It is a single-owner
// mutable builder, not safe for concurrent use without external
// synchronization; independent Verifiers proceed independently.
type Verifier struct {
	items []*Item
}

// NewVerifier returns an empty Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Queue adds it to the batch. Items of either domain may be queued onto
// the same Verifier.
func (v *Verifier) Queue(it *Item) {
	v.items = append(v.items, it)
}

// Len reports how many items are currently queued.
func (v *Verifier) Len() int { return len(v.items) }

// Verify checks the single combined multi-scalar equation over every
// queued item, drawing one fresh 128-bit blinding scalar per item
// from rng (crypto/rand.Reader if rng is nil). An empty batch returns nil
// (vacuous truth: the combined equation's sum is the identity). A failure
// does not identify which item was invalid; re-run Item.VerifySingle on
// each queued item to localize it.
//
// Randomness MUST be fresh per call: reusing blinding scalars across
// batches does not expose any individual signing key, but it does erode
// the 2⁻¹²⁸ soundness bound this equation otherwise provides.
func (v *Verifier) Verify(rng io.Reader) error {
	if len(v.items) == 0 {
		return nil
	}
	if rng == nil {
		rng = rand.Reader
	}

	n := len(v.items)

	// Pre-size two scratch vectors of length n for the per-item A- and
	// R-coefficients, and accumulate the two basepoint scalars as running
	// sums. The final multi-scalar multiplication has 2 + 2n terms: the
	// two domain basepoints plus one coefficient per item's A and R.
	scalars := make([]*ristretto255.Scalar, 0, 2+2*n)
	points := make([]*ristretto255.Element, 0, 2+2*n)

	spendAuthSum := ristretto255.NewScalar()
	bindingSum := ristretto255.NewScalar()

	aCoeffs := make([]*ristretto255.Scalar, n)
	aPoints := make([]*ristretto255.Element, n)
	rCoeffs := make([]*ristretto255.Scalar, n)
	rPoints := make([]*ristretto255.Element, n)

	for i, it := range v.items {
		z, err := randomBlindingScalar(rng)
		if err != nil {
			return fmt.Errorf("decaf377-rdsa: entropy source failure: %w", err)
		}

		A := ristretto255.NewElement()
		if err := A.Decode(it.vkBytes[:]); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
		}
		R := ristretto255.NewElement()
		if err := R.Decode(it.sigBytes[0:32]); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
		}
		s, err := ristretto255.NewScalar().SetCanonicalBytes(it.sigBytes[32:64])
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
		}

		// -z_i * s_i, added to the running sum for this item's domain
		// basepoint.
		zs := ristretto255.NewScalar().Multiply(z, s)
		zs.Negate(zs)
		switch it.domain {
		case itemSpendAuth:
			spendAuthSum.Add(spendAuthSum, zs)
		case itemBinding:
			bindingSum.Add(bindingSum, zs)
		}

		zc := ristretto255.NewScalar().Multiply(z, it.c)
		aCoeffs[i], aPoints[i] = zc, A
		rCoeffs[i], rPoints[i] = z, R
	}

	scalars = append(scalars, spendAuthSum, bindingSum)
	points = append(points, SpendAuth{}.basepoint(), Binding{}.basepoint())
	scalars = append(scalars, aCoeffs...)
	points = append(points, aPoints...)
	scalars = append(scalars, rCoeffs...)
	points = append(points, rPoints...)

	result := ristretto255.NewElement().VarTimeMultiscalarMult(scalars, points)
	if result.Equal(ristretto255.NewIdentityElement()) != 1 {
		return ErrInvalidSignature
	}
	return nil
}

// randomBlindingScalar draws a uniform 128-bit blinding scalar as lo +
// (hi<<64) from two 64-bit words read from rng. 128 bits is always
// less than the scalar field order, so the little-endian 32-byte buffer
// (zero in its upper 16 bytes) is automatically a canonical encoding.
func randomBlindingScalar(rng io.Reader) (*ristretto255.Scalar, error) {
	var words [16]byte
	if _, err := io.ReadFull(rng, words[:]); err != nil {
		return nil, err
	}
	lo := binary.LittleEndian.Uint64(words[0:8])
	hi := binary.LittleEndian.Uint64(words[8:16])

	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:8], lo)
	binary.LittleEndian.PutUint64(buf[8:16], hi)

	z, err := ristretto255.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		// Unreachable: the top 16 bytes are zero, so buf always encodes
		// a value below the scalar field order.
		panic("decaf377-rdsa: unreachable non-canonical blinding scalar: " + err.Error())
	}
	return z, nil
}
