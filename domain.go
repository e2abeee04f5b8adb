package rdsa

import (
	"sync"

	"github.com/gtank/ristretto255"
	"github.com/minio/blake2b-simd"
)

// Domain selects which of the two RedDSA instantiations a key, signature,
// or batch item belongs to. It is never implemented outside this package;
// SpendAuth and Binding are the only two instantiations the RedDSA
// construction defines.
//
// Domain is carried as a Go generic type parameter on SigningKey,
// VerificationKey, VerificationKeyBytes, and Signature, so the compiler
// rejects mixing a SpendAuth signature with a Binding key (or vice versa)
// at the call site, rather than at runtime. The batch verifier is the one
// place the two domains mix, and it does so through the tagged Item union
// in batch.go, not by erasing the type parameter.
type Domain interface {
	basepoint() *ristretto255.Element
	name() string

	isDomain() // unexported method closes the interface's implementer set
}

// SpendAuth is the domain used to authorize spends. Its basepoint is the
// group's canonical generator. Keys in this domain support re-randomization
// (randomize.go).
type SpendAuth struct{}

func (SpendAuth) basepoint() *ristretto255.Element { return ristretto255.NewGeneratorElement() }
func (SpendAuth) name() string                      { return "SpendAuth" }
func (SpendAuth) isDomain()                          {}

// Binding is the domain used to bind transaction value commitments. Its
// basepoint is the image of a fixed label under hash-to-group. Public
// keys in this domain are sums of value commitments and may legitimately be
// the identity element; re-randomization is not defined for this domain and
// is not exposed (see randomize.go and spendAuthDomain).
type Binding struct{}

func (Binding) basepoint() *ristretto255.Element { return bindingBasepoint() }
func (Binding) name() string                      { return "Binding" }
func (Binding) isDomain()                          {}

// spendAuthDomain is a marker interface satisfied only by SpendAuth. Package
// functions that must be unavailable for Binding (key randomization) are
// written generic over this constraint instead of Domain, so instantiating
// them with Binding is a compile error rather than a documented footgun.
type spendAuthDomain interface {
	Domain
	isSpendAuth()
}

func (SpendAuth) isSpendAuth() {}

const bindingBasepointLabel = "decaf377-rdsa-binding"

var (
	bindingBasepointOnce  sync.Once
	bindingBasepointPoint *ristretto255.Element
)

// bindingBasepoint computes B_Binding = hash_to_group(Blake2b-512(label)),
// memoizing the result. It is a pure function of a fixed constant, so
// caching is a performance detail only: every call observes the same
// encoded point, which domain_test.go checks.
func bindingBasepoint() *ristretto255.Element {
	bindingBasepointOnce.Do(func() {
		// Unlike HStar's challenge/nonce hashing, this is a plain,
		// unpersonalized Blake2b-512: hash_to_group is applied directly to
		// the digest, not to an HStar-reduced scalar.
		digest := blake2b.Sum512([]byte(bindingBasepointLabel))
		bindingBasepointPoint = ristretto255.NewElement().FromUniformBytes(digest[:])
	})
	return bindingBasepointPoint
}
