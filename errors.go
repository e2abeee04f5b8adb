package rdsa

import (
	"errors"
	"fmt"
)

// The error taxonomy is intentionally closed and flat: every key, signature
// and slice-length failure a caller can observe from this package is one of
// the three sentinels below or an *ErrWrongSliceLength, the sentinels
// optionally wrapped with fmt.Errorf for extra context. A read failure of
// the caller's rng is returned as that reader's error, wrapped. Callers
// that need to distinguish failure modes should use errors.Is against these
// values rather than matching on message text.
var (
	// ErrMalformedSigningKey is returned when a 32-byte buffer does not
	// decode to a canonical (reduced, less than the scalar field order)
	// signing scalar.
	ErrMalformedSigningKey = errors.New("decaf377-rdsa: malformed signing key")

	// ErrMalformedVerificationKey is returned when a 32-byte buffer does
	// not decode to a canonical compressed group element.
	ErrMalformedVerificationKey = errors.New("decaf377-rdsa: malformed verification key")

	// ErrInvalidSignature covers every way a signature can fail to verify:
	// a non-canonical s, a non-canonical R or A encountered while decoding
	// inside the batch path, or a verification equation that does not hold.
	// The batch verifier deliberately does not distinguish these cases from
	// each other; callers who need to localize the failure should re-run
	// Item.VerifySingle on each queued item.
	ErrInvalidSignature = errors.New("decaf377-rdsa: invalid signature")
)

// ErrWrongSliceLength is returned by the FromSlice family of constructors
// when the input slice length does not match what the target type expects.
type ErrWrongSliceLength struct {
	Expected int
	Found    int
}

func (e *ErrWrongSliceLength) Error() string {
	return fmt.Sprintf("decaf377-rdsa: wrong slice length: expected %d, found %d", e.Expected, e.Found)
}
