// Package frost exposes the two hash-to-scalar functions a FROST
// threshold-signing coordinator needs to produce RedDSA-compatible
// signature shares: H4, the challenge hash shared with ordinary
// single-party signing, and H5, the per-participant binding-factor hash.
//
// This is deliberately thin glue, not a threshold-signing implementation:
// a full FROST coordinator (nonce commitment exchange, share aggregation,
// participant bookkeeping) is out of scope here. Nothing in the core
// signing, verification, or batch-verification paths calls into this
// package.
package frost

import (
	"github.com/gtank/ristretto255"

	rdsa "github.com/penumbra-zone/decaf377-rdsa"
)

// H4 is FROST's challenge hash: c = H4(R ‖ pk ‖ msg), identical to the
// ordinary RedDSA challenge hash so that a FROST-produced signature share
// verifies against the same equation a single-party signature does.
func H4(rBytes, pkBytes, msg []byte) *ristretto255.Scalar {
	return rdsa.HStarHash(rBytes, pkBytes, msg)
}

// H5 is FROST's per-participant binding-factor hash, used to derive the
// scalar that binds a participant's nonce commitments to the signing
// session and message set.
//
// Reusing the 32-byte scalar encoding as H5's output type is a modeling
// shortcut: a binding factor is not really a scalar meant for arithmetic
// with signing keys, just an opaque 32-byte value that happens to share
// the same wire size. Kept as-is rather than introducing a distinct
// hash-output type, since nothing outside this thin adapter consumes it.
func H5(encodedCommitments []byte, participantID []byte, msg []byte) *ristretto255.Scalar {
	return rdsa.HStarHash(encodedCommitments, participantID, msg)
}
