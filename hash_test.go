package rdsa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHStarPersonalization(t *testing.T) {
	require.Equal(t, "decaf377-rdsa---", string(hStarPersonalization), "personalization must be the padded 16-byte ASCII label")
	require.Len(t, hStarPersonalization, 16, "blake2b personalization is fixed at 16 bytes")
}

func TestHStarConcatenationIsAssociative(t *testing.T) {
	a, b, c := []byte("alpha"), []byte("beta"), []byte("gamma")

	whole := hStar(append(append(append([]byte{}, a...), b...), c...))
	split := hStar(a, b, c)

	require.EqualValues(t, 1, whole.Equal(split), "one update of the concatenation must equal several updates")
}

func TestHStarFinalizeDoesNotConsumeState(t *testing.T) {
	h := NewHStar()
	h.Update([]byte("message"))

	first := h.Finalize()
	second := h.Finalize()

	require.EqualValues(t, 1, first.Equal(second), "Finalize must be repeatable without mutating the hasher")
}

func TestHStarDistinctInputsDistinctOutputs(t *testing.T) {
	s1 := hStar([]byte("one"))
	s2 := hStar([]byte("two"))
	require.EqualValues(t, 0, s1.Equal(s2), "distinct messages should not collide")
}
