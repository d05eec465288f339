package garcide_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/classify"
	"github.com/go-garside/garcide/conjtest"
	"github.com/go-garside/garcide/families/artin"
	"github.com/go-garside/garcide/sets"
)

func word(t *testing.T, n int, w []int) braid.Braid[int, artin.Factor] {
	t.Helper()
	b, err := braid.FromWord[int, artin.Factor](artin.Family{}, n, w)
	require.NoError(t, err)
	return b
}

// TestNormalFormOfDeltaWord is spec scenario 1: n=4, the word
// sigma1 sigma2 sigma3 sigma1 sigma2 sigma1 reduces to Delta.
func TestNormalFormOfDeltaWord(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 3, 1, 2, 1})
	require.True(braid.Equal(b, braid.FromDelta[int, artin.Factor](artin.Family{}, 4, 1)))
}

// TestMeetOfDisjointGeneratorsIsIdentity is spec scenario 2: n=3,
// sigma1 sigma2 and sigma2 sigma1 share no nontrivial common prefix.
func TestMeetOfDisjointGeneratorsIsIdentity(t *testing.T) {
	require := require.New(t)
	a := word(t, 3, []int{1, 2})
	b := word(t, 3, []int{2, 1})
	require.True(braid.LeftMeet(a, b).IsIdentity())
}

// TestConjugacyTrue is spec scenario 3: n=3, sigma1 sigma2 sigma1 sigma2
// and sigma2 sigma1 sigma2 sigma1 are conjugate.
func TestConjugacyTrue(t *testing.T) {
	require := require.New(t)
	u := word(t, 3, []int{1, 2, 1, 2})
	v := word(t, 3, []int{2, 1, 2, 1})
	ok, err := conjtest.AreConjugate(u, v)
	require.NoError(err)
	require.True(ok)

	ok2, c, err := conjtest.AreConjugateWithWitness(u, v)
	require.NoError(err)
	require.True(ok2)
	require.True(braid.Equal(braid.ConjugateBraid(u, c), v), "c⁻¹·u·c must equal v")
}

// TestConjugacyFalse is spec scenario 4: n=4, sigma1 sigma2 sigma3 and
// sigma1 sigma2 are not conjugate (different canonical length/Sup).
func TestConjugacyFalse(t *testing.T) {
	require := require.New(t)
	u := word(t, 4, []int{1, 2, 3})
	v := word(t, 4, []int{1, 2})
	ok, err := conjtest.AreConjugate(u, v)
	require.NoError(err)
	require.False(ok)
}

// TestUSSSizeOfCentralElement is spec scenario 5: n=3, b = Delta^2
// (the word sigma1 sigma2 sigma1 sigma2 sigma1 sigma2) has a
// single-orbit ultra summit set and is classified periodic.
func TestUSSSizeOfCentralElement(t *testing.T) {
	require := require.New(t)
	b := word(t, 3, []int{1, 2, 1, 2, 1, 2})

	uss, err := sets.BuildUSS(b)
	require.NoError(err)
	require.Equal(1, uss.Len())

	ty, warn, err := classify.ThurstonType(b)
	require.NoError(err)
	require.False(warn)
	require.Equal(classify.Periodic, ty)
}

// TestReducibleClassification is spec scenario 6: n=4, the word
// sigma1 sigma2 sigma1 sigma1 sigma2 sigma1 is reducible.
func TestReducibleClassification(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 1, 2, 1})

	ty, _, err := classify.ThurstonType(b)
	require.NoError(err)
	require.Equal(classify.Reducible, ty)
}
