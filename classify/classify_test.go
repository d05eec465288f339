package classify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/classify"
	"github.com/go-garside/garcide/families/artin"
)

func word(t *testing.T, n int, w []int) braid.Braid[int, artin.Factor] {
	t.Helper()
	b, err := braid.FromWord[int, artin.Factor](artin.Family{}, n, w)
	require.NoError(t, err)
	return b
}

func TestThurstonTypePeriodicForDeltaSquared(t *testing.T) {
	require := require.New(t)
	b := word(t, 3, []int{1, 2, 1, 2, 1, 2})
	ty, warn, err := classify.ThurstonType(b)
	require.NoError(err)
	require.False(warn)
	require.Equal(classify.Periodic, ty)
}

func TestThurstonTypeReducible(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 1, 2, 1})
	ty, _, err := classify.ThurstonType(b)
	require.NoError(err)
	require.Equal(classify.Reducible, ty)
}

func TestRigidityBoundedByCanonicalLength(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 2, 3})
	b = braid.ToLCF(b)
	r := classify.Rigidity(b)
	require.LessOrEqual(r, b.CanonicalLength())
	require.GreaterOrEqual(r, 0)
}

func TestRigidityOfIdentityIsZero(t *testing.T) {
	require := require.New(t)
	id := braid.Identity[int, artin.Factor](artin.Family{}, 4)
	require.Equal(0, classify.Rigidity(id))
}

func TestRigidityUSSAgreesOnCentralElement(t *testing.T) {
	require := require.New(t)
	b := word(t, 3, []int{1, 2, 1, 2, 1, 2})
	r, disagree, err := classify.RigidityUSS(b)
	require.NoError(err)
	require.False(disagree)
	require.GreaterOrEqual(r, 0)
}

func TestTypeString(t *testing.T) {
	require := require.New(t)
	require.Equal("periodic", classify.Periodic.String())
	require.Equal("reducible", classify.Reducible.String())
	require.Equal("pseudo-Anosov", classify.PseudoAnosov.String())
	require.Equal("unknown", classify.Unknown.String())
}
