package conjtest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/conjtest"
	"github.com/go-garside/garcide/families/artin"
)

func word(t *testing.T, n int, w []int) braid.Braid[int, artin.Factor] {
	t.Helper()
	b, err := braid.FromWord[int, artin.Factor](artin.Family{}, n, w)
	require.NoError(t, err)
	return b
}

func TestAreConjugateReflexive(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 2, 3})
	ok, err := conjtest.AreConjugate(b, b)
	require.NoError(err)
	require.True(ok)
}

func TestAreConjugateSCReflexive(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 2, 3})
	ok, err := conjtest.AreConjugateSC(b, b)
	require.NoError(err)
	require.True(ok)
}

func TestAreConjugateWithWitnessProducesValidConjugator(t *testing.T) {
	require := require.New(t)
	u := word(t, 3, []int{1, 2, 1, 2})
	v := word(t, 3, []int{2, 1, 2, 1})

	ok, c, err := conjtest.AreConjugateWithWitness(u, v)
	require.NoError(err)
	require.True(ok)
	require.True(braid.Equal(braid.ConjugateBraid(u, c), v))
}

func TestAreConjugateWithWitnessSCProducesValidConjugator(t *testing.T) {
	require := require.New(t)
	u := word(t, 3, []int{1, 2, 1, 2})
	v := word(t, 3, []int{2, 1, 2, 1})

	ok, c, err := conjtest.AreConjugateWithWitnessSC(u, v)
	require.NoError(err)
	require.True(ok)
	require.True(braid.Equal(braid.ConjugateBraid(u, c), v))
}

func TestCentralizerGeneratorsCommute(t *testing.T) {
	require := require.New(t)
	b := word(t, 3, []int{1, 2, 1, 2, 1, 2}) // Delta^2, central

	gens, err := conjtest.Centralizer(b)
	require.NoError(err)
	require.NotEmpty(gens)
	for _, g := range gens {
		left := braid.Multiply(g, b)
		right := braid.Multiply(b, g)
		require.True(braid.Equal(left, right), "centralizer generator must commute with b")
	}
}
