package minconj_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/families/artin"
	"github.com/go-garside/garcide/minconj"
)

func word(t *testing.T, n int, w []int) braid.Braid[int, artin.Factor] {
	t.Helper()
	b, err := braid.FromWord[int, artin.Factor](artin.Family{}, n, w)
	require.NoError(t, err)
	return b
}

func TestMinSetNonEmptyAndDeduplicated(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 2, 3})

	res, err := minconj.MinSet(b, minconj.SSS)
	require.NoError(err)
	require.NotEmpty(res)

	for i := 0; i < len(res); i++ {
		for j := i + 1; j < len(res); j++ {
			require.False(res[i].Equal(res[j]), "MinSet must not return duplicate conjugators")
		}
	}
}

func TestMinUSSReturnsAUsableConjugator(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 2, 3})
	atoms := artin.Family{}.Atoms(4)

	f, err := minconj.MinUSS(b, atoms[0])
	require.NoError(err)
	// f must be a valid simple factor: conjugating by it must not error
	// or panic, and the result must be well-formed LCF.
	conj := braid.Conjugate(b, f)
	require.Equal(braid.LCF, conj.Form())
}

func TestMinSCReturnsAUsableConjugator(t *testing.T) {
	require := require.New(t)
	b := word(t, 3, []int{1, 2, 1, 2, 1, 2})
	atoms := artin.Family{}.Atoms(3)

	f := minconj.MinSC(b, atoms[0])
	conj := braid.Conjugate(b, f)
	require.Equal(braid.LCF, conj.Form())
}

func TestFlavourString(t *testing.T) {
	require := require.New(t)
	require.Equal("SSS", minconj.SSS.String())
	require.Equal("USS", minconj.USS.String())
	require.Equal("SC", minconj.SC.String())
}
