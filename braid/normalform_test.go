package braid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/families/artin"
)

func TestFromWordNormalFormOfDeltaWord(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	// sigma1 sigma2 sigma3 sigma1 sigma2 sigma1 = Delta in B_4.
	b, err := braid.FromWord[int, artin.Factor](fam, 4, []int{1, 2, 3, 1, 2, 1})
	require.NoError(err)
	require.Equal(1, b.Inf())
	require.Equal(0, b.CanonicalLength())
	require.True(b.IsIdentity() == false)

	delta := braid.FromDelta[int, artin.Factor](fam, 4, 1)
	require.True(braid.Equal(b, delta))
}

func TestFromWordRejectsInvalidGenerator(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	_, err := braid.FromWord[int, artin.Factor](fam, 4, []int{9})
	require.ErrorIs(err, braid.ErrInvalidGenerator)
}

func TestMultiplyInverseIsIdentity(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	b, err := braid.FromWord[int, artin.Factor](fam, 4, []int{1, 2, 3})
	require.NoError(err)

	inv := braid.Inverse(b)
	prod := braid.Multiply(b, inv)
	require.True(prod.IsIdentity())
}

func TestToLCFToRCFRoundtrip(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	b, err := braid.FromWord[int, artin.Factor](fam, 4, []int{1, 2, 1, 3, 2})
	require.NoError(err)

	rcf := braid.ToRCF(b)
	lcf := braid.ToLCF(rcf)
	require.True(braid.Equal(b, lcf))
	require.True(braid.Equal(b, rcf))
}

func TestLeftMeetOfCommutingGenerators(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	a, err := braid.FromWord[int, artin.Factor](fam, 3, []int{1, 2})
	require.NoError(err)
	b2, err := braid.FromWord[int, artin.Factor](fam, 3, []int{2, 1})
	require.NoError(err)

	m := braid.LeftMeet(a, b2)
	require.True(m.IsIdentity(), "sigma1*sigma2 and sigma2*sigma1 share no common left prefix")
}

func TestConjugateByInverseRoundtrips(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	b, err := braid.FromWord[int, artin.Factor](fam, 4, []int{1, 2, 3})
	require.NoError(err)
	atoms := fam.Atoms(4)

	c := braid.Conjugate(b, atoms[0])
	back := braid.ConjugateBraid(c, braid.Inverse(braid.FromFactor[int, artin.Factor](fam, 4, atoms[0])))
	require.True(braid.Equal(b, back))
}

func TestReverseInvolution(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	b, err := braid.FromWord[int, artin.Factor](fam, 4, []int{1, 2, 3, 1})
	require.NoError(err)

	r := braid.Reverse(b)
	rr := braid.Reverse(r)
	require.True(braid.Equal(b, rr))
}
