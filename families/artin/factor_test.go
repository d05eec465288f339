package artin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garside/garcide/families/artin"
)

func TestIdentityAndDelta(t *testing.T) {
	require := require.New(t)
	id := artin.NewIdentity(4)
	require.True(id.IsIdentity())
	require.False(id.IsDelta())

	delta := artin.NewDelta(4)
	require.True(delta.IsDelta())
	require.False(delta.IsIdentity())
	require.Equal([]int{3, 2, 1, 0}, delta.Permutation())
}

func TestAtomsAreCovers(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	atoms := fam.Atoms(4)
	require.Len(atoms, 3)
	for _, a := range atoms {
		require.False(a.IsIdentity())
		require.False(a.IsDelta())
	}
}

func TestComplementsRoundtrip(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	delta := fam.Delta(4)
	for _, a := range fam.Atoms(4) {
		c := a.LeftComplement()
		p, ok := a.Product(c)
		require.True(ok)
		require.True(p.Equal(delta))

		rc := a.RightComplement()
		p2, ok := rc.Product(a)
		require.True(ok)
		require.True(p2.Equal(delta))
	}
}

func TestLeftMeetIsLowerBound(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	atoms := fam.Atoms(4)
	m := atoms[0].LeftMeet(atoms[1])
	require.True(m.IsIdentity(), "disjoint atoms should meet at identity")

	m2 := atoms[0].LeftMeet(atoms[0])
	require.True(m2.Equal(atoms[0]))
}

func TestDeltaConjugateInvolution(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	for _, a := range fam.Atoms(5) {
		once := a.DeltaConjugate(1)
		twice := once.DeltaConjugate(1)
		require.True(twice.Equal(a))
		require.True(a.DeltaConjugate(0).Equal(a))
		require.True(a.DeltaConjugate(2).Equal(a))
	}
}

func TestQuotientsInvertProduct(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	atoms := fam.Atoms(4)
	prod, ok := atoms[0].Product(atoms[2])
	require.True(ok)

	h := atoms[0].LeftQuotient(prod)
	require.True(h.Equal(atoms[2]))

	h2 := atoms[2].RightQuotient(prod)
	require.True(h2.Equal(atoms[0]))
}

func TestParsePrintRoundtrip(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	f, err := fam.Parse(4, "1 3")
	require.NoError(err)
	require.False(f.IsIdentity())

	s := fam.Print(4, f)
	f2, err := fam.Parse(4, s)
	require.NoError(err)
	require.True(f.Equal(f2))
}

func TestParseRejectsNonSimpleWord(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	_, err := fam.Parse(4, "1 1")
	require.Error(err)
}

func TestParseRejectsOutOfRangeToken(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	_, err := fam.Parse(4, "9")
	require.Error(err)
}

func TestRandomFactorDeterministic(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	a, err := fam.RandomFactor(6, 42)
	require.NoError(err)
	b, err := fam.RandomFactor(6, 42)
	require.NoError(err)
	require.True(a.Equal(b), "same seed should reproduce the same factor")
}
