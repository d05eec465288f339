package sets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/families/artin"
	"github.com/go-garside/garcide/sets"
)

func word(t *testing.T, n int, w []int) braid.Braid[int, artin.Factor] {
	t.Helper()
	b, err := braid.FromWord[int, artin.Factor](artin.Family{}, n, w)
	require.NoError(t, err)
	return b
}

func TestSendToSuperSummitStabilizesUnderCycling(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 2, 3})
	sss := sets.SendToSuperSummit(b)

	// the result must itself be a fixed point of one more application.
	again := sets.SendToSuperSummit(sss)
	require.Equal(sss.CanonicalLength(), again.CanonicalLength())
}

func TestBuildSSSContainsSeed(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 2, 3})
	sss, err := sets.BuildSSS(b)
	require.NoError(err)
	require.True(sss.Len() > 0)
	require.True(sss.Member(sets.SendToSuperSummit(b)))
}

func TestBuildUSSOfCentralElementIsSingleOrbit(t *testing.T) {
	require := require.New(t)
	b := word(t, 3, []int{1, 2, 1, 2, 1, 2})
	uss, err := sets.BuildUSS(b)
	require.NoError(err)
	require.Equal(1, uss.Len())
	require.True(uss.Member(b))
}

func TestUSSTreePathReconstructsConjugator(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 2, 3})
	start, c := sets.SendToUSSWithConjugator(b)
	require.True(braid.Equal(braid.ConjugateBraid(b, c), start))

	uss, err := sets.BuildUSS(start)
	require.NoError(err)
	require.True(uss.Member(start))

	d := uss.TreePath(start)
	root := uss.Orbits[0].First()
	require.True(braid.Equal(braid.ConjugateBraid(root, d), start))
}

func TestBuildSCContainsSeed(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 2, 3})
	sc, err := sets.BuildSC(b)
	require.NoError(err)
	require.True(sc.Len() > 0)
	require.True(sc.Member(sets.SendToSC(b)))
}

func TestSendToSCWithConjugatorRoundtrips(t *testing.T) {
	require := require.New(t)
	b := word(t, 4, []int{1, 2, 1, 2, 3})
	target, c := sets.SendToSCWithConjugator(b)
	require.True(braid.Equal(braid.ConjugateBraid(b, c), target))
}

func TestDefaultOptionsMaxVerticesIsUnbounded(t *testing.T) {
	require := require.New(t)
	o := sets.DefaultOptions()
	require.Equal(0, o.MaxVertices)
}
