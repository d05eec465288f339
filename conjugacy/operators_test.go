package conjugacy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/conjugacy"
	"github.com/go-garside/garcide/families/artin"
)

func mustWord(t *testing.T, n int, word []int) braid.Braid[int, artin.Factor] {
	t.Helper()
	b, err := braid.FromWord[int, artin.Factor](artin.Family{}, n, word)
	require.NoError(t, err)
	return b
}

func TestCycleConjugatesByInitialFactor(t *testing.T) {
	require := require.New(t)
	b := mustWord(t, 4, []int{1, 2, 3, 1, 2})
	c := conjugacy.Cycle(b)

	initial := b.FirstFactor().DeltaConjugate(-b.Inf())
	expect := braid.Conjugate(b, initial)
	require.True(braid.Equal(c, expect))
}

func TestDecycleOfIdentityIsIdentity(t *testing.T) {
	require := require.New(t)
	id := braid.Identity[int, artin.Factor](artin.Family{}, 4)
	require.True(conjugacy.Decycle(id).IsIdentity())
}

func TestCyclingTrajectoryLoopsBackToAMember(t *testing.T) {
	require := require.New(t)
	b := mustWord(t, 4, []int{1, 2, 3, 1, 2, 1})
	traj := conjugacy.CyclingTrajectory(b)
	require.NotEmpty(traj)

	next := conjugacy.Cycle(traj[len(traj)-1])
	found := false
	for _, x := range traj {
		if braid.Equal(x, next) {
			found = true
			break
		}
	}
	require.True(found, "cycling trajectory must close into a loop")
}

func TestPreferredPrefixDividesInitialFactor(t *testing.T) {
	require := require.New(t)
	b := mustWord(t, 4, []int{1, 2, 3})
	p := conjugacy.PreferredPrefix(b)
	initial := b.FirstFactor().DeltaConjugate(-b.Inf())
	require.True(p.LeftMeet(initial).Equal(p), "preferred prefix must left-divide initial(b)")
}

func TestSlideConjugatesAndPreservesCanonicalLength(t *testing.T) {
	require := require.New(t)
	b := mustWord(t, 4, []int{1, 2, 3, 1, 2})
	s := conjugacy.Slide(b)
	p := conjugacy.PreferredPrefix(b)
	expect := braid.Conjugate(b, p)
	require.True(braid.Equal(s, expect))
	require.Equal(b.CanonicalLength(), s.CanonicalLength())
}

func TestSlidingTrajectoryLoopsBackToAMember(t *testing.T) {
	require := require.New(t)
	b := mustWord(t, 4, []int{1, 2, 3, 1, 2, 1})
	traj := conjugacy.SlidingTrajectory(b)
	require.NotEmpty(traj)

	next := conjugacy.Slide(traj[len(traj)-1])
	found := false
	for _, x := range traj {
		if braid.Equal(x, next) {
			found = true
			break
		}
	}
	require.True(found, "sliding trajectory must close into a loop")
}
