package family_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garside/garcide/families/artin"
	"github.com/go-garside/garcide/family"
)

func TestLeftDivides(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	atoms := fam.Atoms(4)
	prod, ok := atoms[0].Product(atoms[2])
	require.True(ok)
	require.True(family.LeftDivides(atoms[0], prod))
	require.False(family.LeftDivides(atoms[1], prod))
}

func TestRightMeetDualLeftMeet(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	delta := fam.Delta(4)
	atoms := fam.Atoms(4)
	rm := family.RightMeet(atoms[0], delta)
	require.True(rm.Equal(atoms[0]), "right meet with Δ should be identity-bounded by the smaller operand")
}

func TestLeftJoinWithDeltaIsDelta(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	delta := fam.Delta(4)
	atoms := fam.Atoms(4)
	j := family.LeftJoin(atoms[0], delta)
	require.True(j.Equal(delta))
}

func TestIsIdentityIsDeltaFreeFunctions(t *testing.T) {
	require := require.New(t)
	fam := artin.Family{}
	require.True(family.IsIdentity(fam.Identity(4)))
	require.True(family.IsDelta(fam.Delta(4)))
	require.False(family.IsIdentity(fam.Delta(4)))
}
