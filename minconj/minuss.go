package minconj

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/conjugacy"
	"github.com/go-garside/garcide/family"
)

// MinUSS returns the smallest simple r ≥ f such that conjugating b by r
// keeps it in its ultra summit set. Grounded on braiding.cpp's MinUSS,
// a two-phase search: first try the super-summit-level minimal
// conjugator and test it against every return of the cycling
// trajectory; if none qualifies, fall back to the main pullback and
// retest. Acceptance is f.LeftMeet(r) == f, i.e. r is actually an
// extension of f rather than something merely above it.
func MinUSS[P any, F family.Factor[F]](b braid.Braid[P, F], f F) (F, error) {
	b = braid.ToLCF(b)

	f2 := conjugacy.MinSSS(b, f)
	for _, r := range conjugacy.ReturnsCycling(b, f2) {
		if f.LeftMeet(r).Equal(f) {
			return r, nil
		}
	}

	f2 = conjugacy.MainPullbackCycling(b, f)
	for _, r := range conjugacy.ReturnsCycling(b, f2) {
		if f.LeftMeet(r).Equal(f) {
			return r, nil
		}
	}

	return b.Family().Identity(b.Param()), ErrInvariantViolation
}
