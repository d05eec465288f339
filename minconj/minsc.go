package minconj

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/conjugacy"
	"github.com/go-garside/garcide/family"
)

// MinSC is MinUSS's analogue at the sliding-circuit level, grounded on
// braiding.cpp's MinSC. It shares MinUSS's two-phase shape but walks
// the sliding trajectory's returns instead of the cycling trajectory's.
// Unlike MinUSS, exhaustion is not treated as an invariant violation:
// the source falls back to Δ, which is always a valid (if coarse)
// conjugator, so this returns a value instead of an error.
func MinSC[P any, F family.Factor[F]](b braid.Braid[P, F], f F) F {
	b = braid.ToLCF(b)

	f2 := conjugacy.MinSSS(b, f)
	for _, r := range conjugacy.ReturnsSliding(b, f2) {
		if f.LeftMeet(r).Equal(f) {
			return r
		}
	}

	f2 = conjugacy.MainPullbackSliding(b, f)
	for _, r := range conjugacy.ReturnsSliding(b, f2) {
		if f.LeftMeet(r).Equal(f) {
			return r
		}
	}

	return b.Family().Delta(b.Param())
}
