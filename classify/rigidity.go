package classify

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/family"
	"github.com/go-garside/garcide/sets"
)

// Rigidity returns the length of the longest common LCF prefix between
// b and b·τ^δ(f₁), where f₁ is b's leading factor and δ its Δ-exponent.
// A rigid braid (Rigidity == CanonicalLength) cycles and decycles to
// itself up to this leading-factor rotation; shorter values measure how
// far b is from that. Grounded on braiding.cpp's Rigidity(B).
func Rigidity[P any, F family.Factor[F]](b braid.Braid[P, F]) int {
	fam, param := b.Family(), b.Param()
	b = braid.ToLCF(b)
	if b.CanonicalLength() == 0 {
		return 0
	}

	lf := b.FirstFactor().DeltaConjugate(b.Inf())
	b2 := braid.ToLCF(braid.Multiply(b, braid.FromFactor(fam, param, lf)))

	f1, f2 := b.Factors(), b2.Factors()
	n := len(f1)
	if len(f2) < n {
		n = len(f2)
	}
	r := 0
	for r < n && f1[r].Equal(f2[r]) {
		r++
	}
	return r
}

// RigidityUSS reports the maximum Rigidity over every ultra summit
// orbit's representative, plus a disagreement flag when orbits don't
// all agree — a rigidity-bearing conjugate exists but not every
// conjugate exhibits it. Grounded on braiding.cpp's Rigidity(uss).
func RigidityUSS[P any, F family.Factor[F]](b braid.Braid[P, F]) (int, bool, error) {
	b = braid.ToLCF(b)
	uss, err := sets.BuildUSS(b)
	if err != nil {
		return 0, false, err
	}

	max := -1
	disagree := false
	for _, orbit := range uss.Orbits {
		r := Rigidity(orbit.First())
		switch {
		case max == -1:
			max = r
		case r != max:
			disagree = true
			if r > max {
				max = r
			}
		}
	}
	if max < 0 {
		max = 0
	}
	return max, disagree, nil
}
