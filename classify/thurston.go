package classify

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/family"
	"github.com/go-garside/garcide/sets"
)

func strandCount[P any, F family.Factor[F]](fam family.Family[P, F], param P) (int, bool) {
	atoms := fam.Atoms(param)
	if len(atoms) == 0 {
		return 0, false
	}
	pf, ok := any(atoms[0]).(PermFactor)
	if !ok {
		return 0, false
	}
	return len(pf.Permutation()), true
}

// ThurstonType classifies b's mapping-class-group action as periodic,
// reducible, or pseudo-Anosov. Grounded on braiding.cpp's
// ThurstonType(B): first rule out periodicity by checking whether some
// power b, b², … up to the strand count has canonical length 0 (a
// periodic braid is, up to a root of Δ, a power of Δ itself); failing
// that, build the ultra summit set and run the circle-preservation test
// on every orbit's representative. Reducible if any orbit preserves a
// round curve, pseudo-Anosov otherwise. When orbits disagree — one
// preserves a curve, another doesn't — a single braid cannot be both,
// so disagreement signals a bug upstream rather than a real conjecture
// gap; it is still surfaced rather than silently resolved, since this
// classifier depends on the unproven-in-general correctness of the
// circle test reported in the source material.
func ThurstonType[P any, F family.Factor[F]](b braid.Braid[P, F]) (Type, bool, error) {
	fam, param := b.Family(), b.Param()
	n, ok := strandCount(fam, param)
	if !ok {
		return Unknown, false, ErrNoPermutation
	}

	b = braid.ToLCF(b)
	pot := b
	for i := 1; i <= n; i++ {
		if pot.CanonicalLength() == 0 {
			return Periodic, false, nil
		}
		pot = braid.ToLCF(braid.Multiply(pot, b))
	}

	uss, err := sets.BuildUSS(b)
	if err != nil {
		return Unknown, false, err
	}

	sawReducible, sawPseudoAnosov := false, false
	for _, orbit := range uss.Orbits {
		rep := orbit.First()
		if rep.CanonicalLength() == 0 {
			continue
		}
		perms, err := permutationsOf(rep)
		if err != nil {
			return Unknown, false, err
		}
		if hasRoundReducingCurve(perms, n) {
			sawReducible = true
		} else {
			sawPseudoAnosov = true
		}
	}

	warning := sawReducible && sawPseudoAnosov
	if sawReducible {
		return Reducible, warning, nil
	}
	return PseudoAnosov, warning, nil
}
