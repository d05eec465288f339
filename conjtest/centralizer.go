package conjtest

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/family"
	"github.com/go-garside/garcide/minconj"
	"github.com/go-garside/garcide/sets"
)

// Centralizer computes a generating set for the centralizer of b:
// elements g with g·b = b·g. Grounded on braiding.cpp's Centralizer(B),
// via Centralizer(uss, mins, prev): build USS(b) with spanning-tree
// annotations, collect one "loop" conjugator per orbit (the full
// cycling-period conjugator, renormalised via the orbit's own tree
// path) plus one "min" conjugator per element of min_USS on each
// orbit's first element, then conjugate every generator back by the
// braid that sent b into its USS so they act on b itself.
func Centralizer[P any, F family.Factor[F]](b braid.Braid[P, F]) ([]braid.Braid[P, F], error) {
	fam, param := b.Family(), b.Param()
	b = braid.ToLCF(b)

	bt, c := sets.SendToUSSWithConjugator(b)

	cl := bt.CanonicalLength()
	if cl == 0 {
		atoms := fam.Atoms(param)
		var gens []braid.Braid[P, F]
		if bt.Sup()%2 == 0 {
			gens = append(gens, braid.FromFactor(fam, param, atoms[0]))
			full := braid.Identity(fam, param)
			for _, a := range atoms {
				full = braid.Multiply(full, braid.FromFactor(fam, param, a))
			}
			gens = append(gens, full)
		} else {
			min, err := minconj.MinSet(bt, minconj.USS)
			if err != nil {
				return nil, err
			}
			for _, f := range min {
				gens = append(gens, braid.FromFactor(fam, param, f))
			}
		}
		return conjugateBack(gens, c), nil
	}

	uss, err := sets.BuildUSS(bt)
	if err != nil {
		return nil, err
	}

	var cent []braid.Braid[P, F]
	for _, orbit := range uss.Orbits {
		d := uss.TreePath(orbit.First())

		loop := d
		for _, x := range orbit.Trajectory {
			lf := x.FirstFactor().DeltaConjugate(x.Inf())
			loop = braid.Multiply(loop, braid.FromFactor(fam, param, lf))
		}
		loop = braid.ToLCF(braid.Multiply(loop, braid.Inverse(d)))
		cent = appendIfNew(cent, loop)

		min, err := minconj.MinSet(orbit.First(), minconj.USS)
		if err != nil {
			return nil, err
		}
		for _, f := range min {
			target := braid.ToLCF(braid.Conjugate(orbit.First(), f))
			e := uss.TreePath(target)
			g := braid.ToLCF(braid.Multiply(braid.Multiply(d, braid.FromFactor(fam, param, f)), braid.Inverse(e)))
			if !g.IsIdentity() {
				cent = appendIfNew(cent, g)
			}
		}
	}

	return conjugateBack(cent, c), nil
}

func conjugateBack[P any, F family.Factor[F]](gens []braid.Braid[P, F], c braid.Braid[P, F]) []braid.Braid[P, F] {
	out := make([]braid.Braid[P, F], len(gens))
	for i, g := range gens {
		out[i] = braid.ToLCF(braid.Multiply(braid.Multiply(c, g), braid.Inverse(c)))
	}
	return out
}

func appendIfNew[P any, F family.Factor[F]](gens []braid.Braid[P, F], g braid.Braid[P, F]) []braid.Braid[P, F] {
	for _, existing := range gens {
		if braid.Equal(existing, g) {
			return gens
		}
	}
	return append(gens, g)
}
