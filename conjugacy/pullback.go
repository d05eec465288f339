package conjugacy

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/family"
)

// PullbackCycling computes the cycling pullback of f at b: a factor
// whose image under one cycling-transport step is f. Grounded on
// braiding.cpp's Pullback(B, F):
//
//	b0 is the leading factor of (τ^(δ+1)(first(b))·τ(f)) after padding
//	it up to the next Δ and dropping one unit of that padding — the
//	simple "carry" contributed by promoting first(b) past Δ;
//	bi folds the remainder operation across b's remaining factors,
//	starting from τ^δ(f);
//	the result is MinSSS(b, b0 ∨ bi), the smallest simple extension of
//	their join that keeps the conjugate in the super summit set.
func PullbackCycling[P any, F family.Factor[F]](b braid.Braid[P, F], f F) F {
	b = braid.ToLCF(b)
	fam, param := b.Family(), b.Param()

	f1 := b.FirstFactor().DeltaConjugate(b.Inf() + 1)
	f2 := f.DeltaConjugate(1)
	prod := braid.Multiply(braid.FromFactor(fam, param, f1), braid.FromFactor(fam, param, f2))
	delta := fam.Delta(param)
	rem := braid.Remainder(prod, delta)
	prod = braid.Multiply(prod, braid.FromFactor(fam, param, rem))
	prod = braid.ShiftDelta(prod, -1)
	b0 := leadingFactor(prod)

	bi := f.DeltaConjugate(b.Inf())
	rest := b.Factors()
	if len(rest) > 1 {
		sub := braid.FromFactors(fam, param, 0, rest[1:])
		bi = braid.Remainder(sub, bi)
	}

	joined := family.LeftJoin(b0, bi)
	return MinSSS(b, joined)
}

// MainPullbackCycling iterates PullbackCycling backwards around b's
// full cycling trajectory, starting from f, until the sequence of
// results repeats, and returns the first element of that repeating
// cycle. Grounded on braiding.cpp's MainPullback, with its elaborate
// index-walking tail (which only ever recovers a specific element of
// the already-detected cycle) replaced by directly indexing into it.
func MainPullbackCycling[P any, F family.Factor[F]](b braid.Braid[P, F], f F) F {
	trajectory := CyclingTrajectory(b)
	var ret []F
	cur := f
	for {
		ret = append(ret, cur)
		for i := len(trajectory) - 1; i >= 0; i-- {
			cur = PullbackCycling(trajectory[i], cur)
		}
		if idx := indexOfFactor(ret, cur); idx >= 0 {
			return ret[idx]
		}
	}
}

// PullbackSliding computes the sliding pullback of f at b: grounded on
// braiding.cpp's Pullback_Sliding.
//
//	p(b)·f is met, on the right, against the preferred suffix of
//	f⁻¹·s(b)·f; the result is the leading factor of (p(b)·f) divided
//	by that right meet.
func PullbackSliding[P any, F family.Factor[F]](b braid.Braid[P, F], f F) F {
	b = braid.ToLCF(b)
	fam, param := b.Family(), b.Param()

	p := PreferredPrefix(b)
	pf := braid.Multiply(braid.FromFactor(fam, param, p), braid.FromFactor(fam, param, f))
	conj := braid.Conjugate(Slide(b), f)
	suffix := PreferredSuffix(conj)

	meet := braid.RightMeet(pf, braid.FromFactor(fam, param, suffix))
	quotient := braid.Multiply(pf, braid.Inverse(meet))
	return leadingFactor(quotient)
}

// MainPullbackSliding is MainPullbackCycling's analogue under sliding.
// Δ is a fixed point of the sliding pullback map, so it is returned
// immediately without walking the trajectory.
func MainPullbackSliding[P any, F family.Factor[F]](b braid.Braid[P, F], f F) F {
	if f.IsDelta() {
		return f
	}
	trajectory := SlidingTrajectory(b)
	var ret []F
	cur := f
	for {
		ret = append(ret, cur)
		for i := len(trajectory) - 1; i >= 0; i-- {
			cur = PullbackSliding(trajectory[i], cur)
		}
		if idx := indexOfFactor(ret, cur); idx >= 0 {
			return ret[idx]
		}
	}
}
