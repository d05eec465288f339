package conjugacy

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/family"
)

// leadingFactor reads off x's leading simple factor, treating the two
// degenerate canonical-length-0 cases (x = identity, x = Δ) specially
// since they have no entry in the factor slice. Grounded on the
// repeated "if CL>0 … else if delta==1 … else identity" pattern in
// braiding.cpp's Transport/Pullback/Returns family.
func leadingFactor[P any, F family.Factor[F]](x braid.Braid[P, F]) F {
	x = braid.ToLCF(x)
	if x.CanonicalLength() > 0 {
		return x.FirstFactor()
	}
	if x.Inf() == 1 {
		return x.Family().Delta(x.Param())
	}
	return x.Family().Identity(x.Param())
}

func indexOfFactor[F family.Factor[F]](xs []F, f F) int {
	for i, x := range xs {
		if x.Equal(f) {
			return i
		}
	}
	return -1
}

// Cycle returns c(b): the factor sequence rotated one step left and
// renormalised, equivalent to conjugating b by initial(b) = τ^(-δ)(f₁).
//
// This appends τ^(-δ)(f₁), not τ^δ(f₁): conjugating Δ^δ·f₁·rest by
// g = τ^(-δ)(f₁) gives Δ^δ·rest·τ^(-δ)(f₁) by the identity
// x·Δ^δ = Δ^δ·τ^δ(x), which is what Cycling.cpp's Flip(-δ) computes —
// the opposite sign from this spec's prose, re-derived per its own
// note on ambiguous τ conventions.
func Cycle[P any, F family.Factor[F]](b braid.Braid[P, F]) braid.Braid[P, F] {
	b = braid.ToLCF(b)
	if b.CanonicalLength() == 0 {
		return b
	}
	factors := b.Factors()
	f1 := factors[0]
	newFactors := append(append([]F{}, factors[1:]...), f1.DeltaConjugate(-b.Inf()))
	return braid.FromFactors(b.Family(), b.Param(), b.Inf(), newFactors)
}

// Decycle returns d(b): the final factor moved to the front (after
// τ^δ-conjugation) and renormalised.
func Decycle[P any, F family.Factor[F]](b braid.Braid[P, F]) braid.Braid[P, F] {
	b = braid.ToLCF(b)
	if b.CanonicalLength() == 0 {
		return b
	}
	factors := b.Factors()
	last := factors[len(factors)-1]
	newFactors := append([]F{last.DeltaConjugate(b.Inf())}, factors[:len(factors)-1]...)
	return braid.FromFactors(b.Family(), b.Param(), b.Inf(), newFactors)
}

// PreferredPrefix returns p(b) = left_meet(initial(b), final(b).LeftComplement()),
// where final(b).LeftComplement() is the c with final(b)·c = Δ; the
// identity when canonical length is 0.
func PreferredPrefix[P any, F family.Factor[F]](b braid.Braid[P, F]) F {
	if b.CanonicalLength() == 0 {
		return b.Family().Identity(b.Param())
	}
	initial := b.FirstFactor().DeltaConjugate(-b.Inf())
	return initial.LeftMeet(b.FinalFactor().LeftComplement())
}

// PreferredSuffix returns the dual of PreferredPrefix, computed via the
// braid-level reversal anti-automorphism and the factor-level one that
// undoes it.
func PreferredSuffix[P any, F family.Factor[F]](b braid.Braid[P, F]) F {
	return PreferredPrefix(braid.Reverse(b)).Reverse()
}

// Slide returns s(b): conjugation by the preferred prefix p, realised
// as replacing f₁ with the quotient of τ^δ(p) into f₁ (valid because
// p ≤ initial(b) implies τ^δ(p) ≤ f₁) and appending p, renormalised.
func Slide[P any, F family.Factor[F]](b braid.Braid[P, F]) braid.Braid[P, F] {
	b = braid.ToLCF(b)
	if b.CanonicalLength() == 0 {
		return b
	}
	p := PreferredPrefix(b)
	factors := b.Factors()
	tp := p.DeltaConjugate(b.Inf())
	newFirst := tp.LeftQuotient(factors[0])
	newFactors := append([]F{newFirst}, factors[1:]...)
	newFactors = append(newFactors, p)
	return braid.FromFactors(b.Family(), b.Param(), b.Inf(), newFactors)
}

// CyclingTrajectory returns [b, Cycle(b), Cycle²(b), …] up to but
// excluding the first repeated element.
func CyclingTrajectory[P any, F family.Factor[F]](b braid.Braid[P, F]) []braid.Braid[P, F] {
	var t []braid.Braid[P, F]
	x := b
	for !containsBraid(t, x) {
		t = append(t, x)
		x = Cycle(x)
	}
	return t
}

// SlidingTrajectory is CyclingTrajectory's analogue under Slide.
func SlidingTrajectory[P any, F family.Factor[F]](b braid.Braid[P, F]) []braid.Braid[P, F] {
	var t []braid.Braid[P, F]
	x := b
	for !containsBraid(t, x) {
		t = append(t, x)
		x = Slide(x)
	}
	return t
}

func containsBraid[P any, F family.Factor[F]](xs []braid.Braid[P, F], x braid.Braid[P, F]) bool {
	for _, y := range xs {
		if braid.Equal(x, y) {
			return true
		}
	}
	return false
}
