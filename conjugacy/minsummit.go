package conjugacy

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/family"
)

// MinSummit returns the smallest simple r ≥ f such that r⁻¹·b·r stays
// in b's summit set (canonical length preserved). Grounded on
// super_summit.hpp's min_summit: iterate r := r·r₂, then
// r₂ := remainder(w·r, τ^δ(r)) where w is b with its Δ-exponent
// forced to 0, until r₂ collapses to the identity.
func MinSummit[P any, F family.Factor[F]](b braid.Braid[P, F], f F) F {
	b = braid.ToLCF(b)
	fam, param := b.Family(), b.Param()
	r := fam.Identity(param)
	r2 := f
	w := braid.ShiftDelta(b, -b.Inf())

	for !r2.IsIdentity() {
		rb := braid.Multiply(braid.FromFactor(fam, param, r), braid.FromFactor(fam, param, r2))
		r = leadingFactor(rb)
		wr := braid.Multiply(w, braid.FromFactor(fam, param, r))
		r2 = braid.Remainder(wr, r.DeltaConjugate(b.Inf()))
	}
	return r
}

// MinSSS extends MinSummit to the super-summit level: while the RCF
// of r⁻¹·b·r has greater canonical length than b, right-extend r by
// that RCF's leading factor. Grounded on super_summit.hpp's
// min_super_summit(b, b_rcf, f), recomputing the conjugate's RCF on
// each iteration rather than threading a cached b_rcf through.
func MinSSS[P any, F family.Factor[F]](b braid.Braid[P, F], f F) F {
	b = braid.ToLCF(b)
	fam, param := b.Family(), b.Param()
	r := MinSummit(b, f)

	for {
		rcf := braid.ToRCF(braid.Conjugate(b, r))
		if rcf.CanonicalLength() <= b.CanonicalLength() {
			return r
		}
		rb := braid.Multiply(braid.FromFactor(fam, param, r), braid.FromFactor(fam, param, rcf.FirstFactor()))
		r = leadingFactor(rb)
	}
}
