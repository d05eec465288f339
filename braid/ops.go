package braid

import "github.com/go-garside/garcide/family"

// FromFactor wraps one factor as a length-≤1 braid in LCF, handling the
// two degenerate cases (identity, Δ) that fall outside the factor slice.
func FromFactor[P any, F family.Factor[F]](fam family.Family[P, F], param P, f F) Braid[P, F] {
	switch {
	case f.IsIdentity():
		return Identity(fam, param)
	case f.IsDelta():
		return FromDelta(fam, param, 1)
	default:
		return Braid[P, F]{fam: fam, param: param, factors: []F{f}, form: LCF}
	}
}

// appendDeltaPower extends b (LCF) on the right by Δ^k, one unit at a
// time: positive units promote through appendPositiveFactor; negative
// units use Δ^δ·S·Δ⁻¹ = Δ^(δ-1)·τ(S), the mirror identity.
func appendDeltaPower[P any, F family.Factor[F]](b Braid[P, F], k int) Braid[P, F] {
	if k > 0 {
		d := b.fam.Delta(b.param)
		for ; k > 0; k-- {
			b = appendPositiveFactor(b, d)
		}
		return b
	}
	for ; k < 0; k++ {
		factors := make([]F, len(b.factors))
		for i, f := range b.factors {
			factors[i] = f.DeltaConjugate(1)
		}
		b = Braid[P, F]{fam: b.fam, param: b.param, delta: b.delta - 1, factors: factors, form: LCF}
	}
	return b
}

// ToLCF returns b in left canonical form, converting from RCF if needed.
func ToLCF[P any, F family.Factor[F]](b Braid[P, F]) Braid[P, F] {
	if b.form == LCF {
		return b
	}
	acc := Braid[P, F]{fam: b.fam, param: b.param, delta: b.delta, form: LCF}
	for _, f := range b.factors {
		acc = appendPositiveFactor(acc, f)
	}
	return acc
}

// ToRCF returns b in right canonical form, converting from LCF if needed.
func ToRCF[P any, F family.Factor[F]](b Braid[P, F]) Braid[P, F] {
	if b.form == RCF {
		return b
	}
	acc := Braid[P, F]{fam: b.fam, param: b.param, delta: b.delta, form: RCF}
	for i := len(b.factors) - 1; i >= 0; i-- {
		acc = appendPositiveFactorRCF(acc, b.factors[i])
	}
	return acc
}

// Multiply returns a·b, in LCF.
func Multiply[P any, F family.Factor[F]](a, b Braid[P, F]) Braid[P, F] {
	a = ToLCF(a)
	b = ToLCF(b)
	acc := a
	acc = appendDeltaPower(acc, b.delta)
	for _, f := range b.factors {
		acc = appendPositiveFactor(acc, f)
	}
	return acc
}

// Inverse returns b⁻¹, in LCF: (Δ^δ·f₁…fᵣ)⁻¹ = fᵣ⁻¹…f₁⁻¹·Δ^(-δ), each
// fᵢ⁻¹ appended via the same complement identity as appendNegativeFactor.
func Inverse[P any, F family.Factor[F]](b Braid[P, F]) Braid[P, F] {
	b = ToLCF(b)
	acc := Identity(b.fam, b.param)
	for i := len(b.factors) - 1; i >= 0; i-- {
		acc = appendNegativeFactor(acc, b.factors[i])
	}
	return appendDeltaPower(acc, -b.delta)
}

// Reverse returns b's image under the anti-automorphism induced by
// reading its defining word back to front: the factor sequence reverses
// order, each factor is replaced by its own reverse conjugated by τ^δ,
// and the result is renormalised to LCF.
func Reverse[P any, F family.Factor[F]](b Braid[P, F]) Braid[P, F] {
	b = ToLCF(b)
	n := len(b.factors)
	factors := make([]F, n)
	for i, f := range b.factors {
		factors[n-1-i] = f.Reverse().DeltaConjugate(b.delta)
	}
	return FromFactors(b.fam, b.param, b.delta, factors)
}

// factorRemainder returns the simple s with f·s = f∨g, for simple f, g:
// since f∨g ≤ Δ, f divides it, and s is the quotient.
func factorRemainder[F family.Factor[F]](f, g F) F {
	return f.LeftQuotient(family.LeftJoin(f, g))
}

// Remainder returns the simple s such that c·s = c∨g for a braid c in
// LCF and a single simple factor g: when c's Δ-exponent is nonzero,
// g ≤ Δ ≤ c already, so s is the identity; otherwise s is obtained by
// folding factorRemainder across c's factors left to right, grounded on
// braiding.cpp's Remainder(B, F).
func Remainder[P any, F family.Factor[F]](c Braid[P, F], g F) F {
	c = ToLCF(c)
	if c.delta != 0 {
		return c.fam.Identity(c.param)
	}
	acc := g
	for _, f := range c.factors {
		acc = factorRemainder(f, acc)
	}
	return acc
}

// LeftMeet returns the left gcd of a and b: the greatest c with c ≤ a
// and c ≤ b under left-divisibility. Per spec §4.3: normalise Δ-shifts
// to a common base, then repeatedly extract the front factor of each
// operand (Δ itself while its exponent is still positive), take their
// factor-level meet, extend the accumulator, strip that meet from both
// operands and renormalise them to LCF, until either is exhausted or
// the meet is the identity.
func LeftMeet[P any, F family.Factor[F]](a, b Braid[P, F]) Braid[P, F] {
	a = ToLCF(a)
	b = ToLCF(b)
	d := a.delta
	if b.delta < d {
		d = b.delta
	}
	qa := deltaQueue(a, d)
	qb := deltaQueue(b, d)
	acc := Braid[P, F]{fam: a.fam, param: a.param, delta: d, form: LCF}
	for len(qa) > 0 && len(qb) > 0 {
		f := qa[0].LeftMeet(qb[0])
		if f.IsIdentity() {
			break
		}
		acc = appendPositiveFactor(acc, f)
		qa = deltaQueue(FromFactors(a.fam, a.param, 0, stripFront(qa, f)), 0)
		qb = deltaQueue(FromFactors(a.fam, a.param, 0, stripFront(qb, f)), 0)
	}
	return acc
}

// deltaQueue expands b's factor sequence into an explicit queue with
// b.delta-d leading virtual copies of Δ, so LeftMeet can compare two
// operands at a common Δ-shift factor by factor.
func deltaQueue[P any, F family.Factor[F]](b Braid[P, F], d int) []F {
	extra := b.delta - d
	out := make([]F, 0, extra+len(b.factors))
	delta := b.fam.Delta(b.param)
	for i := 0; i < extra; i++ {
		out = append(out, delta)
	}
	out = append(out, b.factors...)
	return out
}

// stripFront removes f from the front of queue q, assuming f left-divides
// q[0]: either q[0] exactly equals f (drop it) or the quotient replaces it.
func stripFront[F family.Factor[F]](q []F, f F) []F {
	front := q[0]
	if front.Equal(f) {
		return q[1:]
	}
	q[0] = f.LeftQuotient(front)
	return q
}

// LeftJoin returns the left lcm of a and b: the smallest c with a ≤ c
// and b ≤ c. Grounded on braiding.cpp's LeftWedge(B1, B2): normalise
// Δ-shifts to a common base, then repeatedly peel the front factor off
// the operand being absorbed, extend the accumulator by the remainder
// it contributes, and strip that factor from both the absorbed operand
// and the tracking copy used to compute the next remainder.
func LeftJoin[P any, F family.Factor[F]](a, b Braid[P, F]) Braid[P, F] {
	a = ToLCF(a)
	b = ToLCF(b)
	d := a.delta
	if b.delta < d {
		d = b.delta
	}
	shift := d
	a1 := Braid[P, F]{fam: a.fam, param: a.param, delta: a.delta - d, factors: a.Factors(), form: LCF}
	b1 := Braid[P, F]{fam: b.fam, param: b.param, delta: b.delta - d, factors: b.Factors(), form: LCF}

	acc := a1
	track := a1
	rem := b1
	for !rem.IsIdentity() {
		var f2 F
		if rem.delta > 0 {
			f2 = rem.fam.Delta(rem.param)
		} else {
			f2 = rem.FirstFactor()
		}
		f := Remainder(track, f2)
		acc = Multiply(acc, FromFactor(acc.fam, acc.param, f))
		track = Multiply(track, FromFactor(track.fam, track.param, f))
		f2Inv := Inverse(FromFactor(rem.fam, rem.param, f2))
		track = Multiply(f2Inv, track)
		rem = Multiply(f2Inv, rem)
	}
	acc.delta += shift
	return acc
}

// FromFactors renormalises an arbitrary (not necessarily left-weighted)
// sequence of simple factors at Δ-exponent delta into LCF, by folding
// appendPositiveFactor across it. Used by the conjugation operators to
// rebuild a canonical form after rearranging a factor sequence.
func FromFactors[P any, F family.Factor[F]](fam family.Family[P, F], param P, delta int, factors []F) Braid[P, F] {
	acc := Braid[P, F]{fam: fam, param: param, delta: delta, form: LCF}
	for _, f := range factors {
		acc = appendPositiveFactor(acc, f)
	}
	return acc
}

// ShiftDelta returns b with its Δ-exponent shifted by k and its factor
// sequence unchanged: shifting both ends of Δ^δ·f₁…fᵣ uniformly cannot
// affect the left-weighting between adjacent fᵢ, so the result is LCF
// whenever b was.
func ShiftDelta[P any, F family.Factor[F]](b Braid[P, F], k int) Braid[P, F] {
	b = ToLCF(b)
	return Braid[P, F]{fam: b.fam, param: b.param, delta: b.delta + k, factors: b.Factors(), form: LCF}
}

// RightMeet returns the right gcd of a and b, derived from LeftMeet via
// the reversal anti-automorphism, mirroring family.RightMeet.
func RightMeet[P any, F family.Factor[F]](a, b Braid[P, F]) Braid[P, F] {
	return Reverse(LeftMeet(Reverse(a), Reverse(b)))
}

// Conjugate returns f⁻¹·b·f, in LCF.
func Conjugate[P any, F family.Factor[F]](b Braid[P, F], f F) Braid[P, F] {
	fam, param := b.fam, b.param
	fb := FromFactor(fam, param, f)
	return Multiply(Multiply(Inverse(fb), b), fb)
}

// ConjugateBraid returns c⁻¹·b·c, in LCF.
func ConjugateBraid[P any, F family.Factor[F]](b, c Braid[P, F]) Braid[P, F] {
	return Multiply(Multiply(Inverse(c), b), c)
}

// Equal reports whether a and b denote the same group element, by
// comparing their LCF representations factor by factor.
func Equal[P any, F family.Factor[F]](a, b Braid[P, F]) bool {
	a = ToLCF(a)
	b = ToLCF(b)
	if a.delta != b.delta || len(a.factors) != len(b.factors) {
		return false
	}
	for i, f := range a.factors {
		if !f.Equal(b.factors[i]) {
			return false
		}
	}
	return true
}
