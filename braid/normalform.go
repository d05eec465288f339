package braid

import "github.com/go-garside/garcide/family"

// FromWord builds the LCF of the group element represented by word, a
// sequence of signed 1-based atom indices (positive i denotes atom i,
// negative -i denotes its inverse), per the braid word lexicon of
// spec §6.
func FromWord[P any, F family.Factor[F]](fam family.Family[P, F], param P, word []int) (Braid[P, F], error) {
	atoms := fam.Atoms(param)
	b := Identity(fam, param)
	for _, g := range word {
		idx := g
		if idx < 0 {
			idx = -idx
		}
		idx--
		if idx < 0 || idx >= len(atoms) {
			return Braid[P, F]{}, ErrInvalidGenerator
		}
		atom := atoms[idx]
		if g > 0 {
			b = appendPositiveFactor(b, atom)
		} else {
			b = appendNegativeFactor(b, atom)
		}
	}
	return b, nil
}

// appendPositiveFactor appends a single nonnegative simple factor g to
// b (assumed LCF) and re-weights in place per spec §4.3: walk left
// from the newly inserted position, replacing consecutive (fᵢ, fᵢ₊₁)
// with (fᵢ·s, s⁻¹·fᵢ₊₁) where s = fᵢ.LeftComplement() ∧ fᵢ₊₁ (the
// largest s ≤ fᵢ₊₁ with fᵢ·s ≤ Δ), until left-weighting stabilises.
func appendPositiveFactor[P any, F family.Factor[F]](b Braid[P, F], g F) Braid[P, F] {
	if g.IsIdentity() {
		return b
	}
	if g.IsDelta() {
		// S·Δ = Δ·τ(S): pushing Δ onto the tail promotes it to the
		// exponent and τ-conjugates every existing factor.
		factors := make([]F, len(b.factors))
		for i, f := range b.factors {
			factors[i] = f.DeltaConjugate(1)
		}
		return Braid[P, F]{fam: b.fam, param: b.param, delta: b.delta + 1, factors: factors, form: LCF}
	}

	factors := append(b.Factors(), g)
	for i := len(factors) - 1; i > 0; i-- {
		left, right := factors[i-1], factors[i]
		s := left.LeftComplement().LeftMeet(right)
		if s.IsIdentity() {
			break
		}
		newLeft, ok := left.Product(s)
		if !ok {
			// s ≤ left.LeftComplement() guarantees left·s ≤ Δ; this
			// branch signals a family implementation bug, not a
			// reachable algebraic state.
			break
		}
		newRight := s.LeftQuotient(right)
		factors[i-1] = newLeft
		if newRight.IsIdentity() {
			factors = append(factors[:i], factors[i+1:]...)
		} else {
			factors[i] = newRight
		}
	}

	delta := b.delta
	if len(factors) > 0 && factors[0].IsDelta() {
		delta++
		factors = factors[1:]
	}
	return Braid[P, F]{fam: b.fam, param: b.param, delta: delta, factors: factors, form: LCF}
}

// appendNegativeFactor appends the inverse of atom a to b (assumed
// LCF): a⁻¹ = Δ⁻¹·(Δ/a), so S·a⁻¹ = Δ^(-1)·τ(S)·(Δ/a). Re-derived
// from the complement identity rather than copied from any one
// source's τ convention, per spec §9's guidance for this kind of
// ambiguity.
func appendNegativeFactor[P any, F family.Factor[F]](b Braid[P, F], a F) Braid[P, F] {
	target := a.RightComplement()
	acc := Braid[P, F]{fam: b.fam, param: b.param, delta: b.delta - 1, form: LCF}
	for _, f := range b.factors {
		acc = appendPositiveFactor(acc, f.DeltaConjugate(1))
	}
	return appendPositiveFactor(acc, target)
}

// appendPositiveFactorRCF is the mirror of appendPositiveFactor used
// only by LCFToRCF: it prepends g to an RCF accumulator and
// re-weights walking right, dualizing every left/right role.
func appendPositiveFactorRCF[P any, F family.Factor[F]](b Braid[P, F], g F) Braid[P, F] {
	if g.IsIdentity() {
		return b
	}
	if g.IsDelta() {
		return Braid[P, F]{fam: b.fam, param: b.param, delta: b.delta + 1, factors: b.Factors(), form: RCF}
	}

	factors := append([]F{g}, b.Factors()...)
	for i := 0; i < len(factors)-1; i++ {
		left, right := factors[i], factors[i+1]
		s := family.RightMeet(left, right.RightComplement())
		if s.IsIdentity() {
			break
		}
		newLeft := s.RightQuotient(left)
		newRight, ok := s.Product(right)
		if !ok {
			break
		}
		if newLeft.IsIdentity() {
			factors = append(factors[:i], factors[i+1:]...)
			i--
			continue
		}
		factors[i] = newLeft
		factors[i+1] = newRight
	}

	delta := b.delta
	if n := len(factors); n > 0 && factors[n-1].IsDelta() {
		delta++
		factors = factors[:n-1]
	}
	return Braid[P, F]{fam: b.fam, param: b.param, delta: delta, factors: factors, form: RCF}
}
