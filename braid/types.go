package braid

import (
	"errors"

	"github.com/go-garside/garcide/family"
)

// Sentinel errors for braid construction and queries.
var (
	// ErrInvalidGenerator indicates a word token referencing a
	// nonexistent atom (out of range or zero).
	ErrInvalidGenerator = errors.New("braid: invalid generator token")

	// ErrFamilyMismatch indicates an operation combined two braids
	// built over different family parameters.
	ErrFamilyMismatch = errors.New("braid: family parameter mismatch")
)

// Form names which canonical form a Braid's factor sequence satisfies.
type Form int

const (
	// LCF is left canonical form: every adjacent pair (fᵢ, fᵢ₊₁)
	// satisfies fᵢ.LeftComplement() ∧ fᵢ₊₁ = identity (left-weighted:
	// no atom of fᵢ₊₁ can move into fᵢ).
	LCF Form = iota
	// RCF is right canonical form, the symmetric right-weighted form.
	RCF
)

func (f Form) String() string {
	if f == RCF {
		return "RCF"
	}
	return "LCF"
}

// Braid is a Garside group element Δ^δ · f₁ … fᵣ over family F with
// parameter P: a signed Δ-exponent, an ordered sequence of nontrivial
// simple factors (each ≠ identity and ≠ Δ), and the canonical form the
// sequence currently satisfies.
type Braid[P any, F family.Factor[F]] struct {
	fam     family.Family[P, F]
	param   P
	delta   int
	factors []F
	form    Form
}

// Identity returns the identity element Δ⁰ for the given family and
// parameter, in LCF.
func Identity[P any, F family.Factor[F]](fam family.Family[P, F], param P) Braid[P, F] {
	return Braid[P, F]{fam: fam, param: param, form: LCF}
}

// FromDelta returns Δ^k for the given family and parameter, in LCF.
func FromDelta[P any, F family.Factor[F]](fam family.Family[P, F], param P, k int) Braid[P, F] {
	return Braid[P, F]{fam: fam, param: param, delta: k, form: LCF}
}

// Family returns the Garside family this braid was built over.
func (b Braid[P, F]) Family() family.Family[P, F] { return b.fam }

// Param returns the family parameter this braid was built over.
func (b Braid[P, F]) Param() P { return b.param }

// Inf returns δ, the Δ-exponent.
func (b Braid[P, F]) Inf() int { return b.delta }

// Sup returns δ + canonical length.
func (b Braid[P, F]) Sup() int { return b.delta + len(b.factors) }

// CanonicalLength returns |S|, the number of non-trivial factors.
func (b Braid[P, F]) CanonicalLength() int { return len(b.factors) }

// Form reports whether b is currently in LCF or RCF.
func (b Braid[P, F]) Form() Form { return b.form }

// Factors returns a defensive copy of the factor sequence.
func (b Braid[P, F]) Factors() []F {
	out := make([]F, len(b.factors))
	copy(out, b.factors)
	return out
}

// FirstFactor returns f₁, or the identity factor when canonical
// length is 0. Only meaningful when Form() == LCF.
func (b Braid[P, F]) FirstFactor() F {
	if len(b.factors) == 0 {
		return b.fam.Identity(b.param)
	}
	return b.factors[0]
}

// FinalFactor returns fᵣ, or the identity factor when canonical
// length is 0. Only meaningful when Form() == RCF (or LCF when r ≤ 1).
func (b Braid[P, F]) FinalFactor() F {
	if len(b.factors) == 0 {
		return b.fam.Identity(b.param)
	}
	return b.factors[len(b.factors)-1]
}

// IsIdentity reports whether b is the identity element.
func (b Braid[P, F]) IsIdentity() bool {
	return b.delta == 0 && len(b.factors) == 0
}

// clone returns a shallow copy with its own factors backing array.
func (b Braid[P, F]) clone() Braid[P, F] {
	return Braid[P, F]{fam: b.fam, param: b.param, delta: b.delta, factors: b.Factors(), form: b.form}
}
