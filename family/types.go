package family

import "errors"

// Sentinel errors surfaced by family implementations and by the
// derived algebra in this package. Category (1)/(2) from the error
// design: parse errors and capability errors are reported to the
// caller, never panicked.
var (
	// ErrInvalidParameter indicates a family parameter outside the
	// family's valid range (e.g. a strand count < 1).
	ErrInvalidParameter = errors.New("family: invalid parameter")

	// ErrParse indicates a textual factor/braid could not be decoded.
	// Implementations should wrap this with %w and a human-readable cause.
	ErrParse = errors.New("family: parse error")

	// ErrNotRandomizable indicates RandomFactor is unsupported by this
	// family. Returning this instead of panicking lets callers treat it
	// as a capability error (spec category 2), not a bug.
	ErrNotRandomizable = errors.New("family: random factor generation not supported")
)

// Factor is an element of a finite bounded lattice (L, ≤, ∧, ∨, 0, Δ)
// whose join-maximum is the Garside element Δ. F is the concrete
// factor type implementing this interface over itself, so that every
// operation stays monomorphic to one family.
//
// Invariants a conforming implementation must uphold: every value
// satisfies 0 ≤ f ≤ Δ; Clone, Equal, and Hash agree with value
// equality; no method mutates the receiver or its operand.
type Factor[F any] interface {
	// Clone returns an independent copy of the receiver.
	Clone() F

	// Equal reports whether the receiver and other denote the same
	// lattice element.
	Equal(other F) bool

	// Hash returns a value-based hash, consistent with Equal.
	Hash() uint64

	// IsIdentity reports whether the receiver is the lattice's 0.
	IsIdentity() bool

	// IsDelta reports whether the receiver is the Garside element Δ.
	IsDelta() bool

	// Product returns the receiver times other, and true, when the
	// result is itself ≤ Δ (i.e. still a simple factor). It returns
	// false when the product must be promoted to two factors plus a
	// possible Δ-exponent increment, a decision made by the braid
	// layer, not here.
	Product(other F) (F, bool)

	// LeftComplement returns the unique c with receiver·c = Δ
	// (the "a \ Δ" operation).
	LeftComplement() F

	// RightComplement returns the unique c with c·receiver = Δ
	// (the "Δ / a" operation).
	RightComplement() F

	// LeftMeet returns the greatest c with c ≤ receiver and c ≤ other.
	// Existence is guaranteed by the lattice axiom.
	LeftMeet(other F) F

	// DeltaConjugate returns τ^k(receiver) = Δ^(-k)·receiver·Δ^k.
	// τ is closed on factors for every integer k.
	DeltaConjugate(k int) F

	// Reverse returns the receiver's image under the family's
	// anti-automorphism induced by reading words right to left (the
	// dual generating set is self-identical for every family in this
	// library). Used to derive right-handed lattice operations from
	// their left-handed counterparts.
	Reverse() F

	// LeftQuotient returns h such that receiver·h = other, assuming the
	// receiver left-divides other (receiver ≤ other). Behaviour is
	// undefined when that precondition does not hold. This is the
	// "s⁻¹·f" primitive used by left normal form construction (spec
	// §4.3) to re-weight an adjacent pair of factors.
	LeftQuotient(other F) F

	// RightQuotient returns h such that h·receiver = other, assuming
	// the receiver right-divides other. The dual of LeftQuotient, used
	// by right normal form construction.
	RightQuotient(other F) F
}

// Family is the abstract contract a concrete Garside group must
// expose on its factor type F, parametrized over the family parameter
// P (e.g. strand count).
type Family[P any, F Factor[F]] interface {
	// Identity returns the lattice's 0 for parameter p.
	Identity(p P) F

	// Delta returns the Garside element Δ for parameter p.
	Delta(p P) F

	// Atoms returns the lattice atoms (covers of 0) in a fixed,
	// deterministic order. Downstream orbit/circuit indices in sets
	// depend on this order being stable across calls.
	Atoms(p P) []F

	// LatticeHeight returns an upper bound on the length of any chain
	// 0 < … < Δ for parameter p; conjugacy algorithms use it as a
	// termination constant.
	LatticeHeight(p P) int

	// Parse decodes a textual factor for parameter p.
	Parse(p P, s string) (F, error)

	// Print encodes f as text such that Parse(p, Print(f)) == f.
	Print(p P, f F) string

	// RandomFactor returns a uniformly-chosen factor for parameter p,
	// or ErrNotRandomizable if the family does not support it.
	RandomFactor(p P, seed int64) (F, error)
}
