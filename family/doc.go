// Package family declares the contract a concrete Garside group must
// satisfy to plug into the rest of garcide: a bounded lattice of
// simple elements (L, ≤, ∧, ∨, 0, Δ) whose join-maximum is the
// Garside element Δ, plus the parsing hooks the braid layer needs.
//
// A Garside family is split into two generic type parameters:
//
//	P — the family parameter (e.g. strand count n, or (e, n) for a
//	    complex-reflection family). Immutable, comparable by the
//	    caller's choice of representation.
//	F — the factor type: an element of the bounded lattice. Factors
//	    compare by value equality and hash by value, and are treated
//	    as immutable by every function in this package and in braid.
//
// Concrete families are expected to monomorphise: garcide never
// dispatches through a virtual Factor interface on a hot path, it
// instantiates braid.Braid[P, F] once per family (see families/artin
// for the reference instantiation).
package family
