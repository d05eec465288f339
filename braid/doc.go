// Package braid implements the canonical normal forms of a Garside
// group element: Braid[P, F] is the triple (δ, S, form) of spec §3 —
// a signed Δ-exponent, an ordered sequence of simple factors, and
// whether that sequence is left- or right-weighted.
//
// Braid values are immutable: every operation here returns a new
// value rather than mutating its receiver, per the "explicit in-place
// re-normalisers, callers clone to branch" design called for by the
// library's design notes. Internally, each construction step copies
// the factor slice and re-weights the copy.
package braid
