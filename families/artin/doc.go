// Package artin is the reference Garside family: the braid group B_n
// under the classical Artin presentation, with simple factors
// represented as permutation braids.
//
// Simple factors of B_n are in bijection with permutations of
// {1, …, n}: a simple factor is the permutation induced on strand
// endpoints by any of its (equivalent, crossing-minimal) positive
// braid-word representatives. Under this bijection the Garside
// element Δ is the longest permutation (i ↦ n+1−i), the lattice order
// ≤ is the left weak order on the symmetric group, and ∧ is the meet
// in that lattice: the largest permutation whose inversion set lies
// inside both operands' inversion sets.
//
// This package exists to exercise and test family, braid, conjugacy,
// minconj, sets, conjtest, and classify end-to-end; it is not part of
// their public contract. A host wanting dual/band presentation or a
// complex-reflection family B(e, e, n) provides its own
// family.Factor/family.Family implementation instead.
package artin
