package artin

// Factor is a simple element of B_n: the permutation of strand
// endpoints induced by a crossing-minimal positive braid word.
// Values are immutable by convention; every method returns a new
// Factor rather than mutating the receiver.
//
// perm is 0-indexed: perm[i] is the strand that position i's strand
// ends at, also 0-indexed. Strand count n = len(perm).
type Factor struct {
	perm []int
}

// NewIdentity returns the identity factor (0 crossings) for n strands.
func NewIdentity(n int) Factor {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return Factor{perm: p}
}

// NewDelta returns the Garside element Δ for n strands: the longest
// permutation, reversing strand order.
func NewDelta(n int) Factor {
	p := make([]int, n)
	for i := range p {
		p[i] = n - 1 - i
	}
	return Factor{perm: p}
}

// fromPerm wraps an already-computed permutation as a Factor without
// re-validating simplicity; callers are responsible for that.
func fromPerm(p []int) Factor {
	return Factor{perm: p}
}

// n returns the strand count.
func (f Factor) n() int { return len(f.perm) }

// Permutation returns a defensive copy of f's strand permutation:
// perm[i] is the 0-indexed strand that position i ends at. Satisfies
// classify's PermFactor capability interface, letting the Thurston
// type and rigidity classifiers read the concrete representation
// spec.md's tableau construction needs without classify importing
// this package directly.
func (f Factor) Permutation() []int {
	p := make([]int, len(f.perm))
	copy(p, f.perm)
	return p
}

// Clone returns an independent copy of f.
func (f Factor) Clone() Factor {
	p := make([]int, len(f.perm))
	copy(p, f.perm)
	return Factor{perm: p}
}

// Equal reports whether f and other induce the same permutation.
func (f Factor) Equal(other Factor) bool {
	if len(f.perm) != len(other.perm) {
		return false
	}
	for i, v := range f.perm {
		if other.perm[i] != v {
			return false
		}
	}
	return true
}

// Hash returns an FNV-1a style hash over the permutation table.
func (f Factor) Hash() uint64 {
	var h uint64 = 1469598103934665603
	for _, v := range f.perm {
		h ^= uint64(uint32(v))
		h *= 1099511628211
	}
	return h
}

// IsIdentity reports whether f has zero crossings.
func (f Factor) IsIdentity() bool {
	for i, v := range f.perm {
		if v != i {
			return false
		}
	}
	return true
}

// IsDelta reports whether f is the longest permutation for its n.
func (f Factor) IsDelta() bool {
	n := f.n()
	for i, v := range f.perm {
		if v != n-1-i {
			return false
		}
	}
	return true
}

// inverse returns the permutation's functional inverse.
func (f Factor) inverse() []int {
	inv := make([]int, f.n())
	for i, v := range f.perm {
		inv[v] = i
	}
	return inv
}

// inversions counts pairs (i, j), i<j, with perm[i] > perm[j]: the
// permutation braid's crossing number, i.e. its lattice length.
func (f Factor) inversions() int {
	count := 0
	for i := 0; i < len(f.perm); i++ {
		for j := i + 1; j < len(f.perm); j++ {
			if f.perm[i] > f.perm[j] {
				count++
			}
		}
	}
	return count
}

// compose returns the permutation obtained by first applying f, then
// g, to each strand: compose(f, g)(i) = g(f(i)).
func compose(f, g Factor) Factor {
	p := make([]int, f.n())
	for i, v := range f.perm {
		p[i] = g.perm[v]
	}
	return Factor{perm: p}
}

// Product returns f·other as a single factor, and true, when the
// crossing numbers add (no cancellation occurs in the braid monoid);
// otherwise it returns false, and the caller (braid) must promote the
// product across two factors and possibly a Δ-exponent.
func (f Factor) Product(other Factor) (Factor, bool) {
	c := compose(f, other)
	if c.inversions() == f.inversions()+other.inversions() {
		return c, true
	}
	return Factor{}, false
}

// LeftComplement returns the unique c with f·c = Δ.
func (f Factor) LeftComplement() Factor {
	delta := NewDelta(f.n())
	inv := f.inverse()
	p := make([]int, f.n())
	for j := range p {
		p[j] = delta.perm[inv[j]]
	}
	return Factor{perm: p}
}

// RightComplement returns the unique c with c·f = Δ.
func (f Factor) RightComplement() Factor {
	delta := NewDelta(f.n())
	inv := f.inverse()
	p := make([]int, f.n())
	for i := range p {
		p[i] = inv[delta.perm[i]]
	}
	return Factor{perm: p}
}

// LeftMeet returns the greatest common left divisor of f and other.
//
// It grows a common prefix m one atom at a time, starting from the
// identity. Appending the atom s that swaps values v and v+1 adds the
// single inversion between the positions holding them, and m·s is a
// prefix of an operand exactly when that pair is also an inversion of
// the operand. An atom is appended whenever both operands have its
// inversion; when none qualifies, m is the meet.
func (f Factor) LeftMeet(other Factor) Factor {
	n := f.n()
	m := NewIdentity(n)
	for grown := true; grown; {
		grown = false
		inv := m.inverse()
		for v := 0; v+1 < n; v++ {
			a, b := inv[v], inv[v+1]
			if a < b && f.perm[a] > f.perm[b] && other.perm[a] > other.perm[b] {
				m.perm[a], m.perm[b] = v+1, v
				grown = true
				break
			}
		}
	}
	return m
}

// DeltaConjugate returns τ^k(f) = Δ^(-k)·f·Δ^k. Since Δ² is central
// in every Garside group, τ has order dividing 2, so only k's parity
// matters.
func (f Factor) DeltaConjugate(k int) Factor {
	if k%2 == 0 {
		return f.Clone()
	}
	delta := NewDelta(f.n())
	p := make([]int, f.n())
	for i := range p {
		p[i] = delta.perm[f.perm[delta.perm[i]]]
	}
	return Factor{perm: p}
}

// Reverse returns f's image under the anti-automorphism induced by
// reading a braid word back to front, which for permutation braids is
// the functional inverse.
func (f Factor) Reverse() Factor {
	return Factor{perm: f.inverse()}
}

// LeftQuotient returns h with f·h = other, assuming f left-divides
// other: h(v) = other(f⁻¹(v)).
func (f Factor) LeftQuotient(other Factor) Factor {
	inv := f.inverse()
	p := make([]int, f.n())
	for v := range p {
		p[v] = other.perm[inv[v]]
	}
	return Factor{perm: p}
}

// RightQuotient returns h with h·f = other, assuming f right-divides
// other: h(i) = f⁻¹(other(i)).
func (f Factor) RightQuotient(other Factor) Factor {
	inv := f.inverse()
	p := make([]int, f.n())
	for i := range p {
		p[i] = inv[other.perm[i]]
	}
	return Factor{perm: p}
}
