package artin

import (
	"math/rand"

	"github.com/go-garside/garcide/family"
)

// Family implements family.Family[int, Factor]: the braid group B_n
// under the Artin presentation, parametrized by strand count n.
type Family struct{}

var _ family.Family[int, Factor] = Family{}
var _ family.Factor[Factor] = Factor{}

// Identity returns the identity factor for n strands.
func (Family) Identity(n int) Factor { return NewIdentity(n) }

// Delta returns the Garside element Δ for n strands.
func (Family) Delta(n int) Factor { return NewDelta(n) }

// Atoms returns the n-1 Artin generators s_1, …, s_{n-1} (adjacent
// transpositions), in increasing index order — a fixed, deterministic
// order that downstream orbit/circuit indices in sets depend on.
func (Family) Atoms(n int) []Factor {
	if n < 2 {
		return nil
	}
	atoms := make([]Factor, n-1)
	for i := 0; i < n-1; i++ {
		p := make([]int, n)
		for j := range p {
			p[j] = j
		}
		p[i], p[i+1] = p[i+1], p[i]
		atoms[i] = Factor{perm: p}
	}
	return atoms
}

// LatticeHeight returns length(Δ) = n(n-1)/2, the maximum chain length
// from identity to Δ in the weak order on S_n.
func (Family) LatticeHeight(n int) int {
	return n * (n - 1) / 2
}

// RandomFactor returns a uniformly-chosen permutation of n strands,
// built by a Fisher-Yates shuffle seeded deterministically from seed.
func (Family) RandomFactor(n int, seed int64) (Factor, error) {
	rng := rand.New(rand.NewSource(seed))
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	rng.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return Factor{perm: p}, nil
}
