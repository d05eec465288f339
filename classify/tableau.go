package classify

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/family"
)

// permutationsOf collects the permutation of every transform Circles
// needs to test: one per nontrivial factor of b (in LCF), plus, when
// b's Δ-exponent is odd, a leading transform for Δ itself. Grounded on
// braiding.cpp's Circles, which builds one tableau per factor of the
// cycling orbit's representative and prepends a Δ tableau under the
// same parity condition.
func permutationsOf[P any, F family.Factor[F]](b braid.Braid[P, F]) ([][]int, error) {
	var perms [][]int
	if b.Inf()%2 != 0 {
		dp, ok := any(b.Family().Delta(b.Param())).(PermFactor)
		if !ok {
			return nil, ErrNoPermutation
		}
		perms = append(perms, dp.Permutation())
	}
	for _, f := range b.Factors() {
		pf, ok := any(f).(PermFactor)
		if !ok {
			return nil, ErrNoPermutation
		}
		perms = append(perms, pf.Permutation())
	}
	return perms, nil
}

func windowMax(p []int, start, length int) int {
	m := p[start]
	for i := 1; i < length; i++ {
		if v := p[start+i]; v > m {
			m = v
		}
	}
	return m
}

func windowMin(p []int, start, length int) int {
	m := p[start]
	for i := 1; i < length; i++ {
		if v := p[start+i]; v < m {
			m = v
		}
	}
	return m
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// hasRoundReducingCurve reports whether the given permutations, taken
// together, fix a round curve enclosing between 2 and n-1 strands: a
// block of consecutive positions that every transform maps onto some
// block of consecutive strand values, tracing out a cycle back to a
// starting block. Grounded on braiding.cpp's Circles/Tableau, with the
// tableau itself collapsed into the direct windowed max/min it
// computes (tab[i][k] = max(perm[i..k]) for k ≥ i, min(perm[k..i])
// for k < i, which the source's recursive range-doubling reproduces
// exactly) rather than materialising the source's explicit DP table.
// The walk that follows bkmove back to a starting block keeps the
// source's disj bookkeeping: visiting a block forbids the whole
// neighbourhood within j-1 of it, not just that exact position, since
// a family of round curves must stay pairwise disjoint.
func hasRoundReducingCurve(perms [][]int, n int) bool {
	for j := 2; j < n; j++ {
		bkmove := make([]int, n-j+1)
		for start := 0; start <= n-j; start++ {
			bk, ok := start, true
			for _, p := range perms {
				mx := windowMax(p, bk, j)
				mn := windowMin(p, bk, j)
				if mx-mn != j-1 {
					ok = false
					break
				}
				bk = mn
			}
			if ok && bk == start {
				return true
			}
			if ok && absDiff(bk, start) < j {
				ok = false
			}
			if !ok || bk < 0 || bk > n-j {
				bkmove[start] = -1
			} else {
				bkmove[start] = bk
			}
		}

		for start := 0; start <= n-j; start++ {
			visited := make([]bool, n-j+1)
			forbid := func(bk int) {
				lo, hi := clamp(bk-j+1, 0, n-j), clamp(bk+j-1, 0, n-j)
				for i := lo; i <= hi; i++ {
					visited[i] = true
				}
			}
			bk := start
			forbid(bk)
			for {
				next := bkmove[bk]
				if next < 0 {
					break
				}
				if next == start {
					return true
				}
				if visited[next] {
					break
				}
				bk = next
				forbid(bk)
			}
		}
	}
	return false
}
