package minconj

import (
	"sync"

	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/conjugacy"
	"github.com/go-garside/garcide/family"
)

// MinSet computes the deduplicated set of minimal conjugators across
// every atom of b's family, at the summit level named by flavour. Each
// atom's minimal conjugator is independent of every other's, so they
// are computed concurrently, one goroutine per atom writing its own
// disjoint slice slot — no shared mutable state, so no locking is
// needed to join the results.
//
// The acceptance rule after that fan-out is grounded on
// super_summit.hpp's atom-vector min_super_summit overload: keep a
// computed conjugator r_i only if no earlier atom a_j whose conjugator
// was kept left-divides it and no later atom a_j (by atom index)
// left-divides it either (see dedupMinimal) — a conjugator that is
// itself divisible by another candidate's atom adds nothing that
// candidate wouldn't already reach.
func MinSet[P any, F family.Factor[F]](b braid.Braid[P, F], flavour Flavour) ([]F, error) {
	b = braid.ToLCF(b)
	atoms := b.Family().Atoms(b.Param())

	results := make([]F, len(atoms))
	errs := make([]error, len(atoms))
	var wg sync.WaitGroup
	wg.Add(len(atoms))
	for i, a := range atoms {
		go func(i int, a F) {
			defer wg.Done()
			switch flavour {
			case USS:
				results[i], errs[i] = MinUSS(b, a)
			case SC:
				results[i] = MinSC(b, a)
			default:
				results[i] = conjugacy.MinSSS(b, a)
			}
		}(i, a)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return dedupMinimal(atoms, results), nil
}

// dedupMinimal applies super_summit.hpp's atom-vector min_super_summit
// acceptance rule: keep results[i] unless some earlier *already-kept*
// atoms[j] left-divides it, or some later atoms[j] (kept or not)
// left-divides it. Both checks are against the atom, not the result —
// every r_i already dominates its own atom, so a smaller atom dividing
// r_i is evidence that r_i is reachable from a strictly smaller
// generator and can be dropped.
func dedupMinimal[F family.Factor[F]](atoms, results []F) []F {
	kept := make([]bool, len(atoms))
	var out []F
	for i, f := range results {
		add := true
		for j := 0; j < i && add; j++ {
			if kept[j] && atoms[j].LeftMeet(f).Equal(atoms[j]) {
				add = false
			}
		}
		for j := i + 1; j < len(atoms) && add; j++ {
			if atoms[j].LeftMeet(f).Equal(atoms[j]) {
				add = false
			}
		}
		if add {
			out = append(out, f)
			kept[i] = true
		}
	}
	return out
}
