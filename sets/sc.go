package sets

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/conjugacy"
	"github.com/go-garside/garcide/family"
	"github.com/go-garside/garcide/minconj"
)

// Circuit is a single sliding trajectory: a closed sequence of braids
// each reachable from the next by one application of Slide.
type Circuit[P any, F family.Factor[F]] struct {
	Trajectory []braid.Braid[P, F]
}

// First returns the circuit's canonical representative.
func (c Circuit[P, F]) First() braid.Braid[P, F] { return c.Trajectory[0] }

func (c Circuit[P, F]) contains(x braid.Braid[P, F]) bool {
	for _, y := range c.Trajectory {
		if braid.Equal(x, y) {
			return true
		}
	}
	return false
}

// SetOfSlidingCircuits is the BFS closure of a braid's conjugates
// under cyclic sliding, grouped into circuits, with the same Mins/Prev
// spanning-tree annotations as UltraSummitSet.
type SetOfSlidingCircuits[P any, F family.Factor[F]] struct {
	Circuits []Circuit[P, F]
	Mins     []F
	Prev     []int
}

// Len returns the number of circuits.
func (s *SetOfSlidingCircuits[P, F]) Len() int { return len(s.Circuits) }

// Member reports whether b belongs to some circuit of s.
func (s *SetOfSlidingCircuits[P, F]) Member(b braid.Braid[P, F]) bool {
	for _, c := range s.Circuits {
		if c.contains(b) {
			return true
		}
	}
	return false
}

func (s *SetOfSlidingCircuits[P, F]) knownFront(x braid.Braid[P, F]) bool {
	for _, c := range s.Circuits {
		if braid.Equal(x, c.First()) {
			return true
		}
	}
	return false
}

// TreePath is SetOfSlidingCircuits's analogue of UltraSummitSet.TreePath.
func (s *SetOfSlidingCircuits[P, F]) TreePath(b braid.Braid[P, F]) braid.Braid[P, F] {
	fam, param := b.Family(), b.Param()
	if b.CanonicalLength() == 0 {
		return braid.Identity(fam, param)
	}

	circuitIdx, posIdx := -1, -1
	for i, c := range s.Circuits {
		for j, x := range c.Trajectory {
			if braid.Equal(x, b) {
				circuitIdx, posIdx = i, j
				break
			}
		}
		if circuitIdx >= 0 {
			break
		}
	}
	if circuitIdx < 0 {
		return braid.Identity(fam, param)
	}

	c := braid.Identity(fam, param)
	traj := s.Circuits[circuitIdx].Trajectory
	for j := 0; j < posIdx; j++ {
		p := conjugacy.PreferredPrefix(traj[j])
		c = braid.Multiply(c, braid.FromFactor(fam, param, p))
	}

	current := circuitIdx
	for current != 0 {
		c = braid.Multiply(braid.FromFactor(fam, param, s.Mins[current]), c)
		current = s.Prev[current]
	}
	return c
}

// SendToSC returns a conjugate of b lying in its set of sliding
// circuits: slide along b's sliding trajectory until it repeats, then
// slide once more.
func SendToSC[P any, F family.Factor[F]](b braid.Braid[P, F]) braid.Braid[P, F] {
	t := conjugacy.SlidingTrajectory(b)
	return conjugacy.Slide(t[len(t)-1])
}

// SendToSCWithConjugator is SendToSC, additionally returning a
// conjugator c with c⁻¹·b·c equal to the result. Grounded on
// braiding.cpp's Trajectory_Sliding(B, C, d), but computed directly by
// telescoping preferred-prefix conjugations forward from b until the
// sliding orbit's repeated element is reached, instead of that
// function's two-pass walk-then-subtract-the-tail construction — both
// compute a valid conjugator to the same target, since conjugating by
// the running product of preferred prefixes after k slidings always
// sends b to Slideᵏ(b).
func SendToSCWithConjugator[P any, F family.Factor[F]](b braid.Braid[P, F]) (braid.Braid[P, F], braid.Braid[P, F]) {
	b = braid.ToLCF(b)
	fam, param := b.Family(), b.Param()
	target := SendToSC(b)

	acc := braid.Identity(fam, param)
	cur := b
	for !braid.Equal(cur, target) {
		p := conjugacy.PreferredPrefix(cur)
		acc = braid.Multiply(acc, braid.FromFactor(fam, param, p))
		cur = conjugacy.Slide(cur)
	}
	return target, acc
}

// BuildSC computes the set of sliding circuits of b as a BFS over
// circuits. Grounded on braiding.cpp's SC(B, mins, prev); structurally
// identical to BuildUSS with cycling replaced by sliding throughout
// and MinSC in place of MinUSS.
func BuildSC[P any, F family.Factor[F]](b braid.Braid[P, F], opts ...Option) (*SetOfSlidingCircuits[P, F], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	fam, param := b.Family(), b.Param()
	delta := fam.Delta(param)

	sc := &SetOfSlidingCircuits[P, F]{}
	start := SendToSC(b)
	startCircuit := Circuit[P, F]{Trajectory: conjugacy.SlidingTrajectory(start)}
	sc.Circuits = append(sc.Circuits, startCircuit)
	sc.Mins = append(sc.Mins, fam.Identity(param))
	sc.Prev = append(sc.Prev, 0)
	o.OnDiscover(0)

	deltaConj := braid.ToLCF(braid.Conjugate(start, delta))
	if !startCircuit.contains(deltaConj) {
		sc.Circuits = append(sc.Circuits, Circuit[P, F]{Trajectory: conjugacy.SlidingTrajectory(deltaConj)})
		sc.Mins = append(sc.Mins, delta)
		sc.Prev = append(sc.Prev, 0)
		o.OnDiscover(1)
	}

	for current := 0; current < sc.Len(); current++ {
		if err := cancelled(o.Ctx); err != nil {
			return nil, err
		}

		front := sc.Circuits[current].First()
		mins, err := minconj.MinSet(front, minconj.SC)
		if err != nil {
			return nil, err
		}

		for _, f := range mins {
			cand := braid.ToLCF(braid.Conjugate(front, f))
			t := conjugacy.SlidingTrajectory(cand)

			known := false
			for _, x := range t {
				if sc.knownFront(x) {
					known = true
					break
				}
			}
			if known {
				continue
			}

			newCircuit := Circuit[P, F]{Trajectory: t}
			sc.Circuits = append(sc.Circuits, newCircuit)
			sc.Mins = append(sc.Mins, f)
			sc.Prev = append(sc.Prev, current)
			idx := sc.Len() - 1
			o.OnDiscover(idx)
			if o.MaxVertices > 0 && sc.Len() >= o.MaxVertices {
				return sc, nil
			}

			partner := braid.ToLCF(braid.Conjugate(t[0], delta))
			if !newCircuit.contains(partner) {
				sc.Circuits = append(sc.Circuits, Circuit[P, F]{Trajectory: conjugacy.SlidingTrajectory(partner)})
				sc.Mins = append(sc.Mins, delta)
				sc.Prev = append(sc.Prev, idx)
				o.OnDiscover(sc.Len() - 1)
			}
		}
	}

	return sc, nil
}
