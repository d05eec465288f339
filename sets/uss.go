package sets

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/conjugacy"
	"github.com/go-garside/garcide/family"
	"github.com/go-garside/garcide/minconj"
)

// Orbit is a single cycling trajectory: a closed sequence of braids
// each reachable from the next by one application of Cycle.
type Orbit[P any, F family.Factor[F]] struct {
	Trajectory []braid.Braid[P, F]
}

// First returns the orbit's canonical representative, the element the
// trajectory was computed from.
func (o Orbit[P, F]) First() braid.Braid[P, F] { return o.Trajectory[0] }

func (o Orbit[P, F]) contains(x braid.Braid[P, F]) bool {
	for _, y := range o.Trajectory {
		if braid.Equal(x, y) {
			return true
		}
	}
	return false
}

// UltraSummitSet is the BFS closure of a braid's ultra summit
// conjugates, grouped into cycling orbits, with spanning-tree
// annotations (Mins, Prev) letting any orbit be reached from orbit 0
// by a known conjugator: orbit i's first element is
// Mins[i]⁻¹ · (orbit Prev[i]'s first element) · Mins[i].
type UltraSummitSet[P any, F family.Factor[F]] struct {
	Orbits []Orbit[P, F]
	Mins   []F
	Prev   []int
}

// Len returns the number of orbits.
func (u *UltraSummitSet[P, F]) Len() int { return len(u.Orbits) }

// Member reports whether b belongs to some orbit of u.
func (u *UltraSummitSet[P, F]) Member(b braid.Braid[P, F]) bool {
	for _, o := range u.Orbits {
		if o.contains(b) {
			return true
		}
	}
	return false
}

func (u *UltraSummitSet[P, F]) knownFront(x braid.Braid[P, F]) bool {
	for _, o := range u.Orbits {
		if braid.Equal(x, o.First()) {
			return true
		}
	}
	return false
}

// TreePath returns a conjugator c such that c⁻¹ · orbits[0].First() · c
// equals b, assuming b lies in u. Grounded on braiding.cpp's TreePath:
// walk forward within b's own orbit from the orbit's front to b,
// accumulating leading factors, then climb the Prev spanning tree from
// that orbit back to the root, left-multiplying by each stored Mins
// entry.
func (u *UltraSummitSet[P, F]) TreePath(b braid.Braid[P, F]) braid.Braid[P, F] {
	fam, param := b.Family(), b.Param()
	if b.CanonicalLength() == 0 {
		return braid.Identity(fam, param)
	}

	orbitIdx, posIdx := -1, -1
	for i, o := range u.Orbits {
		for j, x := range o.Trajectory {
			if braid.Equal(x, b) {
				orbitIdx, posIdx = i, j
				break
			}
		}
		if orbitIdx >= 0 {
			break
		}
	}
	if orbitIdx < 0 {
		return braid.Identity(fam, param)
	}

	c := braid.Identity(fam, param)
	traj := u.Orbits[orbitIdx].Trajectory
	for j := 0; j < posIdx; j++ {
		lf := traj[j].FirstFactor().DeltaConjugate(traj[j].Inf())
		c = braid.Multiply(c, braid.FromFactor(fam, param, lf))
	}

	current := orbitIdx
	for current != 0 {
		c = braid.Multiply(braid.FromFactor(fam, param, u.Mins[current]), c)
		current = u.Prev[current]
	}
	return c
}

// SendToUSS returns a conjugate of b lying in its ultra summit set:
// send it to the super summit set, then cycle around that element's
// full cycling trajectory once more to land on a periodic point.
func SendToUSS[P any, F family.Factor[F]](b braid.Braid[P, F]) braid.Braid[P, F] {
	b2 := SendToSuperSummit(b)
	t := conjugacy.CyclingTrajectory(b2)
	return conjugacy.Cycle(t[len(t)-1])
}

// SendToUSSWithConjugator is SendToUSS, additionally returning a
// conjugator c with c⁻¹·b·c equal to the result.
func SendToUSSWithConjugator[P any, F family.Factor[F]](b braid.Braid[P, F]) (braid.Braid[P, F], braid.Braid[P, F]) {
	b2, c := SendToSuperSummitWithConjugator(b)
	fam, param := b.Family(), b.Param()
	t := conjugacy.CyclingTrajectory(b2)
	d := conjugacy.Cycle(t[len(t)-1])

	acc := braid.Identity(fam, param)
	for _, x := range t {
		if braid.Equal(x, d) {
			break
		}
		lf := x.FirstFactor().DeltaConjugate(x.Inf())
		acc = braid.Multiply(acc, braid.FromFactor(fam, param, lf))
	}
	return d, braid.Multiply(c, acc)
}

// BuildUSS computes the ultra summit set of b as a BFS over orbits.
// Grounded on braiding.cpp's USS(B, mins, prev): seed with the orbit
// of SendToUSS(b) and, when absent from it, the orbit of its
// Δ-conjugate; then for each discovered orbit, conjugate its first
// element by every factor of MinUSS's atom set, and enqueue the
// resulting trajectory (plus its own Δ-conjugate partner, if not
// already present) whenever no known orbit already starts with one of
// its elements.
func BuildUSS[P any, F family.Factor[F]](b braid.Braid[P, F], opts ...Option) (*UltraSummitSet[P, F], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	fam, param := b.Family(), b.Param()
	delta := fam.Delta(param)

	uss := &UltraSummitSet[P, F]{}
	start := SendToUSS(b)
	startOrbit := Orbit[P, F]{Trajectory: conjugacy.CyclingTrajectory(start)}
	uss.Orbits = append(uss.Orbits, startOrbit)
	uss.Mins = append(uss.Mins, fam.Identity(param))
	uss.Prev = append(uss.Prev, 0)
	o.OnDiscover(0)

	deltaConj := braid.ToLCF(braid.Conjugate(start, delta))
	if !startOrbit.contains(deltaConj) {
		uss.Orbits = append(uss.Orbits, Orbit[P, F]{Trajectory: conjugacy.CyclingTrajectory(deltaConj)})
		uss.Mins = append(uss.Mins, delta)
		uss.Prev = append(uss.Prev, 0)
		o.OnDiscover(1)
	}

	for current := 0; current < uss.Len(); current++ {
		if err := cancelled(o.Ctx); err != nil {
			return nil, err
		}

		front := uss.Orbits[current].First()
		mins, err := minconj.MinSet(front, minconj.USS)
		if err != nil {
			return nil, err
		}

		for _, f := range mins {
			cand := braid.ToLCF(braid.Conjugate(front, f))
			t := conjugacy.CyclingTrajectory(cand)

			known := false
			for _, x := range t {
				if uss.knownFront(x) {
					known = true
					break
				}
			}
			if known {
				continue
			}

			newOrbit := Orbit[P, F]{Trajectory: t}
			uss.Orbits = append(uss.Orbits, newOrbit)
			uss.Mins = append(uss.Mins, f)
			uss.Prev = append(uss.Prev, current)
			idx := uss.Len() - 1
			o.OnDiscover(idx)
			if o.MaxVertices > 0 && uss.Len() >= o.MaxVertices {
				return uss, nil
			}

			partner := braid.ToLCF(braid.Conjugate(t[0], delta))
			if !newOrbit.contains(partner) {
				uss.Orbits = append(uss.Orbits, Orbit[P, F]{Trajectory: conjugacy.CyclingTrajectory(partner)})
				uss.Mins = append(uss.Mins, delta)
				uss.Prev = append(uss.Prev, idx)
				o.OnDiscover(uss.Len() - 1)
			}
		}
	}

	return uss, nil
}
