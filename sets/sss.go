package sets

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/conjugacy"
	"github.com/go-garside/garcide/family"
	"github.com/go-garside/garcide/minconj"
)

// SuperSummitSet is the BFS closure of a braid's conjugates of minimal
// canonical length: an immutable, order-preserving list of its
// vertices plus a lookup index by structural equality.
type SuperSummitSet[P any, F family.Factor[F]] struct {
	vertices []braid.Braid[P, F]
	index    map[uint64][]int
}

// Vertices returns the set's elements in discovery order.
func (s *SuperSummitSet[P, F]) Vertices() []braid.Braid[P, F] { return s.vertices }

// Len returns the number of elements in the set.
func (s *SuperSummitSet[P, F]) Len() int { return len(s.vertices) }

// Member reports whether x (assumed already in LCF) belongs to the set.
func (s *SuperSummitSet[P, F]) Member(x braid.Braid[P, F]) bool {
	return s.find(x) >= 0
}

func (s *SuperSummitSet[P, F]) find(x braid.Braid[P, F]) int {
	h := braidHash(x)
	for _, i := range s.index[h] {
		if braid.Equal(s.vertices[i], x) {
			return i
		}
	}
	return -1
}

func (s *SuperSummitSet[P, F]) insert(x braid.Braid[P, F]) int {
	if i := s.find(x); i >= 0 {
		return i
	}
	i := len(s.vertices)
	s.vertices = append(s.vertices, x)
	h := braidHash(x)
	s.index[h] = append(s.index[h], i)
	return i
}

// braidHash combines the Δ-exponent and each factor's hash into one
// value, cheap enough to bucket candidates before the exact
// braid.Equal structural comparison.
func braidHash[P any, F family.Factor[F]](x braid.Braid[P, F]) uint64 {
	x = braid.ToLCF(x)
	h := uint64(1469598103934665603) ^ uint64(uint32(x.Inf()))
	h *= 1099511628211
	for _, f := range x.Factors() {
		h ^= f.Hash()
		h *= 1099511628211
	}
	return h
}

// SendToSuperSummit returns a conjugate of b lying in its super
// summit set, found by alternating cycling (to stabilize inf) and
// decycling (to stabilize sup), each held for lattice_height()+1
// consecutive non-improving steps. Grounded on super_summit.hpp's
// send_to_super_summit.
func SendToSuperSummit[P any, F family.Factor[F]](b braid.Braid[P, F]) braid.Braid[P, F] {
	b2, _ := SendToSuperSummitWithConjugator(b)
	return b2
}

// SendToSuperSummitWithConjugator is SendToSuperSummit, additionally
// returning a conjugator c with c⁻¹·b·c equal to the result.
func SendToSuperSummitWithConjugator[P any, F family.Factor[F]](b braid.Braid[P, F]) (braid.Braid[P, F], braid.Braid[P, F]) {
	b = braid.ToLCF(b)
	fam, param := b.Family(), b.Param()
	k := fam.LatticeHeight(param)

	b2, b3 := b, b
	c, c2 := braid.Identity(fam, param), braid.Identity(fam, param)
	p := b.Inf()

	for j := 0; j <= k; {
		if b2.CanonicalLength() == 0 {
			return b2, c
		}
		lf := b2.FirstFactor().DeltaConjugate(b2.Inf())
		c2 = braid.Multiply(c2, braid.FromFactor(fam, param, lf))
		b2 = conjugacy.Cycle(b2)
		if b2.Inf() == p {
			j++
		} else {
			b3 = b2
			p = b2.Inf()
			j = 0
			c = braid.Multiply(c, c2)
			c2 = braid.Identity(fam, param)
		}
	}

	b2 = b3
	l := b2.Sup()
	c2 = braid.Identity(fam, param)
	for j := 0; j <= k; {
		c2 = braid.Multiply(braid.FromFactor(fam, param, b2.FinalFactor()), c2)
		b2 = conjugacy.Decycle(b2)
		if b2.Sup() == l {
			j++
		} else {
			b3 = b2
			l = b2.Sup()
			j = 0
			c = braid.Multiply(c, braid.Inverse(c2))
			c2 = braid.Identity(fam, param)
		}
	}

	return b3, c
}

// BuildSSS computes the full super summit set of b via BFS: seed the
// queue with SendToSuperSummit(b), then for each dequeued vertex
// conjugate by every element of its minimal-conjugator set (minconj,
// SSS flavour), enqueuing any not-yet-seen result. Grounded on
// super_summit.hpp's super_summit_set.
func BuildSSS[P any, F family.Factor[F]](b braid.Braid[P, F], opts ...Option) (*SuperSummitSet[P, F], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	sss := &SuperSummitSet[P, F]{index: make(map[uint64][]int)}
	start := SendToSuperSummit(b)
	sss.insert(start)
	o.OnDiscover(0)

	queue := []braid.Braid[P, F]{start}
	for len(queue) > 0 {
		if err := cancelled(o.Ctx); err != nil {
			return nil, err
		}

		cur := queue[0]
		queue = queue[1:]

		mins, err := minconj.MinSet(cur, minconj.SSS)
		if err != nil {
			return nil, err
		}
		for _, f := range mins {
			next := braid.ToLCF(braid.Conjugate(cur, f))
			if sss.Member(next) {
				continue
			}
			idx := sss.insert(next)
			o.OnDiscover(idx)
			if o.MaxVertices > 0 && sss.Len() >= o.MaxVertices {
				return sss, nil
			}
			queue = append(queue, next)
		}
	}

	return sss, nil
}
