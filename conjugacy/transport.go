package conjugacy

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/family"
)

// cyclingConjugator applies Cycle k times to x, returning the result
// and the conjugator c such that c⁻¹·x·c = Cycleᵏ(x): the running
// product of each iterate's leading factor, grounded on
// super_summit.hpp's right_multiply(b2.first().delta_conjugate(...))
// accumulation inside send_to_super_summit.
func cyclingConjugator[P any, F family.Factor[F]](x braid.Braid[P, F], k int) (braid.Braid[P, F], braid.Braid[P, F]) {
	fam, param := x.Family(), x.Param()
	conj := braid.Identity(fam, param)
	for i := 0; i < k; i++ {
		lf := x.FirstFactor().DeltaConjugate(x.Inf())
		conj = braid.Multiply(conj, braid.FromFactor(fam, param, lf))
		x = Cycle(x)
	}
	return x, conj
}

// slidingConjugator is cyclingConjugator's analogue under Slide, using
// the preferred prefix (rather than the leading factor) as the
// per-step conjugator contribution.
func slidingConjugator[P any, F family.Factor[F]](x braid.Braid[P, F], k int) (braid.Braid[P, F], braid.Braid[P, F]) {
	fam, param := x.Family(), x.Param()
	conj := braid.Identity(fam, param)
	for i := 0; i < k; i++ {
		p := PreferredPrefix(x)
		conj = braid.Multiply(conj, braid.FromFactor(fam, param, p))
		x = Slide(x)
	}
	return x, conj
}

// TransportCycling computes the transport of f across one cycling
// step: given b (assumed in its USS) and a simple f such that b^f
// lands back in the summit set, the leading factor of
// first(b)⁻¹·f·first(b^f).
func TransportCycling[P any, F family.Factor[F]](b braid.Braid[P, F], f F) F {
	fam, param := b.Family(), b.Param()
	bf := braid.Conjugate(b, f)
	x := braid.Multiply(
		braid.Multiply(braid.Inverse(braid.FromFactor(fam, param, b.FirstFactor())), braid.FromFactor(fam, param, f)),
		braid.FromFactor(fam, param, bf.FirstFactor()),
	)
	return leadingFactor(x)
}

// ReturnsCycling computes the iterated cycling-transports of f that
// send b back into the cycling trajectory of b^f, up to (and
// including, as the cyclic closure) the first repetition: the trailing
// periodic segment of that sequence.
func ReturnsCycling[P any, F family.Factor[F]](b braid.Braid[P, F], f F) []F {
	n := len(CyclingTrajectory(b))
	_, c1 := cyclingConjugator(b, n)
	fam, param := b.Family(), b.Param()

	var ret []F
	cur := f
	for {
		ret = append(ret, cur)
		bf := braid.Conjugate(b, cur)
		_, c2 := cyclingConjugator(bf, n)
		x := braid.Multiply(
			braid.Multiply(braid.Inverse(c1), braid.FromFactor(fam, param, cur)),
			c2,
		)
		next := leadingFactor(x)
		if idx := indexOfFactor(ret, next); idx >= 0 {
			return ret[idx:]
		}
		cur = next
	}
}

// TransportSliding is TransportCycling's analogue under sliding,
// using the preferred prefix in place of the leading factor.
func TransportSliding[P any, F family.Factor[F]](b braid.Braid[P, F], f F) F {
	fam, param := b.Family(), b.Param()
	p := PreferredPrefix(b)
	bf := braid.Conjugate(b, f)
	p2 := PreferredPrefix(bf)
	x := braid.Multiply(
		braid.Multiply(braid.Inverse(braid.FromFactor(fam, param, p)), braid.FromFactor(fam, param, f)),
		braid.FromFactor(fam, param, p2),
	)
	return leadingFactor(x)
}

// ReturnsSliding is ReturnsCycling's analogue under sliding: the
// running conjugator built from slidingConjugator over one full
// sliding trajectory stands in for the leading-factor accumulator of
// the cycling case.
func ReturnsSliding[P any, F family.Factor[F]](b braid.Braid[P, F], f F) []F {
	n := len(SlidingTrajectory(b))
	_, c1 := slidingConjugator(b, n)
	fam, param := b.Family(), b.Param()

	var ret []F
	cur := f
	for {
		ret = append(ret, cur)
		bf := braid.Conjugate(b, cur)
		_, c2 := slidingConjugator(bf, n)
		x := braid.Multiply(
			braid.Multiply(braid.Inverse(c1), braid.FromFactor(fam, param, cur)),
			c2,
		)
		next := leadingFactor(x)
		if idx := indexOfFactor(ret, next); idx >= 0 {
			return ret[idx:]
		}
		cur = next
	}
}
