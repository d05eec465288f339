package conjtest

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/family"
	"github.com/go-garside/garcide/sets"
)

// AreConjugateWithWitness decides conjugacy via the ultra summit set
// and, when true, reconstructs a witnessing conjugator C with
// C⁻¹·u·C = v. Grounded on braiding.cpp's AreConjugate(B1, B2, C):
// send both u and v to their ultra summit conjugates BT1/BT2 with
// conjugators C1/C2; reject on canonical-length or sup mismatch;
// build USS(BT1) with spanning-tree annotations; find BT2 inside it
// and read off its tree-path conjugator D (which is the combined
// root-to-orbit and within-orbit factor this package's
// UltraSummitSet.TreePath already assembles); the witness is
// C = C1 · D · C2⁻¹.
func AreConjugateWithWitness[P any, F family.Factor[F]](u, v braid.Braid[P, F]) (bool, braid.Braid[P, F], error) {
	bt1, c1 := sets.SendToUSSWithConjugator(u)
	bt2, c2 := sets.SendToUSSWithConjugator(v)

	if bt1.CanonicalLength() != bt2.CanonicalLength() || bt1.Sup() != bt2.Sup() {
		var zero braid.Braid[P, F]
		return false, zero, nil
	}

	if bt1.CanonicalLength() == 0 {
		return true, braid.Multiply(c1, braid.Inverse(c2)), nil
	}

	uss, err := sets.BuildUSS(bt1)
	if err != nil {
		var zero braid.Braid[P, F]
		return false, zero, err
	}
	if !uss.Member(bt2) {
		var zero braid.Braid[P, F]
		return false, zero, nil
	}

	d := uss.TreePath(bt2)
	return true, braid.Multiply(braid.Multiply(c1, d), braid.Inverse(c2)), nil
}

// AreConjugateWithWitnessSC is AreConjugateWithWitness's analogue
// using the set of sliding circuits, grounded on braiding.cpp's
// AreConjugateSC.
func AreConjugateWithWitnessSC[P any, F family.Factor[F]](u, v braid.Braid[P, F]) (bool, braid.Braid[P, F], error) {
	bt1, c1 := sets.SendToSCWithConjugator(u)
	bt2, c2 := sets.SendToSCWithConjugator(v)

	if bt1.CanonicalLength() != bt2.CanonicalLength() || bt1.Sup() != bt2.Sup() {
		var zero braid.Braid[P, F]
		return false, zero, nil
	}

	if bt1.CanonicalLength() == 0 {
		return true, braid.Multiply(c1, braid.Inverse(c2)), nil
	}

	sc, err := sets.BuildSC(bt1)
	if err != nil {
		var zero braid.Braid[P, F]
		return false, zero, err
	}
	if !sc.Member(bt2) {
		var zero braid.Braid[P, F]
		return false, zero, nil
	}

	d := sc.TreePath(bt2)
	return true, braid.Multiply(braid.Multiply(c1, d), braid.Inverse(c2)), nil
}
