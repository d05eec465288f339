package conjtest

import (
	"github.com/go-garside/garcide/braid"
	"github.com/go-garside/garcide/family"
	"github.com/go-garside/garcide/sets"
)

// AreConjugate reports whether u and v represent conjugate elements,
// via super summit set membership: build SSS(u) and test whether
// sending v to its super summit conjugate lands inside it. Grounded on
// super_summit.hpp's are_conjugate.
func AreConjugate[P any, F family.Factor[F]](u, v braid.Braid[P, F]) (bool, error) {
	sss, err := sets.BuildSSS(u)
	if err != nil {
		return false, err
	}
	return sss.Member(sets.SendToSuperSummit(v)), nil
}

// AreConjugateSC is AreConjugate's finer-grained analogue using the
// set of sliding circuits instead of the super summit set.
func AreConjugateSC[P any, F family.Factor[F]](u, v braid.Braid[P, F]) (bool, error) {
	sc, err := sets.BuildSC(u)
	if err != nil {
		return false, err
	}
	return sc.Member(sets.SendToSC(v)), nil
}
