package family

// LeftDivides reports whether a left-divides b, i.e. a ∧ b = a.
func LeftDivides[F Factor[F]](a, b F) bool {
	return a.LeftMeet(b).Equal(a)
}

// RightMeet returns the greatest c with receiver ≥ c and other ≥ c on
// the right, derived from LeftMeet via the family's Reverse
// anti-automorphism: right_meet(a, b) = reverse(left_meet(reverse(a), reverse(b))).
func RightMeet[F Factor[F]](a, b F) F {
	return a.Reverse().LeftMeet(b.Reverse()).Reverse()
}

// LeftJoin returns the least c with receiver ≤ c and other ≤ c,
// derived from the Garside complement identity: a ≤ c exactly when
// c.LeftComplement() right-divides a.LeftComplement(), so a ∨ b is the
// RightComplement of the right meet of the two LeftComplements.
func LeftJoin[F Factor[F]](a, b F) F {
	return RightMeet(a.LeftComplement(), b.LeftComplement()).RightComplement()
}

// RightJoin is the dual of LeftJoin, built via Reverse the same way
// RightMeet is built from LeftMeet.
func RightJoin[F Factor[F]](a, b F) F {
	return LeftJoin(a.Reverse(), b.Reverse()).Reverse()
}

// IsIdentity reports whether f is the lattice's 0. Provided as a free
// function alongside the Factor method for symmetry with IsDelta.
func IsIdentity[F Factor[F]](f F) bool { return f.IsIdentity() }

// IsDelta reports whether f is the Garside element Δ for the family
// that produced it (determined structurally by the factor itself).
func IsDelta[F Factor[F]](f F) bool { return f.IsDelta() }
