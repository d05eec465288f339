package minconj

import "errors"

// ErrInvariantViolation is returned by MinUSS when both its summit and
// main-pullback phases are exhausted without producing a return that
// satisfies the left-meet acceptance condition. The source this library
// is modeled on treats this as impossible and aborts the process; this
// library surfaces it as an error instead (per the design decision to
// never abort a caller's process on an internal invariant failure),
// while still treating it as a bug report rather than a normal result.
var ErrInvariantViolation = errors.New("minconj: min_USS exhausted both phases without a qualifying return")

// Flavour selects which summit level MinSet computes minimal
// conjugators for.
type Flavour int

const (
	// SSS computes super-summit-level minimal conjugators.
	SSS Flavour = iota
	// USS computes ultra-summit-level minimal conjugators.
	USS
	// SC computes sliding-circuit-level minimal conjugators.
	SC
)

func (f Flavour) String() string {
	switch f {
	case USS:
		return "USS"
	case SC:
		return "SC"
	default:
		return "SSS"
	}
}
