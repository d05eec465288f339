// Package conjugacy implements the per-step conjugacy-reducing
// operators a summit-set search iterates: cycling, decycling, cyclic
// sliding, their preferred prefix/suffix, and the transport/pullback
// maps that lift a simple conjugator across one step of either
// trajectory.
//
// min_summit and min_super_summit also live here rather than in
// minconj, because the cycling pullback (§4.4) calls min_super_summit
// internally — putting both the C4 operators and the SSS-level
// minimal conjugator in one package breaks what would otherwise be a
// cyclic import between conjugacy and minconj. minconj imports this
// package to build min_USS and min_SC on top.
package conjugacy
