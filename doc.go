// Package garcide (go-garside) is a computational library for Garside
// groups — groups, including braid groups, whose elements admit a
// canonical normal form built from a lattice of simple elements and a
// central Garside element Δ.
//
// 🚀 What is garcide?
//
//	A pure-Go library that decides conjugacy, computes conjugacy
//	invariants, and enumerates conjugacy-class representatives:
//
//	  • Normal forms        — left/right canonical form, meet, join
//	  • Conjugation         — cycling, decycling, cyclic sliding
//	  • Minimal conjugators — min_SSS, min_USS, min_SC
//	  • Set closures        — Super/Ultra Summit Sets, Set of Sliding Circuits
//	  • Decision            — conjugacy test with witness, centralizer
//	  • Classifiers         — Thurston type, rigidity
//
// Everything is organized under one package per concern:
//
//	family/         — the Garside-family contract a concrete group implements
//	braid/          — canonical forms and the group operations built on them
//	conjugacy/      — cycling, decycling, cyclic sliding, transport, pullback
//	minconj/        — minimal simple conjugators (SSS/USS/SC flavours)
//	sets/           — breadth-first closure of SSS, USS, and SC as graphs
//	conjtest/       — conjugacy decision, witness reconstruction, centralizer
//	classify/       — Thurston type and rigidity classifiers
//	families/artin/ — a reference family: the braid group, Artin presentation
//
// garcide ships no CLI, no pretty-printer, and no persistence: those are
// external collaborators. A concrete Garside family only needs to
// implement family.Factor and family.Family; families/artin is the
// reference implementation used by this module's own tests.
package garcide
