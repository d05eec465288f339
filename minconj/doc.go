// Package minconj computes minimal simple conjugators: the smallest
// simple factor above a given one that sends a braid, already at some
// summit level, to another element of the same level. MinSSS lives in
// conjugacy (see its doc comment for why); this package builds MinUSS
// and MinSC on top, plus MinSet, the deduplicated generating set used
// by the set-closure builders in sets.
package minconj
