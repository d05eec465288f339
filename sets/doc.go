// Package sets builds the three conjugacy-class closures a summit-set
// decision procedure needs — the Super Summit Set, the Ultra Summit
// Set, and the Set of Sliding Circuits — as BFS closures over the
// per-step operators in conjugacy and the minimal-conjugator search in
// minconj. Grounded on super_summit.hpp's super_summit_set and
// braiding.cpp's USS/SC builders, restructured around the teacher's
// bfs package shape: a functional-options BFSOptions-alike, plain
// index-driven loops over a growing slice of discovered vertices, and
// a context checked once per outer loop iteration.
package sets
