// Package conjtest decides conjugacy between two braids, reconstructs
// a witnessing conjugator, and computes a centralizer generating set.
// Grounded on braiding.cpp's AreConjugate/AreConjugateSC and
// Centralizer functions, built on top of the set closures in sets.
package conjtest
