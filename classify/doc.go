// Package classify implements the braid-group-specific classifiers:
// Thurston type (periodic / reducible / pseudo-Anosov) via the
// circle-preservation test on each ultra summit orbit, and rigidity,
// the longest LCF prefix preserved under one step of τ-conjugated
// multiplication. Grounded on braiding.cpp's ThurstonType/Circles/
// Tableau and Rigidity.
package classify
