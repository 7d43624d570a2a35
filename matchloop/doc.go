// Package matchloop implements C8: locating matching loops (patterns of
// instantiations that keep re-triggering themselves) and folding each one
// into an abstract instantiation graph via term anti-unification.
//
// SearchMatchingLoops runs the full per-quantifier longest-path search over
// the raw graph and returns one abstract graph per loop found, ranked by
// descending endpoint depth. BuildAbstractGraph does the anti-unification
// fold in isolation, given just the raw nodes belonging to one loop.
package matchloop
