// Package gonumexport converts this repository's own graph
// representations (visible.Graph, matchloop.Graph) into
// gonum.org/v1/gonum/graph/simple.DirectedGraph, so a host can hand a
// result to gonum's layout, traversal or export routines instead of
// reimplementing them.
package gonumexport
