// Package analysis wires the raw graph, subgraph index, dataflow engine,
// visible-graph projection, filter engine and matching-loop search behind
// the handful of operations a host (CLI or otherwise) actually needs: load
// a log, apply a filter stack, read back the visible graph, search for and
// select matching loops, and fetch the longest path through a node.
package analysis
