// Package dataflow implements C5: a generic fixed-point propagator over one
// subgraph at a time, parameterised by direction (forward or backward) and a
// small capability set (base, transfer, combine, reset). Each instantiated
// analysis — minDepth, maxDepth, NextInsts, NextEnabled — supplies its own
// capability set and is run once per component in topological order (or its
// reverse for backward analyses), visiting every node exactly once with its
// predecessors-in-direction already finalised.
package dataflow
