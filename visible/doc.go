// Package visible implements C6: a read-through projection of the raw graph
// under its current visibility mask. Hidden nodes are never copied into the
// projection; instead, each edge through a run of hidden nodes is contracted
// into a single edge between the nearest visible endpoints, annotated with a
// representative hidden chain for later blame lookups. The result is itself
// a DAG over only the currently visible raw nodes.
//
// A VisibleGraph is a disposable side structure: it holds no state of its
// own beyond RawNodeIndex references into the raw arena, and Build is cheap
// enough to call again from scratch whenever the visibility mask changes.
package visible
