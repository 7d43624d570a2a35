// Package rawgraph implements C3: the directed graph with one node per
// parser event (instantiation, e-node, given equality, transitive
// equality). Edges encode "produced-by / used-by" causality: a dependency's
// raw node always points at the node it enables, so a topological walk in
// edge direction visits causes before effects.
//
// Build constructs a Graph once from a fully-loaded model.Model, by
// replaying its Emissions log in the exact order the parser appended rows
// — construction never reorders events. After Build returns,
// the node and edge sets are immutable: only the per-node Disabled/Visible/
// MinDepth/MaxDepth/Subgraph/PartOfML fields are mutated afterwards, by the
// subgraph, dataflow, filter and matchloop packages.
package rawgraph
