// Package subgraph implements C4: partitioning the immutable raw graph into
// weakly-connected components, numbering each component's nodes in
// topological order, and precomputing forward/backward reachability as one
// bitset per node so later passes can answer in_closure/reachable_from in
// time bounded by bitset population rather than graph size.
package subgraph
