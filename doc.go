// Command-free root of the axiomgraph module. Each subpackage is
// documented on its own: idx (index types), terms (term/string table),
// model (parser-facing data model), logparser (log tokeniser), rawgraph
// (C3 raw dependency graph), subgraph (C4 components and reachability),
// dataflow (C5 fixed-point propagator), visible (C6 contracted graph),
// filter (C7 filter engine), matchloop (C8 matching-loop search),
// analysis (operation surface), gonumexport (graph interchange) and
// cmd/axiomgraph (CLI host).
package axiomgraph
