package model

import "github.com/arborly/axiomgraph/idx"

// Emission records, in append order, which row of which table a parser event
// produced. rawgraph.Build replays this log to construct one raw-graph node
// per parser event, in the exact order the events were emitted — // requires the raw graph builder to "never re-order".
type Emission struct {
	Kind  idx.NodeKindTag
	Inst  idx.InstIdx
	ENode idx.ENodeIdx
	Eq    idx.EqTransIdx
}

// Emissions returns the event log backing raw-graph construction.
func (m *Model) Emissions() []Emission { return m.emissions }
