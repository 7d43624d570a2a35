package filter

import (
	"fmt"
	"hash/fnv"

	"github.com/arborly/axiomgraph/dataflow"
	"github.com/arborly/axiomgraph/idx"
)

// Kind enumerates the canonical filter catalogue.
type Kind uint8

const (
	MaxNodeIdx Kind = iota
	IgnoreTheorySolving
	IgnoreQuantifier
	IgnoreAllButQuantifier
	MaxInsts
	MaxBranching
	ShowNeighbours
	VisitSourceTree
	VisitSubTreeWithRoot
	MaxDepth
	ShowLongestPath
	ShowNamedQuantifier
	SelectNthMatchingLoop
	ShowMatchingLoopSubgraph
)

// Filter is one entry on the stack: a pure value carrying only the kind and
// whichever parameters it needs. Unused fields for a given Kind are zero.
type Filter struct {
	Kind Kind

	N       int
	Quant   idx.QuantIdx
	Node    idx.RawNodeIndex
	Dir     dataflow.Direction
	Keep    bool
	Name    string
}

// Hash returns a stable structural hash used to dedupe the stack: two
// filters with the same Kind and parameters hash identically regardless of
// when they were constructed.
func (f Filter) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%d|%d|%d|%t|%s", f.Kind, f.N, f.Quant, f.Node, f.Dir, f.Keep, f.Name)
	return h.Sum64()
}
