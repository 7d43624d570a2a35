package filter

import (
	"github.com/arborly/axiomgraph/dataflow"
	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/matchloop"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/subgraph"
	"github.com/arborly/axiomgraph/visible"
)

// Output collects the non-mask results a filter stack may additionally
// produce: ShowLongestPath yields LongestPath, and
// SelectNthMatchingLoop yields MatchingLoopGeneralizedTerms.
type Output struct {
	LongestPath                 []idx.RawNodeIndex
	MatchingLoopGeneralizedTerms []string
}

// Engine holds the ordered filter stack and the matching-loop results a
// prior SearchMatchingLoops call produced, since two filters in the
// catalogue reference loop membership.
type Engine struct {
	stack   []Filter
	seen    map[uint64]struct{}
	loops   []matchloop.Result
}

// NewEngine returns an empty filter engine.
func NewEngine() *Engine {
	return &Engine{seen: make(map[uint64]struct{})}
}

// SetMatchingLoops records the most recent SearchMatchingLoops result, used
// by SelectNthMatchingLoop and ShowMatchingLoopSubgraph.
func (e *Engine) SetMatchingLoops(loops []matchloop.Result) { e.loops = loops }

// Push appends f to the stack, deduplicating by structural hash.
func (e *Engine) Push(f Filter) {
	h := f.Hash()
	if _, ok := e.seen[h]; ok {
		return
	}
	e.seen[h] = struct{}{}
	e.stack = append(e.stack, f)
}

// Stack returns the current filter stack, in application order.
func (e *Engine) Stack() []Filter { return e.stack }

// Apply resets the mask to "all enabled, all visible" and replays the whole
// stack bottom-up, . It is always a full recomputation: Apply
// never depends on what a previous Apply call left behind.
func (e *Engine) Apply(g *rawgraph.Graph, ix *subgraph.Index, m *model.Model) (Output, error) {
	g.ResetDisabledTo(func(idx.RawNodeIndex, *rawgraph.Node) bool { return false })
	g.ResetVisibilityTo(true)
	dataflow.RunMinDepth(g, ix)

	var out Output
	for _, f := range e.stack {
		produced, err := e.applyOne(g, ix, m, f)
		if err != nil {
			return Output{}, err
		}
		if produced.LongestPath != nil {
			out.LongestPath = produced.LongestPath
		}
		if produced.MatchingLoopGeneralizedTerms != nil {
			out.MatchingLoopGeneralizedTerms = produced.MatchingLoopGeneralizedTerms
		}
	}
	return out, nil
}

func (e *Engine) applyOne(g *rawgraph.Graph, ix *subgraph.Index, m *model.Model, f Filter) (Output, error) {
	switch f.Kind {
	case MaxNodeIdx:
		applyMaxNodeIdx(g, f.N)
	case IgnoreTheorySolving:
		applyIgnoreTheorySolving(g, m)
	case IgnoreQuantifier:
		applyIgnoreQuantifier(g, m, f.Quant)
	case IgnoreAllButQuantifier:
		applyIgnoreAllButQuantifier(g, m, f.Quant)
	case MaxInsts:
		applyMaxInsts(g, m, f.N)
	case MaxBranching:
		applyMaxBranching(g, f.N)
	case ShowNeighbours:
		applyShowNeighbours(g, f.Node, f.Dir)
	case VisitSourceTree:
		return Output{}, applyVisitTree(g, ix, f.Node, f.Keep, dataflow.Backward)
	case VisitSubTreeWithRoot:
		return Output{}, applyVisitTree(g, ix, f.Node, f.Keep, dataflow.Forward)
	case MaxDepth:
		applyMaxDepth(g, f.N)
	case ShowLongestPath:
		path := LongestPathThrough(g, f.Node)
		return Output{LongestPath: path}, nil
	case ShowNamedQuantifier:
		applyShowNamedQuantifier(g, m, f.Name)
	case SelectNthMatchingLoop:
		terms := applySelectNthMatchingLoop(g, m, e.loops, f.N)
		return Output{MatchingLoopGeneralizedTerms: terms}, nil
	case ShowMatchingLoopSubgraph:
		applyShowMatchingLoopSubgraph(g, len(e.loops))
	}
	return Output{}, nil
}

// visibleGraphFor is a small convenience so filters that need a read of the
// current contracted graph (MaxBranching, ShowLongestPath) don't each
// reimplement the call.
func visibleGraphFor(g *rawgraph.Graph) *visible.Graph { return visible.Build(g) }
