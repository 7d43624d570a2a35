package analysis

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/arborly/axiomgraph/filter"
	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/logparser"
	"github.com/arborly/axiomgraph/matchloop"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/subgraph"
	"github.com/arborly/axiomgraph/visible"
)

// ErrNotLoaded is returned by any Session operation attempted before Load
// has succeeded.
var ErrNotLoaded = errors.New("analysis: session has no loaded model")

// Session is the single entry point a host (CLI or otherwise) drives: it
// owns the model, the raw graph built from it, the subgraph index, the
// filter engine, and the most recent matching-loop search.
type Session struct {
	log zerolog.Logger

	m                     *model.Model
	graph                 *rawgraph.Graph
	index                 *subgraph.Index
	eng                   *filter.Engine
	loops                 []matchloop.Result
	minMatchingLoopLength int
}

// New returns an empty Session. Call Load before any other method.
func New(log zerolog.Logger) *Session {
	return &Session{log: log, eng: filter.NewEngine(), minMatchingLoopLength: visible.MinMatchingLoopLength}
}

// SetMinMatchingLoopLength overrides the minimum node count a longest path
// must reach to register as a matching-loop endpoint in later
// SearchMatchingLoops calls. New sessions default to
// visible.MinMatchingLoopLength.
func (s *Session) SetMinMatchingLoopLength(n int) {
	s.minMatchingLoopLength = n
}

// Load reads a trace log from r, builds the model and raw graph, and
// resets the filter stack. Non-fatal parser errors are logged at Warn and
// do not abort the load; an I/O error reading r, or a structural error
// building the raw graph from the resulting model, is logged at Error and
// returned.
func (s *Session) Load(r io.Reader) error {
	m, res, err := logparser.Load(r)
	if err != nil {
		s.log.Error().Err(err).Msg("reading trace log")
		return err
	}
	for _, e := range res.Errors {
		s.log.Warn().Int("line", e.Line).Err(e.Err).Msg("skipping malformed record")
	}

	g, err := rawgraph.Build(m)
	if err != nil {
		s.log.Error().Err(err).Msg("building raw graph from model")
		return err
	}

	s.m = m
	s.graph = g
	s.index = subgraph.Build(g)
	s.eng = filter.NewEngine()
	s.loops = nil
	s.log.Info().
		Int("instantiations", m.NumInstantiations()).
		Int("raw_nodes", g.NumNodes()).
		Msg("loaded trace log")
	return nil
}

// ApplyFilters pushes fs onto the session's filter stack (deduplicated by
// structural hash, preserving whatever was already pushed) and replays the
// whole stack from scratch.
func (s *Session) ApplyFilters(fs ...filter.Filter) (filter.Output, error) {
	if s.graph == nil {
		return filter.Output{}, ErrNotLoaded
	}
	for _, f := range fs {
		s.eng.Push(f)
	}
	return s.eng.Apply(s.graph, s.index, s.m)
}

// VisibleGraph returns the contracted, visibility-masked projection of the
// current raw graph, reflecting whatever filters have been applied so far.
func (s *Session) VisibleGraph() (*visible.Graph, error) {
	if s.graph == nil {
		return nil, ErrNotLoaded
	}
	return visible.Build(s.graph), nil
}

// SearchMatchingLoops runs matching-loop detection over the full raw graph
// and records the result for later NthMatchingLoop / filter-stack use.
func (s *Session) SearchMatchingLoops() ([]matchloop.Result, error) {
	if s.graph == nil {
		return nil, ErrNotLoaded
	}
	results, err := matchloop.SearchMatchingLoops(s.graph, s.m, s.minMatchingLoopLength)
	if err != nil {
		s.log.Error().Err(err).Msg("searching for matching loops")
		return nil, err
	}
	s.loops = results
	s.eng.SetMatchingLoops(results)
	s.log.Info().Int("loops_found", len(results)).Msg("matching-loop search complete")
	return results, nil
}

// NthMatchingLoop returns the n-th ranked matching loop's abstract graph
// from the most recent SearchMatchingLoops call.
func (s *Session) NthMatchingLoop(n int) (*matchloop.Graph, bool) {
	return matchloop.NthMatchingLoop(s.loops, n)
}

// LongestPathThrough returns the longest path through v in the current
// visible graph, from a root to a sink.
func (s *Session) LongestPathThrough(v idx.RawNodeIndex) ([]idx.RawNodeIndex, error) {
	if s.graph == nil {
		return nil, ErrNotLoaded
	}
	return filter.LongestPathThrough(s.graph, v), nil
}

// Model exposes the underlying parsed model, mainly so a host can render
// quantifier names or term strings alongside graph output.
func (s *Session) Model() *model.Model { return s.m }

// Graph exposes the underlying raw graph for callers needing lower-level
// access (e.g. gonumexport).
func (s *Session) Graph() *rawgraph.Graph { return s.graph }
