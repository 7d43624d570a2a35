package rawgraph

import (
	"fmt"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
)

// Build replays m.Emissions() in order and constructs the raw dependency
// graph. One raw node is created per emission; edges are wired according to
// the causal relation the event implies:
//
//   - an instantiation's blame trail: blamed e-node/equality -> instantiation
//   - an e-node's creation: creating instantiation -> e-node
//   - a literal/congruence equality's creation: creating instantiation -> equality
//   - a transitive equality's composition: each constituent step -> the
//     composed equality
//
// Any blame or composition reference to an event not yet seen is a fatal
// ErrMissingBlame: the log is assumed causal, so every dependency must have
// already been emitted.
func Build(m *model.Model) (*Graph, error) {
	g := NewGraph()

	for _, em := range m.Emissions() {
		switch em.Kind {
		case idx.KindInstantiation:
			if err := buildInstantiation(g, m, em.Inst); err != nil {
				return nil, err
			}
		case idx.KindENode:
			if err := buildENode(g, m, em.ENode); err != nil {
				return nil, err
			}
		case idx.KindGivenEquality:
			if err := buildGivenEquality(g, m, em.Eq); err != nil {
				return nil, err
			}
		case idx.KindTransEquality:
			if err := buildTransEquality(g, m, em.Eq); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func buildInstantiation(g *Graph, m *model.Model, instID idx.InstIdx) error {
	raw := g.addNode(NodeKind{Tag: idx.KindInstantiation, Inst: instID})
	g.instToRaw[instID] = raw

	match, err := m.MatchOf(instID)
	if err != nil {
		return fmt.Errorf("rawgraph: build instantiation %s: %w", instID, err)
	}

	for _, blame := range match.Blamed {
		if blame.IsEquality {
			from, ok := g.RawOfEquality(blame.Eq)
			if !ok {
				return fmt.Errorf("%w: instantiation %s blames equality %s", ErrMissingBlame, instID, blame.Eq)
			}
			if err := g.addEdge(from, raw, EdgeEqualityBlame); err != nil {
				return err
			}
			continue
		}
		from, ok := g.RawOfENode(blame.Term)
		if !ok {
			return fmt.Errorf("%w: instantiation %s blames e-node %s", ErrMissingBlame, instID, blame.Term)
		}
		if err := g.addEdge(from, raw, EdgeTermBlame); err != nil {
			return err
		}
	}
	return nil
}

func buildENode(g *Graph, m *model.Model, enodeID idx.ENodeIdx) error {
	raw := g.addNode(NodeKind{Tag: idx.KindENode, ENode: enodeID})
	g.enodeToRaw[enodeID] = raw

	en, err := m.ENode(enodeID)
	if err != nil {
		return fmt.Errorf("rawgraph: build e-node %s: %w", enodeID, err)
	}
	if en.CreatedBy == nil {
		return nil
	}
	from, ok := g.RawOfInst(*en.CreatedBy)
	if !ok {
		return fmt.Errorf("%w: e-node %s created by unseen instantiation %s", ErrMissingBlame, enodeID, *en.CreatedBy)
	}
	return g.addEdge(from, raw, EdgeYieldsENode)
}

func buildGivenEquality(g *Graph, m *model.Model, eqID idx.EqTransIdx) error {
	raw := g.addNode(NodeKind{Tag: idx.KindGivenEquality, Eq: eqID})
	g.eqToRaw[eqID] = raw

	eq, err := m.Equality(eqID)
	if err != nil {
		return fmt.Errorf("rawgraph: build equality %s: %w", eqID, err)
	}
	if eq.CreatedBy == nil {
		return nil
	}
	from, ok := g.RawOfInst(*eq.CreatedBy)
	if !ok {
		return fmt.Errorf("%w: equality %s created by unseen instantiation %s", ErrMissingBlame, eqID, *eq.CreatedBy)
	}
	return g.addEdge(from, raw, EdgeYieldsEquality)
}

func buildTransEquality(g *Graph, m *model.Model, eqID idx.EqTransIdx) error {
	raw := g.addNode(NodeKind{Tag: idx.KindTransEquality, Eq: eqID})
	g.eqToRaw[eqID] = raw

	eq, err := m.Equality(eqID)
	if err != nil {
		return fmt.Errorf("rawgraph: build equality %s: %w", eqID, err)
	}
	for _, step := range eq.Chain {
		from, ok := g.RawOfEquality(step)
		if !ok {
			return fmt.Errorf("%w: transitive equality %s composed from unseen step %s", ErrMissingBlame, eqID, step)
		}
		if err := g.addEdge(from, raw, EdgeEqualityComposition); err != nil {
			return err
		}
	}
	return nil
}
