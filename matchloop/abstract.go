package matchloop

import (
	"sort"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
)

// matchedTerm is the running anti-unified e-node term merged into one
// positional slot of an abstract instantiation, plus the abstract
// instantiation (if any) that created the most recently merged e-node.
type matchedTerm struct {
	term    idx.TermIdx
	creator *AbstractKey
}

// equalityEntry is the running anti-unified (from, to) pair merged into one
// positional slot, plus the union of abstract instantiations that justify
// some equality step folded into it.
type equalityEntry struct {
	from, to idx.TermIdx
	creators map[AbstractKey]struct{}
}

// abstractInst accumulates matchedTerm/equalityEntry slots for one (quant,
// pattern) key, merged across every raw instantiation node that shares it.
type abstractInst struct {
	key          AbstractKey
	matchedTerms map[int]*matchedTerm
	equalities   map[int]*equalityEntry
}

// BuildAbstractGraph folds the raw instantiation nodes in members into one
// abstract instantiation graph by anti-unifying their matched terms and
// justifying equalities. members need not be sorted.
func BuildAbstractGraph(g *rawgraph.Graph, m *model.Model, members []idx.RawNodeIndex) (*Graph, error) {
	abstracts := make(map[AbstractKey]*abstractInst)

	for _, v := range members {
		node := g.Node(v)
		if !node.IsInstantiation() {
			continue
		}
		instID := node.Kind.Inst

		q, p, err := m.QuantPatternOf(instID)
		if err != nil {
			continue
		}
		key := AbstractKey{Quant: q, Pattern: p}
		ai := abstracts[key]
		if ai == nil {
			ai = &abstractInst{key: key, matchedTerms: make(map[int]*matchedTerm), equalities: make(map[int]*equalityEntry)}
			abstracts[key] = ai
		}

		match, err := m.MatchOf(instID)
		if err != nil {
			continue
		}

		slot := 0
		for _, tm := range match.TriggerMatches() {
			if err := mergeMatchedTerm(ai, m, slot, tm.ENode); err != nil {
				return nil, err
			}
			slot++
			for _, eq := range tm.Equalities {
				if err := mergeEquality(ai, m, slot, eq); err != nil {
					return nil, err
				}
				slot++
			}
		}
	}

	return renderGraph(abstracts), nil
}

func creatorKeyOf(m *model.Model, instID *idx.InstIdx) *AbstractKey {
	if instID == nil {
		return nil
	}
	q, p, err := m.QuantPatternOf(*instID)
	if err != nil {
		return nil
	}
	return &AbstractKey{Quant: q, Pattern: p}
}

func mergeMatchedTerm(ai *abstractInst, m *model.Model, slot int, enodeID idx.ENodeIdx) error {
	en, err := m.ENode(enodeID)
	if err != nil {
		return err
	}
	creator := creatorKeyOf(m, en.CreatedBy)

	existing, ok := ai.matchedTerms[slot]
	if !ok {
		ai.matchedTerms[slot] = &matchedTerm{term: en.Owner, creator: creator}
		return nil
	}
	generalised, err := m.Terms.Generalise(existing.term, en.Owner)
	if err != nil {
		return err
	}
	existing.term = generalised
	existing.creator = creator
	return nil
}

func mergeEquality(ai *abstractInst, m *model.Model, slot int, eqID idx.EqTransIdx) error {
	creatorInsts := m.CreatorInsts(eqID)
	if len(creatorInsts) == 0 {
		return nil
	}
	creators := make(map[AbstractKey]struct{})
	for _, instID := range creatorInsts {
		id := instID
		key := creatorKeyOf(m, &id)
		if key == nil {
			continue
		}
		creators[*key] = struct{}{}
	}
	if len(creators) == 0 {
		return nil
	}

	eq, err := m.Equality(eqID)
	if err != nil {
		return err
	}
	fromEn, err := m.ENode(eq.From)
	if err != nil {
		return err
	}
	toEn, err := m.ENode(eq.To)
	if err != nil {
		return err
	}

	existing, ok := ai.equalities[slot]
	if !ok {
		ai.equalities[slot] = &equalityEntry{from: fromEn.Owner, to: toEn.Owner, creators: creators}
		return nil
	}
	genFrom, err := m.Terms.Generalise(existing.from, fromEn.Owner)
	if err != nil {
		return err
	}
	genTo, err := m.Terms.Generalise(existing.to, toEn.Owner)
	if err != nil {
		return err
	}
	existing.from = genFrom
	existing.to = genTo
	for k := range creators {
		existing.creators[k] = struct{}{}
	}
	return nil
}

func renderGraph(abstracts map[AbstractKey]*abstractInst) *Graph {
	keys := make([]AbstractKey, 0, len(abstracts))
	for k := range abstracts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Quant != keys[j].Quant {
			return keys[i].Quant < keys[j].Quant
		}
		return keys[i].Pattern < keys[j].Pattern
	})

	g := newGraph()
	for _, key := range keys {
		ai := abstracts[key]
		qi := g.ensureQI(key)

		slots := make([]int, 0, len(ai.matchedTerms))
		for s := range ai.matchedTerms {
			slots = append(slots, s)
		}
		sort.Ints(slots)
		for _, s := range slots {
			mt := ai.matchedTerms[s]
			en := g.ensureENode(mt.term)
			g.addEdge(en, qi)
			if mt.creator != nil {
				creatorQI := g.ensureQI(*mt.creator)
				g.addEdge(creatorQI, en)
			}
		}

		eqSlots := make([]int, 0, len(ai.equalities))
		for s := range ai.equalities {
			eqSlots = append(eqSlots, s)
		}
		sort.Ints(eqSlots)
		for _, s := range eqSlots {
			eq := ai.equalities[s]
			if eq.from == eq.to {
				continue
			}
			eqNode := g.ensureEquality(eq.from, eq.to)
			g.addEdge(eqNode, qi)
			creators := make([]AbstractKey, 0, len(eq.creators))
			for c := range eq.creators {
				creators = append(creators, c)
			}
			sort.Slice(creators, func(i, j int) bool {
				if creators[i].Quant != creators[j].Quant {
					return creators[i].Quant < creators[j].Quant
				}
				return creators[i].Pattern < creators[j].Pattern
			})
			for _, c := range creators {
				creatorQI := g.ensureQI(c)
				g.addEdge(creatorQI, eqNode)
			}
		}
	}
	return g
}
