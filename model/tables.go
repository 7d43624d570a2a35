package model

import (
	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/terms"
)

// Model is the fully materialised parser output: dense, append-only tables
// plus the term/string table they reference. A parser (package logparser,
// or a test fixture) builds a Model by calling the Add* methods in event-emission
// order; once loaded, a Model is read-only for the lifetime of the analyses
// run against it.
type Model struct {
	Terms   *terms.Table
	Strings *terms.StringTable

	quants    []Quant
	insts     []Instantiation
	mats      []Match
	enodes    []ENode
	eqs       []Equality
	emissions []Emission
}

// NewModel returns an empty Model with a fresh term/string table.
func NewModel() *Model {
	st := terms.NewStringTable()
	return &Model{
		Terms:   terms.NewTable(st),
		Strings: st,
	}
}

// AddQuant appends a quantifier and returns its index.
func (m *Model) AddQuant(name string) idx.QuantIdx {
	id := idx.QuantIdx(len(m.quants))
	m.quants = append(m.quants, Quant{Name: m.Strings.Intern(name)})
	return id
}

// Quant returns the quantifier at id.
func (m *Model) Quant(id idx.QuantIdx) (Quant, error) {
	if int(id) < 0 || int(id) >= len(m.quants) {
		return Quant{}, ErrUnknownQuantifier
	}
	return m.quants[id], nil
}

// QuantName returns the display name of quantifier id.
func (m *Model) QuantName(id idx.QuantIdx) string {
	q, err := m.Quant(id)
	if err != nil {
		return "<unknown>"
	}
	name, _ := m.Strings.Get(q.Name)
	return name
}

// AddENode appends an e-node and returns its index.
func (m *Model) AddENode(owner idx.TermIdx, createdBy *idx.InstIdx) idx.ENodeIdx {
	id := idx.ENodeIdx(len(m.enodes))
	m.enodes = append(m.enodes, ENode{Owner: owner, CreatedBy: createdBy})
	m.emissions = append(m.emissions, Emission{Kind: idx.KindENode, ENode: id})
	if createdBy != nil && int(*createdBy) < len(m.insts) {
		m.insts[*createdBy].YieldsTerms = append(m.insts[*createdBy].YieldsTerms, id)
	}
	return id
}

// ENode returns the e-node at id.
func (m *Model) ENode(id idx.ENodeIdx) (ENode, error) {
	if int(id) < 0 || int(id) >= len(m.enodes) {
		return ENode{}, ErrUnknownENode
	}
	return m.enodes[id], nil
}

// AddEquality appends an equality (literal, congruence or transitive) and
// returns its index.
func (m *Model) AddEquality(eq Equality) idx.EqTransIdx {
	id := idx.EqTransIdx(len(m.eqs))
	m.eqs = append(m.eqs, eq)
	kind := idx.KindGivenEquality
	if eq.Kind == EqTransitive {
		kind = idx.KindTransEquality
	}
	m.emissions = append(m.emissions, Emission{Kind: kind, Eq: id})
	return id
}

// Equality returns the equality at id.
func (m *Model) Equality(id idx.EqTransIdx) (Equality, error) {
	if int(id) < 0 || int(id) >= len(m.eqs) {
		return Equality{}, ErrUnknownEquality
	}
	return m.eqs[id], nil
}

// AddMatch appends a match and returns its index.
func (m *Model) AddMatch(match Match) idx.MatchIdx {
	id := idx.MatchIdx(len(m.mats))
	m.mats = append(m.mats, match)
	return id
}

// Match returns the match at id.
func (m *Model) Match(id idx.MatchIdx) (Match, error) {
	if int(id) < 0 || int(id) >= len(m.mats) {
		return Match{}, ErrUnknownMatch
	}
	return m.mats[id], nil
}

// AddInstantiation appends an instantiation and returns its index.
func (m *Model) AddInstantiation(inst Instantiation) idx.InstIdx {
	id := idx.InstIdx(len(m.insts))
	m.insts = append(m.insts, inst)
	m.emissions = append(m.emissions, Emission{Kind: idx.KindInstantiation, Inst: id})
	return id
}

// Instantiation returns the instantiation at id.
func (m *Model) Instantiation(id idx.InstIdx) (Instantiation, error) {
	if int(id) < 0 || int(id) >= len(m.insts) {
		return Instantiation{}, ErrUnknownInst
	}
	return m.insts[id], nil
}

// NumInstantiations returns the number of instantiations recorded so far.
func (m *Model) NumInstantiations() int { return len(m.insts) }

// MatchOf returns the Match belonging to instantiation id.
func (m *Model) MatchOf(id idx.InstIdx) (Match, error) {
	inst, err := m.Instantiation(id)
	if err != nil {
		return Match{}, err
	}
	return m.Match(inst.Match)
}

// QuantPatternOf returns the (quantifier, pattern) pair an instantiation was
// fired from, or ErrNoQuantifier / ErrNoPattern if the underlying match kind
// lacks either (e.g. MBQI has no pattern, theory-solving has neither).
func (m *Model) QuantPatternOf(id idx.InstIdx) (idx.QuantIdx, idx.TermIdx, error) {
	match, err := m.MatchOf(id)
	if err != nil {
		return idx.QuantIdx(idx.None), idx.TermIdx(idx.None), err
	}
	q, ok := match.Kind.QuantIdxOf()
	if !ok {
		return idx.QuantIdx(idx.None), idx.TermIdx(idx.None), ErrNoQuantifier
	}
	p, ok := match.Kind.PatternOf()
	if !ok {
		return idx.QuantIdx(idx.None), idx.TermIdx(idx.None), ErrNoPattern
	}
	return q, p, nil
}

// CreatorInsts walks an equality's justification chain and returns the set
// of instantiations that created its constituent steps, de-duplicated. A
// Literal/Congruence equality contributes its own CreatedBy (if any); a
// Transitive equality contributes the union across its Chain.
//
// Open question: equalities with From == To are not filtered out
// here — that filtering happens one level up, in matchloop, exactly where
// the original implementation applies it.
func (m *Model) CreatorInsts(id idx.EqTransIdx) []idx.InstIdx {
	seen := make(map[idx.InstIdx]struct{})
	var out []idx.InstIdx
	var walk func(idx.EqTransIdx)
	walk = func(e idx.EqTransIdx) {
		eq, err := m.Equality(e)
		if err != nil {
			return
		}
		if eq.Kind == EqTransitive {
			for _, step := range eq.Chain {
				walk(step)
			}
			return
		}
		if eq.CreatedBy == nil {
			return
		}
		if _, ok := seen[*eq.CreatedBy]; ok {
			return
		}
		seen[*eq.CreatedBy] = struct{}{}
		out = append(out, *eq.CreatedBy)
	}
	walk(id)
	return out
}
