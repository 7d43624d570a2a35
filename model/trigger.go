package model

import "github.com/arborly/axiomgraph/idx"

// TriggerMatch explains how one position of a pattern was satisfied: the
// e-node that was matched, followed by whatever chain of transitive
// equalities were used to rewrite it into that shape.
type TriggerMatch struct {
	ENode       idx.ENodeIdx
	Equalities  []idx.EqTransIdx
}

// TriggerMatches decodes Match.Blamed into one TriggerMatch per matched
// pattern position. Blamed is a flat sequence where every run starts with a
// Term blame (the matched e-node) followed by zero or more Equality blames
// (the rewrites applied to reach it) — reproducing the original
// implementation's slicing exactly (SPEC_FULL.md §5), since matchloop's
// per-position folding depends on this exact shape.
func (m *Match) TriggerMatches() []TriggerMatch {
	var out []TriggerMatch
	var current *TriggerMatch
	for _, b := range m.Blamed {
		if !b.IsEquality {
			if current != nil {
				out = append(out, *current)
			}
			current = &TriggerMatch{ENode: b.Term}
			continue
		}
		if current != nil {
			current.Equalities = append(current.Equalities, b.Eq)
		}
	}
	if current != nil {
		out = append(out, *current)
	}
	return out
}
