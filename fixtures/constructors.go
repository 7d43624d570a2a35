package fixtures

import "github.com/arborly/axiomgraph/model"

// LinearChain appends length instantiations of quantName to the builder's
// current chain, each blaming the e-node the previous one yielded (or
// b.Root, for the first). It leaves b.Root pointing at the final yielded
// e-node so a later constructor can continue the chain, interleave a
// different quantifier from the same point, or close a loop.
func LinearChain(quantName string, length int) Constructor {
	return func(b *Builder) error {
		q := b.quant(quantName)
		pattern := b.M.Terms.Mk(quantName + "-pattern")
		for i := 0; i < length; i++ {
			matchID := b.M.AddMatch(model.Match{
				Kind:   model.MatchKind{Tag: model.MatchQuantifier, Quant: q, Pattern: pattern},
				Blamed: []model.BlameKind{{Term: b.Root}},
			})
			instID := b.M.AddInstantiation(model.Instantiation{Match: matchID})
			b.Root = b.M.AddENode(b.M.Terms.Mk(quantName+"-step"), &instID)
		}
		return nil
	}
}

// SelfLoop appends a single instantiation of quantName. On its own this is
// a matching loop of length one — too short to be reported under the
// default minimum length of three — so it is most useful composed with
// other constructors to test that short chains don't spuriously register.
func SelfLoop(quantName string) Constructor {
	return LinearChain(quantName, 1)
}

// InterleavedLoops alternates one instantiation of each name in quantNames,
// length times through the full cycle, all growing from the same shared
// e-node chain. It exercises the per-quantifier endpoint search against a
// graph where multiple quantifiers' instantiations are causally entangled
// rather than disjoint.
func InterleavedLoops(quantNames []string, length int) Constructor {
	return func(b *Builder) error {
		for round := 0; round < length; round++ {
			for _, name := range quantNames {
				if err := LinearChain(name, 1)(b); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
