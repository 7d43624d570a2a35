package fixtures

import (
	"fmt"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
)

// Builder is the shared state every Constructor mutates: the model under
// construction plus whatever bookkeeping a constructor needs to chain onto
// state a previous constructor left behind (e.g. the enode a new chain
// should grow from).
type Builder struct {
	M *model.Model

	quants map[string]idx.QuantIdx
	// Root is the e-node the next LinearChain/SelfLoop constructor should
	// blame its first instantiation on, if it wants to share ancestry with
	// whatever ran before it. NewBuilder seeds it with a single "seed"
	// e-node so the very first constructor always has something to blame.
	Root idx.ENodeIdx
}

// Constructor applies one deterministic mutation to a Builder. Constructors
// compose in the order passed to BuildModel.
type Constructor func(b *Builder) error

// NewBuilder returns a Builder over a fresh model, seeded with one e-node
// so the first constructor always has a blame target.
func NewBuilder() *Builder {
	m := model.NewModel()
	root := m.AddENode(m.Terms.Mk("seed"), nil)
	return &Builder{M: m, quants: make(map[string]idx.QuantIdx), Root: root}
}

// quant returns the quantifier named name, creating it on first use so
// repeated constructors referencing the same name share one quantifier.
func (b *Builder) quant(name string) idx.QuantIdx {
	if q, ok := b.quants[name]; ok {
		return q
	}
	q := b.M.AddQuant(name)
	b.quants[name] = q
	return q
}

// BuildModel runs cons over a fresh Builder in order and returns the
// resulting model. A constructor error is wrapped with its index and
// returned immediately; no partial cleanup is attempted.
func BuildModel(cons ...Constructor) (*model.Model, error) {
	b := NewBuilder()
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("fixtures.BuildModel: nil constructor at index %d", i)
		}
		if err := c(b); err != nil {
			return nil, fmt.Errorf("fixtures.BuildModel: constructor %d: %w", i, err)
		}
	}
	return b.M, nil
}
