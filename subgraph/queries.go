package subgraph

import "github.com/arborly/axiomgraph/idx"

// InClosure reports whether to is forward-reachable from from (inclusive),
// per the closure stored at Build time. Both nodes must belong to the same
// component; nodes in different components are never in each other's
// closure.
func (ix *Index) InClosure(from, to idx.RawNodeIndex) (bool, error) {
	pf, err := ix.PositionOf(from)
	if err != nil {
		return false, err
	}
	pt, err := ix.PositionOf(to)
	if err != nil {
		return false, err
	}
	if pf.Component != pt.Component {
		return false, nil
	}
	sg := &ix.components[pf.Component]
	return sg.ReachFwd[pf.LocalIx].Has(int(pt.LocalIx)), nil
}

// ReachableFrom returns every raw node forward-reachable from v, including
// v itself.
func (ix *Index) ReachableFrom(v idx.RawNodeIndex) ([]idx.RawNodeIndex, error) {
	pos, err := ix.PositionOf(v)
	if err != nil {
		return nil, err
	}
	sg := &ix.components[pos.Component]
	set := sg.ReachFwd[pos.LocalIx]

	var out []idx.RawNodeIndex
	set.Iterate(func(i int) {
		out = append(out, sg.Nodes[i])
	})
	return out, nil
}

// ReachableFromMany returns the union, as a Bitset over vs' shared
// component's local index space, of every node forward-reachable from any
// of vs. All of vs must belong to the same component.
func (ix *Index) ReachableFromMany(vs []idx.RawNodeIndex) (Bitset, error) {
	if len(vs) == 0 {
		return NewBitset(0), nil
	}
	first, err := ix.PositionOf(vs[0])
	if err != nil {
		return Bitset{}, err
	}
	sg := &ix.components[first.Component]
	union := NewBitset(len(sg.Nodes))

	for _, v := range vs {
		pos, err := ix.PositionOf(v)
		if err != nil {
			return Bitset{}, err
		}
		if pos.Component != first.Component {
			continue
		}
		union.Or(sg.ReachFwd[pos.LocalIx])
	}
	return union, nil
}
