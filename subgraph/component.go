package subgraph

import "github.com/arborly/axiomgraph/idx"

// rawGraph is the slice of rawgraph.Graph this package depends on, kept
// narrow so subgraph never needs to import rawgraph's mutable Node type
// directly for traversal.
type rawGraph interface {
	NumNodes() int
	OutNeighbors(idx.RawNodeIndex) []idx.RawNodeIndex
	InNeighbors(idx.RawNodeIndex) []idx.RawNodeIndex
}

// weaklyConnectedComponents partitions every raw node into a component,
// ignoring edge direction, via plain BFS over the undirected view.
func weaklyConnectedComponents(g rawGraph) [][]idx.RawNodeIndex {
	n := g.NumNodes()
	compOf := make([]int, n)
	for i := range compOf {
		compOf[i] = -1
	}

	var comps [][]idx.RawNodeIndex
	for start := 0; start < n; start++ {
		if compOf[start] != -1 {
			continue
		}
		id := len(comps)
		var members []idx.RawNodeIndex
		queue := []idx.RawNodeIndex{idx.RawNodeIndex(start)}
		compOf[start] = id
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			members = append(members, v)
			for _, u := range g.OutNeighbors(v) {
				if compOf[u] == -1 {
					compOf[u] = id
					queue = append(queue, u)
				}
			}
			for _, u := range g.InNeighbors(v) {
				if compOf[u] == -1 {
					compOf[u] = id
					queue = append(queue, u)
				}
			}
		}
		comps = append(comps, members)
	}
	return comps
}

// topoOrder returns members ordered so that every edge within the component
// runs from an earlier position to a later one (Kahn's algorithm). The raw
// graph is a DAG by construction, so this never fails to order every node.
func topoOrder(g rawGraph, members []idx.RawNodeIndex) []idx.RawNodeIndex {
	inComp := make(map[idx.RawNodeIndex]struct{}, len(members))
	for _, v := range members {
		inComp[v] = struct{}{}
	}

	indeg := make(map[idx.RawNodeIndex]int, len(members))
	for _, v := range members {
		indeg[v] = 0
	}
	for _, v := range members {
		for _, u := range g.OutNeighbors(v) {
			if _, ok := inComp[u]; ok {
				indeg[u]++
			}
		}
	}

	var queue []idx.RawNodeIndex
	for _, v := range members {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]idx.RawNodeIndex, 0, len(members))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, u := range g.OutNeighbors(v) {
			if _, ok := inComp[u]; !ok {
				continue
			}
			indeg[u]--
			if indeg[u] == 0 {
				queue = append(queue, u)
			}
		}
	}
	return order
}
