// Package depgraph: reachability and depth queries over the dependency
// edges, consumed by downstream passes (scheduling, cancellation).

package depgraph

import "sort"

// Ancestors returns every node from which the node at index is reachable,
// in ascending index order. Direct and transitive predecessors alike.
// Complexity: O(V + E).
func (g *Graph) Ancestors(index int) ([]*Node, error) {
	if err := g.checkIndex("Ancestors", index); err != nil {
		return nil, err
	}

	return g.reachable(index, g.preds), nil
}

// Descendants returns every node reachable from the node at index, in
// ascending index order. Direct and transitive successors alike.
// Complexity: O(V + E).
func (g *Graph) Descendants(index int) ([]*Node, error) {
	if err := g.checkIndex("Descendants", index); err != nil {
		return nil, err
	}

	return g.reachable(index, g.succs), nil
}

// reachable runs a breadth-first walk from start over the given adjacency
// direction, excluding start itself.
func (g *Graph) reachable(start int, adj []map[int]struct{}) []*Node {
	visited := map[int]struct{}{start: {}}
	queue := []int{start}
	var found []int
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for next := range adj[i] {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			found = append(found, next)
			queue = append(queue, next)
		}
	}
	sort.Ints(found)
	out := make([]*Node, len(found))
	for k, i := range found {
		out[k] = g.nodes[i]
	}

	return out
}

// Depth returns the length in edges of the longest dependency chain: the
// minimum number of sequential steps any schedule of the graph must take,
// minus one. An empty or edge-free graph has depth 0.
// Complexity: O(V + E).
func (g *Graph) Depth() int {
	// Edges point forward in insertion order, so a single ascending pass is
	// a valid topological relaxation order: longest[i] is final by the time
	// node i is reached.
	longest := make([]int, len(g.nodes))
	max := 0
	for i := range g.nodes {
		if longest[i] > max {
			max = longest[i]
		}
		for s := range g.succs[i] {
			if longest[i]+1 > longest[s] {
				longest[s] = longest[i] + 1
			}
		}
	}

	return max
}
