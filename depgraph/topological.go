// Package depgraph: deterministic linearization.
//
// TopologicalOrder computes a linear extension of the dependency edges
// using Kahn's algorithm with a min-index ready queue: whenever several
// nodes are simultaneously unconstrained, the lowest insertion index is
// emitted first. This makes the output deterministic and reproduces the
// original program order wherever no dependency forces a change.
//
// Complexity:
//
//   - Time:   O(V log V + E) (heap-ordered ready queue)
//   - Memory: O(V)

package depgraph

import (
	"container/heap"
	"context"

	"github.com/quantakit/qdag/circuit"
)

// TopoOption configures optional behavior for TopologicalOrder.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalOrder, currently only
// cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// indexHeap is a min-heap of node indices (the Kahn ready queue).
type indexHeap []int

func (h indexHeap) Len() int            { return len(h) }
func (h indexHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *indexHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *indexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// TopologicalOrder returns every node in a linear extension of the edge
// relation, ties broken by ascending insertion index. Since edges always
// point forward in insertion order, the drain is guaranteed to complete;
// the only error source is cancellation via WithContext.
func (g *Graph) TopologicalOrder(options ...TopoOption) ([]*Node, error) {
	// 1. Apply optional settings.
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 2. Count in-degrees and seed the ready queue with free nodes.
	n := len(g.nodes)
	indegree := make([]int, n)
	ready := &indexHeap{}
	for i := 0; i < n; i++ {
		indegree[i] = len(g.preds[i])
		if indegree[i] == 0 {
			*ready = append(*ready, i)
		}
	}
	heap.Init(ready)

	// 3. Drain: always emit the smallest ready index.
	order := make([]*Node, 0, n)
	for ready.Len() > 0 {
		// Cancellation check once per emitted node.
		select {
		case <-opts.ctx.Done():
			return nil, opts.ctx.Err()
		default:
		}

		i := heap.Pop(ready).(int)
		order = append(order, g.nodes[i])
		for s := range g.succs[i] {
			indegree[s]--
			if indegree[s] == 0 {
				heap.Push(ready, s)
			}
		}
	}

	return order, nil
}

// ToSequence returns the operations of TopologicalOrder: the deterministic
// linear-circuit form of the graph, used by the converters.
func (g *Graph) ToSequence(options ...TopoOption) ([]*circuit.Operation, error) {
	order, err := g.TopologicalOrder(options...)
	if err != nil {
		return nil, err
	}
	seq := make([]*circuit.Operation, len(order))
	for i, node := range order {
		seq[i] = node.op
	}

	return seq, nil
}
