// Package depgraph: Graph and Node storage, edge maintenance, and the
// per-resource frontier bookkeeping used by the graph builder's transitive
// reduction.

package depgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/quantakit/qdag/circuit"
)

// Sentinel errors for graph operations.
var (
	// ErrNilOperation indicates an Append of a nil operation record.
	ErrNilOperation = errors.New("depgraph: nil operation")

	// ErrNodeNotFound indicates an index outside the node range.
	ErrNodeNotFound = errors.New("depgraph: node not found")

	// ErrBackEdge indicates an edge that does not point from an
	// earlier-inserted to a strictly later-inserted node.
	ErrBackEdge = errors.New("depgraph: edge must point from an earlier to a later node")

	// ErrEdgeNotFound indicates a RemoveEdge on an edge that does not exist.
	ErrEdgeNotFound = errors.New("depgraph: edge not found")
)

// ResourceKind distinguishes the two resource namespaces an operation can
// touch.
type ResourceKind int

const (
	// QubitResource identifies a quantum bit.
	QubitResource ResourceKind = iota

	// ClbitResource identifies a classical bit.
	ClbitResource
)

// Resource identifies one qubit or clbit; the frontier is keyed by it.
type Resource struct {
	Kind ResourceKind
	ID   int
}

// QubitOf returns the Resource key for qubit id.
func QubitOf(id int) Resource { return Resource{Kind: QubitResource, ID: id} }

// ClbitOf returns the Resource key for clbit id.
func ClbitOf(id int) Resource { return Resource{Kind: ClbitResource, ID: id} }

// Node is one operation record inside a graph, identified by its insertion
// index. The index is assigned by Append, strictly increasing, and never
// reused; it identifies the node independent of any later edge mutation.
type Node struct {
	index int
	op    *circuit.Operation
}

// Index returns the node's insertion index.
func (n *Node) Index() int { return n.index }

// Op returns the node's operation record.
func (n *Node) Op() *circuit.Operation { return n.op }

// Resources returns every qubit and clbit resource the node touches, qubits
// first, in the operation's declared order.
func (n *Node) Resources() []Resource {
	out := make([]Resource, 0, len(n.op.Qubits())+len(n.op.Clbits()))
	for _, q := range n.op.Qubits() {
		out = append(out, QubitOf(q))
	}
	for _, c := range n.op.Clbits() {
		out = append(out, ClbitOf(c))
	}

	return out
}

// String renders the node as "#index op" for diagnostics.
func (n *Node) String() string {
	return fmt.Sprintf("#%d %s", n.index, n.op)
}

// Graph is the dependency DAG. Nodes are appended in program order; edges
// point strictly forward in insertion order, which makes acyclicity an
// insertion-time invariant rather than a property to discover.
//
// Graph is not safe for concurrent mutation; construction is sequential by
// design (each insertion depends on the current frontier state).
type Graph struct {
	nodes []*Node

	// preds[i] / succs[i] hold the direct neighbor indices of node i.
	preds []map[int]struct{}
	succs []map[int]struct{}

	edgeCount int

	// frontier maps each resource to the most recent node with a recorded
	// blocking edge touching it. Maintained by AddEdge for downstream
	// passes; never rewound by RemoveEdge.
	frontier map[Resource]int
}

// New creates an empty dependency graph.
func New() *Graph {
	return &Graph{frontier: make(map[Resource]int)}
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Append inserts op as the next node and returns it. The new node has no
// edges; the builder wires them immediately after insertion.
func (g *Graph) Append(op *circuit.Operation) (*Node, error) {
	if op == nil {
		return nil, fmt.Errorf("Append: %w", ErrNilOperation)
	}
	n := &Node{index: len(g.nodes), op: op}
	g.nodes = append(g.nodes, n)
	g.preds = append(g.preds, make(map[int]struct{}))
	g.succs = append(g.succs, make(map[int]struct{}))

	return n, nil
}

// Node returns the node with the given insertion index.
func (g *Graph) Node(index int) (*Node, error) {
	if index < 0 || index >= len(g.nodes) {
		return nil, fmt.Errorf("Node(%d): %w", index, ErrNodeNotFound)
	}

	return g.nodes[index], nil
}

// Nodes returns all nodes in insertion order. Read-only.
func (g *Graph) Nodes() []*Node { return g.nodes }

// AddEdge records the constraint "node to must not be reordered before node
// from". The edge must point strictly forward (from < to); adding an edge
// that already exists is a no-op. Frontier bookkeeping advances to the new
// blocking node for every resource the two endpoints share.
func (g *Graph) AddEdge(from, to int) error {
	if err := g.checkIndex("AddEdge", from); err != nil {
		return err
	}
	if err := g.checkIndex("AddEdge", to); err != nil {
		return err
	}
	if from >= to {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrBackEdge)
	}
	if _, ok := g.succs[from][to]; ok {
		return nil
	}
	g.succs[from][to] = struct{}{}
	g.preds[to][from] = struct{}{}
	g.edgeCount++

	// Advance the frontier on every shared resource: to is now the most
	// recent blocking node there.
	for _, r := range sharedResources(g.nodes[from], g.nodes[to]) {
		if last, ok := g.frontier[r]; !ok || to > last {
			g.frontier[r] = to
		}
	}

	return nil
}

// RemoveEdge deletes a previously recorded edge. It exists for downstream
// optimization passes (e.g. gate cancellation); the core builder never
// removes edges. Frontier bookkeeping is not rewound.
func (g *Graph) RemoveEdge(from, to int) error {
	if err := g.checkIndex("RemoveEdge", from); err != nil {
		return err
	}
	if err := g.checkIndex("RemoveEdge", to); err != nil {
		return err
	}
	if _, ok := g.succs[from][to]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", from, to, ErrEdgeNotFound)
	}
	delete(g.succs[from], to)
	delete(g.preds[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge from→to exists. Out-of-range indices
// report false.
func (g *Graph) HasEdge(from, to int) bool {
	if from < 0 || from >= len(g.nodes) {
		return false
	}
	_, ok := g.succs[from][to]

	return ok
}

// Predecessors returns the direct predecessors of the node at index, in
// ascending index order.
func (g *Graph) Predecessors(index int) ([]*Node, error) {
	if err := g.checkIndex("Predecessors", index); err != nil {
		return nil, err
	}

	return g.neighborList(g.preds[index]), nil
}

// Successors returns the direct successors of the node at index, in
// ascending index order.
func (g *Graph) Successors(index int) ([]*Node, error) {
	if err := g.checkIndex("Successors", index); err != nil {
		return nil, err
	}

	return g.neighborList(g.succs[index]), nil
}

// Frontier returns the index of the most recent node with a recorded
// blocking edge touching r, and whether any such node exists.
func (g *Graph) Frontier(r Resource) (int, bool) {
	idx, ok := g.frontier[r]

	return idx, ok
}

// checkIndex validates a node index, wrapping ErrNodeNotFound with context.
func (g *Graph) checkIndex(op string, index int) error {
	if index < 0 || index >= len(g.nodes) {
		return fmt.Errorf("%s(%d): %w", op, index, ErrNodeNotFound)
	}

	return nil
}

// neighborList materializes a neighbor index set as ascending nodes.
func (g *Graph) neighborList(set map[int]struct{}) []*Node {
	idx := make([]int, 0, len(set))
	for i := range set {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	out := make([]*Node, len(idx))
	for k, i := range idx {
		out[k] = g.nodes[i]
	}

	return out
}

// sharedResources returns the resources both nodes touch.
func sharedResources(a, b *Node) []Resource {
	var out []Resource
	bq := b.op.QubitSet()
	for _, q := range a.op.Qubits() {
		if bq.Contains(q) {
			out = append(out, QubitOf(q))
		}
	}
	bc := b.op.ClbitSet()
	for _, c := range a.op.Clbits() {
		if bc.Contains(c) {
			out = append(out, ClbitOf(c))
		}
	}

	return out
}
