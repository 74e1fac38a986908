// Package converters: sequence ⇄ dependency-graph adapters.

package converters

import (
	"errors"
	"fmt"

	"github.com/quantakit/qdag/builder"
	"github.com/quantakit/qdag/circuit"
	"github.com/quantakit/qdag/depgraph"
)

var (
	// ErrNilGraph indicates a nil dependency graph argument.
	ErrNilGraph = errors.New("converters: nil graph")

	// ErrNilDAG indicates a nil execution DAG argument.
	ErrNilDAG = errors.New("converters: nil execution dag")

	// ErrUnsupportedNode indicates an execution-DAG node that cannot be
	// represented as an operation record.
	ErrUnsupportedNode = errors.New("converters: unsupported execution-dag node")
)

// SequenceToGraph builds the dependency graph of a linear operation
// sequence. It is a thin alias for builder.Build, re-exported here so both
// conversion directions live in one package.
func SequenceToGraph(seq []*circuit.Operation, opts ...builder.Option) (*depgraph.Graph, error) {
	return builder.Build(seq, opts...)
}

// GraphToSequence returns the deterministic linearization of g: a
// topological order with ties broken by ascending insertion index, which
// reproduces the original program order wherever unconstrained.
func GraphToSequence(g *depgraph.Graph) ([]*circuit.Operation, error) {
	if g == nil {
		return nil, fmt.Errorf("GraphToSequence: %w", ErrNilGraph)
	}

	return g.ToSequence()
}
