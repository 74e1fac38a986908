// Package commute: the commutation predicate itself.
//
// This file declares the sentinel errors, the functional options, the Func
// oracle type, and the Commutes entry point. The pair cache lives in
// cache.go.

package commute

import (
	"errors"
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/quantakit/qdag/circuit"
	"github.com/quantakit/qdag/operator"
)

// DefaultTolerance is the element-wise absolute difference below which two
// operator products are considered equal.
const DefaultTolerance = 1e-10

var (
	// ErrNilOperation indicates a nil operand.
	ErrNilOperation = errors.New("commute: nil operation")

	// ErrBadTolerance indicates a negative tolerance option.
	ErrBadTolerance = errors.New("commute: tolerance must be non-negative")
)

// Func is the oracle signature the graph builder consumes. Implementations
// must be pure: the result may depend only on the operations' kinds,
// parameters, and supports, never on graph position.
type Func func(a, b *circuit.Operation) (bool, error)

// Option configures optional behavior of Commutes.
type Option func(*options)

// options holds resolved settings; currently only the tolerance.
type options struct {
	tol float64
}

// defaultOptions returns the default settings (DefaultTolerance).
func defaultOptions() options {
	return options{tol: DefaultTolerance}
}

// WithTolerance returns an Option that sets the numeric tolerance for the
// exact matrix comparison. Negative values are rejected at call time.
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tol = tol }
}

// Commutes reports whether operations a and b commute.
//
// The result is symmetric and deterministic. Errors surface only from the
// exact path: a unitary operand whose matrix cannot be produced (unknown
// gate name, malformed record) or an invalid option.
func Commutes(a, b *circuit.Operation, opts ...Option) (bool, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return commutes(a, b, o.tol)
}

// Oracle returns a Func with the given options bound, suitable for
// injection into the graph builder.
func Oracle(opts ...Option) Func {
	return func(a, b *circuit.Operation) (bool, error) {
		return Commutes(a, b, opts...)
	}
}

// commutes is the shared implementation behind Commutes and Cache.
func commutes(a, b *circuit.Operation, tol float64) (bool, error) {
	// 1. Validate operands and options.
	if a == nil || b == nil {
		return false, fmt.Errorf("Commutes: %w", ErrNilOperation)
	}
	if tol < 0 {
		return false, fmt.Errorf("Commutes: %g: %w", tol, ErrBadTolerance)
	}

	// 2. Fast accept: operations on disjoint resources always commute.
	qubitOverlap := !disjoint(a.QubitSet(), b.QubitSet())
	clbitOverlap := !disjoint(a.ClbitSet(), b.ClbitSet())
	if !qubitOverlap && !clbitOverlap {
		return true, nil
	}

	// 3. A barrier is a fence: it commutes with nothing it overlaps.
	if a.Kind() == circuit.KindBarrier || b.Kind() == circuit.KindBarrier {
		return false, nil
	}

	// 4. Conservative reject: no commutation proof is attempted for
	// non-unitary operations on overlapping supports. Known weak point,
	// kept behind this function so it can be refined in isolation.
	if a.Kind() != circuit.KindUnitary || b.Kind() != circuit.KindUnitary {
		return false, nil
	}

	// 5. Unitaries overlapping only on clbits carry classical state this
	// model does not analyze; treat like the conservative path. The
	// standard gate constructors never attach clbits to a unitary, but
	// circuit.New accepts such hand-built records.
	if !qubitOverlap {
		return false, nil
	}

	// 6. Exact check: compare A·B against B·A over the joint qubit space.
	return exactCommutes(a, b, tol)
}

// disjoint reports whether two resource sets share no element.
func disjoint(x, y mapset.Set[int]) bool {
	// Probe the smaller set against the larger one.
	if y.Cardinality() < x.Cardinality() {
		x, y = y, x
	}
	hit := false
	x.Each(func(id int) bool {
		if y.Contains(id) {
			hit = true

			return true // stop iteration
		}

		return false
	})

	return !hit
}

// exactCommutes embeds both unitaries over the sorted union of their qubits
// and compares the two operator orders within tol.
func exactCommutes(a, b *circuit.Operation, tol float64) (bool, error) {
	ma, err := a.Matrix()
	if err != nil {
		return false, fmt.Errorf("Commutes: left operand: %w", err)
	}
	mb, err := b.Matrix()
	if err != nil {
		return false, fmt.Errorf("Commutes: right operand: %w", err)
	}

	universe := unionSorted(a.Qubits(), b.Qubits())
	ea, err := operator.Embed(ma, a.Qubits(), universe)
	if err != nil {
		return false, fmt.Errorf("Commutes: embed left: %w", err)
	}
	eb, err := operator.Embed(mb, b.Qubits(), universe)
	if err != nil {
		return false, fmt.Errorf("Commutes: embed right: %w", err)
	}

	ab, err := operator.Mul(ea, eb)
	if err != nil {
		return false, fmt.Errorf("Commutes: %w", err)
	}
	ba, err := operator.Mul(eb, ea)
	if err != nil {
		return false, fmt.Errorf("Commutes: %w", err)
	}

	return operator.EqualApprox(ab, ba, tol), nil
}

// unionSorted merges two duplicate-free id lists into one ascending list.
func unionSorted(xs, ys []int) []int {
	out := make([]int, 0, len(xs)+len(ys))
	out = append(out, xs...)
	seen := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}
	for _, y := range ys {
		if _, ok := seen[y]; !ok {
			out = append(out, y)
		}
	}
	sort.Ints(out)

	return out
}
