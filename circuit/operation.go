// Package circuit: the Operation record and its constructors.
//
// This file declares the sentinel errors, the Operation type, the generic
// New constructor with support validation, and the lazy Matrix accessor.
// Standard-gate helpers live in gates.go.

package circuit

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/quantakit/qdag/operator"
)

// Sentinel errors for operation construction and matrix access.
var (
	// ErrNotApplicable indicates Matrix() was called on a non-unitary
	// operation (measurement, barrier, reset, conditional, other).
	ErrNotApplicable = errors.New("circuit: matrix not applicable to non-unitary operation")

	// ErrUnknownGate indicates a unitary operation whose name has no entry
	// in the standard gate table, so no matrix can be produced.
	ErrUnknownGate = errors.New("circuit: unknown gate name")

	// ErrBadParams indicates a wrong parameter count for a standard gate.
	ErrBadParams = errors.New("circuit: wrong parameter count for gate")

	// ErrBadArity indicates a wrong qubit count for a standard gate.
	ErrBadArity = errors.New("circuit: wrong qubit count for gate")

	// ErrNoQubits indicates a gate-like operation with an empty qubit support.
	ErrNoQubits = errors.New("circuit: operation has no qubits")

	// ErrDuplicateQubit indicates a repeated qubit in a support list.
	ErrDuplicateQubit = errors.New("circuit: duplicate qubit in support")

	// ErrDuplicateClbit indicates a repeated clbit in a support list.
	ErrDuplicateClbit = errors.New("circuit: duplicate clbit in support")

	// ErrBadResource indicates a negative qubit or clbit identifier.
	ErrBadResource = errors.New("circuit: negative resource identifier")

	// ErrNilOperation indicates a nil *Operation argument.
	ErrNilOperation = errors.New("circuit: nil operation")
)

// Operation is an immutable record of one circuit instruction: its name,
// kind, ordered resource supports, and parameters. Once constructed it is
// never mutated; the matrix, when applicable, is computed on first request
// and memoized.
//
// Accessors returning slices or sets expose internal state for cheap reads;
// callers must treat them as read-only.
type Operation struct {
	name   string
	kind   Kind
	qubits []int
	clbits []int
	params []float64

	qubitSet mapset.Set[int]
	clbitSet mapset.Set[int]

	matOnce sync.Once
	mat     *operator.Dense
	matErr  error
}

// New constructs an Operation after validating its supports:
// gate-like kinds (everything but KindOther) require non-empty qubits;
// supports must be duplicate-free with non-negative identifiers.
// Slices are copied; the record does not alias caller memory.
func New(name string, kind Kind, qubits, clbits []int, params ...float64) (*Operation, error) {
	if kind != KindOther && len(qubits) == 0 {
		return nil, fmt.Errorf("New(%q): %w", name, ErrNoQubits)
	}
	if err := checkSupport(qubits, ErrDuplicateQubit); err != nil {
		return nil, fmt.Errorf("New(%q): %w", name, err)
	}
	if err := checkSupport(clbits, ErrDuplicateClbit); err != nil {
		return nil, fmt.Errorf("New(%q): %w", name, err)
	}

	op := &Operation{
		name:     name,
		kind:     kind,
		qubits:   append([]int(nil), qubits...),
		clbits:   append([]int(nil), clbits...),
		params:   append([]float64(nil), params...),
		qubitSet: mapset.NewThreadUnsafeSet(qubits...),
		clbitSet: mapset.NewThreadUnsafeSet(clbits...),
	}

	return op, nil
}

// checkSupport validates one resource list: non-negative, duplicate-free.
func checkSupport(ids []int, dupErr error) error {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id < 0 {
			return fmt.Errorf("id %d: %w", id, ErrBadResource)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("id %d: %w", id, dupErr)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// Name returns the instruction mnemonic ("h", "cx", "measure", ...).
func (op *Operation) Name() string { return op.name }

// Kind returns the operation's kind tag.
func (op *Operation) Kind() Kind { return op.kind }

// Qubits returns the ordered qubit support. Read-only.
func (op *Operation) Qubits() []int { return op.qubits }

// Clbits returns the ordered clbit support. Read-only.
func (op *Operation) Clbits() []int { return op.clbits }

// Params returns the operation parameters. Read-only.
func (op *Operation) Params() []float64 { return op.params }

// QubitSet returns the qubit support as a set for intersection tests.
// Read-only; built once at construction.
func (op *Operation) QubitSet() mapset.Set[int] { return op.qubitSet }

// ClbitSet returns the clbit support as a set for intersection tests.
// Read-only; built once at construction.
func (op *Operation) ClbitSet() mapset.Set[int] { return op.clbitSet }

// Matrix returns the unitary matrix equivalent to this operation, expressed
// over its own qubit order (Qubits()[0] is the most significant basis bit,
// see package operator). The matrix is computed on first call and memoized;
// concurrent calls are safe.
//
// Errors: ErrNotApplicable for non-unitary kinds; ErrUnknownGate when the
// name has no standard-gate entry; ErrBadParams / ErrBadArity when the
// record does not match the entry's shape.
func (op *Operation) Matrix() (*operator.Dense, error) {
	if op.kind != KindUnitary {
		return nil, fmt.Errorf("Matrix(%q): %s: %w", op.name, op.kind, ErrNotApplicable)
	}
	op.matOnce.Do(func() {
		op.mat, op.matErr = gateMatrix(op.name, op.qubits, op.params)
	})

	return op.mat, op.matErr
}

// Conditional wraps a base operation as classically controlled on the given
// clbits. The result shares the base's name, qubits, and parameters; its
// clbit support is the base's clbits followed by the control clbits.
// Duplicate control bits collapse against the base support
// (ErrDuplicateClbit).
func Conditional(base *Operation, clbits ...int) (*Operation, error) {
	if base == nil {
		return nil, fmt.Errorf("Conditional: %w", ErrNilOperation)
	}
	if len(clbits) == 0 {
		return nil, fmt.Errorf("Conditional(%q): no control clbits: %w", base.name, ErrBadResource)
	}
	merged := append(append([]int(nil), base.clbits...), clbits...)

	return New(base.name, KindConditional, base.qubits, merged, base.params...)
}

// String renders the operation as "name q0,q1 -> c0", convenient in test
// failure output.
func (op *Operation) String() string {
	var sb strings.Builder
	sb.WriteString(op.name)
	for i, q := range op.qubits {
		if i == 0 {
			sb.WriteString(" q")
		} else {
			sb.WriteString(",q")
		}
		fmt.Fprintf(&sb, "%d", q)
	}
	for i, c := range op.clbits {
		if i == 0 {
			sb.WriteString(" -> c")
		} else {
			sb.WriteString(",c")
		}
		fmt.Fprintf(&sb, "%d", c)
	}

	return sb.String()
}
