// Package circuit: the standard gate library.
//
// Matrices follow the package operator convention: Qubits()[0] carries the
// most significant basis bit, so a controlled gate's control qubit selects
// the lower-right block. Values match the widely used OpenQASM definitions.

package circuit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/quantakit/qdag/operator"
)

// gateSpec describes one standard-gate table entry.
type gateSpec struct {
	arity  int // qubit count
	params int // parameter count
	build  func(p []float64) *operator.Dense
}

// rows builds a Dense from literal rows. Table entries are programmer data;
// a malformed literal is a bug, so this private helper panics rather than
// returning an error.
func rows(r [][]complex128) *operator.Dense {
	m, err := operator.FromRows(r)
	if err != nil {
		panic(err)
	}

	return m
}

// fixed adapts a parameterless literal matrix into a gateSpec builder.
func fixed(m func() *operator.Dense) func(p []float64) *operator.Dense {
	return func([]float64) *operator.Dense { return m() }
}

func expi(theta float64) complex128 { return cmplx.Exp(complex(0, theta)) }

// gateTable maps instruction mnemonics to their arity, parameter count, and
// matrix builder. Names follow OpenQASM / common transpiler usage.
var gateTable = map[string]gateSpec{
	"id": {1, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{{1, 0}, {0, 1}})
	})},
	"x": {1, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{{0, 1}, {1, 0}})
	})},
	"y": {1, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{{0, -1i}, {1i, 0}})
	})},
	"z": {1, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{{1, 0}, {0, -1}})
	})},
	"h": {1, 0, fixed(func() *operator.Dense {
		s := complex(1/math.Sqrt2, 0)

		return rows([][]complex128{{s, s}, {s, -s}})
	})},
	"s": {1, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{{1, 0}, {0, 1i}})
	})},
	"sdg": {1, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{{1, 0}, {0, -1i}})
	})},
	"t": {1, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{{1, 0}, {0, expi(math.Pi / 4)}})
	})},
	"tdg": {1, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{{1, 0}, {0, expi(-math.Pi / 4)}})
	})},
	"sx": {1, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{
			{complex(0.5, 0.5), complex(0.5, -0.5)},
			{complex(0.5, -0.5), complex(0.5, 0.5)},
		})
	})},
	"rx": {1, 1, func(p []float64) *operator.Dense {
		c := complex(math.Cos(p[0]/2), 0)
		js := complex(0, -math.Sin(p[0]/2))

		return rows([][]complex128{{c, js}, {js, c}})
	}},
	"ry": {1, 1, func(p []float64) *operator.Dense {
		c := complex(math.Cos(p[0]/2), 0)
		s := complex(math.Sin(p[0]/2), 0)

		return rows([][]complex128{{c, -s}, {s, c}})
	}},
	"rz": {1, 1, func(p []float64) *operator.Dense {
		return rows([][]complex128{{expi(-p[0] / 2), 0}, {0, expi(p[0] / 2)}})
	}},
	"p": {1, 1, func(p []float64) *operator.Dense {
		return rows([][]complex128{{1, 0}, {0, expi(p[0])}})
	}},
	"u": {1, 3, func(p []float64) *operator.Dense {
		theta, phi, lam := p[0], p[1], p[2]
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)

		return rows([][]complex128{
			{c, -expi(lam) * s},
			{expi(phi) * s, expi(phi+lam) * c},
		})
	}},
	"cx": {2, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 1, 0},
		})
	})},
	"cy": {2, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, -1i},
			{0, 0, 1i, 0},
		})
	})},
	"cz": {2, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, -1},
		})
	})},
	"swap": {2, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{
			{1, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
		})
	})},
	"cp": {2, 1, func(p []float64) *operator.Dense {
		return rows([][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, expi(p[0])},
		})
	}},
	"crz": {2, 1, func(p []float64) *operator.Dense {
		return rows([][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, expi(-p[0] / 2), 0},
			{0, 0, 0, expi(p[0] / 2)},
		})
	}},
	"ccx": {3, 0, fixed(func() *operator.Dense {
		return rows([][]complex128{
			{1, 0, 0, 0, 0, 0, 0, 0},
			{0, 1, 0, 0, 0, 0, 0, 0},
			{0, 0, 1, 0, 0, 0, 0, 0},
			{0, 0, 0, 1, 0, 0, 0, 0},
			{0, 0, 0, 0, 1, 0, 0, 0},
			{0, 0, 0, 0, 0, 1, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 1},
			{0, 0, 0, 0, 0, 0, 1, 0},
		})
	})},
}

// gateMatrix resolves the memoized matrix for a unitary operation record.
func gateMatrix(name string, qubits []int, params []float64) (*operator.Dense, error) {
	spec, ok := gateTable[name]
	if !ok {
		return nil, fmt.Errorf("Matrix(%q): %w", name, ErrUnknownGate)
	}
	if len(qubits) != spec.arity {
		return nil, fmt.Errorf("Matrix(%q): got %d qubits, want %d: %w",
			name, len(qubits), spec.arity, ErrBadArity)
	}
	if len(params) != spec.params {
		return nil, fmt.Errorf("Matrix(%q): got %d params, want %d: %w",
			name, len(params), spec.params, ErrBadParams)
	}

	return spec.build(params), nil
}

// NewGate constructs a unitary operation. When the name is a standard-gate
// entry, arity and parameter counts are validated eagerly; unknown names are
// accepted and fail only if Matrix() is requested (custom gates may never
// need one if their supports keep them off the exact commutation path).
func NewGate(name string, qubits []int, params ...float64) (*Operation, error) {
	if spec, ok := gateTable[name]; ok {
		if len(qubits) != spec.arity {
			return nil, fmt.Errorf("NewGate(%q): got %d qubits, want %d: %w",
				name, len(qubits), spec.arity, ErrBadArity)
		}
		if len(params) != spec.params {
			return nil, fmt.Errorf("NewGate(%q): got %d params, want %d: %w",
				name, len(params), spec.params, ErrBadParams)
		}
	}

	return New(name, KindUnitary, qubits, nil, params...)
}

// Single-qubit fixed gates.

// I constructs the identity gate on qubit q.
func I(q int) (*Operation, error) { return NewGate("id", []int{q}) }

// X constructs the Pauli-X gate on qubit q.
func X(q int) (*Operation, error) { return NewGate("x", []int{q}) }

// Y constructs the Pauli-Y gate on qubit q.
func Y(q int) (*Operation, error) { return NewGate("y", []int{q}) }

// Z constructs the Pauli-Z gate on qubit q.
func Z(q int) (*Operation, error) { return NewGate("z", []int{q}) }

// H constructs the Hadamard gate on qubit q.
func H(q int) (*Operation, error) { return NewGate("h", []int{q}) }

// S constructs the phase gate on qubit q.
func S(q int) (*Operation, error) { return NewGate("s", []int{q}) }

// Sdg constructs the inverse phase gate on qubit q.
func Sdg(q int) (*Operation, error) { return NewGate("sdg", []int{q}) }

// T constructs the T gate on qubit q.
func T(q int) (*Operation, error) { return NewGate("t", []int{q}) }

// Tdg constructs the inverse T gate on qubit q.
func Tdg(q int) (*Operation, error) { return NewGate("tdg", []int{q}) }

// SX constructs the sqrt-X gate on qubit q.
func SX(q int) (*Operation, error) { return NewGate("sx", []int{q}) }

// Parameterized single-qubit gates.

// RX constructs an X-rotation by theta on qubit q.
func RX(theta float64, q int) (*Operation, error) { return NewGate("rx", []int{q}, theta) }

// RY constructs a Y-rotation by theta on qubit q.
func RY(theta float64, q int) (*Operation, error) { return NewGate("ry", []int{q}, theta) }

// RZ constructs a Z-rotation by theta on qubit q.
func RZ(theta float64, q int) (*Operation, error) { return NewGate("rz", []int{q}, theta) }

// P constructs a phase rotation by lambda on qubit q.
func P(lambda float64, q int) (*Operation, error) { return NewGate("p", []int{q}, lambda) }

// U constructs the generic single-qubit rotation U(theta, phi, lambda) on q.
func U(theta, phi, lambda float64, q int) (*Operation, error) {
	return NewGate("u", []int{q}, theta, phi, lambda)
}

// Multi-qubit gates.

// CX constructs a controlled-X with the given control and target qubits.
func CX(control, target int) (*Operation, error) { return NewGate("cx", []int{control, target}) }

// CY constructs a controlled-Y with the given control and target qubits.
func CY(control, target int) (*Operation, error) { return NewGate("cy", []int{control, target}) }

// CZ constructs a controlled-Z with the given control and target qubits.
func CZ(control, target int) (*Operation, error) { return NewGate("cz", []int{control, target}) }

// SWAP constructs a swap of qubits a and b.
func SWAP(a, b int) (*Operation, error) { return NewGate("swap", []int{a, b}) }

// CP constructs a controlled phase rotation by lambda.
func CP(lambda float64, control, target int) (*Operation, error) {
	return NewGate("cp", []int{control, target}, lambda)
}

// CRZ constructs a controlled Z-rotation by theta.
func CRZ(theta float64, control, target int) (*Operation, error) {
	return NewGate("crz", []int{control, target}, theta)
}

// CCX constructs a Toffoli gate with two controls and one target.
func CCX(control1, control2, target int) (*Operation, error) {
	return NewGate("ccx", []int{control1, control2, target})
}

// Non-unitary instructions.

// Measure constructs a measurement of qubit q into clbit c.
func Measure(q, c int) (*Operation, error) {
	return New("measure", KindMeasurement, []int{q}, []int{c})
}

// Reset constructs a reset of qubit q to |0>.
func Reset(q int) (*Operation, error) {
	return New("reset", KindReset, []int{q}, nil)
}

// Barrier constructs a scheduling fence across the given qubits.
func Barrier(qubits ...int) (*Operation, error) {
	return New("barrier", KindBarrier, qubits, nil)
}
