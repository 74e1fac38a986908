package commute_test

import (
	"github.com/quantakit/qdag/circuit"
)

// mustOp unwraps an operation constructor; fixtures are valid by
// construction, so a failure panics rather than asserts.
func mustOp(op *circuit.Operation, err error) *circuit.Operation {
	if err != nil {
		panic(err)
	}

	return op
}
