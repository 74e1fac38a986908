package circuit

// Kind tags what an Operation does to the circuit state, which is all the
// commutation oracle needs to choose its decision path.
type Kind int

const (
	// KindUnitary marks a gate with a defined unitary matrix.
	KindUnitary Kind = iota

	// KindMeasurement marks a qubit readout into a classical bit.
	KindMeasurement

	// KindBarrier marks a scheduling fence: it commutes with nothing
	// sharing any of its qubits, by construction.
	KindBarrier

	// KindReset marks a non-unitary re-initialization of a qubit to |0>.
	KindReset

	// KindConditional marks a classically-controlled operation.
	KindConditional

	// KindOther marks instructions outside the model (treated conservatively).
	KindOther
)

// String returns the lowercase tag name, matching instruction mnemonics.
func (k Kind) String() string {
	switch k {
	case KindUnitary:
		return "unitary"
	case KindMeasurement:
		return "measurement"
	case KindBarrier:
		return "barrier"
	case KindReset:
		return "reset"
	case KindConditional:
		return "conditional"
	default:
		return "other"
	}
}
