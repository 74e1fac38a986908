// Package commute decides whether two circuit operations commute, i.e.
// whether applying them in either order yields the same overall effect.
//
// Decision paths, cheapest first:
//
//  1. Disjoint qubit and clbit supports: commute, always.
//  2. A barrier sharing any resource: never commutes (it is a fence).
//  3. Any non-unitary operation (measurement, reset, conditional, other)
//     with overlapping support: reported as non-commuting, conservatively.
//  4. Two unitaries with overlapping qubits: both matrices are embedded
//     over the sorted union of their qubits and A·B is compared to B·A
//     element-wise within a tolerance.
//
// The conservative path (3) is deliberately imprecise; refining it (e.g.
// per-instruction commutation rules for measurements over shared classical
// bits) is a known improvement area. It is isolated behind the Func type so
// a finer oracle can be swapped into the graph builder without touching the
// builder or the graph.
//
// Commutes is a pure function of the two records plus the tolerance: safe
// for concurrent use and deterministic. Cache memoizes results by a
// placement-invariant pair key; it is not safe for concurrent use, matching
// the single-threaded build model.
//
// Cost: path 4 scales with the joint Hilbert space, exponential in the
// number of distinct qubits the pair touches. It only runs when the pair
// shares at least one qubit.
package commute
