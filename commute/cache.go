// Package commute: memoization of commutation results.
//
// Two pairs of operations yield the same commutation verdict whenever their
// names, parameters, kinds, and the relative placement of their supports
// coincide — the verdict never depends on absolute qubit numbers or graph
// position. The cache therefore keys entries by a placement-invariant pair
// signature and is symmetric under operand swap.

package commute

import (
	"strconv"
	"strings"

	"github.com/quantakit/qdag/circuit"
)

// Cache memoizes commutation verdicts across repeated operation pairs, a
// common situation when building graphs of circuits that repeat the same
// gate pattern. Not safe for concurrent use; the graph builder is
// single-threaded by design.
type Cache struct {
	tol     float64
	entries map[string]bool
	hits    uint64
}

// NewCache creates an empty cache with the given options bound.
func NewCache(opts ...Option) *Cache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache{tol: o.tol, entries: make(map[string]bool)}
}

// Commutes is the cached equivalent of the package-level Commutes; it
// satisfies Func and can be handed to the graph builder directly.
// Failed queries are not cached.
func (c *Cache) Commutes(a, b *circuit.Operation) (bool, error) {
	if a == nil || b == nil {
		return commutes(a, b, c.tol) // delegate the error path
	}
	key := pairKey(a, b)
	if v, ok := c.entries[key]; ok {
		c.hits++

		return v, nil
	}
	v, err := commutes(a, b, c.tol)
	if err != nil {
		return false, err
	}
	c.entries[key] = v

	return v, nil
}

// Len returns the number of memoized pairs.
func (c *Cache) Len() int { return len(c.entries) }

// Hits returns how many queries were answered from memory.
func (c *Cache) Hits() uint64 { return c.hits }

// pairKey builds the placement-invariant, symmetric signature of a pair.
// Qubits and clbits are renumbered by their rank within the pair's joint
// support, so "cx 3,7 vs z 7" and "cx 0,2 vs z 2" share one entry.
func pairKey(a, b *circuit.Operation) string {
	qRank := rankOf(a.Qubits(), b.Qubits())
	cRank := rankOf(a.Clbits(), b.Clbits())
	sa := signature(a, qRank, cRank)
	sb := signature(b, qRank, cRank)
	if sb < sa {
		sa, sb = sb, sa
	}

	return sa + "||" + sb
}

// rankOf maps each id in the union of two supports to its ascending rank.
func rankOf(xs, ys []int) map[int]int {
	union := unionSorted(xs, ys)
	rank := make(map[int]int, len(union))
	for i, id := range union {
		rank[id] = i
	}

	return rank
}

// signature renders one operation relative to the pair's joint support.
func signature(op *circuit.Operation, qRank, cRank map[int]int) string {
	var sb strings.Builder
	sb.WriteString(op.Name())
	sb.WriteByte('/')
	sb.WriteString(strconv.Itoa(int(op.Kind())))
	for _, p := range op.Params() {
		sb.WriteByte(';')
		sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	sb.WriteString("@q")
	for _, q := range op.Qubits() {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(qRank[q]))
	}
	sb.WriteString("@c")
	for _, c := range op.Clbits() {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(cRank[c]))
	}

	return sb.String()
}
