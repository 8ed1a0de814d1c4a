// Package rational provides the exact node-level arithmetic used to order
// network activations and to choose midpoints when an edge is split. A
// floating-point midpoint would eventually collide or reorder under
// repeated bisection; big.Rat keeps every comparison and midpoint exact.
package rational

import "math/big"

// Level is a node's position in the topological ordering, represented as a
// reduced rational. Input nodes sit at MinLevel, output nodes at MaxLevel,
// hidden nodes strictly between.
type Level struct {
	r big.Rat
}

// MinLevel is the level assigned to every input node.
func MinLevel() Level {
	return FromInt64(1, 1)
}

// MaxLevel is the level assigned to every output node.
func MaxLevel() Level {
	return FromInt64(100, 1)
}

// FromInt64 builds a Level from a num/den pair. Panics if den is zero.
func FromInt64(num, den int64) Level {
	var l Level
	l.r.SetFrac64(num, den)
	return l
}

// Midpoint returns the exact (a+b)/2, used when an edge is split by
// add-node mutation.
func Midpoint(a, b Level) Level {
	var sum big.Rat
	sum.Add(&a.r, &b.r)
	var half big.Rat
	half.SetFrac64(1, 2)
	var out Level
	out.r.Mul(&sum, &half)
	return out
}

// Compare returns -1, 0, or 1 the way big.Rat.Cmp does.
func (l Level) Compare(other Level) int {
	return l.r.Cmp(&other.r)
}

// Less reports whether l sorts strictly before other.
func (l Level) Less(other Level) bool {
	return l.Compare(other) < 0
}

// LessOrEqual reports whether l sorts at or before other; recurrent edges
// are defined by the negation of the strict Less relation (equal levels are
// recurrent, not forward).
func (l Level) LessOrEqual(other Level) bool {
	return l.Compare(other) <= 0
}

// Equal reports whether the two levels are the same rational value.
func (l Level) Equal(other Level) bool {
	return l.Compare(other) == 0
}

// String renders the level as "num/den" for logging.
func (l Level) String() string {
	return l.r.RatString()
}

// Float64 returns an approximate float64 view, for logging and telemetry
// only; never used in comparisons or midpoint computation.
func (l Level) Float64() float64 {
	f, _ := l.r.Float64()
	return f
}
