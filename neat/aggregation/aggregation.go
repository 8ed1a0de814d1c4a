// Package aggregation implements the closed set of pending-input reducers a
// node's config may carry. Sum, Max, and Mean delegate to gonum's floats
// package for the reduction rather than hand-rolling descriptive statistics.
package aggregation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Kind identifies which aggregation variant applies.
type Kind byte

const (
	Sum Kind = iota
	Max
	Mean
	L1NormAvg
	L2NormAvg
)

const numKinds = int(L2NormAvg) + 1

// FromIndex maps a uniformly drawn index to a Kind, used by mutation's
// "resample the variant uniformly" step.
func FromIndex(i int) Kind {
	return Kind(i % numKinds)
}

// NumKinds is the number of distinct aggregation kinds.
func NumKinds() int {
	return numKinds
}

// Apply reduces the pending-input slice per the receiver's Kind. Sum over
// the empty sequence is 0; Max over the empty sequence is 0.
func (k Kind) Apply(values []float32) float32 {
	if len(values) == 0 {
		switch k {
		case Sum, Max, Mean, L1NormAvg, L2NormAvg:
			return 0
		}
	}
	switch k {
	case Sum:
		return float32(floats.Sum(toFloat64(values)))
	case Max:
		return applyMax(values)
	case Mean:
		return float32(floats.Sum(toFloat64(values))) / float32(len(values))
	case L1NormAvg:
		return l1NormAvg(values)
	case L2NormAvg:
		return l2NormAvg(values)
	default:
		return 0
	}
}

func applyMax(values []float32) float32 {
	if len(values) == 0 {
		return 0
	}
	f64 := toFloat64(values)
	return float32(floats.Max(f64))
}

func l1NormAvg(values []float32) float32 {
	if len(values) == 0 {
		return 0
	}
	var sum float32
	for _, v := range values {
		sum += float32(math.Abs(float64(v)))
	}
	return sum / float32(len(values))
}

// l2NormAvg scales by the element of largest magnitude before squaring, to
// avoid overflow on large inputs, then rescales: the Hypot pattern.
func l2NormAvg(values []float32) float32 {
	if len(values) == 0 {
		return 0
	}
	var alpha float32
	for _, v := range values {
		a := float32(math.Abs(float64(v)))
		if a > alpha {
			alpha = a
		}
	}
	if alpha == 0 {
		return 0
	}
	var sumSq float32
	for _, v := range values {
		scaled := v / alpha
		sumSq += scaled * scaled
	}
	return float32(math.Sqrt(float64(sumSq))) * alpha / float32(len(values))
}

func toFloat64(values []float32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
