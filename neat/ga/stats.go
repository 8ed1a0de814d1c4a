package ga

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Fitnesses provides descriptive statistics over one generation's fitness
// values.
type Fitnesses []float64

// Min returns the smallest fitness in the generation.
func (x Fitnesses) Min() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Min(x)
}

// Max returns the greatest fitness in the generation.
func (x Fitnesses) Max() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Max(x)
}

// Sum returns the total fitness of the generation.
func (x Fitnesses) Sum() float64 {
	return floats.Sum(x)
}

// Mean returns the average fitness of the generation.
func (x Fitnesses) Mean() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// StdDev returns the standard deviation of the generation's fitnesses.
func (x Fitnesses) StdDev() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.StdDev(x, nil)
}

// Median returns the 50% quantile fitness. stat.Quantile requires sorted
// input, so this sorts a copy rather than mutating the receiver.
func (x Fitnesses) Median() float64 {
	return x.quantile(0.5)
}

func (x Fitnesses) quantile(p float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	sorted := append(Fitnesses(nil), x...)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Summary collects the statistics GA callers commonly log per generation.
type Summary struct {
	Min, Max, Mean, Median, StdDev float64
}

// Summarize computes a Summary from a generation's evaluated population.
func Summarize(population []Evaluated) Summary {
	values := make(Fitnesses, len(population))
	for i, e := range population {
		values[i] = float64(e.Fitness)
	}
	return Summary{
		Min:    values.Min(),
		Max:    values.Max(),
		Mean:   values.Mean(),
		Median: values.Median(),
		StdDev: values.StdDev(),
	}
}
