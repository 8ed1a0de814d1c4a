// Package selection implements fitness-proportionate parent selection.
package selection

import (
	"github.com/nanite-labs/goneat-core/neat/genetics"
	"github.com/nanite-labs/goneat-core/neat/neaterr"
)

// Fitness extracts the scalar fitness of an individual for weighting.
type Fitness[T any] func(T) float32

// Roulette selects individuals with probability proportional to fitness,
// generalized from a weighted-choice-over-a-slice to any individual type
// via a Fitness extractor.
type Roulette[T any] struct {
	Fitness Fitness[T]
}

// NewRoulette builds a Roulette selector.
func NewRoulette[T any](fitness Fitness[T]) Roulette[T] {
	return Roulette[T]{Fitness: fitness}
}

// Select draws one individual from population, weighted by fitness.
// Returns ErrEmptyPopulation if population is empty, or
// ErrDegenerateFitness if the fitness sum is not strictly positive (a
// zero or negative total makes proportional weighting undefined).
func (r Roulette[T]) Select(rng genetics.RNG, population []T) (T, error) {
	var zero T
	if len(population) == 0 {
		return zero, neaterr.ErrEmptyPopulation
	}

	total := float32(0)
	for _, individual := range population {
		total += r.Fitness(individual)
	}
	if total <= 0 {
		return zero, neaterr.ErrDegenerateFitness
	}

	target := rng.Float32() * total
	var acc float32
	for _, individual := range population {
		acc += r.Fitness(individual)
		if acc >= target {
			return individual, nil
		}
	}
	// Floating point rounding may leave acc just short of target; fall back
	// to the last individual.
	return population[len(population)-1], nil
}
