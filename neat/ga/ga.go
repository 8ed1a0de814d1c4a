// Package ga ties speciation, selection, crossover, and mutation together
// into a single per-generation evolutionary loop.
package ga

import (
	"fmt"

	"github.com/nanite-labs/goneat-core/neat/config"
	"github.com/nanite-labs/goneat-core/neat/genetics"
	"github.com/nanite-labs/goneat-core/neat/neaterr"
	"github.com/nanite-labs/goneat-core/neat/selection"
	"github.com/nanite-labs/goneat-core/neat/speciation"
)

// Evaluated pairs a genome with the fitness the caller computed for it.
// GeneticAlgorithm never computes fitness itself; fitness evaluation is
// entirely the caller's concern, since it is domain-specific.
type Evaluated struct {
	Genome  genetics.Genome
	Fitness float32
}

// GeneticAlgorithm produces the next generation from an evaluated
// population: speciate, then within each species draw two parents by
// roulette selection, cross them, and mutate the child, producing exactly
// as many children as the species had members.
type GeneticAlgorithm struct {
	Speciation speciation.Threshold[Evaluated]
	Selection  selection.Roulette[Evaluated]
	Crossover  genetics.Crossover
	Mutation   genetics.Mutation
	Counter    *genetics.InnovationCounter
}

// New builds a GeneticAlgorithm from a speciation comparator and threshold,
// a crossover, a mutation, and the shared innovation counter. Selection is
// always fitness-proportionate roulette over Evaluated.Fitness.
func New(
	speciationCompare speciation.Comparator[Evaluated],
	speciationThreshold float32,
	crossover genetics.Crossover,
	mutation genetics.Mutation,
	counter *genetics.InnovationCounter,
) GeneticAlgorithm {
	return GeneticAlgorithm{
		Speciation: speciation.NewThreshold(speciationCompare, speciationThreshold),
		Selection:  selection.NewRoulette(func(e Evaluated) float32 { return e.Fitness }),
		Crossover:  crossover,
		Mutation:   mutation,
		Counter:    counter,
	}
}

// Evolve produces the next generation's genomes (unevaluated -- the caller
// computes their fitnesses before the next Evolve call). Returns
// ErrEmptyPopulation if population is empty.
func (ga GeneticAlgorithm) Evolve(rng genetics.RNG, population []Evaluated) ([]genetics.Genome, error) {
	if len(population) == 0 {
		return nil, neaterr.ErrEmptyPopulation
	}

	species := ga.Speciation.Speciate(population)
	config.DebugLog(fmt.Sprintf("ga: speciated %d individuals into %d species", len(population), len(species)))

	children := make([]genetics.Genome, 0, len(population))
	for speciesIdx, members := range species {
		for i := 0; i < len(members); i++ {
			parentA, err := ga.Selection.Select(rng, members)
			if err != nil {
				return nil, err
			}
			parentB, err := ga.Selection.Select(rng, members)
			if err != nil {
				return nil, err
			}

			child := ga.Crossover.Cross(rng, parentA.Genome, parentA.Fitness, parentB.Genome, parentB.Fitness)
			edgesBefore := child.Edges.Len()
			hiddenBefore := len(child.Nodes.Hidden)
			ga.Mutation.Mutate(rng, &child, ga.Counter)
			if len(child.Nodes.Hidden) != hiddenBefore || child.Edges.Len() != edgesBefore {
				config.DebugLog(fmt.Sprintf("ga: species %d child grew from %d/%d to %d/%d hidden/edges",
					speciesIdx, hiddenBefore, edgesBefore, len(child.Nodes.Hidden), child.Edges.Len()))
			}
			children = append(children, child)
		}
	}
	return children, nil
}
