package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanite-labs/goneat-core/neat/genetics"
	"github.com/nanite-labs/goneat-core/neat/neaterr"
	"github.com/nanite-labs/goneat-core/neat/speciation"
)

func buildPopulation(t *testing.T, n int) []Evaluated {
	t.Helper()
	factory, err := genetics.NewGenomeFactory(2, 1)
	require.NoError(t, err)
	population := make([]Evaluated, n)
	for i := 0; i < n; i++ {
		population[i] = Evaluated{Genome: factory.NewGenome(), Fitness: float32(i + 1)}
	}
	return population
}

// alwaysSame groups every individual into a single species.
func alwaysSame(a, b Evaluated) float32 { return 1 }

// neverSame founds a new species per individual.
func neverSame(a, b Evaluated) float32 { return 0 }

func newTestGA(compare speciation.Comparator[Evaluated], threshold float32) GeneticAlgorithm {
	return New(compare, threshold, genetics.DefaultCrossover(), genetics.DefaultMutation(), genetics.NewInnovationCounter(0))
}

func TestEvolveEmptyPopulationReturnsError(t *testing.T) {
	g := newTestGA(alwaysSame, 0.5)
	rng := genetics.NewMathRandRNG(rand.New(rand.NewSource(1)))
	_, err := g.Evolve(rng, nil)
	assert.ErrorIs(t, err, neaterr.ErrEmptyPopulation)
}

// TestEvolveProducesOneChildPerParent: regardless of how speciation buckets
// the population, the total number of children equals the total number of
// evaluated individuals fed in.
func TestEvolveProducesOneChildPerParent(t *testing.T) {
	for _, compare := range []speciation.Comparator[Evaluated]{alwaysSame, neverSame} {
		population := buildPopulation(t, 6)
		g := newTestGA(compare, 0.5)
		rng := genetics.NewMathRandRNG(rand.New(rand.NewSource(2)))

		children, err := g.Evolve(rng, population)
		require.NoError(t, err)
		assert.Len(t, children, len(population))
	}
}

func TestEvolveChildrenAreValidGenomes(t *testing.T) {
	population := buildPopulation(t, 4)
	g := newTestGA(alwaysSame, 0.5)
	rng := genetics.NewMathRandRNG(rand.New(rand.NewSource(3)))

	children, err := g.Evolve(rng, population)
	require.NoError(t, err)
	for _, child := range children {
		assert.NotPanics(t, func() { child.MustValid() })
	}
}
