package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleGenome(weight float32, innov int64) Genome {
	return Genome{
		Nodes: NodeList{
			Input:  []Node{{NodeID: 0}},
			Output: []Node{{NodeID: 1}},
		},
		Edges: NewOrderedGenomeListFromSorted([]Edge{
			{InnovationNum: innov, InNode: 0, OutNode: 1, Weight: weight, Enabled: true},
		}),
	}
}

func TestCrossEdgesPanicsOnMismatchedEndpoints(t *testing.T) {
	c := DefaultCrossover()
	a := Edge{InnovationNum: 1, InNode: 0, OutNode: 1}
	b := Edge{InnovationNum: 1, InNode: 0, OutNode: 2}
	assert.Panics(t, func() { c.CrossEdges(newSequenceRNG(0.5), a, 1, b, 1) })
}

func TestCrossEdgesPanicsOnMismatchedInnovation(t *testing.T) {
	c := DefaultCrossover()
	a := Edge{InnovationNum: 1, InNode: 0, OutNode: 1}
	b := Edge{InnovationNum: 2, InNode: 0, OutNode: 1}
	assert.Panics(t, func() { c.CrossEdges(newSequenceRNG(0.5), a, 1, b, 1) })
}

func TestCrossNodesPanicsOnMismatchedID(t *testing.T) {
	c := DefaultCrossover()
	a := Node{NodeID: 1}
	b := Node{NodeID: 2}
	assert.Panics(t, func() { c.CrossNodes(newSequenceRNG(0.5), a, 1, b, 1) })
}

func TestCrossChildInnovationSetIsUnionOfParents(t *testing.T) {
	c := DefaultCrossover()
	a := simpleGenome(1, 1)
	a.Edges.Append(Edge{InnovationNum: 3, InNode: 0, OutNode: 1, Weight: 1, Enabled: true})
	b := simpleGenome(2, 2)

	rng := rand.New(rand.NewSource(1))
	child := c.Cross(adaptRand(rng), a, 1, b, 1)

	var got []int64
	for _, e := range child.Edges.Edges() {
		got = append(got, e.InnovationNum)
	}
	assert.ElementsMatch(t, []int64{1, 2, 3}, got)
}

func TestCrossMatchingGeneKeepsSharedInnovationNumber(t *testing.T) {
	c := DefaultCrossover()
	a := simpleGenome(1, 5)
	b := simpleGenome(2, 5)

	rng := rand.New(rand.NewSource(1))
	child := c.Cross(adaptRand(rng), a, 1, b, 1)

	require.Equal(t, 1, child.Edges.Len())
	assert.Equal(t, int64(5), child.Edges.At(0).InnovationNum)
}

// TestCrossoverSymmetryUnderEqualFitness: repeated crossover of two
// identical parents with equal fitness keeps every scalar within the
// closed hull of the (single, shared) parent values.
func TestCrossoverSymmetryUnderEqualFitness(t *testing.T) {
	c := DefaultCrossover()
	a := simpleGenome(1.5, 7)
	b := simpleGenome(1.5, 7)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		child := c.Cross(adaptRand(rng), a, 10, b, 10)
		require.Equal(t, 1, child.Edges.Len())
		w := child.Edges.At(0).Weight
		assert.InDelta(t, 1.5, w, 1e-4)
	}
}

func TestMergeOutputsIsElementWise(t *testing.T) {
	c := DefaultCrossover()
	a := []Node{{NodeID: 1}, {NodeID: 2}}
	b := []Node{{NodeID: 1}, {NodeID: 2}}
	merged := c.mergeOutputs(newSequenceRNG(0.1, 0.9), a, 1, b, 1)
	require.Len(t, merged, 2)
	assert.Equal(t, 1, merged[0].NodeID)
	assert.Equal(t, 2, merged[1].NodeID)
}

// adaptRand wraps a *rand.Rand as an RNG for tests exercising real
// pseudo-randomness rather than a fixed sequence.
func adaptRand(r *rand.Rand) RNG {
	return NewMathRandRNG(r)
}
