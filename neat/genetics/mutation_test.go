package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanite-labs/goneat-core/neat/rational"
)

func baseGenomeForMutation() Genome {
	return Genome{
		Nodes: NodeList{
			Input:  []Node{{NodeID: 0, Level: rational.MinLevel()}},
			Output: []Node{{NodeID: 1, Level: rational.MaxLevel()}},
		},
		Edges: NewOrderedGenomeListFromSorted([]Edge{
			{InnovationNum: 0, InNode: 0, OutNode: 1, Weight: 1, Enabled: true},
		}),
	}
}

func TestAddNodeSplitsEdgeAtExactMidpoint(t *testing.T) {
	m := DefaultMutation()
	g := baseGenomeForMutation()
	counter := NewInnovationCounter(100)

	rng := newSequenceRNG(0) // IntN picks edge 0
	m.addNode(rng, &g, counter)

	require.Len(t, g.Nodes.Hidden, 1)
	newNode := g.Nodes.Hidden[0]
	expected := rational.Midpoint(rational.MinLevel(), rational.MaxLevel())
	assert.True(t, newNode.Level.Equal(expected))

	// original edge disabled, two new edges added
	require.Equal(t, 3, g.Edges.Len())
	assert.False(t, g.Edges.At(0).Enabled)
}

func TestAddNodeBurnsThreeInnovationNumbers(t *testing.T) {
	m := DefaultMutation()
	g := baseGenomeForMutation()
	counter := NewInnovationCounter(0)

	rng := newSequenceRNG(0)
	m.addNode(rng, &g, counter)

	assert.Equal(t, int64(3), counter.Peek())
}

func TestAddNodeNoOpOnEmptyEdgeList(t *testing.T) {
	m := DefaultMutation()
	g := Genome{Nodes: NodeList{Input: []Node{{NodeID: 0}}, Output: []Node{{NodeID: 1}}}}
	counter := NewInnovationCounter(0)
	m.addNode(newSequenceRNG(0), &g, counter)
	assert.Equal(t, int64(0), counter.Peek())
}

func TestAddEdgeNoOpWhenSaturated(t *testing.T) {
	m := DefaultMutation()
	// 1 input, 1 output -> capacity = 1*1 + 1*0 = 1, already at capacity.
	g := baseGenomeForMutation()
	counter := NewInnovationCounter(0)

	m.addEdge(newSequenceRNG(0.1, 0.2, 0.3), &g, counter)

	assert.Equal(t, 1, g.Edges.Len())
	assert.Equal(t, int64(0), counter.Peek())
}

func TestAddEdgeAddsNonCollidingPair(t *testing.T) {
	m := DefaultMutation()
	g := Genome{
		Nodes: NodeList{
			Input:  []Node{{NodeID: 0}, {NodeID: 1}},
			Output: []Node{{NodeID: 2}},
		},
	}
	counter := NewInnovationCounter(0)

	m.addEdge(newSequenceRNG(0, 0.95), &g, counter)

	require.Equal(t, 1, g.Edges.Len())
	e := g.Edges.At(0)
	assert.Equal(t, int64(0), e.InnovationNum)
}

func TestMutateEdgeWeightJitterBounded(t *testing.T) {
	m := Mutation{Prob: ProbabilityMatrix{Edge: EdgeProbabilities{Weight: 1}}, Coeff: 2}
	e := Edge{Weight: 0}
	// Enabled has probability 0 so its Bool draw never fires; the Weight
	// draw fires (p=1) and the jitter draw yields (0*2-1)*2 = -2.
	rng := newSequenceRNG(0.0)
	mutated := m.MutateEdge(rng, e)
	assert.InDelta(t, -2.0, mutated.Weight, 1e-6)
}

// TestMutationMonotoneInnovation: after K mutations, the maximum innovation
// number observed is bounded above by initial_counter + 3K (each add-node
// burns 3, each add-edge burns 1), and is non-decreasing.
func TestMutationMonotoneInnovation(t *testing.T) {
	m := DefaultMutation()
	g := baseGenomeForMutation()
	counter := NewInnovationCounter(0)
	rng := NewMathRandRNG(rand.New(rand.NewSource(7)))

	const k = 30
	lastMax := int64(-1)
	for i := 0; i < k; i++ {
		m.Mutate(rng, &g, counter)

		currentMax := int64(-1)
		for _, e := range g.Edges.Edges() {
			if e.InnovationNum > currentMax {
				currentMax = e.InnovationNum
			}
		}
		assert.GreaterOrEqual(t, currentMax, lastMax)
		lastMax = currentMax
	}
	assert.LessOrEqual(t, counter.Peek(), int64(3*k))
}
