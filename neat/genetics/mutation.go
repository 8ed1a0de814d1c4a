package genetics

import (
	"fmt"
	"math"

	"github.com/nanite-labs/goneat-core/neat/activation"
	"github.com/nanite-labs/goneat-core/neat/aggregation"
	"github.com/nanite-labs/goneat-core/neat/config"
	"github.com/nanite-labs/goneat-core/neat/rational"
)

// NodeProbabilities are the per-node mutation draw probabilities.
type NodeProbabilities struct {
	Clamp       float64
	Activation  float64
	Aggregation float64
}

// EdgeProbabilities are the per-edge and per-genome mutation draw
// probabilities.
type EdgeProbabilities struct {
	Enabled float64
	Weight  float64
	NewNode float64
	NewEdge float64
}

// ProbabilityMatrix is the full set of independent Bernoulli draw
// probabilities mutation consults, replacing ad-hoc named parameters with a
// single flat config struct.
type ProbabilityMatrix struct {
	Node NodeProbabilities
	Edge EdgeProbabilities
}

// DefaultProbabilityMatrix is a coin flip on everything except the
// topological growth probabilities, which default lower than 0.5 to keep
// genomes from exploding in size across generations; see DESIGN.md.
func DefaultProbabilityMatrix() ProbabilityMatrix {
	return ProbabilityMatrix{
		Node: NodeProbabilities{Clamp: 0.5, Activation: 0.5, Aggregation: 0.5},
		Edge: EdgeProbabilities{Enabled: 0.5, Weight: 0.5, NewNode: 0.03, NewEdge: 0.05},
	}
}

// Mutation implements weight jitter and topological growth: inserting nodes
// and edges, assigning fresh innovation numbers via a shared counter.
type Mutation struct {
	Prob ProbabilityMatrix
	// Coeff scales weight perturbations.
	Coeff float32
	// MaxIteration bounds retries when adding a new edge.
	MaxIteration int
}

// DefaultMutation builds a Mutation with the documented defaults: coeff 1.0,
// max 10 add-edge attempts.
func DefaultMutation() Mutation {
	return Mutation{Prob: DefaultProbabilityMatrix(), Coeff: 1.0, MaxIteration: 10}
}

func weightJitter(rng RNG, coeff float32) float32 {
	return (rng.Float32()*2 - 1) * coeff
}

// mutateClamp jitters each present bound by (U(0,1)*2-1)*1.
func mutateClamp(rng RNG, c Clamp) Clamp {
	if c.HasMin {
		c.Min += weightJitter(rng, 1)
	}
	if c.HasMax {
		c.Max += weightJitter(rng, 1)
	}
	return c
}

// mutateAggregation resamples the variant uniformly.
func mutateAggregation(rng RNG) aggregation.Kind {
	return aggregation.FromIndex(rng.IntN(aggregation.NumKinds()))
}

// mutateActivation resamples the variant uniformly; if the new variant
// carries parameters, draws them as weight jitter.
func mutateActivation(rng RNG) activation.Variant {
	kind := activation.FromIndex(rng.IntN(activation.NumKinds()))
	v := activation.New(kind)
	if v.HasParam() {
		v.Param1 = weightJitter(rng, 1)
	}
	return v
}

// MutateNodeConfig applies the per-node probability draws to a single
// node's config: clamp jitter, aggregation resample, activation resample.
func (m Mutation) MutateNodeConfig(rng RNG, cfg NodeConfig) NodeConfig {
	if rng.Bool(m.Prob.Node.Clamp) {
		cfg.Clamp = mutateClamp(rng, cfg.Clamp)
	}
	if rng.Bool(m.Prob.Node.Aggregation) {
		cfg.Aggregation = mutateAggregation(rng)
	}
	if rng.Bool(m.Prob.Node.Activation) {
		cfg.Activation = mutateActivation(rng)
	}
	return cfg
}

// MutateEdge applies the per-edge probability draws: enabled-flag flip and
// weight jitter.
func (m Mutation) MutateEdge(rng RNG, e Edge) Edge {
	if rng.Bool(m.Prob.Edge.Enabled) {
		e.Enabled = !e.Enabled
	}
	if rng.Bool(m.Prob.Edge.Weight) {
		e.Weight += weightJitter(rng, m.Coeff)
	}
	return e
}

// Mutate applies the full mutation pass to a genome in place: per-node
// config mutation over hidden and output nodes, per-edge weight/enabled
// mutation, then at most one add-node and one add-edge structural draw.
func (m Mutation) Mutate(rng RNG, g *Genome, counter *InnovationCounter) {
	for i := range g.Nodes.Hidden {
		g.Nodes.Hidden[i].Config = m.MutateNodeConfig(rng, g.Nodes.Hidden[i].Config)
	}
	for i := range g.Nodes.Output {
		g.Nodes.Output[i].Config = m.MutateNodeConfig(rng, g.Nodes.Output[i].Config)
	}

	edges := g.Edges.Edges()
	for i := range edges {
		edges[i] = m.MutateEdge(rng, edges[i])
	}

	if rng.Bool(m.Prob.Edge.NewNode) {
		m.addNode(rng, g, counter)
	}
	if rng.Bool(m.Prob.Edge.NewEdge) {
		m.addEdge(rng, g, counter)
	}
}

// addNode picks a uniformly random edge, disables it, and splits it with a
// new hidden node at the exact rational midpoint of its endpoints' levels,
// wiring two fresh edges (in->new, new->out). Burns three innovation
// numbers: one for the node id, one per new edge (per-event numbering).
func (m Mutation) addNode(rng RNG, g *Genome, counter *InnovationCounter) {
	edges := g.Edges.Edges()
	if len(edges) == 0 {
		return
	}
	idx := rng.IntN(len(edges))
	edge := edges[idx]

	nodeStart, ok := g.Nodes.findNode(edge.InNode)
	if !ok {
		return
	}
	nodeEnd, ok := g.Nodes.findNode(edge.OutNode)
	if !ok {
		return
	}

	edges[idx].Enabled = false

	newNodeID := int(counter.Next())
	newNode := Node{
		NodeID: newNodeID,
		Level:  rational.Midpoint(nodeStart.Level, nodeEnd.Level),
		Config: NodeConfig{
			Aggregation: mutateAggregation(rng),
			Clamp:       Clamp{},
			Activation:  mutateActivation(rng),
		},
	}

	edge1 := Edge{
		InnovationNum: counter.Next(),
		InNode:        nodeStart.NodeID,
		OutNode:       newNodeID,
		Weight:        rng.Float32()*2 - 1,
		Enabled:       true,
	}
	edge2 := Edge{
		InnovationNum: counter.Next(),
		InNode:        newNodeID,
		OutNode:       nodeEnd.NodeID,
		Weight:        rng.Float32()*2 - 1,
		Enabled:       true,
	}

	g.Nodes.InsertHidden(newNode)
	g.Edges.Append(edge1)
	g.Edges.Append(edge2)

	config.DebugLog(fmt.Sprintf("mutation: split edge %d->%d with node %d (edge innovations %d,%d)",
		nodeStart.NodeID, nodeEnd.NodeID, newNodeID, edge1.InnovationNum, edge2.InnovationNum))
}

// addEdge computes the theoretical edge capacity and, if the genome is not
// already saturated, draws a bounded number of random (start, end) pairs
// until an unused one is found or attempts run out. Denser graphs retry
// more: attempts is ceil(ln(0.01)/ln(fill ratio)), at least 2 and at most
// MaxIteration.
func (m Mutation) addEdge(rng RNG, g *Genome, counter *InnovationCounter) {
	nInputs := len(g.Nodes.Input)
	nNonInput := len(g.Nodes.Hidden) + len(g.Nodes.Output)
	capacity := nInputs*nNonInput + nNonInput*(nNonInput-1)
	if capacity <= 0 || g.Edges.Len() >= capacity {
		return
	}

	ratio := float64(g.Edges.Len()) / float64(capacity)
	attempts := 2
	if ratio > 0 && ratio < 1 {
		logR := math.Log(0.01) / math.Log(ratio)
		if c := int(math.Ceil(logR)); c > attempts {
			attempts = c
		}
	}
	if attempts > m.MaxIteration {
		attempts = m.MaxIteration
	}

	starts := make([]Node, 0, nInputs+nNonInput)
	starts = append(starts, g.Nodes.Input...)
	starts = append(starts, g.Nodes.Hidden...)
	starts = append(starts, g.Nodes.Output...)

	ends := make([]Node, 0, nNonInput)
	ends = append(ends, g.Nodes.Hidden...)
	ends = append(ends, g.Nodes.Output...)

	if len(starts) == 0 || len(ends) == 0 {
		return
	}

	for a := 0; a < attempts; a++ {
		start := starts[rng.IntN(len(starts))]
		end := ends[rng.IntN(len(ends))]
		if g.Edges.Contains(start.NodeID, end.NodeID) {
			continue
		}
		innov := counter.Next()
		g.Edges.Append(Edge{
			InnovationNum: innov,
			InNode:        start.NodeID,
			OutNode:       end.NodeID,
			Weight:        rng.Float32()*2 - 1,
			Enabled:       rng.Bool(0.9),
		})
		config.DebugLog(fmt.Sprintf("mutation: added edge %d->%d (innovation %d) after %d attempt(s)",
			start.NodeID, end.NodeID, innov, a+1))
		return
	}
}
