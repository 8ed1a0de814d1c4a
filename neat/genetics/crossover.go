package genetics

import (
	"fmt"
	"math"

	"github.com/nanite-labs/goneat-core/neat/activation"
	"github.com/nanite-labs/goneat-core/neat/aggregation"
)

// DefaultCrossoverRange is the clamp range R used by scalarCrossover's
// sigmoid-weighted interpolation: the documented default crossover range.
const DefaultCrossoverRange float32 = 1000

// Crossover implements the NEAT crossover operator: merging two parents'
// sorted historical-marking streams with a fitness-weighted interpolation
// for matching genes.
type Crossover struct {
	// Range bounds the two parents' fitness values before computing the
	// interpolation exponent, preventing extreme fitness differences from
	// collapsing the exponent.
	Range float32
}

// NewCrossover builds a Crossover with the given range parameter R.
func NewCrossover(rangeParam float32) Crossover {
	if rangeParam < 0 {
		rangeParam = -rangeParam
	}
	return Crossover{Range: rangeParam}
}

// DefaultCrossover builds a Crossover using DefaultCrossoverRange.
func DefaultCrossover() Crossover {
	return NewCrossover(DefaultCrossoverRange)
}

// exponent computes the sigmoid-weighted interpolation exponent shared by
// scalarCrossover and bernoulliChoiceF32:
//
//	d      = sigmoid(wa - wb)
//	factor = ln((clamp(wa)-clamp(wb))^2 + e)
//	exp    = d*(factor - 1/factor) + 1/factor
func exponent(rangeParam, wa, wb float32) float32 {
	ca := clampTo(wa, rangeParam)
	cb := clampTo(wb, rangeParam)
	diff := ca - cb
	factor := float32(math.Log(float64(diff*diff + float32(math.E))))
	d := activation.New(activation.Sigmoid).Activate(wa - wb)
	return d*(factor-1/factor) + 1/factor
}

func clampTo(x, bound float32) float32 {
	if x > bound {
		return bound
	}
	if x < -bound {
		return -bound
	}
	return x
}

// scalarCrossover performs fitness-biased interpolation between two scalar
// weights: higher-fitness parent's value is more likely; at equal fitness
// the blend is unbiased.
func (c Crossover) scalarCrossover(rng RNG, a, fitA, b, fitB float32) float32 {
	exp := exponent(c.Range, fitA, fitB)
	u := rng.Float32()
	t := float32(math.Pow(float64(u), float64(exp)))
	return a*(1-t) + t*b
}

// bernoulliChoiceF32 is scalarCrossover's Bernoulli-choice sibling: it
// reports true (take parent A's item) when u^exponent < 0.5, else false
// (take parent B's). Used for the edge enabled flag, clamp-bound presence,
// and differing activation/aggregation variants.
func (c Crossover) bernoulliChoiceF32(rng RNG, fitA, fitB float32) bool {
	exp := exponent(c.Range, fitA, fitB)
	u := rng.Float32()
	t := float32(math.Pow(float64(u), float64(exp)))
	return t < 0.5
}

// CrossEdges crosses over two matching edges (equal innovation number). The
// in/out node ids must match -- a mismatch is a programmer error, not a
// recoverable condition.
func (c Crossover) CrossEdges(rng RNG, a Edge, fitA float32, b Edge, fitB float32) Edge {
	if a.InNode != b.InNode || a.OutNode != b.OutNode {
		panic(fmt.Sprintf("neat: crossing mismatched edges %s / %s", a.String(), b.String()))
	}
	if a.InnovationNum != b.InnovationNum {
		panic(fmt.Sprintf("neat: crossing edges with differing innovation numbers %d / %d", a.InnovationNum, b.InnovationNum))
	}
	weight := c.scalarCrossover(rng, a.Weight, fitA, b.Weight, fitB)
	enabled := a.Enabled
	if !c.bernoulliChoiceF32(rng, fitA, fitB) {
		enabled = b.Enabled
	}
	return Edge{
		InnovationNum: a.InnovationNum,
		InNode:        a.InNode,
		OutNode:       a.OutNode,
		Weight:        weight,
		Enabled:       enabled,
	}
}

// crossClamp crosses the min/max bounds independently: if one parent has a
// bound and the other does not, presence/absence is a Bernoulli choice; if
// both present, the bound value is a scalar crossover.
func (c Crossover) crossClamp(rng RNG, a Clamp, fitA float32, b Clamp, fitB float32) Clamp {
	var out Clamp
	switch {
	case a.HasMin && b.HasMin:
		out.HasMin = true
		out.Min = c.scalarCrossover(rng, a.Min, fitA, b.Min, fitB)
	case a.HasMin || b.HasMin:
		if c.bernoulliChoiceF32(rng, fitA, fitB) {
			out.Min, out.HasMin = a.Min, a.HasMin
		} else {
			out.Min, out.HasMin = b.Min, b.HasMin
		}
	}
	switch {
	case a.HasMax && b.HasMax:
		out.HasMax = true
		out.Max = c.scalarCrossover(rng, a.Max, fitA, b.Max, fitB)
	case a.HasMax || b.HasMax:
		if c.bernoulliChoiceF32(rng, fitA, fitB) {
			out.Max, out.HasMax = a.Max, a.HasMax
		} else {
			out.Max, out.HasMax = b.Max, b.HasMax
		}
	}
	return out
}

// crossActivation: same variant on both sides crosses the variant's
// internal parameter via scalar crossover; differing variants fall through
// to a whole-variant Bernoulli pick (a locally-recovered mismatch, not an
// error).
func (c Crossover) crossActivation(rng RNG, a activation.Variant, fitA float32, b activation.Variant, fitB float32) activation.Variant {
	if a.Kind != b.Kind {
		if c.bernoulliChoiceF32(rng, fitA, fitB) {
			return a
		}
		return b
	}
	if !a.HasParam() {
		return a
	}
	return activation.Variant{Kind: a.Kind, Param1: c.scalarCrossover(rng, a.Param1, fitA, b.Param1, fitB)}
}

// crossAggregation: equal variants are kept, differing variants are a
// Bernoulli pick.
func (c Crossover) crossAggregation(rng RNG, a aggregation.Kind, fitA float32, b aggregation.Kind, fitB float32) aggregation.Kind {
	if a == b {
		return a
	}
	if c.bernoulliChoiceF32(rng, fitA, fitB) {
		return a
	}
	return b
}

// CrossNodes crosses two nodes that must share a node id and level
// (asserted); each config field crosses independently.
func (c Crossover) CrossNodes(rng RNG, a Node, fitA float32, b Node, fitB float32) Node {
	if a.NodeID != b.NodeID {
		panic(fmt.Sprintf("neat: crossing nodes with differing ids %d / %d", a.NodeID, b.NodeID))
	}
	if !a.Level.Equal(b.Level) {
		panic(fmt.Sprintf("neat: crossing nodes %d with differing levels %s / %s", a.NodeID, a.Level, b.Level))
	}
	return Node{
		NodeID: a.NodeID,
		Level:  a.Level,
		Config: NodeConfig{
			Aggregation: c.crossAggregation(rng, a.Config.Aggregation, fitA, b.Config.Aggregation, fitB),
			Clamp:       c.crossClamp(rng, a.Config.Clamp, fitA, b.Config.Clamp, fitB),
			Activation:  c.crossActivation(rng, a.Config.Activation, fitA, b.Config.Activation, fitB),
		},
	}
}

// mergeNodes merges two hidden-node streams (sorted by NodeID): elements
// present in only one parent are copied; elements with matching ids cross
// over via CrossNodes; when one stream exhausts, the other's tail is
// appended verbatim.
func (c Crossover) mergeNodes(rng RNG, a []Node, fitA float32, b []Node, fitB float32) []Node {
	out := make([]Node, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].NodeID < b[j].NodeID:
			out = append(out, a[i])
			i++
		case a[i].NodeID > b[j].NodeID:
			out = append(out, b[j])
			j++
		default:
			out = append(out, c.CrossNodes(rng, a[i], fitA, b[j], fitB))
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// mergeEdges merges two edge streams (sorted by InnovationNum) the same way
// mergeNodes merges hidden nodes, crossing over matching innovations with
// CrossEdges.
func (c Crossover) mergeEdges(rng RNG, a []Edge, fitA float32, b []Edge, fitB float32) []Edge {
	out := make([]Edge, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].InnovationNum < b[j].InnovationNum:
			out = append(out, a[i])
			i++
		case a[i].InnovationNum > b[j].InnovationNum:
			out = append(out, b[j])
			j++
		default:
			out = append(out, c.CrossEdges(rng, a[i], fitA, b[j], fitB))
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Cross merges parent A and parent B into a child genome. The child's
// input node list is inherited from parent A by reference; its output
// nodes are a new slice crossed element-wise from both parents (symmetric
// with hidden nodes); its hidden nodes and edges are the fitness-weighted
// merge of both parents' historical-marking streams.
func (c Crossover) Cross(rng RNG, parentA Genome, fitnessA float32, parentB Genome, fitnessB float32) Genome {
	mergedOutput := c.mergeOutputs(rng, parentA.Nodes.Output, fitnessA, parentB.Nodes.Output, fitnessB)
	child := Genome{
		Nodes: NodeList{
			Input:  parentA.Nodes.Input,
			Output: mergedOutput,
			Hidden: c.mergeNodes(rng, parentA.Nodes.Hidden, fitnessA, parentB.Nodes.Hidden, fitnessB),
		},
		Edges: NewOrderedGenomeListFromSorted(c.mergeEdges(rng, parentA.Edges.Edges(), fitnessA, parentB.Edges.Edges(), fitnessB)),
	}
	return child
}

// mergeOutputs crosses output node configs element-wise (outputs are
// positionally aligned and share ids/levels across every genome from the
// same factory, so no historical-marking merge is needed -- just a
// per-node crossover).
func (c Crossover) mergeOutputs(rng RNG, a []Node, fitA float32, b []Node, fitB float32) []Node {
	out := make([]Node, len(a))
	for i := range a {
		out[i] = c.CrossNodes(rng, a[i], fitA, b[i], fitB)
	}
	return out
}
