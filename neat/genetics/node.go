package genetics

import (
	"fmt"

	"github.com/nanite-labs/goneat-core/neat/activation"
	"github.com/nanite-labs/goneat-core/neat/aggregation"
	"github.com/nanite-labs/goneat-core/neat/rational"
)

// NodeConfig bundles the per-node aggregation, clamp, and activation
// settings that crossover and mutation operate on independently.
type NodeConfig struct {
	Aggregation aggregation.Kind
	Clamp       Clamp
	Activation  activation.Variant
}

// DefaultNodeConfig is a plain aggregation/activation pair with no clamp
// bounds.
func DefaultNodeConfig() NodeConfig {
	return NodeConfig{
		Aggregation: aggregation.Mean,
		Clamp:       Clamp{},
		Activation:  activation.New(activation.Relu),
	}
}

// Node is a single vertex in the genome's topology: an input, output, or
// hidden neuron. NodeID is stable for the life of the run; Level orders
// activations and determines forward-vs-recurrent edges.
type Node struct {
	NodeID int
	Level  rational.Level
	Config NodeConfig
}

// String renders the node for debug logging.
func (n Node) String() string {
	return fmt.Sprintf("Node{id=%d, level=%s}", n.NodeID, n.Level.String())
}
