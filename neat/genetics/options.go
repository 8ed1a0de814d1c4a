package genetics

import "github.com/nanite-labs/goneat-core/neat/config"

// MutationFromOptions builds a Mutation from a config.Options' probability
// matrix, weight-jitter coefficient, and max add-edge attempts. Lives here
// rather than on config.Options itself so that config stays free of a
// genetics import, which in turn lets genetics import config for its
// leveled logger without an import cycle.
func MutationFromOptions(o *config.Options) Mutation {
	return Mutation{
		Prob: ProbabilityMatrix{
			Node: NodeProbabilities{
				Clamp:       o.Probabilities.Node.Clamp,
				Activation:  o.Probabilities.Node.Activation,
				Aggregation: o.Probabilities.Node.Aggregation,
			},
			Edge: EdgeProbabilities{
				Enabled: o.Probabilities.Edge.Enabled,
				Weight:  o.Probabilities.Edge.Weight,
				NewNode: o.Probabilities.Edge.NewNode,
				NewEdge: o.Probabilities.Edge.NewEdge,
			},
		},
		Coeff:        float32(o.WeightJitterCoeff),
		MaxIteration: o.MaxAddEdgeAttempts,
	}
}

// CrossoverFromOptions builds a Crossover from a config.Options' clamp
// range.
func CrossoverFromOptions(o *config.Options) Crossover {
	return NewCrossover(float32(o.ClampRange))
}
