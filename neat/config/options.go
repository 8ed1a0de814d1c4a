// Package config collects every tunable engine parameter into a single
// YAML-decodable struct, and carries the leveled logger every other
// package writes debug/info traces through.
package config

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// NodeProbabilityOptions mirrors genetics.NodeProbabilities for YAML
// decoding.
type NodeProbabilityOptions struct {
	Clamp       float64 `yaml:"clamp"`
	Activation  float64 `yaml:"activation"`
	Aggregation float64 `yaml:"aggregation"`
}

// EdgeProbabilityOptions mirrors genetics.EdgeProbabilities for YAML
// decoding.
type EdgeProbabilityOptions struct {
	Enabled float64 `yaml:"enabled"`
	Weight  float64 `yaml:"weight"`
	NewNode float64 `yaml:"new_node"`
	NewEdge float64 `yaml:"new_edge"`
}

// Options is the full configuration surface: clamp range, weight-jitter
// coefficient, max add-edge attempts, the probability matrix, speciation
// threshold, plus population size and generation count for the GA
// orchestrator.
type Options struct {
	// LogLevel gates the package-level logger: "debug", "info", "warn", or
	// "error".
	LogLevel string `yaml:"log_level"`

	// ClampRange is the crossover interpolation range parameter R.
	ClampRange float64 `yaml:"clamp_range"`
	// WeightJitterCoeff scales weight perturbations during mutation.
	WeightJitterCoeff float64 `yaml:"weight_jitter_coeff"`
	// MaxAddEdgeAttempts bounds retries when adding a new edge.
	MaxAddEdgeAttempts int `yaml:"max_add_edge_attempts"`

	Probabilities struct {
		Node NodeProbabilityOptions `yaml:"node"`
		Edge EdgeProbabilityOptions `yaml:"edge"`
	} `yaml:"probabilities"`

	// SpeciationThreshold is the minimum similarity score for an individual
	// to join an existing species' cluster.
	SpeciationThreshold float64 `yaml:"speciation_threshold"`

	// PopulationSize and MaxGenerations configure the outer generation
	// loop; the core GeneticAlgorithm orchestrator only needs
	// PopulationSize implicitly (it produces |species| children per
	// species), but callers commonly want both alongside the rest of the
	// tunables in one config document.
	PopulationSize int `yaml:"population_size"`
	MaxGenerations int `yaml:"max_generations"`
}

// defaultClampRange mirrors genetics.DefaultCrossoverRange: this package
// stays free of a genetics import (so genetics can import config for
// logging without an import cycle), so the documented default is
// duplicated here rather than referenced.
const defaultClampRange = 1000

// DefaultOptions returns the documented engine-wide defaults.
func DefaultOptions() *Options {
	o := &Options{
		LogLevel:            "info",
		ClampRange:          defaultClampRange,
		WeightJitterCoeff:   1.0,
		MaxAddEdgeAttempts:  10,
		SpeciationThreshold: 6.0,
		PopulationSize:      150,
		MaxGenerations:      100,
	}
	o.Probabilities.Node = NodeProbabilityOptions{Clamp: 0.5, Activation: 0.5, Aggregation: 0.5}
	o.Probabilities.Edge = EdgeProbabilityOptions{Enabled: 0.5, Weight: 0.5, NewNode: 0.03, NewEdge: 0.05}
	return o
}

// LoadYAMLOptions loads NEAT options encoded as YAML, initializes the
// package logger, and validates the result.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	opts := DefaultOptions()
	if err = yaml.Unmarshal(content, opts); err != nil {
		return nil, errors.Wrap(err, "failed to decode NEAT options from YAML")
	}
	if err = InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err = opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return opts, nil
}

// Merge applies loosely-typed overrides (e.g. from a CLI flag map or a
// generic JSON/YAML fragment) atop the receiver, coercing values with
// spf13/cast for untyped parameter values.
func (o *Options) Merge(overrides map[string]interface{}) {
	if v, ok := overrides["clamp_range"]; ok {
		o.ClampRange = cast.ToFloat64(v)
	}
	if v, ok := overrides["weight_jitter_coeff"]; ok {
		o.WeightJitterCoeff = cast.ToFloat64(v)
	}
	if v, ok := overrides["max_add_edge_attempts"]; ok {
		o.MaxAddEdgeAttempts = cast.ToInt(v)
	}
	if v, ok := overrides["speciation_threshold"]; ok {
		o.SpeciationThreshold = cast.ToFloat64(v)
	}
	if v, ok := overrides["population_size"]; ok {
		o.PopulationSize = cast.ToInt(v)
	}
	if v, ok := overrides["max_generations"]; ok {
		o.MaxGenerations = cast.ToInt(v)
	}
}

// Validate checks every tunable is in range, returning a plain validation
// error that is not a neaterr sentinel (these are configuration errors, not
// core sentinel conditions). LoadYAMLOptions wraps it with context.
func (o *Options) Validate() error {
	if o.MaxAddEdgeAttempts <= 0 {
		return errors.New("max_add_edge_attempts must be positive")
	}
	if o.PopulationSize < 0 {
		return errors.New("population_size must not be negative")
	}
	for name, p := range map[string]float64{
		"probabilities.node.clamp":       o.Probabilities.Node.Clamp,
		"probabilities.node.activation":  o.Probabilities.Node.Activation,
		"probabilities.node.aggregation": o.Probabilities.Node.Aggregation,
		"probabilities.edge.enabled":     o.Probabilities.Edge.Enabled,
		"probabilities.edge.weight":      o.Probabilities.Edge.Weight,
		"probabilities.edge.new_node":    o.Probabilities.Edge.NewNode,
		"probabilities.edge.new_edge":    o.Probabilities.Edge.NewEdge,
	} {
		if p < 0 || p > 1 {
			return errors.Errorf("%s must be in [0,1], got %v", name, p)
		}
	}
	return nil
}
