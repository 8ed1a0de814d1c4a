// Package neaterr defines the sentinel error values raised across the
// genetics, network, and ga packages. Callers use errors.Is (or the
// pkg/errors Cause chain) to recover the sentinel from a wrapped error.
package neaterr

import "github.com/pkg/errors"

var (
	// ErrZeroIOVector is returned by NewGenomeFactory when either the input
	// or the output node count is zero.
	ErrZeroIOVector = errors.New("neat: genome factory requires at least one input and one output node")

	// ErrInvalidInputSize is returned by Network.Forward when the supplied
	// input vector length does not match the network's input node count.
	ErrInvalidInputSize = errors.New("neat: input vector length does not match network input count")

	// ErrInvalidClampBounds is returned by NewClamp when both bounds are
	// present and min >= max.
	ErrInvalidClampBounds = errors.New("neat: clamp minimum must be strictly less than maximum")

	// ErrEmptyPopulation is returned by selection and evolution entry points
	// when given an empty slice of individuals.
	ErrEmptyPopulation = errors.New("neat: population is empty")

	// ErrDegenerateFitness is returned by roulette-wheel selection when the
	// sum of fitnesses is not strictly positive.
	ErrDegenerateFitness = errors.New("neat: fitness sum is not positive")
)
