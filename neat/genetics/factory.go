package genetics

import (
	"github.com/nanite-labs/goneat-core/neat/neaterr"
	"github.com/nanite-labs/goneat-core/neat/rational"
)

// GenomeFactory constructs the fixed input/output node lists for a run once,
// and stamps out empty genomes that share the input list by reference and
// get their own copy of the output list. Genomes are
// created empty (no edges) and grown by mutation and crossover afterward.
type GenomeFactory struct {
	input  []Node
	output []Node
}

// NewGenomeFactory builds a factory for a run with nInputs input nodes at
// the minimum level and nOutputs output nodes at the maximum level. Fails
// with neaterr.ErrZeroIOVector if either count is zero.
func NewGenomeFactory(nInputs, nOutputs int) (*GenomeFactory, error) {
	if nInputs == 0 || nOutputs == 0 {
		return nil, neaterr.ErrZeroIOVector
	}
	input := make([]Node, nInputs)
	for i := 0; i < nInputs; i++ {
		input[i] = Node{NodeID: i, Level: rational.MinLevel(), Config: DefaultNodeConfig()}
	}
	output := make([]Node, nOutputs)
	for i := 0; i < nOutputs; i++ {
		output[i] = Node{NodeID: nInputs + i, Level: rational.MaxLevel(), Config: DefaultNodeConfig()}
	}
	return &GenomeFactory{input: input, output: output}, nil
}

// NewGenome creates an empty genome (no hidden nodes, no edges) sharing this
// factory's input node list by reference and holding a fresh copy of its
// output node list, so mutating one genome's output configs leaves the
// others untouched.
func (f *GenomeFactory) NewGenome() Genome {
	return Genome{
		Nodes: NodeList{
			Input:  f.input,
			Output: append([]Node(nil), f.output...),
			Hidden: nil,
		},
		Edges: NewOrderedGenomeListFromSorted(nil),
	}
}

// InputCount returns the number of input nodes this factory's genomes have.
func (f *GenomeFactory) InputCount() int {
	return len(f.input)
}

// OutputCount returns the number of output nodes this factory's genomes have.
func (f *GenomeFactory) OutputCount() int {
	return len(f.output)
}
