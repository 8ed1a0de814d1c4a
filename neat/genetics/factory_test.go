package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanite-labs/goneat-core/neat/neaterr"
)

func TestNewGenomeFactoryZeroInputsOrOutputs(t *testing.T) {
	_, err := NewGenomeFactory(0, 1)
	require.ErrorIs(t, err, neaterr.ErrZeroIOVector)

	_, err = NewGenomeFactory(1, 0)
	require.ErrorIs(t, err, neaterr.ErrZeroIOVector)
}

func TestNewGenomeFactoryBuildsExpectedTopology(t *testing.T) {
	f, err := NewGenomeFactory(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, f.InputCount())
	assert.Equal(t, 1, f.OutputCount())

	g := f.NewGenome()
	assert.Len(t, g.Nodes.Input, 2)
	assert.Len(t, g.Nodes.Output, 1)
	assert.Empty(t, g.Nodes.Hidden)
	assert.Equal(t, 0, g.Edges.Len())

	for _, n := range g.Nodes.Input {
		assert.True(t, n.Level.Equal(f.input[0].Level))
	}
	// Every input node sits strictly below every output node's level.
	assert.True(t, g.Nodes.Input[0].Level.Less(g.Nodes.Output[0].Level))

	// Output ids continue sequentially after input ids.
	assert.Equal(t, 2, g.Nodes.Output[0].NodeID)
}
