package network

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanite-labs/goneat-core/neat/genetics"
)

func TestMemoryCellCurrentOutputUndefinedBeforeActivation(t *testing.T) {
	c := newMemoryCell(genetics.DefaultNodeConfig())
	_, ok := c.currentOutput(true)
	assert.False(t, ok)
	_, ok = c.currentOutput(false)
	assert.False(t, ok)
}

func TestMemoryCellActivateThenReadSamePass(t *testing.T) {
	c := newMemoryCell(genetics.DefaultNodeConfig())
	c.appendInput(1)
	c.appendInput(3)
	c.activate(true)

	out, ok := c.currentOutput(true)
	assert.True(t, ok)
	assert.InDelta(t, 2.0, out, 1e-6) // Mean([1,3]) = 2, Relu(2) = 2

	_, ok = c.currentOutput(false)
	assert.False(t, ok)
}

func TestMemoryCellPreviousOutputBeforeReactivationReturnsCurrent(t *testing.T) {
	c := newMemoryCell(genetics.DefaultNodeConfig())
	c.appendInput(4)
	c.activate(true)

	// On the opposite pass, before this cell is reactivated, previousOutput
	// must return the most recent current value.
	assert.InDelta(t, 4.0, c.previousOutput(false), 1e-6)
}

func TestMemoryCellPreviousOutputAfterReactivationReturnsPriorCurrent(t *testing.T) {
	c := newMemoryCell(genetics.DefaultNodeConfig())
	c.appendInput(4)
	c.activate(true)
	c.appendInput(10)
	c.activate(false)

	assert.InDelta(t, 4.0, c.previousOutput(false), 1e-6)
}

func TestMemoryCellMarkScheduledOncePerPass(t *testing.T) {
	c := newMemoryCell(genetics.DefaultNodeConfig())
	assert.True(t, c.markScheduled(true))
	assert.False(t, c.markScheduled(true))
	assert.True(t, c.markScheduled(false))
}

func TestMemoryCellPendingClearedAfterActivate(t *testing.T) {
	c := newMemoryCell(genetics.DefaultNodeConfig())
	c.appendInput(1)
	c.activate(true)
	assert.Empty(t, c.pending)
}
