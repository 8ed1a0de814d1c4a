// Package network evaluates a genome's possibly-cyclic weighted graph with
// per-node activation/aggregation/clamp configuration, using a dual-buffer
// (current/previous) scheme to handle recurrent edges deterministically.
package network

import "github.com/nanite-labs/goneat-core/neat/genetics"

// memoryCell is the evaluation state for a single non-input node. The
// network's pass flag alternates between two boolean values each forward
// call; a cell is fresh iff its activated/passed flag equals the current
// pass -- this avoids an O(N) reset between evaluations.
type memoryCell struct {
	current   float32
	previous  float32
	bias      float32
	pending   []float32
	activated bool
	passed    bool
	// activatedSet/passedSet distinguish "never activated" from "activated
	// on the pass whose flag happens to equal the zero value."
	activatedSet bool
	passedSet    bool

	cfg genetics.NodeConfig
}

func newMemoryCell(cfg genetics.NodeConfig) *memoryCell {
	return &memoryCell{cfg: cfg}
}

// appendInput accumulates one pending scalar contribution.
func (c *memoryCell) appendInput(x float32) {
	c.pending = append(c.pending, x)
}

// activate reduces the pending inputs plus bias through
// aggregation->activation->clamp, shifts current into previous, and marks
// the cell fresh for this pass.
func (c *memoryCell) activate(pass bool) {
	agg := c.cfg.Aggregation.Apply(c.pending) + c.bias
	activated := c.cfg.Activation.Activate(agg)
	clamped := c.cfg.Clamp.Apply(activated)

	c.previous = c.current
	c.current = clamped
	c.activated = pass
	c.activatedSet = true
	c.pending = c.pending[:0]
}

// currentOutput returns the cell's output for this pass, or ok=false if the
// cell has not yet been activated this pass (reading current_output before
// activation is undefined).
func (c *memoryCell) currentOutput(pass bool) (float32, bool) {
	if c.activatedSet && c.activated == pass {
		return c.current, true
	}
	return 0, false
}

// previousOutput returns the value recurrent readers must use: the prior
// pass's output if this cell was activated on the current pass, else its
// current value (a cell not yet touched this pass still holds last pass's
// "current", which for recurrence purposes is the most recent output).
func (c *memoryCell) previousOutput(pass bool) float32 {
	if c.activatedSet && c.activated == pass {
		return c.previous
	}
	return c.current
}

// markScheduled marks the cell as scheduled for this pass and reports
// whether it had NOT already been scheduled (the network pushes it onto
// the heap only the first time).
func (c *memoryCell) markScheduled(pass bool) (wasNotScheduled bool) {
	wasNotScheduled = !c.passedSet || c.passed != pass
	c.passed = pass
	c.passedSet = true
	return wasNotScheduled
}
