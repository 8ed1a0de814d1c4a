package genetics

import "github.com/nanite-labs/goneat-core/neat/neaterr"

// Clamp is an optional min/max bound pair applied after activation. Either
// bound, both, or neither may be present.
type Clamp struct {
	Min    float32
	HasMin bool
	Max    float32
	HasMax bool
}

// NewClamp builds a Clamp from optional bounds. Fails with
// neaterr.ErrInvalidClampBounds when both bounds are present and min >= max.
func NewClamp(min, max *float32) (Clamp, error) {
	var c Clamp
	if min != nil {
		c.Min, c.HasMin = *min, true
	}
	if max != nil {
		c.Max, c.HasMax = *max, true
	}
	if c.HasMin && c.HasMax && c.Min >= c.Max {
		return Clamp{}, neaterr.ErrInvalidClampBounds
	}
	return c, nil
}

// Apply clips x to whichever bounds are set. For all x, Min <= Apply(x) <=
// Max when both bounds are set.
func (c Clamp) Apply(x float32) float32 {
	if c.HasMax && x > c.Max {
		x = c.Max
	}
	if c.HasMin && x < c.Min {
		x = c.Min
	}
	return x
}
