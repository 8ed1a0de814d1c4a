package genetics

import "fmt"

// Edge is a connection gene: a weighted link between two nodes, tagged with
// the innovation number of the structural mutation event that created it.
// Two edges with the same innovation number are "matching" during
// crossover.
type Edge struct {
	InnovationNum int64
	InNode        int
	OutNode       int
	Weight        float32
	Enabled       bool
}

// String renders the edge for debug logging.
func (e Edge) String() string {
	enabled := ""
	if !e.Enabled {
		enabled = " -DISABLED-"
	}
	return fmt.Sprintf("[Edge #%d %d->%d w=%g%s]", e.InnovationNum, e.InNode, e.OutNode, e.Weight, enabled)
}
