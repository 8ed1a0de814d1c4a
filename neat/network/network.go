package network

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/nanite-labs/goneat-core/neat/config"
	"github.com/nanite-labs/goneat-core/neat/genetics"
	"github.com/nanite-labs/goneat-core/neat/neaterr"
	"github.com/nanite-labs/goneat-core/neat/rational"
)

// slot is one position in the network's flat memory vector: either an
// input (a bare scalar) or an activation cell (hidden or output node).
// Memory is sorted by node id so node_id -> index is a binary search, the
// same index-based-adjacency trick used to avoid shared-pointer cycles.
type slot struct {
	nodeID  int
	level   rational.Level
	isInput bool
	input   float32
	cell    *memoryCell
}

type wireEdge struct {
	dest   int // memory index
	weight float32
}

// Network evaluates a genome on an input vector. Construct once per genome
// (or reuse across repeated forward passes of the same genome); it is not
// re-entrant -- concurrent forward calls on the same Network race.
type Network struct {
	memory     []slot
	forwardMap [][]wireEdge // indexed by source memory index
	backMap    [][]wireEdge // indexed by destination memory index
	pass       bool

	nInputs     int
	nOutputs    int
	outputStart int // memory index of the first output slot
}

// FromGenome builds a Network from a genome, snapshotting its current
// topology. Disabled edges are dropped at build time.
func FromGenome(g genetics.Genome) *Network {
	memory := make([]slot, 0, len(g.Nodes.Input)+len(g.Nodes.Output)+len(g.Nodes.Hidden))
	for _, n := range g.Nodes.Input {
		memory = append(memory, slot{nodeID: n.NodeID, level: n.Level, isInput: true})
	}
	for _, n := range g.Nodes.Output {
		memory = append(memory, slot{nodeID: n.NodeID, level: n.Level, cell: newMemoryCell(n.Config)})
	}
	for _, n := range g.Nodes.Hidden {
		memory = append(memory, slot{nodeID: n.NodeID, level: n.Level, cell: newMemoryCell(n.Config)})
	}
	sort.Slice(memory, func(i, j int) bool { return memory[i].nodeID < memory[j].nodeID })

	net := &Network{
		memory:     memory,
		forwardMap: make([][]wireEdge, len(memory)),
		backMap:    make([][]wireEdge, len(memory)),
		nInputs:    len(g.Nodes.Input),
		nOutputs:   len(g.Nodes.Output),
	}

	for _, e := range g.Edges.Edges() {
		if !e.Enabled {
			continue
		}
		inIdx := net.indexOf(e.InNode)
		outIdx := net.indexOf(e.OutNode)
		inLevel := memory[inIdx].level
		outLevel := memory[outIdx].level
		if inLevel.Less(outLevel) {
			net.forwardMap[inIdx] = append(net.forwardMap[inIdx], wireEdge{dest: outIdx, weight: e.Weight})
		} else {
			// Recurrent: indexed by destination, read at the destination's
			// activation step, pulling recurrent inputs first.
			net.backMap[outIdx] = append(net.backMap[outIdx], wireEdge{dest: inIdx, weight: e.Weight})
		}
	}

	if len(g.Nodes.Output) > 0 {
		net.outputStart = net.indexOf(g.Nodes.Output[0].NodeID)
	}

	config.DebugLog(fmt.Sprintf("network: built from genome with %d nodes, %d enabled edges",
		len(memory), countEnabled(g)))

	return net
}

func countEnabled(g genetics.Genome) int {
	n := 0
	for _, e := range g.Edges.Edges() {
		if e.Enabled {
			n++
		}
	}
	return n
}

// indexOf resolves a node id to its memory slot via binary search. Panics
// if the id is absent: every edge in a valid genome references a node
// present in its node list (Genome.MustValid enforces this upstream).
func (n *Network) indexOf(id int) int {
	i := sort.Search(len(n.memory), func(i int) bool { return n.memory[i].nodeID >= id })
	if i >= len(n.memory) || n.memory[i].nodeID != id {
		panic("neat: edge references a node absent from the network's memory")
	}
	return i
}

// heapItem is one entry in the activation-order min-heap: ordered by level
// ascending, then by node id.
type heapItem struct {
	memIdx int
	nodeID int
	level  rational.Level
}

type levelHeap []heapItem

func (h levelHeap) Len() int { return len(h) }
func (h levelHeap) Less(i, j int) bool {
	if c := h[i].level.Compare(h[j].level); c != 0 {
		return c < 0
	}
	return h[i].nodeID < h[j].nodeID
}
func (h levelHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *levelHeap) Push(x interface{}) {
	*h = append(*h, x.(heapItem))
}
func (h *levelHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Forward evaluates the network on input vector x. len(x) must equal the
// network's input count, or ErrInvalidInputSize is returned.
//
// Ordering guarantee: because levels strictly increase along any forward
// edge, min-heap popping ensures a node is activated after all of its
// forward predecessors -- no separate topological sort is required.
// Recurrent edges deliberately read previous outputs, making this a
// one-step recurrent computation.
func (n *Network) Forward(x []float32) ([]float32, error) {
	if len(x) != n.nInputs {
		return nil, neaterr.ErrInvalidInputSize
	}
	n.pass = !n.pass
	pass := n.pass

	for i := 0; i < n.nInputs; i++ {
		n.memory[i].input = x[i]
	}

	h := make(levelHeap, 0, n.nInputs)
	for i := 0; i < n.nInputs; i++ {
		h = append(h, heapItem{memIdx: i, nodeID: n.memory[i].nodeID, level: n.memory[i].level})
	}
	heap.Init(&h)

	for h.Len() > 0 {
		head := heap.Pop(&h).(heapItem)
		idx := head.memIdx
		s := &n.memory[idx]

		if !s.isInput {
			for _, back := range n.backMap[idx] {
				srcVal := n.previousOutputOf(back.dest, pass)
				s.cell.appendInput(srcVal * back.weight)
			}
			s.cell.activate(pass)
		}

		current, ok := n.currentOutputOf(idx, pass)
		if !ok {
			continue
		}
		for _, fwd := range n.forwardMap[idx] {
			dest := &n.memory[fwd.dest]
			dest.cell.appendInput(current * fwd.weight)
			if dest.cell.markScheduled(pass) {
				heap.Push(&h, heapItem{memIdx: fwd.dest, nodeID: dest.nodeID, level: dest.level})
			}
		}
	}

	outputs := make([]float32, n.nOutputs)
	for i := 0; i < n.nOutputs; i++ {
		idx := n.outputStart + i
		if v, ok := n.currentOutputOf(idx, pass); ok {
			outputs[i] = v
		}
	}
	return outputs, nil
}

// currentOutputOf reads a slot's output for the given pass: the input value
// directly for input slots, or the activation cell's current output
// (ok=false if not yet activated this pass) otherwise.
func (n *Network) currentOutputOf(idx int, pass bool) (float32, bool) {
	s := &n.memory[idx]
	if s.isInput {
		return s.input, true
	}
	return s.cell.currentOutput(pass)
}

// previousOutputOf reads the value a recurrent back-edge must read: the
// prior-pass output for activation slots, or the (pass-independent) current
// scalar for input slots.
func (n *Network) previousOutputOf(idx int, pass bool) float32 {
	s := &n.memory[idx]
	if s.isInput {
		return s.input
	}
	return s.cell.previousOutput(pass)
}
