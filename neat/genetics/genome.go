package genetics

import (
	"fmt"
	"sort"
)

// debugAssertSorted gates the monotonicity assertion in
// NewOrderedGenomeListFromSorted: an internal-consistency panic rather than
// silently trusting callers. It is a constant, so the check runs in every
// build.
const debugAssertSorted = true

// OrderedGenomeList is a genome's edge list, always kept sorted ascending
// by InnovationNum.
type OrderedGenomeList struct {
	edges []Edge
}

// NewOrderedGenomeList sorts an arbitrary (possibly untrusted) slice of
// edges by innovation number and wraps it.
func NewOrderedGenomeList(edges []Edge) OrderedGenomeList {
	cp := append([]Edge(nil), edges...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].InnovationNum < cp[j].InnovationNum })
	return OrderedGenomeList{edges: cp}
}

// NewOrderedGenomeListFromSorted wraps a slice that the caller asserts is
// already sorted by innovation number, skipping the sort. While
// debugAssertSorted is true it panics if that assertion does not hold.
func NewOrderedGenomeListFromSorted(edges []Edge) OrderedGenomeList {
	if debugAssertSorted {
		for i := 1; i < len(edges); i++ {
			if edges[i-1].InnovationNum > edges[i].InnovationNum {
				panic(fmt.Sprintf("neat: genome edge list is not sorted by innovation number at index %d (%d > %d)",
					i, edges[i-1].InnovationNum, edges[i].InnovationNum))
			}
		}
	}
	return OrderedGenomeList{edges: edges}
}

// Len returns the number of edges.
func (l OrderedGenomeList) Len() int {
	return len(l.edges)
}

// Edges returns the ordered edges. Callers must not reorder the returned
// slice; use Set to mutate an element in place.
func (l OrderedGenomeList) Edges() []Edge {
	return l.edges
}

// At returns the edge at the given ordinal position (not by innovation
// number).
func (l OrderedGenomeList) At(i int) Edge {
	return l.edges[i]
}

// Set replaces the edge at ordinal position i. Callers must not change
// InnovationNum through Set, or the list's sort order invariant breaks.
func (l *OrderedGenomeList) Set(i int, e Edge) {
	l.edges[i] = e
}

// Append adds a new edge to the tail. Callers are responsible for ensuring
// the new edge's innovation number is greater than the current maximum,
// which holds for every mutation path in this package since innovation
// numbers are handed out by a monotonic counter.
func (l *OrderedGenomeList) Append(e Edge) {
	l.edges = append(l.edges, e)
}

// Clone returns a deep copy of the list.
func (l OrderedGenomeList) Clone() OrderedGenomeList {
	return OrderedGenomeList{edges: append([]Edge(nil), l.edges...)}
}

// Contains reports whether an edge between in and out already exists,
// regardless of enabled state.
func (l OrderedGenomeList) Contains(in, out int) bool {
	for _, e := range l.edges {
		if e.InNode == in && e.OutNode == out {
			return true
		}
	}
	return false
}

// NodeList holds a genome's three node collections. Input is shared by
// reference across every genome created by the same GenomeFactory and is
// never mutated after construction. Output and Hidden may mutate (node
// configuration evolves under mutation and crossover); Hidden is kept
// sorted by NodeID ascending to allow binary search during network build.
type NodeList struct {
	Input  []Node
	Output []Node
	Hidden []Node
}

// findHidden returns the index of the hidden node with the given id, or -1.
func (nl NodeList) findHidden(id int) int {
	i := sort.Search(len(nl.Hidden), func(i int) bool { return nl.Hidden[i].NodeID >= id })
	if i < len(nl.Hidden) && nl.Hidden[i].NodeID == id {
		return i
	}
	return -1
}

// InsertHidden inserts a new hidden node, preserving ascending NodeID order.
func (nl *NodeList) InsertHidden(n Node) {
	i := sort.Search(len(nl.Hidden), func(i int) bool { return nl.Hidden[i].NodeID >= n.NodeID })
	nl.Hidden = append(nl.Hidden, Node{})
	copy(nl.Hidden[i+1:], nl.Hidden[i:])
	nl.Hidden[i] = n
}

// Clone returns a deep copy of the node list. Input is shared by reference
// (it is immutable for the run), Output and Hidden are copied.
func (nl NodeList) Clone() NodeList {
	return NodeList{
		Input:  nl.Input,
		Output: append([]Node(nil), nl.Output...),
		Hidden: append([]Node(nil), nl.Hidden...),
	}
}

// AllNonInput returns output and hidden nodes concatenated, the set
// mutation iterates to perturb node-level configuration.
func (nl NodeList) AllNonInput() []Node {
	out := make([]Node, 0, len(nl.Output)+len(nl.Hidden))
	out = append(out, nl.Output...)
	out = append(out, nl.Hidden...)
	return out
}

// findNode looks up a node by id across all three collections, used by
// mutation to resolve an edge's endpoint levels and by MustValid to validate
// edge references. Returns the node and whether it was found.
func (nl NodeList) findNode(id int) (Node, bool) {
	for _, n := range nl.Input {
		if n.NodeID == id {
			return n, true
		}
	}
	for _, n := range nl.Output {
		if n.NodeID == id {
			return n, true
		}
	}
	if i := nl.findHidden(id); i >= 0 {
		return nl.Hidden[i], true
	}
	return Node{}, false
}

// Genome is a node list plus an ordered edge list. Every InNode/OutNode
// referenced by an edge must be present in the node list; violations are
// programmer errors caught by MustValid.
type Genome struct {
	Nodes NodeList
	Edges OrderedGenomeList
}

// Clone returns a deep copy of the genome.
func (g Genome) Clone() Genome {
	return Genome{Nodes: g.Nodes.Clone(), Edges: g.Edges.Clone()}
}

// MustValid panics if any edge references a node absent from the node
// list -- a programmer error, not a recoverable condition.
func (g Genome) MustValid() {
	for _, e := range g.Edges.Edges() {
		if _, ok := g.Nodes.findNode(e.InNode); !ok {
			panic(fmt.Sprintf("neat: edge %s references unknown in-node %d", e.String(), e.InNode))
		}
		if _, ok := g.Nodes.findNode(e.OutNode); !ok {
			panic(fmt.Sprintf("neat: edge %s references unknown out-node %d", e.String(), e.OutNode))
		}
	}
}

// Describe renders a one-line human-readable summary of the genome's size,
// useful at DebugLog level.
func (g Genome) Describe() string {
	maxInnov := int64(-1)
	for _, e := range g.Edges.Edges() {
		if e.InnovationNum > maxInnov {
			maxInnov = e.InnovationNum
		}
	}
	return fmt.Sprintf("Genome{inputs=%d outputs=%d hidden=%d edges=%d maxInnov=%d}",
		len(g.Nodes.Input), len(g.Nodes.Output), len(g.Nodes.Hidden), g.Edges.Len(), maxInnov)
}
