// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph provides the in-memory directed multigraph used to model
// a road network: nodes keyed by an externally supplied identifier, and
// weighted directed edges stored with eager forward and reverse
// adjacency.
package graph

import (
	"github.com/go-route/roadgraph/geo"
	"github.com/go-route/roadgraph/graph/path"
	"github.com/go-route/roadgraph/graph/scc"
)

// Coordinate is a geographic coordinate in decimal degrees.
type Coordinate = geo.Coordinate

// Edge is a directed, weighted edge stored on its origin node.
type Edge struct {
	// To is the identifier of the destination node.
	To uint64
	// Cost is the non-negative travel cost of the edge.
	Cost uint64
}

// ReverseEdge is the mirror record stored on an edge's destination node.
type ReverseEdge struct {
	// From is the identifier of the origin node.
	From uint64
	// Cost is the same value as the forward edge's cost.
	Cost uint64
}

// Node is a single road junction.
type Node struct {
	// ID is the externally supplied identifier, unique within its store.
	ID uint64
	// Location is the node's geographic position. It is set at creation
	// and never mutated thereafter.
	Location Coordinate

	// Out is the ordered sequence of outgoing edges. Order is insertion
	// order; duplicates are permitted.
	Out []Edge
	// In is the ordered sequence of incoming edges, maintained
	// symmetrically with Out.
	In []ReverseEdge
}

// Graph is a directed multigraph of road-network nodes, with eager
// forward and reverse adjacency. The zero value is not usable; use
// NewGraph.
type Graph struct {
	nodes map[uint64]*Node
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[uint64]*Node)}
}

// AddNode inserts a node with the given id and location into g. It
// returns a *DuplicateNodeError, without mutating g, if a node with that
// id already exists.
func (g *Graph) AddNode(id uint64, loc Coordinate) error {
	if _, exists := g.nodes[id]; exists {
		return &DuplicateNodeError{ID: id}
	}
	g.nodes[id] = &Node{ID: id, Location: loc}
	return nil
}

// AddEdge appends a directed edge from → to with the given cost. Both
// nodes must already exist in g; if either does not, AddEdge returns a
// *UnknownEndpointError naming the missing endpoint and leaves g
// unmodified. Duplicate edges are permitted.
func (g *Graph) AddEdge(from, to uint64, cost uint64) error {
	fromNode, ok := g.nodes[from]
	if !ok {
		return &UnknownEndpointError{ID: from}
	}
	toNode, ok := g.nodes[to]
	if !ok {
		return &UnknownEndpointError{ID: to}
	}
	fromNode.Out = append(fromNode.Out, Edge{To: to, Cost: cost})
	toNode.In = append(toNode.In, ReverseEdge{From: from, Cost: cost})
	return nil
}

// Node returns the node with the given id, or false if it is not in g.
func (g *Graph) Node(id uint64) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NumNodes returns the number of nodes in g.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumEdges returns the total number of outgoing edges across all nodes
// in g. It is O(n) in the number of nodes.
func (g *Graph) NumEdges() int {
	var n int
	for _, node := range g.nodes {
		n += len(node.Out)
	}
	return n
}

// NumReverseEdges returns the total number of incoming edges across all
// nodes in g. It is O(n) in the number of nodes, and always equal to
// NumEdges.
func (g *Graph) NumReverseEdges() int {
	var n int
	for _, node := range g.nodes {
		n += len(node.In)
	}
	return n
}

// Nodes returns the nodes of g in unspecified order. The returned slice
// is a snapshot of g's node set: nodes added or removed later are not
// reflected in it. The *Node values themselves are shared with g, so
// later edge changes on those nodes are visible through them.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// RemoveUnusedNodes removes every node whose outgoing adjacency is
// empty, drops the outgoing edges of surviving nodes that point at a
// removed node, and removes the corresponding entries from the in_edges
// of any surviving node, so that invariant 1 (every outgoing edge has a
// matching incoming edge) continues to hold afterward. It makes a
// single pass: a survivor left with no outgoing edges is kept.
func (g *Graph) RemoveUnusedNodes() {
	removed := make(map[uint64]bool)
	for id, n := range g.nodes {
		if len(n.Out) == 0 {
			removed[id] = true
		}
	}
	if len(removed) == 0 {
		return
	}
	for id := range removed {
		delete(g.nodes, id)
	}
	for _, n := range g.nodes {
		out := n.Out[:0]
		for _, e := range n.Out {
			if !removed[e.To] {
				out = append(out, e)
			}
		}
		n.Out = out
		if !anyRemoved(n.In, removed) {
			continue
		}
		kept := n.In[:0]
		for _, re := range n.In {
			if !removed[re.From] {
				kept = append(kept, re)
			}
		}
		n.In = kept
	}
}

func anyRemoved(in []ReverseEdge, removed map[uint64]bool) bool {
	for _, re := range in {
		if removed[re.From] {
			return true
		}
	}
	return false
}

// ReduceToLargestSCC replaces g's node set with the nodes of its largest
// strongly connected component, as found by scc.Find. Edges whose
// endpoints both survive remain; edges crossing the old boundary are
// removed together with their endpoints. Ties in component size are
// broken in favor of the component scc.Find discovered first.
func (g *Graph) ReduceToLargestSCC() {
	components := scc.Find(g)
	if len(components) <= 1 {
		return
	}

	largest := 0
	for i := 1; i < len(components); i++ {
		if len(components[i]) > len(components[largest]) {
			largest = i
		}
	}

	keep := make(map[uint64]bool, len(components[largest]))
	for _, id := range components[largest] {
		keep[id] = true
	}

	for id := range g.nodes {
		if !keep[id] {
			delete(g.nodes, id)
		}
	}
	for _, n := range g.nodes {
		n.Out = filterOut(n.Out, keep)
		n.In = filterIn(n.In, keep)
	}
}

func filterOut(out []Edge, keep map[uint64]bool) []Edge {
	kept := out[:0]
	for _, e := range out {
		if keep[e.To] {
			kept = append(kept, e)
		}
	}
	return kept
}

func filterIn(in []ReverseEdge, keep map[uint64]bool) []ReverseEdge {
	kept := in[:0]
	for _, re := range in {
		if keep[re.From] {
			kept = append(kept, re)
		}
	}
	return kept
}

// NodeIDs implements scc.Store.
func (g *Graph) NodeIDs() []uint64 {
	ids := make([]uint64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	return ids
}

// ForwardNeighbors implements scc.Store.
func (g *Graph) ForwardNeighbors(id uint64) []uint64 {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]uint64, len(n.Out))
	for i, e := range n.Out {
		out[i] = e.To
	}
	return out
}

// ReverseNeighbors implements scc.Store.
func (g *Graph) ReverseNeighbors(id uint64) []uint64 {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	in := make([]uint64, len(n.In))
	for i, re := range n.In {
		in[i] = re.From
	}
	return in
}

// Has implements path.Store.
func (g *Graph) Has(id uint64) bool {
	_, ok := g.nodes[id]
	return ok
}

// Neighbors implements path.Store.
func (g *Graph) Neighbors(id uint64) []path.Neighbor {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]path.Neighbor, len(n.Out))
	for i, e := range n.Out {
		out[i] = path.Neighbor{To: e.To, Cost: e.Cost}
	}
	return out
}

// ShortestPath returns the minimum-cost path from start to end in g. It
// is a thin convenience wrapper over path.Search; see that function for
// the full contract.
func (g *Graph) ShortestPath(start, end uint64) (path.Result, error) {
	return path.Search(g, start, end)
}

// StronglyConnectedComponents returns g's partition into strongly
// connected components. It is a thin convenience wrapper over scc.Find;
// see that function for the full contract.
func (g *Graph) StronglyConnectedComponents() []scc.Component {
	return scc.Find(g)
}
