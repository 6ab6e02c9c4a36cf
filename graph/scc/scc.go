// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scc finds the strongly connected components of a directed
// graph using the two-pass reverse-DFS method attributed to Kosaraju
// and Sharir. Both passes are iterative: road networks contain chains
// of thousands of consecutive nodes, and a recursive depth-first walk
// would overflow the call stack on real extracts.
package scc

import (
	"fmt"

	"github.com/go-route/roadgraph/graph/internal/ordered"
)

// DanglingEdgeError is panicked by Find when a node's adjacency
// references an ID that does not exist in the Store, a violation of the
// store's own invariants that Find trusts by contract.
type DanglingEdgeError struct {
	ID uint64
}

func (e *DanglingEdgeError) Error() string {
	return fmt.Sprintf("scc: dangling edge to unknown node %d", e.ID)
}

// Store is the minimal read-only view of a graph needed to compute its
// strongly connected components. It is defined locally, rather than in
// terms of a shared graph type, so that a concrete graph type's own
// reducer method can depend on this package without an import cycle.
type Store interface {
	// Has reports whether a node with the given ID exists.
	Has(id uint64) bool
	// NodeIDs returns every node ID in the store, in unspecified order.
	NodeIDs() []uint64
	// ForwardNeighbors returns the IDs reachable from id by a single
	// outgoing edge, in insertion order. Duplicates are permitted.
	ForwardNeighbors(id uint64) []uint64
	// ReverseNeighbors returns the IDs that reach id by a single
	// outgoing edge, in insertion order. Duplicates are permitted.
	ReverseNeighbors(id uint64) []uint64
}

// Component is a strongly connected component: a set of node
// identifiers in ascending order.
type Component []uint64

// Find returns the strongly connected components of g. Every node
// appears in exactly one component. Component order reflects the order
// in which Phase 2 discovered each component's root; within a
// component, identifiers are ascending.
//
// Find is deterministic for a fixed NodeIDs order and a fixed
// ForwardNeighbors/ReverseNeighbors order; different stores with
// identical abstract content may produce components in a different
// order because store iteration order is unspecified.
func Find(g Store) []Component {
	order := postOrder(g)
	return assignComponents(g, order)
}

// postOrder performs Phase 1: an iterative post-order DFS over the
// forward graph, returning nodes in decreasing order of finish time.
func postOrder(g Store) []uint64 {
	visited := make(map[uint64]bool)
	var finished []uint64

	type frame struct {
		node uint64
		exit bool
	}

	for _, root := range g.NodeIDs() {
		if visited[root] {
			continue
		}
		stack := []frame{{node: root}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.exit {
				finished = append(finished, top.node)
				continue
			}
			if visited[top.node] {
				continue
			}
			visited[top.node] = true
			stack = append(stack, frame{node: top.node, exit: true})
			for _, next := range g.ForwardNeighbors(top.node) {
				if !g.Has(next) {
					panic(&DanglingEdgeError{ID: next})
				}
				if !visited[next] {
					stack = append(stack, frame{node: next})
				}
			}
		}
	}

	reverse(finished)
	return finished
}

// assignComponents performs Phase 2: consuming the finish-ordered
// sequence front to back, assigning each unassigned node to a new
// component by an iterative DFS along reverse edges.
func assignComponents(g Store, order []uint64) []Component {
	assigned := make(map[uint64]bool, len(order))
	var components []Component

	for _, root := range order {
		if assigned[root] {
			continue
		}

		var component Component
		stack := []uint64{root}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if assigned[node] {
				continue
			}
			assigned[node] = true
			component = append(component, node)
			for _, prev := range g.ReverseNeighbors(node) {
				if !g.Has(prev) {
					panic(&DanglingEdgeError{ID: prev})
				}
				if !assigned[prev] {
					stack = append(stack, prev)
				}
			}
		}

		ordered.Uint64s(component)
		components = append(components, component)
	}

	return components
}

func reverse(ids []uint64) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}
