// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package path provides single-pair shortest-path search over a
// non-negatively weighted directed graph, via a lazy decrease-key
// best-first search on a binary heap of frontier records.
package path

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrUnreachable is returned by Search when the end node exists but no
// path to it from the start node exists.
var ErrUnreachable = errors.New("path: end node is unreachable from start node")

// UnknownNodeError is returned by Search when the start or end node is
// not present in the store.
type UnknownNodeError struct {
	ID uint64
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("path: unknown node %d", e.ID)
}

// Neighbor is one outgoing edge from a node, as seen by Search.
type Neighbor struct {
	To   uint64
	Cost uint64
}

// Store is the minimal read-only view of a graph needed to run a
// shortest-path search. It is defined locally, rather than in terms of
// a shared graph type, so that any store implementation can be searched
// without this package depending on it.
type Store interface {
	// Has reports whether a node with the given ID exists.
	Has(id uint64) bool
	// Neighbors returns the outgoing edges of the node with the given
	// ID, in any order. Neighbors of an unknown ID may return nil.
	Neighbors(id uint64) []Neighbor
}

// Result is the outcome of a successful search: the total cost of the
// path and the sequence of node IDs from start to end, inclusive.
type Result struct {
	Cost uint64
	Path []uint64
}

// Search returns the minimum-cost path from start to end in g, together
// with its total cost. It returns UnknownNodeError if start or end does
// not exist in g, and ErrUnreachable if both exist but no path connects
// them. If start == end, it returns a zero-cost single-node path
// regardless of self-loops.
//
// Search implements Dijkstra's algorithm with lazy decrease-key: the
// priority queue carries full frontier records instead of node handles,
// and stale duplicate entries are discarded via a settled-node check at
// pop time rather than located and updated in place.
func Search(g Store, start, end uint64) (Result, error) {
	if !g.Has(start) {
		return Result{}, &UnknownNodeError{ID: start}
	}
	if !g.Has(end) {
		return Result{}, &UnknownNodeError{ID: end}
	}
	if start == end {
		return Result{Cost: 0, Path: []uint64{start}}, nil
	}

	settled := make(map[uint64]bool)
	predecessor := make(map[uint64]uint64)

	q := &frontier{{cost: 0, node: start}}
	for q.Len() != 0 {
		rec := heap.Pop(q).(record)
		if settled[rec.node] {
			continue
		}
		settled[rec.node] = true
		if rec.hasPred {
			predecessor[rec.node] = rec.pred
		}

		if rec.node == end {
			return Result{Cost: rec.cost, Path: reconstruct(end, start, predecessor)}, nil
		}

		for _, nb := range g.Neighbors(rec.node) {
			heap.Push(q, record{
				cost:    rec.cost + nb.Cost,
				node:    nb.To,
				pred:    rec.node,
				hasPred: true,
			})
		}
	}

	return Result{}, ErrUnreachable
}

func reconstruct(end, start uint64, predecessor map[uint64]uint64) []uint64 {
	path := []uint64{end}
	for path[len(path)-1] != start {
		path = append(path, predecessor[path[len(path)-1]])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// record is a transient shortest-path frontier entry.
type record struct {
	cost    uint64
	node    uint64
	pred    uint64
	hasPred bool
}

// frontier is a no-dec min-priority queue of frontier records, ordered
// by cumulative cost.
type frontier []record

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].cost < f[j].cost }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(record)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	rec := old[n-1]
	*f = old[:n-1]
	return rec
}
