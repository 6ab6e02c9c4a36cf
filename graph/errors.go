// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "fmt"

// DuplicateNodeError is returned by AddNode when a node with the given
// ID already exists in the store.
type DuplicateNodeError struct {
	ID uint64
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("graph: node %d already exists", e.ID)
}

// UnknownEndpointError is returned by AddEdge when either endpoint of
// the edge does not exist in the store.
type UnknownEndpointError struct {
	ID uint64
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("graph: unknown endpoint node %d", e.ID)
}
