// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordered provides sort helpers for the node-identifier slices
// used by the SCC finder.
package ordered

import "sort"

// Uint64s sorts a slice of uint64 node identifiers ascending, in place.
func Uint64s(s []uint64) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
