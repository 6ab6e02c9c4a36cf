// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordered

import (
	"reflect"
	"testing"
)

func TestUint64s(t *testing.T) {
	got := []uint64{5, 1, 4, 1, 3}
	Uint64s(got)
	want := []uint64{1, 1, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Uint64s(...) = %v, want %v", got, want)
	}
}
