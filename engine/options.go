// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import "github.com/deshaw/gocube/cube"

// Options carries the optional knobs accepted by dispatch entry points:
// an explicit destination to write into, a boolean mask restricting which
// elements are touched, a reduction seed, and the deterministic-order
// override described in spec §9's open question on reduction order.
//
// Every field is optional; the zero Options requests the default
// behavior (allocate a destination, touch every element, use the
// fastest available reduction order).
type Options struct {
	// Dest, if non-nil, is written in place instead of allocating a new
	// cube. It must match the result shape and dtype exactly.
	Dest cube.Cube
	// Mask, if non-nil, restricts writes to elements where it is true.
	// Elements outside the mask keep whatever Dest already held.
	Mask cube.Typed[bool]
	// Initial is accepted by every entry point but read by none of them:
	// Associative and AxisReduce always start their fold from an empty
	// accumulator, so a value set here does not seed the result, and a
	// value of the wrong dtype is not reported as an error.
	Initial any
	// Deterministic, when true, forces a whole-cube Associative reduction
	// to partition into exactly cfg.NumThreads fixed-size buckets
	// (ignoring ThreadingThreshold) and combine their partial folds with
	// a pairwise tree merge instead of a left-to-right fold, per
	// spec.md §9's deterministic-reduction option (b). The resulting
	// float rounding schedule then depends only on NumThreads, never on
	// goroutine completion order. Axis-wise reductions already fold each
	// output cell on a single goroutine and are unaffected by this flag.
	Deterministic bool
}

func (o *Options) dest() cube.Cube {
	if o == nil {
		return nil
	}
	return o.Dest
}

func (o *Options) mask() cube.Typed[bool] {
	if o == nil {
		return nil
	}
	return o.Mask
}

func (o *Options) deterministic() bool {
	return o != nil && o.Deterministic
}
