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

// Package cube provides the minimal concrete storage backends that
// implement the external Cube contract the engine package depends on:
// a contiguous-array backend for numeric dtypes, a packed bitset for
// booleans, a non-owning slice view, and the scalar-broadcast view.
//
// The engine package treats all of these only through the Cube/Typed
// interfaces defined here; it never assumes a concrete backend.
package cube

import (
	"errors"
	"fmt"

	"github.com/deshaw/gocube/dtype"
	"github.com/deshaw/gocube/lane"
)

// ErrBulkIOUnsupported is returned by ToFlat/FromFlat when the backing
// storage cannot service a bulk staged transfer (e.g. a non-contiguous
// view). It is never itself surfaced by the engine: a kernel catches it
// and restarts the affected range on the scalar element loop.
var ErrBulkIOUnsupported = errors.New("cube: bulk staged I/O not supported by this backend")

// Shape is the ordered sequence of per-axis lengths.
type Shape []int

// Size returns the total element count, the product of all lengths.
// An empty Shape (0-dim / scalar) has size 1.
func (s Shape) Size() int {
	n := 1
	for _, l := range s {
		n *= l
	}
	return n
}

// Equal reports whether two shapes have identical lengths in the same order.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// strides returns the row-major (last-axis-fastest) stride for each axis.
func strides(shape Shape) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}
	return st
}

// Cube is the dtype-erased surface the dispatcher inspects before routing
// to a specialized, generic kernel over Typed[T]. It mirrors spec §6's
// Cube contract, minus the typed accessors (those live on Typed[T]).
type Cube interface {
	Size() int
	NDim() int
	Shape() Shape
	Length(axis int) int
	DType() dtype.DType
	MatchesShape(other Cube) bool
	Matches(other Cube) bool
	// SupportsBulkIO reports whether ToFlat/FromFlat can be used directly;
	// false steers callers straight to the scalar fallback without paying
	// for a failed bulk attempt.
	SupportsBulkIO() bool
	Writable() bool
}

// Typed adds the element-typed accessors to Cube. Callers obtain a Typed[T]
// from a Cube by first checking DType() and then type-asserting:
//
//	if c.DType() == dtype.Float64 {
//	    typed := c.(cube.Typed[float64])
//	}
type Typed[T lane.Elem] interface {
	Cube
	GetAt(i int) T
	SetAt(i int, v T)
	GetObjectAt(i int) (T, bool)
	SetObjectAt(i int, v T, present bool)
	// ToFlat stages length elements starting at srcOff (in this cube's
	// flat index space) into dst starting at dstOff. Returns
	// ErrBulkIOUnsupported if the backend cannot honor bulk transfer.
	ToFlat(srcOff int, dst []T, dstOff int, length int) error
	// FromFlat is the inverse of ToFlat: writes length elements from src
	// starting at srcOff into this cube starting at dstOff.
	FromFlat(src []T, srcOff int, dstOff int, length int) error
	Fill(v T)
	Slice(axes ...Axis) Typed[T]
}

// Array1D is implemented by 1-D backends that support cloning to a fresh
// owned cube (spec §4.8's `array()` constructor).
type Array1D[T lane.Elem] interface {
	Array() Typed[T]
}

func shapeMismatch(op string, a, b Cube) error {
	return fmt.Errorf("cube: %s: shape mismatch %v (%s) vs %v (%s)", op, a.Shape(), a.DType(), b.Shape(), b.DType())
}

// MatchesShapeOf is a helper matching spec's matches_shape predicate
// (shape equality only, dtype-agnostic) for use by dispatch-layer code
// that already knows both operands are the same dtype.
func MatchesShapeOf(a, b Cube) bool {
	return a.Shape().Equal(b.Shape())
}
