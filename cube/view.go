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

package cube

import (
	"github.com/deshaw/gocube/dtype"
	"github.com/deshaw/gocube/lane"
)

// view is the non-owning logical subview produced by Slice. It is
// deliberately not bulk-I/O capable: ToFlat/FromFlat always report
// ErrBulkIOUnsupported, which is exactly the "operand incompatible with
// the fast path" case spec §2 item 8 names as the reason a kernel falls
// through to its scalar loop. A production storage layer could support
// bulk I/O for contiguous views (unit stride, no roll); this reference
// backend keeps the fallback path honest by never claiming it.
type view[T lane.Elem] struct {
	base       Typed[T]
	shape      Shape
	baseStride []int
	// perAxis[i] maps a coordinate along view axis i (or 0, for a
	// collapsed axis) to the corresponding coordinate along the base axis
	// it was carved from.
	perAxis    []func(int) int
	baseAxisOf []int // not populated by newView; toBase walks perAxis in base-axis order instead
	collapsed  []bool
	viewStride []int
}

func newView[T lane.Elem](base Typed[T], axes []Axis) *view[T] {
	resolved := axesOrFull(base.Shape(), axes)

	shape := make(Shape, 0, len(resolved))
	perAxis := make([]func(int) int, len(resolved))
	collapsed := make([]bool, len(resolved))
	for i, ax := range resolved {
		n, coll, mp := ax.resolve(base.Shape()[i])
		perAxis[i] = mp
		collapsed[i] = coll
		if !coll {
			shape = append(shape, n)
		}
	}

	return &view[T]{
		base:       base,
		shape:      shape,
		baseStride: strides(base.Shape()),
		perAxis:    perAxis,
		collapsed:  collapsed,
		viewStride: strides(shape),
	}
}

func (v *view[T]) Size() int           { return v.shape.Size() }
func (v *view[T]) NDim() int           { return len(v.shape) }
func (v *view[T]) Shape() Shape        { return v.shape }
func (v *view[T]) Length(axis int) int { return v.shape[axis] }
func (v *view[T]) DType() dtype.DType  { return v.base.DType() }
func (v *view[T]) SupportsBulkIO() bool { return false }
func (v *view[T]) Writable() bool       { return v.base.Writable() }

func (v *view[T]) MatchesShape(other Cube) bool { return v.shape.Equal(other.Shape()) }
func (v *view[T]) Matches(other Cube) bool {
	return v.DType() == other.DType() && v.MatchesShape(other)
}

// toBase maps a flat index in this view's coordinate space to the
// corresponding flat index into the base cube.
func (v *view[T]) toBase(i int) int {
	baseIdx := 0
	viewAxis := 0
	for axis := range v.perAxis {
		var coord int
		if v.collapsed[axis] {
			coord = v.perAxis[axis](0)
		} else {
			c := (i / v.viewStride[viewAxis]) % v.shape[viewAxis]
			coord = v.perAxis[axis](c)
			viewAxis++
		}
		baseIdx += coord * v.baseStride[axis]
	}
	return baseIdx
}

func (v *view[T]) GetAt(i int) T    { return v.base.GetAt(v.toBase(i)) }
func (v *view[T]) SetAt(i int, x T) { v.base.SetAt(v.toBase(i), x) }

func (v *view[T]) GetObjectAt(i int) (T, bool) { return v.base.GetObjectAt(v.toBase(i)) }
func (v *view[T]) SetObjectAt(i int, x T, present bool) {
	v.base.SetObjectAt(v.toBase(i), x, present)
}

func (v *view[T]) ToFlat(int, []T, int, int) error   { return ErrBulkIOUnsupported }
func (v *view[T]) FromFlat([]T, int, int, int) error { return ErrBulkIOUnsupported }

func (v *view[T]) Fill(x T) {
	for i := 0; i < v.Size(); i++ {
		v.SetAt(i, x)
	}
}

func (v *view[T]) Slice(axes ...Axis) Typed[T] {
	return newView[T](v, axes)
}
