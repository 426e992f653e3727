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
	"math"

	"github.com/deshaw/gocube/dtype"
	"github.com/deshaw/gocube/lane"
)

// Dense is the contiguous-array storage backend for the numeric element
// types (i32, i64, f32, f64). Missing values have no bit pattern for
// integers; for floats, missing collapses to the dtype's NaN, per spec §3.
type Dense[T lane.Numeric] struct {
	shape Shape
	data  []T
}

// NewDense allocates a zero-filled Dense cube of the given shape.
func NewDense[T lane.Numeric](shape Shape) *Dense[T] {
	return &Dense[T]{shape: shape.Clone(), data: make([]T, shape.Size())}
}

// NewDenseFromSlice wraps buf directly (no copy) as a 1-D Dense cube.
func NewDenseFromSlice[T lane.Numeric](buf []T) *Dense[T] {
	return &Dense[T]{shape: Shape{len(buf)}, data: buf}
}

func (d *Dense[T]) Size() int        { return len(d.data) }
func (d *Dense[T]) NDim() int        { return len(d.shape) }
func (d *Dense[T]) Shape() Shape     { return d.shape }
func (d *Dense[T]) Length(axis int) int { return d.shape[axis] }
func (d *Dense[T]) DType() dtype.DType  { return dtype.Of[T]() }
func (d *Dense[T]) SupportsBulkIO() bool { return true }
func (d *Dense[T]) Writable() bool       { return true }

func (d *Dense[T]) MatchesShape(other Cube) bool {
	return d.shape.Equal(other.Shape())
}

func (d *Dense[T]) Matches(other Cube) bool {
	return d.DType() == other.DType() && d.MatchesShape(other)
}

func (d *Dense[T]) GetAt(i int) T    { return d.data[i] }
func (d *Dense[T]) SetAt(i int, v T) { d.data[i] = v }

// GetObjectAt exposes the object-level missing-value API: floats report
// missing when the stored value is NaN; integers and bools have no
// missing bit pattern at the primitive level, so they always report present.
func (d *Dense[T]) GetObjectAt(i int) (T, bool) {
	v := d.data[i]
	if isNaN(v) {
		return v, false
	}
	return v, true
}

func (d *Dense[T]) SetObjectAt(i int, v T, present bool) {
	if !present {
		d.data[i] = nanOf[T]()
		return
	}
	d.data[i] = v
}

func (d *Dense[T]) ToFlat(srcOff int, dst []T, dstOff int, length int) error {
	copy(dst[dstOff:dstOff+length], d.data[srcOff:srcOff+length])
	return nil
}

func (d *Dense[T]) FromFlat(src []T, srcOff int, dstOff int, length int) error {
	copy(d.data[dstOff:dstOff+length], src[srcOff:srcOff+length])
	return nil
}

func (d *Dense[T]) Fill(v T) {
	for i := range d.data {
		d.data[i] = v
	}
}

func (d *Dense[T]) Slice(axes ...Axis) Typed[T] {
	return newView[T](d, axes)
}

// Array returns a copy of this 1-D cube's data as a new owned Dense cube,
// implementing spec §4.8's `array()` constructor.
func (d *Dense[T]) Array() Typed[T] {
	out := make([]T, len(d.data))
	copy(out, d.data)
	return NewDenseFromSlice(out)
}

// nanOf returns the dtype-appropriate NaN for floats, and the zero value
// for types with no missing representation (the SIMD fast path silently
// drops null-preservation on those, matching spec §9's design note).
func nanOf[T lane.Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(math.NaN())).(T)
	case float64:
		return any(math.NaN()).(T)
	default:
		return zero
	}
}

func isNaN[T lane.Numeric](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return math.IsNaN(float64(x))
	case float64:
		return math.IsNaN(x)
	default:
		return false
	}
}
