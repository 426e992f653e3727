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
	"errors"
	"fmt"

	"github.com/deshaw/gocube/lane"
)

// ErrInvalidArgument is returned by the 1-D constructors of spec §4.8 when
// their arguments are individually well-typed but jointly nonsensical
// (e.g. a zero step, or a step whose sign disagrees with the requested
// range).
var ErrInvalidArgument = errors.New("cube: invalid argument")

// Array1DOf copies a 1-D source cube into a freshly allocated owned cube
// of the same dtype, the Typed[T] form of spec §4.8's `array(src_cube)`.
func Array1DOf[T lane.Elem](src Typed[T]) Typed[T] {
	if a, ok := src.(Array1D[T]); ok {
		return a.Array()
	}
	out := newDenseLike[T](src.Shape())
	for i := 0; i < src.Size(); i++ {
		out.SetAt(i, src.GetAt(i))
	}
	return out
}

// FromFlatBuf builds a new owned 1-D cube directly from a flat buffer
// (spec §4.8's `array(flat_buf) -> cube` convenience constructor).
func FromFlatBuf[T lane.Numeric](buf []T) Typed[T] {
	cp := make([]T, len(buf))
	copy(cp, buf)
	return NewDenseFromSlice(cp)
}

func FromFlatBufBool(buf []bool) Typed[bool] {
	out := NewBitSet(Shape{len(buf)})
	for i, v := range buf {
		out.SetAt(i, v)
	}
	return out
}

// newDenseLike allocates a same-shape owned Dense cube for numeric T, or
// a BitSet for bool — dispatched by a run-time type switch on the
// zero value, matching the teacher's addHelper-style type-switch idiom.
func newDenseLike[T lane.Elem](shape Shape) Typed[T] {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(NewBitSet(shape)).(Typed[T])
	case int32:
		return any(NewDense[int32](shape)).(Typed[T])
	case int64:
		return any(NewDense[int64](shape)).(Typed[T])
	case float32:
		return any(NewDense[float32](shape)).(Typed[T])
	case float64:
		return any(NewDense[float64](shape)).(Typed[T])
	default:
		panic(fmt.Sprintf("cube: unsupported element type %T", zero))
	}
}

// NewLike allocates a fresh default cube of the given shape for dtype T:
// a contiguous Dense array for numeric types, a BitSet for boolean. This
// is what dispatch entry points use to materialize a destination cube
// when the caller didn't supply one.
func NewLike[T lane.Elem](shape Shape) Typed[T] {
	return newDenseLike[T](shape)
}

// Arange returns a 1-D cube of start, start+step, start+2*step, ...,
// stopping strictly before stop. step must be non-zero and share the sign
// of (stop - start); violating either fails with ErrInvalidArgument.
func Arange[T lane.Numeric](start, stop, step T) (Typed[T], error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: arange: step must be non-zero", ErrInvalidArgument)
	}
	diff := stop - start
	if (diff > 0) != (step > 0) && diff != 0 {
		return nil, fmt.Errorf("%w: arange: sign(step) must match sign(stop-start)", ErrInvalidArgument)
	}
	n := int(diff / step)
	if n >= 0 && T(n)*step != diff {
		n++
	}
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	v := start
	for i := 0; i < n; i++ {
		out[i] = v
		v += step
	}
	return NewDenseFromSlice(out), nil
}

// ArangeStop is the one-argument form: arange(stop) == Arange(0, stop, 1).
func ArangeStop[T lane.Numeric](stop T) (Typed[T], error) {
	return Arange[T](0, stop, 1)
}

// ArangeStartStop is the two-argument form: arange(start, stop) ==
// Arange(start, stop, 1).
func ArangeStartStop[T lane.Numeric](start, stop T) (Typed[T], error) {
	return Arange[T](start, stop, 1)
}

// BroadcastFill materializes a newly-allocated, filled cube of the requested
// shape — the eager counterpart to the lazy Broadcast view of §3. Also
// known as `full` in spec §4.8.
func BroadcastFill[T lane.Elem](shape Shape, v T) Typed[T] {
	out := newDenseLike[T](shape)
	out.Fill(v)
	return out
}

// BroadcastSize is the 1-D convenience form: BroadcastSize(n, v) ==
// BroadcastFill(Shape{n}, v).
func BroadcastSize[T lane.Elem](size int, v T) Typed[T] {
	return BroadcastFill[T](Shape{size}, v)
}
