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

// Broadcast is the immutable, zero-storage scalar-broadcast view of
// spec §3: every element reads as the same stored scalar. It is used to
// lower scalar-vs-cube operations to cube-vs-cube operations without
// materializing a full cube.
type Broadcast[T lane.Elem] struct {
	shape Shape
	value T
}

// NewBroadcast returns a Broadcast view of the given shape, reading as v
// everywhere.
func NewBroadcast[T lane.Elem](shape Shape, v T) *Broadcast[T] {
	return &Broadcast[T]{shape: shape.Clone(), value: v}
}

func (b *Broadcast[T]) Size() int            { return b.shape.Size() }
func (b *Broadcast[T]) NDim() int            { return len(b.shape) }
func (b *Broadcast[T]) Shape() Shape         { return b.shape }
func (b *Broadcast[T]) Length(axis int) int  { return b.shape[axis] }
func (b *Broadcast[T]) DType() dtype.DType   { return dtype.Of[T]() }
func (b *Broadcast[T]) SupportsBulkIO() bool { return true }
func (b *Broadcast[T]) Writable() bool       { return false }

func (b *Broadcast[T]) MatchesShape(other Cube) bool { return b.shape.Equal(other.Shape()) }
func (b *Broadcast[T]) Matches(other Cube) bool {
	return b.DType() == other.DType() && b.MatchesShape(other)
}

func (b *Broadcast[T]) GetAt(int) T { return b.value }
func (b *Broadcast[T]) SetAt(int, T) {
	panic("cube: Broadcast is immutable and must never be used as a destination")
}

func (b *Broadcast[T]) GetObjectAt(int) (T, bool) { return b.value, true }
func (b *Broadcast[T]) SetObjectAt(int, T, bool) {
	panic("cube: Broadcast is immutable and must never be used as a destination")
}

func (b *Broadcast[T]) ToFlat(_ int, dst []T, dstOff int, length int) error {
	for i := 0; i < length; i++ {
		dst[dstOff+i] = b.value
	}
	return nil
}

func (b *Broadcast[T]) FromFlat([]T, int, int, int) error {
	panic("cube: Broadcast is immutable and must never be used as a destination")
}

func (b *Broadcast[T]) Fill(T) {
	panic("cube: Broadcast is immutable and must never be used as a destination")
}

func (b *Broadcast[T]) Slice(axes ...Axis) Typed[T] {
	return newView[T](b, axes)
}
