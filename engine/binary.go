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

import (
	"fmt"

	"github.com/deshaw/gocube/cube"
	"github.com/deshaw/gocube/dtype"
	"github.com/deshaw/gocube/lane"
)

// Binary dispatches op across two same-shape, same-dtype cubes, per
// spec §4.1's two-operand entry point. Scalar operands are expected to
// already be lowered to a cube.Broadcast of the matching shape by the
// caller (see BinaryScalarRHS/BinaryScalarLHS).
func (e *Engine) Binary(op Binary, a, b cube.Cube, opts *Options) (cube.Cube, error) {
	if a == nil || b == nil {
		return nil, ErrNullArgument
	}
	if !a.Shape().Equal(b.Shape()) {
		return nil, fmt.Errorf("%w: binary %s: %v vs %v", ErrShapeMismatch, op, a.Shape(), b.Shape())
	}
	if a.DType() != b.DType() {
		return nil, fmt.Errorf("%w: binary %s: %s vs %s", ErrUnsupportedDType, op, a.DType(), b.DType())
	}
	switch a.DType() {
	case dtype.Bool:
		return dispatchBinary[bool](e, op, a, b, opts)
	case dtype.Int32:
		return dispatchBinary[int32](e, op, a, b, opts)
	case dtype.Int64:
		return dispatchBinary[int64](e, op, a, b, opts)
	case dtype.Float32:
		return dispatchBinary[float32](e, op, a, b, opts)
	case dtype.Float64:
		return dispatchBinary[float64](e, op, a, b, opts)
	default:
		return nil, fmt.Errorf("%w: binary %s: %s", ErrUnsupportedDType, op, a.DType())
	}
}

func dispatchBinary[T lane.Elem](e *Engine, op Binary, a, b cube.Cube, opts *Options) (cube.Cube, error) {
	at := a.(cube.Typed[T])
	bt := b.(cube.Typed[T])

	var dest cube.Typed[T]
	if d := opts.dest(); d != nil {
		typed, ok := d.(cube.Typed[T])
		if !ok || !d.MatchesShape(a) {
			return nil, fmt.Errorf("%w: binary %s: destination shape/dtype mismatch", ErrShapeMismatch, op)
		}
		dest = typed
	} else {
		dest = cube.NewLike[T](a.Shape())
	}
	mask := opts.mask()

	n := a.Size()
	err := e.run(n, func(offset, length int) error {
		abuf := make([]T, length)
		bbuf := make([]T, length)
		if errA := at.ToFlat(offset, abuf, 0, length); errA != nil {
			return elementwiseFallbackBinary(op, at, bt, dest, mask, offset, length)
		}
		if errB := bt.ToFlat(offset, bbuf, 0, length); errB != nil {
			return elementwiseFallbackBinary(op, at, bt, dest, mask, offset, length)
		}
		out := make([]T, length)
		for i := 0; i < length; i++ {
			if mask != nil && !mask.GetAt(offset+i) {
				continue
			}
			v, err := applyBinary(op, abuf[i], bbuf[i])
			if err != nil {
				return fmt.Errorf("binary %s at index %d: %w", op, offset+i, err)
			}
			out[i] = v
		}
		if mask == nil {
			if err := dest.FromFlat(out, 0, offset, length); err == nil {
				return nil
			}
		}
		for i := 0; i < length; i++ {
			if mask != nil && !mask.GetAt(offset+i) {
				continue
			}
			dest.SetAt(offset+i, out[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dest, nil
}

// elementwiseFallbackBinary is the scalar fallback path exercised when an
// operand (typically a non-contiguous view) reports ErrBulkIOUnsupported
// from ToFlat, per spec §2 item 8.
func elementwiseFallbackBinary[T lane.Elem](op Binary, a, b, dest cube.Typed[T], mask cube.Typed[bool], offset, length int) error {
	for i := 0; i < length; i++ {
		idx := offset + i
		if mask != nil && !mask.GetAt(idx) {
			continue
		}
		v, err := applyBinary(op, a.GetAt(idx), b.GetAt(idx))
		if err != nil {
			return fmt.Errorf("binary %s at index %d: %w", op, idx, err)
		}
		dest.SetAt(idx, v)
	}
	return nil
}
