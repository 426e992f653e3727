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

// Unary dispatches op across a single cube, per spec §4.1's one-operand
// entry point.
func (e *Engine) Unary(op Unary, a cube.Cube, opts *Options) (cube.Cube, error) {
	if a == nil {
		return nil, ErrNullArgument
	}
	switch a.DType() {
	case dtype.Bool:
		return dispatchUnary[bool](e, op, a, opts)
	case dtype.Int32:
		return dispatchUnary[int32](e, op, a, opts)
	case dtype.Int64:
		return dispatchUnary[int64](e, op, a, opts)
	case dtype.Float32:
		return dispatchUnary[float32](e, op, a, opts)
	case dtype.Float64:
		return dispatchUnary[float64](e, op, a, opts)
	default:
		return nil, fmt.Errorf("%w: unary %s: %s", ErrUnsupportedDType, op, a.DType())
	}
}

func dispatchUnary[T lane.Elem](e *Engine, op Unary, a cube.Cube, opts *Options) (cube.Cube, error) {
	at := a.(cube.Typed[T])

	var dest cube.Typed[T]
	if d := opts.dest(); d != nil {
		typed, ok := d.(cube.Typed[T])
		if !ok || !d.MatchesShape(a) {
			return nil, fmt.Errorf("%w: unary %s: destination shape/dtype mismatch", ErrShapeMismatch, op)
		}
		dest = typed
	} else {
		dest = cube.NewLike[T](a.Shape())
	}
	mask := opts.mask()

	n := a.Size()
	err := e.run(n, func(offset, length int) error {
		buf := make([]T, length)
		if errA := at.ToFlat(offset, buf, 0, length); errA != nil {
			return elementwiseFallbackUnary(op, at, dest, mask, offset, length)
		}
		out := make([]T, length)
		for i := 0; i < length; i++ {
			if mask != nil && !mask.GetAt(offset+i) {
				continue
			}
			v, err := applyUnary(op, buf[i])
			if err != nil {
				return fmt.Errorf("unary %s at index %d: %w", op, offset+i, err)
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

func elementwiseFallbackUnary[T lane.Elem](op Unary, a, dest cube.Typed[T], mask cube.Typed[bool], offset, length int) error {
	for i := 0; i < length; i++ {
		idx := offset + i
		if mask != nil && !mask.GetAt(idx) {
			continue
		}
		v, err := applyUnary(op, a.GetAt(idx))
		if err != nil {
			return fmt.Errorf("unary %s at index %d: %w", op, idx, err)
		}
		dest.SetAt(idx, v)
	}
	return nil
}
