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
	"math"

	"github.com/deshaw/gocube/cube"
	"github.com/deshaw/gocube/dtype"
	"github.com/deshaw/gocube/lane"
)

// Cast converts src element-wise into a freshly allocated (or, with
// Options.Dest, caller-supplied) cube of dst's dtype, per spec §4.6. In
// strict mode a value that would lose magnitude under the conversion
// (integer overflow, float overflow to +/-Inf) fails the whole operation
// with ErrCastOverflow instead of silently wrapping or saturating.
func (e *Engine) Cast(src cube.Cube, dst dtype.DType, strict bool, opts *Options) (cube.Cube, error) {
	if src == nil {
		return nil, ErrNullArgument
	}
	switch src.DType() {
	case dtype.Bool:
		return castFrom[bool](e, src, dst, strict, opts)
	case dtype.Int32:
		return castFrom[int32](e, src, dst, strict, opts)
	case dtype.Int64:
		return castFrom[int64](e, src, dst, strict, opts)
	case dtype.Float32:
		return castFrom[float32](e, src, dst, strict, opts)
	case dtype.Float64:
		return castFrom[float64](e, src, dst, strict, opts)
	default:
		return nil, fmt.Errorf("%w: cast source dtype %s", ErrUnsupportedDType, src.DType())
	}
}

// Copy is cast's identity case: a same-dtype, same-shape duplicate of
// src, per spec §4.6's `copy(src)`/`copy(src, dst)`.
func (e *Engine) Copy(src cube.Cube, opts *Options) (cube.Cube, error) {
	if src == nil {
		return nil, ErrNullArgument
	}
	return e.Cast(src, src.DType(), false, opts)
}

func castFrom[S lane.Elem](e *Engine, src cube.Cube, dst dtype.DType, strict bool, opts *Options) (cube.Cube, error) {
	switch dst {
	case dtype.Bool:
		return castTo[S, bool](e, src, strict, opts)
	case dtype.Int32:
		return castTo[S, int32](e, src, strict, opts)
	case dtype.Int64:
		return castTo[S, int64](e, src, strict, opts)
	case dtype.Float32:
		return castTo[S, float32](e, src, strict, opts)
	case dtype.Float64:
		return castTo[S, float64](e, src, strict, opts)
	default:
		return nil, fmt.Errorf("%w: cast target dtype %s", ErrUnsupportedDType, dst)
	}
}

func castTo[S, D lane.Elem](e *Engine, src cube.Cube, strict bool, opts *Options) (cube.Cube, error) {
	st := src.(cube.Typed[S])

	var dest cube.Typed[D]
	if d := opts.dest(); d != nil {
		typed, ok := d.(cube.Typed[D])
		if !ok || !d.MatchesShape(src) {
			return nil, fmt.Errorf("%w: cast: destination shape/dtype mismatch", ErrShapeMismatch)
		}
		dest = typed
	} else {
		dest = cube.NewLike[D](src.Shape())
	}

	mask := opts.mask()

	n := src.Size()
	err := e.run(n, func(offset, length int) error {
		for i := 0; i < length; i++ {
			idx := offset + i
			if mask != nil && !mask.GetAt(idx) {
				continue
			}
			v, err := convertScalar[S, D](st.GetAt(idx), strict)
			if err != nil {
				return fmt.Errorf("cast at index %d: %w", idx, err)
			}
			dest.SetAt(idx, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dest, nil
}

// convertScalar converts one element from S to D, routing bool through
// its own 0.0/1.0 <-> truthiness rule and every numeric pair through a
// float64 intermediate. Very large int64 magnitudes (beyond 2^53) lose
// precision going through that intermediate; spec's closed dtype set has
// no path that needs exact int64<->int64 identity to avoid it (same-type
// casts never leave convertScalar's fast path below).
func convertScalar[S, D lane.Elem](v S, strict bool) (D, error) {
	if sv, ok := any(v).(S); ok {
		if dv, ok := any(sv).(D); ok {
			return dv, nil
		}
	}

	if bv, ok := any(v).(bool); ok {
		var zeroD D
		if _, isBool := any(zeroD).(bool); isBool {
			return any(bv).(D), nil
		}
		f := 0.0
		if bv {
			f = 1.0
		}
		return numericFromFloat[D](f, strict)
	}

	var zeroD D
	if _, isBool := any(zeroD).(bool); isBool {
		f := numericAsFloat(v)
		return any(f != 0).(D), nil
	}

	return numericFromFloat[D](numericAsFloat(v), strict)
}

func numericFromFloat[D lane.Elem](f float64, strict bool) (D, error) {
	var zero D
	switch any(zero).(type) {
	case int32:
		if math.IsNaN(f) {
			if strict {
				return zero, fmt.Errorf("%w: NaN has no integer representation", ErrCastOverflow)
			}
			return zero, nil
		}
		if strict && (f < math.MinInt32 || f > math.MaxInt32) {
			return zero, fmt.Errorf("%w: %g does not fit int32", ErrCastOverflow, f)
		}
		return any(int32(clamp(f, math.MinInt32, math.MaxInt32))).(D), nil
	case int64:
		if math.IsNaN(f) {
			if strict {
				return zero, fmt.Errorf("%w: NaN has no integer representation", ErrCastOverflow)
			}
			return zero, nil
		}
		const maxI64Float = 9223372036854774784.0 // largest float64 exactly <= MaxInt64
		const minI64Float = -9223372036854775808.0
		if strict && (f < minI64Float || f > maxI64Float) {
			return zero, fmt.Errorf("%w: %g does not fit int64", ErrCastOverflow, f)
		}
		return any(int64(clamp(f, minI64Float, maxI64Float))).(D), nil
	case float32:
		if strict && !math.IsNaN(f) && (f > math.MaxFloat32 || f < -math.MaxFloat32) {
			return zero, fmt.Errorf("%w: %g overflows float32", ErrCastOverflow, f)
		}
		return any(float32(f)).(D), nil
	case float64:
		return any(f).(D), nil
	default:
		return zero, fmt.Errorf("%w: cast destination %T", ErrUnsupportedDType, zero)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
