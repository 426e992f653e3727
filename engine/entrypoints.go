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
	"github.com/deshaw/gocube/cube"
	"github.com/deshaw/gocube/dtype"
	"github.com/deshaw/gocube/lane"
)

// The package-level functions below delegate to a default Engine built at
// package initialization (config.Load, falling back to config.Default) so that callers
// who don't care about custom tuning never have to construct one. Callers
// that do — a long-running service wanting a dedicated worker pool, or a
// test wanting a tiny ThreadingThreshold to force the parallel path —
// should build their own *Engine with New and call its methods directly.

// BinaryCubes applies a two-operand arithmetic op across two same-shape,
// same-dtype cubes.
func BinaryCubes(op Binary, a, b cube.Cube, opts *Options) (cube.Cube, error) {
	return defaultEngine.Binary(op, a, b, opts)
}

// BinaryScalarRHS applies op(a[i], scalar) for every element of a.
func BinaryScalarRHS[T lane.Elem](op Binary, a cube.Cube, scalar T, opts *Options) (cube.Cube, error) {
	if a == nil {
		return nil, ErrNullArgument
	}
	if a.DType() != dtype.Of[T]() {
		return nil, ErrUnsupportedDType
	}
	return defaultEngine.Binary(op, a, broadcastScalar(a.Shape(), scalar), opts)
}

// BinaryScalarLHS applies op(scalar, b[i]) for every element of b.
func BinaryScalarLHS[T lane.Elem](op Binary, scalar T, b cube.Cube, opts *Options) (cube.Cube, error) {
	if b == nil {
		return nil, ErrNullArgument
	}
	if b.DType() != dtype.Of[T]() {
		return nil, ErrUnsupportedDType
	}
	return defaultEngine.Binary(op, broadcastScalar(b.Shape(), scalar), b, opts)
}

// UnaryCube applies a single-operand op across a cube.
func UnaryCube(op Unary, a cube.Cube, opts *Options) (cube.Cube, error) {
	return defaultEngine.Unary(op, a, opts)
}

// ComparisonCubes applies a relational op across two same-shape,
// same-dtype cubes, producing a boolean cube.
func ComparisonCubes(op Comparison, a, b cube.Cube, opts *Options) (cube.Typed[bool], error) {
	return defaultEngine.Comparison(op, a, b, opts)
}

// ComparisonScalarRHS applies op(a[i], scalar) for every element of a.
func ComparisonScalarRHS[T lane.Elem](op Comparison, a cube.Cube, scalar T, opts *Options) (cube.Typed[bool], error) {
	if a == nil {
		return nil, ErrNullArgument
	}
	if a.DType() != dtype.Of[T]() {
		return nil, ErrUnsupportedDType
	}
	return defaultEngine.Comparison(op, a, broadcastScalar(a.Shape(), scalar), opts)
}

// ComparisonScalarLHS applies op(scalar, b[i]) for every element of b.
func ComparisonScalarLHS[T lane.Elem](op Comparison, scalar T, b cube.Cube, opts *Options) (cube.Typed[bool], error) {
	if b == nil {
		return nil, ErrNullArgument
	}
	if b.DType() != dtype.Of[T]() {
		return nil, ErrUnsupportedDType
	}
	return defaultEngine.Comparison(op, broadcastScalar(b.Shape(), scalar), b, opts)
}

// ReduceAny/ReduceAll fold a boolean cube, per spec §4.4.
func ReduceAny(a cube.Cube, opts *Options) (bool, error) {
	return defaultEngine.ReductiveLogic(Any, a, opts)
}

func ReduceAll(a cube.Cube, opts *Options) (bool, error) {
	return defaultEngine.ReductiveLogic(All, a, opts)
}

// Reduce folds an entire cube to a scalar, boxed as any; type-assert
// using a.DType() to recover the concrete value.
func Reduce(op Associative, a cube.Cube, opts *Options) (any, error) {
	return defaultEngine.Associative(op, a, opts)
}

// ReduceAxes folds a along the given axes, producing a cube of reduced
// shape.
func ReduceAxes(op Associative, a cube.Cube, axes []int, opts *Options) (cube.Cube, error) {
	return defaultEngine.AxisReduce(op, a, axes, opts)
}

// CastTo converts src element-wise to dst's dtype.
func CastTo(src cube.Cube, dst dtype.DType, strict bool, opts *Options) (cube.Cube, error) {
	return defaultEngine.Cast(src, dst, strict, opts)
}

// CopyCube duplicates src into a new cube of the same shape and dtype.
func CopyCube(src cube.Cube, opts *Options) (cube.Cube, error) {
	return defaultEngine.Copy(src, opts)
}

// ExtractMasked gathers src's elements where mask is true.
func ExtractMasked(src cube.Cube, mask cube.Typed[bool]) (cube.Cube, error) {
	return defaultEngine.Extract(src, mask)
}

// SelectWhere is the three-operand selection entry point.
func SelectWhere(cond cube.Typed[bool], ifTrue, ifFalse cube.Cube, opts *Options) (cube.Cube, error) {
	return defaultEngine.Where(cond, ifTrue, ifFalse, opts)
}
