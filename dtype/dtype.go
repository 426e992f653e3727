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

// Package dtype defines the closed set of element types the cube engine
// operates over, and the runtime tag used to route dispatch.
package dtype

// DType is the runtime tag for a cube's element type. The engine supports
// exactly five element types; there is no provision for adding a sixth
// without also adding its kernels, cast pairs, and storage backend.
type DType int

const (
	// Invalid marks a zero-value DType that no cube should ever report.
	Invalid DType = iota
	Bool
	Int32
	Int64
	Float32
	Float64
)

// String returns a human-readable name, used in error messages.
func (d DType) String() string {
	switch d {
	case Bool:
		return "bool"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	default:
		return "invalid"
	}
}

// IsFloat reports whether d is one of the floating-point types.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// IsInt reports whether d is one of the integer types.
func (d DType) IsInt() bool {
	return d == Int32 || d == Int64
}

// Of returns the DType tag for the Go type parameter T.
//
// T must be one of bool, int32, int64, float32, float64; any other type
// returns Invalid (callers route on DType, so this is the single place
// compile-time T becomes a runtime tag).
func Of[T any]() DType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		return Invalid
	}
}
