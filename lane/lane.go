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

// Package lane defines the generic type constraints shared by the cube
// storage and kernel layers. It plays the role the teacher library's
// Lanes/Floats/Integers constraints play in github.com/ajroetker/go-highway,
// narrowed to the closed five-type element set this engine supports.
package lane

// Elem is the full closed set of element types a Cube may hold.
type Elem interface {
	bool | int32 | int64 | float32 | float64
}

// Numeric excludes bool; it is the constraint for arithmetic kernels.
type Numeric interface {
	int32 | int64 | float32 | float64
}

// Floats is the floating-point subset of Numeric.
type Floats interface {
	float32 | float64
}

// Ints is the integer subset of Numeric.
type Ints interface {
	int32 | int64
}
