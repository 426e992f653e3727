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

// Package engine dispatches element-wise, reductive, casting, and
// extraction operations over cube.Cube operands to dtype-specialized,
// chunk-staged kernels, parallelizing across a worker pool once an
// operation's element count clears the configured threshold.
package engine

import "errors"

// Sentinel errors returned by the dispatch layer. Kernel code always wraps
// one of these with fmt.Errorf's %w so callers can match with errors.Is
// while still getting a specific message.
var (
	ErrNullArgument     = errors.New("engine: argument must not be nil")
	ErrShapeMismatch    = errors.New("engine: operand shapes do not match")
	ErrUnsupportedDType = errors.New("engine: unsupported element type for this operation")
	ErrUnsupportedOp    = errors.New("engine: unsupported operation code")
	ErrCastOverflow     = errors.New("engine: value does not fit destination dtype under strict cast")
	ErrIndexOutOfBounds = errors.New("engine: index out of bounds")
)
