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
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/deshaw/gocube/cube"
	"github.com/deshaw/gocube/dtype"
)

// errShortCircuit is used internally to stop e.run early once Any has
// found a true element or All has found a false one. It never escapes
// ReductiveLogic.
var errShortCircuit = errors.New("engine: reductive logic short-circuited")

// ReductiveLogic folds a boolean cube to a single bool, per spec §4.4.
// Any short-circuits on the first true element; All short-circuits on the
// first false element, including across worker-pool buckets.
func (e *Engine) ReductiveLogic(op ReductiveLogic, a cube.Cube, opts *Options) (bool, error) {
	if a == nil {
		return false, ErrNullArgument
	}
	if a.DType() != dtype.Bool {
		return false, fmt.Errorf("%w: %s requires a boolean cube, got %s", ErrUnsupportedDType, op, a.DType())
	}
	at := a.(cube.Typed[bool])
	mask := opts.mask()

	var found atomic.Bool
	n := a.Size()
	err := e.run(n, func(offset, length int) error {
		for i := 0; i < length; i++ {
			idx := offset + i
			if mask != nil && !mask.GetAt(idx) {
				continue
			}
			v := at.GetAt(idx)
			switch op {
			case Any:
				if v {
					found.Store(true)
					return errShortCircuit
				}
			case All:
				if !v {
					found.Store(true)
					return errShortCircuit
				}
			default:
				return fmt.Errorf("%w: %d", ErrUnsupportedOp, op)
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errShortCircuit) {
		return false, err
	}
	switch op {
	case Any:
		return found.Load(), nil
	case All:
		return !found.Load(), nil
	default:
		return false, fmt.Errorf("%w: %d", ErrUnsupportedOp, op)
	}
}
