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

	"github.com/deshaw/gocube/lane"
)

// applyBinary computes a `op` b for one element, dispatching on the
// concrete type the way the teacher's addHelper/subHelper family in
// ops_base.go dispatches per-type arithmetic, collapsed into a single
// type-switch per call site instead of one helper per operator. And/Or/Xor
// additionally accept bool, per spec §4.3's bitwise-on-0/−1-lane mapping.
func applyBinary[T lane.Elem](op Binary, a, b T) (T, error) {
	switch x := any(a).(type) {
	case bool:
		y := any(b).(bool)
		r, err := binaryBool(op, x, y)
		return any(r).(T), err
	case int32:
		y := any(b).(int32)
		r, err := binaryInt(op, x, y)
		return any(r).(T), err
	case int64:
		y := any(b).(int64)
		r, err := binaryInt(op, x, y)
		return any(r).(T), err
	case float32:
		y := any(b).(float32)
		r, err := binaryFloat(op, float64(x), float64(y))
		return any(float32(r)).(T), err
	case float64:
		y := any(b).(float64)
		r, err := binaryFloat(op, x, y)
		return any(r).(T), err
	default:
		var zero T
		return zero, fmt.Errorf("%w: %T", ErrUnsupportedDType, a)
	}
}

type integer interface{ ~int32 | ~int64 }

func binaryInt[T integer](op Binary, a, b T) (T, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		if b == 0 {
			return 0, fmt.Errorf("%w: integer division by zero", ErrUnsupportedOp)
		}
		return a / b, nil
	case Mod:
		if b == 0 {
			return 0, fmt.Errorf("%w: integer modulo by zero", ErrUnsupportedOp)
		}
		return a % b, nil
	case Pow:
		return T(math.Pow(float64(a), float64(b))), nil
	case Min:
		if a < b {
			return a, nil
		}
		return b, nil
	case Max:
		if a > b {
			return a, nil
		}
		return b, nil
	case And:
		return a & b, nil
	case Or:
		return a | b, nil
	case Xor:
		return a ^ b, nil
	default:
		return 0, fmt.Errorf("%w: binary op %d", ErrUnsupportedOp, op)
	}
}

func binaryFloat(op Binary, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		return a / b, nil
	case Mod:
		return math.Mod(a, b), nil
	case Pow:
		return math.Pow(a, b), nil
	case Min:
		return math.Min(a, b), nil
	case Max:
		return math.Max(a, b), nil
	case And, Or, Xor:
		return 0, fmt.Errorf("%w: binary op %s on float dtype", ErrUnsupportedDType, op)
	default:
		return 0, fmt.Errorf("%w: binary op %d", ErrUnsupportedOp, op)
	}
}

// binaryBool evaluates the bitwise family on the boolean lane, where the
// SIMD 0/−1 representation makes And/Or/Xor the natural mapping of
// logical and/or/xor, per spec §4.3.
func binaryBool(op Binary, a, b bool) (bool, error) {
	switch op {
	case And:
		return a && b, nil
	case Or:
		return a || b, nil
	case Xor:
		return a != b, nil
	default:
		return false, fmt.Errorf("%w: binary op %s on bool dtype", ErrUnsupportedDType, op)
	}
}

// applyUnary computes op(a). The transcendental family (Exp, Log, Log10,
// Sin, Sinh, Cos, Cosh, Tan, Tanh) is float-only: spec's closed dtype set
// has no implicit int-to-float promotion, so calling one of these on an
// integer cube is ErrUnsupportedDType rather than a silent cast. Not is
// bool-only, mapped onto the SIMD 0/−1 lane as a bitwise complement.
func applyUnary[T lane.Elem](op Unary, a T) (T, error) {
	switch x := any(a).(type) {
	case bool:
		r, err := unaryBool(op, x)
		return any(r).(T), err
	case int32:
		r, err := unaryInt(op, x)
		return any(r).(T), err
	case int64:
		r, err := unaryInt(op, x)
		return any(r).(T), err
	case float32:
		r, err := unaryFloat(op, float64(x))
		return any(float32(r)).(T), err
	case float64:
		r, err := unaryFloat(op, x)
		return any(r).(T), err
	default:
		var zero T
		return zero, fmt.Errorf("%w: %T", ErrUnsupportedDType, a)
	}
}

func unaryInt[T integer](op Unary, a T) (T, error) {
	switch op {
	case Neg:
		return -a, nil
	case Abs:
		if a < 0 {
			return -a, nil
		}
		return a, nil
	case Floor, Ceil, Round:
		return a, nil
	default:
		return 0, fmt.Errorf("%w: unary op %s on integer dtype", ErrUnsupportedDType, op)
	}
}

func unaryFloat(op Unary, a float64) (float64, error) {
	switch op {
	case Neg:
		return -a, nil
	case Abs:
		return math.Abs(a), nil
	case Exp:
		return math.Exp(a), nil
	case Log:
		return math.Log(a), nil
	case Log10:
		return math.Log10(a), nil
	case Sin:
		return math.Sin(a), nil
	case Sinh:
		return math.Sinh(a), nil
	case Cos:
		return math.Cos(a), nil
	case Cosh:
		return math.Cosh(a), nil
	case Tan:
		return math.Tan(a), nil
	case Tanh:
		return math.Tanh(a), nil
	case Floor:
		return math.Floor(a), nil
	case Ceil:
		return math.Ceil(a), nil
	case Round:
		return math.RoundToEven(a), nil
	default:
		return 0, fmt.Errorf("%w: unary op %d", ErrUnsupportedOp, op)
	}
}

// unaryBool evaluates Not on the boolean lane, where the SIMD 0/−1
// representation makes bitwise complement the natural mapping of logical
// not, per spec §4.4.
func unaryBool(op Unary, a bool) (bool, error) {
	switch op {
	case Not:
		return !a, nil
	default:
		return false, fmt.Errorf("%w: unary op %s on bool dtype", ErrUnsupportedDType, op)
	}
}

// applyComparison evaluates a `op` b for any element type in the closed
// set, including bool (which only supports Eq/Ne, matching Go's own rule
// that booleans are not ordered).
func applyComparison[T lane.Elem](op Comparison, a, b T) (bool, error) {
	if x, ok := any(a).(bool); ok {
		y := any(b).(bool)
		switch op {
		case Eq:
			return x == y, nil
		case Ne:
			return x != y, nil
		default:
			return false, fmt.Errorf("%w: comparison %s is not defined on bool", ErrUnsupportedOp, op)
		}
	}
	af, bf := numericAsFloat(a), numericAsFloat(b)
	switch op {
	case Eq:
		return af == bf, nil
	case Ne:
		return af != bf, nil
	case Lt:
		return af < bf, nil
	case Le:
		return af <= bf, nil
	case Gt:
		return af > bf, nil
	case Ge:
		return af >= bf, nil
	default:
		return false, fmt.Errorf("%w: comparison op %d", ErrUnsupportedOp, op)
	}
}

func numericAsFloat[T lane.Elem](v T) float64 {
	switch x := any(v).(type) {
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return math.NaN()
	}
}

// isMissing reports whether v is the dtype's missing sentinel (NaN for
// floats; integers and bools have no missing representation).
func isMissing[T lane.Elem](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return math.IsNaN(float64(x))
	case float64:
		return math.IsNaN(x)
	default:
		return false
	}
}
