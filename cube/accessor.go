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

import "fmt"

// Axis is a per-axis slice selector produced by the (external, in a full
// system) dimension layer and consumed opaquely by cubes and the
// axis-reduction driver. Three kinds exist, matching spec §3's "Slice
// accessor": a point coordinate that collapses the axis, a half-open
// range that keeps it at a new length, and a circular shift that keeps
// its full length.
type Axis interface {
	isAxis()
	// resolve returns the number of elements this accessor yields when
	// applied to an axis of the given original length, whether the axis
	// collapses (point accessors collapse; range/roll do not), and the map
	// from a result coordinate to the original coordinate.
	resolve(origLen int) (newLen int, collapsed bool, mapIndex func(int) int)
}

// Point selects a single coordinate, removing that axis from the result.
type Point int

func (Point) isAxis() {}

func (p Point) resolve(origLen int) (int, bool, func(int) int) {
	idx := int(p)
	if idx < 0 {
		idx += origLen
	}
	return 1, true, func(int) int { return idx }
}

// Range selects the half-open interval [Start, Stop) along an axis,
// keeping the axis with a new, possibly smaller, length.
type Range struct {
	Start, Stop int
}

func (Range) isAxis() {}

func (r Range) resolve(origLen int) (int, bool, func(int) int) {
	start, stop := r.Start, r.Stop
	if start < 0 {
		start += origLen
	}
	if stop < 0 {
		stop += origLen
	}
	if stop < start {
		stop = start
	}
	n := stop - start
	return n, false, func(i int) int { return start + i }
}

// Roll applies a circular shift of Shift elements along an axis, keeping
// the axis' full original length.
type Roll struct {
	Shift int
}

func (Roll) isAxis() {}

func (r Roll) resolve(origLen int) (int, bool, func(int) int) {
	if origLen == 0 {
		return 0, false, func(i int) int { return i }
	}
	shift := r.Shift % origLen
	if shift < 0 {
		shift += origLen
	}
	return origLen, false, func(i int) int {
		j := (i - shift) % origLen
		if j < 0 {
			j += origLen
		}
		return j
	}
}

// Full is shorthand for "keep this axis unchanged" — a Range spanning
// [0, origLen) applied lazily at resolve time.
type Full struct{}

func (Full) isAxis() {}

func (Full) resolve(origLen int) (int, bool, func(int) int) {
	return origLen, false, func(i int) int { return i }
}

func axesOrFull(shape Shape, axes []Axis) []Axis {
	if len(axes) == 0 {
		return axes
	}
	if len(axes) > len(shape) {
		panic(fmt.Sprintf("cube: too many slice axes: %d for shape %v", len(axes), shape))
	}
	out := make([]Axis, len(shape))
	copy(out, axes)
	for i := len(axes); i < len(shape); i++ {
		out[i] = Full{}
	}
	return out
}
