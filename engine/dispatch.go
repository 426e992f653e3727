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
	"runtime"

	"golang.org/x/sys/cpu"
)

// HostFeatures summarizes the vector instruction sets the current CPU
// supports. The engine never branches kernels on this — every op family
// runs the same scalar-per-element loop regardless of host capability,
// since parallelism here comes from the worker pool (spec §5), not from
// per-architecture SIMD assembly (the teacher's GOEXPERIMENT=simd path,
// dropped per DESIGN.md). HostFeatures exists so operators can see, via
// logs, whether the machine an Engine runs on could in principle support
// a future vectorized kernel without the engine itself depending on one.
type HostFeatures struct {
	Architecture string
	AVX2         bool
	AVX512       bool
	NEON         bool
}

// DetectHostFeatures inspects golang.org/x/sys/cpu for the current
// process' architecture. Fields for instruction sets that don't apply to
// the running GOARCH are always false rather than omitted, so callers
// can log a HostFeatures value uniformly across platforms.
func DetectHostFeatures() HostFeatures {
	return HostFeatures{
		Architecture: runtime.GOARCH,
		AVX2:         cpu.X86.HasAVX2,
		AVX512:       cpu.X86.HasAVX512F,
		NEON:         cpu.ARM64.HasASIMD,
	}
}
