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
	"go.uber.org/zap"

	"github.com/deshaw/gocube/config"
	"github.com/deshaw/gocube/engine/pool"
)

// Engine holds the tuning configuration and worker pool every dispatch
// entry point runs against. The zero Engine is not usable; construct one
// with New or use the package-level default entry points, which share an
// Engine built at package initialization from config.Load (falling back to
// config.Default if Load returns an error).
type Engine struct {
	cfg  *config.Config
	pool *pool.Pool
	log  *zap.Logger
	host HostFeatures
}

// New builds an Engine from cfg. If cfg disables the worker pool
// (NumThreads <= 1, per SPEC_FULL.md's redesign of the teacher's
// New(0)-means-GOMAXPROCS default), every operation runs on the calling
// goroutine regardless of ThreadingThreshold.
func New(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	e := &Engine{cfg: cfg, log: zap.NewNop(), host: DetectHostFeatures()}
	if !cfg.PoolDisabled() {
		e.pool = pool.New(cfg.NumThreads)
	}
	return e
}

// WithLogger attaches a structured logger. Attaching it immediately
// reports the detected host vector capability at Info, purely as an
// operational diagnostic: the engine's own kernels always run the same
// scalar-per-element loop regardless of what the host supports. After
// that the engine logs each dispatch to the worker pool at Debug and the
// pool's shutdown in Close at Info. Pool construction (done in New, before
// any logger is attached) and kernel fallbacks to the element-wise loop
// are not logged, and nothing is logged per element.
func (e *Engine) WithLogger(log *zap.Logger) *Engine {
	e.log = log
	e.log.Info("engine: host capability detected",
		zap.String("arch", e.host.Architecture),
		zap.Bool("avx2", e.host.AVX2), zap.Bool("avx512", e.host.AVX512), zap.Bool("neon", e.host.NEON))
	return e
}

// HostFeatures reports the vector capability detected for the current
// process, for diagnostics and logging.
func (e *Engine) HostFeatures() HostFeatures {
	return e.host
}

// Close releases the worker pool, if one was constructed. Safe to call on
// an Engine that never built a pool.
func (e *Engine) Close() {
	if e.pool != nil {
		e.log.Info("engine: closing worker pool", zap.Int("workers", e.pool.NumWorkers()))
		e.pool.Close()
	}
}

var defaultEngine = New(loadDefaultConfig())

func loadDefaultConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.Default()
	}
	return cfg
}
