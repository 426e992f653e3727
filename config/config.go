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

// Package config loads the runtime tuning knobs of the compute engine:
// the staging buffer size, the sequential/parallel threshold, and the
// worker pool size. There is no config file in scope, only environment
// variables, read once at process init through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrBadConfig wraps every validation failure Load can return.
var ErrBadConfig = errors.New("config: invalid configuration")

// Config holds the engine's tunable parameters, per spec §6.
type Config struct {
	// StagingSize is the number of elements staged per chunk by the
	// SIMD-style kernel loop.
	StagingSize int `mapstructure:"staging_size"`
	// ThreadingThreshold is the minimum total element count before the
	// worker pool is engaged; smaller inputs run on the calling goroutine.
	ThreadingThreshold int `mapstructure:"threading_threshold"`
	// NumThreads is the worker pool size. 0 or 1 disables the pool
	// entirely: every operation runs on the calling goroutine regardless
	// of ThreadingThreshold.
	NumThreads int `mapstructure:"num_threads"`
}

const envPrefix = "GOCUBE"

// Load reads Config from GOCUBE_-prefixed environment variables, applying
// defaults for anything unset, then validates the result.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("staging_size", 128)
	v.SetDefault("threading_threshold", 131072)
	v.SetDefault("num_threads", 4)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"staging_size", "threading_threshold", "num_threads"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("%w: bind env %s: %v", ErrBadConfig, key, err)
		}
	}

	cfg := &Config{
		StagingSize:        v.GetInt("staging_size"),
		ThreadingThreshold: v.GetInt("threading_threshold"),
		NumThreads:         v.GetInt("num_threads"),
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the engine defaults with no environment overrides,
// useful for tests and for embedding gocube as a library without requiring
// env setup.
func Default() *Config {
	return &Config{
		StagingSize:        128,
		ThreadingThreshold: 131072,
		NumThreads:         4,
	}
}

// PoolDisabled reports whether c calls for never constructing a worker
// pool, per SPEC_FULL.md's redesign of NUM_THREADS semantics: 0 and 1
// both mean "run everything on the calling goroutine."
func (c *Config) PoolDisabled() bool {
	return c.NumThreads <= 1
}

func validate(c *Config) error {
	if c.StagingSize < 1 {
		return fmt.Errorf("%w: staging_size must be >= 1, got %d", ErrBadConfig, c.StagingSize)
	}
	if c.ThreadingThreshold < 0 {
		return fmt.Errorf("%w: threading_threshold must be >= 0, got %d", ErrBadConfig, c.ThreadingThreshold)
	}
	if c.NumThreads < 0 {
		return fmt.Errorf("%w: num_threads must be >= 0, got %d", ErrBadConfig, c.NumThreads)
	}
	return nil
}
