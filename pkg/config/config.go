// Copyright 2024 The dpsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads runtime configuration for dpsort from TOML.
// Everything is optional; zero values select the built-in defaults.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/dualpivot/dpsort/pkg/common/dperr"
	"github.com/dualpivot/dpsort/pkg/logutil"
)

// Config is the top level configuration.
type Config struct {
	Log  logutil.LogConfig `toml:"log"`
	Pool PoolConfig        `toml:"pool"`
}

// PoolConfig drives the shared worker pool behind parallel sorting.
type PoolConfig struct {
	// Size is the number of workers. 0 means the number of CPUs.
	Size int `toml:"size"`
	// PreAlloc preallocates worker queues at pool creation.
	PreAlloc bool `toml:"pre-alloc"`
}

// Load reads and validates a Config from the TOML file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, dperr.NewBadConfig("parse %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Pool.Size < 0 {
		return dperr.NewBadConfig("pool size %d is negative", c.Pool.Size)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return dperr.NewBadConfig("unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return dperr.NewBadConfig("unknown log format %q", c.Log.Format)
	}
	return nil
}
