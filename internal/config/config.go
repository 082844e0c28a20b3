// Copyright © 2024 The ZANO Authors
//
// This file is part of ZANO.
//
// ZANO is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// ZANO is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Lesser General Public License for more
// details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with ZANO. If not, see <http://www.gnu.org/licenses/>.

// Package config loads the bounds the caller surface (cmd/l2sctl and any
// embedding service) enforces before ever calling into package l2s. None of
// these bounds are part of the core algebra; they exist to stop an
// adversarial ring size or transcript depth from driving allocation
// unboundedly, per the design notes' open question about raising the
// defensive n < 32 ceiling.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the resource bounds a host process enforces around calls
// into package l2s.
type Config struct {
	// MaxN is the largest transcript depth accepted from an untrusted ring.
	// The core itself only refuses n >= 32; this is a tighter, configurable
	// ceiling suitable for a given deployment's resource budget.
	MaxN int `mapstructure:"max_n"`

	// MaxRingAllocation bounds the number of points (N = 2^n) a single
	// operation is allowed to allocate for its X-array.
	MaxRingAllocation int `mapstructure:"max_ring_allocation"`

	// LogLevel is the minimum zap level for the logfmt logger cmd/l2sctl
	// installs at startup.
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the bounds used when no configuration file or
// environment override is present.
func Default() *Config {
	return &Config{
		MaxN:              24,
		MaxRingAllocation: 1 << 24,
		LogLevel:          "info",
	}
}

// Load reads configuration from (in ascending priority) built-in defaults,
// a config file named "l2sctl" on the given search paths, and environment
// variables prefixed L2S_.
func Load(searchPaths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("l2sctl")
	v.SetEnvPrefix("l2s")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("max_n", def.MaxN)
	v.SetDefault("max_ring_allocation", def.MaxRingAllocation)
	v.SetDefault("log_level", def.LogLevel)

	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "config: reading config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshaling")
	}
	return cfg, nil
}

// CheckRingDepth rejects a transcript depth that exceeds this
// configuration's bounds before any allocation happens.
func (c *Config) CheckRingDepth(n int) error {
	if n > c.MaxN {
		return errors.Errorf("config: transcript depth %d exceeds configured maximum %d", n, c.MaxN)
	}
	if alloc := 1 << uint(n); alloc > c.MaxRingAllocation {
		return errors.Errorf("config: X-array allocation %d exceeds configured maximum %d", alloc, c.MaxRingAllocation)
	}
	return nil
}
