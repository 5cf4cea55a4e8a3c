// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package api

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/mchmarny/namereg/pkg/logging"
	"github.com/mchmarny/namereg/pkg/registry"
	"github.com/mchmarny/namereg/pkg/serializer"
	"github.com/mchmarny/namereg/pkg/server"
)

// Settings is everything Serve needs to run.
type Settings struct {
	Server   *server.Config
	LogLevel string
	Names    []string
}

// NewSettings returns defaults with environment overrides applied.
func NewSettings() *Settings {
	return &Settings{
		Server:   server.NewConfig(),
		LogLevel: os.Getenv(logging.EnvLogLevel),
		Names:    append([]string(nil), registry.DefaultSeed...),
	}
}

// LoadSettings returns NewSettings overlaid with the config file at path.
// An empty path skips the file.
func LoadSettings(path string) (*Settings, error) {
	s := NewSettings()
	if path == "" {
		return s, nil
	}

	fc, err := serializer.FromFile[FileConfig](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := fc.apply(s); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

// FileConfig is the on-disk configuration. Zero values leave the
// corresponding setting untouched.
type FileConfig struct {
	Address         string   `json:"address,omitempty" yaml:"address,omitempty"`
	Port            int      `json:"port,omitempty" yaml:"port,omitempty"`
	RateLimit       float64  `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"`
	RateLimitBurst  int      `json:"rateLimitBurst,omitempty" yaml:"rateLimitBurst,omitempty"`
	ShutdownTimeout string   `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`
	LogLevel        string   `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	Names           []string `json:"names,omitempty" yaml:"names,omitempty"`
}

func (fc *FileConfig) apply(s *Settings) error {
	if fc.Port < 0 || fc.Port > 65535 {
		return fmt.Errorf("port %d out of range", fc.Port)
	}
	if fc.RateLimit < 0 {
		return fmt.Errorf("rateLimit must not be negative")
	}
	if fc.RateLimitBurst < 0 {
		return fmt.Errorf("rateLimitBurst must not be negative")
	}

	if fc.Address != "" {
		s.Server.Address = fc.Address
	}
	if fc.Port != 0 {
		s.Server.Port = fc.Port
	}
	if fc.RateLimit != 0 {
		s.Server.RateLimit = rate.Limit(fc.RateLimit)
	}
	if fc.RateLimitBurst != 0 {
		s.Server.RateLimitBurst = fc.RateLimitBurst
	}
	if fc.ShutdownTimeout != "" {
		d, err := time.ParseDuration(fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("shutdownTimeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("shutdownTimeout must be positive")
		}
		s.Server.ShutdownTimeout = d
	}
	if fc.LogLevel != "" {
		s.LogLevel = fc.LogLevel
	}
	if fc.Names != nil {
		s.Names = fc.Names
	}
	return nil
}

// Effective returns the resolved settings in config file form.
func (s *Settings) Effective() FileConfig {
	return FileConfig{
		Address:         s.Server.Address,
		Port:            s.Server.Port,
		RateLimit:       effectiveRateLimit(s.Server.RateLimit),
		RateLimitBurst:  s.Server.RateLimitBurst,
		ShutdownTimeout: s.Server.ShutdownTimeout.String(),
		LogLevel:        s.LogLevel,
		Names:           s.Names,
	}
}

// effectiveRateLimit reports an unlimited rate as zero, the unset file value.
func effectiveRateLimit(l rate.Limit) float64 {
	if l == rate.Inf {
		return 0
	}
	return float64(l)
}
