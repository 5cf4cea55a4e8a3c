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
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/namereg/pkg/logging"
	"github.com/mchmarny/namereg/pkg/registry"
	"github.com/mchmarny/namereg/pkg/server"
)

const (
	name           = "namesd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/namereg/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Name returns the service name.
func Name() string {
	return name
}

// VersionInfo returns the build version, commit and date.
func VersionInfo() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// NewServer builds the registry and the server hosting it without
// starting anything.
func NewServer(s *Settings) (*server.Server, *registry.Registry) {
	if s == nil {
		s = NewSettings()
	}

	reg := registry.New(s.Names...)

	srv := server.New(
		server.WithConfig(s.Server),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(reg.Routes()),
	)

	return srv, reg
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
func Serve(ctx context.Context, s *Settings) error {
	if s == nil {
		s = NewSettings()
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, s.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	srv, reg := NewServer(s)
	slog.Info("registry seeded", "names", reg.Len())

	if err := srv.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
