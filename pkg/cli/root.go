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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/mchmarny/namereg/pkg/api"
	"github.com/mchmarny/namereg/pkg/serializer"
)

// ServeFunc runs the server with resolved settings.
type ServeFunc func(ctx context.Context, s *api.Settings) error

// Execute runs the root command with os.Args. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(api.Serve).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(serve ServeFunc) *cli.Command {
	return &cli.Command{
		Name:                  api.Name(),
		Usage:                 "In-memory name registry HTTP server",
		Version:               api.VersionInfo(),
		EnableShellCompletion: true,
		Description: `Serve a list of unique names over HTTP.

Endpoints:
  GET  /hello/{name}  - greet a registered name
  GET  /names         - list registered names
  POST /names         - register a name: {"name": "Alice"}

Examples:
  namesd --port 9090
  namesd -c namesd.yaml --log-level debug
  namesd -n Divit -n Alice`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to bind the HTTP server to",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Usage: "Requests per second allowed on API routes (default: unlimited, env: RATE_LIMIT)",
			},
			&cli.IntFlag{
				Name:  "rate-limit-burst",
				Usage: "Token bucket size once a rate limit is set (env: RATE_LIMIT_BURST)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML or JSON config file",
			},
			&cli.StringSliceFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Seed name, may be repeated (replaces the default seed)",
			},
		},
		Commands: []*cli.Command{
			versionCmd(),
			configCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := settingsFromCmd(cmd)
			if err != nil {
				return err
			}
			return serve(ctx, s)
		},
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "%s %s\n", api.Name(), api.VersionInfo())
			return err
		},
	}
}

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration without starting the server",
		Description: `Resolve defaults, environment, config file and flags, then print the result.

Examples:
  namesd -c namesd.yaml config
  namesd --port 9090 config --format json -o effective.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatYAML),
				Usage:   fmt.Sprintf("Output format (%v)", serializer.SupportedFormats()),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			s, err := settingsFromCmd(cmd)
			if err != nil {
				return err
			}

			var w *serializer.Writer
			if out := cmd.String("output"); out != "" {
				if w, err = serializer.NewFileWriterOrStdout(outFormat, out); err != nil {
					return err
				}
			} else {
				w = serializer.NewWriter(outFormat, cmd.Root().Writer)
			}
			defer func() {
				if err := w.Close(); err != nil {
					slog.Warn("failed to close output", "error", err)
				}
			}()

			return w.Serialize(s.Effective())
		},
	}
}

// settingsFromCmd loads the optional config file and overlays flags the user set explicitly.
func settingsFromCmd(cmd *cli.Command) (*api.Settings, error) {
	s, err := api.LoadSettings(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("address") {
		s.Server.Address = cmd.String("address")
	}
	if cmd.IsSet("port") {
		port := cmd.Int("port")
		if port < 0 || port > 65535 {
			return nil, fmt.Errorf("invalid port: %d", port)
		}
		s.Server.Port = int(port)
	}
	if cmd.IsSet("rate-limit") {
		limit := cmd.Float("rate-limit")
		if limit <= 0 {
			return nil, fmt.Errorf("invalid rate limit: %g", limit)
		}
		s.Server.RateLimit = rate.Limit(limit)
	}
	if cmd.IsSet("rate-limit-burst") {
		burst := cmd.Int("rate-limit-burst")
		if burst <= 0 {
			return nil, fmt.Errorf("invalid rate limit burst: %d", burst)
		}
		s.Server.RateLimitBurst = int(burst)
	}
	if cmd.IsSet("log-level") {
		s.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("name") {
		s.Names = cmd.StringSlice("name")
	}

	return s, nil
}
