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

// Package cli implements the command-line interface for the namesd name registry server.
//
// # Usage
//
//	namesd [--address ADDR] [--port PORT] [--rate-limit RPS] [--config FILE] [--name NAME]...
//	namesd version
//	namesd config [--format yaml|json] [--output FILE]
//
// # Flags
//
//	--address           Bind address (default: 127.0.0.1, env: ADDRESS)
//	--port              Listen port (default: 8080, env: PORT)
//	--rate-limit        Requests per second on API routes (default: unlimited, env: RATE_LIMIT)
//	--rate-limit-burst  Token bucket size once a rate is set (default: 200, env: RATE_LIMIT_BURST)
//	--log-level         Logging verbosity: debug, info, warn, error (env: LOG_LEVEL)
//	--config, -c        YAML or JSON config file
//	--name, -n          Seed name, repeatable; replaces the default seed list
//
// Flags take precedence over the config file, which takes precedence over
// environment variables and built-in defaults.
//
// SIGINT and SIGTERM cancel the command context and drain in-flight requests.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/namereg/pkg/api.version=1.0.0'"
package cli
