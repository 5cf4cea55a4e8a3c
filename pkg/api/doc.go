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

// Package api wires the name registry into the HTTP server and runs it.
//
// Serve builds a registry from the configured seed names (by default the
// single name "Divit"), mounts its routes on a server, installs the
// structured logger and blocks until the context is canceled or the process
// receives SIGINT or SIGTERM.
//
// # Configuration
//
// Settings are resolved in this order, later sources winning:
//
//  1. Built-in defaults (127.0.0.1:8080, no rate limit)
//  2. Environment: PORT, ADDRESS, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT,
//     RATE_LIMIT_BURST, LOG_LEVEL
//  3. Optional config file (YAML or JSON, by extension)
//  4. Command line flags (see pkg/cli)
//
// Example config file:
//
//	address: 0.0.0.0
//	port: 9090
//	rateLimit: 50
//	rateLimitBurst: 100
//	shutdownTimeout: 10s
//	logLevel: debug
//	names:
//	  - Divit
//	  - Alice
package api
