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

package defaults

import (
	"time"

	"golang.org/x/time/rate"
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the entire request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server listen defaults.
const (
	// ServerAddress is the interface the server binds to.
	ServerAddress = "127.0.0.1"

	// ServerPort is the TCP port the server listens on.
	ServerPort = 8080
)

// Handler limits for HTTP request processing.
const (
	// MaxRequestBodyBytes caps the size of request bodies decoded by handlers.
	MaxRequestBodyBytes = 1 << 20
)

// Rate limits for API routes. Limiting is off unless a rate is configured.
const (
	// RateLimit is the sustained number of requests per second.
	RateLimit = rate.Inf

	// RateLimitBurst is the token bucket size used once a rate is set.
	RateLimitBurst = 200
)
