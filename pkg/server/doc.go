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

// Package server provides the HTTP server shared by the name registry API.
//
// # Architecture
//
// The server hosts a table of API handlers keyed by http.ServeMux pattern
// and wraps each of them with a common middleware chain:
//
//   - Prometheus RED metrics labelled by route pattern
//   - API version negotiation (X-API-Version)
//   - Request ID tracking (X-Request-Id)
//   - Panic recovery
//   - Opt-in rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - One structured log record per request
//
// System endpoints bypass the chain:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 until the listener is bound and while draining
//	GET /metrics  Prometheus exposition
//	GET /         service name, version and routes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("namesd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /names": reg.HandleListNames,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig starts from pkg/defaults and honours PORT, ADDRESS and
// SHUTDOWN_TIMEOUT_SECONDS. The default bind address is 127.0.0.1:8080.
//
// # Error Handling
//
// Infrastructure errors return a consistent JSON structure:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": true
//	}
//
// Status codes are derived from pkg/errors codes by HTTPStatusFromCode.
package server
