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

// Package serializer provides encoding and decoding of service data.
//
// Supported formats:
//   - JSON: API request and response bodies, config files
//   - YAML: config files (gopkg.in/yaml.v3)
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, names)
//	serializer.RespondText(w, http.StatusOK, "Hello Divit!")
//
// For files:
//
//	cfg, err := serializer.FromFile[Config]("namesd.yaml")
//
// RespondJSON buffers the encoded payload before writing headers so an
// encoding failure never produces a partial response.
package serializer
