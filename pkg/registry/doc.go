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

// Package registry holds the in-memory list of known names and the HTTP
// handlers that expose it.
//
// A Registry keeps names in insertion order and never stores the same name
// twice (case-sensitive exact match). Every operation holds a single mutex
// for its whole duration, so reads observe a consistent snapshot and no two
// mutations interleave. Nothing is persisted.
//
// # HTTP API
//
//	GET  /hello/{name}  200 "Hello {name}!"       | 400 "Name not in the list"
//	GET  /names         200 ["Divit", ...]
//	POST /names         201 {"message":"Successfully created."}
//	                    409 {"message":"Already contains name"}
//
// # Usage
//
//	reg := registry.New(registry.DefaultSeed...)
//	routes := reg.Routes()
package registry
