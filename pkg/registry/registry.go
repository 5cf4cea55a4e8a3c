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

package registry

import (
	"slices"
	"sync"

	apperrors "github.com/mchmarny/namereg/pkg/errors"
)

// DefaultSeed is the content of a freshly started registry.
var DefaultSeed = []string{"Divit"}

// Registry is an insertion-ordered set of names guarded by a single mutex.
type Registry struct {
	mu    sync.Mutex
	names []string
}

// New returns a registry holding seed in order. Repeated seed names are
// dropped, keeping the first occurrence.
func New(seed ...string) *Registry {
	r := &Registry{
		names: make([]string, 0, len(seed)),
	}
	for _, name := range seed {
		if !slices.Contains(r.names, name) {
			r.names = append(r.names, name)
		}
	}
	registryNames.Set(float64(len(r.names)))
	return r
}

// Contains reports whether name exactly matches a registered name.
func (r *Registry) Contains(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := slices.Contains(r.names, name)
	if found {
		registryLookups.WithLabelValues("hit").Inc()
	} else {
		registryLookups.WithLabelValues("miss").Inc()
	}
	return found
}

// List returns a copy of all names in insertion order. The result is never nil.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.names)
}

// Add appends name unless it is already registered, in which case it returns
// an ALREADY_EXISTS error and leaves the registry unchanged.
func (r *Registry) Add(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.names, name) {
		registryAdds.WithLabelValues("conflict").Inc()
		return apperrors.NewWithContext(apperrors.ErrCodeAlreadyExists,
			"name already registered", map[string]any{"name": name})
	}

	r.names = append(r.names, name)
	registryAdds.WithLabelValues("created").Inc()
	registryNames.Set(float64(len(r.names)))
	return nil
}
