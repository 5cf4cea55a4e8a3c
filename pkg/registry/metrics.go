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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registryNames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "namereg_registry_names",
			Help: "Current number of names in the registry",
		},
	)

	registryAdds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "namereg_registry_add_total",
			Help: "Total number of add attempts by result (created, conflict)",
		},
		[]string{"result"},
	)

	registryLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "namereg_registry_lookups_total",
			Help: "Total number of name lookups by result (hit, miss)",
		},
		[]string{"result"},
	)
)
