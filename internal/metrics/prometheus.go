// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	muxprom "gitlab.com/hfuss/mux-prometheus/pkg/middleware"
)

var regMux sync.Mutex
var registry *prometheus.Registry
var apiInstrumentation *muxprom.Instrumentation

// Registry returns the connector's Prometheus registry, creating it on first use
func Registry() *prometheus.Registry {
	regMux.Lock()
	defer regMux.Unlock()
	if registry == nil {
		initMetricsCollectors()
		registry = prometheus.NewRegistry()
		registerMetricsCollectors()
	}
	return registry
}

// GetAPIServerInstrumentation returns the REST API's Prometheus middleware, ensuring its metrics are never
// registered twice
func GetAPIServerInstrumentation() *muxprom.Instrumentation {
	r := Registry()
	regMux.Lock()
	defer regMux.Unlock()
	if apiInstrumentation == nil {
		apiInstrumentation = muxprom.NewCustomInstrumentation(
			true,
			"sc_connector",
			"api",
			prometheus.DefBuckets,
			map[string]string{},
			r,
		)
	}
	return apiInstrumentation
}

// Clear will reset the Prometheus metrics registry and instrumentations, useful for testing
func Clear() {
	regMux.Lock()
	defer regMux.Unlock()
	registry = nil
	apiInstrumentation = nil
}

func initMetricsCollectors() {
	initContractCallMetrics()
	initRPCMetrics()
}

func registerMetricsCollectors() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	registerContractCallMetrics()
	registerRPCMetrics()
}
