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
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var rpcRequestDurationSeconds *prometheus.HistogramVec

var MetricsRPCRequestDurationSeconds = "sc_rpc_request_duration_seconds"

func initRPCMetrics() {
	rpcRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: MetricsRPCRequestDurationSeconds,
		Help: "Time taken by JSON-RPC requests to the Soroban RPC node",
	}, []string{"method", "status"})
}

func registerRPCMetrics() {
	registry.MustRegister(rpcRequestDurationSeconds)
}

func recordRPCRequestDuration(method, status string, d time.Duration) {
	rpcRequestDurationSeconds.With(prometheus.Labels{
		"method": method,
		"status": status,
	}).Observe(d.Seconds())
}
