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

var contractCallRequestsTotal *prometheus.CounterVec
var contractCallResponsesTotal *prometheus.CounterVec
var contractCallDurationSeconds *prometheus.HistogramVec

var MetricsContractCallRequestCount = "sc_contract_call_requests_total"
var MetricsContractCallResponseCount = "sc_contract_call_responses_total"
var MetricsContractCallDurationSeconds = "sc_contract_call_duration_seconds"

const (
	// KindWrite calls produce an unsigned transaction
	KindWrite = "write"
	// KindRead calls are simulated only
	KindRead = "read"

	StatusSuccess = "success"
	StatusError   = "error"
)

func initContractCallMetrics() {
	contractCallRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsContractCallRequestCount,
		Help: "Number of contract calls requested",
	}, []string{"function", "kind"})

	contractCallResponsesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsContractCallResponseCount,
		Help: "Number of contract calls completed",
	}, []string{"function", "kind", "status"})

	contractCallDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: MetricsContractCallDurationSeconds,
		Help: "Time taken to build or query a contract call, including all calls to the RPC node",
	}, []string{"function", "kind", "status"})
}

func registerContractCallMetrics() {
	registry.MustRegister(contractCallRequestsTotal)
	registry.MustRegister(contractCallResponsesTotal)
	registry.MustRegister(contractCallDurationSeconds)
}

func countContractCallRequest(function, kind string) {
	contractCallRequestsTotal.With(prometheus.Labels{
		"function": function,
		"kind":     kind,
	}).Inc()
}

func countContractCallResponse(function, kind, status string) {
	contractCallResponsesTotal.With(prometheus.Labels{
		"function": function,
		"kind":     kind,
		"status":   status,
	}).Inc()
}

func recordContractCallDuration(function, kind, status string, d time.Duration) {
	contractCallDurationSeconds.With(prometheus.Labels{
		"function": function,
		"kind":     kind,
		"status":   status,
	}).Observe(d.Seconds())
}
