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
	"context"
	"time"

	"github.com/conectabrasil/soroban-connector/internal/scconfig"
	"github.com/hyperledger/firefly-common/pkg/config"
)

type Metrics interface {
	IsMetricsEnabled() bool

	ContractCallMetrics
	RPCMetrics
}

type ContractCallMetrics interface {
	CountContractCallRequest(ctx context.Context, function, kind string)
	CountContractCallResponse(ctx context.Context, function, kind, status string)
	RecordContractCallDuration(ctx context.Context, function, kind, status string, d time.Duration)
}

type RPCMetrics interface {
	RecordRPCRequestDuration(ctx context.Context, method, status string, d time.Duration)
}

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
}

func NewMetricsManager(ctx context.Context) Metrics {
	mm := &metricsManager{
		ctx:            ctx,
		metricsEnabled: config.GetBool(scconfig.MetricsEnabled),
	}
	if mm.metricsEnabled {
		_ = Registry()
	}
	return mm
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}

func (mm *metricsManager) CountContractCallRequest(_ context.Context, function, kind string) {
	if mm.metricsEnabled {
		countContractCallRequest(function, kind)
	}
}

func (mm *metricsManager) CountContractCallResponse(_ context.Context, function, kind, status string) {
	if mm.metricsEnabled {
		countContractCallResponse(function, kind, status)
	}
}

func (mm *metricsManager) RecordContractCallDuration(_ context.Context, function, kind, status string, d time.Duration) {
	if mm.metricsEnabled {
		recordContractCallDuration(function, kind, status, d)
	}
}

func (mm *metricsManager) RecordRPCRequestDuration(_ context.Context, method, status string, d time.Duration) {
	if mm.metricsEnabled {
		recordRPCRequestDuration(method, status, d)
	}
}
