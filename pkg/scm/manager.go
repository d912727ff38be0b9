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

package scm

import (
	"context"

	"github.com/conectabrasil/soroban-connector/internal/metrics"
	"github.com/conectabrasil/soroban-connector/internal/scconfig"
	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/conectabrasil/soroban-connector/internal/sorobanrpc"
	"github.com/conectabrasil/soroban-connector/pkg/apitypes"
	"github.com/conectabrasil/soroban-connector/pkg/contractcall"
	"github.com/conectabrasil/soroban-connector/pkg/scval"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

type Manager interface {
	Start() error
	Close()
}

type manager struct {
	ctx       context.Context
	cancelCtx func()
	contract  string
	invoker   contractcall.Invoker
	rpc       sorobanrpc.Client
	metrics   metrics.Metrics

	apiServer         httpserver.HTTPServer
	apiServerDone     chan error
	metricsEnabled    bool
	metricsServer     httpserver.HTTPServer
	metricsServerDone chan error
	started           bool
}

func NewManager(ctx context.Context) (Manager, error) {
	contract := config.GetString(scconfig.ContractAddress)
	if contract == "" {
		return nil, i18n.NewError(ctx, scmsgs.MsgConfigParamNotSet, scconfig.ContractAddress)
	}
	if _, err := scval.ParseAddress(ctx, contract); err != nil {
		return nil, err
	}
	mm := metrics.NewMetricsManager(ctx)
	rpc, err := sorobanrpc.NewClient(ctx, scconfig.SorobanConfig, mm)
	if err != nil {
		return nil, err
	}
	invoker := contractcall.NewInvoker(contract, config.GetString(scconfig.ContractNetworkPassphrase), rpc)
	return newManager(ctx, contract, rpc, invoker, mm)
}

func newManager(ctx context.Context, contract string, rpc sorobanrpc.Client, invoker contractcall.Invoker, mm metrics.Metrics) (*manager, error) {
	var err error
	m := &manager{
		contract:          contract,
		invoker:           invoker,
		rpc:               rpc,
		metrics:           mm,
		apiServerDone:     make(chan error),
		metricsEnabled:    mm.IsMetricsEnabled(),
		metricsServerDone: make(chan error),
	}
	m.ctx, m.cancelCtx = context.WithCancel(log.WithLogField(ctx, "contract", contract))

	m.apiServer, err = httpserver.NewHTTPServer(ctx, "api", m.router(), m.apiServerDone, scconfig.APIConfig, scconfig.CorsConfig)
	if err != nil {
		return nil, err
	}
	if m.metricsEnabled {
		m.metricsServer, err = httpserver.NewHTTPServer(ctx, "metrics", m.createMetricsMuxRouter(), m.metricsServerDone, scconfig.MetricsConfig, scconfig.CorsConfig)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *manager) Start() error {
	log.L(m.ctx).Infof("Starting Soroban contract connector")
	go m.runAPIServer()
	if m.metricsEnabled {
		go m.runMetricsServer()
	}
	m.started = true
	return nil
}

func (m *manager) Close() {
	m.cancelCtx()
	if m.started {
		m.started = false
		<-m.apiServerDone
		if m.metricsEnabled {
			<-m.metricsServerDone
		}
	}
}

func (m *manager) getLiveStatus() *apitypes.HealthResponse {
	return &apitypes.HealthResponse{Status: apitypes.HealthStatusUp}
}

// getReadyStatus reports ready once the Soroban RPC node answers
func (m *manager) getReadyStatus(ctx context.Context) (*apitypes.ReadyResponse, error) {
	ledger, err := m.rpc.GetLatestLedger(ctx)
	if err != nil {
		return nil, err
	}
	return &apitypes.ReadyResponse{
		Status:          apitypes.HealthStatusUp,
		LatestLedger:    ledger.Sequence.Uint64(),
		ProtocolVersion: ledger.ProtocolVersion.Uint64(),
	}, nil
}
