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

package sorobanrpc

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/conectabrasil/soroban-connector/internal/metrics"
	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/conectabrasil/soroban-connector/pkg/contractcall"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// Client is a JSON-RPC 2.0 client for a Soroban RPC node
type Client interface {
	contractcall.Node
	GetLatestLedger(ctx context.Context) (*LatestLedger, error)
}

type client struct {
	client  *resty.Client
	metrics metrics.RPCMetrics
	nextID  atomic.Int64
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int64       `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      int64            `json:"id"`
	Result  *fftypes.JSONAny `json:"result,omitempty"`
	Error   *rpcError        `json:"error,omitempty"`
}

type rpcError struct {
	Code    int64            `json:"code"`
	Message string           `json:"message"`
	Data    *fftypes.JSONAny `json:"data,omitempty"`
}

func InitConfig(conf config.Section) {
	ffresty.InitConfig(conf)
}

func NewClient(ctx context.Context, conf config.Section, mm metrics.RPCMetrics) (Client, error) {
	rc, err := ffresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &client{
		client:  rc,
		metrics: mm,
	}, nil
}

func (c *client) call(ctx context.Context, method string, params, result interface{}) (err error) {
	start := time.Now()
	defer func() {
		status := metrics.StatusSuccess
		if err != nil {
			status = metrics.StatusError
		}
		c.metrics.RecordRPCRequestDuration(ctx, method, status, time.Since(start))
	}()

	var rpcRes rpcResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetBody(&rpcRequest{
			JSONRPC: "2.0",
			ID:      c.nextID.Add(1),
			Method:  method,
			Params:  params,
		}).
		SetResult(&rpcRes).
		SetError(&rpcRes).
		Post("")
	if err != nil {
		return i18n.WrapError(ctx, err, scmsgs.MsgRPCRequestFailed, method)
	}
	if !strings.Contains(res.Header().Get("Content-Type"), "application/json") {
		return i18n.NewError(ctx, scmsgs.MsgRPCInvalidContentType, method, res.Header().Get("Content-Type"))
	}
	if rpcRes.Error != nil {
		return i18n.NewError(ctx, scmsgs.MsgRPCError, method, strconv.FormatInt(rpcRes.Error.Code, 10), rpcRes.Error.Message)
	}
	if res.IsError() {
		return i18n.NewError(ctx, scmsgs.MsgRPCError, method, strconv.Itoa(res.StatusCode()), res.String())
	}
	if rpcRes.Result == nil {
		return i18n.NewError(ctx, scmsgs.MsgRPCMissingResult, method)
	}
	if err := json.Unmarshal([]byte(*rpcRes.Result), result); err != nil {
		return i18n.WrapError(ctx, err, scmsgs.MsgRPCRequestFailed, method)
	}
	log.L(ctx).Tracef("%s -> %s", method, *rpcRes.Result)
	return nil
}
