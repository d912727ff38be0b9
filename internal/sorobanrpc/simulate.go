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

	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/conectabrasil/soroban-connector/pkg/contractcall"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/stellar/go/xdr"
)

type simulateTransactionRequest struct {
	Transaction string `json:"transaction"`
}

type simulateTransactionResult struct {
	Error           string                        `json:"error,omitempty"`
	TransactionData string                        `json:"transactionData,omitempty"`
	MinResourceFee  fftypes.FFint64               `json:"minResourceFee,omitempty"`
	Results         []*simulateHostFunctionResult `json:"results,omitempty"`
	LatestLedger    fftypes.FFuint64              `json:"latestLedger"`
}

type simulateHostFunctionResult struct {
	Auth []string `json:"auth"`
	XDR  string   `json:"xdr"`
}

func (c *client) simulateTransaction(ctx context.Context, draft *contractcall.DraftTransaction) (*simulateTransactionResult, error) {
	envelope, err := draft.Envelope()
	if err != nil {
		return nil, i18n.NewError(ctx, scmsgs.MsgBuildFailed, draft.Function().Name, err)
	}
	var res simulateTransactionResult
	if err := c.call(ctx, "simulateTransaction", &simulateTransactionRequest{Transaction: envelope}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) Simulate(ctx context.Context, draft *contractcall.DraftTransaction) (*contractcall.SimulationOutcome, error) {
	res, err := c.simulateTransaction(ctx, draft)
	if err != nil {
		return nil, err
	}
	outcome := &contractcall.SimulationOutcome{
		Error:           res.Error,
		TransactionData: res.TransactionData,
		MinResourceFee:  res.MinResourceFee.Int64(),
		LatestLedger:    uint32(res.LatestLedger.Uint64()),
		Results:         make([]*contractcall.SimulationResult, 0, len(res.Results)),
	}
	for _, r := range res.Results {
		if r != nil {
			outcome.Results = append(outcome.Results, &contractcall.SimulationResult{
				ReturnValue: r.XDR,
				Auth:        r.Auth,
			})
		}
	}
	return outcome, nil
}

// Prepare simulates the draft a final time, and assembles it with the resource
// footprint and fee the node computed for it
func (c *client) Prepare(ctx context.Context, draft *contractcall.DraftTransaction) (*contractcall.PreparedTransaction, error) {
	res, err := c.simulateTransaction(ctx, draft)
	if err != nil {
		return nil, err
	}
	if res.Error != "" {
		return nil, i18n.NewError(ctx, scmsgs.MsgSimulationFailed, draft.Function().Name, "prepare", res.Error)
	}
	if res.TransactionData == "" {
		return nil, i18n.NewError(ctx, scmsgs.MsgNoResourceData)
	}
	var data xdr.SorobanTransactionData
	if err := xdr.SafeUnmarshalBase64(res.TransactionData, &data); err != nil {
		return nil, i18n.NewError(ctx, scmsgs.MsgInvalidResourceData, err)
	}
	return draft.Assemble(ctx, data)
}
