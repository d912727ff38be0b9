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

package contractcall

import (
	"context"

	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/stellar/go/xdr"
)

const (
	phaseSimulate = "simulate"
	phaseQuery    = "query"
)

func simulate(ctx context.Context, node Simulator, draft *DraftTransaction, phase string) (*SimulationOutcome, error) {
	fnName := draft.Function().Name
	outcome, err := node.Simulate(ctx, draft)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, scmsgs.MsgSimulationFailed, fnName, phase, err)
	}
	if outcome == nil {
		outcome = &SimulationOutcome{}
	}
	if outcome.Error != "" {
		return nil, i18n.NewError(ctx, scmsgs.MsgSimulationFailed, fnName, phase, outcome.Error)
	}
	log.L(ctx).Debugf("Simulated %s (%s) at ledger %d: results=%d minResourceFee=%d", fnName, phase, outcome.LatestLedger, len(outcome.Results), outcome.MinResourceFee)
	return outcome, nil
}

// ExtractAuthorizations decodes the authorization entries of the first simulation result.
// No entries is an error only for functions that require authorization.
func ExtractAuthorizations(ctx context.Context, fn *Function, outcome *SimulationOutcome) ([]xdr.SorobanAuthorizationEntry, error) {
	var encoded []string
	if result := outcome.firstResult(); result != nil {
		encoded = result.Auth
	}
	if len(encoded) == 0 {
		if fn.RequiresAuth {
			return nil, i18n.NewError(ctx, scmsgs.MsgNoAuthorizationFound, fn.Name)
		}
		return nil, nil
	}
	entries := make([]xdr.SorobanAuthorizationEntry, len(encoded))
	for i, b64 := range encoded {
		if err := xdr.SafeUnmarshalBase64(b64, &entries[i]); err != nil {
			return nil, i18n.NewError(ctx, scmsgs.MsgAuthorizationDecodeFailed, i, fn.Name, err)
		}
	}
	return entries, nil
}

// resolveAuthorizations simulates the unauthorized draft and rebuilds it with the
// authorization entries the node says the call needs
func resolveAuthorizations(ctx context.Context, node Simulator, draft *DraftTransaction) (*DraftTransaction, error) {
	outcome, err := simulate(ctx, node, draft, phaseSimulate)
	if err != nil {
		return nil, err
	}
	auth, err := ExtractAuthorizations(ctx, draft.Function(), outcome)
	if err != nil {
		return nil, err
	}
	log.L(ctx).Debugf("Resolved %d authorization entries for %s", len(auth), draft.Function().Name)
	return draft.WithAuth(ctx, auth)
}
