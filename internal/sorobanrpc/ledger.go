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
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/stellar/go/xdr"
)

type getLedgerEntriesRequest struct {
	Keys []string `json:"keys"`
}

type getLedgerEntriesResult struct {
	Entries      []*ledgerEntryResult `json:"entries"`
	LatestLedger fftypes.FFuint64     `json:"latestLedger"`
}

type ledgerEntryResult struct {
	Key                string           `json:"key"`
	XDR                string           `json:"xdr"`
	LastModifiedLedger fftypes.FFuint64 `json:"lastModifiedLedgerSeq"`
}

type LatestLedger struct {
	ID              string           `json:"id"`
	ProtocolVersion fftypes.FFuint64 `json:"protocolVersion"`
	Sequence        fftypes.FFuint64 `json:"sequence"`
}

// FetchAccount reads the account's ledger entry for its current sequence number
func (c *client) FetchAccount(ctx context.Context, accountID string) (contractcall.AccountHandle, error) {
	var aid xdr.AccountId
	if err := aid.SetAddress(accountID); err != nil {
		return contractcall.AccountHandle{}, i18n.WrapError(ctx, err, scmsgs.MsgInvalidAddress, accountID)
	}
	key, err := xdr.MarshalBase64(xdr.LedgerKey{
		Type:    xdr.LedgerEntryTypeAccount,
		Account: &xdr.LedgerKeyAccount{AccountId: aid},
	})
	if err != nil {
		return contractcall.AccountHandle{}, i18n.WrapError(ctx, err, scmsgs.MsgInvalidAddress, accountID)
	}

	var res getLedgerEntriesResult
	if err := c.call(ctx, "getLedgerEntries", &getLedgerEntriesRequest{Keys: []string{key}}, &res); err != nil {
		return contractcall.AccountHandle{}, err
	}
	if len(res.Entries) == 0 || res.Entries[0] == nil {
		return contractcall.AccountHandle{}, i18n.NewError(ctx, scmsgs.MsgAccountNotFound, accountID)
	}

	var data xdr.LedgerEntryData
	if err := xdr.SafeUnmarshalBase64(res.Entries[0].XDR, &data); err != nil || data.Account == nil {
		log.L(ctx).Errorf("Invalid account entry for %s: %v", accountID, err)
		return contractcall.AccountHandle{}, i18n.NewError(ctx, scmsgs.MsgAccountNotFound, accountID)
	}
	seq := int64(data.Account.SeqNum)
	log.L(ctx).Debugf("Account %s sequence=%d ledger=%d", accountID, seq, res.LatestLedger.Uint64())
	return contractcall.NewAccountHandle(accountID, seq), nil
}

func (c *client) GetLatestLedger(ctx context.Context) (*LatestLedger, error) {
	var res LatestLedger
	if err := c.call(ctx, "getLatestLedger", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
