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
	"github.com/stellar/go/txnbuild"
)

// PreparedTransaction is a draft with its resource footprint and fee attached,
// ready for the source account to sign
type PreparedTransaction struct {
	function    string
	tx          *txnbuild.Transaction
	envelope    string
	resourceFee int64
}

// Envelope is the base64 XDR TransactionEnvelope
func (p *PreparedTransaction) Envelope() string {
	return p.envelope
}

func (p *PreparedTransaction) Sequence() int64 {
	return p.tx.SequenceNumber()
}

func (p *PreparedTransaction) Operations() []txnbuild.Operation {
	return p.tx.Operations()
}

func (p *PreparedTransaction) ResourceFee() int64 {
	return p.resourceFee
}

// Fee is the maximum total fee the transaction pays, inclusion plus resources
func (p *PreparedTransaction) Fee() int64 {
	return p.tx.MaxFee()
}

// Hash is the hex transaction hash on the given network. Signing does not change it.
func (p *PreparedTransaction) Hash(networkPassphrase string) (string, error) {
	return p.tx.HashHex(networkPassphrase)
}

// prepare moves the authorized draft onto a freshly fetched account handle, so
// the final transaction carries the sequence number current at assembly time,
// then has the node attach the resource footprint and fee
func prepare(ctx context.Context, node Node, authorized *DraftTransaction) (*PreparedTransaction, error) {
	fnName := authorized.Function().Name
	fresh, err := node.FetchAccount(ctx, authorized.Source().ID())
	if err != nil {
		return nil, err
	}
	final, err := authorized.OnAccount(ctx, fresh)
	if err != nil {
		return nil, err
	}
	prepared, err := node.Prepare(ctx, final)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, scmsgs.MsgPreparationFailed, fnName, err)
	}
	log.L(ctx).Debugf("Prepared %s with sequence=%d resourceFee=%d", fnName, prepared.Sequence(), prepared.ResourceFee())
	return prepared, nil
}
