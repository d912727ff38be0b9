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
	"github.com/conectabrasil/soroban-connector/pkg/scval"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/stellar/go/txnbuild"
	"github.com/stellar/go/xdr"
)

const (
	// BaseFee is the inclusion fee in stroops, before any resource fee from preparation
	BaseFee = txnbuild.MinBaseFee
	// TimeoutSeconds bounds how long after building the transaction remains valid
	TimeoutSeconds = 120
)

// Invocation is a call to one function of one contract
type Invocation struct {
	Contract string
	Function *Function
	Args     []xdr.ScVal
	Auth     []xdr.SorobanAuthorizationEntry
}

// DraftTransaction is a single-operation transaction invoking a contract function.
// Drafts are immutable. Attaching authorizations or moving to a fresh account
// handle builds a new draft from the same arguments.
type DraftTransaction struct {
	invocation Invocation
	source     AccountHandle
	tx         *txnbuild.Transaction
}

func checkArity(ctx context.Context, fn *Function, args []xdr.ScVal) error {
	if len(args) != fn.Params {
		return i18n.NewError(ctx, scmsgs.MsgArityMismatch, fn.Name, fn.Params, len(args))
	}
	return nil
}

// Build assembles the invocation into a draft on the supplied source account
func Build(ctx context.Context, inv *Invocation, source AccountHandle) (*DraftTransaction, error) {
	if err := checkArity(ctx, inv.Function, inv.Args); err != nil {
		return nil, err
	}
	contract, err := scval.ParseAddress(ctx, inv.Contract)
	if err != nil {
		return nil, err
	}
	d := &DraftTransaction{
		invocation: Invocation{
			Contract: inv.Contract,
			Function: inv.Function,
			Args:     append([]xdr.ScVal{}, inv.Args...),
			Auth:     append([]xdr.SorobanAuthorizationEntry{}, inv.Auth...),
		},
		source: source,
	}
	d.tx, err = newTransaction(source, d.operation(contract, xdr.TransactionExt{}), BaseFee)
	if err != nil {
		return nil, i18n.NewError(ctx, scmsgs.MsgBuildFailed, inv.Function.Name, err)
	}
	return d, nil
}

// newTransaction builds a single operation transaction, so fee is also the total fee
func newTransaction(source AccountHandle, op *txnbuild.InvokeHostFunction, fee int64) (*txnbuild.Transaction, error) {
	return txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        source.txnAccount(),
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{op},
		BaseFee:              fee,
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(TimeoutSeconds),
		},
	})
}

func (d *DraftTransaction) operation(contract xdr.ScAddress, ext xdr.TransactionExt) *txnbuild.InvokeHostFunction {
	return &txnbuild.InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
			InvokeContract: &xdr.InvokeContractArgs{
				ContractAddress: contract,
				FunctionName:    xdr.ScSymbol(d.invocation.Function.Name),
				Args:            append([]xdr.ScVal{}, d.invocation.Args...),
			},
		},
		Auth: append([]xdr.SorobanAuthorizationEntry{}, d.invocation.Auth...),
		Ext:  ext,
	}
}

// WithAuth rebuilds the draft with the supplied authorization entries, on the same account handle
func (d *DraftTransaction) WithAuth(ctx context.Context, auth []xdr.SorobanAuthorizationEntry) (*DraftTransaction, error) {
	inv := d.invocation
	inv.Auth = auth
	return Build(ctx, &inv, d.source)
}

// OnAccount rebuilds the draft, keeping arguments and authorizations, on a different account handle
func (d *DraftTransaction) OnAccount(ctx context.Context, source AccountHandle) (*DraftTransaction, error) {
	return Build(ctx, &d.invocation, source)
}

// Assemble attaches the resource data returned by simulation, producing the final
// transaction. Its fee is the base fee plus the resource fee from the data.
func (d *DraftTransaction) Assemble(ctx context.Context, data xdr.SorobanTransactionData) (*PreparedTransaction, error) {
	fnName := d.invocation.Function.Name
	contract, err := scval.ParseAddress(ctx, d.invocation.Contract)
	if err != nil {
		return nil, err
	}
	fee := BaseFee + int64(data.ResourceFee)
	tx, err := newTransaction(d.source, d.operation(contract, xdr.TransactionExt{V: 1, SorobanData: &data}), fee)
	if err != nil {
		return nil, i18n.NewError(ctx, scmsgs.MsgBuildFailed, fnName, err)
	}
	envelope, err := tx.Base64()
	if err != nil {
		return nil, i18n.NewError(ctx, scmsgs.MsgBuildFailed, fnName, err)
	}
	return &PreparedTransaction{
		function:    fnName,
		tx:          tx,
		envelope:    envelope,
		resourceFee: int64(data.ResourceFee),
	}, nil
}

func (d *DraftTransaction) Function() *Function {
	return d.invocation.Function
}

func (d *DraftTransaction) Source() AccountHandle {
	return d.source
}

// Sequence is the sequence number the transaction will consume
func (d *DraftTransaction) Sequence() int64 {
	return d.tx.SequenceNumber()
}

func (d *DraftTransaction) Args() []xdr.ScVal {
	return append([]xdr.ScVal{}, d.invocation.Args...)
}

func (d *DraftTransaction) Auth() []xdr.SorobanAuthorizationEntry {
	return append([]xdr.SorobanAuthorizationEntry{}, d.invocation.Auth...)
}

func (d *DraftTransaction) Operations() []txnbuild.Operation {
	return d.tx.Operations()
}

func (d *DraftTransaction) Fee() int64 {
	return d.tx.BaseFee()
}

// Envelope is the base64 XDR transaction envelope, as sent to the node for simulation
func (d *DraftTransaction) Envelope() (string, error) {
	return d.tx.Base64()
}
