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
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/stellar/go/xdr"
)

// Invoker runs contract functions against one contract, through one node
type Invoker interface {
	// BuildUnsigned produces a prepared, unsigned transaction for a state-changing
	// function, with the source account as the signer
	BuildUnsigned(ctx context.Context, fn *Function, sourceAccount string, args ...xdr.ScVal) (*UnsignedTransaction, error)
	// Query simulates a read-only function and decodes its return value
	Query(ctx context.Context, fn *Function, args ...xdr.ScVal) (scval.Value, error)
}

// UnsignedTransaction is the result handed back to the caller's wallet for signing
type UnsignedTransaction struct {
	Function    string
	Source      string
	Sequence    int64
	Fee         int64
	Hash        string
	Envelope    string
	AuthEntries int
}

type invoker struct {
	contract          string
	networkPassphrase string
	node              Node
}

func NewInvoker(contract, networkPassphrase string, node Node) Invoker {
	return &invoker{
		contract:          contract,
		networkPassphrase: networkPassphrase,
		node:              node,
	}
}

func (i *invoker) invocation(fn *Function, args []xdr.ScVal) *Invocation {
	return &Invocation{
		Contract: i.contract,
		Function: fn,
		Args:     args,
	}
}

func (i *invoker) BuildUnsigned(ctx context.Context, fn *Function, sourceAccount string, args ...xdr.ScVal) (*UnsignedTransaction, error) {
	ctx = log.WithLogField(ctx, "fn", fn.Name)
	inv := i.invocation(fn, args)

	// Argument errors surface before any call to the node
	if err := checkArity(ctx, fn, args); err != nil {
		return nil, err
	}
	if _, err := scval.ParseAddress(ctx, i.contract); err != nil {
		return nil, err
	}

	handle, err := i.node.FetchAccount(ctx, sourceAccount)
	if err != nil {
		return nil, err
	}
	draft, err := Build(ctx, inv, handle)
	if err != nil {
		return nil, err
	}

	authorized, err := resolveAuthorizations(ctx, i.node, draft)
	if err != nil {
		return nil, err
	}

	prepared, err := prepare(ctx, i.node, authorized)
	if err != nil {
		return nil, err
	}

	hash, err := prepared.Hash(i.networkPassphrase)
	if err != nil {
		return nil, i18n.NewError(ctx, scmsgs.MsgBuildFailed, fn.Name, err)
	}
	log.L(ctx).Infof("Built unsigned %s for %s sequence=%d hash=%s", fn.Name, sourceAccount, prepared.Sequence(), hash)
	return &UnsignedTransaction{
		Function:    fn.Name,
		Source:      sourceAccount,
		Sequence:    prepared.Sequence(),
		Fee:         prepared.Fee(),
		Hash:        hash,
		Envelope:    prepared.Envelope(),
		AuthEntries: len(authorized.Auth()),
	}, nil
}

func (i *invoker) Query(ctx context.Context, fn *Function, args ...xdr.ScVal) (scval.Value, error) {
	ctx = log.WithLogField(ctx, "fn", fn.Name)
	draft, err := Build(ctx, i.invocation(fn, args), NewEphemeralAccount())
	if err != nil {
		return scval.Null(), err
	}
	outcome, err := simulate(ctx, i.node, draft, phaseQuery)
	if err != nil {
		return scval.Null(), err
	}
	return Extract(ctx, outcome)
}
