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
	"testing"

	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	testBuyOrder   = &Function{Name: "buy_order", Params: 2, RequiresAuth: true}
	testGrant      = &Function{Name: "grant", Params: 3, RequiresAuth: true}
	testStartOrder = &Function{Name: "start_order", Params: 2}
	testGetAll     = &Function{Name: "get_all_packages", Params: 0}
)

type mockNode struct {
	mock.Mock
}

func (m *mockNode) FetchAccount(ctx context.Context, accountID string) (AccountHandle, error) {
	args := m.Called(ctx, accountID)
	handle, _ := args.Get(0).(AccountHandle)
	return handle, args.Error(1)
}

func (m *mockNode) Simulate(ctx context.Context, draft *DraftTransaction) (*SimulationOutcome, error) {
	args := m.Called(ctx, draft)
	outcome, _ := args.Get(0).(*SimulationOutcome)
	return outcome, args.Error(1)
}

func (m *mockNode) Prepare(ctx context.Context, draft *DraftTransaction) (*PreparedTransaction, error) {
	args := m.Called(ctx, draft)
	if fn, ok := args.Get(0).(func(*DraftTransaction) (*PreparedTransaction, error)); ok {
		return fn(draft)
	}
	prepared, _ := args.Get(0).(*PreparedTransaction)
	return prepared, args.Error(1)
}

func newTestNode(t *testing.T) *mockNode {
	n := &mockNode{}
	n.Test(t)
	t.Cleanup(func() { n.AssertExpectations(t) })
	return n
}

func newTestContract(t *testing.T) string {
	raw := make([]byte, 32)
	raw[0] = 0xc0
	addr, err := strkey.Encode(strkey.VersionByteContract, raw)
	assert.NoError(t, err)
	return addr
}

func newTestArgs(t *testing.T, n int) []xdr.ScVal {
	args := make([]xdr.ScVal, n)
	for i := range args {
		u32 := xdr.Uint32(i)
		args[i] = xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &u32}
	}
	return args
}

func newTestAuthEntry(t *testing.T, contract, fnName string) string {
	raw, err := strkey.Decode(strkey.VersionByteContract, contract)
	assert.NoError(t, err)
	var contractID xdr.Hash
	copy(contractID[:], raw)
	entry := xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeSorobanCredentialsSourceAccount,
		},
		RootInvocation: xdr.SorobanAuthorizedInvocation{
			Function: xdr.SorobanAuthorizedFunction{
				Type: xdr.SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn,
				ContractFn: &xdr.InvokeContractArgs{
					ContractAddress: xdr.ScAddress{
						Type:       xdr.ScAddressTypeScAddressTypeContract,
						ContractId: &contractID,
					},
					FunctionName: xdr.ScSymbol(fnName),
					Args:         []xdr.ScVal{},
				},
			},
			SubInvocations: []xdr.SorobanAuthorizedInvocation{},
		},
	}
	b64, err := xdr.MarshalBase64(entry)
	assert.NoError(t, err)
	return b64
}

func assembleWith(fee int64) func(*DraftTransaction) (*PreparedTransaction, error) {
	return func(d *DraftTransaction) (*PreparedTransaction, error) {
		return d.Assemble(context.Background(), xdr.SorobanTransactionData{ResourceFee: xdr.Int64(fee)})
	}
}

func draftWithSequence(seq int64) interface{} {
	return mock.MatchedBy(func(d *DraftTransaction) bool { return d.Sequence() == seq })
}
