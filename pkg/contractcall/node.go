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
)

// AccountSource reads the current sequence number of an account from the ledger
type AccountSource interface {
	FetchAccount(ctx context.Context, accountID string) (AccountHandle, error)
}

// Simulator dry-runs a draft against current ledger state
type Simulator interface {
	Simulate(ctx context.Context, draft *DraftTransaction) (*SimulationOutcome, error)
}

// Preparer simulates a draft and assembles the result into a submittable transaction
type Preparer interface {
	Prepare(ctx context.Context, draft *DraftTransaction) (*PreparedTransaction, error)
}

// Node is the set of operations required of a remote RPC node
type Node interface {
	AccountSource
	Simulator
	Preparer
}

// SimulationOutcome is what a node reports for a simulated invocation. A non-empty
// Error means the simulation failed. No results and no error means the function
// returned nothing.
type SimulationOutcome struct {
	Error           string
	Results         []*SimulationResult
	TransactionData string
	MinResourceFee  int64
	LatestLedger    uint32
}

// SimulationResult carries base64 XDR encoded return value and authorization entries
type SimulationResult struct {
	ReturnValue string
	Auth        []string
}

func (o *SimulationOutcome) firstResult() *SimulationResult {
	if o == nil || len(o.Results) == 0 {
		return nil
	}
	return o.Results[0]
}
