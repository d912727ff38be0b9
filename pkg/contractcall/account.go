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
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"
)

// AccountHandle is a snapshot of an account's identity and sequence number at the
// time it was fetched. It is a value type: a transaction built on a handle consumes
// NextSequence(), but the handle itself is never advanced.
type AccountHandle struct {
	id       string
	sequence int64
}

func NewAccountHandle(id string, sequence int64) AccountHandle {
	return AccountHandle{id: id, sequence: sequence}
}

// NewEphemeralAccount returns a handle on a freshly generated keypair with sequence 0.
// Read-only calls are simulated on one of these, as the source account of a
// simulation need not exist on the ledger.
func NewEphemeralAccount() AccountHandle {
	return AccountHandle{id: keypair.MustRandom().Address()}
}

func (a AccountHandle) ID() string {
	return a.id
}

func (a AccountHandle) Sequence() int64 {
	return a.sequence
}

// NextSequence is the sequence number a transaction built on this handle will carry
func (a AccountHandle) NextSequence() int64 {
	return a.sequence + 1
}

func (a AccountHandle) txnAccount() *txnbuild.SimpleAccount {
	return &txnbuild.SimpleAccount{AccountID: a.id, Sequence: a.sequence}
}
