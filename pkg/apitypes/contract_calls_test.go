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

package apitypes

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordIDIsOrdered(t *testing.T) {
	id1 := NewRecordID()
	id2 := NewRecordID()
	assert.NotEqual(t, id1.String(), id2.String())
	assert.Less(t, id1.String(), id2.String())
}

func TestNumericIDFromStringOrNumber(t *testing.T) {
	var req GrantRequest
	err := json.Unmarshal([]byte(`{"callerUserId":"GA","ownerUserId":"GB","orderId":"42"}`), &req)
	assert.NoError(t, err)
	v, err := req.OrderID.Uint64(context.Background(), "orderId")
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	var purchase PurchaseRequest
	err = json.Unmarshal([]byte(`{"userId":"GA","packageId":7}`), &purchase)
	assert.NoError(t, err)
	p, err := purchase.PackageID.Uint32(context.Background(), "packageId")
	assert.NoError(t, err)
	assert.Equal(t, uint32(7), p)
}

func TestNumericIDInvalid(t *testing.T) {
	_, err := NumericID("abc").Uint64(context.Background(), "orderId")
	assert.Regexp(t, "SC10116.*orderId.*abc", err)

	_, err = NumericID("-1").Uint32(context.Background(), "packageId")
	assert.Regexp(t, "SC10116", err)

	_, err = NumericID("4294967296").Uint32(context.Background(), "packageId")
	assert.Regexp(t, "SC10116", err)

	var n NumericID
	err = json.Unmarshal([]byte(`{}`), &n)
	assert.Error(t, err)
}

func TestNumericIDEmpty(t *testing.T) {
	_, err := NumericID("").Uint64(context.Background(), "orderId")
	assert.Regexp(t, "SC10116", err)
}
