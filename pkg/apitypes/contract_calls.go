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
	"crypto/rand"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	ulid "github.com/oklog/ulid/v2"
)

var ulidReader = &ulid.LockedMonotonicReader{
	MonotonicReader: &ulid.MonotonicEntropy{
		Reader: rand.Reader,
	},
}

// NewRecordID returns a ULID formatted as a UUID, so records created in the same
// millisecond still sort in creation order
func NewRecordID() *fftypes.UUID {
	u := ulid.MustNew(ulid.Timestamp(time.Now()), ulidReader)
	return (*fftypes.UUID)(&u)
}

// NumericID is an identifier that callers may send either as a JSON number or a string.
// It is validated on use rather than on parse, so the error names the offending field.
type NumericID string

func (n *NumericID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = NumericID(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumericID(num.String())
	return nil
}

func (n NumericID) parse(ctx context.Context, field string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(string(n)), 10, bitSize)
	if err != nil {
		return 0, i18n.NewError(ctx, scmsgs.MsgInvalidNumericID, field, string(n))
	}
	return v, nil
}

func (n NumericID) Uint32(ctx context.Context, field string) (uint32, error) {
	v, err := n.parse(ctx, field, 32)
	return uint32(v), err
}

func (n NumericID) Uint64(ctx context.Context, field string) (uint64, error) {
	return n.parse(ctx, field, 64)
}

type PurchaseRequest struct {
	UserID    string    `ffstruct:"PurchaseRequest" json:"userId"`
	PackageID NumericID `ffstruct:"PurchaseRequest" json:"packageId"`
}

type PurchaseResponse struct {
	ID          *fftypes.UUID   `ffstruct:"UnsignedTransaction" json:"id"`
	UserID      string          `ffstruct:"PurchaseRequest" json:"userId"`
	PackageID   uint32          `ffstruct:"PurchaseRequest" json:"packageId"`
	CreatedAt   *fftypes.FFTime `ffstruct:"UnsignedTransaction" json:"createdAt"`
	TxHash      *string         `ffstruct:"UnsignedTransaction" json:"txHash"`
	UnsignedXDR string          `ffstruct:"UnsignedTransaction" json:"unsignedXdr"`
}

type GrantRequest struct {
	CallerUserID string    `ffstruct:"GrantRequest" json:"callerUserId"`
	OwnerUserID  string    `ffstruct:"GrantRequest" json:"ownerUserId"`
	OrderID      NumericID `ffstruct:"GrantRequest" json:"orderId"`
}

type GrantResponse struct {
	ID           *fftypes.UUID   `ffstruct:"UnsignedTransaction" json:"id"`
	CallerUserID string          `ffstruct:"GrantRequest" json:"callerUserId"`
	OwnerUserID  string          `ffstruct:"GrantRequest" json:"ownerUserId"`
	OrderID      uint64          `ffstruct:"GrantRequest" json:"orderId"`
	CreatedAt    *fftypes.FFTime `ffstruct:"UnsignedTransaction" json:"createdAt"`
	TxHash       *string         `ffstruct:"UnsignedTransaction" json:"txHash"`
	UnsignedXDR  string          `ffstruct:"UnsignedTransaction" json:"unsignedXdr"`
}

type StartOrderRequest struct {
	OwnerAddress string    `ffstruct:"StartOrderRequest" json:"ownerAddress"`
	OrderID      NumericID `ffstruct:"StartOrderRequest" json:"orderId"`
}

type StartOrderResponse struct {
	OwnerAddress string  `ffstruct:"StartOrderRequest" json:"ownerAddress"`
	OrderID      uint64  `ffstruct:"StartOrderRequest" json:"orderId"`
	TxHash       *string `ffstruct:"UnsignedTransaction" json:"txHash"`
	UnsignedXDR  string  `ffstruct:"UnsignedTransaction" json:"unsignedXdr"`
	Timestamp    int64   `ffstruct:"StartOrderResponse" json:"timestamp"`
}

type RemainingResponse struct {
	Remaining uint64 `ffstruct:"RemainingResponse" json:"remaining"`
	Timestamp int64  `ffstruct:"RemainingResponse" json:"timestamp"`
	Error     string `ffstruct:"RemainingResponse" json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `ffstruct:"HealthResponse" json:"status"`
}

type ReadyResponse struct {
	Status          string `ffstruct:"HealthResponse" json:"status"`
	LatestLedger    uint64 `ffstruct:"ReadyResponse" json:"latestLedger"`
	ProtocolVersion uint64 `ffstruct:"ReadyResponse" json:"protocolVersion"`
}

const HealthStatusUp = "UP"
