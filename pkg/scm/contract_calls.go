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

package scm

import (
	"context"
	"errors"
	"time"

	"github.com/conectabrasil/soroban-connector/internal/metrics"
	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/conectabrasil/soroban-connector/pkg/apitypes"
	"github.com/conectabrasil/soroban-connector/pkg/contractcall"
	"github.com/conectabrasil/soroban-connector/pkg/scval"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/stellar/go/xdr"
)

const remainingParseError = "Failed to parse remaining value"

func (m *manager) buildUnsigned(ctx context.Context, fn *contractcall.Function, source string, args ...xdr.ScVal) (*contractcall.UnsignedTransaction, error) {
	start := time.Now()
	m.metrics.CountContractCallRequest(ctx, fn.Name, metrics.KindWrite)
	tx, err := m.invoker.BuildUnsigned(ctx, fn, source, args...)
	m.recordContractCall(ctx, fn, metrics.KindWrite, start, err)
	return tx, err
}

func (m *manager) query(ctx context.Context, fn *contractcall.Function, args ...xdr.ScVal) (scval.Value, error) {
	start := time.Now()
	m.metrics.CountContractCallRequest(ctx, fn.Name, metrics.KindRead)
	v, err := m.invoker.Query(ctx, fn, args...)
	m.recordContractCall(ctx, fn, metrics.KindRead, start, err)
	return v, err
}

func (m *manager) recordContractCall(ctx context.Context, fn *contractcall.Function, kind string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
		log.L(ctx).Errorf("Contract call %s (%s) failed: %s", fn.Name, kind, err)
	}
	m.metrics.CountContractCallResponse(ctx, fn.Name, kind, status)
	m.metrics.RecordContractCallDuration(ctx, fn.Name, kind, status, time.Since(start))
}

func requireField(ctx context.Context, name, value string) error {
	if value == "" {
		return i18n.NewError(ctx, scmsgs.MsgMissingRequiredField, name)
	}
	return nil
}

func (m *manager) createPurchase(ctx context.Context, req *apitypes.PurchaseRequest) (*apitypes.PurchaseResponse, error) {
	if err := requireField(ctx, "userId", req.UserID); err != nil {
		return nil, err
	}
	if err := requireField(ctx, "packageId", string(req.PackageID)); err != nil {
		return nil, err
	}
	packageID, err := req.PackageID.Uint32(ctx, "packageId")
	if err != nil {
		return nil, err
	}
	owner, err := scval.EncodeAddress(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	tx, err := m.buildUnsigned(ctx, fnBuyOrder, req.UserID, owner, scval.EncodeU32(packageID))
	if err != nil {
		return nil, err
	}
	return &apitypes.PurchaseResponse{
		ID:          apitypes.NewRecordID(),
		UserID:      req.UserID,
		PackageID:   packageID,
		CreatedAt:   fftypes.Now(),
		TxHash:      &tx.Hash,
		UnsignedXDR: tx.Envelope,
	}, nil
}

func (m *manager) createGrant(ctx context.Context, req *apitypes.GrantRequest) (*apitypes.GrantResponse, error) {
	if err := requireField(ctx, "callerUserId", req.CallerUserID); err != nil {
		return nil, err
	}
	if err := requireField(ctx, "ownerUserId", req.OwnerUserID); err != nil {
		return nil, err
	}
	if err := requireField(ctx, "orderId", string(req.OrderID)); err != nil {
		return nil, err
	}
	orderID, err := req.OrderID.Uint64(ctx, "orderId")
	if err != nil {
		return nil, err
	}
	caller, err := scval.EncodeAddress(ctx, req.CallerUserID)
	if err != nil {
		return nil, err
	}
	owner, err := scval.EncodeAddress(ctx, req.OwnerUserID)
	if err != nil {
		return nil, err
	}

	tx, err := m.buildUnsigned(ctx, fnGrant, req.CallerUserID, caller, owner, scval.EncodeLow128(orderID))
	if err != nil {
		return nil, err
	}
	return &apitypes.GrantResponse{
		ID:           apitypes.NewRecordID(),
		CallerUserID: req.CallerUserID,
		OwnerUserID:  req.OwnerUserID,
		OrderID:      orderID,
		CreatedAt:    fftypes.Now(),
		TxHash:       &tx.Hash,
		UnsignedXDR:  tx.Envelope,
	}, nil
}

func (m *manager) startOrder(ctx context.Context, req *apitypes.StartOrderRequest) (*apitypes.StartOrderResponse, error) {
	if err := requireField(ctx, "ownerAddress", req.OwnerAddress); err != nil {
		return nil, err
	}
	if err := requireField(ctx, "orderId", string(req.OrderID)); err != nil {
		return nil, err
	}
	orderID, err := req.OrderID.Uint64(ctx, "orderId")
	if err != nil {
		return nil, err
	}
	owner, err := scval.EncodeAddress(ctx, req.OwnerAddress)
	if err != nil {
		return nil, err
	}

	tx, err := m.buildUnsigned(ctx, fnStartOrder, req.OwnerAddress, owner, scval.EncodeLow128(orderID))
	if err != nil {
		return nil, err
	}
	return &apitypes.StartOrderResponse{
		OwnerAddress: req.OwnerAddress,
		OrderID:      orderID,
		TxHash:       &tx.Hash,
		UnsignedXDR:  tx.Envelope,
		Timestamp:    time.Now().UnixMilli(),
	}, nil
}

func (m *manager) getAllPackages(ctx context.Context) ([]fftypes.JSONObject, error) {
	v, err := m.query(ctx, fnGetAllPackages)
	if err != nil {
		return nil, err
	}
	return packageRecords(v), nil
}

func (m *manager) getUserPackages(ctx context.Context, userAddress string) ([]fftypes.JSONObject, error) {
	owner, err := scval.EncodeAddress(ctx, userAddress)
	if err != nil {
		return nil, err
	}
	v, err := m.query(ctx, fnGetUserPackages, owner)
	if err != nil {
		return nil, err
	}
	return userPackageRecords(v), nil
}

// getRemainingByOrder asks the contract how much of the order is left as of now. A result
// that cannot be decoded or interpreted is reported as zero remaining, with a diagnostic.
func (m *manager) getRemainingByOrder(ctx context.Context, ownerAddress, orderIDStr string) (*apitypes.RemainingResponse, error) {
	orderID, err := apitypes.NumericID(orderIDStr).Uint64(ctx, "orderId")
	if err != nil {
		return nil, err
	}
	owner, err := scval.EncodeAddress(ctx, ownerAddress)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	v, err := m.query(ctx, fnRemainingByOrder, owner, scval.EncodeLow128(orderID), scval.EncodeU64(uint64(now.Unix())))
	var decodeErr *contractcall.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		log.L(ctx).Warnf("Unable to decode remaining value for order %d: %s", orderID, err)
		return &apitypes.RemainingResponse{Timestamp: now.UnixMilli(), Error: remainingParseError}, nil
	case err != nil:
		return nil, err
	}

	remaining, ok := remainingAmount(v)
	if !ok {
		log.L(ctx).Warnf("Unexpected remaining value for order %d: %s", orderID, v)
		return &apitypes.RemainingResponse{Timestamp: now.UnixMilli(), Error: remainingParseError}, nil
	}
	return &apitypes.RemainingResponse{
		Remaining: remaining,
		Timestamp: now.UnixMilli(),
	}, nil
}
