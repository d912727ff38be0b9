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

package scmsgs

import (
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffm = func(key, translation string) i18n.MessageKey {
	return i18n.FFM(language.AmericanEnglish, key, translation)
}

//revive:disable
var (
	APIEndpointPostPurchase        = ffm("api.endpoints.post.purchases", "Build an unsigned transaction that purchases a package for the user")
	APIEndpointPostGrant           = ffm("api.endpoints.post.grants", "Build an unsigned transaction that grants an existing order to another owner")
	APIEndpointPostStartOrder      = ffm("api.endpoints.post.packages.startorder", "Build an unsigned transaction that starts the time window of an order")
	APIEndpointGetPackages         = ffm("api.endpoints.get.packages", "List all packages offered by the contract")
	APIEndpointGetUserPackages     = ffm("api.endpoints.get.packages.user", "List the orders owned by an address")
	APIEndpointGetRemainingByOrder = ffm("api.endpoints.get.packages.remaining", "Get the time remaining on an order")
	APIEndpointGetHealth           = ffm("api.endpoints.get.health", "Get the health of the connector")
	APIEndpointGetStatusReady      = ffm("api.endpoints.get.status.ready", "Get the readiness of the connector, including connectivity to the Soroban RPC node")

	APIParamUserAddress  = ffm("api.params.userAddress", "The account address (G...) that owns the orders")
	APIParamOwnerAddress = ffm("api.params.ownerAddress", "The account address (G...) that owns the order")
	APIParamOrderID      = ffm("api.params.orderId", "The numeric identifier of the order")

	PurchaseRequestUserID    = ffm("PurchaseRequest.userId", "The account address (G...) that buys the package and signs the transaction")
	PurchaseRequestPackageID = ffm("PurchaseRequest.packageId", "The numeric identifier of the package to buy")

	GrantRequestCallerUserID = ffm("GrantRequest.callerUserId", "The account address (G...) that grants the order and signs the transaction")
	GrantRequestOwnerUserID  = ffm("GrantRequest.ownerUserId", "The account address (G...) that receives the order")
	GrantRequestOrderID      = ffm("GrantRequest.orderId", "The numeric identifier of the order to grant")

	StartOrderRequestOwnerAddress = ffm("StartOrderRequest.ownerAddress", "The account address (G...) that owns the order and signs the transaction")
	StartOrderRequestOrderID      = ffm("StartOrderRequest.orderId", "The numeric identifier of the order to start")
	StartOrderResponseTimestamp   = ffm("StartOrderResponse.timestamp", "The time the transaction was built, in milliseconds since the epoch")

	UnsignedTransactionID          = ffm("UnsignedTransaction.id", "A unique identifier for the request record")
	UnsignedTransactionCreated     = ffm("UnsignedTransaction.createdAt", "The time the request record was created")
	UnsignedTransactionTxHash      = ffm("UnsignedTransaction.txHash", "The hash the transaction will have on the ledger once signed and submitted")
	UnsignedTransactionUnsignedXDR = ffm("UnsignedTransaction.unsignedXdr", "The base64 XDR transaction envelope for the wallet to sign")

	RemainingResponseRemaining = ffm("RemainingResponse.remaining", "The remaining time on the order, as reported by the contract")
	RemainingResponseTimestamp = ffm("RemainingResponse.timestamp", "The time of the query, in milliseconds since the epoch")
	RemainingResponseError     = ffm("RemainingResponse.error", "Set when the contract result could not be interpreted")

	HealthResponseStatus = ffm("HealthResponse.status", "The health status of the connector")

	ReadyResponseLatestLedger    = ffm("ReadyResponse.latestLedger", "The latest ledger sequence known to the Soroban RPC node")
	ReadyResponseProtocolVersion = ffm("ReadyResponse.protocolVersion", "The protocol version of the latest ledger")
)
