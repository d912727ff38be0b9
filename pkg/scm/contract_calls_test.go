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
	"fmt"
	"testing"
	"time"

	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/conectabrasil/soroban-connector/mocks/contractcallmocks"
	"github.com/conectabrasil/soroban-connector/pkg/apitypes"
	"github.com/conectabrasil/soroban-connector/pkg/contractcall"
	"github.com/conectabrasil/soroban-connector/pkg/scval"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func matchAddress(address string) interface{} {
	return mock.MatchedBy(func(sv xdr.ScVal) bool {
		return sv.Type == xdr.ScValTypeScvAddress &&
			sv.Address.Type == xdr.ScAddressTypeScAddressTypeAccount &&
			sv.Address.AccountId.Address() == address
	})
}

func matchU32(n uint32) interface{} {
	return mock.MatchedBy(func(sv xdr.ScVal) bool {
		return sv.Type == xdr.ScValTypeScvU32 && uint32(*sv.U32) == n
	})
}

func matchU128(n uint64) interface{} {
	return mock.MatchedBy(func(sv xdr.ScVal) bool {
		return sv.Type == xdr.ScValTypeScvU128 && sv.U128.Hi == 0 && uint64(sv.U128.Lo) == n
	})
}

func testUnsignedTX(fn, source string) *contractcall.UnsignedTransaction {
	return &contractcall.UnsignedTransaction{
		Function:    fn,
		Source:      source,
		Sequence:    101,
		Fee:         12345,
		Hash:        "4b1e4ad7f3a9e1c0d2b5f6a8c9e0d1f2a3b4c5d6e7f8091a2b3c4d5e6f708192",
		Envelope:    "AAAAAgAAAAB...",
		AuthEntries: 1,
	}
}

func startTestManager(t *testing.T) (string, *manager, *contractcallmocks.Invoker, func()) {
	url, m, done := newTestManager(t)
	err := m.Start()
	require.NoError(t, err)
	return url, m, m.invoker.(*contractcallmocks.Invoker), done
}

func TestPostPurchaseOK(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	user := keypair.MustRandom().Address()
	mi.On("BuildUnsigned", mock.Anything, fnBuyOrder, user, matchAddress(user), matchU32(7)).
		Return(testUnsignedTX("buy_order", user), nil)

	var purchase apitypes.PurchaseResponse
	res, err := resty.New().R().
		SetBody(map[string]interface{}{
			"userId":    user,
			"packageId": "7",
		}).
		SetResult(&purchase).
		Post(url + "/purchases")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.NotNil(t, purchase.ID)
	assert.NotNil(t, purchase.CreatedAt)
	assert.Equal(t, user, purchase.UserID)
	assert.Equal(t, uint32(7), purchase.PackageID)
	assert.Equal(t, "AAAAAgAAAAB...", purchase.UnsignedXDR)
	require.NotNil(t, purchase.TxHash)
	assert.Equal(t, testUnsignedTX("", "").Hash, *purchase.TxHash)
}

func TestPostPurchaseNumericPackageID(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	user := keypair.MustRandom().Address()
	mi.On("BuildUnsigned", mock.Anything, fnBuyOrder, user, matchAddress(user), matchU32(3)).
		Return(testUnsignedTX("buy_order", user), nil)

	res, err := resty.New().R().
		SetBody(`{"userId":"` + user + `","packageId":3}`).
		SetHeader("Content-Type", "application/json").
		Post(url + "/purchases")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
}

func TestPostPurchaseValidation(t *testing.T) {
	url, _, _, done := startTestManager(t)
	defer done()

	user := keypair.MustRandom().Address()
	for _, tc := range []struct {
		body   map[string]interface{}
		errKey string
	}{
		{body: map[string]interface{}{"packageId": "1"}, errKey: "SC10117"},
		{body: map[string]interface{}{"userId": user}, errKey: "SC10117"},
		{body: map[string]interface{}{"userId": user, "packageId": "abc"}, errKey: "SC10116"},
		{body: map[string]interface{}{"userId": user, "packageId": "-1"}, errKey: "SC10116"},
		{body: map[string]interface{}{"userId": user, "packageId": "4294967296"}, errKey: "SC10116"},
		{body: map[string]interface{}{"userId": "not-an-address", "packageId": "1"}, errKey: "SC10100"},
	} {
		res, err := resty.New().R().
			SetBody(tc.body).
			Post(url + "/purchases")
		assert.NoError(t, err)
		assert.Equal(t, 400, res.StatusCode(), tc.body)
		assert.Regexp(t, tc.errKey, res.String())
	}
}

func TestPostPurchaseBuildFails(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	user := keypair.MustRandom().Address()
	mi.On("BuildUnsigned", mock.Anything, fnBuyOrder, user, mock.Anything, mock.Anything).
		Return(nil, i18n.NewError(context.Background(), scmsgs.MsgNoAuthorizationFound, "buy_order"))

	res, err := resty.New().R().
		SetBody(&apitypes.PurchaseRequest{UserID: user, PackageID: "1"}).
		Post(url + "/purchases")
	assert.NoError(t, err)
	assert.Equal(t, 500, res.StatusCode())
	assert.Regexp(t, "SC10104", res.String())
}

func TestPostGrantOK(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	caller := keypair.MustRandom().Address()
	owner := keypair.MustRandom().Address()
	mi.On("BuildUnsigned", mock.Anything, fnGrant, caller, matchAddress(caller), matchAddress(owner), matchU128(42)).
		Return(testUnsignedTX("grant", caller), nil)

	var grant apitypes.GrantResponse
	res, err := resty.New().R().
		SetBody(&apitypes.GrantRequest{
			CallerUserID: caller,
			OwnerUserID:  owner,
			OrderID:      "42",
		}).
		SetResult(&grant).
		Post(url + "/grants")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.NotNil(t, grant.ID)
	assert.Equal(t, caller, grant.CallerUserID)
	assert.Equal(t, owner, grant.OwnerUserID)
	assert.Equal(t, uint64(42), grant.OrderID)
	assert.NotEmpty(t, grant.UnsignedXDR)
	assert.NotNil(t, grant.TxHash)
}

func TestPostGrantValidation(t *testing.T) {
	url, _, _, done := startTestManager(t)
	defer done()

	caller := keypair.MustRandom().Address()
	for _, tc := range []struct {
		body   *apitypes.GrantRequest
		errKey string
	}{
		{body: &apitypes.GrantRequest{OwnerUserID: caller, OrderID: "1"}, errKey: "SC10117.*callerUserId"},
		{body: &apitypes.GrantRequest{CallerUserID: caller, OrderID: "1"}, errKey: "SC10117.*ownerUserId"},
		{body: &apitypes.GrantRequest{CallerUserID: caller, OwnerUserID: caller}, errKey: "SC10117.*orderId"},
		{body: &apitypes.GrantRequest{CallerUserID: caller, OwnerUserID: caller, OrderID: "x"}, errKey: "SC10116"},
		{body: &apitypes.GrantRequest{CallerUserID: "bad", OwnerUserID: caller, OrderID: "1"}, errKey: "SC10100.*bad"},
		{body: &apitypes.GrantRequest{CallerUserID: caller, OwnerUserID: "worse", OrderID: "1"}, errKey: "SC10100.*worse"},
	} {
		res, err := resty.New().R().
			SetBody(tc.body).
			Post(url + "/grants")
		assert.NoError(t, err)
		assert.Equal(t, 400, res.StatusCode())
		assert.Regexp(t, tc.errKey, res.String())
	}
}

func TestPostStartOrderOK(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	owner := keypair.MustRandom().Address()
	mi.On("BuildUnsigned", mock.Anything, fnStartOrder, owner, matchAddress(owner), matchU128(9)).
		Return(testUnsignedTX("start_order", owner), nil)

	before := time.Now().UnixMilli()
	var started apitypes.StartOrderResponse
	res, err := resty.New().R().
		SetBody(&apitypes.StartOrderRequest{
			OwnerAddress: owner,
			OrderID:      "9",
		}).
		SetResult(&started).
		Post(url + "/packages/start-order")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, owner, started.OwnerAddress)
	assert.Equal(t, uint64(9), started.OrderID)
	assert.NotEmpty(t, started.UnsignedXDR)
	assert.GreaterOrEqual(t, started.Timestamp, before)
}

func TestPostStartOrderValidation(t *testing.T) {
	url, _, _, done := startTestManager(t)
	defer done()

	owner := keypair.MustRandom().Address()
	for _, tc := range []struct {
		body   *apitypes.StartOrderRequest
		errKey string
	}{
		{body: &apitypes.StartOrderRequest{OrderID: "1"}, errKey: "SC10117.*ownerAddress"},
		{body: &apitypes.StartOrderRequest{OwnerAddress: owner}, errKey: "SC10117.*orderId"},
		{body: &apitypes.StartOrderRequest{OwnerAddress: owner, OrderID: "1.5"}, errKey: "SC10116"},
		{body: &apitypes.StartOrderRequest{OwnerAddress: "G123", OrderID: "1"}, errKey: "SC10100"},
	} {
		res, err := resty.New().R().
			SetBody(tc.body).
			Post(url + "/packages/start-order")
		assert.NoError(t, err)
		assert.Equal(t, 400, res.StatusCode())
		assert.Regexp(t, tc.errKey, res.String())
	}
}

func TestPostStartOrderBuildFails(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	owner := keypair.MustRandom().Address()
	mi.On("BuildUnsigned", mock.Anything, fnStartOrder, owner, mock.Anything, mock.Anything).
		Return(nil, i18n.NewError(context.Background(), scmsgs.MsgAccountNotFound, owner))

	res, err := resty.New().R().
		SetBody(&apitypes.StartOrderRequest{OwnerAddress: owner, OrderID: "1"}).
		Post(url + "/packages/start-order")
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode())
	assert.Regexp(t, "SC10102", res.String())
}

func TestGetPackages(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	mi.On("Query", mock.Anything, fnGetAllPackages).Return(scval.Sequence(
		scval.Sequence(
			scval.Uint32(1),
			scval.Mapping(
				scval.Entry{Key: scval.Text("name"), Value: scval.Text("Basic")},
				scval.Entry{Key: scval.Text("price"), Value: scval.Low128(1000)},
				scval.Entry{Key: scval.Text("is_popular"), Value: scval.Bool(true)},
			),
		),
	), nil)

	var packages []map[string]interface{}
	res, err := resty.New().R().
		SetResult(&packages).
		Get(url + "/packages")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, []map[string]interface{}{
		{"id": float64(1), "name": "Basic", "price": float64(1000), "is_popular": true},
	}, packages)
}

func TestGetPackagesEmpty(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	mi.On("Query", mock.Anything, fnGetAllPackages).Return(scval.Null(), nil)

	res, err := resty.New().R().
		Get(url + "/packages")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.JSONEq(t, "[]", res.String())
}

func TestGetPackagesSimulationFails(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	mi.On("Query", mock.Anything, fnGetAllPackages).
		Return(scval.Null(), i18n.NewError(context.Background(), scmsgs.MsgSimulationFailed, "get_all_packages", "query", "trapped"))

	res, err := resty.New().R().
		Get(url + "/packages")
	assert.NoError(t, err)
	assert.Equal(t, 500, res.StatusCode())
	assert.Regexp(t, "SC10103.*trapped", res.String())
}

func TestGetUserPackages(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	user := keypair.MustRandom().Address()
	mi.On("Query", mock.Anything, fnGetUserPackages, matchAddress(user)).Return(scval.Sequence(
		scval.Sequence(scval.Low128(5), scval.Uint32(2), scval.Bool(false)),
		scval.Sequence(scval.Low128(6), scval.Uint32(3), scval.Bool(true)),
	), nil)

	var packages []map[string]interface{}
	res, err := resty.New().R().
		SetResult(&packages).
		Get(url + "/packages/user/" + user)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, []map[string]interface{}{
		{"order_id": float64(5), "package_id": float64(2), "is_active": false},
		{"order_id": float64(6), "package_id": float64(3), "is_active": true},
	}, packages)
}

func TestGetUserPackagesBadAddress(t *testing.T) {
	url, _, _, done := startTestManager(t)
	defer done()

	res, err := resty.New().R().
		Get(url + "/packages/user/nobody")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "SC10100", res.String())
}

func TestGetRemainingByOrder(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	owner := keypair.MustRandom().Address()
	before := time.Now()
	nowArg := mock.MatchedBy(func(sv xdr.ScVal) bool {
		return sv.Type == xdr.ScValTypeScvU64 && int64(*sv.U64) >= before.Unix() && int64(*sv.U64) <= time.Now().Unix()
	})
	mi.On("Query", mock.Anything, fnRemainingByOrder, matchAddress(owner), matchU128(12), nowArg).
		Return(scval.Uint64(3600), nil)

	var remaining apitypes.RemainingResponse
	res, err := resty.New().R().
		SetResult(&remaining).
		Get(fmt.Sprintf("%s/packages/remaining/%s/12", url, owner))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, uint64(3600), remaining.Remaining)
	assert.GreaterOrEqual(t, remaining.Timestamp, before.UnixMilli())
	assert.Empty(t, remaining.Error)
}

func TestGetRemainingByOrderDecodeFailure(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	owner := keypair.MustRandom().Address()
	decodeErr := i18n.NewError(context.Background(), scmsgs.MsgValueDecodeFailed, "bad xdr")
	mi.On("Query", mock.Anything, fnRemainingByOrder, mock.Anything, mock.Anything, mock.Anything).
		Return(scval.Null(), &contractcall.DecodeError{Err: decodeErr})

	var remaining apitypes.RemainingResponse
	res, err := resty.New().R().
		SetResult(&remaining).
		Get(fmt.Sprintf("%s/packages/remaining/%s/1", url, owner))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, uint64(0), remaining.Remaining)
	assert.Equal(t, "Failed to parse remaining value", remaining.Error)
	assert.Greater(t, remaining.Timestamp, int64(0))
}

func TestGetRemainingByOrderUnexpectedValue(t *testing.T) {
	_, m, mi, done := startTestManager(t)
	defer done()

	owner := keypair.MustRandom().Address()
	mi.On("Query", mock.Anything, fnRemainingByOrder, mock.Anything, mock.Anything, mock.Anything).
		Return(scval.Text("lots"), nil).Once()
	mi.On("Query", mock.Anything, fnRemainingByOrder, mock.Anything, mock.Anything, mock.Anything).
		Return(scval.Null(), nil).Once()

	remaining, err := m.getRemainingByOrder(context.Background(), owner, "1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), remaining.Remaining)
	assert.Equal(t, remainingParseError, remaining.Error)

	remaining, err = m.getRemainingByOrder(context.Background(), owner, "1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), remaining.Remaining)
	assert.Empty(t, remaining.Error)
}

func TestGetRemainingByOrderErrors(t *testing.T) {
	url, _, mi, done := startTestManager(t)
	defer done()

	owner := keypair.MustRandom().Address()
	res, err := resty.New().R().
		Get(fmt.Sprintf("%s/packages/remaining/%s/abc", url, owner))
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "SC10116", res.String())

	res, err = resty.New().R().
		Get(url + "/packages/remaining/nobody/1")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "SC10100", res.String())

	mi.On("Query", mock.Anything, fnRemainingByOrder, mock.Anything, mock.Anything, mock.Anything).
		Return(scval.Null(), fmt.Errorf("pop"))
	res, err = resty.New().R().
		Get(fmt.Sprintf("%s/packages/remaining/%s/1", url, owner))
	assert.NoError(t, err)
	assert.Equal(t, 500, res.StatusCode())
	assert.Regexp(t, "pop", res.String())
}
