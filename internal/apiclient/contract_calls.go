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

package apiclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/conectabrasil/soroban-connector/pkg/apitypes"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

func checkResponse(ctx context.Context, resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return i18n.NewError(ctx, scmsgs.MsgServerError, resp.StatusCode(), resp.String())
	}
	return nil
}

func (c *client) GetPackages(ctx context.Context) ([]fftypes.JSONObject, error) {
	packages := []fftypes.JSONObject{}
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&packages).
		Get("packages")
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *client) GetUserPackages(ctx context.Context, userAddress string) ([]fftypes.JSONObject, error) {
	packages := []fftypes.JSONObject{}
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&packages).
		Get(fmt.Sprintf("packages/user/%s", url.PathEscape(userAddress)))
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *client) GetRemaining(ctx context.Context, ownerAddress, orderID string) (*apitypes.RemainingResponse, error) {
	var remaining apitypes.RemainingResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&remaining).
		Get(fmt.Sprintf("packages/remaining/%s/%s", url.PathEscape(ownerAddress), url.PathEscape(orderID)))
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return &remaining, nil
}

func (c *client) CreatePurchase(ctx context.Context, req *apitypes.PurchaseRequest) (*apitypes.PurchaseResponse, error) {
	var purchase apitypes.PurchaseResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&purchase).
		Post("purchases")
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (c *client) CreateGrant(ctx context.Context, req *apitypes.GrantRequest) (*apitypes.GrantResponse, error) {
	var grant apitypes.GrantResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&grant).
		Post("grants")
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return &grant, nil
}

func (c *client) StartOrder(ctx context.Context, req *apitypes.StartOrderRequest) (*apitypes.StartOrderResponse, error) {
	var started apitypes.StartOrderResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&started).
		Post("packages/start-order")
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return &started, nil
}
