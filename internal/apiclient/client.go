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

	"github.com/conectabrasil/soroban-connector/pkg/apitypes"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// Client calls the REST API of a running connector
type Client interface {
	GetPackages(ctx context.Context) ([]fftypes.JSONObject, error)
	GetUserPackages(ctx context.Context, userAddress string) ([]fftypes.JSONObject, error)
	GetRemaining(ctx context.Context, ownerAddress, orderID string) (*apitypes.RemainingResponse, error)
	CreatePurchase(ctx context.Context, req *apitypes.PurchaseRequest) (*apitypes.PurchaseResponse, error)
	CreateGrant(ctx context.Context, req *apitypes.GrantRequest) (*apitypes.GrantResponse, error)
	StartOrder(ctx context.Context, req *apitypes.StartOrderRequest) (*apitypes.StartOrderResponse, error)
}

type client struct {
	client *resty.Client
}

func InitConfig(conf config.Section) {
	ffresty.InitConfig(conf)
}

func NewClient(ctx context.Context, staticConfig config.Section) (Client, error) {
	rc, err := ffresty.New(ctx, staticConfig)
	if err != nil {
		return nil, err
	}
	return &client{
		client: rc,
	}, nil
}
