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
	"net/http"

	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

var getPackages = func(m *manager) *ffapi.Route {
	return &ffapi.Route{
		Name:            "getPackages",
		Path:            "/packages",
		Method:          http.MethodGet,
		PathParams:      nil,
		QueryParams:     nil,
		Description:     scmsgs.APIEndpointGetPackages,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return []fftypes.JSONObject{} },
		JSONOutputCodes: []int{http.StatusOK},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			return m.getAllPackages(r.Req.Context())
		},
	}
}
