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

import "github.com/conectabrasil/soroban-connector/pkg/contractcall"

// The package contract's functions. Argument counts are checked before any call to the node.
var (
	fnBuyOrder = &contractcall.Function{
		Name:         "buy_order",
		Params:       2,
		RequiresAuth: true,
	}
	fnGrant = &contractcall.Function{
		Name:         "grant",
		Params:       3,
		RequiresAuth: true,
	}
	fnStartOrder = &contractcall.Function{
		Name:   "start_order",
		Params: 2,
	}
	fnGetAllPackages = &contractcall.Function{
		Name:   "get_all_packages",
		Params: 0,
	}
	fnGetUserPackages = &contractcall.Function{
		Name:   "get_user_packages",
		Params: 1,
	}
	fnRemainingByOrder = &contractcall.Function{
		Name:   "remaining_by_order",
		Params: 3,
	}
)
