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
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const errorPrefix = "SC10"

var ffe = newFFE()

// The prefix must be registered before the first key below is declared
func newFFE() func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	i18n.RegisterPrefix(errorPrefix, "Soroban Contract Connector")
	return func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
		return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
	}
}

//revive:disable
var (
	MsgInvalidAddress            = ffe("SC10100", "Invalid account or contract address '%s'", http.StatusBadRequest)
	MsgArityMismatch             = ffe("SC10101", "Contract function '%s' expects %d arguments, but %d were supplied", http.StatusBadRequest)
	MsgAccountNotFound           = ffe("SC10102", "Account '%s' was not found on the ledger", http.StatusNotFound)
	MsgSimulationFailed          = ffe("SC10103", "Simulation of contract function '%s' failed during %s: %s")
	MsgNoAuthorizationFound      = ffe("SC10104", "Simulation of contract function '%s' returned no authorization entries")
	MsgAuthorizationDecodeFailed = ffe("SC10105", "Failed to decode authorization entry %d for contract function '%s': %s")
	MsgPreparationFailed         = ffe("SC10106", "Preparation of contract function '%s' failed: %s")
	MsgValueDecodeFailed         = ffe("SC10107", "Failed to decode contract value: %s")
	MsgBuildFailed               = ffe("SC10108", "Failed to build transaction for contract function '%s': %s")
	MsgRPCRequestFailed          = ffe("SC10109", "Soroban RPC request '%s' failed")
	MsgRPCError                  = ffe("SC10110", "Soroban RPC request '%s' returned error code=%s: %s")
	MsgRPCMissingResult          = ffe("SC10111", "Soroban RPC request '%s' returned no result")
	MsgRPCInvalidContentType     = ffe("SC10112", "Soroban RPC request '%s' returned invalid content type: %s")
	MsgNoResourceData            = ffe("SC10113", "Simulation returned no resource data")
	MsgInvalidResourceData       = ffe("SC10114", "Simulation returned invalid resource data: %s")
	MsgConfigParamNotSet         = ffe("SC10115", "Configuration parameter '%s' must be set")
	MsgInvalidNumericID          = ffe("SC10116", "'%s' must be a non-negative integer: '%s'", http.StatusBadRequest)
	MsgMissingRequiredField      = ffe("SC10117", "'%s' is required", http.StatusBadRequest)
	MsgServerError               = ffe("SC10118", "Server returned error [%d]: %s")
	MsgInvalidOutputType         = ffe("SC10119", "Invalid output type: %s")
	MsgMissingRequestBody        = ffe("SC10120", "Request body is required", http.StatusBadRequest)
	MsgMissingArgument           = ffe("SC10121", "Missing argument: %s")
)
