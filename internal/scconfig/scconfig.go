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

package scconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// ContractAddress is the C... strkey of the package contract all calls are made against
	ContractAddress = ffc("contract.address")
	// ContractNetworkPassphrase identifies the network, and is only used to compute transaction hashes
	ContractNetworkPassphrase = ffc("contract.networkPassphrase")
	APIDefaultRequestTimeout  = ffc("api.defaultRequestTimeout")
	APIMaxRequestTimeout      = ffc("api.maxRequestTimeout")
	MetricsEnabled            = ffc("metrics.enabled")
	MetricsPath               = ffc("metrics.path")
)

const TestnetPassphrase = "Test SDF Network ; September 2015"

var SorobanConfig config.Section

var APIConfig config.Section

var CorsConfig config.Section

var MetricsConfig config.Section

func setDefaults() {
	viper.SetDefault(string(ContractNetworkPassphrase), TestnetPassphrase)
	viper.SetDefault(string(APIDefaultRequestTimeout), "30s")
	viper.SetDefault(string(APIMaxRequestTimeout), "10m")
	viper.SetDefault(string(MetricsEnabled), false)
	viper.SetDefault(string(MetricsPath), "/metrics")
}

func Reset() {
	config.RootConfigReset(setDefaults)

	SorobanConfig = config.RootSection("soroban")
	ffresty.InitConfig(SorobanConfig)

	APIConfig = config.RootSection("api")
	httpserver.InitHTTPConfig(APIConfig, 5108)

	CorsConfig = config.RootSection("cors")
	httpserver.InitCORSConfig(CorsConfig)

	MetricsConfig = config.RootSection("metrics")
	httpserver.InitHTTPConfig(MetricsConfig, 6100)
}
