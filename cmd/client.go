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

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/conectabrasil/soroban-connector/internal/apiclient"
	"github.com/conectabrasil/soroban-connector/internal/scconfig"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftls"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/spf13/cobra"
)

var url string

var tlsEnabled bool
var caFile string
var certFile string
var keyFile string

func ClientCommand() *cobra.Command {
	return buildClientCommand(createClient)
}

func buildClientCommand(clientFactory func() (apiclient.Client, error)) *cobra.Command {
	clientCmd := &cobra.Command{
		Use:   "client <subcommand>",
		Short: "Make API requests to a Soroban contract connector instance",
	}
	defaultURL := fmt.Sprintf("http://%s:%s", scconfig.APIConfig.GetString(httpserver.HTTPConfAddress), scconfig.APIConfig.GetString(httpserver.HTTPConfPort))

	clientCmd.PersistentFlags().StringVarP(&url, "url", "", defaultURL, "The URL of the Soroban contract connector")

	clientCmd.PersistentFlags().BoolVarP(&tlsEnabled, "tls", "", false, "Enable TLS on client")
	clientCmd.PersistentFlags().StringVarP(&caFile, "cacert", "", "", "The tls CA cert file")
	clientCmd.PersistentFlags().StringVarP(&certFile, "cert", "", "", "The tls cert file")
	clientCmd.PersistentFlags().StringVarP(&keyFile, "key", "", "", "The tls key file")

	clientCmd.AddCommand(clientPackagesCommand(clientFactory))
	clientCmd.AddCommand(clientPurchaseCommand(clientFactory))
	clientCmd.AddCommand(clientGrantCommand(clientFactory))
	clientCmd.AddCommand(clientStartOrderCommand(clientFactory))

	return clientCmd
}

func createClient() (apiclient.Client, error) {
	cfg := config.RootSection("sorconn_client")
	apiclient.InitConfig(cfg)
	if url != "" {
		cfg.Set("url", url)
	}
	if tlsEnabled {
		tlsConf := cfg.SubSection("tls")
		tlsConf.Set(fftls.HTTPConfTLSEnabled, true)
		if caFile != "" {
			tlsConf.Set(fftls.HTTPConfTLSCAFile, caFile)
		}
		if certFile != "" {
			tlsConf.Set(fftls.HTTPConfTLSCertFile, certFile)
		}
		if keyFile != "" {
			tlsConf.Set(fftls.HTTPConfTLSKeyFile, keyFile)
		}
	}
	return apiclient.NewClient(context.Background(), cfg)
}

func printJSON(v interface{}) {
	json, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(json))
}

func init() {
	scconfig.Reset()
}
