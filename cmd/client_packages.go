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

	"github.com/conectabrasil/soroban-connector/internal/apiclient"
	"github.com/spf13/cobra"
)

func clientPackagesCommand(clientFactory func() (apiclient.Client, error)) *cobra.Command {
	clientPackagesCmd := &cobra.Command{
		Use:   "packages <subcommand>",
		Short: "Read the packages and orders held by the contract",
	}
	clientPackagesCmd.AddCommand(clientPackagesListCommand(clientFactory))
	clientPackagesCmd.AddCommand(clientPackagesUserCommand(clientFactory))
	clientPackagesCmd.AddCommand(clientPackagesRemainingCommand(clientFactory))
	return clientPackagesCmd
}

func clientPackagesListCommand(clientFactory func() (apiclient.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all packages",
		Long:  "",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			packages, err := client.GetPackages(context.Background())
			if err != nil {
				return err
			}
			printJSON(packages)
			return nil
		},
	}
}

func clientPackagesUserCommand(clientFactory func() (apiclient.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "user <userAddress>",
		Short: "List the orders owned by an address",
		Long:  "",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			packages, err := client.GetUserPackages(context.Background(), args[0])
			if err != nil {
				return err
			}
			printJSON(packages)
			return nil
		},
	}
}

func clientPackagesRemainingCommand(clientFactory func() (apiclient.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "remaining <ownerAddress> <orderId>",
		Short: "Get the time remaining on an order",
		Long:  "",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			remaining, err := client.GetRemaining(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			printJSON(remaining)
			return nil
		},
	}
}
