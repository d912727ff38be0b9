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
	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/conectabrasil/soroban-connector/pkg/apitypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/spf13/cobra"
)

var userAddress string
var callerAddress string
var ownerAddress string
var packageID string
var orderID string

func requireFlag(name, value string) error {
	if value == "" {
		return i18n.NewError(context.Background(), scmsgs.MsgMissingArgument, name)
	}
	return nil
}

func clientPurchaseCommand(clientFactory func() (apiclient.Client, error)) *cobra.Command {
	clientPurchaseCmd := &cobra.Command{
		Use:   "purchase",
		Short: "Build an unsigned transaction that buys a package",
		Long:  "",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := requireFlag("user", userAddress); err != nil {
				return err
			}
			if err := requireFlag("package", packageID); err != nil {
				return err
			}
			client, err := clientFactory()
			if err != nil {
				return err
			}
			purchase, err := client.CreatePurchase(context.Background(), &apitypes.PurchaseRequest{
				UserID:    userAddress,
				PackageID: apitypes.NumericID(packageID),
			})
			if err != nil {
				return err
			}
			printJSON(purchase)
			return nil
		},
	}
	clientPurchaseCmd.Flags().StringVarP(&userAddress, "user", "u", "", "The address that buys the package and signs the transaction")
	clientPurchaseCmd.Flags().StringVarP(&packageID, "package", "p", "", "The package to buy")
	return clientPurchaseCmd
}

func clientGrantCommand(clientFactory func() (apiclient.Client, error)) *cobra.Command {
	clientGrantCmd := &cobra.Command{
		Use:   "grant",
		Short: "Build an unsigned transaction that grants an order to another owner",
		Long:  "",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := requireFlag("caller", callerAddress); err != nil {
				return err
			}
			if err := requireFlag("owner", ownerAddress); err != nil {
				return err
			}
			if err := requireFlag("order", orderID); err != nil {
				return err
			}
			client, err := clientFactory()
			if err != nil {
				return err
			}
			grant, err := client.CreateGrant(context.Background(), &apitypes.GrantRequest{
				CallerUserID: callerAddress,
				OwnerUserID:  ownerAddress,
				OrderID:      apitypes.NumericID(orderID),
			})
			if err != nil {
				return err
			}
			printJSON(grant)
			return nil
		},
	}
	clientGrantCmd.Flags().StringVarP(&callerAddress, "caller", "c", "", "The address that grants the order and signs the transaction")
	clientGrantCmd.Flags().StringVarP(&ownerAddress, "owner", "o", "", "The address that receives the order")
	clientGrantCmd.Flags().StringVarP(&orderID, "order", "", "", "The order to grant")
	return clientGrantCmd
}

func clientStartOrderCommand(clientFactory func() (apiclient.Client, error)) *cobra.Command {
	clientStartOrderCmd := &cobra.Command{
		Use:   "start-order",
		Short: "Build an unsigned transaction that starts the time window of an order",
		Long:  "",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := requireFlag("owner", ownerAddress); err != nil {
				return err
			}
			if err := requireFlag("order", orderID); err != nil {
				return err
			}
			client, err := clientFactory()
			if err != nil {
				return err
			}
			started, err := client.StartOrder(context.Background(), &apitypes.StartOrderRequest{
				OwnerAddress: ownerAddress,
				OrderID:      apitypes.NumericID(orderID),
			})
			if err != nil {
				return err
			}
			printJSON(started)
			return nil
		},
	}
	clientStartOrderCmd.Flags().StringVarP(&ownerAddress, "owner", "o", "", "The address that owns the order and signs the transaction")
	clientStartOrderCmd.Flags().StringVarP(&orderID, "order", "", "", "The order to start")
	return clientStartOrderCmd
}
