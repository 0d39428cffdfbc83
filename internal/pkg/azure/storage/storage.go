// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package storage provides a client to make API requests to the Azure Storage resource provider.
package storage

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

const connectionStringFmt = "DefaultEndpointsProtocol=https;AccountName=%s;AccountKey=%s;EndpointSuffix=core.windows.net"

type api interface {
	BeginCreate(ctx context.Context, resourceGroupName, accountName string, parameters armstorage.AccountCreateParameters, options *armstorage.AccountsClientBeginCreateOptions) (*runtime.Poller[armstorage.AccountsClientCreateResponse], error)
	ListKeys(ctx context.Context, resourceGroupName, accountName string, options *armstorage.AccountsClientListKeysOptions) (armstorage.AccountsClientListKeysResponse, error)
}

// Accounts wraps an Azure storage accounts client.
type Accounts struct {
	client api
}

// New returns an Accounts client configured against the input subscription.
func New(subscriptionID string, cred azcore.TokenCredential, opts *arm.ClientOptions) (*Accounts, error) {
	client, err := armstorage.NewAccountsClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, fmt.Errorf("create storage accounts client: %w", err)
	}
	return &Accounts{
		client: client,
	}, nil
}

// Ensure creates the storage account if it does not exist yet and waits for it
// to be provisioned. It returns the connection string the function app uses to
// bind to the account. Account names are global across Azure, so creation fails
// when the name is held by another subscription.
func (a *Accounts) Ensure(ctx context.Context, resourceGroup, name, location, sku string) (string, error) {
	poller, err := a.client.BeginCreate(ctx, resourceGroup, name, armstorage.AccountCreateParameters{
		Location: to.Ptr(location),
		Kind:     to.Ptr(armstorage.KindStorageV2),
		SKU: &armstorage.SKU{
			Name: to.Ptr(armstorage.SKUName(sku)),
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("create storage account %s: %w", name, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return "", fmt.Errorf("wait for storage account %s to be provisioned: %w", name, err)
	}
	return a.connectionString(ctx, resourceGroup, name)
}

func (a *Accounts) connectionString(ctx context.Context, resourceGroup, name string) (string, error) {
	resp, err := a.client.ListKeys(ctx, resourceGroup, name, nil)
	if err != nil {
		return "", fmt.Errorf("list access keys for storage account %s: %w", name, err)
	}
	if len(resp.Keys) == 0 || resp.Keys[0].Value == nil {
		return "", fmt.Errorf("storage account %s has no access keys", name)
	}
	return fmt.Sprintf(connectionStringFmt, name, *resp.Keys[0].Value), nil
}
