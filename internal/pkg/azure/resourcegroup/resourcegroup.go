// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resourcegroup provides a client to make API requests to the Azure Resource Manager resource groups service.
package resourcegroup

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

type api interface {
	CreateOrUpdate(ctx context.Context, resourceGroupName string, parameters armresources.ResourceGroup, options *armresources.ResourceGroupsClientCreateOrUpdateOptions) (armresources.ResourceGroupsClientCreateOrUpdateResponse, error)
}

// ResourceGroups wraps an Azure resource groups client.
type ResourceGroups struct {
	client api
}

// New returns a ResourceGroups client configured against the input subscription.
func New(subscriptionID string, cred azcore.TokenCredential, opts *arm.ClientOptions) (*ResourceGroups, error) {
	client, err := armresources.NewResourceGroupsClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, fmt.Errorf("create resource groups client: %w", err)
	}
	return &ResourceGroups{
		client: client,
	}, nil
}

// Ensure creates the resource group if it does not exist yet.
// Creating an existing group with the same location is a no-op on the Azure side.
func (rg *ResourceGroups) Ensure(ctx context.Context, name, location string, tags map[string]string) error {
	params := armresources.ResourceGroup{
		Location: to.Ptr(location),
	}
	if len(tags) > 0 {
		params.Tags = make(map[string]*string, len(tags))
		for k, v := range tags {
			params.Tags[k] = to.Ptr(v)
		}
	}
	if _, err := rg.client.CreateOrUpdate(ctx, name, params, nil); err != nil {
		return fmt.Errorf("create resource group %s in %s: %w", name, location, err)
	}
	return nil
}
