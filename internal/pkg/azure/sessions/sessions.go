// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sessions provides credentials and client options to use with the Azure SDK.
package sessions

import (
	"fmt"
	"os"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/getraildata/raildeploy/internal/pkg/version"
)

const subscriptionEnvVar = "AZURE_SUBSCRIPTION_ID"

// Provider vends the credential and subscription shared by every Azure client.
// The credential is created once and cached.
type Provider struct {
	cred azcore.TokenCredential
}

var instance *Provider
var once sync.Once

// NewProvider returns a session Provider singleton.
func NewProvider() *Provider {
	once.Do(func() {
		instance = &Provider{}
	})
	return instance
}

// Credential returns a token credential resolved through the default Azure
// chain: environment variables, workload identity, managed identity, then
// the az CLI login.
func (p *Provider) Credential() (azcore.TokenCredential, error) {
	if p.cred != nil {
		return p.cred, nil
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, &errCredRetrieval{parentErr: err}
	}
	p.cred = cred
	return cred, nil
}

// SubscriptionID returns the target subscription from the environment.
func (p *Provider) SubscriptionID() (string, error) {
	id := os.Getenv(subscriptionEnvVar)
	if id == "" {
		return "", &errMissingSubscription{}
	}
	return id, nil
}

// ClientOptions returns the options every resource-management client is created with.
func (p *Provider) ClientOptions() *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Telemetry: policy.TelemetryOptions{
				ApplicationID: userAgent(),
			},
		},
	}
}

func userAgent() string {
	if version.Version == "" {
		return "raildeploy"
	}
	return fmt.Sprintf("raildeploy/%s", version.Version)
}
