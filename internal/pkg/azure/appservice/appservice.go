// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package appservice provides a client to make API requests to the Azure App Service
// resource provider: hosting plans, function apps and their application settings.
package appservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armappservice "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"
)

// Kinds reported to the resource provider for Linux function hosting.
const (
	linuxPlanKind        = "linux"
	linuxFunctionAppKind = "functionapp,linux"
)

type plansAPI interface {
	BeginCreateOrUpdate(ctx context.Context, resourceGroupName, name string, appServicePlan armappservice.Plan, options *armappservice.PlansClientBeginCreateOrUpdateOptions) (*runtime.Poller[armappservice.PlansClientCreateOrUpdateResponse], error)
}

type webAppsAPI interface {
	BeginCreateOrUpdate(ctx context.Context, resourceGroupName, name string, siteEnvelope armappservice.Site, options *armappservice.WebAppsClientBeginCreateOrUpdateOptions) (*runtime.Poller[armappservice.WebAppsClientCreateOrUpdateResponse], error)
	ListApplicationSettings(ctx context.Context, resourceGroupName, name string, options *armappservice.WebAppsClientListApplicationSettingsOptions) (armappservice.WebAppsClientListApplicationSettingsResponse, error)
	UpdateApplicationSettings(ctx context.Context, resourceGroupName, name string, appSettings armappservice.StringDictionary, options *armappservice.WebAppsClientUpdateApplicationSettingsOptions) (armappservice.WebAppsClientUpdateApplicationSettingsResponse, error)
}

// AppService wraps the Azure hosting plan and web apps clients.
type AppService struct {
	plans   plansAPI
	webApps webAppsAPI
}

// AppInput holds the configuration to create a function app.
type AppInput struct {
	Name                    string
	ResourceGroup           string
	Location                string
	PlanID                  string
	StorageConnectionString string
	Runtime                 string // language of the function host, e.g. "python".
	RuntimeVersion          string // language version, e.g. "3.11".
	FunctionsVersion        string // function host major version, e.g. "4".
}

// New returns an AppService client configured against the input subscription.
func New(subscriptionID string, cred azcore.TokenCredential, opts *arm.ClientOptions) (*AppService, error) {
	plans, err := armappservice.NewPlansClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, fmt.Errorf("create hosting plans client: %w", err)
	}
	webApps, err := armappservice.NewWebAppsClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, fmt.Errorf("create web apps client: %w", err)
	}
	return &AppService{
		plans:   plans,
		webApps: webApps,
	}, nil
}

// EnsurePlan creates the Linux hosting plan if it does not exist yet and waits
// for it to be provisioned. It returns the plan's resource id, which the
// function app creation step binds to.
func (a *AppService) EnsurePlan(ctx context.Context, resourceGroup, name, location, sku string) (string, error) {
	poller, err := a.plans.BeginCreateOrUpdate(ctx, resourceGroup, name, armappservice.Plan{
		Location: to.Ptr(location),
		Kind:     to.Ptr(linuxPlanKind),
		SKU: &armappservice.SKUDescription{
			Name: to.Ptr(sku),
			Tier: to.Ptr(planTier(sku)),
		},
		Properties: &armappservice.PlanProperties{
			// Linux plans are modeled as "reserved" by the resource provider.
			Reserved: to.Ptr(true),
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("create hosting plan %s: %w", name, err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("wait for hosting plan %s to be provisioned: %w", name, err)
	}
	if resp.ID == nil {
		return "", fmt.Errorf("hosting plan %s has no resource id", name)
	}
	return *resp.ID, nil
}

// EnsureFunctionApp creates the function app if it does not exist yet, bound to
// the given hosting plan and storage account, and waits for it to be provisioned.
func (a *AppService) EnsureFunctionApp(ctx context.Context, in *AppInput) error {
	poller, err := a.webApps.BeginCreateOrUpdate(ctx, in.ResourceGroup, in.Name, armappservice.Site{
		Location: to.Ptr(in.Location),
		Kind:     to.Ptr(linuxFunctionAppKind),
		Properties: &armappservice.SiteProperties{
			ServerFarmID: to.Ptr(in.PlanID),
			Reserved:     to.Ptr(true),
			SiteConfig: &armappservice.SiteConfig{
				LinuxFxVersion: to.Ptr(linuxFxVersion(in.Runtime, in.RuntimeVersion)),
				AppSettings:    baseAppSettings(in),
			},
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("create function app %s: %w", in.Name, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("wait for function app %s to be provisioned: %w", in.Name, err)
	}
	return nil
}

// UpdateSettings applies the key/value pairs on top of the app's existing
// application settings. Existing keys not present in settings are preserved,
// matching the behavior of "az functionapp config appsettings set".
func (a *AppService) UpdateSettings(ctx context.Context, resourceGroup, app string, settings map[string]string) error {
	existing, err := a.webApps.ListApplicationSettings(ctx, resourceGroup, app, nil)
	if err != nil {
		return fmt.Errorf("list application settings of %s: %w", app, err)
	}
	merged := existing.Properties
	if merged == nil {
		merged = make(map[string]*string, len(settings))
	}
	for k, v := range settings {
		merged[k] = to.Ptr(v)
	}
	if _, err := a.webApps.UpdateApplicationSettings(ctx, resourceGroup, app, armappservice.StringDictionary{
		Properties: merged,
	}, nil); err != nil {
		return fmt.Errorf("update application settings of %s: %w", app, err)
	}
	return nil
}

// baseAppSettings are the settings a function app cannot start without: the
// storage binding, the worker runtime and the function host version.
func baseAppSettings(in *AppInput) []*armappservice.NameValuePair {
	return []*armappservice.NameValuePair{
		{
			Name:  to.Ptr("AzureWebJobsStorage"),
			Value: to.Ptr(in.StorageConnectionString),
		},
		{
			Name:  to.Ptr("FUNCTIONS_WORKER_RUNTIME"),
			Value: to.Ptr(in.Runtime),
		},
		{
			Name:  to.Ptr("FUNCTIONS_EXTENSION_VERSION"),
			Value: to.Ptr(fmt.Sprintf("~%s", in.FunctionsVersion)),
		},
	}
}

// linuxFxVersion formats the runtime stack identifier of a Linux site, e.g. "Python|3.11".
func linuxFxVersion(lang, version string) string {
	var stack string
	switch strings.ToLower(lang) {
	case "python":
		stack = "Python"
	case "node":
		stack = "Node"
	case "java":
		stack = "Java"
	case "dotnet", "dotnet-isolated":
		stack = "DOTNET-ISOLATED"
	case "powershell":
		stack = "PowerShell"
	default:
		stack = lang
	}
	return fmt.Sprintf("%s|%s", stack, version)
}

// planTier maps a SKU name to its pricing tier, e.g. "B1" to "Basic".
func planTier(sku string) string {
	upper := strings.ToUpper(sku)
	switch {
	case upper == "Y1":
		return "Dynamic"
	case strings.HasPrefix(upper, "EP"):
		return "ElasticPremium"
	case strings.HasPrefix(upper, "B"):
		return "Basic"
	case strings.HasPrefix(upper, "S"):
		return "Standard"
	case strings.HasPrefix(upper, "P"):
		return "Premium"
	case strings.HasPrefix(upper, "F"):
		return "Free"
	default:
		return "Basic"
	}
}
