// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package deploy orchestrates provisioning the Azure resources backing a
// function app and publishing the local function project to it.
package deploy

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/dustin/go-humanize/english"
	"github.com/getraildata/raildeploy/internal/pkg/azure/appservice"
	"github.com/getraildata/raildeploy/internal/pkg/manifest"
	"github.com/getraildata/raildeploy/internal/pkg/term/color"
	"github.com/getraildata/raildeploy/internal/pkg/term/log"
	"github.com/google/uuid"
	"github.com/xlab/treeprint"
)

const domainSuffix = ".azurewebsites.net"

// Tags set on the resource group so deployments can be traced back to the CLI run.
const (
	managedByTagKey    = "managed-by"
	managedByTagValue  = "raildeploy"
	deploymentIDTagKey = "raildeploy-deployment-id"
)

// defaultRetryAttempts bounds the retries around each cloud step. Steps stay
// independently retried so the overall ordering never changes.
const defaultRetryAttempts = 3

type resourceGroupEnsurer interface {
	Ensure(ctx context.Context, name, location string, tags map[string]string) error
}

type storageAccountEnsurer interface {
	Ensure(ctx context.Context, resourceGroup, name, location, sku string) (string, error)
}

type hostingPlanEnsurer interface {
	EnsurePlan(ctx context.Context, resourceGroup, name, location, sku string) (string, error)
}

type functionAppEnsurer interface {
	EnsureFunctionApp(ctx context.Context, in *appservice.AppInput) error
	UpdateSettings(ctx context.Context, resourceGroup, app string, settings map[string]string) error
}

type hostConfigEnsurer interface {
	EnsureHostConfig() (bool, error)
}

type publisher interface {
	CheckVersion() error
	Publish(appName, dir string, extraArgs []string) error
}

type progress interface {
	Start(label string)
	Stop(label string)
}

// Deployer runs the provisioning steps of a function app in a fixed order,
// stopping at the first failure.
type Deployer struct {
	mft         *manifest.Manifest
	projectDir  string
	publishArgs []string

	groups   resourceGroupEnsurer
	accounts storageAccountEnsurer
	plans    hostingPlanEnsurer
	apps     functionAppEnsurer
	ws       hostConfigEnsurer
	tools    publisher
	prog     progress

	deploymentID  string
	retryAttempts uint
}

// Input holds everything a Deployer needs to provision and publish a function app.
type Input struct {
	Manifest    *manifest.Manifest
	ProjectDir  string
	PublishArgs []string

	ResourceGroups  resourceGroupEnsurer
	StorageAccounts storageAccountEnsurer
	Plans           hostingPlanEnsurer
	Apps            functionAppEnsurer
	Workspace       hostConfigEnsurer
	Publisher       publisher
	Progress        progress
}

// Report describes the outcome of a successful deployment.
type Report struct {
	App               string
	ResourceGroup     string
	Location          string
	StorageAccount    string
	Plan              string
	PlanSKU           string
	DeploymentID      string
	CreatedHostConfig bool
}

// NewDeployer returns a Deployer with a fresh deployment id.
func NewDeployer(in *Input) *Deployer {
	return &Deployer{
		mft:           in.Manifest,
		projectDir:    in.ProjectDir,
		publishArgs:   in.PublishArgs,
		groups:        in.ResourceGroups,
		accounts:      in.StorageAccounts,
		plans:         in.Plans,
		apps:          in.Apps,
		ws:            in.Workspace,
		tools:         in.Publisher,
		prog:          in.Progress,
		deploymentID:  uuid.NewString(),
		retryAttempts: defaultRetryAttempts,
	}
}

// AppURL returns the public endpoint of a function app. The URL follows from
// the app name alone, it is never read back from the cloud.
func AppURL(app string) string {
	return fmt.Sprintf("https://%s%s", app, domainSuffix)
}

// Run executes the deployment procedure: resource group, storage account,
// hosting plan, function app, application settings, host configuration,
// publish. The first failing step aborts the run.
func (d *Deployer) Run(ctx context.Context) (*Report, error) {
	mft := d.mft

	if err := d.ensureStep(ctx,
		fmt.Sprintf("Ensuring resource group %s in %s", color.HighlightResource(mft.ResourceGroup), mft.Location),
		fmt.Sprintf("Ensured resource group %s.", color.HighlightResource(mft.ResourceGroup)),
		func(ctx context.Context) error {
			return d.groups.Ensure(ctx, mft.ResourceGroup, mft.Location, d.tags())
		}); err != nil {
		return nil, err
	}

	var connString string
	if err := d.ensureStep(ctx,
		fmt.Sprintf("Ensuring storage account %s", color.HighlightResource(mft.Storage.Name)),
		fmt.Sprintf("Ensured storage account %s.", color.HighlightResource(mft.Storage.Name)),
		func(ctx context.Context) error {
			var err error
			connString, err = d.accounts.Ensure(ctx, mft.ResourceGroup, mft.Storage.Name, mft.Location, mft.Storage.SKU)
			return err
		}); err != nil {
		return nil, err
	}

	var planID string
	if err := d.ensureStep(ctx,
		fmt.Sprintf("Ensuring hosting plan %s (%s, Linux)", color.HighlightResource(mft.Plan.Name), mft.Plan.SKU),
		fmt.Sprintf("Ensured hosting plan %s.", color.HighlightResource(mft.Plan.Name)),
		func(ctx context.Context) error {
			var err error
			planID, err = d.plans.EnsurePlan(ctx, mft.ResourceGroup, mft.Plan.Name, mft.Location, mft.Plan.SKU)
			return err
		}); err != nil {
		return nil, err
	}

	if err := d.ensureStep(ctx,
		fmt.Sprintf("Ensuring function app %s (%s %s)", color.HighlightResource(mft.App), mft.Runtime.Language, mft.Runtime.Version),
		fmt.Sprintf("Ensured function app %s.", color.HighlightResource(mft.App)),
		func(ctx context.Context) error {
			return d.apps.EnsureFunctionApp(ctx, &appservice.AppInput{
				Name:                    mft.App,
				ResourceGroup:           mft.ResourceGroup,
				Location:                mft.Location,
				PlanID:                  planID,
				StorageConnectionString: connString,
				Runtime:                 mft.Runtime.Language,
				RuntimeVersion:          mft.Runtime.Version,
				FunctionsVersion:        mft.Runtime.FunctionsVersion,
			})
		}); err != nil {
		return nil, err
	}

	if err := d.ensureStep(ctx,
		fmt.Sprintf("Applying %s to %s", english.Plural(len(mft.Settings), "application setting", ""), color.HighlightResource(mft.App)),
		fmt.Sprintf("Applied %s to %s.", english.Plural(len(mft.Settings), "application setting", ""), color.HighlightResource(mft.App)),
		func(ctx context.Context) error {
			return d.apps.UpdateSettings(ctx, mft.ResourceGroup, mft.App, mft.Settings)
		}); err != nil {
		return nil, err
	}

	createdHostConfig, err := d.ws.EnsureHostConfig()
	if err != nil {
		return nil, err
	}
	if createdHostConfig {
		log.Infoln("Wrote a default host.json to the project directory.")
	}

	if err := d.publish(); err != nil {
		return nil, err
	}

	return &Report{
		App:               mft.App,
		ResourceGroup:     mft.ResourceGroup,
		Location:          mft.Location,
		StorageAccount:    mft.Storage.Name,
		Plan:              mft.Plan.Name,
		PlanSKU:           mft.Plan.SKU,
		DeploymentID:      d.deploymentID,
		CreatedHostConfig: createdHostConfig,
	}, nil
}

// ensureStep renders progress around fn and retries transient cloud failures.
func (d *Deployer) ensureStep(ctx context.Context, startLabel, doneLabel string, fn func(ctx context.Context) error) error {
	d.prog.Start(startLabel)
	err := retry.Do(
		func() error {
			return fn(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(d.retryAttempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		d.prog.Stop(log.Serrorf("%s\n", startLabel))
		return err
	}
	d.prog.Stop(log.Ssuccessf("%s\n", doneLabel))
	return nil
}

func (d *Deployer) publish() error {
	if err := d.tools.CheckVersion(); err != nil {
		return err
	}
	d.prog.Start(fmt.Sprintf("Publishing function project to %s", color.HighlightResource(d.mft.App)))
	if err := d.tools.Publish(d.mft.App, d.projectDir, d.publishArgs); err != nil {
		d.prog.Stop(log.Serrorf("Failed to publish function project to %s.\n", color.HighlightResource(d.mft.App)))
		return err
	}
	d.prog.Stop(log.Ssuccessf("Published function project to %s.\n", color.HighlightResource(d.mft.App)))
	return nil
}

func (d *Deployer) tags() map[string]string {
	return map[string]string{
		managedByTagKey:    managedByTagValue,
		deploymentIDTagKey: d.deploymentID,
	}
}

// URL returns the public endpoint of the deployed function app.
func (r *Report) URL() string {
	return AppURL(r.App)
}

// Tree renders the deployed resources as a tree for the final summary.
func (r *Report) Tree() string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%s (%s)", r.App, r.URL()))
	tree.AddNode(fmt.Sprintf("resource group: %s (%s)", r.ResourceGroup, r.Location))
	tree.AddNode(fmt.Sprintf("storage account: %s", r.StorageAccount))
	tree.AddNode(fmt.Sprintf("hosting plan: %s (%s)", r.Plan, r.PlanSKU))
	return tree.String()
}
