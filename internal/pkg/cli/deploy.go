// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/getraildata/raildeploy/internal/pkg/azure/appservice"
	"github.com/getraildata/raildeploy/internal/pkg/azure/profile"
	"github.com/getraildata/raildeploy/internal/pkg/azure/resourcegroup"
	"github.com/getraildata/raildeploy/internal/pkg/azure/sessions"
	"github.com/getraildata/raildeploy/internal/pkg/azure/storage"
	"github.com/getraildata/raildeploy/internal/pkg/deploy"
	"github.com/getraildata/raildeploy/internal/pkg/exec"
	"github.com/getraildata/raildeploy/internal/pkg/manifest"
	"github.com/getraildata/raildeploy/internal/pkg/term/color"
	"github.com/getraildata/raildeploy/internal/pkg/term/log"
	"github.com/getraildata/raildeploy/internal/pkg/term/progress"
	"github.com/getraildata/raildeploy/internal/pkg/term/prompt"
	"github.com/getraildata/raildeploy/internal/pkg/workspace"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

type deployVars struct {
	appName       string
	resourceGroup string
	location      string
	projectDir    string
	funcArgs      string
	skipConfirm   bool
}

type deployOpts struct {
	deployVars

	ws      manifestReader
	profile azureProfile
	prompt  prompter

	// Derived while validating.
	mft         *manifest.Manifest
	publishArgs []string

	newDeployer func(o *deployOpts) (deployRunner, error)
}

func newDeployOpts(vars deployVars) (*deployOpts, error) {
	ws, err := workspace.New(vars.projectDir)
	if err != nil {
		return nil, err
	}
	cfg, err := profile.NewConfig()
	if err != nil {
		return nil, err
	}
	return &deployOpts{
		deployVars:  vars,
		ws:          ws,
		profile:     cfg,
		prompt:      prompt.New(),
		newDeployer: newDeployer,
	}, nil
}

func newDeployer(o *deployOpts) (deployRunner, error) {
	sess := sessions.NewProvider()
	cred, err := sess.Credential()
	if err != nil {
		return nil, err
	}
	subID, err := sess.SubscriptionID()
	if err != nil {
		return nil, err
	}
	clientOpts := sess.ClientOptions()
	groups, err := resourcegroup.New(subID, cred, clientOpts)
	if err != nil {
		return nil, err
	}
	accounts, err := storage.New(subID, cred, clientOpts)
	if err != nil {
		return nil, err
	}
	apps, err := appservice.New(subID, cred, clientOpts)
	if err != nil {
		return nil, err
	}
	return deploy.NewDeployer(&deploy.Input{
		Manifest:        o.mft,
		ProjectDir:      o.ws.ProjectDir(),
		PublishArgs:     o.publishArgs,
		ResourceGroups:  groups,
		StorageAccounts: accounts,
		Plans:           apps,
		Apps:            apps,
		Workspace:       o.ws,
		Publisher:       exec.NewFuncTools(),
		Progress:        progress.NewSpinner(os.Stderr),
	}), nil
}

// Validate loads the manifest, layers the flag overrides on top of it, and
// parses any extra publish arguments.
func (o *deployOpts) Validate() error {
	if o.funcArgs != "" {
		args, err := shlex.Split(o.funcArgs)
		if err != nil {
			return fmt.Errorf("parse --%s: %w", funcArgsFlag, err)
		}
		o.publishArgs = args
	}
	mft, err := o.ws.ReadManifest()
	if err != nil {
		return err
	}
	o.applyOverrides(mft)
	if err := mft.Validate(); err != nil {
		return err
	}
	o.mft = mft
	return nil
}

// applyOverrides resolves the app name, resource group, and location.
// Flags win over the manifest; the signed-in profile's defaults win over
// the built-in ones.
func (o *deployOpts) applyOverrides(mft *manifest.Manifest) {
	def := manifest.Default()
	if o.appName != "" {
		mft.App = o.appName
	}
	switch {
	case o.resourceGroup != "":
		mft.ResourceGroup = o.resourceGroup
	case mft.ResourceGroup == def.ResourceGroup:
		if rg := o.profile.DefaultResourceGroup(); rg != "" {
			mft.ResourceGroup = rg
		}
	}
	switch {
	case o.location != "":
		mft.Location = o.location
	case mft.Location == def.Location:
		if loc := o.profile.DefaultLocation(); loc != "" {
			mft.Location = loc
		}
	}
}

// Ask confirms the deployment unless --yes is given.
func (o *deployOpts) Ask() error {
	if o.skipConfirm {
		return nil
	}
	deployConfirmed, err := o.prompt.Confirm(
		fmt.Sprintf("Deploy %s to %s in %s?",
			color.HighlightUserInput(o.mft.App),
			color.HighlightUserInput(o.mft.ResourceGroup),
			color.HighlightUserInput(o.mft.Location)),
		"Missing resources are created and the function project is published.",
		prompt.WithTrueDefault())
	if err != nil {
		return fmt.Errorf("confirm deployment: %w", err)
	}
	if !deployConfirmed {
		return &errDeployCancelled{}
	}
	return nil
}

// Execute provisions the app's resources and publishes the project to it.
func (o *deployOpts) Execute() error {
	deployer, err := o.newDeployer(o)
	if err != nil {
		return err
	}
	report, err := deployer.Run(context.Background())
	if err != nil {
		return err
	}
	log.Successf("Deployed %s.\n\n", color.HighlightUserInput(report.App))
	log.Infoln(report.Tree())
	log.Infof("Your function app is live at %s.\n", color.Emphasize(report.URL()))
	return nil
}

// RecommendActions suggests what to do after a deployment.
func (o *deployOpts) RecommendActions() error {
	logRecommendedActions([]string{
		fmt.Sprintf("Stream the app's logs with %s.",
			color.HighlightCode(fmt.Sprintf("func azure functionapp logstream %s", o.mft.App))),
		fmt.Sprintf("List the deployed functions with %s.",
			color.HighlightCode(fmt.Sprintf("func azure functionapp list-functions %s", o.mft.App))),
	})
	return nil
}

// BuildDeployCmd builds the command to provision a function app and publish the project to it.
func BuildDeployCmd() *cobra.Command {
	vars := deployVars{}
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Provisions a function app's Azure resources and publishes the project.",
		Long: `Provisions a function app's Azure resources and publishes the project.

Creates the resource group, storage account, and Linux hosting plan if they
do not exist, configures the function app on top of them, and publishes the
local project with the Azure Functions Core Tools.`,
		Example: `
  Deploy with the settings from raildeploy.yml.
  $ raildeploy deploy
  Deploy to a different region without confirmation.
  $ raildeploy deploy --location westeurope --yes`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newDeployOpts(vars)
			if err != nil {
				return err
			}
			return run(opts)
		}),
	}
	cmd.Flags().StringVarP(&vars.appName, appFlag, appFlagShort, "", appFlagDescription)
	cmd.Flags().StringVarP(&vars.resourceGroup, resourceGroupFlag, resourceGroupFlagShort, "", resourceGroupFlagDescription)
	cmd.Flags().StringVarP(&vars.location, locationFlag, locationFlagShort, "", locationFlagDescription)
	cmd.Flags().StringVar(&vars.projectDir, projectDirFlag, "", projectDirFlagDescription)
	cmd.Flags().StringVar(&vars.funcArgs, funcArgsFlag, "", funcArgsFlagDescription)
	cmd.Flags().BoolVar(&vars.skipConfirm, yesFlag, false, yesFlagDescription)
	return cmd
}
