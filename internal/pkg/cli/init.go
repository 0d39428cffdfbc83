// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/getraildata/raildeploy/internal/pkg/azure/profile"
	"github.com/getraildata/raildeploy/internal/pkg/manifest"
	"github.com/getraildata/raildeploy/internal/pkg/term/color"
	"github.com/getraildata/raildeploy/internal/pkg/term/log"
	"github.com/getraildata/raildeploy/internal/pkg/term/prompt"
	"github.com/getraildata/raildeploy/internal/pkg/workspace"
	"github.com/spf13/cobra"
)

const (
	appNamePrompt     = "What do you want to name your function app?"
	appNamePromptHelp = "The name becomes the app's DNS label under azurewebsites.net, so it has to be globally unique."
)

type initVars struct {
	appName       string
	resourceGroup string
	location      string
	projectDir    string
}

type initOpts struct {
	initVars

	ws      manifestIniter
	profile azureProfile
	prompt  prompter

	manifestPath string
}

func newInitOpts(vars initVars) (*initOpts, error) {
	ws, err := workspace.New(vars.projectDir)
	if err != nil {
		return nil, err
	}
	cfg, err := profile.NewConfig()
	if err != nil {
		return nil, err
	}
	return &initOpts{
		initVars: vars,
		ws:       ws,
		profile:  cfg,
		prompt:   prompt.New(),
	}, nil
}

// Validate returns an error if an app name flag is given but malformed.
func (o *initOpts) Validate() error {
	if o.appName != "" {
		return validateAppName(o.appName)
	}
	return nil
}

// Ask prompts for the app name if it is not given with a flag.
func (o *initOpts) Ask() error {
	if o.appName != "" {
		return nil
	}
	name, err := o.prompt.Get(appNamePrompt, appNamePromptHelp, validateAppName,
		prompt.WithDefaultInput(manifest.Default().App))
	if err != nil {
		return fmt.Errorf("prompt for the application name: %w", err)
	}
	o.appName = name
	return nil
}

// Execute scaffolds a deployment manifest and a default host configuration in the project directory.
func (o *initOpts) Execute() error {
	mft := manifest.Default()
	mft.App = o.appName
	if o.resourceGroup != "" {
		mft.ResourceGroup = o.resourceGroup
	} else if rg := o.profile.DefaultResourceGroup(); rg != "" {
		mft.ResourceGroup = rg
	}
	if o.location != "" {
		mft.Location = o.location
	} else if loc := o.profile.DefaultLocation(); loc != "" {
		mft.Location = loc
	}
	if err := mft.Validate(); err != nil {
		return err
	}
	path, err := o.ws.WriteManifest(mft)
	if err != nil {
		return err
	}
	o.manifestPath = path
	log.Successf("Wrote the deployment manifest for %s at %s.\n", color.HighlightUserInput(mft.App), color.HighlightResource(path))
	created, err := o.ws.EnsureHostConfig()
	if err != nil {
		return err
	}
	if created {
		log.Infoln("Wrote a default host.json to the project directory.")
	}
	return nil
}

// RecommendActions suggests deploying the newly initialized app.
func (o *initOpts) RecommendActions() error {
	logRecommendedActions([]string{
		fmt.Sprintf("Update %s to rename the resources the app runs on.", color.HighlightResource(o.manifestPath)),
		fmt.Sprintf("Run %s to create the resources and publish the project.", color.HighlightCode("raildeploy deploy")),
	})
	return nil
}

// BuildInitCmd builds the command to scaffold a deployment manifest for a function project.
func BuildInitCmd() *cobra.Command {
	vars := initVars{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Creates a deployment manifest for a function project.",
		Long: `Creates a deployment manifest for a function project.

The manifest records the names of the Azure resources the app is deployed on.
A default host.json is written as well if the project does not have one.`,
		Example: `
  Create a manifest for an app named "getraildata".
  $ raildeploy init --app getraildata`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newInitOpts(vars)
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
	return cmd
}
