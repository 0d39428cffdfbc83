// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command, the entry point of the CLI.
package main

import (
	"errors"
	"os"

	"github.com/getraildata/raildeploy/internal/pkg/cli"
	"github.com/getraildata/raildeploy/internal/pkg/term/color"
	"github.com/getraildata/raildeploy/internal/pkg/term/log"
	"github.com/getraildata/raildeploy/internal/pkg/version"
	"github.com/spf13/cobra"
)

func init() {
	color.DisableColorBasedOnEnvVar()
	cobra.EnableCommandSorting = false
}

// actionRecommender is the interface for errors that can recommend actions to users to fix themselves.
type actionRecommender interface {
	RecommendActions() string
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Errorln(err.Error())

		var ae actionRecommender
		if errors.As(err, &ae) {
			log.Infoln(ae.RecommendActions())
		}
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raildeploy",
		Short: "Deploy a function project to Azure.",
		Example: `
  Scaffold a deployment manifest in the project directory.
  $ raildeploy init
  Provision the Azure resources and publish the project.
  $ raildeploy deploy`,
		SilenceErrors: true,
		Version:       version.Version,
	}

	cmd.AddCommand(cli.BuildInitCmd())
	cmd.AddCommand(cli.BuildDeployCmd())
	cmd.AddCommand(cli.BuildVersionCmd())
	cmd.AddCommand(cli.BuildCompletionCmd(cmd))

	cmd.SetVersionTemplate("raildeploy version: {{.Version}}\n")
	return cmd
}
