// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

// Long flag names.
const (
	appFlag           = "app"
	resourceGroupFlag = "resource-group"
	locationFlag      = "location"
	projectDirFlag    = "project-dir"
	funcArgsFlag      = "func-args"
	yesFlag           = "yes"
)

// Short flag names.
const (
	appFlagShort           = "a"
	resourceGroupFlagShort = "g"
	locationFlagShort      = "l"
)

// Descriptions for flags.
var (
	appFlagDescription           = "Name of the function app."
	resourceGroupFlagDescription = "Name of the resource group that holds the app's resources."
	locationFlagDescription      = "Azure region the resources are created in."
	projectDirFlagDescription    = "Path to the function project. Defaults to the working directory."
	funcArgsFlagDescription      = "Additional arguments passed to the Functions Core Tools on publish."
	yesFlagDescription           = "Skips confirmation prompt."
)
