// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package exec

import (
	"fmt"

	"github.com/getraildata/raildeploy/internal/pkg/term/color"
	"github.com/getraildata/raildeploy/internal/pkg/version"
)

const coreToolsInstallDocs = "https://learn.microsoft.com/azure/azure-functions/functions-run-local"

// ErrFuncToolsNotFound means the Core Tools binary could not be executed.
type ErrFuncToolsNotFound struct {
	parentErr error
}

func (e *ErrFuncToolsNotFound) Error() string {
	return fmt.Sprintf("azure functions core tools are not available: %s", e.parentErr.Error())
}

// RecommendActions implements the main.actionRecommender interface.
func (e *ErrFuncToolsNotFound) RecommendActions() string {
	return fmt.Sprintf(`The publish step shells out to the %s CLI.
Install the Azure Functions Core Tools: %s`, color.HighlightCode("func"), coreToolsInstallDocs)
}

// ErrFuncToolsOutdated means the installed Core Tools cannot publish to a v4 function host.
type ErrFuncToolsOutdated struct {
	Version string
}

func (e *ErrFuncToolsOutdated) Error() string {
	return fmt.Sprintf("azure functions core tools %s are older than the minimum supported version %s", e.Version, version.MinFuncToolsVersion)
}

// RecommendActions implements the main.actionRecommender interface.
func (e *ErrFuncToolsOutdated) RecommendActions() string {
	return fmt.Sprintf("Upgrade the Azure Functions Core Tools to v4: %s", coreToolsInstallDocs)
}
