// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/getraildata/raildeploy/internal/pkg/term/color"
)

type errDeployCancelled struct{}

func (e *errDeployCancelled) Error() string {
	return "deployment cancelled: no resources created or changed"
}

// RecommendActions implements the main.actionRecommender interface.
func (e *errDeployCancelled) RecommendActions() string {
	return fmt.Sprintf("Run %s to deploy without a confirmation prompt.", color.HighlightCode("raildeploy deploy --yes"))
}
