// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sessions

import (
	"fmt"

	"github.com/getraildata/raildeploy/internal/pkg/term/color"
)

type errMissingSubscription struct{}

// Implements error interface.
func (e *errMissingSubscription) Error() string {
	return "missing subscription configuration"
}

// RecommendActions returns recommended actions to be taken after the error.
// Implements main.actionRecommender interface.
func (e *errMissingSubscription) RecommendActions() string {
	return fmt.Sprintf(`It looks like no target subscription is configured.
- Run %s to list the subscriptions your account has access to.
- Then run %s to point raildeploy at one of them.`,
		color.HighlightCode("az account list --output table"),
		color.HighlightCode("export AZURE_SUBSCRIPTION_ID=<subscription id>"))
}

type errCredRetrieval struct {
	parentErr error
}

// Implements error interface.
func (e *errCredRetrieval) Error() string {
	return e.parentErr.Error()
}

// RecommendActions returns recommended actions to be taken after the error.
// Implements main.actionRecommender interface.
func (e *errCredRetrieval) RecommendActions() string {
	return fmt.Sprintf(`It looks like your Azure credential settings are misconfigured or missing.
- We recommend signing in with %s.
- Alternatively, set the AZURE_CLIENT_ID, AZURE_TENANT_ID and AZURE_CLIENT_SECRET environment variables for a service principal.`,
		color.HighlightCode("az login"))
}
