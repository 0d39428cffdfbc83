// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sessions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProvider_SubscriptionID(t *testing.T) {
	t.Run("returns the subscription from the environment", func(t *testing.T) {
		t.Setenv(subscriptionEnvVar, "00000000-0000-0000-0000-000000000000")

		id, err := NewProvider().SubscriptionID()

		require.NoError(t, err)
		require.Equal(t, "00000000-0000-0000-0000-000000000000", id)
	})

	t.Run("recommends actions when the subscription is not set", func(t *testing.T) {
		t.Setenv(subscriptionEnvVar, "")

		_, err := NewProvider().SubscriptionID()

		require.EqualError(t, err, "missing subscription configuration")
		var wanted *errMissingSubscription
		require.ErrorAs(t, err, &wanted)
		require.Contains(t, wanted.RecommendActions(), "AZURE_SUBSCRIPTION_ID")
	})
}

func TestProvider_ClientOptions(t *testing.T) {
	opts := NewProvider().ClientOptions()

	require.Contains(t, opts.Telemetry.ApplicationID, "raildeploy")
}
