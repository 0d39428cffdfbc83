// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	testCases := map[string]struct {
		inContent string

		wantedManifest *Manifest
		wantedErrMsg   string
	}{
		"fills every field from the defaults on an empty manifest": {
			inContent: "",

			wantedManifest: Default(),
		},
		"keeps provided values and fills the rest": {
			inContent: `
app: trainwatch
location: westeurope
storage:
  name: trainwatchstore
settings:
  SqlConnectionString: Server=tcp:sql.example.com;Database=liveboard
`,
			wantedManifest: &Manifest{
				App:           "trainwatch",
				ResourceGroup: "ressource_emmanuel",
				Location:      "westeurope",
				Storage: Storage{
					Name: "trainwatchstore",
					SKU:  "Standard_LRS",
				},
				Plan: Plan{
					Name: "getraildata-plan",
					SKU:  "B1",
				},
				Runtime: Runtime{
					Language:         "python",
					Version:          "3.11",
					FunctionsVersion: "4",
				},
				Settings: map[string]string{
					"AzureWebJobsFeatureFlags":       "EnableWorkerIndexing",
					"SCM_DO_BUILD_DURING_DEPLOYMENT": "true",
					"SqlConnectionString":            "Server=tcp:sql.example.com;Database=liveboard",
				},
			},
		},
		"user settings override the built-in defaults": {
			inContent: `
settings:
  SCM_DO_BUILD_DURING_DEPLOYMENT: "false"
`,
			wantedManifest: func() *Manifest {
				m := Default()
				m.Settings["SCM_DO_BUILD_DURING_DEPLOYMENT"] = "false"
				return m
			}(),
		},
		"returns a wrapped error on malformed yaml": {
			inContent: "app: [nope",

			wantedErrMsg: "unmarshal deployment manifest",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// WHEN
			m, err := Unmarshal([]byte(tc.inContent))

			// THEN
			if tc.wantedErrMsg != "" {
				require.ErrorContains(t, err, tc.wantedErrMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedManifest, m)
		})
	}
}

func TestManifest_Validate(t *testing.T) {
	testCases := map[string]struct {
		mutate func(m *Manifest)

		wantedErrMsg string
	}{
		"default manifest is valid": {
			mutate: func(m *Manifest) {},
		},
		"missing app name": {
			mutate: func(m *Manifest) {
				m.App = ""
			},
			wantedErrMsg: "application name is required",
		},
		"missing resource group": {
			mutate: func(m *Manifest) {
				m.ResourceGroup = ""
			},
			wantedErrMsg: "resource group name is required",
		},
		"missing location": {
			mutate: func(m *Manifest) {
				m.Location = ""
			},
			wantedErrMsg: "location is required",
		},
		"storage account name with upper-case characters": {
			mutate: func(m *Manifest) {
				m.Storage.Name = "iRailStorage001"
			},
			wantedErrMsg: `storage account name "iRailStorage001"`,
		},
		"storage account name too short": {
			mutate: func(m *Manifest) {
				m.Storage.Name = "ir"
			},
			wantedErrMsg: `storage account name "ir"`,
		},
		"missing plan name": {
			mutate: func(m *Manifest) {
				m.Plan.Name = ""
			},
			wantedErrMsg: "hosting plan name is required",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			m := Default()
			tc.mutate(m)

			err := m.Validate()

			if tc.wantedErrMsg != "" {
				require.ErrorContains(t, err, tc.wantedErrMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestManifest_Marshal(t *testing.T) {
	m := Default()

	out, err := m.Marshal()
	require.NoError(t, err)

	roundTripped, err := Unmarshal(out)
	require.NoError(t, err)
	require.Equal(t, m, roundTripped)
}
