// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/getraildata/raildeploy/internal/pkg/cli/mocks"
	"github.com/getraildata/raildeploy/internal/pkg/deploy"
	"github.com/getraildata/raildeploy/internal/pkg/manifest"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestDeployOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inVars     deployVars
		setupMocks func(ws *mocks.MockmanifestReader, cfg *mocks.MockazureProfile)

		wantedManifest    *manifest.Manifest
		wantedPublishArgs []string
		wantedErr         string
	}{
		"keeps the manifest when no flags are given": {
			setupMocks: func(ws *mocks.MockmanifestReader, cfg *mocks.MockazureProfile) {
				ws.EXPECT().ReadManifest().Return(manifest.Default(), nil)
				cfg.EXPECT().DefaultResourceGroup().Return("")
				cfg.EXPECT().DefaultLocation().Return("")
			},
			wantedManifest: manifest.Default(),
		},
		"flags win over the manifest": {
			inVars: deployVars{
				appName:       "otherapp",
				resourceGroup: "other-group",
				location:      "westeurope",
			},
			setupMocks: func(ws *mocks.MockmanifestReader, cfg *mocks.MockazureProfile) {
				ws.EXPECT().ReadManifest().Return(manifest.Default(), nil)
			},
			wantedManifest: func() *manifest.Manifest {
				m := manifest.Default()
				m.App = "otherapp"
				m.ResourceGroup = "other-group"
				m.Location = "westeurope"
				return m
			}(),
		},
		"profile defaults win over the built-in defaults": {
			setupMocks: func(ws *mocks.MockmanifestReader, cfg *mocks.MockazureProfile) {
				ws.EXPECT().ReadManifest().Return(manifest.Default(), nil)
				cfg.EXPECT().DefaultResourceGroup().Return("team-group")
				cfg.EXPECT().DefaultLocation().Return("northeurope")
			},
			wantedManifest: func() *manifest.Manifest {
				m := manifest.Default()
				m.ResourceGroup = "team-group"
				m.Location = "northeurope"
				return m
			}(),
		},
		"profile defaults do not shadow a manifest value": {
			setupMocks: func(ws *mocks.MockmanifestReader, cfg *mocks.MockazureProfile) {
				m := manifest.Default()
				m.ResourceGroup = "configured-group"
				m.Location = "francecentral"
				ws.EXPECT().ReadManifest().Return(m, nil)
			},
			wantedManifest: func() *manifest.Manifest {
				m := manifest.Default()
				m.ResourceGroup = "configured-group"
				m.Location = "francecentral"
				return m
			}(),
		},
		"splits the extra publish arguments like a shell": {
			inVars: deployVars{
				funcArgs: `--build remote --subscription "my sub"`,
			},
			setupMocks: func(ws *mocks.MockmanifestReader, cfg *mocks.MockazureProfile) {
				ws.EXPECT().ReadManifest().Return(manifest.Default(), nil)
				cfg.EXPECT().DefaultResourceGroup().Return("")
				cfg.EXPECT().DefaultLocation().Return("")
			},
			wantedManifest:    manifest.Default(),
			wantedPublishArgs: []string{"--build", "remote", "--subscription", "my sub"},
		},
		"errors on unbalanced quotes in the extra publish arguments": {
			inVars: deployVars{
				funcArgs: `--subscription "my sub`,
			},
			setupMocks: func(ws *mocks.MockmanifestReader, cfg *mocks.MockazureProfile) {},
			wantedErr:  "parse --func-args: ",
		},
		"propagates a manifest read failure": {
			setupMocks: func(ws *mocks.MockmanifestReader, cfg *mocks.MockazureProfile) {
				ws.EXPECT().ReadManifest().Return(nil, errors.New("some error"))
			},
			wantedErr: "some error",
		},
		"rejects an invalid manifest": {
			setupMocks: func(ws *mocks.MockmanifestReader, cfg *mocks.MockazureProfile) {
				m := manifest.Default()
				m.Storage.Name = "Invalid_Storage_Name"
				ws.EXPECT().ReadManifest().Return(m, nil)
				cfg.EXPECT().DefaultResourceGroup().Return("")
				cfg.EXPECT().DefaultLocation().Return("")
			},
			wantedErr: `storage account name "Invalid_Storage_Name"`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockWs := mocks.NewMockmanifestReader(ctrl)
			mockProfile := mocks.NewMockazureProfile(ctrl)
			tc.setupMocks(mockWs, mockProfile)

			opts := &deployOpts{
				deployVars: tc.inVars,
				ws:         mockWs,
				profile:    mockProfile,
			}

			// WHEN
			err := opts.Validate()

			// THEN
			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedManifest, opts.mft)
			require.Equal(t, tc.wantedPublishArgs, opts.publishArgs)
		})
	}
}

func TestDeployOpts_Ask(t *testing.T) {
	testCases := map[string]struct {
		inSkipConfirm bool
		setupMocks    func(m *mocks.Mockprompter)

		wantedErr error
	}{
		"skips the prompt with --yes": {
			inSkipConfirm: true,
			setupMocks:    func(m *mocks.Mockprompter) {},
		},
		"proceeds when the user confirms": {
			setupMocks: func(m *mocks.Mockprompter) {
				m.EXPECT().
					Confirm(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
		},
		"cancels when the user declines": {
			setupMocks: func(m *mocks.Mockprompter) {
				m.EXPECT().
					Confirm(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantedErr: &errDeployCancelled{},
		},
		"wraps a prompt failure": {
			setupMocks: func(m *mocks.Mockprompter) {
				m.EXPECT().
					Confirm(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, errors.New("some error"))
			},
			wantedErr: errors.New("confirm deployment: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPrompt := mocks.NewMockprompter(ctrl)
			tc.setupMocks(mockPrompt)

			opts := &deployOpts{
				deployVars: deployVars{
					skipConfirm: tc.inSkipConfirm,
				},
				mft:    manifest.Default(),
				prompt: mockPrompt,
			}

			// WHEN
			err := opts.Ask()

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeployOpts_Execute(t *testing.T) {
	testCases := map[string]struct {
		setupMocks func(m *mocks.MockdeployRunner) func(o *deployOpts) (deployRunner, error)

		wantedErr error
	}{
		"deploys and reports the app URL": {
			setupMocks: func(m *mocks.MockdeployRunner) func(o *deployOpts) (deployRunner, error) {
				m.EXPECT().Run(gomock.Any()).Return(&deploy.Report{
					App:           "getraildata",
					ResourceGroup: "ressource_emmanuel",
					Location:      "germanywestcentral",
				}, nil)
				return func(o *deployOpts) (deployRunner, error) {
					return m, nil
				}
			},
		},
		"propagates a client setup failure": {
			setupMocks: func(m *mocks.MockdeployRunner) func(o *deployOpts) (deployRunner, error) {
				return func(o *deployOpts) (deployRunner, error) {
					return nil, errors.New("some error")
				}
			},
			wantedErr: errors.New("some error"),
		},
		"propagates a deployment failure": {
			setupMocks: func(m *mocks.MockdeployRunner) func(o *deployOpts) (deployRunner, error) {
				m.EXPECT().Run(gomock.Any()).Return(nil, errors.New("some error"))
				return func(o *deployOpts) (deployRunner, error) {
					return m, nil
				}
			},
			wantedErr: errors.New("some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDeployer := mocks.NewMockdeployRunner(ctrl)
			newDeployer := tc.setupMocks(mockDeployer)

			opts := &deployOpts{
				mft: manifest.Default(),
				newDeployer: func(o *deployOpts) (deployRunner, error) {
					return newDeployer(o)
				},
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}
