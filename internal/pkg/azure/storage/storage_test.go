// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/getraildata/raildeploy/internal/pkg/azure/storage/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestAccounts_Ensure_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockError := errors.New("some error")
	mockClient := mocks.NewMockapi(ctrl)
	mockClient.EXPECT().BeginCreate(gomock.Any(), "ressource_emmanuel", "irailstorage001", armstorage.AccountCreateParameters{
		Location: to.Ptr("germanywestcentral"),
		Kind:     to.Ptr(armstorage.KindStorageV2),
		SKU: &armstorage.SKU{
			Name: to.Ptr(armstorage.SKUNameStandardLRS),
		},
	}, nil).Return(nil, mockError)

	a := &Accounts{client: mockClient}

	_, err := a.Ensure(context.Background(), "ressource_emmanuel", "irailstorage001", "germanywestcentral", "Standard_LRS")

	require.EqualError(t, err, "create storage account irailstorage001: some error")
}

func TestAccounts_ConnectionString(t *testing.T) {
	mockError := errors.New("some error")

	testCases := map[string]struct {
		setupMocks func(m *mocks.Mockapi)

		wantedConnString string
		wantedErrMsg     string
	}{
		"derives the connection string from the first key": {
			setupMocks: func(m *mocks.Mockapi) {
				m.EXPECT().ListKeys(gomock.Any(), "ressource_emmanuel", "irailstorage001", nil).
					Return(armstorage.AccountsClientListKeysResponse{
						AccountListKeysResult: armstorage.AccountListKeysResult{
							Keys: []*armstorage.AccountKey{
								{KeyName: to.Ptr("key1"), Value: to.Ptr("c2VjcmV0")},
								{KeyName: to.Ptr("key2"), Value: to.Ptr("b3RoZXI=")},
							},
						},
					}, nil)
			},
			wantedConnString: "DefaultEndpointsProtocol=https;AccountName=irailstorage001;AccountKey=c2VjcmV0;EndpointSuffix=core.windows.net",
		},
		"errors when the account has no keys": {
			setupMocks: func(m *mocks.Mockapi) {
				m.EXPECT().ListKeys(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(armstorage.AccountsClientListKeysResponse{}, nil)
			},
			wantedErrMsg: "storage account irailstorage001 has no access keys",
		},
		"wraps error from the API call": {
			setupMocks: func(m *mocks.Mockapi) {
				m.EXPECT().ListKeys(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(armstorage.AccountsClientListKeysResponse{}, mockError)
			},
			wantedErrMsg: "list access keys for storage account irailstorage001: some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockapi(ctrl)
			tc.setupMocks(mockClient)
			a := &Accounts{client: mockClient}

			// WHEN
			connString, err := a.connectionString(context.Background(), "ressource_emmanuel", "irailstorage001")

			// THEN
			if tc.wantedErrMsg != "" {
				require.EqualError(t, err, tc.wantedErrMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedConnString, connString)
		})
	}
}
