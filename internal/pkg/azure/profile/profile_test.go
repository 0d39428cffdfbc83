// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestConfig_Defaults(t *testing.T) {
	// GIVEN
	content := `[core]
output = json

[defaults]
group = ressource_emmanuel
location = germanywestcentral
`
	cfg, err := ini.Load([]byte(content))
	require.NoError(t, err)
	conf := &Config{f: cfg}

	// THEN
	require.Equal(t, "ressource_emmanuel", conf.DefaultResourceGroup())
	require.Equal(t, "germanywestcentral", conf.DefaultLocation())
}

func TestConfig_Defaults_MissingSection(t *testing.T) {
	cfg, err := ini.Load([]byte("[core]\noutput = table\n"))
	require.NoError(t, err)
	conf := &Config{f: cfg}

	require.Empty(t, conf.DefaultResourceGroup())
	require.Empty(t, conf.DefaultLocation())
}
