// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"path/filepath"
	"testing"

	"github.com/getraildata/raildeploy/internal/pkg/manifest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/project", 0755))
	return &Workspace{
		projectDir: "/project",
		fsUtils:    &afero.Afero{Fs: fs},
	}
}

func TestWorkspace_EnsureHostConfig(t *testing.T) {
	t.Run("creates host.json with the default content when absent", func(t *testing.T) {
		ws := newTestWorkspace(t)

		created, err := ws.EnsureHostConfig()

		require.NoError(t, err)
		require.True(t, created)
		content, err := ws.fsUtils.ReadFile(filepath.Join("/project", HostConfigFileName))
		require.NoError(t, err)
		require.Equal(t, "{\"version\": \"2.0\"}\n", string(content))
	})

	t.Run("preserves an existing host.json byte for byte", func(t *testing.T) {
		ws := newTestWorkspace(t)
		existing := []byte(`{"version": "2.0", "logging": {"logLevel": {"default": "Information"}}}`)
		require.NoError(t, ws.fsUtils.WriteFile(filepath.Join("/project", HostConfigFileName), existing, 0644))

		created, err := ws.EnsureHostConfig()

		require.NoError(t, err)
		require.False(t, created)
		content, err := ws.fsUtils.ReadFile(filepath.Join("/project", HostConfigFileName))
		require.NoError(t, err)
		require.Equal(t, existing, content)
	})

	t.Run("is idempotent across runs", func(t *testing.T) {
		ws := newTestWorkspace(t)

		created, err := ws.EnsureHostConfig()
		require.NoError(t, err)
		require.True(t, created)

		created, err = ws.EnsureHostConfig()
		require.NoError(t, err)
		require.False(t, created)
	})
}

func TestWorkspace_ReadManifest(t *testing.T) {
	t.Run("returns the default manifest when raildeploy.yml is absent", func(t *testing.T) {
		ws := newTestWorkspace(t)

		m, err := ws.ReadManifest()

		require.NoError(t, err)
		require.Equal(t, manifest.Default(), m)
	})

	t.Run("reads and fills a partial manifest", func(t *testing.T) {
		ws := newTestWorkspace(t)
		raw := []byte("app: trainwatch\n")
		require.NoError(t, ws.fsUtils.WriteFile(filepath.Join("/project", manifest.FileName), raw, 0644))

		m, err := ws.ReadManifest()

		require.NoError(t, err)
		require.Equal(t, "trainwatch", m.App)
		require.Equal(t, "ressource_emmanuel", m.ResourceGroup)
	})

	t.Run("returns an error on malformed yaml", func(t *testing.T) {
		ws := newTestWorkspace(t)
		require.NoError(t, ws.fsUtils.WriteFile(filepath.Join("/project", manifest.FileName), []byte("app: [nope"), 0644))

		_, err := ws.ReadManifest()

		require.ErrorContains(t, err, "unmarshal deployment manifest")
	})
}

func TestWorkspace_WriteManifest(t *testing.T) {
	t.Run("scaffolds a manifest that round-trips", func(t *testing.T) {
		ws := newTestWorkspace(t)

		path, err := ws.WriteManifest(manifest.Default())

		require.NoError(t, err)
		require.Equal(t, filepath.Join("/project", manifest.FileName), path)
		m, err := ws.ReadManifest()
		require.NoError(t, err)
		require.Equal(t, manifest.Default(), m)
	})

	t.Run("refuses to overwrite an existing manifest", func(t *testing.T) {
		ws := newTestWorkspace(t)
		_, err := ws.WriteManifest(manifest.Default())
		require.NoError(t, err)

		_, err = ws.WriteManifest(manifest.Default())

		var wanted *ErrManifestAlreadyExists
		require.ErrorAs(t, err, &wanted)
	})
}
