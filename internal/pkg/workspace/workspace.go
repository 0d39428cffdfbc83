// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package workspace contains functionality to manage the local function project directory.
// This includes reading and writing the deployment manifest and making sure the Azure
// Functions host configuration file exists before publishing.
// The typical project will be structured like:
//
//	.
//	├── function_app.py       (function entry point)
//	├── requirements.txt
//	├── host.json             (function host configuration)
//	└── raildeploy.yml        (deployment manifest)
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/getraildata/raildeploy/internal/pkg/manifest"
	"github.com/spf13/afero"
)

const (
	// HostConfigFileName is the name of the function host configuration file.
	HostConfigFileName = "host.json"

	hostConfigPerm = 0644
)

// DefaultHostConfig is the minimal host configuration written when a project has none.
const DefaultHostConfig = "{\"version\": \"2.0\"}\n"

// ErrManifestAlreadyExists means a manifest scaffold was requested in a project
// that already has one.
type ErrManifestAlreadyExists struct {
	Path string
}

func (e *ErrManifestAlreadyExists) Error() string {
	return fmt.Sprintf("manifest file %s already exists", e.Path)
}

// Workspace manages a local function project directory.
type Workspace struct {
	projectDir string
	fsUtils    *afero.Afero
}

// New returns a workspace rooted at dir, used for reading and writing to
// the user's local function project. If dir is empty the current working
// directory is used.
func New(dir string) (*Workspace, error) {
	appFs := afero.NewOsFs()
	fsUtils := &afero.Afero{Fs: appFs}

	if dir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = workingDir
	}
	exists, err := fsUtils.DirExists(dir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("project directory %s does not exist", dir)
	}
	return &Workspace{
		projectDir: dir,
		fsUtils:    fsUtils,
	}, nil
}

// ProjectDir returns the absolute path of the function project directory.
func (ws *Workspace) ProjectDir() string {
	return ws.projectDir
}

// ReadManifest returns the deployment manifest of the project.
// A project without a raildeploy.yml file gets the default manifest.
func (ws *Workspace) ReadManifest() (*manifest.Manifest, error) {
	path := filepath.Join(ws.projectDir, manifest.FileName)
	exists, err := ws.fsUtils.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("check if manifest file %s exists: %w", path, err)
	}
	if !exists {
		return manifest.Default(), nil
	}
	raw, err := ws.fsUtils.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest file %s: %w", path, err)
	}
	return manifest.Unmarshal(raw)
}

// WriteManifest scaffolds a raildeploy.yml file in the project directory.
// It refuses to overwrite an existing manifest.
func (ws *Workspace) WriteManifest(m *manifest.Manifest) (string, error) {
	path := filepath.Join(ws.projectDir, manifest.FileName)
	exists, err := ws.fsUtils.Exists(path)
	if err != nil {
		return "", fmt.Errorf("check if manifest file %s exists: %w", path, err)
	}
	if exists {
		return "", &ErrManifestAlreadyExists{Path: path}
	}
	raw, err := m.Marshal()
	if err != nil {
		return "", err
	}
	if err := ws.fsUtils.WriteFile(path, raw, hostConfigPerm); err != nil {
		return "", fmt.Errorf("write manifest file %s: %w", path, err)
	}
	return path, nil
}

// EnsureHostConfig makes sure a host.json file is present in the project directory.
// An existing file is left untouched; a missing one is created with the minimal
// default content. Returns true when the file was created.
func (ws *Workspace) EnsureHostConfig() (bool, error) {
	path := filepath.Join(ws.projectDir, HostConfigFileName)
	exists, err := ws.fsUtils.Exists(path)
	if err != nil {
		return false, fmt.Errorf("check if host configuration %s exists: %w", path, err)
	}
	if exists {
		return false, nil
	}
	if err := ws.fsUtils.WriteFile(path, []byte(DefaultHostConfig), hostConfigPerm); err != nil {
		return false, fmt.Errorf("write default host configuration %s: %w", path, err)
	}
	return true, nil
}
