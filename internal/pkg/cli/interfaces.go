// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"

	"github.com/getraildata/raildeploy/internal/pkg/deploy"
	"github.com/getraildata/raildeploy/internal/pkg/manifest"
	"github.com/getraildata/raildeploy/internal/pkg/term/prompt"
)

type prompter interface {
	Get(message, help string, validator prompt.ValidatorFunc, promptOpts ...prompt.Option) (string, error)
	Confirm(message, help string, promptOpts ...prompt.Option) (bool, error)
}

type manifestReader interface {
	ProjectDir() string
	ReadManifest() (*manifest.Manifest, error)
	EnsureHostConfig() (bool, error)
}

type manifestIniter interface {
	ProjectDir() string
	WriteManifest(m *manifest.Manifest) (string, error)
	EnsureHostConfig() (bool, error)
}

type deployRunner interface {
	Run(ctx context.Context) (*deploy.Report, error)
}

type azureProfile interface {
	DefaultResourceGroup() string
	DefaultLocation() string
}
