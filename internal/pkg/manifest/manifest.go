// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package manifest provides the raildeploy.yml deployment manifest:
// the names, region and runtime settings of the Azure resources backing a function app.
package manifest

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/imdario/mergo"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the deployment manifest inside a function project directory.
const FileName = "raildeploy.yml"

// Default configuration values applied when the manifest omits a field.
const (
	defaultApp           = "getraildata"
	defaultResourceGroup = "ressource_emmanuel"
	defaultLocation      = "germanywestcentral"
	defaultStorageName   = "irailstorage001"
	defaultStorageSKU    = "Standard_LRS"
	defaultPlanName      = "getraildata-plan"
	defaultPlanSKU       = "B1"
	defaultRuntime       = "python"
	defaultRuntimeVer    = "3.11"
	defaultFuncsVersion  = "4"
)

// Settings applied to every function app so that remote builds and worker
// indexing behave the same across deployments.
var defaultSettings = map[string]string{
	"AzureWebJobsFeatureFlags":       "EnableWorkerIndexing",
	"SCM_DO_BUILD_DURING_DEPLOYMENT": "true",
}

// Storage account names must be 3-24 lowercase alphanumeric characters and globally unique.
var storageNameRegexp = regexp.MustCompile(`^[a-z0-9]{3,24}$`)

// Manifest represents the contents of a raildeploy.yml file.
type Manifest struct {
	App           string            `yaml:"app"`
	ResourceGroup string            `yaml:"resource_group"`
	Location      string            `yaml:"location"`
	Storage       Storage           `yaml:"storage"`
	Plan          Plan              `yaml:"plan"`
	Runtime       Runtime           `yaml:"runtime"`
	Settings      map[string]string `yaml:"settings,omitempty"`
}

// Storage holds the configuration of the storage account backing the function app.
type Storage struct {
	Name string `yaml:"name"`
	SKU  string `yaml:"sku"`
}

// Plan holds the configuration of the hosting plan backing the function app.
type Plan struct {
	Name string `yaml:"name"`
	SKU  string `yaml:"sku"`
}

// Runtime holds the language runtime configuration of the function host.
type Runtime struct {
	Language         string `yaml:"language"`
	Version          string `yaml:"version"`
	FunctionsVersion string `yaml:"functions_version"`
}

// Default returns a manifest with every field set to its default value.
func Default() *Manifest {
	settings := make(map[string]string, len(defaultSettings))
	for k, v := range defaultSettings {
		settings[k] = v
	}
	return &Manifest{
		App:           defaultApp,
		ResourceGroup: defaultResourceGroup,
		Location:      defaultLocation,
		Storage: Storage{
			Name: defaultStorageName,
			SKU:  defaultStorageSKU,
		},
		Plan: Plan{
			Name: defaultPlanName,
			SKU:  defaultPlanSKU,
		},
		Runtime: Runtime{
			Language:         defaultRuntime,
			Version:          defaultRuntimeVer,
			FunctionsVersion: defaultFuncsVersion,
		},
		Settings: settings,
	}
}

// Unmarshal deserializes the YAML input stream into a manifest and fills
// any omitted field from the defaults.
func Unmarshal(in []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(in, m); err != nil {
		return nil, fmt.Errorf("unmarshal deployment manifest: %w", err)
	}
	if err := mergo.Merge(m, Default()); err != nil {
		return nil, fmt.Errorf("apply default configuration: %w", err)
	}
	return m, nil
}

// Marshal serializes the manifest to YAML so that it can be written to a project directory.
func (m *Manifest) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal deployment manifest: %w", err)
	}
	return out, nil
}

// Validate returns an error if the manifest references resources by invalid names.
func (m *Manifest) Validate() error {
	if m.App == "" {
		return errors.New("application name is required")
	}
	if m.ResourceGroup == "" {
		return errors.New("resource group name is required")
	}
	if m.Location == "" {
		return errors.New("location is required")
	}
	if !storageNameRegexp.MatchString(m.Storage.Name) {
		return fmt.Errorf("storage account name %q must be between 3 and 24 characters in length and use numbers and lower-case letters only", m.Storage.Name)
	}
	if m.Plan.Name == "" {
		return errors.New("hosting plan name is required")
	}
	return nil
}
