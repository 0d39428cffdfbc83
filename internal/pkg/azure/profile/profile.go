// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package profile reads the az CLI configuration file to look up the
// defaults a user set with "az configure --defaults".
package profile

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const (
	configDirEnvVar = "AZURE_CONFIG_DIR"
	configDirName   = ".azure"
	configFileName  = "config"

	defaultsSection = "defaults"
	groupKey        = "group"
	locationKey     = "location"
)

// Config represents the az CLI configuration file, ~/.azure/config.
type Config struct {
	f *ini.File
}

// NewConfig loads the az CLI configuration file. A missing file yields an
// empty configuration rather than an error, since the az CLI is optional.
func NewConfig() (*Config, error) {
	f, err := ini.LooseLoad(configPath())
	if err != nil {
		return nil, err
	}
	return &Config{f: f}, nil
}

// DefaultResourceGroup returns the resource group name configured with
// "az configure --defaults group=...", or the empty string.
func (c *Config) DefaultResourceGroup() string {
	return c.defaultsValue(groupKey)
}

// DefaultLocation returns the location configured with
// "az configure --defaults location=...", or the empty string.
func (c *Config) DefaultLocation() string {
	return c.defaultsValue(locationKey)
}

func (c *Config) defaultsValue(key string) string {
	section, err := c.f.GetSection(defaultsSection)
	if err != nil {
		return ""
	}
	return section.Key(key).String()
}

func configPath() string {
	if dir := os.Getenv(configDirEnvVar); dir != "" {
		return filepath.Join(dir, configFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, configFileName)
}
