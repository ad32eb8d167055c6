// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileName is the configuration file name in LinkforgeHomeDir
	DefaultConfigFileName = "config"
	// LinkforgeHomeDir is the linkforge directory in the user home
	LinkforgeHomeDir = ".linkforge"
	// LinkforgeConfigEnv overrides the configuration file path
	LinkforgeConfigEnv = "LINKFORGECONFIG"
)

// Loader loads the user configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader loads the file named by LINKFORGECONFIG or
// ~/.linkforge/config. A missing file gives an empty configuration.
type DefaultConfigurationLoader struct{}

// Load implements Loader
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(LinkforgeConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", LinkforgeConfigEnv)
		}
		return load(configFilePath)
	}

	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}
	return load(filepath.Join(userHomeDir, LinkforgeHomeDir, DefaultConfigFileName))
}

func load(configFilePath string) (*Config, error) {
	if configFilePath == "" {
		return &Config{}, nil
	}
	stat, err := os.Stat(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %v", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configFilePath, err)
	}
	return config, nil
}
