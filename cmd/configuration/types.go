// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config is the user configuration of linkforge
type Config struct {
	CacheHome *string   `yaml:"cacheHome,omitempty"`
	Sources   []*Source `yaml:"sources,omitempty"`
	// Repositories are the default content repositories, local
	// directories or GitHub tree URLs
	Repositories []string `yaml:"repositories,omitempty"`
	// RepositoryMappings serve a GitHub tree URL from a local directory
	RepositoryMappings map[string]string `yaml:"repositoryMappings,omitempty"`
	Publishing         *Publishing       `yaml:"publishing,omitempty"`
}

// Source holds the credentials of a GitHub instance
type Source struct {
	Host        string `yaml:"host"`
	Credentials `yaml:"credentials,omitempty"`
}

// Credentials authorize read access to repositories
type Credentials struct {
	Username   *string `yaml:"username,omitempty"`
	OAuthToken *string `yaml:"oauthToken,omitempty"`
}

// Publishing configures where binaries and links go
type Publishing struct {
	// BinariesPath is the destination subdirectory of published binaries
	BinariesPath *string `yaml:"binariesPath,omitempty"`
	// BinariesURL prefixes the URLs of published binaries
	BinariesURL *string `yaml:"binariesURL,omitempty"`
	TagPrefix   *string `yaml:"tagPrefix,omitempty"`
	LinkPrefix  *string `yaml:"linkPrefix,omitempty"`
}
