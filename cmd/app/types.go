// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/tcmtemplating/linkforge/pkg/transform"
)

// Options are the flags, environment variables and configuration values
// of a linkforge run
type Options struct {
	Input               string            `mapstructure:"input"`
	DestinationPath     string            `mapstructure:"destination"`
	Mode                string            `mapstructure:"mode"`
	Repositories        []string          `mapstructure:"repositories"`
	UseGit              bool              `mapstructure:"use-git"`
	GitHubOAuthTokenMap map[string]string `mapstructure:"github-oauth-token-map"`
	CacheHomeDir        string            `mapstructure:"cache-dir"`
	WorkersCount        int               `mapstructure:"workers"`
	FailFast            bool              `mapstructure:"fail-fast"`
	DryRun              bool              `mapstructure:"dry-run"`
	CacheSize           int               `mapstructure:"cache-size"`
	TagPrefix           string            `mapstructure:"tag-prefix"`
	LinkPrefix          string            `mapstructure:"link-prefix"`
	Schemes             []string          `mapstructure:"schemes"`
	Variant             string            `mapstructure:"variant"`
	PreservedNamespaces []string          `mapstructure:"preserved-namespaces"`
	RemoveImages        bool              `mapstructure:"remove-images"`
	BinariesPath        string            `mapstructure:"binaries-path"`
	BinariesURL         string            `mapstructure:"binaries-url"`
	Fields              []string          `mapstructure:"field"`
}

func (o *Options) transformOptions() transform.Options {
	return transform.Options{
		Workers:             o.WorkersCount,
		FailFast:            o.FailFast,
		CacheSize:           o.CacheSize,
		TagPrefix:           o.TagPrefix,
		LinkPrefix:          o.LinkPrefix,
		Schemes:             o.Schemes,
		Variant:             o.Variant,
		PreservedNamespaces: o.PreservedNamespaces,
		RemoveImages:        o.RemoveImages,
	}
}
