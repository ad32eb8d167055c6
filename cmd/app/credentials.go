// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tcmtemplating/linkforge/cmd/configuration"
	"k8s.io/klog/v2"
	"k8s.io/utils/pointer"
)

// gatherCredentials returns the credentials per GitHub host. Tokens given by
// flags override the configuration.
func gatherCredentials(tokens map[string]string, config *configuration.Config) map[string]*configuration.Credentials {
	credentialsByHost := make(map[string]*configuration.Credentials)
	if config != nil {
		// when no token specified consider the configuration incorrect
		for _, source := range config.Sources {
			if source.OAuthToken == nil {
				klog.Warningf("configuration is considered incorrect because of missing oauth token for host: %s\n", source.Host)
				continue
			}
			credentials := source.Credentials
			credentialsByHost[source.Host] = &credentials
		}
	}

	for instance, credentials := range tokens {
		var username string
		// for cases where user credentials are in the format `username:token`
		usernameAndToken := strings.SplitN(credentials, ":", 2)
		if len(usernameAndToken) == 2 {
			username = usernameAndToken[0]
			credentials = usernameAndToken[1]
		}
		if _, ok := credentialsByHost[instance]; ok {
			klog.Warningf("%s token is overridden by the provided token with `--github-oauth-token-map flag`\n", instance)
		}
		credentialsByHost[instance] = &configuration.Credentials{
			Username:   pointer.StringPtr(username),
			OAuthToken: pointer.StringPtr(credentials),
		}
	}

	if _, ok := credentialsByHost["github.com"]; !ok {
		klog.V(6).Infof("using unauthenticated github access\n")
		credentialsByHost["github.com"] = &configuration.Credentials{
			Username:   pointer.StringPtr(""),
			OAuthToken: pointer.StringPtr(""),
		}
	}
	return credentialsByHost
}

// applyConfig fills the options not set by flags or environment from the
// user configuration
func applyConfig(o *Options, config *configuration.Config, isSet func(key string) bool) {
	if config == nil {
		return
	}
	if !isSet("repositories") && len(config.Repositories) > 0 {
		o.Repositories = config.Repositories
	}
	if !isSet("cache-dir") && config.CacheHome != nil {
		o.CacheHomeDir = expandHome(*config.CacheHome)
	}
	if p := config.Publishing; p != nil {
		if !isSet("binaries-path") && p.BinariesPath != nil {
			o.BinariesPath = *p.BinariesPath
		}
		if !isSet("binaries-url") && p.BinariesURL != nil {
			o.BinariesURL = *p.BinariesURL
		}
		if !isSet("tag-prefix") && p.TagPrefix != nil {
			o.TagPrefix = *p.TagPrefix
		}
		if !isSet("link-prefix") && p.LinkPrefix != nil {
			o.LinkPrefix = *p.LinkPrefix
		}
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		klog.Warningf("cannot expand %s: %v\n", path, err)
		return path
	}
	return filepath.Join(userHomeDir, strings.TrimPrefix(path, "~"))
}
