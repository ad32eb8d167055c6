// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/tcmtemplating/linkforge/cmd/configuration"
	"github.com/tcmtemplating/linkforge/pkg/osfakes/osshim"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"github.com/tcmtemplating/linkforge/pkg/repository/git"
	"github.com/tcmtemplating/linkforge/pkg/repository/github"
	"k8s.io/klog/v2"
)

type rateLimitLogger interface {
	LogRateLimit(ctx context.Context)
}

// repositoryFactory creates the repository serving a location
type repositoryFactory struct {
	os          osshim.Os
	git         git.Git
	cacheDir    string
	useGit      bool
	mappings    map[string]string
	credentials map[string]*configuration.Credentials
}

// initRepositories creates a registry of the repositories in o. Repositories
// that fail to load are reported and skipped.
func initRepositories(ctx context.Context, o *Options, config *configuration.Config) (*repository.Registry, []rateLimitLogger, error) {
	f := &repositoryFactory{
		os:          &osshim.OsShim{},
		git:         git.NewGit(),
		cacheDir:    o.CacheHomeDir,
		useGit:      o.UseGit,
		credentials: gatherCredentials(o.GitHubOAuthTokenMap, config),
	}
	if config != nil {
		f.mappings = config.RepositoryMappings
	}
	return f.registry(ctx, o.Repositories)
}

func (f *repositoryFactory) registry(ctx context.Context, locations []string) (*repository.Registry, []rateLimitLogger, error) {
	var (
		errs     *multierror.Error
		limiters []rateLimitLogger
		loaded   int
	)
	registry := repository.NewRegistry()
	for _, location := range locations {
		repo, err := f.repository(ctx, strings.TrimSpace(location))
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if l, ok := repo.(rateLimitLogger); ok {
			limiters = append(limiters, l)
		}
		klog.Infof("Repository: %s\n", repo.Name())
		registry.Add(repo)
		loaded++
	}
	if loaded == 0 && errs == nil {
		return nil, nil, fmt.Errorf("no repositories were loaded. Is the --repositories flag or the config yaml file correct?")
	}
	return registry, limiters, errs.ErrorOrNil()
}

func (f *repositoryFactory) repository(ctx context.Context, location string) (repository.Interface, error) {
	if mapped, ok := f.mappings[location]; ok {
		klog.Infof("%s -> %s\n", location, mapped)
		return repository.NewLocal(ctx, f.os, mapped)
	}
	if !strings.HasPrefix(location, "https://") && !strings.HasPrefix(location, "http://") {
		return repository.NewLocal(ctx, f.os, location)
	}
	locator, err := github.ParseLocator(location)
	if err != nil {
		return nil, err
	}
	var username, token string
	if credentials, ok := f.credentials[locator.Host]; ok {
		if credentials.Username != nil {
			username = *credentials.Username
		}
		if credentials.OAuthToken != nil {
			token = *credentials.OAuthToken
		}
	}
	if f.useGit {
		clone := &git.Clone{
			Auth:      git.NewAuth(username, token),
			LocalPath: filepath.Join(f.cacheDir, "git", locator.Host, locator.Owner, locator.Repo),
			RemoteURL: fmt.Sprintf("https://%s/%s/%s.git", locator.Host, locator.Owner, locator.Repo),
			Version:   locator.Ref,
			Git:       f.git,
		}
		return clone.Open(ctx, f.os, locator.Path)
	}
	client, _, err := github.BuildClient(ctx, token, locator.Host, filepath.Join(f.cacheDir, "diskv", locator.Host))
	if err != nil {
		return nil, err
	}
	return github.NewFromClient(ctx, locator, client)
}
