// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/tcmtemplating/linkforge/pkg/osfakes/osshim"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"k8s.io/klog/v2"
)

// State defines state of a git repo
type State int

const (
	_ State = iota
	// Prepared repo state
	Prepared
	// Failed repo state
	Failed
)

// Clone is a git repository cloned into a local directory
type Clone struct {
	Auth      http.AuthMethod
	LocalPath string
	RemoteURL string
	// Version is a branch or tag to check out, the remote HEAD when empty
	Version string
	Git     Git

	state         State
	previousError error
	mutex         sync.Mutex
}

// NewAuth returns basic authentication for token based access, nil without token
func NewAuth(username, token string) http.AuthMethod {
	if token == "" {
		return nil
	}
	if username == "" {
		username = "linkforge"
	}
	return &http.BasicAuth{Username: username, Password: token}
}

// Open prepares the clone and loads the repository index found in dir of its work tree
func (c *Clone) Open(ctx context.Context, os osshim.Os, dir string) (*repository.Indexed, error) {
	if err := c.Prepare(ctx); err != nil {
		return nil, err
	}
	localPath := filepath.Join(c.LocalPath, filepath.FromSlash(dir))
	return repository.Load(ctx, "git "+c.RemoteURL, repository.NewLocalFiles(os, localPath))
}

// Prepare clones or fetches the repository and checks out the version
func (c *Clone) Prepare(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	switch c.state {
	case Failed:
		return c.previousError
	case Prepared:
		return nil
	}

	if err := c.prepare(ctx); err != nil {
		c.state = Failed
		c.previousError = err
		return err
	}
	c.state = Prepared
	return nil
}

func (c *Clone) prepare(ctx context.Context) error {
	repo, fetch, err := c.repository(ctx)
	if err != nil {
		return err
	}

	if fetch {
		klog.V(6).Infof("fetching %s into %s\n", c.RemoteURL, c.LocalPath)
		if err := repo.FetchContext(ctx, &gogit.FetchOptions{
			Auth:       c.Auth,
			RemoteName: gogit.DefaultRemoteName,
		}); err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
			if errors.Is(err, transport.ErrRepositoryNotFound) {
				return fmt.Errorf("repository %s not found", c.RemoteURL)
			}
			return fmt.Errorf("failed to fetch repository %s: %v", c.LocalPath, err)
		}
	}

	if c.Version == "" {
		return nil
	}

	w, err := repo.Worktree()
	if err != nil {
		return err
	}

	var checkoutDestination plumbing.ReferenceName
	if _, err := repo.Reference(plumbing.NewRemoteReferenceName(gogit.DefaultRemoteName, c.Version), true); err == nil {
		checkoutDestination = plumbing.NewRemoteReferenceName(gogit.DefaultRemoteName, c.Version)
	} else if _, err := repo.Reference(plumbing.NewTagReferenceName(c.Version), true); err == nil {
		checkoutDestination = plumbing.NewTagReferenceName(c.Version)
	} else {
		return fmt.Errorf("version %s not found in repository %s", c.Version, c.RemoteURL)
	}

	if err := w.Checkout(&gogit.CheckoutOptions{
		Branch: checkoutDestination,
	}); err != nil {
		return fmt.Errorf("couldn't checkout version %s for repository %s: %v", c.Version, c.LocalPath, err)
	}
	return nil
}

func (c *Clone) repository(ctx context.Context) (Repository, bool, error) {
	gitRepo, err := c.Git.PlainOpen(c.LocalPath)
	if err != nil {
		if !errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, false, err
		}
		klog.Infof("cloning %s into %s\n", c.RemoteURL, c.LocalPath)
		if gitRepo, err = c.Git.PlainCloneContext(ctx, c.LocalPath, false, &gogit.CloneOptions{
			URL:        c.RemoteURL,
			RemoteName: gogit.DefaultRemoteName,
			Auth:       c.Auth,
		}); err != nil {
			if errors.Is(err, transport.ErrRepositoryNotFound) {
				return nil, false, fmt.Errorf("repository %s not found", c.RemoteURL)
			}
			return nil, false, fmt.Errorf("failed to prepare repo: %s, %v", c.LocalPath, err)
		}
		return gitRepo, false, nil
	}
	return gitRepo, true, nil
}
