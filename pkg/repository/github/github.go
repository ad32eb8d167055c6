// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package github

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../../license_prefix.txt

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v43/github"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"k8s.io/klog/v2"
)

//counterfeiter:generate . RateLimitSource

// RateLimitSource is an interface needed for faking
type RateLimitSource interface {
	RateLimits(ctx context.Context) (*gogithub.RateLimits, *gogithub.Response, error)
}

//counterfeiter:generate . Repositories

// Repositories is an interface needed for faking
type Repositories interface {
	Get(ctx context.Context, owner, repo string) (*gogithub.Repository, *gogithub.Response, error)
}

//counterfeiter:generate . Git

// Git is an interface needed for faking
type Git interface {
	GetBlobRaw(ctx context.Context, owner, repo, sha string) ([]byte, *gogithub.Response, error)
	GetTree(ctx context.Context, owner string, repo string, sha string, recursive bool) (*gogithub.Tree, *gogithub.Response, error)
}

// Repository is an indexed repository served from a GitHub tree
type Repository struct {
	*repository.Indexed
	rateLimit RateLimitSource
}

type files struct {
	git     Git
	locator Locator
	// blob SHAs by path relative to the located directory
	blobs map[string]string
}

// New loads the tree of the located directory and the repository index in it
func New(ctx context.Context, locator *Locator, rateLimit RateLimitSource, repositories Repositories, git Git) (*Repository, error) {
	loc := *locator
	if loc.Ref == "" {
		repo, resp, err := repositories.Get(ctx, loc.Owner, loc.Repo)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("repository %s not found", loc.String())
			}
			return nil, err
		}
		loc.Ref = repo.GetDefaultBranch()
	}
	tree, resp, err := git.GetTree(ctx, loc.Owner, loc.Repo, loc.Ref, true)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("reference %s not found", loc.String())
		}
		return nil, err
	}
	if tree.GetTruncated() {
		klog.Warningf("tree of %s is truncated, some objects may not resolve\n", loc.String())
	}
	prefix := ""
	if loc.Path != "" {
		prefix = loc.Path + "/"
	}
	f := &files{git: git, locator: loc, blobs: map[string]string{}}
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" || !strings.HasPrefix(entry.GetPath(), prefix) {
			continue
		}
		f.blobs[strings.TrimPrefix(entry.GetPath(), prefix)] = entry.GetSHA()
	}
	klog.Infof("Loading reference %s with %d entries", loc.String(), len(f.blobs))
	indexed, err := repository.Load(ctx, "github "+loc.String(), f)
	if err != nil {
		return nil, err
	}
	return &Repository{Indexed: indexed, rateLimit: rateLimit}, nil
}

// ReadFile reads a blob of the located directory
func (f *files) ReadFile(ctx context.Context, name string) ([]byte, error) {
	sha, ok := f.blobs[path.Clean(name)]
	if !ok {
		return nil, fmt.Errorf("file %s not found in %s", name, f.locator.String())
	}
	raw, resp, err := f.git.GetBlobRaw(ctx, f.locator.Owner, f.locator.Repo, sha)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("blob %s of %s not found", name, f.locator.String())
		}
		return nil, err
	}
	if resp != nil && resp.StatusCode >= 400 {
		return nil, fmt.Errorf("reading blob %s fails with HTTP status: %d", name, resp.StatusCode)
	}
	return raw, nil
}

// GetRateLimit returns rate limit and remaining API calls of the GitHub API
func (r *Repository) GetRateLimit(ctx context.Context) (int, int, time.Time, error) {
	rl, _, err := r.rateLimit.RateLimits(ctx)
	if err != nil {
		return -1, -1, time.Now(), err
	}
	return rl.Core.Limit, rl.Core.Remaining, rl.Core.Reset.Time, nil
}

// LogRateLimit logs rate limit and remaining API calls
func (r *Repository) LogRateLimit(ctx context.Context) {
	l, rr, rt, err := r.GetRateLimit(ctx)
	if err != nil {
		klog.Warningf("Error getting RateLimit for %s: %v\n", r.Name(), err)
	} else if l > 0 && rr > 0 {
		klog.Infof("%s RateLimit: %d requests per hour, Remaining: %d, Reset after: %s\n", r.Name(), l, rr, time.Until(rt).Round(time.Second))
	}
}
