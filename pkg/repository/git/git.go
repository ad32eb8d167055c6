// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package git

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../../license_prefix.txt

import (
	"context"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Git opens or clones the working copy behind a Clone
//
//counterfeiter:generate . Git
type Git interface {
	PlainOpen(path string) (Repository, error)
	PlainCloneContext(ctx context.Context, path string, isBare bool, o *gogit.CloneOptions) (Repository, error)
}

// Repository is the part of a working copy a Clone updates and checks out
//
//counterfeiter:generate . Repository
type Repository interface {
	FetchContext(ctx context.Context, o *gogit.FetchOptions) error
	Worktree() (RepositoryWorktree, error)
	Reference(name plumbing.ReferenceName, resolved bool) (*plumbing.Reference, error)
}

// RepositoryWorktree checks out the version a Clone serves
//
//counterfeiter:generate . RepositoryWorktree
type RepositoryWorktree interface {
	Checkout(opts *gogit.CheckoutOptions) error
}

// NewGit returns the go-git backed Git used by repository clones
func NewGit() Git {
	return workingCopies{}
}

type workingCopies struct{}

func (workingCopies) PlainOpen(path string) (Repository, error) {
	return wrap(gogit.PlainOpen(path))
}

func (workingCopies) PlainCloneContext(ctx context.Context, path string, isBare bool, o *gogit.CloneOptions) (Repository, error) {
	return wrap(gogit.PlainCloneContext(ctx, path, isBare, o))
}

func wrap(r *gogit.Repository, err error) (Repository, error) {
	if err != nil {
		return nil, err
	}
	return workingCopy{r}, nil
}

// workingCopy narrows Worktree to RepositoryWorktree, fetch and reference lookup come from go-git
type workingCopy struct {
	*gogit.Repository
}

func (w workingCopy) Worktree() (RepositoryWorktree, error) {
	t, err := w.Repository.Worktree()
	if err != nil {
		return nil, err
	}
	return t, nil
}
