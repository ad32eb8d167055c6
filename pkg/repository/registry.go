// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"context"
	"strings"

	"k8s.io/klog/v2"
)

// Registry routes identifiers to the first registered repository accepting them
type Registry struct {
	repositories []Interface
}

// NewRegistry creates Registry object, optionally loading it with repositories if provided
func NewRegistry(repositories ...Interface) *Registry {
	return &Registry{repositories: repositories}
}

// Add registers repositories after the already registered ones
func (r *Registry) Add(repositories ...Interface) {
	r.repositories = append(r.repositories, repositories...)
}

// Get returns the repository serving id, if any
func (r *Registry) Get(id string) (Interface, bool) {
	for _, repo := range r.repositories {
		if repo.Accept(id) {
			return repo, true
		}
	}
	return nil, false
}

// Resolve resolves id in the first repository accepting it. Identifiers no
// repository accepts are reported as ErrNotFound.
func (r *Registry) Resolve(ctx context.Context, id string) (*Object, error) {
	repo, ok := r.Get(id)
	if !ok {
		klog.V(6).Infof("no repository accepts %s\n", id)
		return nil, ErrNotFound(id)
	}
	return repo.Resolve(ctx, id)
}

// Accept reports whether any registered repository accepts id
func (r *Registry) Accept(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// Name lists the names of the registered repositories
func (r *Registry) Name() string {
	names := make([]string, 0, len(r.repositories))
	for _, repo := range r.repositories {
		names = append(names, repo.Name())
	}
	return "registry [" + strings.Join(names, ", ") + "]"
}
