// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"context"
	"fmt"
	"path"

	"k8s.io/klog/v2"
)

// Files reads repository files by slash separated paths relative to the repository root
//
//counterfeiter:generate . Files
type Files interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// Indexed is a repository described by an index file and served from Files
type Indexed struct {
	name         string
	files        Files
	entries      map[ID]*IndexEntry
	publications map[int]bool
}

// Load reads the index of a repository
func Load(ctx context.Context, name string, files Files) (*Indexed, error) {
	data, err := files.ReadFile(ctx, IndexFileName)
	if err != nil {
		return nil, fmt.Errorf("loading repository %s fails: %w", name, err)
	}
	index, err := ParseIndex(data)
	if err != nil {
		return nil, fmt.Errorf("loading repository %s fails: %w", name, err)
	}
	r := &Indexed{
		name:         name,
		files:        files,
		entries:      make(map[ID]*IndexEntry, len(index.Objects)),
		publications: map[int]bool{},
	}
	for _, entry := range index.Objects {
		id, _ := ParseID(entry.ID)
		r.entries[id] = entry
	}
	for _, p := range index.Publications {
		r.publications[p] = true
	}
	klog.Infof("Loading repository %s with %d objects", name, len(r.entries))
	return r, nil
}

// Name of the repository
func (r *Indexed) Name() string {
	return r.name
}

// Accept accepts identifiers of the publications listed in the index, any
// identifier if the index lists none
func (r *Indexed) Accept(id string) bool {
	parsed, err := ParseID(id)
	if err != nil {
		return false
	}
	return len(r.publications) == 0 || r.publications[parsed.Publication]
}

// Resolve returns the object identified by id or ErrNotFound
func (r *Indexed) Resolve(ctx context.Context, id string) (*Object, error) {
	parsed, err := ParseID(id)
	if err != nil {
		klog.V(6).Infof("%s: %v\n", r.name, err)
		return nil, ErrNotFound(id)
	}
	entry, ok := r.entries[parsed]
	if !ok {
		return nil, ErrNotFound(id)
	}
	kind, err := ParseKind(entry.Kind)
	if err != nil {
		return nil, err
	}
	object := &Object{
		ID:     id,
		Kind:   kind,
		Title:  entry.Title,
		Schema: entry.Schema,
	}
	if entry.Content != "" {
		data, err := r.files.ReadFile(ctx, entry.Content)
		if err != nil {
			return nil, fmt.Errorf("reading content of %s fails: %w", id, err)
		}
		if object.Content, err = ParseContent(entry.Content, data); err != nil {
			return nil, fmt.Errorf("object %s: %w", id, err)
		}
	}
	if entry.Binary != nil && entry.Binary.File != "" {
		file := entry.Binary.File
		object.Binary = NewBinary(path.Base(file), entry.Binary.MimeType, func(ctx context.Context) ([]byte, error) {
			return r.files.ReadFile(ctx, file)
		})
	}
	return object, nil
}
