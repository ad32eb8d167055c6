// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// IndexFileName is the name of the index file at the root of a repository
const IndexFileName = "repository.yaml"

// Index lists the objects of a repository
type Index struct {
	// Publications restricts the identifiers the repository accepts, all when empty
	Publications []int `yaml:"publications,omitempty"`
	// Objects served by the repository
	Objects []*IndexEntry `yaml:"objects"`
}

// IndexEntry describes one object of a repository. Content is the path of
// its field document, XML or Markdown.
type IndexEntry struct {
	ID      string       `yaml:"id"`
	Kind    string       `yaml:"kind,omitempty"`
	Title   string       `yaml:"title,omitempty"`
	Schema  string       `yaml:"schema,omitempty"`
	Content string       `yaml:"content,omitempty"`
	Binary  *BinaryEntry `yaml:"binary,omitempty"`
}

// BinaryEntry locates the payload of a multimedia object
type BinaryEntry struct {
	File     string `yaml:"file"`
	MimeType string `yaml:"mimeType,omitempty"`
}

// ParseIndex parses and validates an index document
func ParseIndex(data []byte) (*Index, error) {
	index := &Index{}
	if err := yaml.Unmarshal(data, index); err != nil {
		return nil, fmt.Errorf("parsing %s fails: %w", IndexFileName, err)
	}
	var errs *multierror.Error
	seen := map[ID]bool{}
	for i, entry := range index.Objects {
		if entry == nil {
			errs = multierror.Append(errs, fmt.Errorf("object %d is empty", i))
			continue
		}
		id, err := ParseID(entry.ID)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("object %d: %w", i, err))
			continue
		}
		if seen[id] {
			errs = multierror.Append(errs, fmt.Errorf("object %d: duplicate identifier %s", i, id))
		}
		seen[id] = true
		kind, err := ParseKind(entry.Kind)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("object %s: %w", entry.ID, err))
			continue
		}
		if kind == KindMultimedia && (entry.Binary == nil || entry.Binary.File == "") {
			errs = multierror.Append(errs, fmt.Errorf("multimedia object %s has no binary file", entry.ID))
		}
		if kind == KindPage && id.Type != TypePage {
			errs = multierror.Append(errs, fmt.Errorf("page %s must have item type %d", entry.ID, TypePage))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return index, nil
}
