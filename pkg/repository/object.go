// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/beevik/etree"
)

// Scheme is the identifier scheme of repository objects
const Scheme = "tcm:"

const (
	// TypeComponent is the item type of components, implied when an identifier has no type segment
	TypeComponent = 16
	// TypePage is the item type of pages
	TypePage = 64
)

// Kind enumerates the object kinds served by a repository
type Kind int

const (
	// KindComponent is a structured content object
	KindComponent Kind = iota
	// KindMultimedia is a content object wrapping a binary payload
	KindMultimedia
	// KindPage is a navigable page
	KindPage
)

func (k Kind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindMultimedia:
		return "multimedia"
	case KindPage:
		return "page"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a kind name as used in repository indexes
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "component":
		return KindComponent, nil
	case "multimedia", "binary":
		return KindMultimedia, nil
	case "page":
		return KindPage, nil
	}
	return 0, fmt.Errorf("unknown object kind '%s'. Must be one of %v", s, []string{"component", "multimedia", "page"})
}

// ID is a parsed content identifier `tcm:pub-item[-type]`
type ID struct {
	Publication int
	Item        int
	Type        int
}

// ParseID splits a content identifier into its segments. The scheme is
// matched case-insensitively and a missing type segment means component.
func ParseID(s string) (ID, error) {
	if len(s) < len(Scheme) || !strings.EqualFold(s[:len(Scheme)], Scheme) {
		return ID{}, fmt.Errorf("identifier %q does not start with %s", s, Scheme)
	}
	segments := strings.Split(s[len(Scheme):], "-")
	if len(segments) < 2 || len(segments) > 3 {
		return ID{}, fmt.Errorf("identifier %q is not of the form %spub-item[-type]", s, Scheme)
	}
	values := make([]int, len(segments))
	for i, seg := range segments {
		v, err := strconv.Atoi(seg)
		if err != nil || v < 0 {
			return ID{}, fmt.Errorf("identifier %q has invalid segment %q", s, seg)
		}
		values[i] = v
	}
	id := ID{Publication: values[0], Item: values[1], Type: TypeComponent}
	if len(values) == 3 {
		id.Type = values[2]
	}
	return id, nil
}

// String returns the canonical form, omitting the implied component type
func (id ID) String() string {
	if id.Type == TypeComponent || id.Type == 0 {
		return fmt.Sprintf("%s%d-%d", Scheme, id.Publication, id.Item)
	}
	return fmt.Sprintf("%s%d-%d-%d", Scheme, id.Publication, id.Item, id.Type)
}

// Object is a content object resolved from a repository
type Object struct {
	// ID is the identifier the object was resolved with
	ID string
	// Kind of the object
	Kind Kind
	// Title of the object
	Title string
	// Schema names the content schema of components
	Schema string
	// Content is the field document of components, nil for pages
	Content *etree.Document
	// Binary is the payload of multimedia objects
	Binary *Binary
}

// ReadFunc reads a binary payload
type ReadFunc func(ctx context.Context) ([]byte, error)

// Binary is a lazily read multimedia payload
type Binary struct {
	// Filename is the original file name of the payload
	Filename string
	// MimeType of the payload
	MimeType string

	read ReadFunc
	once sync.Once
	data []byte
	err  error
}

// NewBinary creates a binary that reads its payload on first use
func NewBinary(filename, mimeType string, read ReadFunc) *Binary {
	return &Binary{Filename: filename, MimeType: mimeType, read: read}
}

// Read returns the payload, reading it at most once
func (b *Binary) Read(ctx context.Context) ([]byte, error) {
	b.once.Do(func() {
		if b.read == nil {
			b.err = fmt.Errorf("binary %s has no content source", b.Filename)
			return
		}
		b.data, b.err = b.read(ctx)
	})
	return b.data, b.err
}

// Extension returns the file extension of the payload including the dot
func (b *Binary) Extension() string {
	return path.Ext(b.Filename)
}

// Name returns the payload file name without extension
func (b *Binary) Name() string {
	base := path.Base(b.Filename)
	return strings.TrimSuffix(base, path.Ext(base))
}
