// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package publisher

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tcmtemplating/linkforge/pkg/repository"
	"github.com/tcmtemplating/linkforge/pkg/writers"
	"k8s.io/klog/v2"
)

// Interface publishes binaries of multimedia objects
//
//counterfeiter:generate . Interface
type Interface interface {
	// Publish makes the binary of object available under the returned URL.
	// Variant distinguishes several publications of the same binary.
	Publish(ctx context.Context, object *repository.Object, variant string) (string, error)
}

// FS publishes binaries through a writer
type FS struct {
	Writer writers.Writer
	// Path is the directory passed to the writer
	Path string
	// BaseURL prefixes the URLs of published binaries
	BaseURL string
}

// Publish writes the binary as `{name}_tcm{pub}-{item}[_{variant}]{ext}`
func (p *FS) Publish(ctx context.Context, object *repository.Object, variant string) (string, error) {
	if object.Kind != repository.KindMultimedia {
		klog.Warningf("%s is a %s and has no binary to publish\n", object.ID, object.Kind)
		return "", nil
	}
	if object.Binary == nil {
		return "", fmt.Errorf("multimedia object %s has no binary", object.ID)
	}
	name, err := Filename(object, variant)
	if err != nil {
		return "", err
	}
	data, err := object.Binary.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("reading binary of %s fails: %w", object.ID, err)
	}
	if err := p.Writer.Write(name, p.Path, data); err != nil {
		return "", fmt.Errorf("publishing binary of %s fails: %w", object.ID, err)
	}
	klog.V(6).Infof("published %s as %s\n", object.ID, name)
	return strings.TrimSuffix(p.BaseURL, "/") + "/" + name, nil
}

// Filename returns the published file name of the binary of object
func Filename(object *repository.Object, variant string) (string, error) {
	id, err := repository.ParseID(object.ID)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(url.PathEscape(object.Binary.Name()))
	fmt.Fprintf(&b, "_tcm%d-%d", id.Publication, id.Item)
	if variant != "" {
		b.WriteString("_")
		b.WriteString(url.PathEscape(variant))
	}
	b.WriteString(object.Binary.Extension())
	return b.String(), nil
}

type memoKey struct {
	id      string
	variant string
}

// Memo publishes every binary once per transform invocation. It is owned
// by a single invocation and not safe for concurrent use.
type Memo struct {
	inner Interface
	urls  map[memoKey]string
}

// NewMemo creates a memo publishing through inner
func NewMemo(inner Interface) *Memo {
	return &Memo{inner: inner, urls: map[memoKey]string{}}
}

// Publish returns the URL of an earlier publication of the same binary and variant
func (m *Memo) Publish(ctx context.Context, object *repository.Object, variant string) (string, error) {
	key := memoKey{id: canonical(object.ID), variant: variant}
	if u, ok := m.urls[key]; ok {
		return u, nil
	}
	u, err := m.inner.Publish(ctx, object, variant)
	if err != nil {
		return "", err
	}
	m.urls[key] = u
	return u, nil
}

// Reset forgets all publications, ending the invocation
func (m *Memo) Reset() {
	m.urls = map[memoKey]string{}
}

// Len returns the number of remembered publications
func (m *Memo) Len() int {
	return len(m.urls)
}

func canonical(id string) string {
	if parsed, err := repository.ParseID(id); err == nil {
		return parsed.String()
	}
	return id
}
