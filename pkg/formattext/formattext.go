// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package formattext

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/tcmtemplating/linkforge/pkg/fields"
	"github.com/tcmtemplating/linkforge/pkg/markup"
	"github.com/tcmtemplating/linkforge/pkg/publisher"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"k8s.io/klog/v2"
)

// NoSchema is the schema name used to prefix links that do not point to
// repository objects
const NoSchema = "<None>"

// SchemaResolver rewrites links to objects of the schemas it supports
//
//counterfeiter:generate . SchemaResolver
type SchemaResolver interface {
	// IsSupported reports whether objects of schema are resolved by this resolver
	IsSupported(schema string) bool
	// LinkTitle returns the title of links to target, empty to keep the link title
	LinkTitle(target markup.Target) string
	// PrefixLink prefixes a link URL
	PrefixLink(url string) string
	// Resolve rewrites element linking to target
	Resolve(ctx context.Context, element *etree.Element, target markup.Target, publisher publisher.Interface) error
}

// Options of a format text resolution
type Options struct {
	// PreservedNamespaces are kept in the output, all other namespaces are
	// stripped. Nil keeps the document namespaces untouched.
	PreservedNamespaces []string
	// RemoveImages drops images instead of resolving them
	RemoveImages bool
}

// Resolver resolves the links of rich text fields
type Resolver struct {
	repository repository.Interface
	publisher  publisher.Interface
	resolvers  []SchemaResolver
	// Schemes are the identifier prefixes, `tcm:` when empty
	Schemes []string
}

// NewResolver creates a resolver trying resolvers in order, followed by a
// DefaultSchemaResolver supporting every schema
func NewResolver(repo repository.Interface, pub publisher.Interface, titles markup.TitlePolicy, resolvers ...SchemaResolver) *Resolver {
	all := make([]SchemaResolver, 0, len(resolvers)+1)
	all = append(all, resolvers...)
	all = append(all, &DefaultSchemaResolver{Titles: titles})
	return &Resolver{
		repository: repo,
		publisher:  pub,
		resolvers:  all,
	}
}

// Resolve rewrites the XLink references to repository objects of the
// XHTML anchors and images in formatText
func (r *Resolver) Resolve(ctx context.Context, formatText string, opts Options) (string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Entity = xml.HTMLEntity
	if err := doc.ReadFromString("<body>" + formatText + "</body>"); err != nil {
		return "", fmt.Errorf("parsing format text fails: %w", err)
	}
	body := doc.Root()

	images := xhtmlElements(body, "img")
	if opts.RemoveImages {
		for _, img := range images {
			img.Parent().RemoveChild(img)
		}
	} else {
		for _, img := range images {
			if err := r.resolveElement(ctx, img, opts); err != nil {
				return "", err
			}
		}
	}

	for _, a := range xhtmlElements(body, "a") {
		if _, ok := r.reference(a); ok {
			if err := r.resolveElement(ctx, a, opts); err != nil {
				return "", err
			}
			continue
		}
		if href := plainAttr(a, "href"); href != nil && href.Value != "" {
			a.CreateAttr("href", r.prefixLink(href.Value))
		}
	}

	if opts.PreservedNamespaces != nil {
		stripNamespaces(body, opts.PreservedNamespaces)
	}
	return fields.InnerXML(body), nil
}

// reference returns the identifier in the XLink href of element
func (r *Resolver) reference(element *etree.Element) (string, bool) {
	for _, a := range element.Attr {
		if a.Key == "href" && a.NamespaceURI() == repository.XLinkNamespace && markup.IsIdentifier(a.Value, r.Schemes) {
			return a.Value, true
		}
	}
	return "", false
}

func (r *Resolver) resolveElement(ctx context.Context, element *etree.Element, opts Options) error {
	id, ok := r.reference(element)
	if !ok {
		return nil
	}
	if opts.PreservedNamespaces != nil {
		removeAttr(element, repository.XLinkNamespace, "href")
		removeAttr(element, repository.XLinkNamespace, "title")
	}
	target, err := markup.ResolveTarget(ctx, r.repository, id)
	if err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	schema := markup.ObjectOf(target).Schema
	for _, sr := range r.resolvers {
		if sr.IsSupported(schema) {
			if err := sr.Resolve(ctx, element, target, r.publisher); err != nil {
				return fmt.Errorf("resolving %s link to %s fails: %w", element.Tag, id, err)
			}
			return nil
		}
	}
	klog.V(6).Infof("no resolver supports schema %s of %s\n", schema, id)
	return nil
}

func (r *Resolver) prefixLink(url string) string {
	for _, sr := range r.resolvers {
		if sr.IsSupported(NoSchema) {
			return sr.PrefixLink(url)
		}
	}
	return ""
}

// DefaultSchemaResolver supports every schema. Multimedia links point to
// the published binary, other links to the object identifier.
type DefaultSchemaResolver struct {
	// Titles computes link titles from existing `title` attributes
	Titles markup.TitlePolicy
	// Prefix is prepended to root relative URLs
	Prefix string
}

// IsSupported implements SchemaResolver
func (d *DefaultSchemaResolver) IsSupported(string) bool {
	return true
}

// LinkTitle implements SchemaResolver
func (d *DefaultSchemaResolver) LinkTitle(markup.Target) string {
	return ""
}

// PrefixLink implements SchemaResolver
func (d *DefaultSchemaResolver) PrefixLink(url string) string {
	if d.Prefix == "" || !strings.HasPrefix(url, "/") || strings.HasPrefix(url, "//") {
		return url
	}
	return strings.TrimSuffix(d.Prefix, "/") + url
}

// Resolve implements SchemaResolver
func (d *DefaultSchemaResolver) Resolve(ctx context.Context, element *etree.Element, target markup.Target, pub publisher.Interface) error {
	if err := d.title(ctx, element, target); err != nil {
		return err
	}
	switch t := target.(type) {
	case markup.MultimediaTarget:
		if pub == nil {
			return fmt.Errorf("no binary publisher configured")
		}
		url, err := pub.Publish(ctx, t.Object, "")
		if err != nil {
			return err
		}
		if strings.EqualFold(element.Tag, "img") {
			element.CreateAttr("src", d.PrefixLink(url))
		} else {
			element.CreateAttr("href", d.PrefixLink(url))
		}
	case markup.ComponentTarget:
		element.CreateAttr("href", t.ID)
	case markup.PageTarget:
		element.CreateAttr("href", t.ID)
	}
	return nil
}

func (d *DefaultSchemaResolver) title(ctx context.Context, element *etree.Element, target markup.Target) error {
	title := d.LinkTitle(target)
	if title == "" && d.Titles != nil {
		var (
			current string
			present bool
		)
		if a := plainAttr(element, "title"); a != nil {
			current, present = a.Value, true
		}
		var err error
		if title, err = d.Titles.LinkTitle(ctx, target, current, present); err != nil {
			return err
		}
	}
	if title == "" {
		if a := plainAttr(element, "title"); a != nil {
			element.RemoveAttr(a.Key)
		}
		return nil
	}
	element.CreateAttr("title", title)
	return nil
}

// xhtmlElements collects the XHTML descendants of root named tag
func xhtmlElements(root *etree.Element, tag string) []*etree.Element {
	var result []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, c := range e.ChildElements() {
			if strings.EqualFold(c.Tag, tag) && c.NamespaceURI() == repository.XHTMLNamespace {
				result = append(result, c)
			}
			walk(c)
		}
	}
	walk(root)
	return result
}

// plainAttr returns the attribute named key that carries no namespace prefix.
// etree's SelectAttr matches an unprefixed key in any namespace.
func plainAttr(element *etree.Element, key string) *etree.Attr {
	for i := range element.Attr {
		if a := &element.Attr[i]; a.Space == "" && a.Key == key {
			return a
		}
	}
	return nil
}

func removeAttr(element *etree.Element, namespace, key string) {
	for i, a := range element.Attr {
		if a.Key == key && a.NamespaceURI() == namespace {
			element.Attr = append(element.Attr[:i], element.Attr[i+1:]...)
			return
		}
	}
}

func isNamespaceDeclaration(a etree.Attr) bool {
	return a.Space == "xmlns" || a.Space == "" && a.Key == "xmlns"
}

// stripNamespaces drops element prefixes and every namespace declaration and
// namespaced attribute not in preserved. Children are stripped first as they
// resolve their prefixes through the declarations of their ancestors.
func stripNamespaces(e *etree.Element, preserved []string) {
	for _, c := range e.ChildElements() {
		stripNamespaces(c, preserved)
	}
	attrs := make([]etree.Attr, 0, len(e.Attr))
	for _, a := range e.Attr {
		switch {
		case isNamespaceDeclaration(a):
			if contains(preserved, a.Value) {
				attrs = append(attrs, a)
			}
		case a.Space == "":
			attrs = append(attrs, a)
		case contains(preserved, a.NamespaceURI()):
			attrs = append(attrs, a)
		}
	}
	e.Attr = attrs
	e.Space = ""
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
