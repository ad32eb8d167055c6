// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package fields

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/tcmtemplating/linkforge/pkg/cache"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"k8s.io/klog/v2"
)

// Separator joins the names of embedded and linked fields
const Separator = "."

// DefaultCacheSize is the number of linked content documents an extractor keeps
const DefaultCacheSize = 50

// TitleExtractor finds the title field of a content document
//
//counterfeiter:generate . TitleExtractor
type TitleExtractor interface {
	ExtractTitle(content *etree.Element) (string, bool)
}

// Extractor extracts field values selected by dotted patterns such as
// `Title` or `Author.Name` from content documents. Linked components are
// resolved through Repository and their content is kept in Cache.
// An Extractor is owned by a single worker.
type Extractor struct {
	Repository repository.Interface
	Cache      *cache.LRU[string, *etree.Element]
}

// NewExtractor creates an extractor with its own content cache
func NewExtractor(repo repository.Interface, cacheSize int) *Extractor {
	return &Extractor{
		Repository: repo,
		Cache:      cache.New[string, *etree.Element](cacheSize),
	}
}

// Extract returns the values of the fields of content matching patterns, keyed by
// their dotted names. The first value found for a name wins.
func (e *Extractor) Extract(ctx context.Context, content *etree.Element, patterns []string) (map[string]string, error) {
	values := map[string]string{}
	if content == nil || len(patterns) == 0 {
		return values, nil
	}
	if err := e.parse(ctx, "", patterns, content, values); err != nil {
		return nil, err
	}
	return values, nil
}

func (e *Extractor) parse(ctx context.Context, prefix string, patterns []string, fields *etree.Element, values map[string]string) error {
	for _, field := range fields.ChildElements() {
		name := prefix + field.Tag
		exact, partial := include(name, patterns)
		if _, ok := values[name]; exact && !ok {
			if v := fieldValue(field); v != "" {
				values[name] = v
			}
		}
		if !partial {
			continue
		}
		if id, ok := linkTarget(field); ok {
			linked, err := e.content(ctx, id)
			if err != nil {
				return err
			}
			if linked != nil {
				if err := e.parse(ctx, name+Separator, patterns, linked, values); err != nil {
					return err
				}
			}
			continue
		}
		if len(field.ChildElements()) > 0 && !isXHTML(field) {
			if err := e.parse(ctx, name+Separator, patterns, field, values); err != nil {
				return err
			}
		}
	}
	return nil
}

// content returns the root of the content document of a linked component
func (e *Extractor) content(ctx context.Context, id string) (*etree.Element, error) {
	if e.Cache != nil {
		if root, ok := e.Cache.Get(id); ok {
			return root, nil
		}
	}
	if e.Repository == nil {
		return nil, nil
	}
	object, err := e.Repository.Resolve(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			klog.V(6).Infof("linked component %s not found\n", id)
			return nil, nil
		}
		return nil, fmt.Errorf("resolving linked component %s fails: %w", id, err)
	}
	var root *etree.Element
	if object.Content != nil {
		root = object.Content.Root()
	}
	if e.Cache != nil {
		e.Cache.Add(id, root)
	}
	return root, nil
}

// ExtractTitle returns the text of the first element named Title in content
func (e *Extractor) ExtractTitle(content *etree.Element) (string, bool) {
	return ExtractTitle(content)
}

// ExtractTitle returns the text of the first element named Title in content
func ExtractTitle(content *etree.Element) (string, bool) {
	if content == nil {
		return "", false
	}
	title := content
	if title.Tag != "Title" {
		if title = content.FindElement(".//Title"); title == nil {
			return "", false
		}
	}
	text := InnerText(title)
	return text, text != ""
}

// include reports whether a pattern names the field itself and whether
// a pattern names one of its descendants
func include(name string, patterns []string) (exact, partial bool) {
	for _, p := range patterns {
		if strings.EqualFold(p, name) {
			exact = true
		} else if len(p) > len(name) && strings.EqualFold(p[:len(name)+1], name+Separator) {
			partial = true
		}
	}
	return exact, partial
}

func fieldValue(field *etree.Element) string {
	if id, ok := linkTarget(field); ok {
		return id
	}
	if isXHTML(field) {
		return strings.TrimSpace(InnerXML(field))
	}
	if len(field.ChildElements()) > 0 {
		// embedded fields have no value of their own
		return ""
	}
	return strings.TrimSpace(field.Text())
}

func linkTarget(field *etree.Element) (string, bool) {
	for _, a := range field.Attr {
		if a.Key == "href" && a.NamespaceURI() == repository.XLinkNamespace && hasScheme(a.Value) {
			return a.Value, true
		}
	}
	return "", false
}

func hasScheme(v string) bool {
	return len(v) >= len(repository.Scheme) && strings.EqualFold(v[:len(repository.Scheme)], repository.Scheme)
}

func isXHTML(field *etree.Element) bool {
	if field.NamespaceURI() == repository.XHTMLNamespace {
		return true
	}
	for _, c := range field.ChildElements() {
		if c.NamespaceURI() == repository.XHTMLNamespace {
			return true
		}
	}
	return false
}

// InnerText concatenates the character data of e and its descendants
func InnerText(e *etree.Element) string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(el *etree.Element) {
		for _, t := range el.Child {
			switch c := t.(type) {
			case *etree.CharData:
				b.WriteString(c.Data)
			case *etree.Element:
				walk(c)
			}
		}
	}
	walk(e)
	return b.String()
}

// InnerXML serializes the children of e
func InnerXML(e *etree.Element) string {
	doc := etree.NewDocument()
	doc.SetRoot(e.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	start := strings.IndexByte(s, '>')
	if start < 0 || strings.HasSuffix(s[:start+1], "/>") {
		return ""
	}
	end := strings.LastIndex(s, "</")
	if end < start {
		return ""
	}
	return s[start+1 : end]
}
