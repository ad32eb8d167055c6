// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

const (
	// XHTMLNamespace is the namespace of rich text fields
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"
	// XLinkNamespace is the namespace of link attributes in content documents
	XLinkNamespace = "http://www.w3.org/1999/xlink"
	// ContentElement is the root element of Markdown based field documents
	ContentElement = "Content"
	// BodyField is the field holding the rendered Markdown body
	BodyField = "Body"
)

var (
	// GitHub Flavored Markdown with front matter, rendered as XHTML
	gmMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM, meta.Meta),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)
)

// ParseContent parses a field document. Markdown files are converted to a
// field document, everything else is read as XML.
func ParseContent(name string, data []byte) (*etree.Document, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return MarkdownContent(data)
	}
	doc := newDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing content %s fails: %w", name, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("content %s has no root element", name)
	}
	return doc, nil
}

// MarkdownContent converts a Markdown document into a field document. Front
// matter keys become fields, nested maps become embedded fields and lists
// repeat the field. The rendered body is stored as XHTML in the Body field.
func MarkdownContent(source []byte) (*etree.Document, error) {
	ctx := parser.NewContext()
	node := gmMarkdown.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))
	fields, err := meta.TryGet(ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter fails: %w", err)
	}
	var b bytes.Buffer
	if err := gmMarkdown.Renderer().Render(&b, source, node); err != nil {
		return nil, fmt.Errorf("rendering markdown fails: %w", err)
	}

	doc := newDocument()
	root := doc.CreateElement(ContentElement)
	addFields(root, fields)

	body := newDocument()
	if err := body.ReadFromString(`<` + BodyField + ` xmlns="` + XHTMLNamespace + `">` + b.String() + `</` + BodyField + `>`); err != nil {
		return nil, fmt.Errorf("parsing rendered markdown fails: %w", err)
	}
	root.AddChild(body.Root())
	return doc, nil
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.Entity = xml.HTMLEntity
	return doc
}

func addFields(parent *etree.Element, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		addField(parent, k, fields[k])
	}
}

func addField(parent *etree.Element, name string, value interface{}) {
	switch v := value.(type) {
	case nil:
		parent.CreateElement(name)
	case []interface{}:
		for _, item := range v {
			addField(parent, name, item)
		}
	case map[string]interface{}:
		addFields(parent.CreateElement(name), v)
	case map[interface{}]interface{}:
		embedded := make(map[string]interface{}, len(v))
		for k, val := range v {
			embedded[fmt.Sprint(k)] = val
		}
		addFields(parent.CreateElement(name), embedded)
	default:
		parent.CreateElement(name).SetText(fmt.Sprint(v))
	}
}
