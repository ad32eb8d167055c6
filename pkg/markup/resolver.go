// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tcmtemplating/linkforge/pkg/publisher"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"k8s.io/klog/v2"
)

// Elements emitted for rewritten tags
const (
	ComponentLinkElement = "ComponentLink"
	PageLinkElement      = "PageLink"
	BinaryLinkElement    = "BinaryLink"
	ImageElement         = "Image"
)

// Attributes computed for rewritten tags
const (
	ItemURIAttribute  = "ItemUri"
	ImageURLAttribute = "ImageUrl"
	TooltipAttribute  = "tooltip"
	TitleAttribute    = "title"
)

// LinkAttributes are checked in this order for a content identifier.
// Only the first one carrying an identifier is used.
var LinkAttributes = []string{"src", "href", "tridion:href"}

// IgnoredAttributes are never copied to rewritten tags
var IgnoredAttributes = []string{"tridion:href", "xmlns:tridion", "tridion:type", "tridion:targetattribute", "href", "src"}

// Rewrite is the output shape of a classified tag
type Rewrite struct {
	Target   Target
	Element  string
	BeginTag string
	EndTag   string
}

// SelfClosingTag returns BeginTag closed with ` />`
func (rw Rewrite) SelfClosingTag() string {
	return strings.TrimSuffix(rw.BeginTag, ">") + " />"
}

// LinkResolver rewrites anchor and image tags linking to content identifiers
// into server side link elements
type LinkResolver struct {
	Repository  repository.Interface
	Publisher   publisher.Interface
	TitlePolicy TitlePolicy
	// TagPrefix is prepended to emitted element names, e.g. `Tridion.Web:`
	TagPrefix string
	// Schemes are the identifier prefixes, `tcm:` when empty
	Schemes []string
	// Variant is passed to the publisher for images
	Variant string
}

// IsIdentifier reports whether value starts with one of schemes, ignoring case
func IsIdentifier(value string, schemes []string) bool {
	if len(schemes) == 0 {
		schemes = []string{repository.Scheme}
	}
	for _, s := range schemes {
		if len(value) >= len(s) && strings.EqualFold(value[:len(s)], s) {
			return true
		}
	}
	return false
}

// Identifier returns the first link attribute carrying a content identifier
func (r *LinkResolver) Identifier(attrs *Attributes) (string, string, bool) {
	for _, name := range LinkAttributes {
		if v, ok := attrs.Get(name); ok && IsIdentifier(v, r.Schemes) {
			return name, v, true
		}
	}
	return "", "", false
}

// Classify resolves the content identifier of a tag and returns its rewrite.
// It returns false for tags without identifier and for identifiers not found.
func (r *LinkResolver) Classify(ctx context.Context, tagName string, attrs *Attributes) (Rewrite, bool, error) {
	_, id, ok := r.Identifier(attrs)
	if !ok {
		return Rewrite{}, false, nil
	}
	target, err := ResolveTarget(ctx, r.Repository, id)
	if err != nil || target == nil {
		return Rewrite{}, false, err
	}

	attrs = attrs.Clone()
	title, present := attrs.Get(TitleAttribute)
	tooltip, err := r.titlePolicy().LinkTitle(ctx, target, title, present)
	if err != nil {
		return Rewrite{}, false, fmt.Errorf("computing link title of %s fails: %w", id, err)
	}
	attrs.Delete(TitleAttribute)
	if tooltip != "" {
		attrs.Set(TooltipAttribute, tooltip)
	}

	var element string
	switch t := target.(type) {
	case MultimediaTarget:
		if strings.EqualFold(tagName, "img") {
			if r.Publisher == nil {
				return Rewrite{}, false, errors.New("no binary publisher configured")
			}
			url, err := r.Publisher.Publish(ctx, t.Object, r.Variant)
			if err != nil {
				return Rewrite{}, false, fmt.Errorf("publishing %s fails: %w", t.ID, err)
			}
			attrs.Set(ImageURLAttribute, url)
			element = ImageElement
		} else {
			attrs.Set(ItemURIAttribute, t.ID)
			element = BinaryLinkElement
		}
	case ComponentTarget:
		attrs.Set(ItemURIAttribute, t.ID)
		element = ComponentLinkElement
	case PageTarget:
		attrs.Set(ItemURIAttribute, t.ID)
		element = PageLinkElement
	}

	name := r.TagPrefix + element
	return Rewrite{
		Target:   target,
		Element:  name,
		BeginTag: fmt.Sprintf(`<%s runat="server"%s>`, name, attrs.Render(IgnoredAttributes...)),
		EndTag:   fmt.Sprintf("</%s>", name),
	}, true, nil
}

func (r *LinkResolver) titlePolicy() TitlePolicy {
	if r.TitlePolicy == nil {
		return &DefaultTitlePolicy{}
	}
	return r.TitlePolicy
}

// Replacements scans document and returns the edits rewriting its links.
// Self-closing tags produce one replacement, other tags one for the begin
// tag and one for the end tag.
func (r *LinkResolver) Replacements(ctx context.Context, document string) ([]Replacement, error) {
	var (
		replacements []Replacement
		// offsets of close tags already replaced
		closed = map[int]bool{}
	)
	s := NewScanner(document)
	for m, ok := s.Next(); ok; m, ok = s.Next() {
		if !m.Terminated() {
			klog.Warningf("invalid tag %s\n", m.Raw)
			continue
		}
		rw, ok, err := r.Classify(ctx, m.TagName, ParseAttributes(m.RawAttributes))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if m.SelfClosing() {
			replacements = append(replacements, Replacement{Offset: m.Offset, OriginalLength: m.Length, Value: rw.SelfClosingTag()})
			continue
		}
		tail := document[m.End():]
		contentLength := FindCloseTagOffset(tail, m.TagName)
		closeLength := len(m.TagName) + 3
		// FindCloseTagOffset also returns 0 when there is no close tag at all
		if !HasCloseTagAt(tail, m.TagName, contentLength) {
			klog.Warningf("tag %s has no closing tag, inserting %s after it\n", m.Raw, rw.EndTag)
			closeLength = 0
		}
		end := m.End() + contentLength
		if closeLength > 0 && closed[end] {
			klog.Warningf("closing tag of %s already belongs to another link, leaving it untouched\n", m.Raw)
			continue
		}
		closed[end] = true
		replacements = append(replacements,
			Replacement{Offset: m.Offset, OriginalLength: m.Length, Value: rw.BeginTag},
			Replacement{Offset: end, OriginalLength: closeLength, Value: rw.EndTag},
		)
	}
	return replacements, nil
}

// Resolve rewrites all links of document
func (r *LinkResolver) Resolve(ctx context.Context, document string) (string, error) {
	replacements, err := r.Replacements(ctx, document)
	if err != nil {
		return "", err
	}
	klog.V(6).Infof("applying %d replacements\n", len(replacements))
	return Apply(document, replacements)
}
