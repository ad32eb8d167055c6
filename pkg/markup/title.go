// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markup

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/tcmtemplating/linkforge/pkg/fields"
	"golang.org/x/net/html"
)

var (
	// ordinal prefix of numbered link titles
	linkTitle = regexp.MustCompile(`^\d{1,3}\.?\s`)
	// ordinal prefix of navigable item titles
	navigableTitle = regexp.MustCompile(`^(\d{1,5})\.?\s+`)
)

// TitlePolicy computes the tooltip of a rewritten link
//
//counterfeiter:generate . TitlePolicy
type TitlePolicy interface {
	// LinkTitle returns the tooltip for a link to target carrying title.
	// Present tells whether the link had a title at all. An empty result
	// means no tooltip.
	LinkTitle(ctx context.Context, target Target, title string, present bool) (string, error)
}

// DefaultTitlePolicy strips ordinal prefixes from link titles and falls back
// to the Title field of linked components
type DefaultTitlePolicy struct {
	Fields fields.TitleExtractor
}

// LinkTitle implements TitlePolicy
func (p *DefaultTitlePolicy) LinkTitle(ctx context.Context, target Target, title string, present bool) (string, error) {
	if present {
		title = strings.ReplaceAll(title, "&lt;br/&gt;", " ")
		if loc := linkTitle.FindStringIndex(title); loc != nil {
			title = title[loc[1]:]
		} else if o := ObjectOf(target); o.Title != "" && strings.EqualFold(title, o.Title) {
			title = NavigableTitle(o.Title)
		}
	}
	if title != "" {
		return title, nil
	}
	content := contentOf(target)
	if content == nil {
		return "", nil
	}
	var (
		t  string
		ok bool
	)
	if p.Fields != nil {
		t, ok = p.Fields.ExtractTitle(content)
	} else {
		t, ok = fields.ExtractTitle(content)
	}
	if !ok || t == "" {
		return "", nil
	}
	return html.EscapeString(strings.ReplaceAll(t, "<br/>", " ")), nil
}

// contentOf returns the field document root of component targets
func contentOf(target Target) *etree.Element {
	o := ObjectOf(target)
	switch target.(type) {
	case ComponentTarget, MultimediaTarget:
		if o.Content != nil {
			return o.Content.Root()
		}
	}
	return nil
}

// NavigableTitle strips the ordinal prefix of a navigable item title
func NavigableTitle(title string) string {
	if loc := navigableTitle.FindStringIndex(title); loc != nil {
		return title[loc[1]:]
	}
	return title
}

// NavigableNumber returns the ordinal prefix of a navigable item title
func NavigableNumber(title string) (int, bool) {
	m := navigableTitle.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
