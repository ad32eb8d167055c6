// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	treeURL = regexp.MustCompile(`^https://([^/]+)/([^/]+)/([^/]+)/tree/([^/]+)/?([^\?#]*)$`)
	repoURL = regexp.MustCompile(`^https://([^/]+)/([^/]+)/([^/\?#]+?)(\.git)?/?$`)
)

// Locator points to a repository directory hosted on GitHub
type Locator struct {
	Host  string
	Owner string
	Repo  string
	Ref   string
	Path  string
}

// ParseLocator parses `https://host/owner/repo[/tree/ref[/path]]` URLs. The
// default branch is used when the URL names no reference.
func ParseLocator(u string) (*Locator, error) {
	if c := treeURL.FindStringSubmatch(u); c != nil {
		return &Locator{Host: c[1], Owner: c[2], Repo: c[3], Ref: c[4], Path: strings.Trim(c[5], "/")}, nil
	}
	if c := repoURL.FindStringSubmatch(u); c != nil {
		return &Locator{Host: c[1], Owner: c[2], Repo: c[3]}, nil
	}
	return nil, fmt.Errorf("%s is not a GitHub repository url of the form https://host/owner/repo/tree/ref/path", u)
}

// String returns the GitHub website link of the located directory
func (l *Locator) String() string {
	if l.Ref == "" {
		return fmt.Sprintf("https://%s/%s/%s", l.Host, l.Owner, l.Repo)
	}
	s := fmt.Sprintf("https://%s/%s/%s/tree/%s", l.Host, l.Owner, l.Repo, l.Ref)
	if l.Path != "" {
		s += "/" + l.Path
	}
	return s
}
