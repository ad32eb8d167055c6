// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// TagMatch is an anchor or image tag found in a document
type TagMatch struct {
	// Offset of the opening `<` in the document
	Offset int
	// Length of the tag text in the document
	Length int
	// TagName as spelled in the document
	TagName string
	// RawAttributes is the tag text between the tag name and the closing `>` or `/>`
	RawAttributes string
	// Raw is the complete tag text
	Raw string
}

// Terminated reports whether the tag text ends with `>`
func (m TagMatch) Terminated() bool {
	return strings.HasSuffix(m.Raw, ">")
}

// SelfClosing reports whether the tag text ends with `/>`
func (m TagMatch) SelfClosing() bool {
	return strings.HasSuffix(m.Raw, "/>")
}

// End returns the offset following the tag
func (m TagMatch) End() int {
	return m.Offset + m.Length
}

// Scanner finds `<a ...>` and `<img ...>` tags carrying a link attribute.
// Quoted attribute values may contain `>` and tags may span lines. A tag
// without closing `>` is reported up to the next `<` and left to the caller
// to reject.
type Scanner struct {
	document string
	pos      int
}

// NewScanner creates a scanner over document
func NewScanner(document string) *Scanner {
	return &Scanner{document: document}
}

// Reset restarts scanning at the beginning of the document
func (s *Scanner) Reset() {
	s.pos = 0
}

// Next returns the next tag match, or false once the document is exhausted
func (s *Scanner) Next() (TagMatch, bool) {
	for s.pos < len(s.document) {
		i := strings.IndexByte(s.document[s.pos:], '<')
		if i < 0 {
			s.pos = len(s.document)
			break
		}
		start := s.pos + i
		if m, ok := s.match(start); ok {
			s.pos = m.End()
			return m, true
		}
		s.pos = start + 1
	}
	return TagMatch{}, false
}

// Scan collects all tag matches of document
func Scan(document string) []TagMatch {
	var matches []TagMatch
	s := NewScanner(document)
	for m, ok := s.Next(); ok; m, ok = s.Next() {
		matches = append(matches, m)
	}
	return matches
}

func (s *Scanner) match(start int) (TagMatch, bool) {
	doc := s.document
	j := start + 1
	for j < len(doc) && isNameByte(doc[j]) {
		j++
	}
	name := doc[start+1 : j]
	if a := atom.Lookup([]byte(strings.ToLower(name))); a != atom.A && a != atom.Img {
		return TagMatch{}, false
	}
	// a tag without attributes has no link
	if j == len(doc) || !isSpace(doc[j]) {
		return TagMatch{}, false
	}
	end, terminated := tagEnd(doc, j)
	if !terminated && end == len(doc) {
		if k := strings.IndexByte(doc[j:], '<'); k >= 0 {
			end = j + k
		}
	}
	raw := doc[start:end]
	attrs := strings.TrimSuffix(doc[j:end], ">")
	if terminated {
		attrs = strings.TrimSuffix(attrs, "/")
	}
	if !hasLinkAttribute(ParseAttributes(attrs)) {
		return TagMatch{}, false
	}
	return TagMatch{
		Offset:        start,
		Length:        end - start,
		TagName:       name,
		RawAttributes: attrs,
		Raw:           raw,
	}, true
}

// tagEnd returns the offset following the `>` closing a tag, skipping quoted
// attribute values. An unquoted `<` ends an unterminated tag.
func tagEnd(doc string, from int) (int, bool) {
	var quote byte
	afterEquals := false
	for k := from; k < len(doc); k++ {
		c := doc[k]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch {
		case c == '>':
			return k + 1, true
		case c == '<':
			return k, false
		case c == '=':
			afterEquals = true
			continue
		case (c == '"' || c == '\'') && afterEquals:
			quote = c
		}
		if !isSpace(c) {
			afterEquals = false
		}
	}
	return len(doc), false
}

func hasLinkAttribute(attrs *Attributes) bool {
	return attrs.Has("href") || attrs.Has("src") || attrs.Has("tridion:href")
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == ':' || c == '-' || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
