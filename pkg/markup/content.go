// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markup

// FindCloseTagOffset returns the offset of the first `</tagName>` in tail,
// ignoring case. It returns 0 when tail has no such close tag, which cannot
// be told apart from a close tag at the very beginning of tail.
func FindCloseTagOffset(tail, tagName string) int {
	if i := indexCloseTag(tail, tagName); i >= 0 {
		return i
	}
	return 0
}

// HasCloseTagAt reports whether `</tagName>` starts at offset of tail
func HasCloseTagAt(tail, tagName string, offset int) bool {
	return offset >= 0 && offset <= len(tail) && isCloseTag(tail[offset:], tagName)
}

func indexCloseTag(s, tagName string) int {
	for i := 0; i+len(tagName)+3 <= len(s); i++ {
		if s[i] == '<' && isCloseTag(s[i:], tagName) {
			return i
		}
	}
	return -1
}

func isCloseTag(s, tagName string) bool {
	n := len(tagName) + 3
	if len(s) < n || s[0] != '<' || s[1] != '/' || s[n-1] != '>' {
		return false
	}
	for i := 0; i < len(tagName); i++ {
		if lower(s[2+i]) != lower(tagName[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
