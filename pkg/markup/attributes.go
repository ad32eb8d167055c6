// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"strings"
)

type attribute struct {
	name  string
	value string
}

// Attributes is an ordered attribute map with case-insensitive keys
type Attributes struct {
	list  []attribute
	index map[string]int
}

// NewAttributes creates an empty attribute map
func NewAttributes() *Attributes {
	return &Attributes{index: map[string]int{}}
}

// ParseAttributes reads `key="value"`, `key='value'` and `key=value` pairs
// from the raw attribute text of a tag. Keys are lowercased. A later
// duplicate overwrites the value of an earlier one, keeping its position.
// Attributes without key or value are ignored.
func ParseAttributes(raw string) *Attributes {
	a := NewAttributes()
	i := 0
	for i < len(raw) {
		for i < len(raw) && (isSpace(raw[i]) || raw[i] == '/' || raw[i] == '>') {
			i++
		}
		start := i
		for i < len(raw) && !isSpace(raw[i]) && raw[i] != '=' && raw[i] != '>' && raw[i] != '/' {
			i++
		}
		key := raw[start:i]
		k := skipSpace(raw, i)
		if k < len(raw) && raw[k] == '=' {
			var value string
			value, i = readValue(raw, skipSpace(raw, k+1))
			if key != "" && value != "" {
				a.Set(strings.ToLower(key), value)
			}
		}
		// attributes without value are dropped
	}
	return a
}

func readValue(raw string, i int) (string, int) {
	if i >= len(raw) {
		return "", i
	}
	if q := raw[i]; q == '"' || q == '\'' {
		if e := strings.IndexByte(raw[i+1:], q); e >= 0 {
			return raw[i+1 : i+1+e], i + e + 2
		}
		return raw[i+1:], len(raw)
	}
	j := i
	for j < len(raw) && !isSpace(raw[j]) && raw[j] != '>' {
		j++
	}
	return raw[i:j], j
}

func skipSpace(raw string, i int) int {
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}
	return i
}

// Get returns the value of key
func (a *Attributes) Get(key string) (string, bool) {
	if i, ok := a.index[strings.ToLower(key)]; ok {
		return a.list[i].value, true
	}
	return "", false
}

// Has reports whether key is set
func (a *Attributes) Has(key string) bool {
	_, ok := a.index[strings.ToLower(key)]
	return ok
}

// Set stores value under name. An existing key keeps its position and spelling.
func (a *Attributes) Set(name, value string) {
	key := strings.ToLower(name)
	if i, ok := a.index[key]; ok {
		a.list[i].value = value
		return
	}
	a.index[key] = len(a.list)
	a.list = append(a.list, attribute{name: name, value: value})
}

// Delete removes key
func (a *Attributes) Delete(key string) {
	i, ok := a.index[strings.ToLower(key)]
	if !ok {
		return
	}
	a.list = append(a.list[:i], a.list[i+1:]...)
	a.index = make(map[string]int, len(a.list))
	for j, attr := range a.list {
		a.index[strings.ToLower(attr.name)] = j
	}
}

// Keys returns the attribute names in order
func (a *Attributes) Keys() []string {
	keys := make([]string, len(a.list))
	for i, attr := range a.list {
		keys[i] = attr.name
	}
	return keys
}

// Len returns the number of attributes
func (a *Attributes) Len() int {
	return len(a.list)
}

// Clone returns an independent copy
func (a *Attributes) Clone() *Attributes {
	c := &Attributes{
		list:  append([]attribute(nil), a.list...),
		index: make(map[string]int, len(a.index)),
	}
	for k, v := range a.index {
		c.index[k] = v
	}
	return c
}

// Render writes the attributes as ` key="value"` pairs, leaving out ignored keys
func (a *Attributes) Render(ignored ...string) string {
	var b strings.Builder
	for _, attr := range a.list {
		if contains(ignored, attr.name) {
			continue
		}
		q := `"`
		if strings.Contains(attr.value, `"`) {
			q = `'`
		}
		b.WriteString(" ")
		b.WriteString(attr.name)
		b.WriteString("=")
		b.WriteString(q)
		b.WriteString(attr.value)
		b.WriteString(q)
	}
	return b.String()
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}
