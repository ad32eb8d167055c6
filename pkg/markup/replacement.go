// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidReplacement is returned for replacements outside of the
// document or overlapping each other
var ErrInvalidReplacement = errors.New("invalid replacement")

// Replacement substitutes OriginalLength bytes at Offset of the original
// document with Value
type Replacement struct {
	Offset         int
	OriginalLength int
	Value          string
}

func (r Replacement) String() string {
	return fmt.Sprintf("offset: %d, length: %d, value: %q", r.Offset, r.OriginalLength, r.Value)
}

// Sort orders replacements by offset, then by original length
func Sort(replacements []Replacement) {
	sort.SliceStable(replacements, func(i, j int) bool {
		if replacements[i].Offset != replacements[j].Offset {
			return replacements[i].Offset < replacements[j].Offset
		}
		return replacements[i].OriginalLength < replacements[j].OriginalLength
	})
}

// Apply applies all replacements, whose offsets refer to document, in one
// pass. The replacements slice is not modified.
func Apply(document string, replacements []Replacement) (string, error) {
	if len(replacements) == 0 {
		return document, nil
	}
	sorted := append([]Replacement(nil), replacements...)
	Sort(sorted)

	covered := 0
	for i, r := range sorted {
		if r.Offset < 0 || r.OriginalLength < 0 || r.Offset+r.OriginalLength > len(document) {
			return "", fmt.Errorf("%w: %v is outside of a document of length %d", ErrInvalidReplacement, r, len(document))
		}
		if i > 0 && r.Offset < covered {
			return "", fmt.Errorf("%w: %v overlaps %v", ErrInvalidReplacement, r, sorted[i-1])
		}
		covered = r.Offset + r.OriginalLength
	}

	out := []byte(document)
	delta := 0
	for _, r := range sorted {
		at := r.Offset + delta
		tail := append([]byte(r.Value), out[at+r.OriginalLength:]...)
		out = append(out[:at], tail...)
		delta += len(r.Value) - r.OriginalLength
	}
	return string(out), nil
}
