// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Mode selects the resolution pipeline of a unit
type Mode string

const (
	// ModeAuto infers the mode from the file extension
	ModeAuto Mode = ""
	// ModeMarkup resolves link tags in rendered output markup
	ModeMarkup Mode = "markup"
	// ModeFormatText resolves XLink references in XHTML rich text
	ModeFormatText Mode = "formattext"
)

var formatTextExtensions = []string{".xml", ".xhtml", ".fmt"}

// ParseMode parses a mode name, the empty string and `auto` select ModeAuto
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case string(ModeMarkup):
		return ModeMarkup, nil
	case string(ModeFormatText), "format-text":
		return ModeFormatText, nil
	}
	return ModeAuto, fmt.Errorf("unknown mode '%s', expected one of auto, markup, formattext", s)
}

// ModeOf infers the mode of a file from its extension
func ModeOf(name string) Mode {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range formatTextExtensions {
		if ext == e {
			return ModeFormatText
		}
	}
	return ModeMarkup
}

// Unit is one document transformed in isolation
type Unit struct {
	// Source is the file the document is read from
	Source string
	// Name is the file name the result is written to
	Name string
	// Path is the output directory relative to the writer root
	Path string
	// Mode is the resolution pipeline, never ModeAuto once discovered
	Mode Mode
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s (%s)", u.Source, u.Mode)
}

// Discover lists the units below root. A file root yields a single unit.
// Hidden files and directories are skipped. A mode other than ModeAuto is
// forced on every unit.
func Discover(root string, mode Mode) ([]*Unit, error) {
	var units []*Unit
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		dir := filepath.Dir(rel)
		if dir == "." {
			dir = ""
		}
		m := mode
		if m == ModeAuto {
			m = ModeOf(path)
		}
		units = append(units, &Unit{Source: path, Name: d.Name(), Path: filepath.ToSlash(dir), Mode: m})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering units in %s fails: %w", root, err)
	}
	return units, nil
}
