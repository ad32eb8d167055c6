// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tcmtemplating/linkforge/pkg/osfakes/osshim"
)

// FSWriter is implementation of Writer interface for writing blobs to the file system
type FSWriter struct {
	Root string
	Ext  string
	Os   osshim.Os
}

// NewFSWriter creates a writer rooted at root
func NewFSWriter(root string) *FSWriter {
	return &FSWriter{Root: root, Os: &osshim.OsShim{}}
}

func (f *FSWriter) Write(name, path string, content []byte) error {
	p := filepath.Join(f.Root, path)

	if len(content) == 0 {
		return nil
	}
	if err := f.Os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}

	if len(f.Ext) > 0 {
		name = fmt.Sprintf("%s.%s", name, f.Ext)
	}

	filePath := filepath.Join(p, name)

	if err := f.Os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", filePath, err)
	}

	return nil
}
