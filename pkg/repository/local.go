// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tcmtemplating/linkforge/pkg/osfakes/osshim"
)

// Local serves repository files from a local directory
type Local struct {
	os        osshim.Os
	localPath string
}

// NewLocalFiles creates Files reading from localPath
func NewLocalFiles(os osshim.Os, localPath string) *Local {
	return &Local{os, localPath}
}

// NewLocal loads the repository stored in localPath
func NewLocal(ctx context.Context, os osshim.Os, localPath string) (*Indexed, error) {
	return Load(ctx, "local "+localPath, NewLocalFiles(os, localPath))
}

// ReadFile reads a file of the repository from the file system
func (l *Local) ReadFile(_ context.Context, name string) ([]byte, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("file %s is outside of repository %s", name, l.localPath)
	}
	fn := filepath.Join(l.localPath, clean)
	cnt, err := l.os.ReadFile(fn)
	if err != nil {
		if l.os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s not found in %s: %w", name, l.localPath, err)
		}
		if isDir, err := l.os.IsDir(fn); err == nil && isDir {
			return nil, fmt.Errorf("%s is a directory", fn)
		}
		return nil, fmt.Errorf("reading file %s fails: %v", fn, err)
	}
	return cnt, nil
}
