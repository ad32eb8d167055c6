// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates DryRunWriters writing to the
	// same backend but for different roots (e.g. for
	// documents and binaries)
	GetWriter(root string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() bool
}

type dryRunWriter struct {
	Writer io.Writer
	files  []*file
	mux    sync.Mutex
	t1     time.Time
}

type file struct {
	path string
	size int
}

type writer struct {
	root string
	d    *dryRunWriter
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// writing to the same backend but for different roots (e.g. for
// documents and binaries)
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		files:  []*file{},
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{
		root: root,
		d:    d,
	}
}

func (w *writer) Write(name, path string, content []byte) error {
	f := &file{
		path: strings.TrimPrefix(strings.Join([]string{w.root, path, name}, "/"), "/"),
		size: len(content),
	}
	f.path = strings.ReplaceAll(f.path, "//", "/")
	w.d.mux.Lock()
	defer w.d.mux.Unlock()
	w.d.files = append(w.d.files, f)
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() bool {
	var b bytes.Buffer

	d.mux.Lock()
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	d.mux.Unlock()

	elapsedTime := time.Since(d.t1)
	b.WriteString(fmt.Sprintf("\nBuild finished in %f seconds\n", elapsedTime.Seconds()))

	if _, err := d.Writer.Write(b.Bytes()); err != nil {
		fmt.Println(err.Error())
		return false
	}
	return true
}

func format(files []*file, b *bytes.Buffer) {
	all := map[string]bool{}
	for _, f := range files {
		dd := strings.Split(f.path, "/")
		for i, s := range dd {
			_p := strings.Join(dd[:i+1], "/")
			if all[_p] {
				continue
			}
			all[_p] = true
			b.Write(bytes.Repeat([]byte("  "), i))
			if i == len(dd)-1 && f.size > 0 {
				b.WriteString(fmt.Sprintf("%s (%d bytes)\n", s, f.size))
				continue
			}
			b.WriteString(fmt.Sprintf("%s\n", s))
		}
	}
}
