// Package writer writes rendered schema files to their output location.
package writer

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	gfs "github.com/gopherfs/fs"
	osfs "github.com/gopherfs/fs/io/os"
	"github.com/gostdlib/base/context"

	log "github.com/golang/glog"

	"github.com/bearlytools/simdata/internal/render"
)

// FS is the filesystem the Writer reads and writes.
type FS interface {
	fs.ReadFileFS
	gfs.Writer
}

// extensions maps a language to the suffix of the files written for it.
var extensions = map[render.Lang]string{
	render.Go: ".gen.go",
}

// Runtime init check that render and writer support the same languages.
func init() {
	for lang := range render.Supported {
		if _, ok := extensions[lang]; !ok {
			panic(fmt.Sprintf("bug: we support lang %v, but writer does not", lang))
		}
	}
}

// Writer writes rendered files.
type Writer struct {
	fs FS
}

// Option is an option to New().
type Option func(w *Writer)

// WithFS uses the fs passed to write files to.
func WithFS(fs FS) Option {
	return func(w *Writer) {
		w.fs = fs
	}
}

// New creates a new Writer. By default it writes to the local disk.
func New(options ...Option) (*Writer, error) {
	fs, err := osfs.New()
	if err != nil {
		return nil, fmt.Errorf("could not create an osfs: %s", err)
	}
	w := &Writer{fs: fs}
	for _, o := range options {
		o(w)
	}
	return w, nil
}

// OutPath returns where a render of the schema at path is written inside dir. The file is
// named after the schema file: dir/simdata.simdata renders to dir/simdata.gen.go.
func OutPath(dir string, r render.Rendered) (string, error) {
	ext, ok := extensions[r.Lang]
	if !ok {
		return "", fmt.Errorf("bug: writer does not support language: %v", r.Lang)
	}
	base := filepath.Base(r.Path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+ext), nil
}

// Write writes every render into dir and returns the paths written. A file whose content
// is unchanged is not rewritten and is not returned.
func (w *Writer) Write(ctx context.Context, dir string, rendered []render.Rendered) ([]string, error) {
	var written []string
	for _, r := range rendered {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		p, err := OutPath(dir, r)
		if err != nil {
			return written, err
		}

		if old, err := w.fs.ReadFile(p); err == nil && bytes.Equal(old, r.Native) {
			log.V(1).Infof("%s is up to date", p)
			continue
		}
		if err := w.fs.WriteFile(p, r.Native, 0o644); err != nil {
			return written, fmt.Errorf("problem writing package(%s) to file(%s): %w", r.Package, p, err)
		}
		log.V(1).Infof("wrote %s", p)
		written = append(written, p)
	}
	return written, nil
}
