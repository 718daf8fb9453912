package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gostdlib/base/context"
	"github.com/johnsiilver/halfpike"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	log "github.com/golang/glog"

	"github.com/bearlytools/simdata/internal/conversions"
	"github.com/bearlytools/simdata/internal/idl"
	"github.com/bearlytools/simdata/internal/render"
	"github.com/bearlytools/simdata/internal/writer"
	"github.com/bearlytools/simdata/languages/go/errors"
)

const schemaExt = ".simdata"

var genCmd = &cobra.Command{
	Use:   "gen [path]",
	Short: "Generate Go from a .simdata file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := generate(cmd.Context(), fsys, pathArg(args), cfg)
		if err != nil {
			return err
		}
		for _, p := range written {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
}

// generate compiles the schema at path and writes the result. It returns the files
// written.
func generate(ctx context.Context, fsys compilerFS, path string, c Config) ([]string, error) {
	schema, err := findSchema(fsys, path)
	if err != nil {
		return nil, err
	}
	file, err := parseSchema(ctx, fsys, schema)
	if err != nil {
		return nil, err
	}
	if c.Package != "" {
		log.V(1).Infof("package %s renamed to %s", file.Package, c.Package)
		file.Package = c.Package
	}

	rendered, err := render.Render(ctx, file, schema, render.Go)
	if err != nil {
		return nil, errors.E(ctx, errors.CatUser, errors.TypeRender, pkgerrors.Wrapf(err, "rendering %s", schema))
	}

	out := c.Out
	if out == "" {
		out = filepath.Dir(schema)
	}
	w, err := writer.New(writer.WithFS(fsys))
	if err != nil {
		return nil, err
	}
	written, err := w.Write(ctx, out, rendered)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "writing %s", schema)
	}
	log.Infof("simdatac: %s: %d file(s) written", schema, len(written))
	return written, nil
}

// findSchema returns path if it names a schema file, otherwise the single schema file in
// the directory path.
func findSchema(fsys fs.FS, path string) (string, error) {
	if strings.HasSuffix(path, schemaExt) {
		return path, nil
	}
	entries, err := fs.ReadDir(fsys, path)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "reading directory %s", path)
	}

	var found []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == schemaExt {
			found = append(found, e.Name())
		}
	}
	switch len(found) {
	case 0:
		return "", pkgerrors.Errorf("no %s file found in directory %s", schemaExt, path)
	case 1:
		return filepath.Join(path, found[0]), nil
	}
	return "", pkgerrors.Errorf("multiple %s files found in directory %s: %v", schemaExt, path, found)
}

func parseSchema(ctx context.Context, fsys fs.ReadFileFS, path string) (*idl.File, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "reading schema")
	}
	file := idl.New()
	if err := halfpike.Parse(ctx, conversions.ByteSlice2String(content), file); err != nil {
		return nil, errors.E(ctx, errors.CatUser, errors.TypeSchema, pkgerrors.Wrapf(err, "parsing %s", path))
	}
	log.V(1).Infof("parsed %s: %d enums, %d structs", path, len(file.Enums()), len(file.Structs()))
	return file, nil
}
