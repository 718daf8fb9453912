// Package golang implements the Go language renderer.
package golang

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"text/template"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/simdata/internal/idl"
	"github.com/bearlytools/simdata/internal/render"
)

//go:embed templates/*
var f embed.FS
var templates *template.Template

func init() {
	t, err := template.New("").Funcs(template.FuncMap{"args": args}).ParseFS(f, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
	templates = t

	if _, ok := render.Supported[render.Go]; ok {
		panic("someone already registered the Go language renderer")
	}
	render.Supported[render.Go] = Renderer{}
}

// fieldArgs lets a field template see the struct it belongs to.
type fieldArgs struct {
	Struct string
	Field  fieldView
}

func args(s string, f fieldView) fieldArgs {
	return fieldArgs{Struct: s, Field: f}
}

type templateData struct {
	Source  string
	Package string
	Enums   []enumView
	Structs []structView
}

// Renderer implements render.Renderer for the Go language.
type Renderer struct{}

// Render implements render.Renderer.Render().
func (r Renderer) Render(ctx context.Context, file *idl.File, path string) ([]byte, error) {
	data, err := newTemplateData(file, path)
	if err != nil {
		return nil, err
	}

	buff := bytes.Buffer{}
	if err := templates.ExecuteTemplate(&buff, "simdata.tmpl", data); err != nil {
		return nil, err
	}
	out, err := format.Source(buff.Bytes())
	if err != nil {
		return nil, fmt.Errorf("rendered Go for %s does not format: %w", path, err)
	}
	return out, nil
}
