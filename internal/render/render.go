// Package render sets up the interface for rendering a .simdata file to a language native
// representation. It also supports registering the handlers of those renderers (which are
// in other packages).
package render

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/simdata/internal/conversions"
	"github.com/bearlytools/simdata/internal/idl"
)

// Lang represents a programming language we can render from a .simdata file.
type Lang uint8

const (
	Unknown Lang = 0
	Go      Lang = 1
)

// Supported is languages that we have registered support for.
var Supported = map[Lang]Renderer{}

// Renderer renders a language native file from a .simdata file.
type Renderer interface {
	Render(ctx context.Context, file *idl.File, path string) ([]byte, error)
}

// Rendered represents rendered output for a language.
type Rendered struct {
	// Package is the package the schema declares.
	Package string
	// Path is the path of the source .simdata file.
	Path string
	// Lang is the language this is for.
	Lang Lang
	// Native is the output for the language.
	Native []byte
}

// Render is used to render a set of languages from the parsed .simdata file at path.
func Render(ctx context.Context, file *idl.File, path string, langs ...Lang) ([]Rendered, error) {
	out := make([]Rendered, 0, len(langs))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for i, l := range langs {
		if _, ok := Supported[l]; !ok {
			return nil, fmt.Errorf("language %v is not supported", langs[i])
		}
	}

	wg := sync.WaitGroup{}
	mu := sync.Mutex{}
	errCh := make(chan error, 1)

	for _, lang := range langs {
		renderer := Supported[lang]

		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := renderer.Render(ctx, file, path)
			if err != nil {
				select {
				case errCh <- err:
				default:
				}
				cancel()
				return
			}

			mu.Lock()
			out = append(out, Rendered{
				Package: file.Package,
				Path:    path,
				Lang:    lang,
				Native:  cleanImports(b),
			})
			mu.Unlock()
		}()
	}
	wg.Wait()
	select {
	case err := <-errCh:
		return nil, err
	default:
	}
	return out, nil
}

type importCheck struct {
	path string
	find string
}

var findImports = []importCheck{
	{"github.com/bearlytools/simdata/languages/go/optional", "optional."},
	{"github.com/bearlytools/simdata/languages/go/reflect/enums", "enums."},
	{"github.com/bearlytools/simdata/languages/go/structs", "structs."},
	{"sync", "sync."},
}

// cleanImports removes imports the template always writes but the schema did not use,
// such as enums for a schema without an Enum.
func cleanImports(b []byte) []byte {
	lines := bytes.SplitAfter(b, []byte("\n"))
	remove := map[string]bool{}
	for _, ic := range findImports {
		remove[ic.path] = true
	}

	for _, line := range lines {
		if isImportLine(line) {
			continue
		}
		for _, ic := range findImports {
			if bytes.Contains(line, conversions.UnsafeGetBytes(ic.find)) {
				delete(remove, ic.path)
			}
		}
	}

	out := &bytes.Buffer{}
	for _, line := range lines {
		if isImportLine(line) && remove[importPath(line)] {
			continue
		}
		out.Write(line)
	}
	return out.Bytes()
}

func isImportLine(line []byte) bool {
	t := bytes.TrimSpace(line)
	return len(t) > 1 && t[0] == '"' && t[len(t)-1] == '"'
}

func importPath(line []byte) string {
	t := bytes.Trim(bytes.TrimSpace(line), `"`)
	return conversions.ByteSlice2String(t)
}
