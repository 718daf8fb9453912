package render

import (
	"errors"
	"testing"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/simdata/internal/idl"
)

const (
	fakeLang    Lang = 200
	failingLang Lang = 201
)

type fakeRenderer struct {
	out []byte
	err error
}

func (f fakeRenderer) Render(ctx context.Context, file *idl.File, path string) ([]byte, error) {
	return f.out, f.err
}

func TestRender(t *testing.T) {
	Supported[fakeLang] = fakeRenderer{out: []byte("package x\n")}
	Supported[failingLang] = fakeRenderer{err: errors.New("broken")}
	defer delete(Supported, fakeLang)
	defer delete(Supported, failingLang)

	file := idl.New()
	file.Package = "x"

	tests := []struct {
		name    string
		langs   []Lang
		wantErr bool
	}{
		{name: "Success", langs: []Lang{fakeLang}},
		{name: "Error: unsupported language", langs: []Lang{Unknown}, wantErr: true},
		{name: "Error: renderer fails", langs: []Lang{fakeLang, failingLang}, wantErr: true},
	}

	for _, test := range tests {
		got, err := Render(context.Background(), file, "x.simdata", test.langs...)
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestRender(%s): got err == nil, want err != nil", test.name)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestRender(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			continue
		}
		if len(got) != 1 || got[0].Package != "x" || got[0].Lang != fakeLang || string(got[0].Native) != "package x\n" {
			t.Errorf("TestRender(%s): got %+v", test.name, got)
		}
	}
}

func TestCleanImports(t *testing.T) {
	in := `package x

import (
	"sync"

	"github.com/bearlytools/simdata/languages/go/optional"
	"github.com/bearlytools/simdata/languages/go/reflect/enums"
	"github.com/bearlytools/simdata/languages/go/structs"
)

var d = sync.OnceValue(func() *structs.Descr { return nil })
`
	want := `package x

import (
	"sync"

	"github.com/bearlytools/simdata/languages/go/structs"
)

var d = sync.OnceValue(func() *structs.Descr { return nil })
`
	if got := string(cleanImports([]byte(in))); got != want {
		t.Errorf("TestCleanImports: got:\n%s\nwant:\n%s", got, want)
	}
}
