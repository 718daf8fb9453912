package writer

import (
	"testing"

	"github.com/gostdlib/base/context"

	memfs "github.com/gopherfs/fs/io/mem/simple"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/simdata/internal/render"
)

func TestOutPath(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		r       render.Rendered
		want    string
		wantErr bool
	}{
		{
			name: "Success: schema in another dir",
			dir:  "/out",
			r:    render.Rendered{Path: "/src/schema/simdata.simdata", Lang: render.Go},
			want: "/out/simdata.gen.go",
		},
		{
			name: "Success: no extension",
			dir:  "out",
			r:    render.Rendered{Path: "prefs", Lang: render.Go},
			want: "out/prefs.gen.go",
		},
		{
			name:    "Error: unknown language",
			dir:     "/out",
			r:       render.Rendered{Path: "prefs.simdata", Lang: render.Unknown},
			wantErr: true,
		},
	}

	for _, test := range tests {
		got, err := OutPath(test.dir, test.r)
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestOutPath(%s): got err == nil, want err != nil", test.name)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestOutPath(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			continue
		}
		if got != test.want {
			t.Errorf("TestOutPath(%s): got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestWrite(t *testing.T) {
	ctx := context.Background()
	testFS := memfs.New()
	w, err := New(WithFS(testFS))
	if err != nil {
		t.Fatalf("TestWrite: %s", err)
	}

	rendered := []render.Rendered{
		{Package: "prefs", Path: "schema/prefs.simdata", Lang: render.Go, Native: []byte("package prefs\n")},
		{Package: "props", Path: "schema/props.simdata", Lang: render.Go, Native: []byte("package props\n")},
	}

	got, err := w.Write(ctx, "/out", rendered)
	if err != nil {
		t.Fatalf("TestWrite: %s", err)
	}
	if diff := pretty.Compare([]string{"/out/prefs.gen.go", "/out/props.gen.go"}, got); diff != "" {
		t.Errorf("TestWrite: -want/+got:\n%s", diff)
	}
	b, err := testFS.ReadFile("/out/prefs.gen.go")
	if err != nil {
		t.Fatalf("TestWrite: %s", err)
	}
	if string(b) != "package prefs\n" {
		t.Errorf("TestWrite: got content %q, want %q", b, "package prefs\n")
	}

	// A file already holding the rendered content is not written.
	seeded := memfs.New()
	if err := seeded.WriteFile("/out/prefs.gen.go", []byte("package prefs\n"), 0o644); err != nil {
		t.Fatalf("TestWrite: %s", err)
	}
	w, err = New(WithFS(seeded))
	if err != nil {
		t.Fatalf("TestWrite: %s", err)
	}
	got, err = w.Write(ctx, "/out", rendered)
	if err != nil {
		t.Fatalf("TestWrite: %s", err)
	}
	if diff := pretty.Compare([]string{"/out/props.gen.go"}, got); diff != "" {
		t.Errorf("TestWrite(seeded): -want/+got:\n%s", diff)
	}

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := w.Write(cctx, "/out", rendered); err == nil {
		t.Errorf("TestWrite(cancelled): got err == nil, want err != nil")
	}
}
