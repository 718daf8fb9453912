package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/go-json-experiment/json"
	memfs "github.com/gopherfs/fs/io/mem/simple"
	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testSchema = `
package prefs

Enum Mode int32 {
	WIRE @0
	"ONE-WAY" @1
}

Struct Label {
	draw bool = true
	names []string legacy "namelist"
}

Struct Prefs {
	mode Mode = WIRE
	label Label
}
`

func testFS(t *testing.T, files map[string]string) compilerFS {
	t.Helper()
	f := memfs.New()
	for p, content := range files {
		require.NoError(t, f.WriteFile(p, []byte(content), 0o644))
	}
	return f
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		path    string
		want    Config
		wantErr bool
	}{
		{
			name: "Success: no config",
			want: Config{},
		},
		{
			name:  "Success: default toml",
			files: map[string]string{"/work/simdatac.toml": "out = \"gen\"\npackage = \"model\"\nverbose = true\n"},
			want:  Config{Out: "gen", Package: "model", Verbose: true},
		},
		{
			name:  "Success: default yaml",
			files: map[string]string{"/work/simdatac.yaml": "out: gen\npackage: model\n"},
			want:  Config{Out: "gen", Package: "model"},
		},
		{
			name:  "Success: named file",
			files: map[string]string{"/work/conf/c.yml": "verbose: true\n"},
			path:  "/work/conf/c.yml",
			want:  Config{Verbose: true},
		},
		{
			name:    "Error: named file missing",
			path:    "/work/conf/c.toml",
			wantErr: true,
		},
		{
			name:    "Error: bad toml",
			files:   map[string]string{"/work/simdatac.toml": "out = \n"},
			wantErr: true,
		},
		{
			name:    "Error: bad package",
			files:   map[string]string{"/work/simdatac.toml": "package = \"Not-Valid\"\n"},
			wantErr: true,
		},
		{
			name:    "Error: unknown extension",
			files:   map[string]string{"/work/c.json": "{}"},
			path:    "/work/c.json",
			wantErr: true,
		},
	}

	for _, test := range tests {
		got, err := loadConfig(testFS(t, test.files), "/work", test.path)
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestLoadConfig(%s): got err == nil, want err != nil", test.name)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestLoadConfig(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			continue
		}
		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestLoadConfig(%s): -want/+got:\n%s", test.name, diff)
		}
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	fsys := testFS(t, map[string]string{"/src/prefs.simdata": testSchema})
	written, err := generate(ctx, fsys, "/src/prefs.simdata", Config{})
	require.NoError(t, err)
	require.Equal(t, []string{"/src/prefs.gen.go"}, written)

	b, err := fsys.ReadFile("/src/prefs.gen.go")
	require.NoError(t, err)
	require.Contains(t, string(b), "package prefs")
	require.Contains(t, string(b), "func (x *Prefs) MutableLabel() *Label {")

	fsys = testFS(t, map[string]string{"/src/prefs.simdata": testSchema})
	written, err = generate(ctx, fsys, "/src/prefs.simdata", Config{Out: "/out", Package: "model"})
	require.NoError(t, err)
	require.Equal(t, []string{"/out/prefs.gen.go"}, written)
	b, err = fsys.ReadFile("/out/prefs.gen.go")
	require.NoError(t, err)
	require.True(t, strings.Contains(string(b), "package model\n"))

	fsys = testFS(t, map[string]string{"/src/bad.simdata": "package bad\nStruct A {\n\tb B\n}\n"})
	_, err = generate(ctx, fsys, "/src/bad.simdata", Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown type")
	require.ErrorIs(t, err, errors.Error{Category: errors.CatUser, Type: errors.TypeSchema})

	fsys = testFS(t, map[string]string{"/src/collide.simdata": "package bad\nStruct A {\n\tempty bool\n\tisEmpty bool\n}\n"})
	_, err = generate(ctx, fsys, "/src/collide.simdata", Config{})
	require.Error(t, err)
	require.ErrorIs(t, err, errors.Error{Category: errors.CatUser, Type: errors.TypeRender})

	_, err = generate(ctx, fsys, "/src/missing.simdata", Config{})
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	ctx := context.Background()
	fsys := testFS(t, map[string]string{"/src/prefs.simdata": testSchema})
	file, err := parseSchema(ctx, fsys, "/src/prefs.simdata")
	require.NoError(t, err)

	want := schemaInfo{
		Package: "prefs",
		Enums: []enumInfo{
			{Name: "Mode", Values: []enumValueInfo{{Text: "WIRE", Code: 0}, {Text: "ONE-WAY", Code: 1}}},
		},
		Structs: []structInfo{
			{Name: "Label", Fields: []fieldInfo{
				{Name: "draw", Legacy: "draw", Type: "bool", Default: "true"},
				{Name: "names", Legacy: "namelist", Type: "[]string"},
			}},
			{Name: "Prefs", Fields: []fieldInfo{
				{Name: "mode", Legacy: "mode", Type: "Mode", Default: "WIRE"},
				{Name: "label", Legacy: "label", Type: "Label"},
			}},
		},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, describe(buf, file, "json"))
	var gotJSON schemaInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &gotJSON))
	if diff := pretty.Compare(want, gotJSON); diff != "" {
		t.Errorf("TestDescribe(json): -want/+got:\n%s", diff)
	}

	buf.Reset()
	require.NoError(t, describe(buf, file, "yaml"))
	var gotYAML schemaInfo
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &gotYAML))
	if diff := pretty.Compare(want, gotYAML); diff != "" {
		t.Errorf("TestDescribe(yaml): -want/+got:\n%s", diff)
	}

	require.Error(t, describe(buf, file, "xml"))
}

func TestFindSchema(t *testing.T) {
	got, err := findSchema(testFS(t, nil), "dir/prefs.simdata")
	require.NoError(t, err)
	require.Equal(t, "dir/prefs.simdata", got)
}
