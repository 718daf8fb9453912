package golang

import (
	"os"
	"strings"
	"testing"

	"github.com/gostdlib/base/context"
	"github.com/johnsiilver/halfpike"

	"github.com/bearlytools/simdata/internal/idl"
)

func parse(t *testing.T, content string) *idl.File {
	t.Helper()
	f := idl.New()
	if err := halfpike.Parse(context.Background(), content, f); err != nil {
		t.Fatalf("parse: %s", err)
	}
	return f
}

func TestRender(t *testing.T) {
	f := parse(t, `
package prefs

Enum Mode int32 {
	WIRE @0
	"ONE-WAY" @1
}

Struct Label {
	draw bool = true
	type string = "arial.ttf"
	names []string legacy "namelist"
}

Struct Prefs {
	mode Mode = "ONE-WAY"
	scale float64 = 1.5
	ids []uint64
	label Label
}
`)

	b, err := Renderer{}.Render(context.Background(), f, "dir/prefs.simdata")
	if err != nil {
		t.Fatalf("TestRender: %s", err)
	}
	got := string(b)

	wants := []string{
		"// source: prefs.simdata",
		"package prefs",
		"type Mode int32",
		"Mode_ONE_WAY Mode = 1",
		`Insert(1, "ONE-WAY")`,
		"func ModeTable() *enums.Table { return modeTable() }",
		"type_ optional.String",
		`structs.String("type", "arial.ttf", func(x *Label) *optional.String { return &x.type_ })`,
		`structs.Bool("draw", true, func(x *Label) *optional.Bool { return &x.draw })`,
		`structs.Strings("names", func(x *Label) *[]string { return &x.names }).Legacy("namelist")`,
		`structs.Enum("mode", int32(Mode_ONE_WAY), modeTable, func(x *Prefs) *optional.Scalar[int32] { return &x.mode })`,
		`structs.Number("scale", 1.5, func(x *Prefs) *optional.Scalar[float64] { return &x.scale })`,
		`structs.IDs("ids", func(x *Prefs) *[]uint64 { return &x.ids })`,
		`structs.Sub[Prefs, Label]("label", labelDescr, func(x *Prefs) **Label { return &x.label })`,
		"func (x *Label) Type() string {",
		"func (x *Prefs) Mode() Mode {",
		"return Mode(x.mode.ValueOr(int32(Mode_ONE_WAY)))",
		"func (x *Prefs) AddIds(v ...uint64) *Prefs {",
		"func (x *Prefs) MutableLabel() *Label {",
		"func (x *Prefs) IsEmpty() bool { return x == nil || structs.IsEmpty(x) }",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("TestRender: output does not contain %q", want)
		}
	}
}

func TestRenderCollisions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "Error: accessor named like a generated method",
			content: `
package prefs
Struct Label {
	empty bool
	isEmpty bool
}
`,
			wantErr: true,
		},
		{
			name: "Error: two fields with one accessor",
			content: `
package prefs
Struct Label {
	font string
	fontSize []string
	fontSizeSize uint32
}
`,
			wantErr: true,
		},
		{
			name: "Success: no collision",
			content: `
package prefs
Struct Label {
	font string
	fontSize uint32
}
`,
		},
	}

	for _, test := range tests {
		_, err := Renderer{}.Render(context.Background(), parse(t, test.content), "prefs.simdata")
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestRenderCollisions(%s): got err == nil, want err != nil", test.name)
		case err != nil && !test.wantErr:
			t.Errorf("TestRenderCollisions(%s): got err == %s, want err == nil", test.name, err)
		}
	}
}

// TestRenderLongBodies covers go/format expanding one line function bodies that do not fit
// on a line.
func TestRenderLongBodies(t *testing.T) {
	f := parse(t, `
package prefs

Struct ProjectorDisplaySettings {
	draw bool
	interpolateProjectorFieldOfView bool
}
`)
	b, err := Renderer{}.Render(context.Background(), f, "prefs.simdata")
	if err != nil {
		t.Fatalf("TestRenderLongBodies: %s", err)
	}
	got := string(b)

	wants := []string{
		"func (x *ProjectorDisplaySettings) HasDraw() bool { return x != nil && x.draw.HasValue() }\n",
		"func (x *ProjectorDisplaySettings) HasInterpolateProjectorFieldOfView() bool {\n\treturn x != nil && x.interpolateProjectorFieldOfView.HasValue()\n}\n",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("TestRenderLongBodies: output does not contain %q", want)
		}
	}
}

// TestRenderSchema checks the checked in generated code against the schema it came from.
func TestRenderSchema(t *testing.T) {
	b, err := os.ReadFile("../../../schema/simdata.simdata")
	if err != nil {
		t.Fatalf("TestRenderSchema: %s", err)
	}
	out, err := Renderer{}.Render(context.Background(), parse(t, string(b)), "simdata.simdata")
	if err != nil {
		t.Fatalf("TestRenderSchema: %s", err)
	}
	gen, err := os.ReadFile("../../../simdata.gen.go")
	if err != nil {
		t.Fatalf("TestRenderSchema: %s", err)
	}

	got, want := strings.Split(string(out), "\n"), strings.Split(string(gen), "\n")
	if len(got) != len(want) {
		t.Fatalf("TestRenderSchema: got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TestRenderSchema: line %d: got %q, want %q", i+1, got[i], want[i])
		}
	}
}
