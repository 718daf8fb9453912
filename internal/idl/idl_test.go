package idl

import (
	"context"
	"os"
	"testing"

	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/johnsiilver/halfpike"
	"github.com/kylelemons/godebug/pretty"
)

func TestFile(t *testing.T) {
	content := `
// A comment
// About something
package hello // Yeah I can comment here

Enum Mode int32 {
	WIRE @0 // Comment
	"ONE-WAY" @1
	SOLID @4
}

Struct Label {
	draw bool = true
	text string = "hello world"
	color uint32 = 0xFF00FF00 // Comment
}

Struct Prefs {
	mode Mode = SOLID
	offset float64 = -1.5
	ids []uint64
	files []string legacy "filelist"
	label Label
}
`
	f := New()
	if err := halfpike.Parse(context.Background(), content, f); err != nil {
		t.Fatalf("TestFile: %s", err)
	}

	if f.Package != "hello" {
		t.Errorf("TestFile: Package: got %q, want hello", f.Package)
	}

	wantEnum := []EnumValue{{"WIRE", 0}, {"ONE-WAY", 1}, {"SOLID", 4}}
	if len(f.Enums()) != 1 {
		t.Fatalf("TestFile: got %d Enums, want 1", len(f.Enums()))
	}
	if diff := pretty.Compare(wantEnum, f.Enums()[0].Values); diff != "" {
		t.Errorf("TestFile(Enum): -want/+got:\n%s", diff)
	}
	if code, ok := f.Enums()[0].Code("ONE-WAY"); !ok || code != 1 {
		t.Errorf("TestFile: Code(ONE-WAY): got %d, %v, want 1, true", code, ok)
	}

	structs := f.Structs()
	if len(structs) != 2 || structs[0].Name != "Label" || structs[1].Name != "Prefs" {
		t.Fatalf("TestFile: Structs not in declaration order")
	}

	type fieldSummary struct {
		Name, Legacy, TypeName, Default string
		Type                            field.Type
	}
	var got []fieldSummary
	for _, s := range structs {
		for _, fd := range s.Fields {
			got = append(got, fieldSummary{fd.Name, fd.Legacy, fd.TypeName, fd.Default, fd.Type})
		}
	}
	want := []fieldSummary{
		{"draw", "draw", "bool", "true", field.FTBool},
		{"text", "text", "string", `"hello world"`, field.FTString},
		{"color", "color", "uint32", "0xFF00FF00", field.FTUint32},
		{"mode", "mode", "Mode", "SOLID", field.FTEnum},
		{"offset", "offset", "float64", "-1.5", field.FTFloat64},
		{"ids", "ids", "[]uint64", "", field.FTListIDs},
		{"files", "filelist", "[]string", "", field.FTListStrings},
		{"label", "label", "Label", "", field.FTStruct},
	}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestFile(fields): -want/+got:\n%s", diff)
	}

	prefs := structs[1]
	if prefs.Fields[0].Enum != f.Enums()[0] {
		t.Errorf("TestFile: mode was not resolved to Enum Mode")
	}
	if prefs.Fields[4].Struct != structs[0] {
		t.Errorf("TestFile: label was not resolved to Struct Label")
	}
}

func TestFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "Success: minimal",
			content: `
package test
Struct Car {
	name string
}
`,
		},
		{
			name:    "Error: no package",
			content: "Struct Car {\n\tname string\n}\n",
			wantErr: true,
		},
		{
			name:    "Error: Package keyword case",
			content: "Package test\n",
			wantErr: true,
		},
		{
			name: "Error: duplicate package",
			content: `
package test
package other
`,
			wantErr: true,
		},
		{
			name: "Error: duplicate enum text",
			content: `
package test
Enum Mode int32 {
	A @0
	A @1
}
`,
			wantErr: true,
		},
		{
			name: "Error: duplicate enum code",
			content: `
package test
Enum Mode int32 {
	A @0
	B @0
}
`,
			wantErr: true,
		},
		{
			name: "Error: negative enum code",
			content: `
package test
Enum Mode int32 {
	A @-1
}
`,
			wantErr: true,
		},
		{
			name: "Error: empty enum",
			content: `
package test
Enum Mode int32 {
}
`,
			wantErr: true,
		},
		{
			name: "Error: enum text must be quoted",
			content: `
package test
Enum Mode int32 {
	ONE-WAY @0
}
`,
			wantErr: true,
		},
		{
			name: "Error: enum type is not int32",
			content: `
package test
Enum Mode uint8 {
	A @0
}
`,
			wantErr: true,
		},
		{
			name: "Error: duplicate field",
			content: `
package test
Struct Car {
	name string
	name bool
}
`,
			wantErr: true,
		},
		{
			name: "Error: duplicate legacy name",
			content: `
package test
Struct Car {
	name string
	other string legacy "name"
}
`,
			wantErr: true,
		},
		{
			name: "Error: field name with a dot",
			content: `
package test
Struct Car {
	na.me string
}
`,
			wantErr: true,
		},
		{
			name: "Error: unknown type",
			content: `
package test
Struct Car {
	wheels Wheel
}
`,
			wantErr: true,
		},
		{
			name: "Error: bad number default",
			content: `
package test
Struct Car {
	year uint32 = -1
}
`,
			wantErr: true,
		},
		{
			name: "Error: unquoted string default",
			content: `
package test
Struct Car {
	name string = hello
}
`,
			wantErr: true,
		},
		{
			name: "Error: unterminated string default",
			content: `
package test
Struct Car {
	name string = "hello world
}
`,
			wantErr: true,
		},
		{
			name: "Error: vector default",
			content: `
package test
Struct Car {
	names []string = "a"
}
`,
			wantErr: true,
		},
		{
			name: "Error: enum default not an entry",
			content: `
package test
Enum Mode int32 {
	A @0
}
Struct Car {
	mode Mode = B
}
`,
			wantErr: true,
		},
		{
			name: "Error: struct default",
			content: `
package test
Struct Wheel {
	size uint32
}
Struct Car {
	wheel Wheel = 1
}
`,
			wantErr: true,
		},
		{
			name: "Error: struct contains itself",
			content: `
package test
Struct A {
	b B
}
Struct B {
	a A
}
`,
			wantErr: true,
		},
		{
			name: "Error: two identifiers with one name",
			content: `
package test
Enum Car int32 {
	A @0
}
Struct Car {
	name string
}
`,
			wantErr: true,
		},
		{
			name: "Error: struct has no fields",
			content: `
package test
Struct Car {
}
`,
			wantErr: true,
		},
		{
			name: "Error: no closing brace",
			content: `
package test
Struct Car {
	name string
`,
			wantErr: true,
		},
	}

	for _, test := range tests {
		f := New()
		err := halfpike.Parse(context.Background(), test.content, f)
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestFileErrors(%s): got err == nil, want err != nil", test.name)
		case err != nil && !test.wantErr:
			t.Errorf("TestFileErrors(%s): got err == %s, want err == nil", test.name, err)
		}
	}
}

// TestSchema parses the schema the root package is generated from.
func TestSchema(t *testing.T) {
	b, err := os.ReadFile("../../schema/simdata.simdata")
	if err != nil {
		t.Fatalf("TestSchema: %s", err)
	}
	f := New()
	if err := halfpike.Parse(context.Background(), string(b), f); err != nil {
		t.Fatalf("TestSchema: %s", err)
	}
	if f.Package != "simdata" {
		t.Errorf("TestSchema: Package: got %q, want simdata", f.Package)
	}

	cs, ok := f.Identifiers["CoordinateSystem"].(*Enum)
	if !ok {
		t.Fatalf("TestSchema: no Enum CoordinateSystem")
	}
	if code, ok := cs.Code("ECEF"); !ok || code != 5 {
		t.Errorf("TestSchema: CoordinateSystem ECEF: got %d, %v, want 5, true", code, ok)
	}

	counts := map[string]int{
		"BeamProperties":           5,
		"ClassificationProperties": 2,
		"ReferenceProperties":      3,
	}
	for name, want := range counts {
		s, ok := f.Identifiers[name].(*Struct)
		if !ok {
			t.Errorf("TestSchema: no Struct %s", name)
			continue
		}
		if len(s.Fields) != want {
			t.Errorf("TestSchema: %s: got %d fields, want %d", name, len(s.Fields), want)
		}
	}
}
