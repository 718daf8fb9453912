package golang

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bearlytools/simdata/internal/idl"
	"github.com/bearlytools/simdata/languages/go/field"
)

type enumView struct {
	Name   string
	Table  string
	Values []enumValueView
}

type enumValueView struct {
	Const string
	Code  int32
	Text  string
}

type structView struct {
	Name   string
	Descr  string
	Fields []fieldView
}

// Kinds of field as the template sees them.
const (
	kindScalar = "scalar"
	kindEnum   = "enum"
	kindVector = "vector"
	kindSub    = "sub"
)

type fieldView struct {
	// Name is the schema name and reflection key.
	Name string
	// GoField is the unexported struct field.
	GoField string
	// Method is the exported accessor stem.
	Method string
	Kind   string
	// Type is the Go type of the accessor: the scalar, enum, []E or the struct name.
	Type string
	// Elem is the element type of a vector.
	Elem string
	// Storage is the Go type of the struct field.
	Storage string
	// Default is a Go expression for the default value.
	Default string
	// Descr is the structs constructor call describing the field.
	Descr string
}

var goKeywords = map[string]bool{}

func init() {
	for _, k := range strings.Fields(`break default func interface select case defer go map struct
		chan else goto package switch const fallthrough if range type continue for import return var`) {
		goKeywords[k] = true
	}
}

// reserved are the method names every generated type has.
var reserved = map[string]bool{
	"Descriptor": true, "Clear": true, "CopyFrom": true, "MergeFrom": true,
	"Equal": true, "Prune": true, "IsEmpty": true,
}

var notConst = regexp.MustCompile(`[^A-Za-z0-9_]`)

func newTemplateData(file *idl.File, path string) (templateData, error) {
	td := templateData{Source: filepath.Base(path), Package: file.Package}
	for _, e := range file.Enums() {
		ev := enumView{Name: e.Name, Table: lowerFirst(e.Name) + "Table"}
		for _, v := range e.Values {
			ev.Values = append(ev.Values, enumValueView{Const: constName(e.Name, v.Text), Code: v.Code, Text: v.Text})
		}
		td.Enums = append(td.Enums, ev)
	}
	for _, s := range file.Structs() {
		sv, err := newStructView(s)
		if err != nil {
			return templateData{}, err
		}
		td.Structs = append(td.Structs, sv)
	}
	return td, nil
}

func newStructView(s *idl.Struct) (structView, error) {
	sv := structView{Name: s.Name, Descr: lowerFirst(s.Name) + "Descr"}
	methods := map[string]string{}
	for _, fd := range s.Fields {
		fv := fieldView{
			Name:    fd.Name,
			GoField: goField(fd.Name),
			Method:  upperFirst(fd.Name),
		}
		switch {
		case fd.Struct != nil:
			fv.Kind = kindSub
			fv.Type = fd.Struct.Name
			fv.Storage = "*" + fd.Struct.Name
			fv.Descr = fmt.Sprintf("structs.Sub[%s, %s](%q, %sDescr, func(x *%s) **%s { return &x.%s })",
				s.Name, fv.Type, fd.Name, lowerFirst(fv.Type), s.Name, fv.Type, fv.GoField)
		case fd.Enum != nil:
			fv.Kind = kindEnum
			fv.Type = fd.Enum.Name
			fv.Storage = "optional.Scalar[int32]"
			text := fd.Enum.Values[0].Text
			if fd.Default != "" {
				// Validated by idl.
				text = unquote(fd.Default)
			}
			fv.Default = constName(fd.Enum.Name, text)
			fv.Descr = fmt.Sprintf("structs.Enum(%q, int32(%s), %sTable, func(x *%s) *optional.Scalar[int32] { return &x.%s })",
				fd.Name, fv.Default, lowerFirst(fv.Type), s.Name, fv.GoField)
		case fd.Type == field.FTListStrings || fd.Type == field.FTListIDs:
			fv.Kind = kindVector
			fv.Type = fd.TypeName
			fv.Elem = strings.TrimPrefix(fd.TypeName, "[]")
			fv.Storage = fd.TypeName
			ctor := "Strings"
			if fd.Type == field.FTListIDs {
				ctor = "IDs"
			}
			fv.Descr = fmt.Sprintf("structs.%s(%q, func(x *%s) *%s { return &x.%s })", ctor, fd.Name, s.Name, fv.Type, fv.GoField)
		default:
			fv.Kind = kindScalar
			fv.Type = fd.TypeName
			fv.Default = scalarDefault(fd)
			switch fd.Type {
			case field.FTBool:
				fv.Storage = "optional.Bool"
				fv.Descr = fmt.Sprintf("structs.Bool(%q, %s, func(x *%s) *optional.Bool { return &x.%s })", fd.Name, fv.Default, s.Name, fv.GoField)
			case field.FTString:
				fv.Storage = "optional.String"
				fv.Descr = fmt.Sprintf("structs.String(%q, %s, func(x *%s) *optional.String { return &x.%s })", fd.Name, fv.Default, s.Name, fv.GoField)
			default:
				fv.Storage = "optional.Scalar[" + fd.TypeName + "]"
				fv.Descr = fmt.Sprintf("structs.Number(%q, %s, func(x *%s) *%s { return &x.%s })", fd.Name, fv.Default, s.Name, fv.Storage, fv.GoField)
			}
		}
		if fd.Legacy != "" && fd.Legacy != strings.ToLower(fd.Name) {
			fv.Descr += fmt.Sprintf(".Legacy(%q)", fd.Legacy)
		}
		for _, m := range accessors(fv) {
			if reserved[m] {
				return structView{}, fmt.Errorf("[Line %d] error: %s.%s: accessor %s collides with a generated method", fd.LineNum, s.Name, fd.Name, m)
			}
			if other, ok := methods[m]; ok {
				return structView{}, fmt.Errorf("[Line %d] error: %s.%s: accessor %s collides with an accessor of %s", fd.LineNum, s.Name, fd.Name, m, other)
			}
			methods[m] = fd.Name
		}
		sv.Fields = append(sv.Fields, fv)
	}
	return sv, nil
}

func accessors(fv fieldView) []string {
	m := fv.Method
	switch fv.Kind {
	case kindVector:
		return []string{m, m + "Size", m + "At", "Add" + m, "Set" + m + "At", "Has" + m, "Clear" + m}
	case kindSub:
		return []string{m, "Has" + m, "Mutable" + m, "Clear" + m}
	}
	return []string{m, "Has" + m, "Set" + m, "Clear" + m}
}

func scalarDefault(fd *idl.Field) string {
	if fd.Default != "" {
		return fd.Default
	}
	switch fd.Type {
	case field.FTBool:
		return "false"
	case field.FTString:
		return `""`
	}
	return "0"
}

func unquote(s string) string {
	if strings.HasPrefix(s, `"`) {
		return strings.Trim(s, `"`)
	}
	return s
}

func constName(enum, text string) string {
	return enum + "_" + notConst.ReplaceAllString(text, "_")
}

func goField(name string) string {
	if goKeywords[name] {
		return name + "_"
	}
	return name
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}
