package idl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/johnsiilver/halfpike"

	"github.com/bearlytools/simdata/languages/go/field"
)

// Struct is a field list type.
type Struct struct {
	// Name is the name of the Struct.
	Name string
	// Fields are the fields in declaration order, which is the reflection order.
	Fields []*Field
	// LineNum is the line the Struct starts on.
	LineNum int
}

// Field is a field of a Struct.
type Field struct {
	// Name is the mixed case name of the field.
	Name string
	// Legacy is the lowercase name used by the legacy wire format.
	Legacy string
	// TypeName is the type as written in the file.
	TypeName string
	// Type is the resolved type. Set by File.Validate().
	Type field.Type
	// Default is the default literal as written, or "" if none was given.
	Default string
	// Enum is set when the field is an enumeration. Set by File.Validate().
	Enum *Enum
	// Struct is set when the field is a nested field list. Set by File.Validate().
	Struct *Struct
	// LineNum is the line the field was declared on.
	LineNum int
}

var builtins = map[string]field.Type{
	"bool":     field.FTBool,
	"int32":    field.FTInt32,
	"uint32":   field.FTUint32,
	"uint64":   field.FTUint64,
	"float32":  field.FTFloat32,
	"float64":  field.FTFloat64,
	"string":   field.FTString,
	"[]string": field.FTListStrings,
	"[]uint64": field.FTListIDs,
}

func (s *Struct) parse(p *halfpike.Parser) error {
	l := p.Next()
	if len(l.Items) < 3 {
		return fmt.Errorf("[Line %d] error: Struct line has incorrect format, want 'Struct {{Name}} {'", l.LineNum)
	}
	if err := ValidateIdent(l.Items[1].Val); err != nil {
		return fmt.Errorf("[Line %d] error: Struct identifier: %w", l.LineNum, err)
	}
	s.Name = l.Items[1].Val
	s.LineNum = l.LineNum
	if l.Items[2].Val != "{" {
		return fmt.Errorf("[Line %d] error: expected '{' after Struct name, got %q", l.LineNum, l.Items[2].Val)
	}
	if err := commentOrEOL(l, 3); err != nil {
		return fmt.Errorf("[Line %d] error: %w", l.LineNum, err)
	}

	names := map[string]bool{}
	legacy := map[string]bool{}
	for {
		l = p.Next()
		if p.EOF(l) {
			return fmt.Errorf("[Line %d] error: malformed Struct %q, EOF reached before closing '}'", l.LineNum, s.Name)
		}
		if blank(l) || strings.HasPrefix(l.Items[0].Val, "//") {
			continue
		}
		if l.Items[0].Val == "}" {
			if err := commentOrEOL(l, 1); err != nil {
				return fmt.Errorf("[Line %d] error: %w", l.LineNum, err)
			}
			break
		}
		fd, err := parseField(l)
		if err != nil {
			return err
		}
		if names[fd.Name] {
			return fmt.Errorf("[Line %d] error: Struct %q has two fields named %q", l.LineNum, s.Name, fd.Name)
		}
		if legacy[fd.Legacy] {
			return fmt.Errorf("[Line %d] error: Struct %q has two fields with legacy name %q", l.LineNum, s.Name, fd.Legacy)
		}
		names[fd.Name], legacy[fd.Legacy] = true, true
		s.Fields = append(s.Fields, fd)
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("[Line %d] error: Struct %q has no fields, which is not valid", s.LineNum, s.Name)
	}
	return nil
}

// parseField parses: {{fieldName}} {{Type}} [= {{Default}}] [legacy "{{name}}"] [// comment]
func parseField(l halfpike.Line) (*Field, error) {
	items := l.Items
	if len(items) < 2 || items[1].Val == "\n" {
		return nil, fmt.Errorf("[Line %d] error: want '{{fieldName}} {{Type}}', got %q", l.LineNum, strings.TrimSpace(l.Raw))
	}
	if err := validateFieldName(items[0].Val); err != nil {
		return nil, fmt.Errorf("[Line %d] error: %w", l.LineNum, err)
	}
	fd := &Field{
		Name:     items[0].Val,
		Legacy:   strings.ToLower(items[0].Val),
		TypeName: items[1].Val,
		LineNum:  l.LineNum,
	}

	i := 2
	for i < len(items) {
		v := items[i].Val
		switch {
		case v == "\n" || strings.HasPrefix(v, "//"):
			return fd, nil
		case v == "=":
			if fd.Default != "" {
				return nil, fmt.Errorf("[Line %d] error: field %q has two defaults", l.LineNum, fd.Name)
			}
			if i+1 >= len(items) || items[i+1].Val == "\n" {
				return nil, fmt.Errorf("[Line %d] error: expected a default after '='", l.LineNum)
			}
			end := quotedEnd(items, i+1)
			if end < 0 {
				return nil, fmt.Errorf("[Line %d] error: field %q has an unterminated quoted default", l.LineNum, fd.Name)
			}
			fd.Default = halfpike.ItemJoin(l, i+1, end+1)
			i = end + 1
		case v == "legacy":
			if i+1 >= len(items) {
				return nil, fmt.Errorf("[Line %d] error: expected a quoted name after 'legacy'", l.LineNum)
			}
			name, err := strconv.Unquote(items[i+1].Val)
			if err != nil || name == "" {
				return nil, fmt.Errorf("[Line %d] error: expected a quoted name after 'legacy', got %s", l.LineNum, items[i+1].Val)
			}
			fd.Legacy = name
			i += 2
		default:
			return nil, fmt.Errorf("[Line %d] error: unexpected %q after field %q", l.LineNum, v, fd.Name)
		}
	}
	return fd, nil
}

// quotedEnd returns the index of the item that closes a quoted value starting at from.
// Unquoted values end where they start. -1 means the quote is never closed.
func quotedEnd(items []halfpike.Item, from int) int {
	v := items[from].Val
	if !strings.HasPrefix(v, `"`) || (len(v) > 1 && strings.HasSuffix(v, `"`)) {
		return from
	}
	for i := from + 1; i < len(items); i++ {
		if items[i].Val == "\n" {
			return -1
		}
		if strings.HasSuffix(items[i].Val, `"`) {
			return i
		}
	}
	return -1
}

// Validate implements halfpike.Validator. It resolves field types against the declared
// Enums and Structs, checks defaults and rejects Structs that contain themselves.
func (f *File) Validate() error {
	if f.Package == "" {
		return fmt.Errorf("error: file has no 'package' line")
	}
	for _, s := range f.structs {
		for _, fd := range s.Fields {
			if err := f.resolve(fd); err != nil {
				return fmt.Errorf("[Line %d] error: %s.%s: %w", fd.LineNum, s.Name, fd.Name, err)
			}
		}
	}
	for _, s := range f.structs {
		if err := cycle(s, map[*Struct]bool{}); err != nil {
			return fmt.Errorf("[Line %d] error: %w", s.LineNum, err)
		}
	}
	return nil
}

func (f *File) resolve(fd *Field) error {
	if ft, ok := builtins[fd.TypeName]; ok {
		fd.Type = ft
		return checkDefault(ft, fd.Default)
	}
	switch v := f.Identifiers[fd.TypeName].(type) {
	case *Enum:
		fd.Type = field.FTEnum
		fd.Enum = v
		if fd.Default == "" {
			return nil
		}
		text, err := enumText(fd.Default)
		if err != nil {
			return err
		}
		if _, ok := v.Code(text); !ok {
			return fmt.Errorf("default %q is not an entry of Enum %s", text, v.Name)
		}
		return nil
	case *Struct:
		fd.Type = field.FTStruct
		fd.Struct = v
		if fd.Default != "" {
			return fmt.Errorf("a Struct field cannot have a default")
		}
		return nil
	}
	return fmt.Errorf("unknown type %q", fd.TypeName)
}

func checkDefault(ft field.Type, def string) error {
	if def == "" {
		return nil
	}
	var err error
	switch ft {
	case field.FTBool:
		_, err = strconv.ParseBool(def)
	case field.FTInt32:
		_, err = strconv.ParseInt(def, 0, 32)
	case field.FTUint32:
		_, err = strconv.ParseUint(def, 0, 32)
	case field.FTUint64:
		_, err = strconv.ParseUint(def, 0, 64)
	case field.FTFloat32:
		var v float64
		v, err = strconv.ParseFloat(def, 32)
		if err == nil && (math.IsInf(v, 0) || math.IsNaN(v)) {
			err = fmt.Errorf("not finite")
		}
	case field.FTFloat64:
		_, err = strconv.ParseFloat(def, 64)
	case field.FTString:
		_, err = strconv.Unquote(def)
	case field.FTListStrings, field.FTListIDs:
		return fmt.Errorf("vector fields cannot have a default")
	}
	if err != nil {
		return fmt.Errorf("bad %s default %s: %w", ft, def, err)
	}
	return nil
}

func cycle(s *Struct, seen map[*Struct]bool) error {
	if seen[s] {
		return fmt.Errorf("Struct %q contains itself", s.Name)
	}
	seen[s] = true
	defer delete(seen, s)
	for _, fd := range s.Fields {
		if fd.Struct != nil {
			if err := cycle(fd.Struct, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
