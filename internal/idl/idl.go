// Package idl parses .simdata schema files.
//
// The format is line oriented:
//
//	package {{package name}}
//
//	Enum {{Name}} int32 {
//		{{TEXT}} @{{Number}}
//		"{{TEXT WITH OTHER CHARACTERS}}" @{{Number}}
//	}
//
//	Struct {{Name}} {
//		{{fieldName}} {{Type}} [= {{Default}}] [legacy "{{name}}"]
//	}
//
// Types are bool, int32, uint32, uint64, float32, float64, string, []string, []uint64, the
// name of an Enum or the name of a Struct. A Struct field is a nested field list and
// takes no default. Lines starting with // are comments and a // ends any line.
package idl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/johnsiilver/halfpike"
)

// File is a parsed .simdata file.
type File struct {
	// Package is the name of the package.
	Package string
	// Identifiers holds every *Enum and *Struct by name.
	Identifiers map[string]any

	enums   []*Enum
	structs []*Struct
}

// New returns a File that can be passed to halfpike.Parse().
func New() *File {
	return &File{Identifiers: map[string]any{}}
}

// Enums returns the enumerations in the order they were declared.
func (f *File) Enums() []*Enum {
	return f.enums
}

// Structs returns the structs in the order they were declared.
func (f *File) Structs() []*Struct {
	return f.structs
}

// Start is the start point for reading the IDL.
func (f *File) Start(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	return f.ParsePackage
}

// SkipLinesWithComments skips blank lines and lines that only hold a comment.
func (f *File) SkipLinesWithComments(p *halfpike.Parser) {
	for {
		l := p.Next()
		if p.EOF(l) {
			p.Backup()
			return
		}
		if blank(l) || strings.HasPrefix(l.Items[0].Val, "//") {
			continue
		}
		p.Backup()
		return
	}
}

func blank(l halfpike.Line) bool {
	return len(l.Items) == 0 || (len(l.Items) == 1 && l.Items[0].Val == "\n")
}

// ParsePackage finds the package line.
func (f *File) ParsePackage(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	f.SkipLinesWithComments(p)

	line := p.Next()
	if p.EOF(line) {
		return p.Errorf("error: file has no 'package' line")
	}
	if len(line.Items) < 2 {
		return p.Errorf("[Line %d] error: got %q, want: 'package {{package name}}'", line.LineNum, line.Raw)
	}
	if err := caseSensitiveCheck("package", line.Items[0].Val); err != nil {
		return p.Errorf("[Line %d] error: %w", line.LineNum, err)
	}
	if err := ValidPackage(line.Items[1].Val); err != nil {
		return p.Errorf("[Line %d] error: %w", line.LineNum, err)
	}
	f.Package = line.Items[1].Val

	if err := commentOrEOL(line, 2); err != nil {
		return p.Errorf("[Line %d] error: %w", line.LineNum, err)
	}
	return f.FindNext
}

// FindNext finds the next Enum or Struct.
func (f *File) FindNext(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	f.SkipLinesWithComments(p)

	line := p.Next()
	if p.EOF(line) {
		return nil
	}

	switch line.Items[0].Val {
	case "Enum":
		p.Backup()
		e := &Enum{}
		if err := e.parse(p); err != nil {
			return p.Errorf("%s", err)
		}
		if err := f.add(e.Name, e); err != nil {
			return p.Errorf("[Line %d] error: %w", e.LineNum, err)
		}
		f.enums = append(f.enums, e)
		return f.FindNext
	case "Struct":
		p.Backup()
		s := &Struct{}
		if err := s.parse(p); err != nil {
			return p.Errorf("%s", err)
		}
		if err := f.add(s.Name, s); err != nil {
			return p.Errorf("[Line %d] error: %w", s.LineNum, err)
		}
		f.structs = append(f.structs, s)
		return f.FindNext
	case "package":
		return p.Errorf("[Line %d] error: duplicate 'package' line found", line.LineNum)
	}
	return p.Errorf("[Line %d] error: do not understand this line: %q", line.LineNum, strings.TrimSpace(line.Raw))
}

func (f *File) add(name string, v any) error {
	if _, ok := f.Identifiers[name]; ok {
		return fmt.Errorf("found two top level identifiers named %q", name)
	}
	f.Identifiers[name] = v
	return nil
}

func caseSensitiveCheck(want string, item string) error {
	if item != want {
		if strings.EqualFold(item, want) {
			return fmt.Errorf("%q keyword found, but it is required to be %q", item, want)
		}
		return fmt.Errorf("got: %q, want: %q", item, want)
	}
	return nil
}

// commentOrEOL returns an error if anything other than a comment follows item from.
func commentOrEOL(line halfpike.Line, from int) error {
	if from >= len(line.Items) {
		return nil
	}
	if strings.HasPrefix(line.Items[from].Val, "//") {
		return nil
	}
	rest := line.Items[from:]
	if len(rest) == 1 && rest[0].Val == "\n" {
		return nil
	}
	return fmt.Errorf("got item %q after %q, which was unexpected", halfpike.ItemJoin(line, from, len(line.Items)), halfpike.ItemJoin(line, 0, from))
}

// ValidPackage validates a package name.
func ValidPackage(pkgName string) error {
	runes := []rune(pkgName)
	if len(runes) == 0 {
		return fmt.Errorf("package name cannot be empty")
	}
	if unicode.IsUpper(runes[0]) {
		return fmt.Errorf("package name cannot start with an uppercase letter")
	}
	if !unicode.IsLetter(runes[0]) {
		return fmt.Errorf("package name must start with a letter")
	}
	for _, r := range runes[1:] {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' {
			continue
		}
		return fmt.Errorf("package name contains character %q which is invalid for a package name", r)
	}
	return nil
}

// ValidateIdent validates the name of an Enum or Struct.
func ValidateIdent(ident string) error {
	runes := []rune(ident)
	if len(runes) == 0 {
		return fmt.Errorf("identifier cannot be empty")
	}
	if !unicode.IsLetter(runes[0]) {
		return fmt.Errorf("identifier must start with a letter")
	}
	if unicode.IsLower(runes[0]) {
		return fmt.Errorf("identifier cannot start with a lowercase letter")
	}
	for _, r := range runes[1:] {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		return fmt.Errorf("identifier contains character %q which is invalid for an identifier", r)
	}
	return nil
}

// validateFieldName validates a field name. Field names are mixed case and start lowercase.
func validateFieldName(name string) error {
	runes := []rune(name)
	if len(runes) == 0 || !unicode.IsLetter(runes[0]) || !unicode.IsLower(runes[0]) {
		return fmt.Errorf("field name %q must start with a lowercase letter", name)
	}
	for _, r := range runes[1:] {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		return fmt.Errorf("field name %q contains character %q", name, r)
	}
	return nil
}

// Enum is an enumeration name table.
type Enum struct {
	// Name is the name of the Enum.
	Name string
	// Values are the entries in declaration order.
	Values []EnumValue
	// LineNum is the line the Enum starts on.
	LineNum int
}

// EnumValue is a single entry of an Enum.
type EnumValue struct {
	// Text is the display text of the value, exactly as authored.
	Text string
	// Code is the numeric value.
	Code int32
}

// Code returns the code for text.
func (e *Enum) Code(text string) (int32, bool) {
	for _, v := range e.Values {
		if v.Text == text {
			return v.Code, true
		}
	}
	return 0, false
}

func (e *Enum) parse(p *halfpike.Parser) error {
	l := p.Next()
	if len(l.Items) < 4 {
		return fmt.Errorf("[Line %d] error: Enum line has incorrect format, want 'Enum {{Name}} int32 {'", l.LineNum)
	}
	if err := ValidateIdent(l.Items[1].Val); err != nil {
		return fmt.Errorf("[Line %d] error: Enum identifier: %w", l.LineNum, err)
	}
	e.Name = l.Items[1].Val
	e.LineNum = l.LineNum

	if l.Items[2].Val != "int32" {
		return fmt.Errorf("[Line %d] error: expected keyword 'int32', got %q", l.LineNum, l.Items[2].Val)
	}
	if l.Items[3].Val != "{" {
		return fmt.Errorf("[Line %d] error: expected '{' at the end of the line, got %q", l.LineNum, l.Items[3].Val)
	}
	if err := commentOrEOL(l, 4); err != nil {
		return fmt.Errorf("[Line %d] error: %w", l.LineNum, err)
	}

	seen := map[int32]string{}
	for {
		l = p.Next()
		if p.EOF(l) {
			return fmt.Errorf("[Line %d] error: malformed Enum, EOF reached before closing '}'", l.LineNum)
		}
		if blank(l) || strings.HasPrefix(l.Items[0].Val, "//") {
			continue
		}
		if l.Items[0].Val == "}" {
			break
		}
		if len(l.Items) < 2 {
			return fmt.Errorf("[Line %d] error: malformed Enum entry", l.LineNum)
		}
		text, err := enumText(l.Items[0].Val)
		if err != nil {
			return fmt.Errorf("[Line %d] error: %w", l.LineNum, err)
		}
		if _, ok := e.Code(text); ok {
			return fmt.Errorf("[Line %d] error: Enum %q already contains %q", l.LineNum, e.Name, text)
		}
		if !strings.HasPrefix(l.Items[1].Val, "@") {
			return fmt.Errorf("[Line %d] error: expected @{{Number}} after %q, got %q", l.LineNum, text, l.Items[1].Val)
		}
		n, err := strconv.ParseInt(strings.TrimPrefix(l.Items[1].Val, "@"), 10, 32)
		if err != nil {
			return fmt.Errorf("[Line %d] error: expected @{{Number}} after %q, got %q", l.LineNum, text, l.Items[1].Val)
		}
		if n < 0 {
			return fmt.Errorf("[Line %d] error: cannot have an enumerated value < 0", l.LineNum)
		}
		if prev, ok := seen[int32(n)]; ok {
			return fmt.Errorf("[Line %d] error: Enum %q already contains %q with value %d", l.LineNum, e.Name, prev, n)
		}
		seen[int32(n)] = text
		e.Values = append(e.Values, EnumValue{Text: text, Code: int32(n)})

		if err := commentOrEOL(l, 2); err != nil {
			return fmt.Errorf("[Line %d] error: %w", l.LineNum, err)
		}
	}
	// We are on the line with }.
	if len(e.Values) == 0 {
		return fmt.Errorf("[Line %d] error: Enum %q has no entries, which is not valid", e.LineNum, e.Name)
	}
	if err := commentOrEOL(l, 1); err != nil {
		return fmt.Errorf("[Line %d] error: %w", l.LineNum, err)
	}
	return nil
}

// enumText returns the text of an enum entry. Entries that are not plain identifiers must
// be quoted.
func enumText(s string) (string, error) {
	if strings.HasPrefix(s, `"`) {
		t, err := strconv.Unquote(s)
		if err != nil || t == "" {
			return "", fmt.Errorf("bad quoted enum entry %s", s)
		}
		return t, nil
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsNumber(r)) {
			continue
		}
		return "", fmt.Errorf("enum entry %q must be quoted", s)
	}
	return s, nil
}
