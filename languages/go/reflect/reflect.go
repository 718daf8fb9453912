// Package reflect provides runtime access to data model field lists by dotted path or
// by tag stack.
//
// A Reflection is a registry over one field list type. It maps each top level field
// name to closures that read, write and clear that field, and keeps the declaration order
// of the fields, which is the order of the legacy wire format. Nested field lists own a
// child Reflection, so a path such as "commonPrefs.labelPrefs.draw" resolves one segment
// per level.
//
// A Reflection must not be changed after it is shared. Once built it is safe for
// concurrent use against different FieldList instances. Calls against the same instance
// must be serialized by the caller.
package reflect

import (
	"fmt"
	"strings"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/reflect/enums"
)

var (
	// ErrUnknownPath indicates a path segment that is not a field of the schema.
	ErrUnknownPath = errors.New("unknown field path")
	// ErrFieldList indicates a path that names a nested field list where a leaf is required.
	ErrFieldList = errors.New("path names a field list, not a field")
	// ErrWrongKind indicates a value whose kind does not match the field or accessor.
	ErrWrongKind = errors.New("wrong value kind")
	// ErrDuplicateKey is returned when a field is registered twice.
	ErrDuplicateKey = errors.New("duplicate field key")
	// ErrBadKey is returned when a key is empty or contains a '.'.
	ErrBadKey = errors.New("field key must be non-empty and not contain '.'")
	// ErrEmptyTagStack is returned when a tag stack operation is passed no tags.
	ErrEmptyTagStack = errors.New("empty tag stack")
	// ErrBadTagIndex is returned when a tag does not index a field.
	ErrBadTagIndex = errors.New("tag stack index out of range")
	// ErrNilFieldList is returned when a mutating call is passed a nil FieldList.
	ErrNilFieldList = errors.New("nil field list")
)

// ErrType returns the errors.Type for err when it is wrapped with errors.E. A kind
// mismatch is TypeKind, a path that does not resolve to a leaf is TypePath and anything
// else is TypeParameter.
func ErrType(err error) errors.Type {
	switch {
	case errors.Is(err, ErrWrongKind):
		return errors.TypeKind
	case errors.Is(err, ErrUnknownPath), errors.Is(err, ErrFieldList), errors.Is(err, ErrBadTagIndex):
		return errors.TypePath
	}
	return errors.TypeParameter
}

// FieldList is implemented by every data model type.
type FieldList interface {
	// Clear resets every field to absent.
	Clear()
	// Prune drops nested field lists that hold no set fields.
	Prune()
	// IsEmpty reports if no field is set.
	IsEmpty() bool
}

// Entry holds the accessors for one field of a Reflection. Leaf fields set Type, Get,
// Default, Set and Clear. Nested field lists set Sub, Peek, Mutable and Clear.
type Entry struct {
	// Type is the type reported for the field. Nested field lists use field.FTStruct.
	Type field.Type
	// Enum is the name table for enumeration fields.
	Enum *enums.Table

	// Get returns the value if the field is set. fl is never nil.
	Get func(fl FieldList) (Value, bool)
	// Default returns the value if set, otherwise the default. fl may be nil.
	Default func(fl FieldList) Value
	// Set stores v. The kind of v has been checked against Type.
	Set func(fl FieldList, v Value)
	// Clear makes the field absent.
	Clear func(fl FieldList)

	// Sub is the Reflection of a nested field list.
	Sub *Reflection
	// Peek returns the nested field list, or nil if absent. It must not allocate.
	Peek func(fl FieldList) FieldList
	// Mutable returns the nested field list, creating it if absent.
	Mutable func(fl FieldList) FieldList
}

// IsList reports if the entry is a nested field list.
func (e Entry) IsList() bool {
	return e.Sub != nil
}

type keyed struct {
	key   string
	entry Entry
}

// Reflection is the path registry over one field list type.
type Reflection struct {
	name string
	// order holds entries in declaration order. index maps a key to its position in order.
	order []keyed
	index map[string]int
}

// New returns an empty Reflection for the type called name.
func New(name string) *Reflection {
	return &Reflection{name: name, index: map[string]int{}}
}

// Name returns the name of the field list type.
func (r *Reflection) Name() string {
	return r.name
}

// Len returns the number of top level fields.
func (r *Reflection) Len() int {
	return len(r.order)
}

// Keys returns the top level field names in declaration order.
func (r *Reflection) Keys() []string {
	out := make([]string, len(r.order))
	for i, k := range r.order {
		out[i] = k.key
	}
	return out
}

// Entry returns the Entry for a top level key.
func (r *Reflection) Entry(key string) (Entry, bool) {
	i, ok := r.index[key]
	if !ok {
		return Entry{}, false
	}
	return r.order[i].entry, true
}

// AddReflection registers a field. Fields must be added in declaration order.
func (r *Reflection) AddReflection(key string, e Entry) error {
	if key == "" || strings.Contains(key, ".") {
		return fmt.Errorf("%s: %q: %w", r.name, key, ErrBadKey)
	}
	if _, ok := r.index[key]; ok {
		return fmt.Errorf("%s: %q: %w", r.name, key, ErrDuplicateKey)
	}
	r.index[key] = len(r.order)
	r.order = append(r.order, keyed{key: key, entry: e})
	return nil
}

// AddListReflection registers a nested field list with its Reflection.
func (r *Reflection) AddListReflection(key string, sub *Reflection, peek, mutable func(FieldList) FieldList, clear func(FieldList)) error {
	return r.AddReflection(key, Entry{Type: field.FTStruct, Sub: sub, Peek: peek, Mutable: mutable, Clear: clear})
}

// lookup resolves the head segment of path. rest is the remainder after the first '.'.
func (r *Reflection) lookup(path string) (e Entry, rest string, nested bool, err error) {
	key, rest, nested := strings.Cut(path, ".")
	i, ok := r.index[key]
	if !ok {
		return Entry{}, "", false, ErrUnknownPath
	}
	e = r.order[i].entry
	switch {
	case nested && e.Sub == nil:
		// A leaf cannot have children.
		return Entry{}, "", false, ErrUnknownPath
	case !nested && e.Sub != nil:
		return e, "", false, ErrFieldList
	}
	return e, rest, nested, nil
}

// leaf walks path without touching any instance and returns the leaf Entry.
func (r *Reflection) leaf(path string) (Entry, error) {
	e, rest, nested, err := r.lookup(path)
	if err != nil {
		return Entry{}, err
	}
	if nested {
		return e.Sub.leaf(rest)
	}
	return e, nil
}

func pathErr(path string, err error) error {
	return fmt.Errorf("%q: %w", path, err)
}

// GetValue returns the value at path. The bool is false when the field is not set or a
// nested field list on the way is absent; that is not an error. A path that does not
// exist in the schema returns ErrUnknownPath. GetValue never allocates nested field lists.
// Vector fields are always reported as set, possibly holding an empty vector.
func (r *Reflection) GetValue(fl FieldList, path string) (Value, bool, error) {
	v, ok, err := r.getValue(fl, path)
	if err != nil {
		return Value{}, false, pathErr(path, err)
	}
	return v, ok, nil
}

func (r *Reflection) getValue(fl FieldList, path string) (Value, bool, error) {
	e, rest, nested, err := r.lookup(path)
	if err != nil {
		return Value{}, false, err
	}
	if nested {
		var child FieldList
		if fl != nil {
			child = e.Peek(fl)
		}
		return e.Sub.getValue(child, rest)
	}
	if fl == nil {
		if field.IsList(e.Type) {
			return e.Default(nil), true, nil
		}
		return Value{}, false, nil
	}
	if field.IsList(e.Type) {
		return e.Default(fl), true, nil
	}
	v, ok := e.Get(fl)
	return v, ok, nil
}

// GetDefaultValue returns the value at path if set, otherwise the field's default.
// fl may be nil, in which case the default is returned.
func (r *Reflection) GetDefaultValue(fl FieldList, path string) (Value, error) {
	v, err := r.getDefault(fl, path)
	if err != nil {
		return Value{}, pathErr(path, err)
	}
	return v, nil
}

func (r *Reflection) getDefault(fl FieldList, path string) (Value, error) {
	e, rest, nested, err := r.lookup(path)
	if err != nil {
		return Value{}, err
	}
	if nested {
		var child FieldList
		if fl != nil {
			child = e.Peek(fl)
		}
		return e.Sub.getDefault(child, rest)
	}
	return e.Default(fl), nil
}

// SetValue stores v at path, creating nested field lists as needed.
func (r *Reflection) SetValue(fl FieldList, v Value, path string) error {
	if fl == nil {
		return pathErr(path, ErrNilFieldList)
	}
	// Resolve first so that a bad path or kind does not leave nested lists behind.
	e, err := r.leaf(path)
	if err != nil {
		return pathErr(path, err)
	}
	if !field.Compatible(e.Type, v.Type()) {
		return pathErr(path, &KindError{Want: e.Type, Have: v.Type()})
	}
	r.setValue(fl, v, path)
	return nil
}

func (r *Reflection) setValue(fl FieldList, v Value, path string) {
	key, rest, nested := strings.Cut(path, ".")
	e := r.order[r.index[key]].entry
	if nested {
		e.Sub.setValue(e.Mutable(fl), v, rest)
		return
	}
	e.Set(fl, v)
}

// ClearValue makes the field at path absent. If path names a nested field list, the
// whole nested list is removed. Clearing below an absent nested field list is a no-op.
func (r *Reflection) ClearValue(fl FieldList, path string) error {
	if err := r.clearValue(fl, path); err != nil {
		return pathErr(path, err)
	}
	return nil
}

func (r *Reflection) clearValue(fl FieldList, path string) error {
	e, rest, nested, err := r.lookup(path)
	switch {
	case err == ErrFieldList:
		if fl != nil {
			e.Clear(fl)
		}
		return nil
	case err != nil:
		return err
	}
	if !nested {
		if fl != nil {
			e.Clear(fl)
		}
		return nil
	}
	var child FieldList
	if fl != nil {
		child = e.Peek(fl)
	}
	if child == nil {
		// Still validate the rest of the path.
		return e.Sub.clearValue(nil, rest)
	}
	return e.Sub.clearValue(child, rest)
}

// VisitFunc is called with the full dotted path and type of a leaf field.
type VisitFunc func(path string, t field.Type)

// Visit calls fn for every leaf field in declaration order, descending into nested
// field lists. Paths are prefix + "." + key, or key when prefix is empty.
func (r *Reflection) Visit(prefix string, fn VisitFunc) {
	sep := "."
	if prefix == "" {
		sep = ""
	}
	for _, k := range r.order {
		p := prefix + sep + k.key
		if k.entry.Sub != nil {
			k.entry.Sub.Visit(p, fn)
			continue
		}
		fn(p, k.entry.Type)
	}
}

// SetPaths returns the paths of every leaf field set on fl, in declaration order.
// Empty vectors are not reported.
func (r *Reflection) SetPaths(fl FieldList) []string {
	var out []string
	r.setPaths(fl, "", &out)
	return out
}

func (r *Reflection) setPaths(fl FieldList, prefix string, out *[]string) {
	if fl == nil {
		return
	}
	sep := "."
	if prefix == "" {
		sep = ""
	}
	for _, k := range r.order {
		p := prefix + sep + k.key
		e := k.entry
		if e.Sub != nil {
			e.Sub.setPaths(e.Peek(fl), p, out)
			continue
		}
		if field.IsList(e.Type) {
			if !isEmptyVector(e.Default(fl)) {
				*out = append(*out, p)
			}
			continue
		}
		if _, ok := e.Get(fl); ok {
			*out = append(*out, p)
		}
	}
}

func isEmptyVector(v Value) bool {
	return len(v.strs) == 0 && len(v.ids) == 0
}
