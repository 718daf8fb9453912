// Package structs holds the field descriptors of data model types and the generic
// implementations of the FieldList operations that generated code calls into.
//
// Generated types are plain Go structs. Each one publishes a *Descr that lists its fields
// in declaration order with closures that reach the Go field. Clear, Copy, Merge, Equal,
// Prune and IsEmpty are written once here against the descriptor instead of once per type.
// THIS PACKAGE IS FOR USE BY GENERATED CODE. Users should use the generated methods.
package structs

import (
	"fmt"
	"strings"

	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/reflect/enums"
)

// FieldList is implemented by every generated data model type.
type FieldList interface {
	reflect.FieldList
	// Descriptor returns the field descriptors of the type.
	Descriptor() *Descr
}

// Descr describes the fields of one data model type.
type Descr struct {
	// Name is the name of the type as described in the .simdata file.
	Name string
	// Fields are the field descriptions in declaration order.
	Fields []*FieldDescr

	byName   map[string]*FieldDescr
	byLegacy map[string]*FieldDescr
	newFn    func() FieldList
}

// NewDescr creates the Descr for type S. Field positions are set from the order of fields.
// It panics if two fields share a name or a legacy name, as that can only be a code
// generation bug.
func NewDescr[S any, PS interface {
	*S
	FieldList
}](name string, fields ...*FieldDescr) *Descr {
	d := &Descr{
		Name:     name,
		Fields:   fields,
		byName:   make(map[string]*FieldDescr, len(fields)),
		byLegacy: make(map[string]*FieldDescr, len(fields)),
		newFn:    func() FieldList { return PS(new(S)) },
	}
	for i, f := range fields {
		f.Index = i
		if _, ok := d.byName[f.Name]; ok {
			panic(fmt.Sprintf("%s: duplicate field %q", name, f.Name))
		}
		if _, ok := d.byLegacy[f.LegacyName]; ok {
			panic(fmt.Sprintf("%s: duplicate legacy field name %q", name, f.LegacyName))
		}
		d.byName[f.Name] = f
		d.byLegacy[f.LegacyName] = f
	}
	return d
}

// New returns a new, empty instance of the described type.
func (d *Descr) New() FieldList {
	return d.newFn()
}

// Len returns the number of fields.
func (d *Descr) Len() int {
	return len(d.Fields)
}

// ByName retrieves the FieldDescr by name.
func (d *Descr) ByName(name string) (*FieldDescr, bool) {
	f, ok := d.byName[name]
	return f, ok
}

// ByLegacyName retrieves the FieldDescr by the lowercase name used by the legacy wire format.
func (d *Descr) ByLegacyName(name string) (*FieldDescr, bool) {
	f, ok := d.byLegacy[name]
	return f, ok
}

// FieldDescr describes a field.
type FieldDescr struct {
	// Name is the mixed case name of the field, which is also its reflection key.
	Name string
	// LegacyName is the lowercase name the legacy wire format used.
	LegacyName string
	// Type is the type of the field. Enumerations are field.FTEnum, nested lists field.FTStruct.
	Type field.Type
	// Index is the position of the field in its type.
	Index int
	// Enum returns the name table. Only set for field.FTEnum.
	Enum func() *enums.Table
	// Child returns the descriptor of a nested list. Only set for field.FTStruct.
	Child func() *Descr

	has     func(fl reflect.FieldList) bool
	clear   func(fl reflect.FieldList)
	copy    func(dst, src reflect.FieldList)
	merge   func(dst, src reflect.FieldList)
	equal   func(a, b reflect.FieldList) bool
	get     func(fl reflect.FieldList) (reflect.Value, bool)
	def     func(fl reflect.FieldList) reflect.Value
	set     func(fl reflect.FieldList, v reflect.Value)
	peek    func(fl reflect.FieldList) FieldList
	mutable func(fl reflect.FieldList) FieldList
	prune   func(fl reflect.FieldList)
}

// Legacy overrides the legacy name, which defaults to the lowercased Name.
func (f *FieldDescr) Legacy(name string) *FieldDescr {
	f.LegacyName = name
	return f
}

// IsSub reports if the field is a nested field list.
func (f *FieldDescr) IsSub() bool {
	return f.Type == field.FTStruct
}

// Has reports if the field is set on fl. Vectors are set when non-empty.
func (f *FieldDescr) Has(fl FieldList) bool {
	return f.has(fl)
}

// Get returns the value of a leaf field and if it is set. It panics on a nested list.
func (f *FieldDescr) Get(fl FieldList) (reflect.Value, bool) {
	if f.IsSub() {
		panic(fmt.Sprintf("FieldDescr(%s).Get() called on a nested list", f.Name))
	}
	return f.get(fl)
}

// Default returns the default value of a leaf field.
func (f *FieldDescr) Default() reflect.Value {
	if f.IsSub() {
		return reflect.Value{}
	}
	return f.def(nil)
}

// Set stores v in a leaf field of fl.
func (f *FieldDescr) Set(fl FieldList, v reflect.Value) error {
	if f.IsSub() {
		return fmt.Errorf("%s: %w", f.Name, reflect.ErrFieldList)
	}
	if !field.Compatible(f.Type, v.Type()) {
		return fmt.Errorf("%s: %w", f.Name, &reflect.KindError{Want: f.Type, Have: v.Type()})
	}
	f.set(fl, v)
	return nil
}

// Clear makes the field absent on fl.
func (f *FieldDescr) Clear(fl FieldList) {
	f.clear(fl)
}

// Peek returns the nested list held by fl, or nil if it is absent.
func (f *FieldDescr) Peek(fl FieldList) FieldList {
	if !f.IsSub() {
		return nil
	}
	return f.peek(fl)
}

// Mutable returns the nested list held by fl, creating it if absent.
func (f *FieldDescr) Mutable(fl FieldList) FieldList {
	if !f.IsSub() {
		panic(fmt.Sprintf("FieldDescr(%s).Mutable() called on a leaf", f.Name))
	}
	return f.mutable(fl)
}

// legacyName is the default legacy name for a field.
func legacyName(name string) string {
	return strings.ToLower(name)
}
