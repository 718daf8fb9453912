package structs

import (
	"sync"
	"testing"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/optional"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/reflect/enums"
	"github.com/kylelemons/godebug/pretty"
)

// inner and outer are written the way the compiler writes data model types.
type inner struct {
	angle optional.Scalar[float64]
}

var innerDescr = sync.OnceValue(func() *Descr {
	return NewDescr[inner]("inner",
		Number("angle", 0.0, func(s *inner) *optional.Scalar[float64] { return &s.angle }),
	)
})

func (x *inner) Descriptor() *Descr { return innerDescr() }
func (x *inner) Clear()             { *x = inner{} }
func (x *inner) Prune()             { Prune(x) }
func (x *inner) IsEmpty() bool      { return x == nil || IsEmpty(x) }

var modeTable = sync.OnceValue(func() *enums.Table {
	return enums.NewTable("Mode").Insert(0, "OFF").Append("ON")
})

type outer struct {
	id    optional.Scalar[uint64]
	name  optional.String
	on    optional.Bool
	mode  optional.Scalar[int32]
	files []string
	ids   []uint64
	in    *inner
}

var outerDescr = sync.OnceValue(func() *Descr {
	return NewDescr[outer]("outer",
		Number("id", uint64(0), func(s *outer) *optional.Scalar[uint64] { return &s.id }),
		String("name", "none", func(s *outer) *optional.String { return &s.name }),
		Bool("on", true, func(s *outer) *optional.Bool { return &s.on }),
		Enum("mode", 1, modeTable, func(s *outer) *optional.Scalar[int32] { return &s.mode }),
		Strings("files", func(s *outer) *[]string { return &s.files }),
		IDs("ids", func(s *outer) *[]uint64 { return &s.ids }).Legacy("idlist"),
		Sub[outer, inner]("in", innerDescr, func(s *outer) **inner { return &s.in }),
	)
})

func (x *outer) Descriptor() *Descr { return outerDescr() }
func (x *outer) Clear()             { *x = outer{} }
func (x *outer) Prune()             { Prune(x) }
func (x *outer) IsEmpty() bool      { return x == nil || IsEmpty(x) }

func full() *outer {
	o := &outer{
		id:    optional.Of[uint64](7),
		name:  optional.OfString("seven"),
		on:    optional.OfBool(false),
		mode:  optional.Of[int32](0),
		files: []string{"a", "b"},
		ids:   []uint64{1, 2},
		in:    &inner{angle: optional.Of(1.5)},
	}
	return o
}

func TestDescr(t *testing.T) {
	d := outerDescr()

	var names, legacy []string
	for _, f := range d.Fields {
		names = append(names, f.Name)
		legacy = append(legacy, f.LegacyName)
	}
	if diff := pretty.Compare([]string{"id", "name", "on", "mode", "files", "ids", "in"}, names); diff != "" {
		t.Errorf("TestDescr(names): -want/+got:\n%s", diff)
	}
	if diff := pretty.Compare([]string{"id", "name", "on", "mode", "files", "idlist", "in"}, legacy); diff != "" {
		t.Errorf("TestDescr(legacy): -want/+got:\n%s", diff)
	}

	f, ok := d.ByLegacyName("idlist")
	if !ok || f.Name != "ids" || f.Index != 5 || f.Type != field.FTListIDs {
		t.Errorf("TestDescr: ByLegacyName(idlist): got %+v, %v", f, ok)
	}
	if f, _ := d.ByName("mode"); f.Type != field.FTEnum || f.Enum() != modeTable() {
		t.Errorf("TestDescr: mode is not an enumeration with its table")
	}
	if _, ok := d.ByName("nothing"); ok {
		t.Errorf("TestDescr: ByName(nothing): got ok, want !ok")
	}
	if _, ok := d.New().(*outer); !ok {
		t.Errorf("TestDescr: New() did not return *outer")
	}
}

func TestNewDescrDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("TestNewDescrDuplicate: NewDescr() did not panic")
		}
	}()
	NewDescr[inner]("dup",
		Number("angle", 0.0, func(s *inner) *optional.Scalar[float64] { return &s.angle }),
		Number("Angle", 0.0, func(s *inner) *optional.Scalar[float64] { return &s.angle }),
	)
}

func TestFieldDescr(t *testing.T) {
	o := &outer{}
	d := outerDescr()
	name, _ := d.ByName("name")
	in, _ := d.ByName("in")

	if name.Has(o) {
		t.Errorf("TestFieldDescr: Has(name) on empty: got true")
	}
	if s, _ := name.Default().Str(); s != "none" {
		t.Errorf("TestFieldDescr: Default(): got %q, want none", s)
	}
	if err := name.Set(o, reflect.ValueOfString("x")); err != nil {
		t.Fatalf("TestFieldDescr: Set(): %s", err)
	}
	if v, ok := name.Get(o); !ok || !v.Equal(reflect.ValueOfString("x")) {
		t.Errorf("TestFieldDescr: Get(): got %v, %v", v, ok)
	}
	if err := name.Set(o, reflect.ValueOfUint64(1)); !errors.Is(err, reflect.ErrWrongKind) {
		t.Errorf("TestFieldDescr: Set(wrong kind): got err == %v, want ErrWrongKind", err)
	}
	if err := in.Set(o, reflect.ValueOfDouble(1)); !errors.Is(err, reflect.ErrFieldList) {
		t.Errorf("TestFieldDescr: Set(nested list): got err == %v, want ErrFieldList", err)
	}

	if in.Peek(o) != nil {
		t.Errorf("TestFieldDescr: Peek() on absent list: got non-nil")
	}
	if in.Has(o) {
		t.Errorf("TestFieldDescr: Has(in): got true before Mutable()")
	}
	if c := in.Mutable(o); c != FieldList(o.in) || o.in == nil {
		t.Errorf("TestFieldDescr: Mutable() did not create the nested list")
	}
	in.Clear(o)
	if o.in != nil {
		t.Errorf("TestFieldDescr: Clear(in): nested list still present")
	}
}

func TestCopy(t *testing.T) {
	src := full()
	dst := &outer{files: []string{"old"}, in: &inner{}}

	Copy(dst, src)
	if !Equal(dst, src) {
		t.Fatalf("TestCopy: copy is not equal to the source")
	}
	src.files[0] = "changed"
	if dst.files[0] != "a" {
		t.Errorf("TestCopy: vectors were not cloned")
	}
	if dst.in == src.in {
		t.Errorf("TestCopy: nested list was not copied")
	}

	// A nested list absent in the source becomes absent.
	Copy(dst, &outer{})
	if dst.in != nil || !dst.IsEmpty() {
		t.Errorf("TestCopy: copy of an empty list: got %+v", dst)
	}

	Copy(src, src)
	if src.name.Value() != "seven" {
		t.Errorf("TestCopy: self copy changed the list")
	}

	Copy(src, nil)
	if !src.IsEmpty() {
		t.Errorf("TestCopy: copy from nil did not clear")
	}
}

func TestMerge(t *testing.T) {
	dst := &outer{
		id:    optional.Of[uint64](1),
		name:  optional.OfString("kept"),
		files: []string{"x"},
	}
	src := &outer{
		id:    optional.Of[uint64](2),
		files: []string{"y"},
		in:    &inner{angle: optional.Of(3.0)},
	}

	Merge(dst, src)

	if got := dst.id.Value(); got != 2 {
		t.Errorf("TestMerge(id): got %d, want 2", got)
	}
	if got := dst.name.Value(); got != "kept" {
		t.Errorf("TestMerge(name): got %q, want kept", got)
	}
	if diff := pretty.Compare([]string{"x", "y"}, dst.files); diff != "" {
		t.Errorf("TestMerge(files): -want/+got:\n%s", diff)
	}
	if dst.in == nil || dst.in == src.in || dst.in.angle.Value() != 3 {
		t.Errorf("TestMerge(in): nested list was not merged into a new list")
	}
	if dst.on.HasValue() || dst.mode.HasValue() {
		t.Errorf("TestMerge: fields absent in the source were set")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *outer
		want bool
	}{
		{name: "empty", a: &outer{}, b: &outer{}, want: true},
		{name: "full", a: full(), b: full(), want: true},
		{name: "absent vs zero", a: &outer{}, b: &outer{id: optional.Of[uint64](0)}, want: false},
		{name: "vectors differ", a: full(), b: func() *outer { o := full(); o.ids = o.ids[:1]; return o }(), want: false},
		{name: "empty nested vs absent", a: &outer{in: &inner{}}, b: &outer{}, want: false},
		{name: "nested differ", a: full(), b: func() *outer { o := full(); o.in.angle.Set(2); return o }(), want: false},
	}
	for _, test := range tests {
		if got := Equal(test.a, test.b); got != test.want {
			t.Errorf("TestEqual(%s): got %v, want %v", test.name, got, test.want)
		}
	}
	if !Equal(nil, nil) || Equal(&outer{}, nil) {
		t.Errorf("TestEqual(nil): nil handling is wrong")
	}
}

func TestPruneAndIsEmpty(t *testing.T) {
	o := &outer{in: &inner{}}
	if o.IsEmpty() {
		t.Errorf("TestPruneAndIsEmpty: a present nested list must count as set")
	}
	o.Prune()
	if o.in != nil || !o.IsEmpty() {
		t.Errorf("TestPruneAndIsEmpty: Prune() kept the empty nested list")
	}

	o = full()
	o.Prune()
	if o.in == nil {
		t.Errorf("TestPruneAndIsEmpty: Prune() dropped a nested list with a set field")
	}
	if !IsEmpty(nil) {
		t.Errorf("TestPruneAndIsEmpty: IsEmpty(nil): got false")
	}
}

func TestNewReflection(t *testing.T) {
	r := NewReflection(outerDescr())

	var paths []string
	var types []field.Type
	r.Visit("", func(path string, ft field.Type) {
		paths = append(paths, path)
		types = append(types, ft)
	})
	if diff := pretty.Compare([]string{"id", "name", "on", "mode", "files", "ids", "in.angle"}, paths); diff != "" {
		t.Errorf("TestNewReflection(paths): -want/+got:\n%s", diff)
	}
	wantTypes := []field.Type{field.FTUint64, field.FTString, field.FTBool, field.FTEnum, field.FTListStrings, field.FTListIDs, field.FTFloat64}
	if diff := pretty.Compare(wantTypes, types); diff != "" {
		t.Errorf("TestNewReflection(types): -want/+got:\n%s", diff)
	}

	o := &outer{}
	if _, ok, err := r.GetValue(o, "in.angle"); err != nil || ok || o.in != nil {
		t.Errorf("TestNewReflection: GetValue(in.angle) on empty: got ok == %v, err == %v, allocated == %v", ok, err, o.in != nil)
	}
	if err := r.SetValue(o, reflect.ValueOfDouble(2.5), "in.angle"); err != nil {
		t.Fatalf("TestNewReflection: SetValue(in.angle): %s", err)
	}
	if o.in == nil || o.in.angle.Value() != 2.5 {
		t.Errorf("TestNewReflection: SetValue(in.angle) did not reach the field")
	}
	if err := r.SetValue(o, reflect.ValueOfInt32(0), "mode"); err != nil {
		t.Fatalf("TestNewReflection: SetValue(mode) with an Int32: %s", err)
	}
	v, err := r.GetDefaultValue(o, "mode")
	if err != nil {
		t.Fatal(err)
	}
	if txt, _ := v.EnumerationText(); txt != "OFF" {
		t.Errorf("TestNewReflection: mode text: got %q, want OFF", txt)
	}
	v, _ = r.GetDefaultValue(nil, "on")
	if b, _ := v.Bool(); !b {
		t.Errorf("TestNewReflection: default of on: got false, want true")
	}

	if err := r.ClearValue(o, "in"); err != nil || o.in != nil {
		t.Errorf("TestNewReflection: ClearValue(in): got err == %v, in == %v", err, o.in)
	}
}
