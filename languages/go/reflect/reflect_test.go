package reflect

import (
	"fmt"
	"slices"
	"testing"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/reflect/enums"
	"github.com/kylelemons/godebug/pretty"
)

// offsets and frame are a small hand written field list pair, so this package can be
// tested without the generated data model.
type offsets struct {
	angle    *float64
	hasAngle bool
}

func (o *offsets) Clear()        { *o = offsets{} }
func (o *offsets) Prune()        {}
func (o *offsets) IsEmpty() bool { return !o.hasAngle }

type frame struct {
	system  *int32
	name    *string
	files   []string
	offsets *offsets
}

func (f *frame) Clear()        { *f = frame{} }
func (f *frame) Prune()        {}
func (f *frame) IsEmpty() bool { return f.system == nil && f.name == nil && len(f.files) == 0 && f.offsets == nil }

var systemTable = enums.NewTable("CoordinateSystem").Insert(1, "NED").Append("NWU").Append("ENU").Append("LLA").Append("ECEF")

func offsetsReflection() *Reflection {
	r := New("offsets")
	must(r.AddReflection("angle", Entry{
		Type: field.FTFloat64,
		Get: func(fl FieldList) (Value, bool) {
			o := fl.(*offsets)
			if !o.hasAngle {
				return Value{}, false
			}
			return ValueOfDouble(*o.angle), true
		},
		Default: func(fl FieldList) Value {
			if fl != nil {
				if o := fl.(*offsets); o.hasAngle {
					return ValueOfDouble(*o.angle)
				}
			}
			return ValueOfDouble(0)
		},
		Set: func(fl FieldList, v Value) {
			d, _ := v.Double()
			o := fl.(*offsets)
			o.angle, o.hasAngle = &d, true
		},
		Clear: func(fl FieldList) {
			o := fl.(*offsets)
			o.angle, o.hasAngle = nil, false
		},
	}))
	return r
}

func frameReflection() *Reflection {
	r := New("frame")
	must(r.AddReflection("coordinateSystem", Entry{
		Type: field.FTEnum,
		Enum: systemTable,
		Get: func(fl FieldList) (Value, bool) {
			f := fl.(*frame)
			if f.system == nil {
				return Value{}, false
			}
			return ValueOfEnum(*f.system, systemTable), true
		},
		Default: func(fl FieldList) Value {
			if fl != nil && fl.(*frame).system != nil {
				return ValueOfEnum(*fl.(*frame).system, systemTable)
			}
			return ValueOfEnum(1, systemTable)
		},
		Set: func(fl FieldList, v Value) {
			i, _ := v.Int32()
			fl.(*frame).system = &i
		},
		Clear: func(fl FieldList) { fl.(*frame).system = nil },
	}))
	must(r.AddReflection("name", Entry{
		Type: field.FTString,
		Get: func(fl FieldList) (Value, bool) {
			f := fl.(*frame)
			if f.name == nil {
				return Value{}, false
			}
			return ValueOfString(*f.name), true
		},
		Default: func(fl FieldList) Value {
			if fl != nil && fl.(*frame).name != nil {
				return ValueOfString(*fl.(*frame).name)
			}
			return ValueOfString("entity")
		},
		Set: func(fl FieldList, v Value) {
			s, _ := v.Str()
			fl.(*frame).name = &s
		},
		Clear: func(fl FieldList) { fl.(*frame).name = nil },
	}))
	must(r.AddReflection("files", Entry{
		Type: field.FTListStrings,
		Get: func(fl FieldList) (Value, bool) {
			return ValueOfStrings(fl.(*frame).files), true
		},
		Default: func(fl FieldList) Value {
			if fl == nil {
				return ValueOfStrings(nil)
			}
			return ValueOfStrings(fl.(*frame).files)
		},
		Set: func(fl FieldList, v Value) {
			s, _ := v.Strings()
			fl.(*frame).files = s
		},
		Clear: func(fl FieldList) { fl.(*frame).files = nil },
	}))
	must(r.AddListReflection(
		"tangentPlaneOffset",
		offsetsReflection(),
		func(fl FieldList) FieldList {
			if o := fl.(*frame).offsets; o != nil {
				return o
			}
			return nil
		},
		func(fl FieldList) FieldList {
			f := fl.(*frame)
			if f.offsets == nil {
				f.offsets = &offsets{}
			}
			return f.offsets
		},
		func(fl FieldList) { fl.(*frame).offsets = nil },
	))
	return r
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func TestAddReflection(t *testing.T) {
	r := frameReflection()

	if err := r.AddReflection("name", Entry{}); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("TestAddReflection(duplicate): got err == %v, want ErrDuplicateKey", err)
	}
	if err := r.AddReflection("a.b", Entry{}); !errors.Is(err, ErrBadKey) {
		t.Errorf("TestAddReflection(dotted): got err == %v, want ErrBadKey", err)
	}
	if diff := pretty.Compare([]string{"coordinateSystem", "name", "files", "tangentPlaneOffset"}, r.Keys()); diff != "" {
		t.Errorf("TestAddReflection: Keys() -want/+got:\n%s", diff)
	}
}

func TestGetValue(t *testing.T) {
	r := frameReflection()
	f := &frame{}

	tests := []struct {
		name    string
		path    string
		want    Value
		wantOK  bool
		wantErr error
	}{
		{name: "Success: unset leaf", path: "name"},
		{name: "Success: absent nested list", path: "tangentPlaneOffset.angle"},
		{name: "Success: vector is always set", path: "files", want: ValueOfStrings(nil), wantOK: true},
		{name: "Error: unknown key", path: "nope", wantErr: ErrUnknownPath},
		{name: "Error: unknown nested key", path: "tangentPlaneOffset.nope", wantErr: ErrUnknownPath},
		{name: "Error: child of a leaf", path: "name.more", wantErr: ErrUnknownPath},
		{name: "Error: field list", path: "tangentPlaneOffset", wantErr: ErrFieldList},
	}

	for _, test := range tests {
		got, ok, err := r.GetValue(f, test.path)
		switch {
		case err == nil && test.wantErr != nil:
			t.Errorf("TestGetValue(%s): got err == nil, want err != nil", test.name)
			continue
		case err != nil && test.wantErr == nil:
			t.Errorf("TestGetValue(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			if !errors.Is(err, test.wantErr) {
				t.Errorf("TestGetValue(%s): got err == %s, want %s", test.name, err, test.wantErr)
			}
			continue
		}
		if ok != test.wantOK {
			t.Errorf("TestGetValue(%s): got ok == %v, want %v", test.name, ok, test.wantOK)
		}
		if !got.Equal(test.want) {
			t.Errorf("TestGetValue(%s): got %s, want %s", test.name, got.Display(), test.want.Display())
		}
	}

	if f.offsets != nil {
		t.Errorf("TestGetValue: reading a nested path allocated the nested field list")
	}
}

func TestSetValueNested(t *testing.T) {
	r := frameReflection()
	f := &frame{}

	if err := r.SetValue(f, ValueOfDouble(2.0), "tangentPlaneOffset.angle"); err != nil {
		t.Fatalf("TestSetValueNested: SetValue(): got err == %s, want nil", err)
	}
	if f.offsets == nil || *f.offsets.angle != 2.0 {
		t.Fatalf("TestSetValueNested: nested value was not stored")
	}
	v, ok, err := r.GetValue(f, "tangentPlaneOffset.angle")
	if err != nil || !ok {
		t.Fatalf("TestSetValueNested: GetValue(): got ok == %v, err == %v", ok, err)
	}
	if d, _ := v.Double(); d != 2.0 {
		t.Errorf("TestSetValueNested: got %v, want 2.0", d)
	}

	// Clearing the leaf leaves the nested list present; clearing the list removes it.
	if err := r.ClearValue(f, "tangentPlaneOffset.angle"); err != nil {
		t.Fatalf("TestSetValueNested: ClearValue(leaf): %s", err)
	}
	if _, ok, _ := r.GetValue(f, "tangentPlaneOffset.angle"); ok {
		t.Errorf("TestSetValueNested: value still set after ClearValue()")
	}
	if err := r.ClearValue(f, "tangentPlaneOffset"); err != nil {
		t.Fatalf("TestSetValueNested: ClearValue(list): %s", err)
	}
	if f.offsets != nil {
		t.Errorf("TestSetValueNested: nested list still present after ClearValue()")
	}
	// Clearing below an absent list is a no-op, but the path is still checked.
	if err := r.ClearValue(f, "tangentPlaneOffset.angle"); err != nil {
		t.Errorf("TestSetValueNested: ClearValue() below absent list: got err == %s, want nil", err)
	}
	if err := r.ClearValue(f, "tangentPlaneOffset.nope"); !errors.Is(err, ErrUnknownPath) {
		t.Errorf("TestSetValueNested: ClearValue() bad path: got err == %v, want ErrUnknownPath", err)
	}
}

func TestSetValueKind(t *testing.T) {
	r := frameReflection()
	f := &frame{}

	tests := []struct {
		name    string
		path    string
		v       Value
		wantErr error
	}{
		{name: "Success: enum from int32", path: "coordinateSystem", v: ValueOfInt32(5)},
		{name: "Success: enum from enum", path: "coordinateSystem", v: ValueOfEnum(3, systemTable)},
		{name: "Success: vector", path: "files", v: ValueOfStrings([]string{"Test", "Test2"})},
		{name: "Error: string into enum", path: "coordinateSystem", v: ValueOfString("NED"), wantErr: ErrWrongKind},
		{name: "Error: float into double", path: "tangentPlaneOffset.angle", v: ValueOfFloat(1), wantErr: ErrWrongKind},
		{name: "Error: unknown path", path: "missing", v: ValueOfBool(true), wantErr: ErrUnknownPath},
	}

	for _, test := range tests {
		err := r.SetValue(f, test.v, test.path)
		switch {
		case err == nil && test.wantErr != nil:
			t.Errorf("TestSetValueKind(%s): got err == nil, want err != nil", test.name)
		case err != nil && test.wantErr == nil:
			t.Errorf("TestSetValueKind(%s): got err == %s, want err == nil", test.name, err)
		case err != nil && !errors.Is(err, test.wantErr):
			t.Errorf("TestSetValueKind(%s): got err == %s, want %s", test.name, err, test.wantErr)
		}
	}
	if f.offsets != nil {
		t.Errorf("TestSetValueKind: a rejected nested set allocated the nested field list")
	}
	if !slices.Equal(f.files, []string{"Test", "Test2"}) {
		t.Errorf("TestSetValueKind: files: got %v", f.files)
	}
}

func TestGetDefaultValue(t *testing.T) {
	r := frameReflection()

	v, err := r.GetDefaultValue(nil, "name")
	if err != nil {
		t.Fatalf("TestGetDefaultValue: %s", err)
	}
	if s, _ := v.Str(); s != "entity" {
		t.Errorf("TestGetDefaultValue(nil): got %q, want entity", s)
	}

	f := &frame{}
	must(r.SetValue(f, ValueOfString("plat"), "name"))
	v, _ = r.GetDefaultValue(f, "name")
	if s, _ := v.Str(); s != "plat" {
		t.Errorf("TestGetDefaultValue(set): got %q, want plat", s)
	}

	v, _ = r.GetDefaultValue(f, "coordinateSystem")
	if txt, err := v.EnumerationText(); err != nil || txt != "NED" {
		t.Errorf("TestGetDefaultValue(enum): got %q, %v, want NED", txt, err)
	}
	v, _ = r.GetDefaultValue(f, "tangentPlaneOffset.angle")
	if d, _ := v.Double(); d != 0 {
		t.Errorf("TestGetDefaultValue(nested): got %v, want 0", d)
	}
}

func TestVisit(t *testing.T) {
	type leaf struct {
		Path string
		Type field.Type
	}
	var got []leaf
	frameReflection().Visit("", func(path string, ft field.Type) {
		got = append(got, leaf{path, ft})
	})
	want := []leaf{
		{"coordinateSystem", field.FTEnum},
		{"name", field.FTString},
		{"files", field.FTListStrings},
		{"tangentPlaneOffset.angle", field.FTFloat64},
	}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestVisit: -want/+got:\n%s", diff)
	}

	got = nil
	frameReflection().Visit("coordinateFrame", func(path string, ft field.Type) {
		got = append(got, leaf{path, ft})
	})
	if got[3].Path != "coordinateFrame.tangentPlaneOffset.angle" {
		t.Errorf("TestVisit(prefix): got %q", got[3].Path)
	}
}

func TestSetPaths(t *testing.T) {
	r := frameReflection()
	f := &frame{}
	must(r.SetValue(f, ValueOfString("x"), "name"))
	must(r.SetValue(f, ValueOfDouble(1), "tangentPlaneOffset.angle"))

	want := []string{"name", "tangentPlaneOffset.angle"}
	if diff := pretty.Compare(want, r.SetPaths(f)); diff != "" {
		t.Errorf("TestSetPaths: -want/+got:\n%s", diff)
	}
}

func TestErrType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.Type
	}{
		{name: "kind error", err: fmt.Errorf("a.b: %w", &KindError{Want: field.FTBool, Have: field.FTString}), want: errors.TypeKind},
		{name: "unknown path", err: fmt.Errorf("a.b: %w", ErrUnknownPath), want: errors.TypePath},
		{name: "field list", err: ErrFieldList, want: errors.TypePath},
		{name: "tag index", err: ErrBadTagIndex, want: errors.TypePath},
		{name: "other", err: errors.New("broken"), want: errors.TypeParameter},
	}

	for _, test := range tests {
		if got := ErrType(test.err); got != test.want {
			t.Errorf("TestErrType(%s): got %s, want %s", test.name, got, test.want)
		}
	}
}
