package reflect

import (
	"testing"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/kylelemons/godebug/pretty"
)

func TestMakeTagStackMap(t *testing.T) {
	m := MakeTagStackMap(frameReflection())

	want := TagStackMap{
		"coordinateSystem":         {0},
		"name":                     {1},
		"files":                    {2},
		"tangentPlaneOffset.angle": {3, 0},
	}
	if diff := pretty.Compare(want, m); diff != "" {
		t.Errorf("TestMakeTagStackMap: -want/+got:\n%s", diff)
	}
}

func TestTagStackMapLookup(t *testing.T) {
	m := MakeTagStackMap(frameReflection())

	tests := []struct {
		name    string
		path    string
		want    TagStack
		wantErr bool
	}{
		{name: "Success: leaf", path: "name", want: TagStack{1}},
		{name: "Success: nested leaf", path: "tangentPlaneOffset.angle", want: TagStack{3, 0}},
		{name: "Success: field list", path: "tangentPlaneOffset", want: TagStack{3}},
		{name: "Error: partial key", path: "tangent", wantErr: true},
		{name: "Error: unknown", path: "nothing", wantErr: true},
	}

	for _, test := range tests {
		got, err := m.Lookup(test.path)
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestTagStackMapLookup(%s): got err == nil, want err != nil", test.name)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestTagStackMapLookup(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			continue
		}
		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestTagStackMapLookup(%s): -want/+got:\n%s", test.name, diff)
		}
	}

	// The returned stack is a copy.
	got, _ := m.Lookup("tangentPlaneOffset.angle")
	got[0] = 99
	if m["tangentPlaneOffset.angle"][0] != 3 {
		t.Errorf("TestTagStackMapLookup: Lookup() returned the map's own slice")
	}
}

func TestTagStack(t *testing.T) {
	r := frameReflection()
	if got, err := r.TagStack("tangentPlaneOffset.angle"); err != nil || !equalTags(got, TagStack{3, 0}) {
		t.Errorf("TestTagStack: got %v, %v, want [3 0]", got, err)
	}
	if got, err := r.TagStack("tangentPlaneOffset"); err != nil || !equalTags(got, TagStack{3}) {
		t.Errorf("TestTagStack(list): got %v, %v, want [3]", got, err)
	}
	if _, err := r.TagStack("name.x"); !errors.Is(err, ErrUnknownPath) {
		t.Errorf("TestTagStack(child of leaf): got err == %v, want ErrUnknownPath", err)
	}
}

func equalTags(a, b TagStack) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestValueByTags(t *testing.T) {
	r := frameReflection()
	f := &frame{}

	// Unset values resolve to their default.
	v, err := r.GetValueByTags(f, TagStack{1})
	if err != nil {
		t.Fatalf("TestValueByTags: %s", err)
	}
	if s, _ := v.Str(); s != "entity" {
		t.Errorf("TestValueByTags(default): got %q, want entity", s)
	}

	if err := r.SetValueByTags(f, ValueOfDouble(4.5), TagStack{3, 0}); err != nil {
		t.Fatalf("TestValueByTags: SetValueByTags(): %s", err)
	}
	v, err = r.GetValueByTags(f, TagStack{3, 0})
	if err != nil {
		t.Fatalf("TestValueByTags: %s", err)
	}
	if d, _ := v.Double(); d != 4.5 {
		t.Errorf("TestValueByTags: got %v, want 4.5", d)
	}

	errTests := []struct {
		name string
		tags TagStack
		want error
	}{
		{name: "Error: empty", tags: nil, want: ErrEmptyTagStack},
		{name: "Error: out of range", tags: TagStack{4}, want: ErrBadTagIndex},
		{name: "Error: negative", tags: TagStack{-1}, want: ErrBadTagIndex},
		{name: "Error: past a leaf", tags: TagStack{1, 0}, want: ErrBadTagIndex},
		{name: "Error: field list", tags: TagStack{3}, want: ErrFieldList},
	}
	for _, test := range errTests {
		if _, err := r.GetValueByTags(f, test.tags); !errors.Is(err, test.want) {
			t.Errorf("TestValueByTags(%s): GetValueByTags() got err == %v, want %v", test.name, err, test.want)
		}
		if err := r.SetValueByTags(f, ValueOfDouble(1), test.tags); !errors.Is(err, test.want) {
			t.Errorf("TestValueByTags(%s): SetValueByTags() got err == %v, want %v", test.name, err, test.want)
		}
	}

	if err := r.SetValueByTags(f, ValueOfBool(true), TagStack{1}); !errors.Is(err, ErrWrongKind) {
		t.Errorf("TestValueByTags: wrong kind: got err == %v, want ErrWrongKind", err)
	}
}

func TestMutableFieldList(t *testing.T) {
	r := frameReflection()
	f := &frame{}

	got, err := r.MutableFieldList(f, TagStack{3})
	if err != nil {
		t.Fatalf("TestMutableFieldList: %s", err)
	}
	if got != f.offsets || f.offsets == nil {
		t.Errorf("TestMutableFieldList: did not return the created nested list")
	}
	if _, err := r.MutableFieldList(f, TagStack{1}); !errors.Is(err, ErrBadTagIndex) {
		t.Errorf("TestMutableFieldList(leaf tag): got err == %v, want ErrBadTagIndex", err)
	}
	if got, _ := r.MutableFieldList(f, nil); got != f {
		t.Errorf("TestMutableFieldList(empty): want the field list itself")
	}
}

func TestVisitTags(t *testing.T) {
	var got []TagStack
	frameReflection().VisitTags(TagStack{7}, "", func(tags TagStack, path string, _ field.Type) {
		got = append(got, tags)
	})
	want := []TagStack{{7, 0}, {7, 1}, {7, 2}, {7, 3, 0}}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestVisitTags: -want/+got:\n%s", diff)
	}
}
