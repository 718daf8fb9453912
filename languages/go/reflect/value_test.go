package reflect

import (
	"fmt"
	"testing"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/field"
)

func TestValueType(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want field.Type
	}{
		{name: "zero", v: Value{}, want: field.FTUnknown},
		{name: "bool", v: ValueOfBool(true), want: field.FTBool},
		{name: "int32", v: ValueOfInt32(-1), want: field.FTInt32},
		{name: "enum", v: ValueOfEnum(1, systemTable), want: field.FTEnum},
		{name: "uint32", v: ValueOfUint32(1), want: field.FTUint32},
		{name: "uint64", v: ValueOfUint64(1), want: field.FTUint64},
		{name: "float", v: ValueOfFloat(1), want: field.FTFloat32},
		{name: "double", v: ValueOfDouble(1), want: field.FTFloat64},
		{name: "string", v: ValueOfString("a"), want: field.FTString},
		{name: "strings", v: ValueOfStrings(nil), want: field.FTListStrings},
		{name: "ids", v: ValueOfIDs([]uint64{1}), want: field.FTListIDs},
	}
	for _, test := range tests {
		if got := test.v.Type(); got != test.want {
			t.Errorf("TestValueType(%s): got %s, want %s", test.name, got, test.want)
		}
	}
}

func TestValueWrongKind(t *testing.T) {
	v := ValueOfUint64(7)

	if _, err := v.Str(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("TestValueWrongKind: Str() on uint64: got err == %v, want ErrWrongKind", err)
	}
	var ke *KindError
	if _, err := v.Double(); !errors.As(err, &ke) || ke.Want != field.FTFloat64 || ke.Have != field.FTUint64 {
		t.Errorf("TestValueWrongKind: Double() on uint64: got err == %v", err)
	}
	if err := v.SetBool(true); !errors.Is(err, ErrWrongKind) {
		t.Errorf("TestValueWrongKind: SetBool() on uint64: got err == %v, want ErrWrongKind", err)
	}
	if err := v.SetUint64(8); err != nil {
		t.Errorf("TestValueWrongKind: SetUint64(): got err == %v, want nil", err)
	}
	if u, _ := v.Uint64(); u != 8 {
		t.Errorf("TestValueWrongKind: Uint64(): got %d, want 8", u)
	}
	if err := v.SetEnumerationText(systemTable); !errors.Is(err, ErrWrongKind) {
		t.Errorf("TestValueWrongKind: SetEnumerationText() on uint64: got err == %v, want ErrWrongKind", err)
	}
	if _, err := ValueOfInt32(1).EnumerationText(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("TestValueWrongKind: EnumerationText() without table: got err == %v, want ErrWrongKind", err)
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "uint64 vs string", a: ValueOfUint64(1), b: ValueOfString("1"), want: false},
		{name: "same strings", a: ValueOfString("abc"), b: ValueOfString("abc"), want: true},
		{name: "enum ignores table", a: ValueOfEnum(5, systemTable), b: ValueOfInt32(5), want: true},
		{name: "different enum codes", a: ValueOfEnum(5, systemTable), b: ValueOfEnum(4, systemTable), want: false},
		{name: "vectors", a: ValueOfStrings([]string{"a", "b"}), b: ValueOfStrings([]string{"a", "b"}), want: true},
		{name: "vectors differ", a: ValueOfIDs([]uint64{1, 2}), b: ValueOfIDs([]uint64{1}), want: false},
		{name: "float vs double", a: ValueOfFloat(1), b: ValueOfDouble(1), want: false},
	}
	for _, test := range tests {
		if got := test.a.Equal(test.b); got != test.want {
			t.Errorf("TestValueEqual(%s): got %v, want %v", test.name, got, test.want)
		}
	}
}

func TestValueEnumeration(t *testing.T) {
	v := ValueOfInt32(5)
	if err := v.SetEnumerationText(systemTable); err != nil {
		t.Fatalf("TestValueEnumeration: SetEnumerationText(): %s", err)
	}
	if v.Type() != field.FTEnum {
		t.Errorf("TestValueEnumeration: Type(): got %s, want Enumeration", v.Type())
	}
	txt, err := v.EnumerationText()
	if err != nil || txt != "ECEF" {
		t.Errorf("TestValueEnumeration: EnumerationText(): got %q, %v, want ECEF", txt, err)
	}
	if got := v.Display(); got != "ECEF" {
		t.Errorf("TestValueEnumeration: Display(): got %q, want ECEF", got)
	}
}

func TestValueVectorsAreCopied(t *testing.T) {
	in := []string{"Test", "Test2"}
	v := ValueOfStrings(in)
	in[0] = "changed"

	out, _ := v.Strings()
	if out[0] != "Test" {
		t.Errorf("TestValueVectorsAreCopied: constructor kept a reference to the caller's slice")
	}
	out[1] = "changed"
	again, _ := v.Strings()
	if again[1] != "Test2" {
		t.Errorf("TestValueVectorsAreCopied: Strings() returned the internal slice")
	}
}

func TestValueStringer(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "string", v: ValueOfString("plat"), want: `"plat"`},
		{name: "double", v: ValueOfDouble(2.5), want: "2.5"},
		{name: "ids", v: ValueOfIDs([]uint64{7, 8}), want: "[7, 8]"},
		{name: "invalid", v: Value{}, want: "<invalid>"},
	}
	for _, test := range tests {
		if got := fmt.Sprint(test.v); got != test.want {
			t.Errorf("TestValueStringer(%s): got %s, want %s", test.name, got, test.want)
		}
	}
}
