package structs

import (
	"fmt"
	"slices"

	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/optional"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/reflect/enums"
)

// optPtr is the method set shared by *optional.Bool, *optional.String and *optional.Scalar.
type optPtr[O, V any] interface {
	*O
	HasValue() bool
	Value() V
	ValueOr(def V) V
	Set(v V)
	Reset()
	Equal(o O) bool
}

// self converts fl back to the generated type. A nil fl or typed nil yields nil.
func self[S any](fl reflect.FieldList) *S {
	if fl == nil {
		return nil
	}
	return any(fl).(*S)
}

func scalar[S, O, V any, PO optPtr[O, V]](name string, ft field.Type, def V, ptr func(*S) *O, toV func(V) reflect.Value, fromV func(reflect.Value) V) *FieldDescr {
	return &FieldDescr{
		Name:       name,
		LegacyName: legacyName(name),
		Type:       ft,
		has: func(fl reflect.FieldList) bool {
			s := self[S](fl)
			return s != nil && PO(ptr(s)).HasValue()
		},
		clear: func(fl reflect.FieldList) {
			PO(ptr(self[S](fl))).Reset()
		},
		copy: func(dst, src reflect.FieldList) {
			*ptr(self[S](dst)) = *ptr(self[S](src))
		},
		merge: func(dst, src reflect.FieldList) {
			if p := ptr(self[S](src)); PO(p).HasValue() {
				*ptr(self[S](dst)) = *p
			}
		},
		equal: func(a, b reflect.FieldList) bool {
			return PO(ptr(self[S](a))).Equal(*ptr(self[S](b)))
		},
		get: func(fl reflect.FieldList) (reflect.Value, bool) {
			s := self[S](fl)
			if s == nil || !PO(ptr(s)).HasValue() {
				return reflect.Value{}, false
			}
			return toV(PO(ptr(s)).Value()), true
		},
		def: func(fl reflect.FieldList) reflect.Value {
			s := self[S](fl)
			if s == nil {
				return toV(def)
			}
			return toV(PO(ptr(s)).ValueOr(def))
		},
		set: func(fl reflect.FieldList, v reflect.Value) {
			PO(ptr(self[S](fl))).Set(fromV(v))
		},
	}
}

// Bool describes a boolean field of S.
func Bool[S any](name string, def bool, ptr func(*S) *optional.Bool) *FieldDescr {
	return scalar[S, optional.Bool, bool](
		name, field.FTBool, def, ptr,
		reflect.ValueOfBool,
		func(v reflect.Value) bool {
			b, _ := v.Bool()
			return b
		},
	)
}

// String describes a string field of S.
func String[S any](name string, def string, ptr func(*S) *optional.String) *FieldDescr {
	return scalar[S, optional.String, string](
		name, field.FTString, def, ptr,
		reflect.ValueOfString,
		func(v reflect.Value) string {
			s, _ := v.Str()
			return s
		},
	)
}

// Number describes a numeric field of S. The field type is derived from T, which must
// be int32, uint32, uint64, float32 or float64.
func Number[S any, T optional.Number](name string, def T, ptr func(*S) *optional.Scalar[T]) *FieldDescr {
	ft := numberType[T]()
	return scalar[S, optional.Scalar[T], T](name, ft, def, ptr, numberValue[T], numberFrom[T])
}

// Enum describes an enumeration field of S. Enumerations are stored as int32 codes.
func Enum[S any](name string, def int32, table func() *enums.Table, ptr func(*S) *optional.Scalar[int32]) *FieldDescr {
	f := scalar[S, optional.Scalar[int32], int32](
		name, field.FTEnum, def, ptr,
		func(v int32) reflect.Value { return reflect.ValueOfEnum(v, table()) },
		func(v reflect.Value) int32 {
			i, _ := v.Int32()
			return i
		},
	)
	f.Enum = table
	return f
}

func numberType[T optional.Number]() field.Type {
	var zero T
	switch any(zero).(type) {
	case int32:
		return field.FTInt32
	case uint32:
		return field.FTUint32
	case uint64:
		return field.FTUint64
	case float32:
		return field.FTFloat32
	case float64:
		return field.FTFloat64
	}
	panic(fmt.Sprintf("structs.Number: %T is not a field type", zero))
}

func numberValue[T optional.Number](v T) reflect.Value {
	switch x := any(v).(type) {
	case int32:
		return reflect.ValueOfInt32(x)
	case uint32:
		return reflect.ValueOfUint32(x)
	case uint64:
		return reflect.ValueOfUint64(x)
	case float32:
		return reflect.ValueOfFloat(x)
	case float64:
		return reflect.ValueOfDouble(x)
	}
	panic(fmt.Sprintf("structs.Number: %T is not a field type", v))
}

func numberFrom[T optional.Number](v reflect.Value) T {
	var out any
	switch numberType[T]() {
	case field.FTInt32:
		out, _ = v.Int32()
	case field.FTUint32:
		out, _ = v.Uint32()
	case field.FTUint64:
		out, _ = v.Uint64()
	case field.FTFloat32:
		out, _ = v.Float()
	case field.FTFloat64:
		out, _ = v.Double()
	}
	return out.(T)
}

func vector[S any, E comparable](name string, ft field.Type, ptr func(*S) *[]E, toV func([]E) reflect.Value, fromV func(reflect.Value) ([]E, error)) *FieldDescr {
	return &FieldDescr{
		Name:       name,
		LegacyName: legacyName(name),
		Type:       ft,
		has: func(fl reflect.FieldList) bool {
			s := self[S](fl)
			return s != nil && len(*ptr(s)) > 0
		},
		clear: func(fl reflect.FieldList) {
			*ptr(self[S](fl)) = nil
		},
		copy: func(dst, src reflect.FieldList) {
			*ptr(self[S](dst)) = slices.Clone(*ptr(self[S](src)))
		},
		merge: func(dst, src reflect.FieldList) {
			d := ptr(self[S](dst))
			*d = append(*d, *ptr(self[S](src))...)
		},
		equal: func(a, b reflect.FieldList) bool {
			return slices.Equal(*ptr(self[S](a)), *ptr(self[S](b)))
		},
		get: func(fl reflect.FieldList) (reflect.Value, bool) {
			s := self[S](fl)
			if s == nil {
				return toV(nil), true
			}
			return toV(*ptr(s)), true
		},
		def: func(fl reflect.FieldList) reflect.Value {
			s := self[S](fl)
			if s == nil {
				return toV(nil)
			}
			return toV(*ptr(s))
		},
		set: func(fl reflect.FieldList, v reflect.Value) {
			// The value hands back a copy, so it can be stored directly.
			e, _ := fromV(v)
			*ptr(self[S](fl)) = e
		},
	}
}

// Strings describes a string vector field of S.
func Strings[S any](name string, ptr func(*S) *[]string) *FieldDescr {
	return vector(name, field.FTListStrings, ptr, reflect.ValueOfStrings, reflect.Value.Strings)
}

// IDs describes an id vector field of S.
func IDs[S any](name string, ptr func(*S) *[]uint64) *FieldDescr {
	return vector(name, field.FTListIDs, ptr, reflect.ValueOfIDs, reflect.Value.IDs)
}

// Sub describes a nested field list of type C held by S as a pointer. A nil pointer is
// an absent list.
func Sub[S, C any, PC interface {
	*C
	FieldList
}](name string, child func() *Descr, ptr func(*S) **C) *FieldDescr {
	peek := func(fl reflect.FieldList) FieldList {
		s := self[S](fl)
		if s == nil || *ptr(s) == nil {
			return nil
		}
		return PC(*ptr(s))
	}
	mutable := func(fl reflect.FieldList) FieldList {
		p := ptr(self[S](fl))
		if *p == nil {
			*p = new(C)
		}
		return PC(*p)
	}
	return &FieldDescr{
		Name:       name,
		LegacyName: legacyName(name),
		Type:       field.FTStruct,
		Child:      child,
		has: func(fl reflect.FieldList) bool {
			return peek(fl) != nil
		},
		clear: func(fl reflect.FieldList) {
			*ptr(self[S](fl)) = nil
		},
		copy: func(dst, src reflect.FieldList) {
			from := peek(src)
			if from == nil {
				*ptr(self[S](dst)) = nil
				return
			}
			Copy(mutable(dst), from)
		},
		merge: func(dst, src reflect.FieldList) {
			if from := peek(src); from != nil {
				Merge(mutable(dst), from)
			}
		},
		equal: func(a, b reflect.FieldList) bool {
			x, y := peek(a), peek(b)
			if x == nil || y == nil {
				return x == nil && y == nil
			}
			return Equal(x, y)
		},
		peek:    peek,
		mutable: mutable,
		prune: func(fl reflect.FieldList) {
			c := peek(fl)
			if c == nil {
				return
			}
			c.Prune()
			if c.IsEmpty() {
				*ptr(self[S](fl)) = nil
			}
		},
	}
}
