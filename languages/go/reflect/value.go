package reflect

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/reflect/enums"
)

// KindError is returned when a Value is accessed as a kind it does not hold.
// It matches ErrWrongKind with errors.Is().
type KindError struct {
	// Want is the kind the caller asked for.
	Want field.Type
	// Have is the kind the Value holds.
	Have field.Type
}

func (e *KindError) Error() string {
	return fmt.Sprintf("value holds %s, not %s", e.Have, e.Want)
}

// Is implements errors.Is().
func (e *KindError) Is(target error) bool {
	return target == ErrWrongKind
}

// Value holds a single field value of any of the field types. The zero Value is invalid
// and reports field.FTUnknown.
type Value struct {
	kind field.Type
	// num holds bool, int32, uint32, uint64 and the bits of float32 and float64.
	num   uint64
	str   string
	strs  []string
	ids   []uint64
	table *enums.Table
}

// ValueOfBool returns v as a Value.
func ValueOfBool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: field.FTBool, num: n}
}

// ValueOfInt32 returns v as a Value.
func ValueOfInt32(v int32) Value {
	return Value{kind: field.FTInt32, num: uint64(uint32(v))}
}

// ValueOfEnum returns v as an Int32 Value with the enumeration table t attached.
func ValueOfEnum(v int32, t *enums.Table) Value {
	return Value{kind: field.FTInt32, num: uint64(uint32(v)), table: t}
}

// ValueOfUint32 returns v as a Value.
func ValueOfUint32(v uint32) Value {
	return Value{kind: field.FTUint32, num: uint64(v)}
}

// ValueOfUint64 returns v as a Value.
func ValueOfUint64(v uint64) Value {
	return Value{kind: field.FTUint64, num: v}
}

// ValueOfFloat returns v as a Value.
func ValueOfFloat(v float32) Value {
	return Value{kind: field.FTFloat32, num: uint64(math.Float32bits(v))}
}

// ValueOfDouble returns v as a Value.
func ValueOfDouble(v float64) Value {
	return Value{kind: field.FTFloat64, num: math.Float64bits(v)}
}

// ValueOfString returns v as a Value.
func ValueOfString(v string) Value {
	return Value{kind: field.FTString, str: v}
}

// ValueOfStrings returns a copy of v as a StringVector Value.
func ValueOfStrings(v []string) Value {
	return Value{kind: field.FTListStrings, strs: slices.Clone(v)}
}

// ValueOfIDs returns a copy of v as an IdVector Value.
func ValueOfIDs(v []uint64) Value {
	return Value{kind: field.FTListIDs, ids: slices.Clone(v)}
}

// Type reports the kind of value held. An Int32 with an enumeration table attached
// reports field.FTEnum.
func (v Value) Type() field.Type {
	if v.kind == field.FTInt32 && v.table != nil {
		return field.FTEnum
	}
	return v.kind
}

// IsValid reports if the Value holds anything.
func (v Value) IsValid() bool {
	return v.kind != field.FTUnknown
}

func (v Value) check(want field.Type) error {
	if v.kind != want {
		return &KindError{Want: want, Have: v.Type()}
	}
	return nil
}

// Bool returns the held bool.
func (v Value) Bool() (bool, error) {
	if err := v.check(field.FTBool); err != nil {
		return false, err
	}
	return v.num == 1, nil
}

// Int32 returns the held int32. This works for enumerations.
func (v Value) Int32() (int32, error) {
	if err := v.check(field.FTInt32); err != nil {
		return 0, err
	}
	return int32(uint32(v.num)), nil
}

// Uint32 returns the held uint32.
func (v Value) Uint32() (uint32, error) {
	if err := v.check(field.FTUint32); err != nil {
		return 0, err
	}
	return uint32(v.num), nil
}

// Uint64 returns the held uint64.
func (v Value) Uint64() (uint64, error) {
	if err := v.check(field.FTUint64); err != nil {
		return 0, err
	}
	return v.num, nil
}

// Float returns the held float32.
func (v Value) Float() (float32, error) {
	if err := v.check(field.FTFloat32); err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v.num)), nil
}

// Double returns the held float64.
func (v Value) Double() (float64, error) {
	if err := v.check(field.FTFloat64); err != nil {
		return 0, err
	}
	return math.Float64frombits(v.num), nil
}

// Str returns the held string. Use Display() to render a Value of any kind.
func (v Value) Str() (string, error) {
	if err := v.check(field.FTString); err != nil {
		return "", err
	}
	return v.str, nil
}

// Strings returns a copy of the held string vector.
func (v Value) Strings() ([]string, error) {
	if err := v.check(field.FTListStrings); err != nil {
		return nil, err
	}
	return slices.Clone(v.strs), nil
}

// IDs returns a copy of the held id vector.
func (v Value) IDs() ([]uint64, error) {
	if err := v.check(field.FTListIDs); err != nil {
		return nil, err
	}
	return slices.Clone(v.ids), nil
}

// Enumeration returns the attached enumeration table, nil if there is none.
func (v Value) Enumeration() *enums.Table {
	return v.table
}

// EnumerationText returns the table text for the held code.
func (v Value) EnumerationText() (string, error) {
	if v.Type() != field.FTEnum {
		return "", &KindError{Want: field.FTEnum, Have: v.Type()}
	}
	return v.table.Text(int32(uint32(v.num)))
}

// SetEnumerationText attaches an enumeration table. The Value must hold an Int32.
func (v *Value) SetEnumerationText(t *enums.Table) error {
	if err := v.check(field.FTInt32); err != nil {
		return err
	}
	v.table = t
	return nil
}

// SetBool replaces the held bool.
func (v *Value) SetBool(b bool) error {
	if err := v.check(field.FTBool); err != nil {
		return err
	}
	*v = ValueOfBool(b)
	return nil
}

// SetInt32 replaces the held int32, keeping any enumeration table.
func (v *Value) SetInt32(i int32) error {
	if err := v.check(field.FTInt32); err != nil {
		return err
	}
	v.num = uint64(uint32(i))
	return nil
}

// SetUint32 replaces the held uint32.
func (v *Value) SetUint32(u uint32) error {
	if err := v.check(field.FTUint32); err != nil {
		return err
	}
	v.num = uint64(u)
	return nil
}

// SetUint64 replaces the held uint64.
func (v *Value) SetUint64(u uint64) error {
	if err := v.check(field.FTUint64); err != nil {
		return err
	}
	v.num = u
	return nil
}

// SetFloat replaces the held float32.
func (v *Value) SetFloat(f float32) error {
	if err := v.check(field.FTFloat32); err != nil {
		return err
	}
	v.num = uint64(math.Float32bits(f))
	return nil
}

// SetDouble replaces the held float64.
func (v *Value) SetDouble(f float64) error {
	if err := v.check(field.FTFloat64); err != nil {
		return err
	}
	v.num = math.Float64bits(f)
	return nil
}

// SetString replaces the held string.
func (v *Value) SetString(s string) error {
	if err := v.check(field.FTString); err != nil {
		return err
	}
	v.str = s
	return nil
}

// SetStrings replaces the held string vector with a copy of s.
func (v *Value) SetStrings(s []string) error {
	if err := v.check(field.FTListStrings); err != nil {
		return err
	}
	v.strs = slices.Clone(s)
	return nil
}

// SetIDs replaces the held id vector with a copy of ids.
func (v *Value) SetIDs(ids []uint64) error {
	if err := v.check(field.FTListIDs); err != nil {
		return err
	}
	v.ids = slices.Clone(ids)
	return nil
}

// Equal compares the kind and the held value. The enumeration table is not part of
// the comparison, so an enumeration equals an Int32 with the same code. Floats compare
// with ==, so NaN never equals itself.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case field.FTFloat32:
		return math.Float32frombits(uint32(v.num)) == math.Float32frombits(uint32(o.num))
	case field.FTFloat64:
		return math.Float64frombits(v.num) == math.Float64frombits(o.num)
	case field.FTString:
		return v.str == o.str
	case field.FTListStrings:
		return slices.Equal(v.strs, o.strs)
	case field.FTListIDs:
		return slices.Equal(v.ids, o.ids)
	}
	return v.num == o.num
}

// Display renders the held value. Enumerations render as their table text when the code
// is known, strings are quoted and vectors render as [a, b].
func (v Value) Display() string {
	switch v.kind {
	case field.FTBool:
		return strconv.FormatBool(v.num == 1)
	case field.FTInt32:
		i := int32(uint32(v.num))
		if v.table != nil {
			if s, err := v.table.Text(i); err == nil {
				return s
			}
		}
		return strconv.FormatInt(int64(i), 10)
	case field.FTUint32, field.FTUint64:
		return strconv.FormatUint(v.num, 10)
	case field.FTFloat32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(v.num))), 'g', -1, 32)
	case field.FTFloat64:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64)
	case field.FTString:
		return strconv.Quote(v.str)
	case field.FTListStrings:
		q := make([]string, len(v.strs))
		for i, s := range v.strs {
			q[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(q, ", ") + "]"
	case field.FTListIDs:
		q := make([]string, len(v.ids))
		for i, id := range v.ids {
			q[i] = strconv.FormatUint(id, 10)
		}
		return "[" + strings.Join(q, ", ") + "]"
	}
	return "<invalid>"
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Display()
}
