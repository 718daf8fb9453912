package structs

import (
	"fmt"

	"github.com/bearlytools/simdata/languages/go/reflect"
)

// NewReflection builds a new Reflection over the type d describes, in field order.
// Nested lists get their own Reflection built from the child descriptor.
func NewReflection(d *Descr) *reflect.Reflection {
	r := reflect.New(d.Name)
	for _, f := range d.Fields {
		var err error
		if f.IsSub() {
			err = r.AddListReflection(
				f.Name,
				NewReflection(f.Child()),
				func(fl reflect.FieldList) reflect.FieldList {
					if c := f.peek(fl); c != nil {
						return c
					}
					return nil
				},
				func(fl reflect.FieldList) reflect.FieldList { return f.mutable(fl) },
				f.clear,
			)
		} else {
			e := reflect.Entry{
				Type:    f.Type,
				Get:     f.get,
				Default: f.def,
				Set:     f.set,
				Clear:   f.clear,
			}
			if f.Enum != nil {
				e.Enum = f.Enum()
			}
			err = r.AddReflection(f.Name, e)
		}
		if err != nil {
			// NewDescr already rejected duplicates, so this is a bad field name.
			panic(fmt.Sprintf("structs.NewReflection(%s): %s", d.Name, err))
		}
	}
	return r
}
