package reflect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bearlytools/simdata/languages/go/field"
)

// TagStack is a path expressed as the positional index of the field at each level, in
// declaration order. Resolving a TagStack is a slice index per level instead of string
// splitting and map lookups, so hot paths should resolve a dotted path to a TagStack once
// and reuse it.
//
// Because tags are positions, a TagStack resolves the same way against every schema that
// shares the sub-schema it walks, such as commonPrefs across all preference types.
type TagStack []int

// String renders the stack as [0 5 2].
func (t TagStack) String() string {
	return fmt.Sprint([]int(t))
}

func (r *Reflection) tag(tags TagStack) (Entry, error) {
	if len(tags) == 0 {
		return Entry{}, ErrEmptyTagStack
	}
	i := tags[0]
	if i < 0 || i >= len(r.order) {
		return Entry{}, fmt.Errorf("%s tag %d: %w", r.name, i, ErrBadTagIndex)
	}
	e := r.order[i].entry
	switch {
	case len(tags) > 1 && e.Sub == nil:
		return Entry{}, fmt.Errorf("%s tag %d: %w", r.name, i, ErrBadTagIndex)
	case len(tags) == 1 && e.Sub != nil:
		return Entry{}, ErrFieldList
	}
	return e, nil
}

// GetValueByTags returns the value at tags, or the field's default if it is not set.
// Like GetValue, it never allocates nested field lists.
func (r *Reflection) GetValueByTags(fl FieldList, tags TagStack) (Value, error) {
	e, err := r.tag(tags)
	if err != nil {
		return Value{}, err
	}
	if len(tags) == 1 {
		return e.Default(fl), nil
	}
	var child FieldList
	if fl != nil {
		child = e.Peek(fl)
	}
	return e.Sub.GetValueByTags(child, tags[1:])
}

// SetValueByTags stores v at tags, creating nested field lists as needed.
func (r *Reflection) SetValueByTags(fl FieldList, v Value, tags TagStack) error {
	if fl == nil {
		return ErrNilFieldList
	}
	leaf, err := r.leafByTags(tags)
	if err != nil {
		return err
	}
	if !field.Compatible(leaf.Type, v.Type()) {
		return &KindError{Want: leaf.Type, Have: v.Type()}
	}
	for len(tags) > 1 {
		e := r.order[tags[0]].entry
		fl = e.Mutable(fl)
		r = e.Sub
		tags = tags[1:]
	}
	r.order[tags[0]].entry.Set(fl, v)
	return nil
}

func (r *Reflection) leafByTags(tags TagStack) (Entry, error) {
	e, err := r.tag(tags)
	if err != nil {
		return Entry{}, err
	}
	if len(tags) == 1 {
		return e, nil
	}
	return e.Sub.leafByTags(tags[1:])
}

// MutableFieldList returns the nested field list that tags lead to, creating every field
// list on the way. Every tag must index a nested field list. An empty stack returns fl.
func (r *Reflection) MutableFieldList(fl FieldList, tags TagStack) (FieldList, error) {
	if fl == nil {
		return nil, ErrNilFieldList
	}
	for _, i := range tags {
		if i < 0 || i >= len(r.order) || r.order[i].entry.Sub == nil {
			return nil, fmt.Errorf("%s tag %d: %w", r.name, i, ErrBadTagIndex)
		}
		e := r.order[i].entry
		fl = e.Mutable(fl)
		r = e.Sub
	}
	return fl, nil
}

// TagVisitFunc is called with the TagStack, full dotted path and type of a leaf field.
// The TagStack is owned by the callee.
type TagVisitFunc func(tags TagStack, path string, t field.Type)

// VisitTags is Visit() that also reports the TagStack of each leaf. tags and prefix
// describe where this Reflection sits, and are usually nil and "".
func (r *Reflection) VisitTags(tags TagStack, prefix string, fn TagVisitFunc) {
	sep := "."
	if prefix == "" {
		sep = ""
	}
	for i, k := range r.order {
		stack := append(slices.Clip(tags), i)
		p := prefix + sep + k.key
		if k.entry.Sub != nil {
			k.entry.Sub.VisitTags(stack, p, fn)
			continue
		}
		fn(stack, p, k.entry.Type)
	}
}

// TagStack resolves a dotted path to its TagStack. The path may name a leaf or a nested
// field list.
func (r *Reflection) TagStack(path string) (TagStack, error) {
	var out TagStack
	for {
		key, rest, nested := strings.Cut(path, ".")
		i, ok := r.index[key]
		if !ok {
			return nil, ErrUnknownPath
		}
		out = append(out, i)
		e := r.order[i].entry
		if !nested {
			return out, nil
		}
		if e.Sub == nil {
			return nil, ErrUnknownPath
		}
		r, path = e.Sub, rest
	}
}

// TagStackMap maps every leaf path of a Reflection to its TagStack.
type TagStackMap map[string]TagStack

// MakeTagStackMap builds the TagStackMap of r.
func MakeTagStackMap(r *Reflection) TagStackMap {
	m := TagStackMap{}
	r.VisitTags(nil, "", func(tags TagStack, path string, t field.Type) {
		m[path] = tags
	})
	return m
}

// Lookup returns a copy of the TagStack for path. If path is not a leaf but names a
// nested field list, the stack of that field list is returned.
func (m TagStackMap) Lookup(path string) (TagStack, error) {
	if t, ok := m[path]; ok {
		return slices.Clone(t), nil
	}
	depth := strings.Count(path, ".") + 1
	prefix := path + "."
	for k, t := range m {
		if strings.HasPrefix(k, prefix) && len(t) > depth {
			return slices.Clone(t[:depth]), nil
		}
	}
	return nil, pathErr(path, ErrUnknownPath)
}
