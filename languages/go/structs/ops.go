package structs

// Copy makes dst a deep copy of src. A nil src clears dst. Generated methods convert a
// typed nil to an untyped one before calling. Copying a list onto itself
// does nothing. dst and src must be the same type.
func Copy(dst, src FieldList) {
	if src == nil {
		dst.Clear()
		return
	}
	if dst == src {
		return
	}
	for _, f := range dst.Descriptor().Fields {
		f.copy(dst, src)
	}
}

// Merge copies every field set on src into dst. Scalars overwrite, vectors append and
// nested lists merge recursively, created on dst as needed. Merging a list into itself
// does nothing.
func Merge(dst, src FieldList) {
	if src == nil || dst == src {
		return
	}
	for _, f := range dst.Descriptor().Fields {
		f.merge(dst, src)
	}
}

// Equal reports if a and b hold the same fields with the same values. Nested lists are
// compared before leaf fields. Two nil lists are equal.
func Equal(a, b FieldList) bool {
	an, bn := a == nil, b == nil
	if an || bn {
		return an == bn
	}
	if a == b {
		return true
	}
	fields := a.Descriptor().Fields
	for _, f := range fields {
		if f.IsSub() && !f.equal(a, b) {
			return false
		}
	}
	for _, f := range fields {
		if !f.IsSub() && !f.equal(a, b) {
			return false
		}
	}
	return true
}

// Prune drops every nested list of fl that holds no set field after being pruned itself.
func Prune(fl FieldList) {
	for _, f := range fl.Descriptor().Fields {
		if f.prune != nil {
			f.prune(fl)
		}
	}
}

// IsEmpty reports if no field of fl is set. A nil fl is empty.
func IsEmpty(fl FieldList) bool {
	if fl == nil {
		return true
	}
	for _, f := range fl.Descriptor().Fields {
		if f.has(fl) {
			return false
		}
	}
	return true
}
