// Package field details the field types that a data model field can hold.
package field

//go:generate stringer -type=Type -linecomment

// Type represents the type of data that is held in a field. The numeric values are
// stable and match the historical ReflectionDataType ordering.
type Type uint8

const (
	FTUnknown     Type = 0  // Unknown
	FTBool        Type = 1  // Boolean
	FTInt32       Type = 2  // Int32
	FTUint32      Type = 3  // Uint32
	FTUint64      Type = 4  // Uint64
	FTFloat32     Type = 5  // Float
	FTFloat64     Type = 6  // Double
	FTString      Type = 7  // String
	FTListStrings Type = 8  // StringVector
	FTListIDs     Type = 9  // IdVector
	FTEnum        Type = 10 // Enumeration
	// FTStruct is never reported for a leaf. It marks a nested field list in descriptors.
	FTStruct Type = 11 // Struct
)

// IsList determines if a Type represents a list of entries.
func IsList(ft Type) bool {
	return ft == FTListStrings || ft == FTListIDs
}

// IsScalar reports if the Type is a single numeric, bool or string value.
// Enumerations are scalars.
func IsScalar(ft Type) bool {
	return ft >= FTBool && ft <= FTString || ft == FTEnum
}

// NumberTypes is a list of field types that represent a number.
var NumberTypes = []Type{
	FTInt32,
	FTUint32,
	FTUint64,
	FTFloat32,
	FTFloat64,
	FTEnum,
}

// ListTypes is a list of field types that represent a list.
var ListTypes = []Type{
	FTListStrings,
	FTListIDs,
}

// Compatible reports if a value of type have can be stored in a field of type want.
// Int32 and Enumeration are interchangeable, everything else must match exactly.
func Compatible(want, have Type) bool {
	if want == have {
		return true
	}
	switch {
	case want == FTEnum && have == FTInt32, want == FTInt32 && have == FTEnum:
		return true
	}
	return false
}

// ElemType returns the type of a single entry of a list Type. Non-list types return FTUnknown.
func ElemType(ft Type) Type {
	switch ft {
	case FTListStrings:
		return FTString
	case FTListIDs:
		return FTUint64
	}
	return FTUnknown
}
