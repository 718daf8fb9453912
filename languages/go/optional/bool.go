package optional

// Bool is an optional bool stored in a single byte. The zero value is absent.
type Bool uint8

const (
	boolAbsent Bool = 0
	boolFalse  Bool = 1
	boolTrue   Bool = 2
)

// OfBool returns a Bool holding v.
func OfBool(v bool) Bool {
	if v {
		return boolTrue
	}
	return boolFalse
}

// HasValue reports if a value is stored.
func (b Bool) HasValue() bool {
	return b != boolAbsent
}

// Value returns the stored value, false if absent.
func (b Bool) Value() bool {
	return b == boolTrue
}

// ValueOr returns the stored value or def if absent.
func (b Bool) ValueOr(def bool) bool {
	if b == boolAbsent {
		return def
	}
	return b == boolTrue
}

// Set stores v.
func (b *Bool) Set(v bool) {
	*b = OfBool(v)
}

// Reset makes the Bool absent.
func (b *Bool) Reset() {
	*b = boolAbsent
}

// Equal reports if both are absent or both hold the same value.
func (b Bool) Equal(o Bool) bool {
	return b == o
}

// String holds an optional string. The zero value is absent.
type String struct {
	v   string
	set bool
}

// OfString returns a String holding v.
func OfString(v string) String {
	return String{v: v, set: true}
}

// HasValue reports if a value is stored. An empty string can be a stored value.
func (s String) HasValue() bool {
	return s.set
}

// Value returns the stored value, "" if absent.
func (s String) Value() string {
	return s.v
}

// ValueOr returns the stored value or def if absent.
func (s String) ValueOr(def string) string {
	if !s.set {
		return def
	}
	return s.v
}

// Set stores v.
func (s *String) Set(v string) {
	s.v = v
	s.set = true
}

// Reset makes the String absent.
func (s *String) Reset() {
	*s = String{}
}

// Equal reports if both are absent or both hold the same value.
func (s String) Equal(o String) bool {
	return s == o
}
