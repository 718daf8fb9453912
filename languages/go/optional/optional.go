// Package optional provides compact optional values for data model fields.
//
// Scalar uses a sentinel instead of a presence flag: the maximum value of the
// underlying type means "absent". The stored word is encoded so that the Go zero
// value of a Scalar is the sentinel, which makes a zero value struct all-absent
// without a constructor. The cost is that the maximum value of T can never be
// stored; Set(max) is the same as Reset().
package optional

import (
	"math"
)

// Number is the set of types a Scalar can hold.
type Number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Scalar is an optional number. The zero value is absent.
type Scalar[T Number] struct {
	enc T
}

// Of returns a Scalar holding v.
func Of[T Number](v T) Scalar[T] {
	s := Scalar[T]{}
	s.Set(v)
	return s
}

// HasValue reports if a value is stored.
func (s Scalar[T]) HasValue() bool {
	return !isZero(s.enc)
}

// Value returns the stored value. If HasValue() is false this returns the sentinel.
func (s Scalar[T]) Value() T {
	return flip(s.enc)
}

// ValueOr returns the stored value or def if absent.
func (s Scalar[T]) ValueOr(def T) T {
	if !s.HasValue() {
		return def
	}
	return flip(s.enc)
}

// Set stores v.
func (s *Scalar[T]) Set(v T) {
	s.enc = flip(v)
}

// Reset makes the Scalar absent.
func (s *Scalar[T]) Reset() {
	var zero T
	s.enc = zero
}

// Equal reports if both are absent or both hold the same value.
func (s Scalar[T]) Equal(o Scalar[T]) bool {
	sh, oh := s.HasValue(), o.HasValue()
	if !sh || !oh {
		return sh == oh
	}
	return flip(s.enc) == flip(o.enc)
}

// Max returns the sentinel for T.
func Max[T Number]() T {
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	}
	return v
}

// flip xors the bit pattern of v with the bit pattern of the sentinel. It is its own
// inverse, and maps the sentinel to all zero bits.
func flip[T Number](v T) T {
	var out T
	switch p := any(&out).(type) {
	case *int8:
		*p = any(v).(int8) ^ math.MaxInt8
	case *int16:
		*p = any(v).(int16) ^ math.MaxInt16
	case *int32:
		*p = any(v).(int32) ^ math.MaxInt32
	case *int64:
		*p = any(v).(int64) ^ math.MaxInt64
	case *uint8:
		*p = ^any(v).(uint8)
	case *uint16:
		*p = ^any(v).(uint16)
	case *uint32:
		*p = ^any(v).(uint32)
	case *uint64:
		*p = ^any(v).(uint64)
	case *float32:
		*p = math.Float32frombits(math.Float32bits(any(v).(float32)) ^ math.Float32bits(math.MaxFloat32))
	case *float64:
		*p = math.Float64frombits(math.Float64bits(any(v).(float64)) ^ math.Float64bits(math.MaxFloat64))
	}
	return out
}

// isZero reports if the encoded word has every bit clear. A float -0.0 encoding has the
// sign bit set and so is not zero, which is why this does not compare against T(0).
func isZero[T Number](enc T) bool {
	switch x := any(enc).(type) {
	case float32:
		return math.Float32bits(x) == 0
	case float64:
		return math.Float64bits(x) == 0
	}
	var zero T
	return enc == zero
}
