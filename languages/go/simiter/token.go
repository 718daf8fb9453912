// Package simiter provides streaming iteration over data model field lists. A field list
// walks into a stream of tokens that other packages render, diff or rebuild into a field
// list without knowing the concrete type.
package simiter

import (
	"math"

	"github.com/bearlytools/simdata/internal/conversions"
	"github.com/bearlytools/simdata/languages/go/field"
)

//go:generate stringer -type=TokenKind -linecomment

// TokenKind represents the type of token in the walk stream.
type TokenKind uint8

const (
	TokenStructStart TokenKind = iota // StructStart
	TokenStructEnd                    // StructEnd
	TokenField                        // Field
	TokenListStart                    // ListStart
	TokenListEnd                      // ListEnd
)

// Token represents a single event in the walk stream.
type Token struct {
	// Kind is the type of token.
	Kind TokenKind
	// Name is the type name (for Start/End) or field name (for Field).
	Name string
	// Type is the field type (for TokenField and TokenListStart).
	Type field.Type

	// data stores scalar values inline.
	data uint64
	// Bytes stores string data. Use String() for zero-copy string conversion.
	Bytes []byte

	// IsEnum indicates if this is an enumeration value.
	IsEnum bool
	// EnumGroup is the name of the enumeration table (e.g., "CoordinateSystem").
	EnumGroup string
	// EnumName is the text of the enumeration value (e.g., "ECEF").
	EnumName string

	// StructName is the type name of a nested field list.
	StructName string

	// Len is the vector length (for TokenListStart).
	Len int
}

// Bool returns the boolean value. Only valid when Type == FTBool.
func (t Token) Bool() bool { return t.data != 0 }

// Int32 returns the int32 value. Valid when Type is FTInt32 or FTEnum.
func (t Token) Int32() int32 { return int32(t.data) }

// Uint32 returns the uint32 value. Only valid when Type == FTUint32.
func (t Token) Uint32() uint32 { return uint32(t.data) }

// Uint64 returns the uint64 value. Only valid when Type == FTUint64.
func (t Token) Uint64() uint64 { return t.data }

// Float32 returns the float32 value. Only valid when Type == FTFloat32.
func (t Token) Float32() float32 { return math.Float32frombits(uint32(t.data)) }

// Float64 returns the float64 value. Only valid when Type == FTFloat64.
func (t Token) Float64() float64 { return math.Float64frombits(t.data) }

// String returns the string value without copying. Only valid when Type == FTString.
func (t Token) String() string {
	return conversions.ByteSlice2String(t.Bytes)
}

// SetBool sets the boolean value in the token.
func (t *Token) SetBool(v bool) {
	if v {
		t.data = 1
	} else {
		t.data = 0
	}
}

// SetInt32 sets the int32 value in the token.
func (t *Token) SetInt32(v int32) { t.data = uint64(v) }

// SetUint32 sets the uint32 value in the token.
func (t *Token) SetUint32(v uint32) { t.data = uint64(v) }

// SetUint64 sets the uint64 value in the token.
func (t *Token) SetUint64(v uint64) { t.data = v }

// SetFloat32 sets the float32 value in the token.
func (t *Token) SetFloat32(v float32) { t.data = uint64(math.Float32bits(v)) }

// SetFloat64 sets the float64 value in the token.
func (t *Token) SetFloat64(v float64) { t.data = math.Float64bits(v) }

// SetString sets the string value in the token.
func (t *Token) SetString(v string) { t.Bytes = []byte(v) }

// YieldToken is the callback type for Walk iteration.
// Returns false to stop iteration early.
type YieldToken func(Token) bool

// Walker is a function that walks tokens and yields them to a callback.
// This is the type accepted by Ingest.
type Walker func(YieldToken)
