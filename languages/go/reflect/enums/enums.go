// Package enums holds the name tables that map enumeration codes to display text.
package enums

import (
	"fmt"
	"slices"

	"github.com/bearlytools/simdata/languages/go/errors"
)

// ErrUnknownCode is returned when a code was never registered with a Table.
var ErrUnknownCode = errors.New("enumeration code not in table")

// Table maps an integer enumeration code to its display text. Codes do not need to be
// contiguous. A Table is built once with Insert() and Append() and must not be changed
// after it has been handed to other goroutines.
type Table struct {
	name  string
	codes []int32 // ascending
	text  map[int32]string
}

// NewTable returns an empty Table for the enumeration called name.
func NewTable(name string) *Table {
	return &Table{name: name, text: map[int32]string{}}
}

// Name is the name of the enumeration the table describes.
func (t *Table) Name() string {
	return t.name
}

// Len reports the number of registered codes.
func (t *Table) Len() int {
	return len(t.codes)
}

// Insert registers text for code. Inserting the same code twice replaces the text.
func (t *Table) Insert(code int32, text string) *Table {
	i, found := slices.BinarySearch(t.codes, code)
	if !found {
		t.codes = slices.Insert(t.codes, i, code)
	}
	t.text[code] = text
	return t
}

// Append registers text for the code one greater than the largest code in the table,
// or 0 if the table is empty.
func (t *Table) Append(text string) *Table {
	var code int32
	if len(t.codes) > 0 {
		code = t.codes[len(t.codes)-1] + 1
	}
	return t.Insert(code, text)
}

// Text returns the display text for code.
func (t *Table) Text(code int32) (string, error) {
	s, ok := t.text[code]
	if !ok {
		return "", fmt.Errorf("%s(%d): %w", t.name, code, ErrUnknownCode)
	}
	return s, nil
}

// Code does the reverse lookup of Text.
func (t *Table) Code(text string) (int32, bool) {
	for _, c := range t.codes {
		if t.text[c] == text {
			return c, true
		}
	}
	return 0, false
}

// ValueToIndex returns the position of code in ascending code order.
func (t *Table) ValueToIndex(code int32) (int, bool) {
	return slices.BinarySearch(t.codes, code)
}

// IndexToValue returns the code at position i of the ascending code order.
func (t *Table) IndexToValue(i int) (int32, bool) {
	if i < 0 || i >= len(t.codes) {
		return 0, false
	}
	return t.codes[i], true
}

// Visit calls fn for every code in ascending order. Returning false stops the walk.
func (t *Table) Visit(fn func(code int32, text string) bool) {
	for _, c := range t.codes {
		if !fn(c, t.text[c]) {
			return
		}
	}
}

// String returns the text for code, or Name(code) if the code is unknown. Generated
// enumeration types use this for their String() method.
func (t *Table) String(code int32) string {
	if s, ok := t.text[code]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", t.name, code)
}
