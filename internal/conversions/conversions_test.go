package conversions

import (
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "ascii", in: "platformPrefs.commonPrefs.name"},
		{name: "unicode", in: "héllo wörld"},
	}

	for _, test := range tests {
		b := UnsafeGetBytes(test.in)
		if len(b) != len(test.in) {
			t.Errorf("TestRoundTrip(%s): UnsafeGetBytes(): got len %d, want %d", test.name, len(b), len(test.in))
			continue
		}
		if got := ByteSlice2String(b); got != test.in {
			t.Errorf("TestRoundTrip(%s): got %q, want %q", test.name, got, test.in)
		}
	}
}

func TestByteSlice2StringShares(t *testing.T) {
	b := []byte("abc")
	s := ByteSlice2String(b)
	b[0] = 'x'
	if s != "xbc" {
		t.Errorf("TestByteSlice2StringShares: got %q, want the string to share storage with the slice", s)
	}
}
