package optional

import (
	"math"
	"testing"
)

func TestScalarZeroIsAbsent(t *testing.T) {
	var (
		i32 Scalar[int32]
		u32 Scalar[uint32]
		u64 Scalar[uint64]
		f32 Scalar[float32]
		f64 Scalar[float64]
	)
	if i32.HasValue() || u32.HasValue() || u64.HasValue() || f32.HasValue() || f64.HasValue() {
		t.Errorf("TestScalarZeroIsAbsent: a zero value Scalar reported HasValue() == true")
	}
	if got := f64.Value(); got != math.MaxFloat64 {
		t.Errorf("TestScalarZeroIsAbsent: absent float64 Value(): got %v, want sentinel", got)
	}
}

func TestScalarSet(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{name: "Success: zero", v: 0},
		{name: "Success: negative zero", v: math.Copysign(0, -1)},
		{name: "Success: negative", v: -1000.25},
		{name: "Success: smallest", v: math.SmallestNonzeroFloat64},
		{name: "Success: lowest", v: -math.MaxFloat64},
		{name: "Success: infinity", v: math.Inf(1)},
	}

	for _, test := range tests {
		s := Of(test.v)
		if !s.HasValue() {
			t.Errorf("TestScalarSet(%s): HasValue(): got false, want true", test.name)
			continue
		}
		if math.Float64bits(s.Value()) != math.Float64bits(test.v) {
			t.Errorf("TestScalarSet(%s): Value(): got %v, want %v", test.name, s.Value(), test.v)
		}
		if !s.Equal(Of(test.v)) {
			t.Errorf("TestScalarSet(%s): Equal(): got false, want true", test.name)
		}
		s.Reset()
		if s.HasValue() {
			t.Errorf("TestScalarSet(%s): after Reset() HasValue(): got true, want false", test.name)
		}
	}
}

func TestScalarIntegers(t *testing.T) {
	i := Of[int32](-5)
	if i.Value() != -5 {
		t.Errorf("TestScalarIntegers: int32 Value(): got %d, want -5", i.Value())
	}
	u := Of[uint32](0)
	if !u.HasValue() || u.Value() != 0 {
		t.Errorf("TestScalarIntegers: uint32(0): got HasValue() == %v, Value() == %d", u.HasValue(), u.Value())
	}
	var id Scalar[uint64]
	if got := id.ValueOr(7); got != 7 {
		t.Errorf("TestScalarIntegers: ValueOr(): got %d, want 7", got)
	}
	id.Set(9)
	if got := id.ValueOr(7); got != 9 {
		t.Errorf("TestScalarIntegers: ValueOr() after Set: got %d, want 9", got)
	}
}

func TestScalarSentinelIsAbsent(t *testing.T) {
	s := Of(Max[uint32]())
	if s.HasValue() {
		t.Errorf("TestScalarSentinelIsAbsent: storing the sentinel must read back as absent")
	}
	if !s.Equal(Scalar[uint32]{}) {
		t.Errorf("TestScalarSentinelIsAbsent: sentinel should equal a zero value Scalar")
	}
}

func TestScalarEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar[float64]
		want bool
	}{
		{name: "Success: both absent", want: true},
		{name: "Success: one absent", a: Of(0.0), want: false},
		{name: "Success: same value", a: Of(2.5), b: Of(2.5), want: true},
		{name: "Success: different value", a: Of(2.5), b: Of(3.5), want: false},
		{name: "Success: lowest vs absent", a: Of(-math.MaxFloat64), want: false},
		{name: "Success: zero equals negative zero", a: Of(0.0), b: Of(math.Copysign(0, -1)), want: true},
		{name: "Success: NaN is not equal to itself", a: Of(math.NaN()), b: Of(math.NaN()), want: false},
	}
	for _, test := range tests {
		if got := test.a.Equal(test.b); got != test.want {
			t.Errorf("TestScalarEqual(%s): got %v, want %v", test.name, got, test.want)
		}
	}
}

func TestBoolAndString(t *testing.T) {
	var b Bool
	if b.HasValue() || b.ValueOr(true) != true {
		t.Errorf("TestBoolAndString: zero Bool should be absent")
	}
	b.Set(false)
	if !b.HasValue() || b.Value() || b.ValueOr(true) {
		t.Errorf("TestBoolAndString: Set(false): got HasValue() == %v, Value() == %v", b.HasValue(), b.Value())
	}
	if b.Equal(OfBool(true)) {
		t.Errorf("TestBoolAndString: false should not equal true")
	}

	var s String
	if s.HasValue() || s.ValueOr("def") != "def" {
		t.Errorf("TestBoolAndString: zero String should be absent")
	}
	s.Set("")
	if !s.HasValue() {
		t.Errorf("TestBoolAndString: empty string is a value")
	}
	if s.Equal(String{}) {
		t.Errorf("TestBoolAndString: set empty string should not equal absent")
	}
	s.Reset()
	if s.HasValue() {
		t.Errorf("TestBoolAndString: Reset() should make String absent")
	}
}
