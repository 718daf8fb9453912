package enums

import (
	"testing"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/kylelemons/godebug/pretty"
)

func speedTable() *Table {
	return NewTable("SpeedUnits").
		Insert(40, "UNITS_METERS_PER_SECOND").
		Append("UNITS_KILOMETERS_PER_HOUR").
		Append("UNITS_KNOTS").
		Insert(46, "UNITS_KILOMETERS_PER_SECOND").
		Append("UNITS_DATAMILES_PER_HOUR")
}

func TestText(t *testing.T) {
	tests := []struct {
		name    string
		code    int32
		want    string
		wantErr bool
	}{
		{name: "Success: inserted", code: 40, want: "UNITS_METERS_PER_SECOND"},
		{name: "Success: appended", code: 42, want: "UNITS_KNOTS"},
		{name: "Success: appended after gap", code: 47, want: "UNITS_DATAMILES_PER_HOUR"},
		{name: "Error: gap", code: 45, wantErr: true},
		{name: "Error: below range", code: 0, wantErr: true},
	}

	tbl := speedTable()
	for _, test := range tests {
		got, err := tbl.Text(test.code)
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestText(%s): got err == nil, want err != nil", test.name)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestText(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			if !errors.Is(err, ErrUnknownCode) {
				t.Errorf("TestText(%s): got err == %s, want ErrUnknownCode", test.name, err)
			}
			continue
		}
		if got != test.want {
			t.Errorf("TestText(%s): got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestAppendEmpty(t *testing.T) {
	tbl := NewTable("TextOutline").Append("TO_NONE").Append("TO_THIN").Append("TO_THICK")
	if s, _ := tbl.Text(0); s != "TO_NONE" {
		t.Errorf("TestAppendEmpty: code 0: got %q, want TO_NONE", s)
	}
	if s, _ := tbl.Text(2); s != "TO_THICK" {
		t.Errorf("TestAppendEmpty: code 2: got %q, want TO_THICK", s)
	}
}

func TestIndexes(t *testing.T) {
	tbl := speedTable()

	if i, ok := tbl.ValueToIndex(46); !ok || i != 3 {
		t.Errorf("TestIndexes: ValueToIndex(46): got %d, %v, want 3, true", i, ok)
	}
	if _, ok := tbl.ValueToIndex(45); ok {
		t.Errorf("TestIndexes: ValueToIndex(45): got ok, want !ok")
	}
	if v, ok := tbl.IndexToValue(4); !ok || v != 47 {
		t.Errorf("TestIndexes: IndexToValue(4): got %d, %v, want 47, true", v, ok)
	}
	if _, ok := tbl.IndexToValue(5); ok {
		t.Errorf("TestIndexes: IndexToValue(5): got ok, want !ok")
	}
	if c, ok := tbl.Code("UNITS_KNOTS"); !ok || c != 42 {
		t.Errorf("TestIndexes: Code(UNITS_KNOTS): got %d, %v, want 42, true", c, ok)
	}
}

func TestVisit(t *testing.T) {
	// Inserted out of order on purpose.
	tbl := NewTable("PolygonMode").Insert(0x1B02, "FILL").Insert(0x1B00, "POINT").Insert(0x1B01, "LINE")

	var got []string
	tbl.Visit(func(code int32, text string) bool {
		got = append(got, text)
		return true
	})
	want := []string{"POINT", "LINE", "FILL"}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestVisit: -want/+got:\n%s", diff)
	}

	if got := tbl.String(7); got != "PolygonMode(7)" {
		t.Errorf("TestVisit: String(7): got %q, want PolygonMode(7)", got)
	}
}
