package simtext

import (
	"testing"

	"github.com/bearlytools/simdata"
	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/simiter"
	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"
)

func platformPrefs() *simdata.PlatformPrefs {
	p := &simdata.PlatformPrefs{}
	p.MutableCommonPrefs().SetName("p1").AddAcceptProjectorIds(7, 8)
	p.MutableCommonPrefs().MutableLabelPrefs().SetCoordinateSystem(simdata.CoordinateSystem_ECEF)
	p.SetIcon("ico")
	p.SetScale(2.5)
	p.SetAxisScale(-1)
	p.AddGogFile("a, b.gog", `q"uote`)
	return p
}

const platformText = `commonPrefs.name: "p1"
commonPrefs.labelPrefs.coordinateSystem: ECEF
commonPrefs.acceptProjectorIds: [7, 8]
icon: "ico"
axisScale: -1.0
scale: 2.5
gogFile: ["a, b.gog", "q\"uote"]
`

func TestMarshal(t *testing.T) {
	ctx := context.Background()

	buf, err := Marshal(ctx, platformPrefs())
	if err != nil {
		t.Fatalf("TestMarshal: got err == %s, want err == nil", err)
	}
	defer buf.Release(ctx)

	if diff := pretty.Compare(platformText, buf.String()); diff != "" {
		t.Errorf("TestMarshal: -want/+got:\n%s", diff)
	}
}

func TestMarshalEnumNumbers(t *testing.T) {
	ctx := context.Background()

	g := (&simdata.GateProperties{}).SetType(simdata.GateType_TARGET)
	buf, err := Marshal(ctx, g, WithUseEnumNumbers(true))
	if err != nil {
		t.Fatalf("TestMarshalEnumNumbers: got err == %s, want err == nil", err)
	}
	defer buf.Release(ctx)

	if got, want := buf.String(), "type: 3\n"; got != want {
		t.Errorf("TestMarshalEnumNumbers: got %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()

	from := platformPrefs()
	buf, err := Marshal(ctx, from)
	if err != nil {
		t.Fatalf("TestRoundTrip: Marshal(): got err == %s, want err == nil", err)
	}
	defer buf.Release(ctx)

	to := &simdata.PlatformPrefs{}
	if err := Unmarshal(ctx, buf.Bytes(), to); err != nil {
		t.Fatalf("TestRoundTrip: Unmarshal(): got err == %s, want err == nil", err)
	}
	if !to.Equal(from) {
		again, _ := Marshal(ctx, to)
		t.Errorf("TestRoundTrip: -want/+got:\n%s", pretty.Compare(platformText, again.String()))
	}
}

func TestUnmarshal(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		opts     []UnmarshalOption
		want     func() *simdata.ProjectorPrefs
		wantErr  error
		wantType errors.Type
	}{
		{
			name: "Success: comments, blank lines and legacy names",
			text: `
# a comment
// another comment
commonprefs.name: "proj"
commonPrefs.color: 0xFF0000FF
commonPrefs.draw: false
projectorAlpha: 0.5
`,
			want: func() *simdata.ProjectorPrefs {
				p := &simdata.ProjectorPrefs{}
				p.MutableCommonPrefs().SetName("proj").SetColor(0xFF0000FF).SetDraw(false)
				p.SetProjectorAlpha(0.5)
				return p
			},
		},
		{
			name: "Success: enum by code",
			text: "commonPrefs.labelPrefs.coordinateSystem: 4\n",
			want: func() *simdata.ProjectorPrefs {
				p := &simdata.ProjectorPrefs{}
				p.MutableCommonPrefs().MutableLabelPrefs().SetCoordinateSystem(simdata.CoordinateSystem_LLA)
				return p
			},
		},
		{
			name: "Success: empty list",
			text: "commonPrefs.acceptProjectorIds: []\n",
			want: func() *simdata.ProjectorPrefs {
				p := &simdata.ProjectorPrefs{}
				p.MutableCommonPrefs()
				return p
			},
		},
		{
			name: "Success: ignore unknown fields",
			text: "bogus: 1\ncommonPrefs.bogus.deeper: 2\nprojectorAlpha: 0.25\n",
			opts: []UnmarshalOption{WithIgnoreUnknownFields(true)},
			want: func() *simdata.ProjectorPrefs {
				return (&simdata.ProjectorPrefs{}).SetProjectorAlpha(0.25)
			},
		},
		{
			name:     "Error: unknown field",
			text:     "bogus: 1\n",
			wantErr:  simiter.ErrUnknownField,
			wantType: errors.TypePath,
		},
		{
			name:     "Error: unknown enum text",
			text:     "commonPrefs.labelPrefs.coordinateSystem: SIDEWAYS\n",
			wantErr:  simiter.ErrUnknownEnum,
			wantType: errors.TypeParameter,
		},
		{
			name:     "Error: path ends at a field list",
			text:     "commonPrefs: 1\n",
			wantErr:  reflect.ErrFieldList,
			wantType: errors.TypePath,
		},
		{
			name:     "Error: path passes through a leaf",
			text:     "projectorAlpha.x: 1\n",
			wantErr:  reflect.ErrUnknownPath,
			wantType: errors.TypePath,
		},
	}

	for _, test := range tests {
		got := &simdata.ProjectorPrefs{}
		err := Unmarshal(ctx, []byte(test.text), got, test.opts...)
		switch {
		case err == nil && test.wantErr != nil:
			t.Errorf("TestUnmarshal(%s): got err == nil, want err == %v", test.name, test.wantErr)
			continue
		case err != nil && test.wantErr == nil:
			t.Errorf("TestUnmarshal(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			if !errors.Is(err, test.wantErr) {
				t.Errorf("TestUnmarshal(%s): got err == %s, want errors.Is(err, %v)", test.name, err, test.wantErr)
			}
			if !errors.Is(err, errors.Error{Category: errors.CatUser, Type: test.wantType}) {
				t.Errorf("TestUnmarshal(%s): got err == %#v, want type %s", test.name, err, test.wantType)
			}
			continue
		}
		if want := test.want(); !got.Equal(want) {
			t.Errorf("TestUnmarshal(%s): got %s, want %s", test.name, render(t, got), render(t, want))
		}
	}
}

func TestUnmarshalIgnoredLeavesNoLists(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		text string
	}{
		{name: "Success: unknown leaf under nested lists", text: "commonPrefs.labelPrefs.bogus: 1\n"},
		{name: "Success: unknown list in the middle", text: "commonPrefs.bogus.deeper: 2\n"},
		{name: "Success: legacy parent with unknown leaf", text: "commonprefs.bogus: 2\n"},
	}

	for _, test := range tests {
		got := &simdata.ProjectorPrefs{}
		if err := Unmarshal(ctx, []byte(test.text), got, WithIgnoreUnknownFields(true)); err != nil {
			t.Errorf("TestUnmarshalIgnoredLeavesNoLists(%s): got err == %s, want err == nil", test.name, err)
			continue
		}
		if got.HasCommonPrefs() {
			t.Errorf("TestUnmarshalIgnoredLeavesNoLists(%s): got HasCommonPrefs() == true, want false", test.name)
		}
		if !got.IsEmpty() {
			t.Errorf("TestUnmarshalIgnoredLeavesNoLists(%s): got %s, want an empty list", test.name, render(t, got))
		}
	}
}

func TestUnmarshalBadValues(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		text string
	}{
		{name: "Error: missing colon", text: "projectorAlpha 1\n"},
		{name: "Error: missing value", text: "projectorAlpha:\n"},
		{name: "Error: unquoted string", text: "commonPrefs.name: proj\n"},
		{name: "Error: bad bool", text: "commonPrefs.draw: maybe\n"},
		{name: "Error: uint32 overflow", text: "commonPrefs.color: 0x1FFFFFFFF\n"},
		{name: "Error: list without brackets", text: "commonPrefs.acceptProjectorIds: 1, 2\n"},
		{name: "Error: bad list entry", text: "commonPrefs.acceptProjectorIds: [1, x]\n"},
	}

	for _, test := range tests {
		err := Unmarshal(ctx, []byte(test.text), &simdata.ProjectorPrefs{})
		if err == nil {
			t.Errorf("TestUnmarshalBadValues(%s): got err == nil, want error", test.name)
		}
	}
}

func render(t *testing.T, p *simdata.ProjectorPrefs) string {
	t.Helper()
	buf, err := Marshal(context.Background(), p)
	if err != nil {
		t.Fatalf("Marshal(): %s", err)
	}
	defer buf.Release(context.Background())
	return buf.String()
}
