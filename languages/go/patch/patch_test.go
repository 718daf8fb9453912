package patch

import (
	"testing"

	"github.com/bearlytools/simdata"
	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"
)

func TestDiffApply(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		from       func() *simdata.PlatformPrefs
		to         func() *simdata.PlatformPrefs
		wantClears []string
		wantText   string
	}{
		{
			name:     "Success: no change",
			from:     func() *simdata.PlatformPrefs { return (&simdata.PlatformPrefs{}).SetIcon("a") },
			to:       func() *simdata.PlatformPrefs { return (&simdata.PlatformPrefs{}).SetIcon("a") },
			wantText: "",
		},
		{
			name:     "Success: scalar changed",
			from:     func() *simdata.PlatformPrefs { return (&simdata.PlatformPrefs{}).SetIcon("a").SetScale(2) },
			to:       func() *simdata.PlatformPrefs { return (&simdata.PlatformPrefs{}).SetIcon("b").SetScale(2) },
			wantText: "icon: \"b\"\n",
		},
		{
			name:       "Success: scalar removed",
			from:       func() *simdata.PlatformPrefs { return (&simdata.PlatformPrefs{}).SetIcon("a").SetScale(2) },
			to:         func() *simdata.PlatformPrefs { return (&simdata.PlatformPrefs{}).SetScale(2) },
			wantClears: []string{"icon"},
			wantText:   "-icon\n",
		},
		{
			name: "Success: vector replaced",
			from: func() *simdata.PlatformPrefs {
				return (&simdata.PlatformPrefs{}).AddGogFile("a.gog", "b.gog")
			},
			to: func() *simdata.PlatformPrefs {
				return (&simdata.PlatformPrefs{}).AddGogFile("c.gog")
			},
			wantText: "gogFile: [\"c.gog\"]\n",
		},
		{
			name: "Success: nested change",
			from: func() *simdata.PlatformPrefs {
				p := &simdata.PlatformPrefs{}
				p.MutableCommonPrefs().SetName("p1").SetColor(1)
				return p
			},
			to: func() *simdata.PlatformPrefs {
				p := &simdata.PlatformPrefs{}
				p.MutableCommonPrefs().SetName("p2").SetColor(1)
				return p
			},
			wantText: "commonPrefs.name: \"p2\"\n",
		},
		{
			name: "Success: nested list removed",
			from: func() *simdata.PlatformPrefs {
				p := (&simdata.PlatformPrefs{}).SetIcon("a")
				p.MutableCommonPrefs().MutableLabelPrefs().SetDraw(true)
				return p
			},
			to:         func() *simdata.PlatformPrefs { return (&simdata.PlatformPrefs{}).SetIcon("a") },
			wantClears: []string{"commonPrefs"},
			wantText:   "-commonPrefs\n",
		},
		{
			name: "Success: nested list added",
			from: func() *simdata.PlatformPrefs { return &simdata.PlatformPrefs{} },
			to: func() *simdata.PlatformPrefs {
				p := &simdata.PlatformPrefs{}
				p.MutableCommonPrefs().MutableLabelPrefs().SetCoordinateSystem(simdata.CoordinateSystem_ECI)
				return p
			},
			wantText: "commonPrefs.labelPrefs.coordinateSystem: ECI\n",
		},
		{
			name: "Success: nested leaf removed",
			from: func() *simdata.PlatformPrefs {
				p := &simdata.PlatformPrefs{}
				p.MutableCommonPrefs().SetName("p1").AddAcceptProjectorIds(1)
				return p
			},
			to: func() *simdata.PlatformPrefs {
				p := &simdata.PlatformPrefs{}
				p.MutableCommonPrefs().SetName("p1")
				return p
			},
			wantClears: []string{"commonPrefs.acceptProjectorIds"},
			wantText:   "-commonPrefs.acceptProjectorIds\n",
		},
	}

	for _, test := range tests {
		from, to := test.from(), test.to()
		p, err := Diff(ctx, from, to)
		if err != nil {
			t.Errorf("TestDiffApply(%s): Diff(): got err == %s, want err == nil", test.name, err)
			continue
		}
		if diff := pretty.Compare(test.wantClears, p.Clears); diff != "" {
			t.Errorf("TestDiffApply(%s): clears -want/+got:\n%s", test.name, diff)
		}
		text, err := p.Text(ctx)
		if err != nil {
			t.Errorf("TestDiffApply(%s): Text(): got err == %s, want err == nil", test.name, err)
			continue
		}
		if diff := pretty.Compare(test.wantText, text); diff != "" {
			t.Errorf("TestDiffApply(%s): text -want/+got:\n%s", test.name, diff)
		}
		if got, want := p.IsEmpty(), test.wantText == ""; got != want {
			t.Errorf("TestDiffApply(%s): IsEmpty(): got %v, want %v", test.name, got, want)
		}

		got := test.from()
		if err := Apply(ctx, got, p); err != nil {
			t.Errorf("TestDiffApply(%s): Apply(): got err == %s, want err == nil", test.name, err)
			continue
		}
		if !got.Equal(to) {
			t.Errorf("TestDiffApply(%s): Apply(from, Diff(from, to)) != to", test.name)
		}
		if !from.Equal(test.from()) {
			t.Errorf("TestDiffApply(%s): Diff() modified from", test.name)
		}
	}
}

func TestDiffDoesNotShare(t *testing.T) {
	ctx := context.Background()

	to := (&simdata.PlatformPrefs{}).AddGogFile("a.gog")
	p, err := Diff(ctx, &simdata.PlatformPrefs{}, to)
	if err != nil {
		t.Fatalf("TestDiffDoesNotShare: got err == %s, want err == nil", err)
	}
	to.SetGogFileAt(0, "changed.gog")

	got := p.Update.(*simdata.PlatformPrefs).GogFile()
	if diff := pretty.Compare([]string{"a.gog"}, got); diff != "" {
		t.Errorf("TestDiffDoesNotShare: -want/+got:\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		fn       func() error
		wantErr  error
		wantType errors.Type
	}{
		{
			name: "Error: Diff of mismatched types",
			fn: func() error {
				_, err := Diff(ctx, &simdata.PlatformPrefs{}, &simdata.BeamPrefs{})
				return err
			},
			wantErr:  ErrTypeMismatch,
			wantType: errors.TypeKind,
		},
		{
			name: "Error: Diff of a nil list",
			fn: func() error {
				_, err := Diff(ctx, nil, &simdata.BeamPrefs{})
				return err
			},
			wantType: errors.TypeParameter,
		},
		{
			name: "Error: Apply of mismatched types",
			fn: func() error {
				return Apply(ctx, &simdata.PlatformPrefs{}, Patch{Update: &simdata.BeamPrefs{}})
			},
			wantErr:  ErrTypeMismatch,
			wantType: errors.TypeKind,
		},
		{
			name: "Error: Apply of an unknown clear path",
			fn: func() error {
				return Apply(ctx, &simdata.PlatformPrefs{}, Patch{Clears: []string{"nope"}})
			},
			wantErr:  reflect.ErrUnknownPath,
			wantType: errors.TypePath,
		},
	}

	for _, test := range tests {
		err := test.fn()
		if err == nil {
			t.Errorf("TestErrors(%s): got err == nil, want error", test.name)
			continue
		}
		if test.wantErr != nil && !errors.Is(err, test.wantErr) {
			t.Errorf("TestErrors(%s): got err == %s, want errors.Is(err, %v)", test.name, err, test.wantErr)
		}
		if !errors.Is(err, errors.Error{Category: errors.CatUser, Type: test.wantType}) {
			t.Errorf("TestErrors(%s): got err == %#v, want type %s", test.name, err, test.wantType)
		}
	}
}
