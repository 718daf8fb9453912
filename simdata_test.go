package simdata

import (
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/kylelemons/godebug/pretty"
)

type leaf struct {
	Path string
	Type field.Type
}

func leaves(r *reflect.Reflection) []leaf {
	var out []leaf
	r.Visit("", func(path string, t field.Type) {
		out = append(out, leaf{path, t})
	})
	return out
}

// factories maps each Make function to its name, which is also the name of its golden file
// in testdata/visit.
var factories = map[string]func() *reflect.Reflection{
	"MakeBeamProperty":                MakeBeamProperty,
	"MakeClassificationProperty":      MakeClassificationProperty,
	"MakeCoordinateFrameProperty":     MakeCoordinateFrameProperty,
	"MakeCustomRenderingProperty":     MakeCustomRenderingProperty,
	"MakeGateProperty":                MakeGateProperty,
	"MakeLaserProperty":               MakeLaserProperty,
	"MakeLobGroupProperty":            MakeLobGroupProperty,
	"MakePlatformProperty":            MakePlatformProperty,
	"MakeProjectorProperty":           MakeProjectorProperty,
	"MakeReferenceProperty":           MakeReferenceProperty,
	"MakeScenarioProperty":            MakeScenarioProperty,
	"MakeSoundFileProperty":           MakeSoundFileProperty,
	"MakeTangentPlaneOffsetsProperty": MakeTangentPlaneOffsetsProperty,
	"MakeAntennaPatternsPreferences":  MakeAntennaPatternsPreferences,
	"MakeBeamPreferences":             MakeBeamPreferences,
	"MakeBodyOrientationPreferences":  MakeBodyOrientationPreferences,
	"MakeCommonPreferences":           MakeCommonPreferences,
	"MakeCustomRenderingPreferences":  MakeCustomRenderingPreferences,
	"MakeDisplayFieldsPreferences":    MakeDisplayFieldsPreferences,
	"MakeGatePreferences":             MakeGatePreferences,
	"MakeGridSettingsPreferences":     MakeGridSettingsPreferences,
	"MakeLabelPreferences":            MakeLabelPreferences,
	"MakeLaserPreferences":            MakeLaserPreferences,
	"MakeLobGroupPreferences":         MakeLobGroupPreferences,
	"MakeLocalGridPreferences":        MakeLocalGridPreferences,
	"MakePlatformPreferences":         MakePlatformPreferences,
	"MakePositionPreferences":         MakePositionPreferences,
	"MakeProjectorPreferences":        MakeProjectorPreferences,
	"MakeSpeedRingPreferences":        MakeSpeedRingPreferences,
	"MakeTimeTickPreferences":         MakeTimeTickPreferences,
	"MakeTrackPreferences":            MakeTrackPreferences,
	"MakeBeamCommand":                 MakeBeamCommand,
	"MakeCustomRenderingCommand":      MakeCustomRenderingCommand,
	"MakeGateCommand":                 MakeGateCommand,
	"MakeLaserCommand":                MakeLaserCommand,
	"MakeLobGroupCommand":             MakeLobGroupCommand,
	"MakePlatformCommand":             MakePlatformCommand,
	"MakeProjectorCommand":            MakeProjectorCommand,
}

// TestFactoryFields checks the exact leaf paths and types every factory visits, in order,
// against testdata/visit/<factory>.golden. Each golden line is "path Type".
func TestFactoryFields(t *testing.T) {
	entries, err := os.ReadDir("testdata/visit")
	if err != nil {
		t.Fatalf("TestFactoryFields: %s", err)
	}
	if len(entries) != len(factories) {
		t.Errorf("TestFactoryFields: got %d golden files, want %d", len(entries), len(factories))
	}

	for name, fn := range factories {
		b, err := os.ReadFile(filepath.Join("testdata", "visit", name+".golden"))
		if err != nil {
			t.Errorf("TestFactoryFields(%s): %s", name, err)
			continue
		}
		want := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")

		var got []string
		for _, l := range leaves(fn()) {
			got = append(got, l.Path+" "+l.Type.String())
		}
		if diff := pretty.Compare(want, got); diff != "" {
			t.Errorf("TestFactoryFields(%s): -want/+got:\n%s", name, diff)
		}
	}
}

func TestScenarioFields(t *testing.T) {
	want := []leaf{
		{"version", field.FTUint32},
		{"coordinateFrame.coordinateSystem", field.FTEnum},
		{"coordinateFrame.referenceLla.lat", field.FTFloat64},
		{"coordinateFrame.referenceLla.lon", field.FTFloat64},
		{"coordinateFrame.referenceLla.alt", field.FTFloat64},
		{"coordinateFrame.magneticVariance", field.FTEnum},
		{"coordinateFrame.magneticVarianceUserValue", field.FTFloat64},
		{"coordinateFrame.verticalDatum", field.FTEnum},
		{"coordinateFrame.verticalDatumUserValue", field.FTFloat64},
		{"coordinateFrame.eciReferenceTime", field.FTFloat64},
		{"coordinateFrame.tangentPlaneOffset.tx", field.FTFloat64},
		{"coordinateFrame.tangentPlaneOffset.ty", field.FTFloat64},
		{"coordinateFrame.tangentPlaneOffset.angle", field.FTFloat64},
		{"referenceYear", field.FTUint32},
		{"classification.label", field.FTString},
		{"classification.fontColor", field.FTUint32},
		{"degreeAngles", field.FTBool},
		{"description", field.FTString},
		{"source", field.FTString},
		{"windAngle", field.FTFloat64},
		{"windSpeed", field.FTFloat64},
		{"viewFile", field.FTString},
		{"ruleFile", field.FTString},
		{"terrainFile", field.FTString},
		{"soundFile.filename", field.FTString},
		{"soundFile.startTime", field.FTFloat64},
		{"soundFile.endTime", field.FTFloat64},
		{"mediaFile", field.FTListStrings},
		{"dedFile", field.FTListStrings},
		{"wvsFile", field.FTListStrings},
		{"gogFile", field.FTListStrings},
		{"dataLimitTime", field.FTFloat64},
		{"dataLimitPoints", field.FTUint32},
		{"ignoreDuplicateGenericData", field.FTBool},
	}

	got := leaves(MakeScenarioProperty())
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestScenarioFields: -want/+got:\n%s", diff)
	}
}

func TestMakeFactories(t *testing.T) {
	for name, fn := range factories {
		a, b := fn(), fn()
		if a == b {
			t.Errorf("TestMakeFactories(%s): factory returned a shared Reflection", name)
		}
		if len(leaves(a)) == 0 {
			t.Errorf("TestMakeFactories(%s): Reflection has no fields", name)
		}
	}

	// Every command is {time, updatePrefs, isClearCommand}.
	keys := MakeBeamCommand().Keys()
	if diff := pretty.Compare([]string{"time", "updatePrefs", "isClearCommand"}, keys); diff != "" {
		t.Errorf("TestMakeFactories(command keys): -want/+got:\n%s", diff)
	}
}

func TestMakePreferences(t *testing.T) {
	tests := []struct {
		name    string
		t       ObjectType
		want    string
		wantErr bool
	}{
		{name: "Success: platform", t: Platform, want: "PlatformPrefs"},
		{name: "Success: beam", t: Beam, want: "BeamPrefs"},
		{name: "Success: gate", t: Gate, want: "GatePrefs"},
		{name: "Success: laser", t: Laser, want: "LaserPrefs"},
		{name: "Success: projector", t: Projector, want: "ProjectorPrefs"},
		{name: "Success: lob group", t: LobGroup, want: "LobGroupPrefs"},
		{name: "Success: custom rendering", t: CustomRendering, want: "CustomRenderingPrefs"},
		{name: "Success: all is common", t: AllObjects, want: "CommonPrefs"},
		{name: "Error: none", t: NoObject, wantErr: true},
		{name: "Error: combined flags", t: Platform | Beam, wantErr: true},
	}

	for _, test := range tests {
		r, err := MakePreferences(test.t)
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestMakePreferences(%s): got err == nil, want err != nil", test.name)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestMakePreferences(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			if !errors.Is(err, ErrInvalidObjectType) {
				t.Errorf("TestMakePreferences(%s): got err == %s, want ErrInvalidObjectType", test.name, err)
			}
			continue
		}
		if r.Name() != test.want {
			t.Errorf("TestMakePreferences(%s): got %s, want %s", test.name, r.Name(), test.want)
		}

		fl, err := NewPreferences(test.t)
		if err != nil {
			t.Errorf("TestMakePreferences(%s): NewPreferences(): %s", test.name, err)
			continue
		}
		if fl.Descriptor().Name != test.want {
			t.Errorf("TestMakePreferences(%s): NewPreferences(): got %s, want %s", test.name, fl.Descriptor().Name, test.want)
		}
	}
}

// commonPrefs is the first field of every entity's preferences, so tag stacks into it
// are the same for every entity type.
func TestCommonPrefsTagStacks(t *testing.T) {
	common, err := MakePreferencesTagStackMap(AllObjects)
	if err != nil {
		t.Fatalf("TestCommonPrefsTagStacks: %s", err)
	}
	if len(common) == 0 {
		t.Fatalf("TestCommonPrefsTagStacks: CommonPrefs has no leaves")
	}

	for _, ot := range EntityTypes {
		m, err := MakePreferencesTagStackMap(ot)
		if err != nil {
			t.Fatalf("TestCommonPrefsTagStacks(%s): %s", ot, err)
		}
		for path, tags := range common {
			want := append(reflect.TagStack{0}, tags...)
			got, ok := m["commonPrefs."+path]
			if !ok {
				t.Errorf("TestCommonPrefsTagStacks(%s): missing commonPrefs.%s", ot, path)
				continue
			}
			if !slices.Equal(want, got) {
				t.Errorf("TestCommonPrefsTagStacks(%s): commonPrefs.%s: got %s, want %s", ot, path, got, want)
			}
			cached, err := PreferencesTagStack("commonPrefs."+path, ot)
			if err != nil || !slices.Equal(want, cached) {
				t.Errorf("TestCommonPrefsTagStacks(%s): PreferencesTagStack(commonPrefs.%s): got %s, %v, want %s", ot, path, cached, err, want)
			}
		}
	}

	if _, err := PreferencesTagStack("commonPrefs.nothing", Platform); !errors.Is(err, reflect.ErrUnknownPath) {
		t.Errorf("TestCommonPrefsTagStacks: unknown path: got err == %v, want ErrUnknownPath", err)
	}
	if _, err := PreferencesTagStack("draw", NoObject); !errors.Is(err, ErrInvalidObjectType) {
		t.Errorf("TestCommonPrefsTagStacks: NoObject: got err == %v, want ErrInvalidObjectType", err)
	}
	got, err := PreferencesTagStack("commonPrefs.labelPrefs", Beam)
	if err != nil || len(got) != 2 || got[0] != 0 {
		t.Errorf("TestCommonPrefsTagStacks: nested list: got %s, %v", got, err)
	}
}

func TestEnumerationText(t *testing.T) {
	if got := CoordinateSystem(5).String(); got != "ECEF" {
		t.Errorf("TestEnumerationText: CoordinateSystem(5): got %q, want ECEF", got)
	}
	if got := CoordinateSystem_ECEF; got != 5 {
		t.Errorf("TestEnumerationText: CoordinateSystem_ECEF: got %d, want 5", got)
	}

	v, err := MakeScenarioProperty().GetDefaultValue(nil, "coordinateFrame.coordinateSystem")
	if err != nil {
		t.Fatalf("TestEnumerationText: %s", err)
	}
	if v.Enumeration() != CoordinateSystemTable() {
		t.Errorf("TestEnumerationText: default value does not carry the CoordinateSystem table")
	}
	if err := v.SetInt32(int32(CoordinateSystem_ECEF)); err != nil {
		t.Fatalf("TestEnumerationText: SetInt32(): %s", err)
	}
	if txt, err := v.EnumerationText(); err != nil || txt != "ECEF" {
		t.Errorf("TestEnumerationText: EnumerationText(): got %q, %v, want ECEF", txt, err)
	}
}

func TestObjectTypeString(t *testing.T) {
	tests := []struct {
		t    ObjectType
		want string
	}{
		{NoObject, "NONE"},
		{Platform, "PLATFORM"},
		{Beam, "BEAM"},
		{LobGroup, "LOB_GROUP"},
		{CustomRendering, "CUSTOM_RENDERING"},
		{AllObjects, "ALL"},
		{Platform | Gate, "ObjectType(5)"},
	}
	for _, test := range tests {
		if got := test.t.String(); got != test.want {
			t.Errorf("TestObjectTypeString(%d): got %q, want %q", test.t, got, test.want)
		}
	}
	if !AllObjects.Has(LobGroup) || Beam.Has(Gate) {
		t.Errorf("TestObjectTypeString: Has() is wrong")
	}
}

func TestReflectionEndToEnd(t *testing.T) {
	r := MakeScenarioProperty()
	prop := &ScenarioProperties{}

	if err := r.SetValue(prop, reflect.ValueOfUint32(1000), "dataLimitPoints"); err != nil {
		t.Fatalf("TestReflectionEndToEnd: SetValue(dataLimitPoints): %s", err)
	}
	if prop.DataLimitPoints() != 1000 || !prop.HasDataLimitPoints() {
		t.Errorf("TestReflectionEndToEnd: DataLimitPoints(): got %d, want 1000", prop.DataLimitPoints())
	}
	v, ok, err := r.GetValue(prop, "dataLimitPoints")
	if err != nil || !ok {
		t.Fatalf("TestReflectionEndToEnd: GetValue(dataLimitPoints): %v, %v", ok, err)
	}
	if u, _ := v.Uint32(); u != 1000 {
		t.Errorf("TestReflectionEndToEnd: GetValue(dataLimitPoints): got %d, want 1000", u)
	}

	if err := r.SetValue(prop, reflect.ValueOfDouble(2.0), "coordinateFrame.tangentPlaneOffset.angle"); err != nil {
		t.Fatalf("TestReflectionEndToEnd: SetValue(angle): %s", err)
	}
	if got := prop.CoordinateFrame().TangentPlaneOffset().Angle(); got != 2.0 {
		t.Errorf("TestReflectionEndToEnd: Angle(): got %v, want 2.0", got)
	}

	if err := r.SetValue(prop, reflect.ValueOfStrings([]string{"Test", "Test2"}), "gogFile"); err != nil {
		t.Fatalf("TestReflectionEndToEnd: SetValue(gogFile): %s", err)
	}
	if diff := pretty.Compare([]string{"Test", "Test2"}, prop.GogFile()); diff != "" {
		t.Errorf("TestReflectionEndToEnd: GogFile(): -want/+got:\n%s", diff)
	}
	v, _, err = r.GetValue(prop, "gogFile")
	if err != nil {
		t.Fatalf("TestReflectionEndToEnd: GetValue(gogFile): %s", err)
	}
	if s, _ := v.Strings(); !slices.Equal(s, []string{"Test", "Test2"}) {
		t.Errorf("TestReflectionEndToEnd: GetValue(gogFile): got %v", s)
	}

	prop.SetDescription("scenario")
	if err := r.ClearValue(prop, "description"); err != nil {
		t.Fatalf("TestReflectionEndToEnd: ClearValue(description): %s", err)
	}
	if prop.HasDescription() {
		t.Errorf("TestReflectionEndToEnd: HasDescription() after ClearValue: got true")
	}
	if _, ok, _ := r.GetValue(prop, "description"); ok {
		t.Errorf("TestReflectionEndToEnd: GetValue(description) after ClearValue: reported set")
	}

	if err := r.SetValue(prop, reflect.ValueOfString("x"), "dataLimitPoints"); !errors.Is(err, reflect.ErrWrongKind) {
		t.Errorf("TestReflectionEndToEnd: wrong kind: got err == %v, want ErrWrongKind", err)
	}
	if _, _, err := r.GetValue(prop, "nothing.here"); !errors.Is(err, reflect.ErrUnknownPath) {
		t.Errorf("TestReflectionEndToEnd: unknown path: got err == %v, want ErrUnknownPath", err)
	}
}

func TestDefaults(t *testing.T) {
	a, b := &CommonPrefs{}, &CommonPrefs{}
	if !a.IsEmpty() || !a.Equal(b) {
		t.Errorf("TestDefaults: default instances must be empty and equal")
	}
	if a.Draw() != true || a.Name() != "entity" || a.DataLimitPoints() != 1000 || a.DataLimitTime() != -1.0 {
		t.Errorf("TestDefaults: CommonPrefs defaults are wrong")
	}
	if a.HasLabelPrefs() || a.LabelPrefs() != nil {
		t.Errorf("TestDefaults: reading a nested list allocated it")
	}
	if a.LabelPrefs().Draw() {
		t.Errorf("TestDefaults: LabelPrefs().Draw() on nil: got true, want false")
	}
}

func TestSetHasClear(t *testing.T) {
	p := &PlatformPrefs{}
	p.MutableCommonPrefs().SetName("jet").SetDraw(false)
	p.SetIcon("jet.ive")

	if !p.HasIcon() || !p.CommonPrefs().HasName() || p.CommonPrefs().Name() != "jet" {
		t.Errorf("TestSetHasClear: set fields are not reported")
	}
	if p.IsEmpty() {
		t.Errorf("TestSetHasClear: IsEmpty(): got true, want false")
	}
	p.ClearIcon()
	p.CommonPrefs().ClearName()
	if p.HasIcon() || p.CommonPrefs().HasName() {
		t.Errorf("TestSetHasClear: cleared fields are still set")
	}
	if p.CommonPrefs().Name() != "entity" {
		t.Errorf("TestSetHasClear: cleared name: got %q, want the default", p.CommonPrefs().Name())
	}

	p.CommonPrefs().ClearDraw()
	p.MutableCommonPrefs().MutableLabelPrefs()
	p.Prune()
	if p.HasCommonPrefs() || !p.IsEmpty() {
		t.Errorf("TestSetHasClear: Prune() left an empty nested list")
	}

	p.SetIcon("x")
	p.Clear()
	if !p.IsEmpty() {
		t.Errorf("TestSetHasClear: Clear() did not empty the list")
	}
}

// TestEqualMatchesValueEqual checks that field list equality and reflect.Value equality
// agree on float values that are equal but differ in bits.
func TestEqualMatchesValueEqual(t *testing.T) {
	r := MakePlatformPreferences()

	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{name: "signed zero", a: 0, b: math.Copysign(0, -1), want: true},
		{name: "NaN", a: math.NaN(), b: math.NaN(), want: false},
		{name: "different", a: 1, b: 2, want: false},
	}

	for _, test := range tests {
		a := (&PlatformPrefs{}).SetScale(test.a)
		b := (&PlatformPrefs{}).SetScale(test.b)
		if got := a.Equal(b); got != test.want {
			t.Errorf("TestEqualMatchesValueEqual(%s): got PlatformPrefs.Equal() == %v, want %v", test.name, got, test.want)
		}
		va, _, err := r.GetValue(a, "scale")
		if err != nil {
			t.Fatalf("TestEqualMatchesValueEqual(%s): %s", test.name, err)
		}
		vb, _, err := r.GetValue(b, "scale")
		if err != nil {
			t.Fatalf("TestEqualMatchesValueEqual(%s): %s", test.name, err)
		}
		if got := va.Equal(vb); got != test.want {
			t.Errorf("TestEqualMatchesValueEqual(%s): got Value.Equal() == %v, want %v", test.name, got, test.want)
		}
	}
}

func TestCopyFrom(t *testing.T) {
	from := &ScenarioProperties{}
	from.SetDescription("d").SetDataLimitPoints(10).AddGogFile("a", "b")
	from.MutableCoordinateFrame().SetCoordinateSystem(CoordinateSystem_ECEF)

	to := &ScenarioProperties{}
	to.SetSource("stale")
	to.CopyFrom(from)
	if !to.Equal(from) {
		t.Errorf("TestCopyFrom: copy is not equal to its source")
	}
	if to.HasSource() {
		t.Errorf("TestCopyFrom: CopyFrom kept a field the source does not have")
	}

	// Deep: changing the copy does not change the source.
	to.MutableCoordinateFrame().SetCoordinateSystem(CoordinateSystem_LLA)
	to.SetGogFileAt(0, "z")
	if from.CoordinateFrame().CoordinateSystem() != CoordinateSystem_ECEF || from.GogFileAt(0) != "a" {
		t.Errorf("TestCopyFrom: copy shares storage with its source")
	}

	to.CopyFrom(nil)
	if !to.IsEmpty() {
		t.Errorf("TestCopyFrom: CopyFrom(nil) did not clear")
	}
}

func TestMergeFrom(t *testing.T) {
	to := &CommonPrefs{}
	to.SetName("keep").SetColor(1).AddAcceptProjectorIds(1)
	to.MutableLabelPrefs().SetDraw(true)

	from := &CommonPrefs{}
	from.SetColor(2).AddAcceptProjectorIds(2, 3)
	from.MutableLabelPrefs().SetOverlayFontPointSize(20)

	to.MergeFrom(from)

	if to.Name() != "keep" {
		t.Errorf("TestMergeFrom: field absent in from was changed: got %q", to.Name())
	}
	if to.Color() != 2 {
		t.Errorf("TestMergeFrom: field present in from was not overwritten: got %d", to.Color())
	}
	if diff := pretty.Compare([]uint64{1, 2, 3}, to.AcceptProjectorIds()); diff != "" {
		t.Errorf("TestMergeFrom: vector was not appended: -want/+got:\n%s", diff)
	}
	if !to.LabelPrefs().Draw() || to.LabelPrefs().OverlayFontPointSize() != 20 {
		t.Errorf("TestMergeFrom: nested lists were not merged")
	}
	if from.HasName() {
		t.Errorf("TestMergeFrom: MergeFrom changed its source")
	}
}

func TestSetPaths(t *testing.T) {
	p := &BeamPrefs{}
	p.MutableCommonPrefs().SetDraw(false)
	p.SetBeamDrawMode(BeamDrawMode_WIRE)

	got := MakeBeamPreferences().SetPaths(p)
	for _, want := range []string{"commonPrefs.draw", "beamDrawMode"} {
		if !slices.Contains(got, want) {
			t.Errorf("TestSetPaths: missing %s in %s", want, strings.Join(got, ","))
		}
	}
}
