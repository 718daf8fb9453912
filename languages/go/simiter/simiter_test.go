package simiter

import (
	"fmt"
	"testing"

	"github.com/bearlytools/simdata"
	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"
)

// describe renders a token as a single comparable line.
func describe(tok Token) string {
	switch tok.Kind {
	case TokenStructStart, TokenStructEnd:
		return fmt.Sprintf("%s %s", tok.Kind, tok.Name)
	case TokenListStart, TokenListEnd:
		return fmt.Sprintf("%s %s", tok.Kind, tok.Type)
	}
	var v string
	switch tok.Type {
	case field.FTBool:
		v = fmt.Sprint(tok.Bool())
	case field.FTInt32:
		v = fmt.Sprint(tok.Int32())
	case field.FTEnum:
		v = fmt.Sprintf("%s.%s(%d)", tok.EnumGroup, tok.EnumName, tok.Int32())
	case field.FTUint32:
		v = fmt.Sprint(tok.Uint32())
	case field.FTUint64:
		v = fmt.Sprint(tok.Uint64())
	case field.FTFloat32:
		v = fmt.Sprint(tok.Float32())
	case field.FTFloat64:
		v = fmt.Sprint(tok.Float64())
	case field.FTString:
		v = fmt.Sprintf("%q", tok.String())
	case field.FTStruct:
		v = tok.StructName
	case field.FTListStrings, field.FTListIDs:
		v = fmt.Sprintf("len=%d", tok.Len)
	}
	return fmt.Sprintf("%s %s %s %s", tok.Kind, tok.Name, tok.Type, v)
}

func describeAll(fl *simdata.GateProperties) []string {
	var out []string
	for tok := range Tokens(context.Background(), fl) {
		out = append(out, describe(tok))
	}
	return out
}

func platformPrefs() *simdata.PlatformPrefs {
	p := &simdata.PlatformPrefs{}
	p.MutableCommonPrefs().SetName("p1").AddAcceptProjectorIds(7, 8)
	p.SetIcon("ico")
	p.AddGogFile("a.gog")
	p.SetScale(2.5)
	return p
}

func TestWalk(t *testing.T) {
	ctx := context.Background()

	want := []string{
		`StructStart PlatformPrefs`,
		`Field commonPrefs Struct CommonPrefs`,
		`StructStart CommonPrefs`,
		`Field name String "p1"`,
		`Field acceptProjectorIds IdVector len=2`,
		`ListStart IdVector`,
		`Field  Uint64 7`,
		`Field  Uint64 8`,
		`ListEnd IdVector`,
		`StructEnd CommonPrefs`,
		`Field icon String "ico"`,
		`Field scale Double 2.5`,
		`Field gogFile StringVector len=1`,
		`ListStart StringVector`,
		`Field  String "a.gog"`,
		`ListEnd StringVector`,
		`StructEnd PlatformPrefs`,
	}

	var got []string
	for tok := range Tokens(ctx, platformPrefs()) {
		got = append(got, describe(tok))
	}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestWalk: -want/+got:\n%s", diff)
	}
}

func TestWalkEnum(t *testing.T) {
	ctx := context.Background()

	g := (&simdata.GateProperties{}).SetId(3).SetType(simdata.GateType_TARGET)
	want := []string{
		`StructStart GateProperties`,
		`Field id Uint64 3`,
		`Field type Enumeration GateType.TARGET(3)`,
		`StructEnd GateProperties`,
	}
	var got []string
	for tok := range Tokens(ctx, g) {
		got = append(got, describe(tok))
	}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestWalkEnum: -want/+got:\n%s", diff)
	}
}

func TestWalkStops(t *testing.T) {
	ctx := context.Background()

	n := 0
	ok := Walk(ctx, platformPrefs(), func(Token) bool {
		n++
		return n < 3
	})
	if ok {
		t.Errorf("TestWalkStops: got true, want false")
	}
	if n != 3 {
		t.Errorf("TestWalkStops: got %d tokens, want 3", n)
	}

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if Walk(cctx, platformPrefs(), func(Token) bool { return true }) {
		t.Errorf("TestWalkStops(cancelled): got true, want false")
	}
}

func TestIngestRoundTrip(t *testing.T) {
	ctx := context.Background()

	from := platformPrefs()
	from.MutableCommonPrefs().MutableLabelPrefs().SetCoordinateSystem(simdata.CoordinateSystem_ECEF)

	to := &simdata.PlatformPrefs{}
	if err := Ingest(ctx, to, WalkerOf(ctx, from)); err != nil {
		t.Fatalf("TestIngestRoundTrip: got err == %s, want err == nil", err)
	}
	if !to.Equal(from) {
		t.Errorf("TestIngestRoundTrip: Equal() == false")
	}
	if got := to.CommonPrefs().LabelPrefs().CoordinateSystem(); got != simdata.CoordinateSystem_ECEF {
		t.Errorf("TestIngestRoundTrip: coordinateSystem: got %s, want ECEF", got)
	}
}

func TestIngestReplacesVectors(t *testing.T) {
	ctx := context.Background()

	to := &simdata.PlatformPrefs{}
	to.AddGogFile("old.gog")
	to.SetIcon("keep")

	from := &simdata.PlatformPrefs{}
	from.AddGogFile("new.gog")

	if err := Ingest(ctx, to, WalkerOf(ctx, from)); err != nil {
		t.Fatalf("TestIngestReplacesVectors: got err == %s, want err == nil", err)
	}
	if diff := pretty.Compare([]string{"new.gog"}, to.GogFile()); diff != "" {
		t.Errorf("TestIngestReplacesVectors: -want/+got:\n%s", diff)
	}
	if to.Icon() != "keep" {
		t.Errorf("TestIngestReplacesVectors: icon: got %q, want keep", to.Icon())
	}
}

func sliceWalker(toks ...Token) Walker {
	return func(yield YieldToken) {
		for _, tok := range toks {
			if !yield(tok) {
				return
			}
		}
	}
}

func strTok(name, s string) Token {
	tok := Token{Kind: TokenField, Name: name, Type: field.FTString}
	tok.SetString(s)
	return tok
}

func u64Tok(name string, u uint64) Token {
	tok := Token{Kind: TokenField, Name: name, Type: field.FTUint64}
	tok.SetUint64(u)
	return tok
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	start := Token{Kind: TokenStructStart, Name: "GateProperties"}
	end := Token{Kind: TokenStructEnd, Name: "GateProperties"}
	enumByName := Token{Kind: TokenField, Name: "type", Type: field.FTEnum, IsEnum: true, EnumName: "BODY_RELATIVE"}
	enumByCode := Token{Kind: TokenField, Name: "type", Type: field.FTInt32}
	enumByCode.SetInt32(3)
	badEnum := Token{Kind: TokenField, Name: "type", Type: field.FTEnum, IsEnum: true, EnumName: "SIDEWAYS"}
	unknownSub := Token{Kind: TokenField, Name: "extra", Type: field.FTStruct}

	tests := []struct {
		name    string
		w       Walker
		opts    []IngestOption
		want     *simdata.GateProperties
		wantErr  error
		wantType errors.Type
	}{
		{
			name: "Success: scalars",
			w:    sliceWalker(start, u64Tok("id", 9), strTok("source", "radar"), end),
			want: (&simdata.GateProperties{}).SetId(9).SetSource("radar"),
		},
		{
			name: "Success: legacy field name",
			w:    sliceWalker(start, u64Tok("hostid", 4), end),
			want: (&simdata.GateProperties{}).SetHostId(4),
		},
		{
			name: "Success: enum by name",
			w:    sliceWalker(start, enumByName, end),
			want: (&simdata.GateProperties{}).SetType(simdata.GateType_BODY_RELATIVE),
		},
		{
			name: "Success: enum by code",
			w:    sliceWalker(start, enumByCode, end),
			want: (&simdata.GateProperties{}).SetType(simdata.GateType_TARGET),
		},
		{
			name: "Success: ignore unknown fields",
			w: sliceWalker(
				start,
				strTok("nope", "x"),
				unknownSub,
				Token{Kind: TokenStructStart, Name: "Extra"},
				strTok("inner", "y"),
				Token{Kind: TokenStructEnd, Name: "Extra"},
				u64Tok("id", 1),
				end,
			),
			opts: []IngestOption{WithIgnoreUnknownFields(true)},
			want: (&simdata.GateProperties{}).SetId(1),
		},
		{
			name:     "Error: unknown field",
			w:        sliceWalker(start, strTok("nope", "x"), end),
			wantErr:  ErrUnknownField,
			wantType: errors.TypePath,
		},
		{
			name:     "Error: unknown enum text",
			w:        sliceWalker(start, badEnum, end),
			wantErr:  ErrUnknownEnum,
			wantType: errors.TypeParameter,
		},
		{
			name:     "Error: wrong kind",
			w:        sliceWalker(start, strTok("id", "9"), end),
			wantErr:  reflect.ErrWrongKind,
			wantType: errors.TypeKind,
		},
		{
			name:     "Error: missing StructStart",
			w:        sliceWalker(u64Tok("id", 1), end),
			wantErr:  ErrUnexpectedToken,
			wantType: errors.TypeParameter,
		},
		{
			name:     "Error: missing StructEnd",
			w:        sliceWalker(start, u64Tok("id", 1)),
			wantErr:  ErrUnexpectedToken,
			wantType: errors.TypeParameter,
		},
		{
			name:     "Error: trailing tokens",
			w:        sliceWalker(start, end, start),
			wantErr:  ErrUnexpectedToken,
			wantType: errors.TypeParameter,
		},
	}

	for _, test := range tests {
		got := &simdata.GateProperties{}
		err := Ingest(ctx, got, test.w, test.opts...)
		switch {
		case err == nil && test.wantErr != nil:
			t.Errorf("TestIngest(%s): got err == nil, want err == %v", test.name, test.wantErr)
			continue
		case err != nil && test.wantErr == nil:
			t.Errorf("TestIngest(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			if !errors.Is(err, test.wantErr) {
				t.Errorf("TestIngest(%s): got err == %s, want errors.Is(err, %v)", test.name, err, test.wantErr)
			}
			if !errors.Is(err, errors.Error{Category: errors.CatUser, Type: test.wantType}) {
				t.Errorf("TestIngest(%s): got err == %#v, want type %s", test.name, err, test.wantType)
			}
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("TestIngest(%s): -want/+got:\n%s", test.name, pretty.Compare(describeAll(test.want), describeAll(got)))
		}
	}
}
