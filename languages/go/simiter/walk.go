package simiter

import (
	"iter"

	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/structs"
	"github.com/gostdlib/base/context"
)

// Walk yields the tokens of fl in declaration order. Only fields that are set are
// yielded; a vector is set when it is not empty. A nested field list yields a TokenField
// with Type field.FTStruct followed by its own StructStart..StructEnd tokens. Walk stops
// and returns false if yield returns false or ctx is cancelled.
func Walk(ctx context.Context, fl structs.FieldList, yield YieldToken) bool {
	return walk(ctx, fl, yield)
}

// Tokens returns the tokens of fl as an iter.Seq.
func Tokens(ctx context.Context, fl structs.FieldList) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		walk(ctx, fl, yield)
	}
}

// WalkerOf returns a Walker over fl, for passing to Ingest.
func WalkerOf(ctx context.Context, fl structs.FieldList) Walker {
	return func(yield YieldToken) {
		walk(ctx, fl, yield)
	}
}

func walk(ctx context.Context, fl structs.FieldList, yield YieldToken) bool {
	d := fl.Descriptor()
	if !yield(Token{Kind: TokenStructStart, Name: d.Name}) {
		return false
	}
	for _, fd := range d.Fields {
		if ctx.Err() != nil {
			return false
		}
		if !fd.Has(fl) {
			continue
		}
		switch {
		case fd.IsSub():
			child := fd.Peek(fl)
			tok := Token{Kind: TokenField, Name: fd.Name, Type: field.FTStruct, StructName: child.Descriptor().Name}
			if !yield(tok) {
				return false
			}
			if !walk(ctx, child, yield) {
				return false
			}
		case field.IsList(fd.Type):
			v, _ := fd.Get(fl)
			if !walkList(fd, v, yield) {
				return false
			}
		default:
			v, _ := fd.Get(fl)
			if !yield(scalarToken(fd, v)) {
				return false
			}
		}
	}
	return yield(Token{Kind: TokenStructEnd, Name: d.Name})
}

func walkList(fd *structs.FieldDescr, v reflect.Value, yield YieldToken) bool {
	var n int
	strs, _ := v.Strings()
	ids, _ := v.IDs()
	switch fd.Type {
	case field.FTListStrings:
		n = len(strs)
	case field.FTListIDs:
		n = len(ids)
	}

	if !yield(Token{Kind: TokenField, Name: fd.Name, Type: fd.Type, Len: n}) {
		return false
	}
	if !yield(Token{Kind: TokenListStart, Type: fd.Type, Len: n}) {
		return false
	}
	for _, s := range strs {
		tok := Token{Kind: TokenField, Type: field.FTString}
		tok.SetString(s)
		if !yield(tok) {
			return false
		}
	}
	for _, id := range ids {
		tok := Token{Kind: TokenField, Type: field.FTUint64}
		tok.SetUint64(id)
		if !yield(tok) {
			return false
		}
	}
	return yield(Token{Kind: TokenListEnd, Type: fd.Type})
}

func scalarToken(fd *structs.FieldDescr, v reflect.Value) Token {
	tok := Token{Kind: TokenField, Name: fd.Name, Type: fd.Type}
	switch fd.Type {
	case field.FTBool:
		b, _ := v.Bool()
		tok.SetBool(b)
	case field.FTInt32:
		i, _ := v.Int32()
		tok.SetInt32(i)
	case field.FTEnum:
		i, _ := v.Int32()
		tok.SetInt32(i)
		tok.IsEnum = true
		if fd.Enum != nil {
			t := fd.Enum()
			tok.EnumGroup = t.Name()
			// A code outside the table keeps only its number.
			tok.EnumName, _ = t.Text(i)
		}
	case field.FTUint32:
		u, _ := v.Uint32()
		tok.SetUint32(u)
	case field.FTUint64:
		u, _ := v.Uint64()
		tok.SetUint64(u)
	case field.FTFloat32:
		f, _ := v.Float()
		tok.SetFloat32(f)
	case field.FTFloat64:
		f, _ := v.Double()
		tok.SetFloat64(f)
	case field.FTString:
		s, _ := v.Str()
		tok.SetString(s)
	}
	return tok
}
