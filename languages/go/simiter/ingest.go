package simiter

import (
	"fmt"
	"iter"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/structs"
	"github.com/gostdlib/base/context"
)

var (
	// ErrUnknownField is returned when a token names a field the type does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnexpectedToken is returned when the token stream is not well formed.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrUnknownEnum is returned when an enumeration token holds text its table does not have.
	ErrUnknownEnum = errors.New("unknown enumeration text")
)

// IngestOptions holds configuration for Ingest.
type IngestOptions struct {
	// IgnoreUnknownFields causes unknown field names to be skipped instead of returning an error.
	IgnoreUnknownFields bool
}

// IngestOption configures Ingest behavior.
type IngestOption func(IngestOptions) (IngestOptions, error)

// WithIgnoreUnknownFields sets whether to ignore unknown fields during ingestion.
// When true, unknown fields are skipped instead of causing an error.
func WithIgnoreUnknownFields(ignore bool) IngestOption {
	return func(o IngestOptions) (IngestOptions, error) {
		o.IgnoreUnknownFields = ignore
		return o, nil
	}
}

// Ingest reads the tokens of w into fl. Fields are matched by name, then by legacy name.
// Fields in fl that the stream does not name are left alone, so ingesting into a cleared
// fl rebuilds the walked field list. A vector in the stream replaces the vector in fl.
func Ingest(ctx context.Context, fl structs.FieldList, w Walker, options ...IngestOption) error {
	opts := IngestOptions{}
	for _, o := range options {
		var err error
		opts, err = o(opts)
		if err != nil {
			return errors.E(ctx, errors.CatUser, errors.TypeParameter, err)
		}
	}

	ts := NewTokenStream(func(yield func(Token) bool) { w(yield) })
	defer ts.Close()

	tok, ok := ts.Next()
	switch {
	case !ok:
		return errors.E(ctx, errors.CatUser, errors.TypeParameter, fmt.Errorf("expected %s, got EOF: %w", TokenStructStart, ErrUnexpectedToken))
	case tok.Kind != TokenStructStart:
		return errors.E(ctx, errors.CatUser, errors.TypeParameter, fmt.Errorf("expected %s, got %s: %w", TokenStructStart, tok.Kind, ErrUnexpectedToken))
	}
	if err := ingestStruct(ctx, ts, fl, opts); err != nil {
		return errors.E(ctx, errors.CatUser, errType(err), err)
	}
	if tok, ok := ts.Next(); ok {
		return errors.E(ctx, errors.CatUser, errors.TypeParameter, fmt.Errorf("got %s after the final %s: %w", tok.Kind, TokenStructEnd, ErrUnexpectedToken))
	}
	return nil
}

// errType classifies an ingest failure for errors.E.
func errType(err error) errors.Type {
	if errors.Is(err, ErrUnknownField) {
		return errors.TypePath
	}
	return reflect.ErrType(err)
}

// ingestStruct reads fields until the StructEnd that matches an already read StructStart.
func ingestStruct(ctx context.Context, ts *TokenStream, fl structs.FieldList, opts IngestOptions) error {
	d := fl.Descriptor()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tok, ok := ts.Next()
		if !ok {
			return fmt.Errorf("%s: unexpected EOF: %w", d.Name, ErrUnexpectedToken)
		}
		switch tok.Kind {
		case TokenStructEnd:
			return nil
		case TokenField:
		default:
			return fmt.Errorf("%s: expected %s, got %s: %w", d.Name, TokenField, tok.Kind, ErrUnexpectedToken)
		}

		fd, ok := d.ByName(tok.Name)
		if !ok {
			fd, ok = d.ByLegacyName(tok.Name)
		}
		if !ok {
			if opts.IgnoreUnknownFields {
				if err := SkipValue(ts, tok); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("%s.%s: %w", d.Name, tok.Name, ErrUnknownField)
		}

		switch {
		case fd.IsSub():
			if tok.Type != field.FTStruct {
				return fmt.Errorf("%s.%s: %w", d.Name, fd.Name, &reflect.KindError{Want: field.FTStruct, Have: tok.Type})
			}
			start, ok := ts.Next()
			if !ok || start.Kind != TokenStructStart {
				return fmt.Errorf("%s.%s: expected %s: %w", d.Name, fd.Name, TokenStructStart, ErrUnexpectedToken)
			}
			if err := ingestStruct(ctx, ts, fd.Mutable(fl), opts); err != nil {
				return fmt.Errorf("%s.%w", d.Name, err)
			}
		case field.IsList(fd.Type):
			if tok.Type != fd.Type {
				return fmt.Errorf("%s.%s: %w", d.Name, fd.Name, &reflect.KindError{Want: fd.Type, Have: tok.Type})
			}
			v, err := ingestList(ts, fd)
			if err != nil {
				return fmt.Errorf("%s.%w", d.Name, err)
			}
			if err := fd.Set(fl, v); err != nil {
				return fmt.Errorf("%s.%w", d.Name, err)
			}
		default:
			v, err := tokenValue(fd, tok)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", d.Name, fd.Name, err)
			}
			if err := fd.Set(fl, v); err != nil {
				return fmt.Errorf("%s.%w", d.Name, err)
			}
		}
	}
}

func ingestList(ts *TokenStream, fd *structs.FieldDescr) (reflect.Value, error) {
	start, ok := ts.Next()
	if !ok || start.Kind != TokenListStart {
		return reflect.Value{}, fmt.Errorf("%s: expected %s: %w", fd.Name, TokenListStart, ErrUnexpectedToken)
	}

	var (
		strs []string
		ids  []uint64
	)
	for {
		tok, ok := ts.Next()
		if !ok {
			return reflect.Value{}, fmt.Errorf("%s: unexpected EOF in list: %w", fd.Name, ErrUnexpectedToken)
		}
		if tok.Kind == TokenListEnd {
			break
		}
		switch {
		case tok.Kind != TokenField:
			return reflect.Value{}, fmt.Errorf("%s: got %s in list: %w", fd.Name, tok.Kind, ErrUnexpectedToken)
		case fd.Type == field.FTListStrings && tok.Type == field.FTString:
			// The token may share its bytes with the producer.
			strs = append(strs, string(tok.Bytes))
		case fd.Type == field.FTListIDs && tok.Type == field.FTUint64:
			ids = append(ids, tok.Uint64())
		default:
			return reflect.Value{}, fmt.Errorf("%s: list entry: %w", fd.Name, &reflect.KindError{Want: field.ElemType(fd.Type), Have: tok.Type})
		}
	}
	if fd.Type == field.FTListStrings {
		return reflect.ValueOfStrings(strs), nil
	}
	return reflect.ValueOfIDs(ids), nil
}

// tokenValue converts a scalar token to a Value for fd.
func tokenValue(fd *structs.FieldDescr, tok Token) (reflect.Value, error) {
	if !field.Compatible(fd.Type, tok.Type) {
		return reflect.Value{}, &reflect.KindError{Want: fd.Type, Have: tok.Type}
	}
	switch fd.Type {
	case field.FTBool:
		return reflect.ValueOfBool(tok.Bool()), nil
	case field.FTInt32:
		return reflect.ValueOfInt32(tok.Int32()), nil
	case field.FTEnum:
		t := fd.Enum()
		code := tok.Int32()
		if tok.EnumName != "" {
			c, ok := t.Code(tok.EnumName)
			if !ok {
				return reflect.Value{}, fmt.Errorf("%s(%q): %w", t.Name(), tok.EnumName, ErrUnknownEnum)
			}
			code = c
		}
		return reflect.ValueOfEnum(code, t), nil
	case field.FTUint32:
		return reflect.ValueOfUint32(tok.Uint32()), nil
	case field.FTUint64:
		return reflect.ValueOfUint64(tok.Uint64()), nil
	case field.FTFloat32:
		return reflect.ValueOfFloat(tok.Float32()), nil
	case field.FTFloat64:
		return reflect.ValueOfDouble(tok.Float64()), nil
	case field.FTString:
		return reflect.ValueOfString(string(tok.Bytes)), nil
	}
	return reflect.Value{}, fmt.Errorf("field type %s is not a scalar", fd.Type)
}

// TokenStream wraps an iter.Seq[Token] for pull-based consumption with peek support.
type TokenStream struct {
	next   func() (Token, bool)
	stop   func()
	peeked *Token
}

// NewTokenStream creates a TokenStream from an iter.Seq[Token].
func NewTokenStream(seq iter.Seq[Token]) *TokenStream {
	next, stop := iter.Pull(seq)
	return &TokenStream{next: next, stop: stop}
}

// Next returns the next token from the stream.
func (ts *TokenStream) Next() (Token, bool) {
	if ts.peeked != nil {
		tok := *ts.peeked
		ts.peeked = nil
		return tok, true
	}
	return ts.next()
}

// Peek returns the next token without consuming it.
func (ts *TokenStream) Peek() (Token, bool) {
	if ts.peeked != nil {
		return *ts.peeked, true
	}
	tok, ok := ts.next()
	if ok {
		ts.peeked = &tok
	}
	return tok, ok
}

// Close releases resources associated with the token stream.
func (ts *TokenStream) Close() {
	ts.stop()
}

// SkipValue skips the value of fieldTok in the token stream, including nested field
// lists and vectors.
func SkipValue(ts *TokenStream, fieldTok Token) error {
	switch {
	case fieldTok.Type == field.FTStruct:
		return skipStruct(ts)
	case field.IsList(fieldTok.Type):
		return skipList(ts)
	}
	// Scalar values are already consumed in the field token.
	return nil
}

// skipStruct consumes and discards a field list's tokens (StructStart through StructEnd).
func skipStruct(ts *TokenStream) error {
	tok, ok := ts.Next()
	if !ok {
		return fmt.Errorf("expected %s, got EOF: %w", TokenStructStart, ErrUnexpectedToken)
	}
	if tok.Kind != TokenStructStart {
		return fmt.Errorf("expected %s, got %s: %w", TokenStructStart, tok.Kind, ErrUnexpectedToken)
	}

	depth := 1
	for depth > 0 {
		tok, ok = ts.Next()
		if !ok {
			return fmt.Errorf("unexpected EOF while skipping a field list: %w", ErrUnexpectedToken)
		}
		switch tok.Kind {
		case TokenStructStart:
			depth++
		case TokenStructEnd:
			depth--
		}
	}
	return nil
}

// skipList consumes and discards a vector's tokens (ListStart through ListEnd).
func skipList(ts *TokenStream) error {
	tok, ok := ts.Next()
	if !ok {
		return fmt.Errorf("expected %s, got EOF: %w", TokenListStart, ErrUnexpectedToken)
	}
	if tok.Kind != TokenListStart {
		return fmt.Errorf("expected %s, got %s: %w", TokenListStart, tok.Kind, ErrUnexpectedToken)
	}
	for {
		tok, ok = ts.Next()
		if !ok {
			return fmt.Errorf("unexpected EOF while skipping a list: %w", ErrUnexpectedToken)
		}
		if tok.Kind == TokenListEnd {
			return nil
		}
	}
}
