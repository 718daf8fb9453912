package simtext

import (
	"io"
	"strconv"
	"strings"

	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/simiter"
	"github.com/bearlytools/simdata/languages/go/structs"
	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"
)

var (
	textColon        = []byte(": ")
	textOpenBracket  = []byte("[")
	textCloseBracket = []byte("]")
	textSeparator    = []byte(", ")
	textNewline      = []byte("\n")
)

// marshalOptions provides options for rendering text.
type marshalOptions struct {
	UseEnumNumbers bool
}

// MarshalOption provides options for Marshal.
type MarshalOption func(marshalOptions) (marshalOptions, error)

// WithUseEnumNumbers configures whether enumerations are rendered as codes instead of text.
func WithUseEnumNumbers(use bool) MarshalOption {
	return func(m marshalOptions) (marshalOptions, error) {
		m.UseEnumNumbers = use
		return m, nil
	}
}

// marshalState holds reusable state for rendering.
type marshalState struct {
	path       []string // names of the enclosing nested lists
	pendingSub string   // name of the nested list whose StructStart is next
	root       bool     // the next StructStart is the root
	inList     bool
	listFirst  bool
	line       []byte
}

var marshalStatePool = sync.NewPool[*marshalState](
	context.Background(),
	"simtext.marshalStatePool",
	func() *marshalState {
		return &marshalState{
			path: make([]string, 0, 8),
			line: make([]byte, 0, 128),
		}
	},
)

func getMarshalState(ctx context.Context) *marshalState {
	s := marshalStatePool.Get(ctx)
	s.path = s.path[:0]
	s.line = s.line[:0]
	s.pendingSub = ""
	s.root = true
	s.inList = false
	s.listFirst = false
	return s
}

func putMarshalState(ctx context.Context, s *marshalState) {
	marshalStatePool.Put(ctx, s)
}

func (s *marshalState) appendPath(name string) {
	for _, p := range s.path {
		s.line = append(s.line, p...)
		s.line = append(s.line, '.')
	}
	s.line = append(s.line, name...)
	s.line = append(s.line, textColon...)
}

// writeText renders the tokens of fl. Each leaf is buffered in s.line and written as one line.
func writeText(ctx context.Context, w io.Writer, fl structs.FieldList, opts marshalOptions) error {
	s := getMarshalState(ctx)
	defer putMarshalState(ctx, s)

	var writeErr error
	flush := func() bool {
		if _, err := w.Write(s.line); err != nil {
			writeErr = err
			return false
		}
		s.line = s.line[:0]
		return true
	}

	simiter.Walk(ctx, fl, func(tok simiter.Token) bool {
		switch tok.Kind {
		case simiter.TokenStructStart:
			if s.root {
				s.root = false
				return true
			}
			s.path = append(s.path, s.pendingSub)
		case simiter.TokenStructEnd:
			if len(s.path) > 0 {
				s.path = s.path[:len(s.path)-1]
			}
		case simiter.TokenListStart:
			s.line = append(s.line, textOpenBracket...)
			s.inList = true
			s.listFirst = true
		case simiter.TokenListEnd:
			s.inList = false
			s.line = append(s.line, textCloseBracket...)
			s.line = append(s.line, textNewline...)
			return flush()
		case simiter.TokenField:
			switch {
			case s.inList:
				if !s.listFirst {
					s.line = append(s.line, textSeparator...)
				}
				s.listFirst = false
				s.line = appendValue(s.line, tok, opts)
			case tok.Type == field.FTStruct:
				s.pendingSub = tok.Name
			case field.IsList(tok.Type):
				s.appendPath(tok.Name)
			default:
				s.appendPath(tok.Name)
				s.line = appendValue(s.line, tok, opts)
				s.line = append(s.line, textNewline...)
				return flush()
			}
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}
	return ctx.Err()
}

// appendValue appends the text form of a scalar token.
func appendValue(dst []byte, tok simiter.Token, opts marshalOptions) []byte {
	switch tok.Type {
	case field.FTBool:
		return strconv.AppendBool(dst, tok.Bool())
	case field.FTInt32:
		return strconv.AppendInt(dst, int64(tok.Int32()), 10)
	case field.FTEnum:
		if opts.UseEnumNumbers || tok.EnumName == "" {
			return strconv.AppendInt(dst, int64(tok.Int32()), 10)
		}
		return append(dst, tok.EnumName...)
	case field.FTUint32:
		return strconv.AppendUint(dst, uint64(tok.Uint32()), 10)
	case field.FTUint64:
		return strconv.AppendUint(dst, tok.Uint64(), 10)
	case field.FTFloat32:
		return appendFloat(dst, float64(tok.Float32()), 32)
	case field.FTFloat64:
		return appendFloat(dst, tok.Float64(), 64)
	case field.FTString:
		return strconv.AppendQuote(dst, tok.String())
	}
	return dst
}

// appendFloat renders f so that it never reads back as an integer or an identifier.
func appendFloat(dst []byte, f float64, bits int) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, bits)
	if !strings.ContainsAny(string(dst[start:]), ".eEnN") {
		dst = append(dst, ".0"...)
	}
	return dst
}
