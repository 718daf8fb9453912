package simtext

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/simiter"
	"github.com/bearlytools/simdata/languages/go/structs"
	"github.com/johnsiilver/halfpike"
	"golang.org/x/exp/constraints"
)

// parseText parses input line by line and sets each field on fl.
func parseText(ctx context.Context, input string, fl structs.FieldList, opts unmarshalOptions) error {
	p := &textParser{fl: fl, opts: opts}
	if err := halfpike.Parse(ctx, input, p); err != nil {
		return err
	}
	return p.err
}

// textParser holds the state for parsing text.
type textParser struct {
	fl   structs.FieldList
	opts unmarshalOptions
	err  error
}

// Validate implements halfpike.Validator.
func (p *textParser) Validate() error {
	return p.err
}

// Start is the entry point for halfpike parsing.
func (p *textParser) Start(ctx context.Context, hp *halfpike.Parser) halfpike.ParseFn {
	for {
		if err := ctx.Err(); err != nil {
			p.err = err
			return nil
		}
		line := hp.Next()
		if hp.EOF(line) {
			return nil
		}
		raw := strings.TrimSpace(line.Raw)
		if raw == "" || strings.HasPrefix(raw, "#") || strings.HasPrefix(raw, "//") {
			continue
		}
		if err := p.parseLine(raw); err != nil {
			p.err = fmt.Errorf("[Line %d]: %w", line.LineNum, err)
			return nil
		}
	}
}

// parseLine handles a single `path: value` line.
func (p *textParser) parseLine(raw string) error {
	path, val, ok := strings.Cut(raw, ":")
	if !ok {
		return fmt.Errorf("expected 'path: value', got %q", raw)
	}
	path = strings.TrimSpace(path)
	val = strings.TrimSpace(val)
	if val == "" {
		return fmt.Errorf("%s: expected a value after ':'", path)
	}

	chain, err := resolve(p.fl.Descriptor(), path)
	if err != nil {
		if p.opts.IgnoreUnknownFields && errors.Is(err, simiter.ErrUnknownField) {
			return nil
		}
		return err
	}
	fd := chain[len(chain)-1]
	v, err := parseValue(fd, val)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fl := p.fl
	for _, sub := range chain[:len(chain)-1] {
		fl = sub.Mutable(fl)
	}
	return fd.Set(fl, v)
}

// resolve walks the dotted path through the descriptors of d without touching any list.
// It returns the descriptor of every segment, ending with the leaf. Nested lists are
// only created by the caller once the whole line is known to be valid.
func resolve(d *structs.Descr, path string) ([]*structs.FieldDescr, error) {
	parts := strings.Split(path, ".")
	chain := make([]*structs.FieldDescr, 0, len(parts))
	for i, name := range parts {
		fd, ok := d.ByName(name)
		if !ok {
			fd, ok = d.ByLegacyName(name)
		}
		if !ok {
			return nil, fmt.Errorf("%s.%s: %w", d.Name, name, simiter.ErrUnknownField)
		}
		chain = append(chain, fd)
		if i == len(parts)-1 {
			if fd.IsSub() {
				return nil, fmt.Errorf("%s: %w", path, reflect.ErrFieldList)
			}
			return chain, nil
		}
		if !fd.IsSub() {
			return nil, fmt.Errorf("%s: %s is a leaf: %w", path, name, reflect.ErrUnknownPath)
		}
		d = fd.Child()
	}
	return nil, fmt.Errorf("%q: %w", path, reflect.ErrUnknownPath)
}

// parseValue converts the text of a value to a Value of fd's type.
func parseValue(fd *structs.FieldDescr, s string) (reflect.Value, error) {
	switch fd.Type {
	case field.FTBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOfBool(b), nil
	case field.FTInt32:
		i, err := parseSigned[int32](s, 32)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOfInt32(i), nil
	case field.FTEnum:
		t := fd.Enum()
		if isIdent(s) {
			code, ok := t.Code(s)
			if !ok {
				return reflect.Value{}, fmt.Errorf("%s(%q): %w", t.Name(), s, simiter.ErrUnknownEnum)
			}
			return reflect.ValueOfEnum(code, t), nil
		}
		i, err := parseSigned[int32](s, 32)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOfEnum(i, t), nil
	case field.FTUint32:
		u, err := parseUnsigned[uint32](s, 32)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOfUint32(u), nil
	case field.FTUint64:
		u, err := parseUnsigned[uint64](s, 64)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOfUint64(u), nil
	case field.FTFloat32:
		f, err := parseFloat[float32](s, 32)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOfFloat(f), nil
	case field.FTFloat64:
		f, err := parseFloat[float64](s, 64)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOfDouble(f), nil
	case field.FTString:
		str, err := strconv.Unquote(s)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid quoted string %s: %w", s, err)
		}
		return reflect.ValueOfString(str), nil
	case field.FTListStrings:
		entries, err := listEntries(s)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOfStrings(entries), nil
	case field.FTListIDs:
		inner, err := listBody(s)
		if err != nil {
			return reflect.Value{}, err
		}
		var ids []uint64
		for _, e := range strings.Split(inner, ",") {
			e = strings.TrimSpace(e)
			if e == "" {
				continue
			}
			id, err := parseUnsigned[uint64](e, 64)
			if err != nil {
				return reflect.Value{}, err
			}
			ids = append(ids, id)
		}
		return reflect.ValueOfIDs(ids), nil
	}
	return reflect.Value{}, fmt.Errorf("field type %s cannot be parsed", fd.Type)
}

func parseSigned[T constraints.Signed](s string, bits int) (T, error) {
	i, err := strconv.ParseInt(s, 0, bits)
	if err != nil {
		return 0, err
	}
	return T(i), nil
}

func parseUnsigned[T constraints.Unsigned](s string, bits int) (T, error) {
	u, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, err
	}
	return T(u), nil
}

func parseFloat[T constraints.Float](s string, bits int) (T, error) {
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, err
	}
	return T(f), nil
}

// listBody returns the text between the brackets of a list value.
func listBody(s string) (string, error) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return "", fmt.Errorf("expected a list in [], got %s", s)
	}
	return strings.TrimSpace(s[1 : len(s)-1]), nil
}

// listEntries splits a list of quoted strings. Commas inside quotes belong to the entry.
func listEntries(s string) ([]string, error) {
	inner, err := listBody(s)
	if err != nil {
		return nil, err
	}
	var out []string
	for {
		inner = strings.TrimLeft(inner, " \t,")
		if inner == "" {
			return out, nil
		}
		q, err := strconv.QuotedPrefix(inner)
		if err != nil {
			return nil, fmt.Errorf("invalid list entry %s: %w", inner, err)
		}
		str, _ := strconv.Unquote(q)
		out = append(out, str)
		inner = inner[len(q):]
	}
}

// isIdent reports if s is an enumeration name rather than a number.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
