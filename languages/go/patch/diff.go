package patch

import (
	"fmt"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/structs"
	"github.com/gostdlib/base/context"
)

// ErrTypeMismatch is returned when the two field lists are not the same type.
var ErrTypeMismatch = errors.New("field list types don't match")

// Diff computes the Patch that turns from into to. Both must be the same type. from is
// not modified and the Patch shares nothing with to.
func Diff(ctx context.Context, from, to structs.FieldList) (Patch, error) {
	if from == nil || to == nil {
		return Patch{}, errors.E(ctx, errors.CatUser, errors.TypeParameter, errors.New("Diff: from and to must not be nil"))
	}
	fd, td := from.Descriptor(), to.Descriptor()
	if fd != td {
		return Patch{}, errors.E(ctx, errors.CatUser, errors.TypeKind, fmt.Errorf("%s vs %s: %w", fd.Name, td.Name, ErrTypeMismatch))
	}

	p := Patch{Update: td.New()}
	if err := diffList(from, to, p.Update, "", &p.Clears); err != nil {
		return Patch{}, errors.E(ctx, errors.CatInternal, errors.TypeBug, err)
	}
	return p, nil
}

// diffList writes the fields of to that differ from from into upd. Fields present on from
// and absent on to are recorded in clears.
func diffList(from, to, upd structs.FieldList, prefix string, clears *[]string) error {
	for _, fd := range to.Descriptor().Fields {
		path := join(prefix, fd.Name)
		fromHas, toHas := fd.Has(from), fd.Has(to)

		switch {
		case !toHas:
			if fromHas {
				*clears = append(*clears, path)
			}
		case fd.IsSub():
			ts := fd.Peek(to)
			if !fromHas {
				structs.Copy(fd.Mutable(upd), ts)
				continue
			}
			sub := fd.Mutable(upd)
			if err := diffList(fd.Peek(from), ts, sub, path, clears); err != nil {
				return err
			}
			if structs.IsEmpty(sub) {
				fd.Clear(upd)
			}
		default:
			tv, _ := fd.Get(to)
			if fromHas {
				if fv, _ := fd.Get(from); fv.Equal(tv) {
					continue
				}
			}
			if err := fd.Set(upd, tv); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return nil
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
