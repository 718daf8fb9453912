package patch

import (
	"fmt"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/structs"
	"github.com/gostdlib/base/context"
)

// Apply modifies fl by p. Clears are applied first, then the update. A Patch made by
// Diff(from, to) applied to a copy of from yields a list equal to to.
func Apply(ctx context.Context, fl structs.FieldList, p Patch) error {
	if fl == nil {
		return errors.E(ctx, errors.CatUser, errors.TypeParameter, errors.New("Apply: fl must not be nil"))
	}
	if p.Update != nil && p.Update.Descriptor() != fl.Descriptor() {
		return errors.E(
			ctx,
			errors.CatUser,
			errors.TypeKind,
			fmt.Errorf("%s vs %s: %w", fl.Descriptor().Name, p.Update.Descriptor().Name, ErrTypeMismatch),
		)
	}

	if len(p.Clears) > 0 {
		r := structs.NewReflection(fl.Descriptor())
		for _, path := range p.Clears {
			if err := r.ClearValue(fl, path); err != nil {
				return errors.E(ctx, errors.CatUser, reflect.ErrType(err), err)
			}
		}
	}
	if p.Update == nil {
		return nil
	}
	if err := applyList(fl, p.Update); err != nil {
		return errors.E(ctx, errors.CatInternal, errors.TypeBug, err)
	}
	return nil
}

// applyList sets every field present on upd into fl. Unlike structs.Merge, vectors replace.
func applyList(fl, upd structs.FieldList) error {
	for _, fd := range upd.Descriptor().Fields {
		if !fd.Has(upd) {
			continue
		}
		if fd.IsSub() {
			if err := applyList(fd.Mutable(fl), fd.Peek(upd)); err != nil {
				return fmt.Errorf("%s.%w", fd.Name, err)
			}
			continue
		}
		v, _ := fd.Get(upd)
		if err := fd.Set(fl, v); err != nil {
			return err
		}
	}
	return nil
}
