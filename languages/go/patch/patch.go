// Package patch computes the difference between two field lists of the same type and
// applies it. A Patch holds only what changed, which is what a preference command needs
// to carry to move an entity from one state to another.
package patch

import (
	"strings"

	"github.com/bearlytools/simdata/languages/go/simtext"
	"github.com/bearlytools/simdata/languages/go/structs"
	"github.com/gostdlib/base/context"
)

// Patch turns one field list into another.
type Patch struct {
	// Update holds every field whose value must be set. Vectors in Update replace the
	// target's vector.
	Update structs.FieldList
	// Clears holds the dotted paths that must be made absent. A path may name a nested
	// field list, which removes it.
	Clears []string
}

// IsEmpty reports if applying p changes nothing.
func (p Patch) IsEmpty() bool {
	return len(p.Clears) == 0 && structs.IsEmpty(p.Update)
}

// Text renders p for logs: the update in simtext form, then one "-path" line per clear.
func (p Patch) Text(ctx context.Context) (string, error) {
	sb := strings.Builder{}
	if p.Update != nil {
		buf, err := simtext.Marshal(ctx, p.Update)
		if err != nil {
			return "", err
		}
		sb.Write(buf.Bytes())
		buf.Release(ctx)
	}
	for _, c := range p.Clears {
		sb.WriteString("-")
		sb.WriteString(c)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
