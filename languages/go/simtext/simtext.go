// Package simtext renders data model field lists as human readable `path: value` lines and
// parses the same form back. It is meant for logs, debugging and test fixtures, not for
// persistence.
//
// Example output for a PlatformPrefs:
//
//	commonPrefs.name: "p1"
//	commonPrefs.labelPrefs.coordinateSystem: ECEF
//	commonPrefs.acceptProjectorIds: [7, 8]
//	icon: "ico"
//	gogFile: ["a.gog", "b.gog"]
//
// Lines starting with # or // are comments.
package simtext

import (
	"bytes"
	"io"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/simiter"
	"github.com/bearlytools/simdata/languages/go/structs"
	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/values/sizes"
)

var marshalPool = &marshallerPool{
	pool: sync.NewPool[*bytes.Buffer](
		context.Background(),
		"simtext.marshallerPool",
		func() *bytes.Buffer {
			b := &bytes.Buffer{}
			b.Grow(256)
			return b
		},
	),
}

// Buffer is a bytes.Buffer with a Release method to return it to the pool.
type Buffer struct {
	*bytes.Buffer
}

// Release returns the Buffer to the pool. Only use this once you are done with it.
func (b Buffer) Release(ctx context.Context) {
	marshalPool.put(ctx, b.Buffer)
}

type marshallerPool struct {
	pool *sync.Pool[*bytes.Buffer]
}

func (m *marshallerPool) get(ctx context.Context) *bytes.Buffer {
	return m.pool.Get(ctx)
}

func (m *marshallerPool) put(ctx context.Context, b *bytes.Buffer) {
	if b.Cap() > 10*sizes.MiB {
		return
	}
	b.Reset()
	m.pool.Put(ctx, b)
}

// Marshal renders every present leaf of fl.
func Marshal(ctx context.Context, fl structs.FieldList, options ...MarshalOption) (Buffer, error) {
	buf := marshalPool.get(ctx)
	if err := MarshalWriter(ctx, fl, buf, options...); err != nil {
		marshalPool.put(ctx, buf)
		return Buffer{}, err
	}
	return Buffer{buf}, nil
}

// MarshalWriter renders every present leaf of fl to w.
func MarshalWriter(ctx context.Context, fl structs.FieldList, w io.Writer, options ...MarshalOption) error {
	opts := marshalOptions{}
	for _, opt := range options {
		var err error
		opts, err = opt(opts)
		if err != nil {
			return errors.E(ctx, errors.CatUser, errors.TypeParameter, err)
		}
	}
	if err := writeText(ctx, w, fl, opts); err != nil {
		return errors.E(ctx, errors.CatInternal, errors.TypeRender, err)
	}
	return nil
}

// unmarshalOptions provides options for reading text into field lists.
type unmarshalOptions struct {
	IgnoreUnknownFields bool
}

// UnmarshalOption provides options for Unmarshal.
type UnmarshalOption func(unmarshalOptions) (unmarshalOptions, error)

// WithIgnoreUnknownFields configures whether lines naming unknown fields are skipped.
func WithIgnoreUnknownFields(ignore bool) UnmarshalOption {
	return func(u unmarshalOptions) (unmarshalOptions, error) {
		u.IgnoreUnknownFields = ignore
		return u, nil
	}
}

// Unmarshal parses data and sets each named field on fl. Fields not named are left alone.
func Unmarshal(ctx context.Context, data []byte, fl structs.FieldList, options ...UnmarshalOption) error {
	return UnmarshalReader(ctx, bytes.NewReader(data), fl, options...)
}

// UnmarshalReader parses text from r and sets each named field on fl.
func UnmarshalReader(ctx context.Context, r io.Reader, fl structs.FieldList, options ...UnmarshalOption) error {
	opts := unmarshalOptions{}
	for _, opt := range options {
		var err error
		opts, err = opt(opts)
		if err != nil {
			return errors.E(ctx, errors.CatUser, errors.TypeParameter, err)
		}
	}

	buf := marshalPool.get(ctx)
	defer marshalPool.put(ctx, buf)
	if _, err := buf.ReadFrom(r); err != nil {
		return errors.E(ctx, errors.CatInternal, errors.TypeUnknown, err)
	}

	if err := parseText(ctx, buf.String(), fl, opts); err != nil {
		t := reflect.ErrType(err)
		if errors.Is(err, simiter.ErrUnknownField) {
			t = errors.TypePath
		}
		return errors.E(ctx, errors.CatUser, t, err)
	}
	return nil
}
