// Package pgcopy implements component D, the orchestrator: it resolves a
// caller-supplied list of type names to type tags, drives the frame
// reader and field decoder over a byte source, and returns one Arrow
// array per declared column.
//
// The package is the main public surface; frame, decode, column and pgtype
// are building blocks a caller would not normally touch directly. Errors
// are *pgerr.Error values, which a caller unwraps to read their Kind.
package pgcopy

import (
	"bytes"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/rs/zerolog"

	"github.com/oarkflow/pgcopy/column"
	"github.com/oarkflow/pgcopy/decode"
	"github.com/oarkflow/pgcopy/frame"
	"github.com/oarkflow/pgcopy/pgerr"
	"github.com/oarkflow/pgcopy/pgtype"
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithAllocator overrides the Arrow memory allocator used for column
// builders. Defaults to memory.NewGoAllocator().
func WithAllocator(mem memory.Allocator) Option {
	return func(d *Decoder) { d.mem = mem }
}

// WithLogger attaches a zerolog.Logger the decoder emits diagnostic
// events to. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Decoder) { d.log = logger }
}

// Decoder is a pull iterator over one COPY BINARY stream: the caller
// drives it one row at a time via Step, then calls Finish to seal the
// columns. Rows are decoded one at a time; the source is read through a
// bufio.Reader, which may read ahead of the current row, and decoded values
// accumulate in the column builders until Finish.
type Decoder struct {
	reader *frame.Reader
	tags   []pgtype.Tag
	set    *column.Set
	mem    memory.Allocator
	log    zerolog.Logger

	done   bool
	failed error
}

// NewDecoder constructs a Decoder bound to src and the resolved column
// types. src may be a random-access buffer (bytes.Reader) or any
// io.Reader, including one that suspends on I/O.
func NewDecoder(src io.Reader, typeNames []string, opts ...Option) (*Decoder, error) {
	tags, err := resolveTags(typeNames)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		tags: tags,
		mem:  memory.NewGoAllocator(),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	set, err := column.New(tags, d.mem)
	if err != nil {
		return nil, err
	}
	d.set = set
	d.reader = frame.NewReader(src, len(tags))
	return d, nil
}

// Step pulls and decodes exactly one row. It returns ok=false with a nil
// error at clean end of stream, and ok=false with a non-nil error on
// failure — in which case every column array so far is discarded and the
// Decoder must not be stepped again.
func (d *Decoder) Step() (ok bool, err error) {
	if d.failed != nil {
		return false, d.failed
	}
	if d.done {
		return false, nil
	}

	row, ok, err := d.reader.NextRow()
	if err != nil {
		return false, d.fail(err)
	}
	if !ok {
		d.done = true
		d.log.Debug().Int("rows", d.set.Len()).Bool("has_oids", d.reader.Header().HasOIDs).
			Msg("pgcopy: end of stream")
		return false, nil
	}

	values := make([]decode.Value, len(d.tags))
	for i, tag := range d.tags {
		v, err := decode.Field(tag, row.Field(i), row.IsNull(i), i)
		if err != nil {
			return false, d.fail(err)
		}
		values[i] = v
	}
	if err := d.set.PushValues(values); err != nil {
		return false, d.fail(err)
	}
	return true, nil
}

func (d *Decoder) fail(err error) error {
	d.done = true
	d.failed = err
	d.set.Release()
	d.log.Debug().Err(err).Msg("pgcopy: decode failed")
	return err
}

// Finish seals every column builder and returns the completed arrays and
// schema. Call it only after Step has returned ok=false with a nil error.
func (d *Decoder) Finish() ([]arrow.Array, *arrow.Schema) {
	return d.set.Finish()
}

// Decode runs a full decode of buf against typeNames and returns one
// Arrow array per declared column, in order, plus the matching schema.
// On failure it returns a non-nil error and no arrays.
func Decode(buf []byte, typeNames []string, opts ...Option) ([]arrow.Array, *arrow.Schema, error) {
	d, err := NewDecoder(bytes.NewReader(buf), typeNames, opts...)
	if err != nil {
		return nil, nil, err
	}
	for {
		ok, err := d.Step()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}
	}
	arrays, schema := d.Finish()
	return arrays, schema, nil
}

func resolveTags(names []string) ([]pgtype.Tag, error) {
	tags := make([]pgtype.Tag, len(names))
	for i, name := range names {
		tag, ok := pgtype.Resolve(name)
		if !ok {
			return nil, pgerr.New(pgerr.UnknownTypeName,
				fmt.Sprintf("unknown type %s, available types: %s", name, pgtype.Accepted()))
		}
		tags[i] = tag
	}
	return tags, nil
}
