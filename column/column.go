// Package column implements component C: one typed, nullable, appendable
// Arrow array per declared output column. Columns are a tagged variant
// over the supported type set — each arm owns a concrete typed builder,
// and every operation dispatches on the tag with a switch, never through
// a shared interface.
package column

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/oarkflow/pgcopy/decode"
	"github.com/oarkflow/pgcopy/pgerr"
	"github.com/oarkflow/pgcopy/pgtype"
)

// entry is one column slot: a tag plus whichever concrete builder that tag
// owns. Exactly one of the builder fields is non-nil.
type entry struct {
	tag pgtype.Tag
	i32 *int32Column
	f32 *float32Column
	f64 *float64Column
	str *stringColumn
}

func newEntry(tag pgtype.Tag, mem memory.Allocator) (entry, error) {
	switch tag {
	case pgtype.Int4:
		return entry{tag: tag, i32: newInt32Column(mem)}, nil
	case pgtype.Float4:
		return entry{tag: tag, f32: newFloat32Column(mem)}, nil
	case pgtype.Float8:
		return entry{tag: tag, f64: newFloat64Column(mem)}, nil
	case pgtype.Varchar:
		return entry{tag: tag, str: newStringColumn(mem)}, nil
	default:
		return entry{}, pgerr.New(pgerr.UnsupportedType, "no column builder for type tag")
	}
}

func (e entry) appendValue(v decode.Value) {
	switch e.tag {
	case pgtype.Int4:
		if v.Valid {
			e.i32.appendValid(v.Int32)
		} else {
			e.i32.appendNull()
		}
	case pgtype.Float4:
		if v.Valid {
			e.f32.appendValid(v.Float32)
		} else {
			e.f32.appendNull()
		}
	case pgtype.Float8:
		if v.Valid {
			e.f64.appendValid(v.Float64)
		} else {
			e.f64.appendNull()
		}
	case pgtype.Varchar:
		if v.Valid {
			e.str.appendValid(v.Str)
		} else {
			e.str.appendNull()
		}
	}
}

func (e entry) len() int {
	switch e.tag {
	case pgtype.Int4:
		return e.i32.len()
	case pgtype.Float4:
		return e.f32.len()
	case pgtype.Float8:
		return e.f64.len()
	case pgtype.Varchar:
		return e.str.len()
	default:
		return 0
	}
}

func (e entry) arrowType() arrow.DataType {
	switch e.tag {
	case pgtype.Int4:
		return e.i32.arrowType()
	case pgtype.Float4:
		return e.f32.arrowType()
	case pgtype.Float8:
		return e.f64.arrowType()
	case pgtype.Varchar:
		return e.str.arrowType()
	default:
		return nil
	}
}

func (e entry) finish() arrow.Array {
	switch e.tag {
	case pgtype.Int4:
		return e.i32.finish()
	case pgtype.Float4:
		return e.f32.finish()
	case pgtype.Float8:
		return e.f64.finish()
	case pgtype.Varchar:
		return e.str.finish()
	default:
		return nil
	}
}

func (e entry) release() {
	switch e.tag {
	case pgtype.Int4:
		e.i32.release()
	case pgtype.Float4:
		e.f32.release()
	case pgtype.Float8:
		e.f64.release()
	case pgtype.Varchar:
		e.str.release()
	}
}

// Set holds one builder per declared output column, in declared order.
type Set struct {
	tags    []pgtype.Tag
	entries []entry
	rows    int
}

// New constructs a Set with one builder per tag, using mem for Arrow
// buffer allocation.
func New(tags []pgtype.Tag, mem memory.Allocator) (*Set, error) {
	entries := make([]entry, len(tags))
	for i, tag := range tags {
		e, err := newEntry(tag, mem)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return &Set{tags: tags, entries: entries}, nil
}

// PushValues appends one decoded value per column, in order. All columns
// grow by exactly one element, or none do: a failure partway through
// leaves the Set in an unspecified state, and the caller must discard it.
func (s *Set) PushValues(values []decode.Value) error {
	if len(values) != len(s.entries) {
		return pgerr.New(pgerr.FieldCountMismatch, "row width does not match column count")
	}
	for i, v := range values {
		s.entries[i].appendValue(v)
	}
	s.rows++
	return nil
}

// Len reports how many rows have been pushed.
func (s *Set) Len() int {
	return s.rows
}

// Finish seals every builder and returns the completed Arrow arrays and
// matching schema, in declared column order. The Set must not be reused
// afterward.
func (s *Set) Finish() ([]arrow.Array, *arrow.Schema) {
	arrays := make([]arrow.Array, len(s.entries))
	fields := make([]arrow.Field, len(s.entries))
	for i, e := range s.entries {
		arrays[i] = e.finish()
		fields[i] = arrow.Field{Name: columnName(i), Type: e.arrowType(), Nullable: true}
	}
	return arrays, arrow.NewSchema(fields, nil)
}

// Release discards every builder without finishing it. Used to clean up
// after a decode failure.
func (s *Set) Release() {
	for _, e := range s.entries {
		e.release()
	}
}

func columnName(i int) string {
	return fmt.Sprintf("col_%d", i)
}
