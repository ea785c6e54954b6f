// Package decode implements component B: interpreting one field's raw
// bytes, according to its declared type, as a typed optional value.
package decode

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/oarkflow/pgcopy/pgerr"
	"github.com/oarkflow/pgcopy/pgtype"
)

// Value holds the decoded payload for one field. Valid is false when the
// field carried SQL NULL, in which case every other member is zero.
type Value struct {
	Valid   bool
	Int32   int32
	Float32 float32
	Float64 float64
	Str     string
}

// Field decodes one field's raw bytes against its declared type tag. column
// is the zero-based output column index, used only to annotate errors.
func Field(tag pgtype.Tag, raw []byte, isNull bool, column int) (Value, error) {
	if isNull {
		return Value{}, nil
	}
	switch tag {
	case pgtype.Int4:
		if len(raw) != 4 {
			return Value{}, pgerr.NewAt(pgerr.FieldLengthMismatch, column,
				"integer field must be 4 bytes")
		}
		return Value{Valid: true, Int32: int32(binary.BigEndian.Uint32(raw))}, nil

	case pgtype.Float4:
		if len(raw) != 4 {
			return Value{}, pgerr.NewAt(pgerr.FieldLengthMismatch, column,
				"real field must be 4 bytes")
		}
		bits := binary.BigEndian.Uint32(raw)
		return Value{Valid: true, Float32: math.Float32frombits(bits)}, nil

	case pgtype.Float8:
		if len(raw) != 8 {
			return Value{}, pgerr.NewAt(pgerr.FieldLengthMismatch, column,
				"double precision field must be 8 bytes")
		}
		bits := binary.BigEndian.Uint64(raw)
		return Value{Valid: true, Float64: math.Float64frombits(bits)}, nil

	case pgtype.Varchar:
		if !utf8.Valid(raw) {
			return Value{}, pgerr.NewAt(pgerr.InvalidUTF8, column,
				"text field is not valid utf-8")
		}
		return Value{Valid: true, Str: string(raw)}, nil

	default:
		return Value{}, pgerr.NewAt(pgerr.UnsupportedType, column, "no decoder for type tag")
	}
}
