// Package pgtype defines the closed set of PostgreSQL column types this
// decoder understands, and the canonical spelling each one is looked up by.
package pgtype

import (
	"strings"

	"github.com/lib/pq/oid"
)

// Tag identifies a supported PostgreSQL column type.
type Tag uint8

const (
	// Invalid marks the zero value; never produced by Resolve.
	Invalid Tag = iota
	// Int4 is a 32-bit signed integer (Postgres "integer").
	Int4
	// Float4 is an IEEE-754 32-bit float (Postgres "real").
	Float4
	// Float8 is an IEEE-754 64-bit float (Postgres "double precision").
	Float8
	// Varchar is UTF-8 text (Postgres "character varying" / "character").
	Varchar
)

// String returns the tag's canonical name (INT4, FLOAT4, FLOAT8, VARCHAR).
func (t Tag) String() string {
	switch t {
	case Int4:
		return "INT4"
	case Float4:
		return "FLOAT4"
	case Float8:
		return "FLOAT8"
	case Varchar:
		return "VARCHAR"
	default:
		return "INVALID"
	}
}

// spellings maps every accepted type-name spelling to its tag. Multiple
// spellings may resolve to the same tag (e.g. "character" and
// "character varying" both mean Varchar).
var spellings = map[string]Tag{
	"integer":           Int4,
	"real":              Float4,
	"double precision":  Float8,
	"character varying": Varchar,
	"character":         Varchar,
}

// acceptedOrder lists the spellings in the stable order used when reporting
// an unknown type name.
var acceptedOrder = []string{
	"integer",
	"real",
	"double precision",
	"character varying",
	"character",
}

// Resolve maps a caller-supplied type spelling to its Tag. The mapping is
// total on the enumerated set and fails cleanly for any other spelling.
func Resolve(name string) (Tag, bool) {
	tag, ok := spellings[name]
	return tag, ok
}

// Accepted returns the comma-separated list of every recognized spelling,
// in stable order, for use in error details.
func Accepted() string {
	return strings.Join(acceptedOrder, ", ")
}

// OID returns the real PostgreSQL object identifier the tag corresponds
// to, as cataloged by lib/pq. Useful when a binding wants to cross-check
// a column's declared type against pg_type.
func (t Tag) OID() oid.Oid {
	switch t {
	case Int4:
		return oid.T_int4
	case Float4:
		return oid.T_float4
	case Float8:
		return oid.T_float8
	case Varchar:
		return oid.T_varchar
	default:
		return 0
	}
}
