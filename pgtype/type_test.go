package pgtype_test

import (
	"testing"

	"github.com/lib/pq/oid"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/pgcopy/pgtype"
)

func TestResolveKnownSpellings(t *testing.T) {
	cases := map[string]pgtype.Tag{
		"integer":            pgtype.Int4,
		"real":                pgtype.Float4,
		"double precision":    pgtype.Float8,
		"character varying":   pgtype.Varchar,
		"character":           pgtype.Varchar,
	}
	for name, want := range cases {
		got, ok := pgtype.Resolve(name)
		require.True(t, ok, name)
		require.Equal(t, want, got, name)
	}
}

func TestResolveUnknown(t *testing.T) {
	_, ok := pgtype.Resolve("bigint")
	require.False(t, ok)
}

func TestAcceptedListsEveryName(t *testing.T) {
	require.Equal(t, "integer, real, double precision, character varying, character", pgtype.Accepted())
}

func TestTagOID(t *testing.T) {
	require.Equal(t, oid.T_int4, pgtype.Int4.OID())
	require.Equal(t, oid.T_varchar, pgtype.Varchar.OID())
}
