package arrowhandoff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oarkflow/pgcopy"
	"github.com/oarkflow/pgcopy/arrowhandoff"
)

func TestRecordMatchesDecodedColumns(t *testing.T) {
	buf := []byte("PGCOPY\n\xff\r\n\x00" +
		"\x00\x00\x00\x00" +
		"\x00\x00\x00\x00" +
		"\x00\x01\x00\x00\x00\x04\x00\x00\x00\x01" +
		"\xff\xff")

	arrays, schema, err := pgcopy.Decode(buf, []string{"integer"})
	require.NoError(t, err)

	rec := arrowhandoff.Record(schema, arrays)
	defer rec.Release()
	require.EqualValues(t, 1, rec.NumRows())
	require.EqualValues(t, 1, rec.NumCols())
}
