package frame_test

import (
	"bytes"
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oarkflow/pgcopy/frame"
	"github.com/oarkflow/pgcopy/pgerr"
)

func hexBuf(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "\n", ""))
	require.NoError(t, err)
	return b
}

func TestThreeInt4Rows(t *testing.T) {
	buf := hexBuf(t, `
		50 47 43 4F 50 59 0A FF 0D 0A 00
		00 00 00 00
		00 00 00 00
		00 01 00 00 00 04 00 00 00 01
		00 01 00 00 00 04 00 00 00 02
		00 01 00 00 00 04 00 00 00 03
		FF FF`)

	r := frame.NewReader(bytes.NewReader(buf), 1)

	var values []int
	for {
		row, ok, err := r.NextRow()
		require.NoError(t, err)
		if !ok {
			break
		}
		require.False(t, row.IsNull(0))
		field := row.Field(0)
		require.Len(t, field, 4)
		v := int(int32(field[0])<<24 | int32(field[1])<<16 | int32(field[2])<<8 | int32(field[3]))
		values = append(values, v)
	}
	require.Equal(t, []int{1, 2, 3}, values)
	require.False(t, r.Header().HasOIDs)
}

func TestNullMiddleRow(t *testing.T) {
	buf := hexBuf(t, `
		50 47 43 4F 50 59 0A FF 0D 0A 00
		00 00 00 00
		00 00 00 00
		00 01 00 00 00 04 00 00 00 07
		00 01 FF FF FF FF
		00 01 00 00 00 04 FF FF FF FF
		FF FF`)

	r := frame.NewReader(bytes.NewReader(buf), 1)

	var nulls []bool
	for {
		row, ok, err := r.NextRow()
		require.NoError(t, err)
		if !ok {
			break
		}
		nulls = append(nulls, row.IsNull(0))
	}
	require.Equal(t, []bool{false, true, false}, nulls)
}

func TestMagicMismatch(t *testing.T) {
	buf := hexBuf(t, "51 47 43 4F 50 59 0A FF 0D 0A 00 00 00 00 00 00 00 00 00 FF FF")
	r := frame.NewReader(bytes.NewReader(buf), 1)
	_, ok, err := r.NextRow()
	require.False(t, ok)
	var pe *pgerr.Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, pgerr.InvalidMagic, pe.Kind)
}

func TestFieldCountMismatch(t *testing.T) {
	buf := hexBuf(t, `
		50 47 43 4F 50 59 0A FF 0D 0A 00
		00 00 00 00
		00 00 00 00
		00 02 00 00 00 04 00 00 00 01 00 00 00 04 00 00 00 02
		FF FF`)
	r := frame.NewReader(bytes.NewReader(buf), 1)
	_, ok, err := r.NextRow()
	require.False(t, ok)
	var pe *pgerr.Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, pgerr.FieldCountMismatch, pe.Kind)
	require.Contains(t, pe.Detail, "expected 1 values but got 2")
}

func TestTruncationBeforeSentinel(t *testing.T) {
	buf := hexBuf(t, `
		50 47 43 4F 50 59 0A FF 0D 0A 00
		00 00 00 00
		00 00 00 00
		00 01 00 00 00 04 00 00 00 01
		FF`)
	r := frame.NewReader(bytes.NewReader(buf), 1)
	_, _, err := r.NextRow()
	require.NoError(t, err)
	_, ok, err := r.NextRow()
	require.False(t, ok)
	var pe *pgerr.Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, pgerr.UnexpectedEOF, pe.Kind)
}

func TestEmptyStream(t *testing.T) {
	buf := hexBuf(t, "50 47 43 4F 50 59 0A FF 0D 0A 00 00 00 00 00 00 00 00 00 FF FF")
	r := frame.NewReader(bytes.NewReader(buf), 1)
	_, ok, err := r.NextRow()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHeaderExtensionDiscarded(t *testing.T) {
	buf := hexBuf(t, "50 47 43 4F 50 59 0A FF 0D 0A 00 00 00 00 00 00 00 00 03 AA BB CC FF FF")
	r := frame.NewReader(bytes.NewReader(buf), 1)
	_, ok, err := r.NextRow()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestZeroLengthTextField(t *testing.T) {
	buf := hexBuf(t, `
		50 47 43 4F 50 59 0A FF 0D 0A 00
		00 00 00 00
		00 00 00 00
		00 01 00 00 00 00
		FF FF`)
	r := frame.NewReader(bytes.NewReader(buf), 1)
	row, ok, err := r.NextRow()
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, row.IsNull(0))
	require.Empty(t, row.Field(0))
}

func TestSourceIsIOReader(t *testing.T) {
	buf := hexBuf(t, "50 47 43 4F 50 59 0A FF 0D 0A 00 00 00 00 00 00 00 00 00 FF FF")
	var pr io.Reader = bytes.NewReader(buf)
	r := frame.NewReader(pr, 1)
	_, ok, err := r.NextRow()
	require.NoError(t, err)
	require.False(t, ok)
}
