// Package frame implements component A of the decoder: a stateful reader
// over the framed PostgreSQL COPY BINARY byte protocol. It reads the
// stream header once, then yields one Row per call until the trailer
// sentinel ends the stream.
package frame

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/oarkflow/pgcopy/pgerr"
)

const magicLen = 11

// magic is the 11-byte COPY BINARY signature: "PGCOPY\n\xFF\r\n\0".
var magic = [magicLen]byte{'P', 'G', 'C', 'O', 'P', 'Y', '\n', 0xFF, '\r', '\n', 0}

const hasOIDsBit = 1 << 16

// state tracks the reader's position in NeedHeader -> NeedRow -> (NeedRow |
// Done | Failed). Once Failed, every subsequent call returns the same error.
type state uint8

const (
	stateNeedHeader state = iota
	stateNeedRow
	stateDone
	stateFailed
)

// Header holds the attributes derived once per stream.
type Header struct {
	HasOIDs bool
}

// FieldMarker tags one field slot in a Row as either a value starting at
// Offset or a null recorded at Offset (a zero-length slice).
type FieldMarker struct {
	Offset int
	Null   bool
}

// Row is a transient, read-only view over one decoded record: a contiguous
// buffer holding every non-null field payload, plus a parallel marker per
// field. A Row is valid only until the next NextRow call.
type Row struct {
	Buf    []byte
	Fields []FieldMarker
}

// Field returns the raw byte slice for the i-th field. A Null field yields
// a zero-length slice at the position it would otherwise occupy.
func (r Row) Field(i int) []byte {
	start := r.Fields[i].Offset
	end := len(r.Buf)
	if i+1 < len(r.Fields) {
		end = r.Fields[i+1].Offset
	}
	return r.Buf[start:end]
}

// IsNull reports whether the i-th field carried SQL NULL.
func (r Row) IsNull(i int) bool {
	return r.Fields[i].Null
}

// Len reports the number of fields in the row.
func (r Row) Len() int {
	return len(r.Fields)
}

// Reader is a stateful frame reader over a byte source. It is bound at
// construction to the number of fields every row must declare (after
// accounting for a leading OID column, once the header is known).
type Reader struct {
	src      *bufio.Reader
	expected int

	state   state
	header  Header
	failure error

	scratch [4]byte
}

// NewReader constructs a frame reader over src. expected is the declared
// column count the caller intends to decode into; it is compared against
// each row's field count (plus one, when the stream carries OIDs).
func NewReader(src io.Reader, expected int) *Reader {
	return &Reader{src: bufio.NewReader(src), expected: expected, state: stateNeedHeader}
}

// Header returns the parsed stream header. Valid only after the first
// successful NextRow call.
func (r *Reader) Header() Header {
	return r.header
}

// NextRow returns the next row, or ok=false with a nil error at clean
// end of stream, or ok=false with a non-nil error on failure. The first
// call additionally consumes the stream header.
func (r *Reader) NextRow() (row Row, ok bool, err error) {
	switch r.state {
	case stateFailed:
		return Row{}, false, r.failure
	case stateDone:
		return Row{}, false, nil
	}

	if r.state == stateNeedHeader {
		if err := r.readHeader(); err != nil {
			return Row{}, false, r.fail(err)
		}
		r.state = stateNeedRow
	}

	row, end, err := r.readRow()
	if err != nil {
		return Row{}, false, r.fail(err)
	}
	if end {
		r.state = stateDone
		return Row{}, false, nil
	}
	return row, true, nil
}

func (r *Reader) fail(err error) error {
	r.state = stateFailed
	r.failure = err
	return err
}

func (r *Reader) readHeader() error {
	var sig [magicLen]byte
	if _, err := io.ReadFull(r.src, sig[:]); err != nil {
		return wrapEOF(err)
	}
	if sig != magic {
		return pgerr.New(pgerr.InvalidMagic, "invalid magic value")
	}

	flags, err := r.readUint32()
	if err != nil {
		return err
	}
	r.header.HasOIDs = flags&hasOIDsBit != 0

	extLen, err := r.readUint32()
	if err != nil {
		return err
	}
	if extLen > 0 {
		if _, err := io.CopyN(io.Discard, r.src, int64(extLen)); err != nil {
			return wrapEOF(err)
		}
	}
	return nil
}

// readRow implements the §4.A row algorithm. The returned bool reports
// whether the 0xFFFF trailer sentinel ended the stream.
func (r *Reader) readRow() (Row, bool, error) {
	fieldCount, err := r.readUint16()
	if err != nil {
		return Row{}, false, err
	}
	if fieldCount == 0xFFFF {
		return Row{}, true, nil
	}

	total := int(fieldCount)
	if r.header.HasOIDs {
		total++
	}
	if total != r.expected {
		return Row{}, false, pgerr.New(pgerr.FieldCountMismatch,
			fmt.Sprintf("expected %d values but got %d", r.expected, total))
	}

	row := Row{Fields: make([]FieldMarker, total)}
	for i := 0; i < total; i++ {
		length, err := r.readUint32()
		if err != nil {
			return Row{}, false, err
		}
		start := len(row.Buf)
		if length == 0xFFFFFFFF {
			row.Fields[i] = FieldMarker{Offset: start, Null: true}
			continue
		}
		n := int(length)
		row.Buf = append(row.Buf, make([]byte, n)...)
		if _, err := io.ReadFull(r.src, row.Buf[start:start+n]); err != nil {
			return Row{}, false, wrapEOF(err)
		}
		row.Fields[i] = FieldMarker{Offset: start, Null: false}
	}
	return row, false, nil
}

func (r *Reader) readUint16() (uint16, error) {
	if _, err := io.ReadFull(r.src, r.scratch[:2]); err != nil {
		return 0, wrapEOF(err)
	}
	return binary.BigEndian.Uint16(r.scratch[:2]), nil
}

func (r *Reader) readUint32() (uint32, error) {
	if _, err := io.ReadFull(r.src, r.scratch[:4]); err != nil {
		return 0, wrapEOF(err)
	}
	return binary.BigEndian.Uint32(r.scratch[:4]), nil
}

func wrapEOF(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return pgerr.New(pgerr.UnexpectedEOF, "unexpected eof")
	}
	return err
}
