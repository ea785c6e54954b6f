// Package arrowhandoff demonstrates the boundary named in §6.4: exporting
// decoded columns through the Arrow C Data Interface so a host binding
// can adopt them without a copy. It is not exercised by the core decode
// path — per the spec, the binding that performs this export is an
// external collaborator — but it shows the real shape of that handoff
// using Arrow's own cdata bindings, which require cgo.
package arrowhandoff

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Record builds a single Arrow record batch from the decoder's column
// arrays and schema, ready to be exported via cdata.ExportArrowRecordBatch
// on a cgo-enabled build.
func Record(schema *arrow.Schema, columns []arrow.Array) arrow.Record {
	rows := int64(0)
	if len(columns) > 0 {
		rows = int64(columns[0].Len())
	}
	return array.NewRecord(schema, columns, rows)
}
