//go:build cgo

package arrowhandoff

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/cdata"
)

// Export hands a record batch across the Arrow C Data Interface: two C
// structs, each carrying a release callback the receiver must invoke once
// it is done reading. Requires a cgo-enabled build, matching arrow-go's
// own cdata package constraint.
func Export(rec arrow.Record) (*cdata.CArrowArray, *cdata.CArrowSchema) {
	var carr cdata.CArrowArray
	var csch cdata.CArrowSchema
	cdata.ExportArrowRecordBatch(rec, &carr, &csch)
	return &carr, &csch
}
