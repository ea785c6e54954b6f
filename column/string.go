package column

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// stringColumn backs a declared VARCHAR output column with an Arrow
// nullable UTF-8 string builder.
type stringColumn struct {
	b *array.StringBuilder
}

func newStringColumn(mem memory.Allocator) *stringColumn {
	return &stringColumn{b: array.NewStringBuilder(mem)}
}

func (c *stringColumn) appendValid(v string)       { c.b.Append(v) }
func (c *stringColumn) appendNull()                { c.b.AppendNull() }
func (c *stringColumn) len() int                   { return c.b.Len() }
func (c *stringColumn) release()                   { c.b.Release() }
func (c *stringColumn) finish() arrow.Array        { return c.b.NewArray() }
func (c *stringColumn) arrowType() arrow.DataType  { return arrow.BinaryTypes.String }
