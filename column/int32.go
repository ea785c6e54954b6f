package column

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// int32Column backs a declared INT4 output column with an Arrow nullable
// int32 builder.
type int32Column struct {
	b *array.Int32Builder
}

func newInt32Column(mem memory.Allocator) *int32Column {
	return &int32Column{b: array.NewInt32Builder(mem)}
}

func (c *int32Column) appendValid(v int32)  { c.b.Append(v) }
func (c *int32Column) appendNull()          { c.b.AppendNull() }
func (c *int32Column) len() int             { return c.b.Len() }
func (c *int32Column) release()             { c.b.Release() }
func (c *int32Column) finish() arrow.Array   { return c.b.NewArray() }
func (c *int32Column) arrowType() arrow.DataType { return arrow.PrimitiveTypes.Int32 }
